package api

import (
	"context"
	"net/http"

	"booking-engine/internal/domain/actor"
	reqdto "booking-engine/internal/handler/dto/request"
	resdto "booking-engine/internal/handler/dto/response"
	"booking-engine/internal/handler/httperr"
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	cmds commands.AppointmentCommands
	q    queries.AppointmentQueries
}

func NewAppointmentHandler(cmds commands.AppointmentCommands, q queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{cmds: cmds, q: q}
}

// @Summary Create appointment
// @Description Book a slot. Card payments return a payment intent; a retried checkout with the same Idempotency-Key reuses it.
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Checkout attempt key"
// @Param request body reqdto.CreateAppointmentRequest true "Create appointment request"
// @Success 201 {object} resdto.CreateAppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	caller, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	params, err := req.ToParams(c.GetHeader("Idempotency-Key"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateAppointment(c.Request.Context(), caller, params)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/appointments/"+result.Appointment.ID.String())
	c.JSON(http.StatusCreated, resdto.FromCreateResult(result))
}

// @Summary Get appointment
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} queries.AppointmentView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	caller, ok := requireActor(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), caller, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Preview cancellation
// @Description Refund a cancellation would produce now. Nothing is changed.
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} queries.CancellationPreview
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/appointments/{id}/cancellation-preview [get]
func (h *AppointmentHandler) CancellationPreview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	caller, ok := requireActor(c)
	if !ok {
		return
	}
	preview, err := h.q.GetCancellationPreview(c.Request.Context(), caller, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

// @Summary Cancel appointment
// @Description Cancel a pending or confirmed appointment and refund by the cancellation policy
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.CancelAppointmentRequest false "Cancellation reason"
// @Success 200 {object} resdto.CancelAppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/appointments/{id}/cancel [post]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	caller, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CancelAppointmentRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}
	result, err := h.cmds.CancelAppointment(c.Request.Context(), caller, id, req.Reason)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancelResult(result))
}

// @Summary Confirm appointment
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} queries.AppointmentView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/appointments/{id}/confirm [post]
func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, h.cmds.ConfirmAppointment)
}

// @Summary Record payment
// @Description Mark an appointment paid at the counter
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} queries.AppointmentView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/appointments/{id}/payment [post]
func (h *AppointmentHandler) RecordPayment(c *gin.Context) {
	h.transition(c, h.cmds.RecordPayment)
}

// @Summary Reschedule appointment
// @Description Move an appointment to another free slot of the same offering
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.RescheduleRequest true "Target slot"
// @Success 200 {object} queries.AppointmentView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/appointments/{id}/schedule [put]
func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	caller, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.RescheduleAppointment(c.Request.Context(), caller, id, params)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Override status
// @Description Mark an appointment missed or failed with a reason
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.OverrideStatusRequest true "Target status and reason"
// @Success 200 {object} queries.AppointmentView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/appointments/{id}/status [post]
func (h *AppointmentHandler) OverrideStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	caller, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.OverrideStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.OverrideStatus(c.Request.Context(), caller, id, req.ToStatus(), req.Reason)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type transitionFunc func(ctx context.Context, caller actor.Actor, id uuid.UUID) (*queries.AppointmentView, error)

func (h *AppointmentHandler) transition(c *gin.Context, fn transitionFunc) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	caller, ok := requireActor(c)
	if !ok {
		return
	}
	view, err := fn(c.Request.Context(), caller, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
