package api

import (
	"net/http"

	reqdto "booking-engine/internal/handler/dto/request"
	resdto "booking-engine/internal/handler/dto/response"
	"booking-engine/internal/handler/httperr"
	"booking-engine/internal/handler/middleware"
	"booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	q queries.SlotQueries
}

func NewSlotHandler(q queries.SlotQueries) *SlotHandler {
	return &SlotHandler{q: q}
}

// @Summary List available slots
// @Description Bookable slots of an offering on a date, with remaining capacity
// @Tags slots
// @Produce json
// @Param id path string true "Offering ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param duration query int false "Slot length in minutes"
// @Success 200 {object} resdto.DaySlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/offerings/{id}/slots [get]
func (h *SlotHandler) GetSlots(c *gin.Context) {
	offeringID, ok := pathID(c)
	if !ok {
		return
	}
	var query reqdto.SlotsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	date, duration, err := query.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.q.GetSlots(c.Request.Context(), offeringID, date, duration)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDaySlots(view))
}

// @Summary Check a slot
// @Description Whether one slot can be booked right now by the caller
// @Tags slots
// @Produce json
// @Param id path string true "Offering ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param start query string true "Start (HH:MM)"
// @Param end query string true "End (HH:MM)"
// @Success 200 {object} queries.CheckSlotView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/offerings/{id}/slots/check [get]
func (h *SlotHandler) CheckSlot(c *gin.Context) {
	offeringID, ok := pathID(c)
	if !ok {
		return
	}
	var query reqdto.CheckSlotQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	// anonymous callers have no lock of their own
	caller, _ := middleware.GetActor(c)
	params, err := query.ToParams(offeringID, caller.ID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.q.CheckSlot(c.Request.Context(), params)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List family slots
// @Description Slots across every offering of a service, merged by time
// @Tags slots
// @Produce json
// @Param id path string true "Service ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} queries.FamilySlotView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/services/{id}/slots [get]
func (h *SlotHandler) GetFamilySlots(c *gin.Context) {
	serviceID, ok := pathID(c)
	if !ok {
		return
	}
	var query reqdto.DateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	date, err := query.ToDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	slots, err := h.q.GetFamilySlots(c.Request.Context(), serviceID, date)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if slots == nil {
		slots = []queries.FamilySlotView{}
	}
	c.JSON(http.StatusOK, slots)
}

// @Summary Nearby available dates
// @Description Dates around the target that still have availability for a service
// @Tags slots
// @Produce json
// @Param id path string true "Service ID"
// @Param date query string true "Target date (YYYY-MM-DD)"
// @Success 200 {object} resdto.NearbyDatesResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/services/{id}/nearby-dates [get]
func (h *SlotHandler) NearbyDates(c *gin.Context) {
	serviceID, ok := pathID(c)
	if !ok {
		return
	}
	var query reqdto.DateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	target, err := query.ToDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	dates, err := h.q.NearbyDates(c.Request.Context(), serviceID, target)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDates(dates))
}
