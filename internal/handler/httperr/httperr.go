package httperr

import (
	"net/http"
	"time"

	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// ConflictDetail lets a client retry after a 409 without another round trip.
type ConflictDetail struct {
	Reason           string                   `json:"reason"`
	LockedUntil      *time.Time               `json:"lockedUntil,omitempty"`
	AlternativeSlots []shared.AlternativeSlot `json:"alternativeSlots,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a use-case error onto the status of its category.
// Internal failures never leak their message.
func Abort(c *gin.Context, err error) {
	switch shared.Category(err) {
	case shared.ErrValidation:
		AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case shared.ErrForbidden:
		AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
	case shared.ErrNotFound:
		AbortWithError(c, http.StatusNotFound, err, publicMessage(err, "Not found"), nil)
	case shared.ErrConflict:
		AbortWithError(c, http.StatusConflict, err, publicMessage(err, "Conflict"), conflictDetail(err))
	case shared.ErrUpstream:
		AbortWithError(c, http.StatusBadGateway, err, publicMessage(err, "Upstream service failed"), nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}

func conflictDetail(err error) *ConflictDetail {
	var ce *shared.ConflictError
	if !errs.As(err, &ce) {
		return nil
	}
	return &ConflictDetail{
		Reason:           ce.Reason,
		LockedUntil:      ce.LockedUntil,
		AlternativeSlots: ce.AlternativeSlots,
	}
}

var publicSentinels = []error{
	shared.ErrOfferingNotFound,
	shared.ErrServiceNotFound,
	shared.ErrAppointmentNotFound,
	shared.ErrLockNotFound,
	shared.ErrSlotNotFound,
	shared.ErrSlotLocked,
	shared.ErrSlotFullyBooked,
	shared.ErrInvalidTransition,
	shared.ErrAlreadyPaid,
	shared.ErrPaymentFailed,
	shared.ErrRefundFailed,
	shared.ErrPaymentsDisabled,
}

// publicMessage returns the sentinel text rather than the wrapped chain,
// which may carry storage or gateway details.
func publicMessage(err error, fallback string) string {
	for _, s := range publicSentinels {
		if errs.Is(err, s) {
			return s.Error()
		}
	}
	return fallback
}
