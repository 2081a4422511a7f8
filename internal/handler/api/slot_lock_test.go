//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"booking-engine/internal/domain/actor"
	"booking-engine/internal/handler/api"
	resdto "booking-engine/internal/handler/dto/response"
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/shared"
	"booking-engine/tests/common/builder"
	"booking-engine/tests/common/httptest"
	"booking-engine/tests/common/testutil"
	commandsmock "booking-engine/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlotLockHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSlotLockCommands
	caller       actor.Actor
}

func (s *SlotLockHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSlotLockCommands(s.mockCtrl)
	s.caller = actor.Actor{ID: uuid.New(), Role: actor.RoleCustomer}
	h := api.NewSlotLockHandler(s.mockCommands)

	auth := fakeAuth(&s.caller)
	s.router.POST("/slot-locks", auth, h.Lock)
	s.router.DELETE("/slot-locks", auth, h.Unlock)
	s.router.DELETE("/slot-locks/:id", auth, h.UnlockByID)
}

func (s *SlotLockHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotLockHandlerSuite(t *testing.T) {
	suite.Run(t, new(SlotLockHandlerTestSuite))
}

// ================================================================================
// TestLock
// ================================================================================

func (s *SlotLockHandlerTestSuite) TestLock() {
	url := "/slot-locks"
	lb := builder.NewSlotLockBuilder()
	reqBody := lb.BuildRequestDTO()
	expiresAt := time.Date(2024, 5, 31, 12, 10, 0, 0, time.UTC)
	result := &commands.LockResult{LockID: lb.ID, Key: lb.Key(), ExpiresAt: expiresAt}

	s.Run("success: 201 Created with lock id and expiry", func() {
		s.mockCommands.EXPECT().
			LockSlot(gomock.Any(), s.caller, commands.LockSlotParams{
				OfferingID: lb.OfferingID,
				Date:       lb.Key().Date,
				Start:      lb.Key().Start,
				End:        lb.Key().End,
			}).
			Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.LockResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(lb.ID, body.LockID)
		s.True(expiresAt.Equal(body.ExpiresAt))
		s.Equal("09:00", body.Start)
		s.False(body.Reacquired)
	})

	s.Run("success: 200 OK when the caller already holds the lock", func() {
		reacquired := *result
		reacquired.Reacquired = true
		s.mockCommands.EXPECT().LockSlot(gomock.Any(), gomock.Any(), gomock.Any()).Return(&reacquired, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.LockResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Reacquired)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing field: offeringId", mutate: testutil.Field("offeringId", nil)},
			{name: "missing field: date", mutate: testutil.Field("date", nil)},
			{name: "malformed date", mutate: testutil.Field("date", "2024/06/01")},
			{name: "malformed start", mutate: testutil.Field("start", "9am")},
			{name: "hour out of range", mutate: testutil.Field("end", "25:00")},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 409 Conflict carries lockedUntil and alternatives", func() {
		conflict := shared.NewConflict(shared.ErrSlotLocked, shared.ReasonSlotLocked).
			WithLockedUntil(expiresAt).
			WithAlternatives([]shared.AlternativeSlot{{Start: "09:30", End: "10:00", RemainingCapacity: 1}})
		s.mockCommands.EXPECT().LockSlot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, conflict)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		body := httptest.AssertConflictResponse(s.T(), rec, shared.ReasonSlotLocked)
		s.Require().NotNil(body.Detail.LockedUntil)
		s.True(expiresAt.Equal(*body.Detail.LockedUntil))
		s.Require().Len(body.Detail.AlternativeSlots, 1)
		s.Equal("09:30", body.Detail.AlternativeSlots[0].Start)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "unknown offering", commandsError: wrapped(shared.ErrOfferingNotFound), expectedStatus: http.StatusNotFound, expectedMsg: "offering not found"},
			{name: "slot not generated", commandsError: shared.ErrSlotNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "slot is not offered"},
			{name: "fully booked", commandsError: shared.NewConflict(shared.ErrSlotFullyBooked, shared.ReasonSlotFullyBooked), expectedStatus: http.StatusConflict, expectedMsg: "fully booked"},
			{name: "storage failure", commandsError: errStorage, expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().LockSlot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestUnlock
// ================================================================================

func (s *SlotLockHandlerTestSuite) TestUnlockByID() {
	lockID := uuid.New()

	s.Run("success: 200 OK with the released count", func() {
		s.mockCommands.EXPECT().UnlockByID(gomock.Any(), s.caller, lockID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/slot-locks/"+lockID.String(), nil, "bearer-token")

		var body resdto.ReleaseAllResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(1, body.Released)
	})

	s.Run("error: 400 Bad Request for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/slot-locks/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for unknown lock", func() {
		s.mockCommands.EXPECT().UnlockByID(gomock.Any(), gomock.Any(), lockID).Return(shared.ErrLockNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/slot-locks/"+lockID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "slot lock not found")
	})
}

func (s *SlotLockHandlerTestSuite) TestUnlock() {
	lb := builder.NewSlotLockBuilder()

	s.Run("success: releases by key", func() {
		s.mockCommands.EXPECT().UnlockByKey(gomock.Any(), s.caller, gomock.Any()).
			DoAndReturn(func(_ any, _ actor.Actor, p commands.LockSlotParams) error {
				s.Equal(lb.Key().Start, p.Start)
				s.Equal(lb.OfferingID, p.OfferingID)
				return nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/slot-locks", lb.BuildRequestDTO(), "bearer-token")

		var body resdto.ReleaseAllResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(1, body.Released)
	})

	s.Run("success: all=true releases every held lock", func() {
		s.mockCommands.EXPECT().ReleaseAll(gomock.Any(), s.caller).Return(2, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/slot-locks?all=true", nil, "bearer-token")

		var body resdto.ReleaseAllResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.Released)
	})

	s.Run("error: 400 Bad Request without key or all", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/slot-locks", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
