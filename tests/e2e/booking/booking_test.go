//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"booking-engine/internal/domain/actor"
	"booking-engine/internal/domain/appointment"
	"booking-engine/internal/handler/dto/response"
	"booking-engine/internal/usecase/queries"
	"booking-engine/tests/common/authtest"
	"booking-engine/tests/common/builder"
	"booking-engine/tests/common/dbtest"
	"booking-engine/tests/common/httptest"
	"booking-engine/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	appointmentsURL = "/api/appointments"
	slotsURL        = "/api/offerings/%s/slots?date=%s"
)

type BookingSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

type seeded struct {
	offeringID uuid.UUID
	vendor     actor.Actor
	vendorTok  string
}

// seed stores a 30 minute offering priced at 100 with the given windows on 2024-06-01.
func (s *BookingSuite) seed(capacity int, spans ...string) seeded {
	t := s.T()
	vendor, vendorTok := s.jwt.NewActor(t, actor.RoleVendor)
	off := builder.NewOfferingBuilder().WithVendor(vendor.ID)
	id := dbtest.CreateOffering(t, s.DB, off)
	dbtest.CreateRecurrence(t, s.DB, id, builder.Entry("2024-06-01", capacity, spans...))
	return seeded{offeringID: id, vendor: vendor, vendorTok: vendorTok}
}

func (s *BookingSuite) book(offeringID uuid.UUID, token, start, end string, method appointment.PaymentMethod) response.CreateAppointmentResponse {
	t := s.T()
	body := builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) {
		b.OfferingID = offeringID
		b.Start = start
		b.End = end
		b.PaymentMethod = method
	}).BuildCreateRequestDTO()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, body, token)
	var created response.CreateAppointmentResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	require.NotNil(t, created.Appointment)
	httptest.AssertHeaders(t, w, map[string]string{"Location": appointmentsURL + "/" + created.Appointment.ID.String()})
	return created
}

// =============================================================================
// TestGetSlots
// =============================================================================

func (s *BookingSuite) TestGetSlots() {
	s.Run("a booked single-seat slot disappears from the day", func() {
		t := s.T()
		seed := s.seed(1, "09:00-10:00")
		_, customerTok := s.jwt.NewActor(t, actor.RoleCustomer)
		url := fmt.Sprintf(slotsURL, seed.offeringID, "2024-06-01")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		var before response.DaySlotsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &before)
		want := response.DaySlotsResponse{"2024-06-01": {
			{Start: "09:00", End: "09:30", RemainingCapacity: 1},
			{Start: "09:30", End: "10:00", RemainingCapacity: 1},
		}}
		if diff := cmp.Diff(want, before); diff != "" {
			t.Fatalf("slots before booking (-want +got):\n%s", diff)
		}

		s.book(seed.offeringID, customerTok, "09:00", "09:30", appointment.PaymentMethodCash)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		var after response.DaySlotsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &after)
		want = response.DaySlotsResponse{"2024-06-01": {
			{Start: "09:30", End: "10:00", RemainingCapacity: 1},
		}}
		if diff := cmp.Diff(want, after); diff != "" {
			t.Fatalf("slots after booking (-want +got):\n%s", diff)
		}
	})

	s.Run("a day without windows returns an empty list", func() {
		t := s.T()
		seed := s.seed(2, "09:00-10:00")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(slotsURL, seed.offeringID, "2024-06-02"), nil, "")
		var body map[string][]queries.SlotView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.NotNil(t, body["2024-06-02"])
		require.Empty(t, body["2024-06-02"])
	})

	s.Run("unknown offering is 404", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(slotsURL, uuid.New(), "2024-06-01"), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "offering not found")
	})
}

// =============================================================================
// TestCreateAppointment
// =============================================================================

func (s *BookingSuite) TestCreateAppointment() {
	s.Run("second booking of a single-seat slot is rejected", func() {
		t := s.T()
		seed := s.seed(1, "09:00-10:00")
		_, aliceTok := s.jwt.NewActor(t, actor.RoleCustomer)
		_, bobTok := s.jwt.NewActor(t, actor.RoleCustomer)

		s.book(seed.offeringID, aliceTok, "09:00", "09:30", appointment.PaymentMethodCash)

		body := builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) {
			b.OfferingID = seed.offeringID
		}).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, body, bobTok)
		httptest.AssertConflictResponse(t, w, "slot_fully_booked")
		require.Equal(t, 1, dbtest.CountAppointments(t, s.DB, seed.offeringID, "pending"))
	})

	s.Run("card booking returns a payment intent", func() {
		t := s.T()
		seed := s.seed(1, "09:00-10:00")
		_, customerTok := s.jwt.NewActor(t, actor.RoleCustomer)

		created := s.book(seed.offeringID, customerTok, "09:00", "09:30", appointment.PaymentMethodCard)
		require.NotNil(t, created.Payment)
		require.NotEmpty(t, created.Payment.IntentID)
		require.NotEmpty(t, created.Payment.ClientSecret)
		require.Equal(t, "pending", created.Appointment.PaymentStatus)
	})
}

// =============================================================================
// TestCancelAppointment
// =============================================================================

func (s *BookingSuite) TestCancelAppointment() {
	s.Run("cancelling a paid booking 5 hours ahead refunds half", func() {
		t := s.T()
		seed := s.seed(1, "13:00-14:00")
		_, customerTok := s.jwt.NewActor(t, actor.RoleCustomer)

		created := s.book(seed.offeringID, customerTok, "13:00", "13:30", appointment.PaymentMethodCard)
		id := created.Appointment.ID.String()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL+"/"+id+"/payment", nil, seed.vendorTok)
		var paid queries.AppointmentView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &paid)
		require.Equal(t, "confirmed", paid.Status)
		require.Equal(t, "paid", paid.PaymentStatus)

		// 2024-06-01 08:00 is five hours before the 13:00 start
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, appointmentsURL+"/"+id+"/cancellation-preview", nil, customerTok)
		var preview queries.CancellationPreview
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &preview)
		require.Equal(t, 50, preview.RefundPercentage)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL+"/"+id+"/cancel", map[string]string{"reason": "plans changed"}, customerTok)
		var cancelled response.CancelAppointmentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cancelled)
		require.Equal(t, "cancelled", cancelled.Appointment.Status)
		require.Equal(t, 50, cancelled.Refund.Percentage)
		require.Equal(t, int64(50), cancelled.Refund.Amount)
		require.Equal(t, "partially_refunded", cancelled.Appointment.PaymentStatus)

		refunds := s.Payments.Refunds()
		require.Len(t, refunds, 1)
		require.NotNil(t, refunds[0].Amount)
		require.Equal(t, int64(50), *refunds[0].Amount)
		require.Equal(t, "refund:"+id, refunds[0].IdempotencyKey)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL+"/"+id+"/cancel", nil, customerTok)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("cancelled booking frees its capacity", func() {
		t := s.T()
		seed := s.seed(1, "09:00-09:30")
		_, aliceTok := s.jwt.NewActor(t, actor.RoleCustomer)
		_, bobTok := s.jwt.NewActor(t, actor.RoleCustomer)

		created := s.book(seed.offeringID, aliceTok, "09:00", "09:30", appointment.PaymentMethodCash)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL+"/"+created.Appointment.ID.String()+"/cancel", nil, aliceTok)
		var cancelled response.CancelAppointmentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cancelled)
		require.Equal(t, "not_applicable", cancelled.Refund.Status)

		s.book(seed.offeringID, bobTok, "09:00", "09:30", appointment.PaymentMethodCash)
	})

	s.Run("another customer cannot cancel", func() {
		t := s.T()
		seed := s.seed(1, "09:00-09:30")
		_, aliceTok := s.jwt.NewActor(t, actor.RoleCustomer)
		_, bobTok := s.jwt.NewActor(t, actor.RoleCustomer)

		created := s.book(seed.offeringID, aliceTok, "09:00", "09:30", appointment.PaymentMethodCash)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL+"/"+created.Appointment.ID.String()+"/cancel", nil, bobTok)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Forbidden")
	})
}

// =============================================================================
// TestLifecycle
// =============================================================================

func (s *BookingSuite) TestLifecycle() {
	s.Run("vendor confirms, customer reschedules into a free slot", func() {
		t := s.T()
		seed := s.seed(1, "09:00-10:00")
		_, customerTok := s.jwt.NewActor(t, actor.RoleCustomer)

		created := s.book(seed.offeringID, customerTok, "09:00", "09:30", appointment.PaymentMethodCash)
		id := created.Appointment.ID.String()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL+"/"+id+"/confirm", nil, seed.vendorTok)
		var confirmed queries.AppointmentView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &confirmed)
		require.Equal(t, "confirmed", confirmed.Status)

		body := map[string]string{"date": "2024-06-01", "start": "09:30", "end": "10:00"}
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, appointmentsURL+"/"+id+"/schedule", body, customerTok)
		var moved queries.AppointmentView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &moved)
		require.Equal(t, "09:30", moved.Start)
		require.Equal(t, "confirmed", moved.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(slotsURL, seed.offeringID, "2024-06-01"), nil, "")
		var day response.DaySlotsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &day)
		require.Equal(t, []queries.SlotView{{Start: "09:00", End: "09:30", RemainingCapacity: 1}}, day["2024-06-01"])
	})

	s.Run("admin overrides a confirmed visit to missed", func() {
		t := s.T()
		seed := s.seed(1, "09:00-10:00")
		_, customerTok := s.jwt.NewActor(t, actor.RoleCustomer)
		_, adminTok := s.jwt.NewActor(t, actor.RoleAdmin)

		created := s.book(seed.offeringID, customerTok, "09:00", "09:30", appointment.PaymentMethodCash)
		id := created.Appointment.ID.String()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL+"/"+id+"/confirm", nil, seed.vendorTok)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		s.Clock.Add(3 * time.Hour)
		body := map[string]string{"status": "missed", "reason": "customer did not show up"}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL+"/"+id+"/status", body, adminTok)
		var overridden queries.AppointmentView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &overridden)
		require.Equal(t, "missed", overridden.Status)
		require.NotNil(t, overridden.StatusReason)
	})
}
