//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"sync"

	"booking-engine/internal/usecase/shared"
)

// FakePayments stands in for Stripe and records every call.
type FakePayments struct {
	mu        sync.Mutex
	intents   map[string]shared.PaymentIntentRequest
	cancelled []string
	refunds   []shared.RefundRequest
}

func NewFakePayments() *FakePayments {
	return &FakePayments{intents: map[string]shared.PaymentIntentRequest{}}
}

func (f *FakePayments) CreatePaymentIntent(_ context.Context, req shared.PaymentIntentRequest) (*shared.PaymentIntent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := fmt.Sprintf("pi_test_%d", len(f.intents)+1)
	f.intents[id] = req
	return &shared.PaymentIntent{ID: id, ClientSecret: id + "_secret"}, nil
}

func (f *FakePayments) CancelPaymentIntent(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, id)
	return nil
}

func (f *FakePayments) Refund(_ context.Context, req shared.RefundRequest) (*shared.RefundResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refunds = append(f.refunds, req)

	amount := f.intents[req.PaymentIntentID].Amount
	if req.Amount != nil {
		amount = *req.Amount
	}
	return &shared.RefundResult{ID: fmt.Sprintf("re_test_%d", len(f.refunds)), Status: "succeeded", Amount: amount}, nil
}

func (f *FakePayments) Refunds() []shared.RefundRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]shared.RefundRequest(nil), f.refunds...)
}

func (f *FakePayments) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.intents = map[string]shared.PaymentIntentRequest{}
	f.cancelled = nil
	f.refunds = nil
}
