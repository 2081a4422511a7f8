//go:build unit

package payment

import (
	"context"
	"errors"
	"testing"

	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"
)

type fakeIntents struct {
	created   *stripe.PaymentIntentParams
	cancelled string
	err       error
}

func (f *fakeIntents) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	f.created = params
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret"}, nil
}

func (f *fakeIntents) Cancel(id string, _ *stripe.PaymentIntentCancelParams) (*stripe.PaymentIntent, error) {
	f.cancelled = id
	return &stripe.PaymentIntent{ID: id}, f.err
}

type fakeRefunds struct {
	params *stripe.RefundParams
	err    error
}

func (f *fakeRefunds) New(params *stripe.RefundParams) (*stripe.Refund, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	amount := int64(100)
	if params.Amount != nil {
		amount = *params.Amount
	}
	return &stripe.Refund{ID: "re_1", Status: stripe.RefundStatusSucceeded, Amount: amount}, nil
}

func TestStripeGateway_CreatePaymentIntent(t *testing.T) {
	intents := &fakeIntents{}
	g := &StripeGateway{intents: intents, refunds: &fakeRefunds{}}

	pi, err := g.CreatePaymentIntent(context.Background(), shared.PaymentIntentRequest{
		Amount:         2500,
		Currency:       "usd",
		Metadata:       map[string]string{"appointment_id": "a1"},
		IdempotencyKey: "appointment:c:k",
	})

	require.NoError(t, err)
	assert.Equal(t, "pi_123", pi.ID)
	assert.Equal(t, "pi_123_secret", pi.ClientSecret)
	require.NotNil(t, intents.created)
	assert.Equal(t, int64(2500), *intents.created.Amount)
	assert.Equal(t, "usd", *intents.created.Currency)
	assert.Equal(t, "appointment:c:k", *intents.created.IdempotencyKey)
	assert.Equal(t, "a1", intents.created.Metadata["appointment_id"])
}

func TestStripeGateway_CreatePaymentIntent_Failure(t *testing.T) {
	g := &StripeGateway{intents: &fakeIntents{err: errors.New("card declined")}, refunds: &fakeRefunds{}}

	_, err := g.CreatePaymentIntent(context.Background(), shared.PaymentIntentRequest{Amount: 1, Currency: "usd"})

	require.Error(t, err)
	assert.True(t, errs.Is(err, shared.ErrPaymentFailed))
	assert.True(t, errs.Is(err, shared.ErrUpstream))
}

func TestStripeGateway_Refund(t *testing.T) {
	t.Run("partial refund sends explicit amount", func(t *testing.T) {
		refunds := &fakeRefunds{}
		g := &StripeGateway{intents: &fakeIntents{}, refunds: refunds}
		amount := int64(50)

		res, err := g.Refund(context.Background(), shared.RefundRequest{
			PaymentIntentID: "pi_1",
			Amount:          &amount,
			IdempotencyKey:  "refund:a1",
		})

		require.NoError(t, err)
		assert.Equal(t, "re_1", res.ID)
		assert.Equal(t, "succeeded", res.Status)
		assert.Equal(t, int64(50), res.Amount)
		assert.Equal(t, "pi_1", *refunds.params.PaymentIntent)
		assert.Equal(t, "refund:a1", *refunds.params.IdempotencyKey)
	})

	t.Run("full refund omits amount", func(t *testing.T) {
		refunds := &fakeRefunds{}
		g := &StripeGateway{intents: &fakeIntents{}, refunds: refunds}

		_, err := g.Refund(context.Background(), shared.RefundRequest{PaymentIntentID: "pi_1"})

		require.NoError(t, err)
		assert.Nil(t, refunds.params.Amount)
	})

	t.Run("failure is an upstream error", func(t *testing.T) {
		g := &StripeGateway{intents: &fakeIntents{}, refunds: &fakeRefunds{err: errors.New("timeout")}}

		_, err := g.Refund(context.Background(), shared.RefundRequest{PaymentIntentID: "pi_1"})

		assert.True(t, errs.Is(err, shared.ErrRefundFailed))
		assert.True(t, errs.Is(err, shared.ErrUpstream))
	})
}

func TestDisabledGateway(t *testing.T) {
	var g DisabledGateway

	_, err := g.CreatePaymentIntent(context.Background(), shared.PaymentIntentRequest{})

	assert.True(t, errs.Is(err, shared.ErrPaymentsDisabled))
	assert.True(t, errs.Is(err, shared.ErrUpstream))
}
