package payment

import (
	"context"
	"log/slog"

	"booking-engine/internal/usecase/shared"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

type paymentIntentAPI interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	Cancel(id string, params *stripe.PaymentIntentCancelParams) (*stripe.PaymentIntent, error)
}

type refundAPI interface {
	New(params *stripe.RefundParams) (*stripe.Refund, error)
}

// StripeGateway creates payment intents and refunds. Every mutating call
// carries an idempotency key so a retried request never charges or refunds twice.
type StripeGateway struct {
	intents paymentIntentAPI
	refunds refundAPI
}

func NewStripeGateway(secretKey string) *StripeGateway {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &StripeGateway{intents: sc.PaymentIntents, refunds: sc.Refunds}
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, req shared.PaymentIntentRequest) (*shared.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.intents.New(params)
	if err != nil {
		slog.WarnContext(ctx, "stripe payment intent create failed", "error", err.Error())
		return nil, shared.Because(shared.ErrPaymentFailed, err, "stripe payment intent")
	}
	return &shared.PaymentIntent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

func (g *StripeGateway) CancelPaymentIntent(ctx context.Context, id string) error {
	params := &stripe.PaymentIntentCancelParams{}
	params.Context = ctx
	if _, err := g.intents.Cancel(id, params); err != nil {
		return shared.Because(shared.ErrPaymentFailed, err, "stripe payment intent cancel")
	}
	return nil
}

func (g *StripeGateway) Refund(ctx context.Context, req shared.RefundRequest) (*shared.RefundResult, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(req.PaymentIntentID),
	}
	if req.Amount != nil {
		params.Amount = stripe.Int64(*req.Amount)
	}
	params.Context = ctx
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	r, err := g.refunds.New(params)
	if err != nil {
		slog.WarnContext(ctx, "stripe refund failed", "payment_intent_id", req.PaymentIntentID, "error", err.Error())
		return nil, shared.Because(shared.ErrRefundFailed, err, "stripe refund")
	}
	return &shared.RefundResult{ID: r.ID, Status: string(r.Status), Amount: r.Amount}, nil
}

// DisabledGateway is used when no Stripe key is configured. Card bookings are
// rejected; cash bookings never reach it.
type DisabledGateway struct{}

func (DisabledGateway) CreatePaymentIntent(context.Context, shared.PaymentIntentRequest) (*shared.PaymentIntent, error) {
	return nil, shared.ErrPaymentsDisabled
}

func (DisabledGateway) CancelPaymentIntent(context.Context, string) error {
	return shared.ErrPaymentsDisabled
}

func (DisabledGateway) Refund(context.Context, shared.RefundRequest) (*shared.RefundResult, error) {
	return nil, shared.ErrPaymentsDisabled
}
