package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"booking-engine/internal/infra/notify"
	"booking-engine/internal/infra/payment"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/pkg/config"
	"booking-engine/internal/pkg/metrics"
	"booking-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		clock.NewRealClock,
		metrics.New,
		NewPaymentGateway,
		NewNotifier,
		fx.Annotate(
			NewDispatcher,
			fx.As(new(shared.Dispatcher)),
		),
	),
)

const (
	notifyTransportLog      = "log"
	notifyTransportRabbitMQ = "rabbitmq"
	notifyTransportKafka    = "kafka"
)

// NewPaymentGateway falls back to a gateway that rejects card payments when no
// Stripe key is configured.
func NewPaymentGateway(cfg config.Config, logger *slog.Logger) shared.PaymentGateway {
	if cfg.Stripe.SecretKey == "" {
		logger.Warn("STRIPE_SECRET_KEY is empty, card payments are disabled")
		return payment.DisabledGateway{}
	}
	return payment.NewStripeGateway(cfg.Stripe.SecretKey)
}

type closer interface {
	Close() error
}

func NewNotifier(lc fx.Lifecycle, cfg config.Config) (shared.Notifier, error) {
	var n shared.Notifier
	switch strings.ToLower(cfg.Notify.Transport) {
	case notifyTransportLog, "":
		return notify.LogNotifier{}, nil
	case notifyTransportRabbitMQ:
		amqpNotifier, err := notify.NewAMQPNotifier(cfg.Notify.AMQPURL, cfg.Notify.AMQPExchange)
		if err != nil {
			return nil, err
		}
		n = amqpNotifier
	case notifyTransportKafka:
		n = notify.NewKafkaNotifier(cfg.Notify.KafkaBrokers, cfg.Notify.KafkaTopic)
	default:
		return nil, fmt.Errorf("NOTIFY_TRANSPORT must be %q, %q or %q (got %q)",
			notifyTransportLog, notifyTransportRabbitMQ, notifyTransportKafka, cfg.Notify.Transport)
	}

	if c, ok := n.(closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return c.Close()
			},
		})
	}
	return n, nil
}

// NewDispatcher waits for in-flight notifications before the transport closes.
func NewDispatcher(lc fx.Lifecycle, n shared.Notifier, cfg config.Config) *notify.Dispatcher {
	d := notify.NewDispatcher(n, cfg.Notify.Timeout)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return d.Wait(ctx)
		},
	})
	return d
}
