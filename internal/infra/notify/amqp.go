package notify

import (
	"context"
	"encoding/json"

	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPNotifier publishes events to a topic exchange; the routing key is the event type.
type AMQPNotifier struct {
	conn     *amqp.Connection
	ch       amqpChannel
	exchange string
}

func NewAMQPNotifier(url, exchange string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "declare exchange")
	}
	return &AMQPNotifier{conn: conn, ch: ch, exchange: exchange}, nil
}

func (n *AMQPNotifier) Publish(ctx context.Context, e shared.Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return errs.Wrap(err, "marshal event")
	}
	err = n.ch.PublishWithContext(ctx, n.exchange, e.Type, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    e.AppointmentID.String() + ":" + e.Type,
		Timestamp:    e.OccurredAt,
		Body:         body,
	})
	return errs.Wrapf(err, "publish %s", e.Type)
}

func (n *AMQPNotifier) Close() error {
	if n.ch != nil {
		_ = n.ch.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}
