package notify

import (
	"context"
	"encoding/json"
	"strings"

	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier writes events to one topic keyed by appointment id, so events
// of one appointment stay ordered within a partition.
type KafkaNotifier struct {
	writer messageWriter
}

func NewKafkaNotifier(brokers, topic string) *KafkaNotifier {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(SplitBrokers(brokers)...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return &KafkaNotifier{writer: w}
}

func (n *KafkaNotifier) Publish(ctx context.Context, e shared.Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return errs.Wrap(err, "marshal event")
	}
	msg := kafka.Message{
		Key:   []byte(e.AppointmentID.String()),
		Value: body,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(e.Type)},
		},
	}
	return errs.Wrapf(n.writer.WriteMessages(ctx, msg), "write %s", e.Type)
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}

func SplitBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
