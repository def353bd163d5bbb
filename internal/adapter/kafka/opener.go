package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/storm-data-web/internal/config"
	"github.com/couchcryptid/storm-data-web/internal/domain"
	"github.com/couchcryptid/storm-data-web/internal/mapnav"
	kafkago "github.com/segmentio/kafka-go"
)

// messageWriter is the subset of *kafkago.Writer the opener needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Opener pushes map URLs to the navigation topic, where the user's connected
// clients pick them up and open them. It implements mapnav.Opener.
type Opener struct {
	writer messageWriter
	logger *slog.Logger
}

// NewOpener creates a Kafka producer for the configured navigation topic.
func NewOpener(cfg *config.Config, logger *slog.Logger) *Opener {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaNavigationTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Opener{writer: w, logger: logger}
}

// Open publishes one navigation event for target.
func (o *Opener) Open(ctx context.Context, target mapnav.Target) error {
	event := domain.NewNavigationEvent(target.URL, target.Kind)
	msg, err := serializeToMessage(event)
	if err != nil {
		return err
	}
	if err := o.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish navigation: %w", err)
	}
	o.logger.Debug("navigation published", "kind", event.Kind)
	return nil
}

func (o *Opener) Close() error {
	return o.writer.Close()
}

// serializeToMessage marshals a NavigationEvent into a Kafka message.
func serializeToMessage(event domain.NavigationEvent) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize navigation event: %w", err)
	}
	return kafkago.Message{
		Value: data,
		Time:  event.OpenedAt,
		Headers: []kafkago.Header{
			{Key: "kind", Value: []byte(event.Kind)},
			{Key: "opened_at", Value: []byte(event.OpenedAt.Format(time.RFC3339))},
		},
	}, nil
}
