package eventbus

import (
	"context"
	"encoding/json"

	"go-affiliate/internal/shared/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

const (
	// ClicksTopic carries clicks waiting to be persisted.
	ClicksTopic = "clicks.recorded"

	eventNameClick = "click.recorded"
)

// EventBus wraps an in-process Watermill GoChannel.
type EventBus struct {
	pubsub *gochannel.GoChannel
	logger watermill.LoggerAdapter
}

// NewEventBus creates a non-persistent event bus. Publishing does not wait
// for subscribers to acknowledge.
func NewEventBus(logger watermill.LoggerAdapter) *EventBus {
	pubsub := gochannel.NewGoChannel(
		gochannel.Config{
			OutputChannelBuffer: 1024,
			Persistent:          false,
		},
		logger,
	)

	return &EventBus{
		pubsub: pubsub,
		logger: logger,
	}
}

// Publisher returns the Watermill publisher.
func (b *EventBus) Publisher() message.Publisher {
	return b.pubsub
}

// Consume subscribes to topic and calls handle for every message until ctx
// is done or the bus is closed. Messages are acked whatever handle returns:
// delivery is at-most-once.
func (b *EventBus) Consume(ctx context.Context, topic string, handle func(*message.Message) error) error {
	messages, err := b.pubsub.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			if err := handle(msg); err != nil {
				b.logger.Error("failed to handle message", err, watermill.LogFields{
					"topic":      topic,
					"message_id": msg.UUID,
				})
			}
			msg.Ack()
		}
	}()

	return nil
}

// PublishClick publishes a click on ClicksTopic. It does not wait for the
// consumer.
func (b *EventBus) PublishClick(_ context.Context, e events.ClickEvent) error {
	msg, err := ClickToMessage(e)
	if err != nil {
		return err
	}
	return b.pubsub.Publish(ClicksTopic, msg)
}

// ConsumeClicks decodes every message on ClicksTopic and passes it to handle.
func (b *EventBus) ConsumeClicks(ctx context.Context, handle func(context.Context, events.ClickEvent) error) error {
	return b.Consume(ctx, ClicksTopic, func(msg *message.Message) error {
		e, err := MessageToClick(msg)
		if err != nil {
			return err
		}
		return handle(msg.Context(), e)
	})
}

// Close closes the event bus and ends every Consume loop.
func (b *EventBus) Close() error {
	return b.pubsub.Close()
}

// ClickToMessage converts a click event to a Watermill message.
func ClickToMessage(e events.ClickEvent) (*message.Message, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}

	msg := message.NewMessage(uuid.Must(uuid.NewV7()).String(), payload)
	msg.Metadata.Set("event_name", eventNameClick)
	msg.Metadata.Set("offer_id", e.OfferID)

	return msg, nil
}

// MessageToClick extracts the click event from a Watermill message.
func MessageToClick(msg *message.Message) (events.ClickEvent, error) {
	var e events.ClickEvent
	if err := json.Unmarshal(msg.Payload, &e); err != nil {
		return events.ClickEvent{}, err
	}
	return e, nil
}
