package eventbus

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go-affiliate/internal/shared/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type EventBusTestSuite struct {
	suite.Suite
	sut    *EventBus
	logger watermill.LoggerAdapter
}

func TestEventBusTestSuite(t *testing.T) {
	suite.Run(t, new(EventBusTestSuite))
}

func (s *EventBusTestSuite) SetupTest() {
	s.logger = watermill.NopLogger{}
	s.sut = NewEventBus(s.logger)
}

func (s *EventBusTestSuite) TearDownTest() {
	if s.sut != nil {
		s.sut.Close()
	}
}

func (s *EventBusTestSuite) TestClickToMessage() {
	// Arrange
	evt := events.ClickEvent{OfferID: "o1", SubID: "s1_o1", OccurredAt: time.UnixMilli(1700000000000).UTC()}

	// Act
	msg, err := ClickToMessage(evt)

	// Assert
	s.NoError(err)
	s.NotEmpty(msg.UUID)
	s.Equal("click.recorded", msg.Metadata.Get("event_name"))
	s.Equal("o1", msg.Metadata.Get("offer_id"))
}

func (s *EventBusTestSuite) TestMessageToClick() {
	// Arrange
	evt := events.ClickEvent{
		OfferID:    "o1",
		SubID:      "o1:p1:1700000000000",
		ProductID:  lo.ToPtr("p1"),
		OccurredAt: time.UnixMilli(1700000000000).UTC(),
	}
	msg, err := ClickToMessage(evt)
	s.Require().NoError(err)

	// Act
	got, err := MessageToClick(msg)

	// Assert
	s.NoError(err)
	s.Equal(evt, got)
}

func (s *EventBusTestSuite) TestMessageToClick_InvalidPayload() {
	// Arrange
	msg := message.NewMessage("id", []byte("not json"))

	// Act
	_, err := MessageToClick(msg)

	// Assert
	s.Error(err)
}

func (s *EventBusTestSuite) TestConsume_DeliversPublishedClicks() {
	// Arrange
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan events.ClickEvent, 1)
	err := s.sut.Consume(ctx, ClicksTopic, func(msg *message.Message) error {
		e, err := MessageToClick(msg)
		if err != nil {
			return err
		}
		received <- e
		return nil
	})
	s.Require().NoError(err)

	msg, err := ClickToMessage(events.ClickEvent{OfferID: "o1", SubID: "s1"})
	s.Require().NoError(err)

	// Act
	s.Require().NoError(s.sut.Publisher().Publish(ClicksTopic, msg))

	// Assert
	select {
	case e := <-received:
		s.Equal("s1", e.SubID)
	case <-time.After(2 * time.Second):
		s.Fail("click was not delivered")
	}
}

func (s *EventBusTestSuite) TestConsume_HandlerErrorStillAcks() {
	// Arrange
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	err := s.sut.Consume(ctx, ClicksTopic, func(*message.Message) error {
		calls.Add(1)
		return errors.New("store down")
	})
	s.Require().NoError(err)

	// Act
	for i := 0; i < 2; i++ {
		msg, err := ClickToMessage(events.ClickEvent{OfferID: "o1"})
		s.Require().NoError(err)
		s.Require().NoError(s.sut.Publisher().Publish(ClicksTopic, msg))
	}

	// Assert
	s.Eventually(func() bool { return calls.Load() == 2 }, 2*time.Second, 10*time.Millisecond)
}

func (s *EventBusTestSuite) TestPublishClick_ReachesConsumeClicks() {
	// Arrange
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan events.ClickEvent, 1)
	s.Require().NoError(s.sut.ConsumeClicks(ctx, func(_ context.Context, e events.ClickEvent) error {
		received <- e
		return nil
	}))

	// Act
	err := s.sut.PublishClick(ctx, events.ClickEvent{OfferID: "o9", SubID: "s9_o9"})

	// Assert
	s.NoError(err)
	select {
	case e := <-received:
		s.Equal("o9", e.OfferID)
	case <-time.After(2 * time.Second):
		s.Fail("click was not delivered")
	}
}

// TestZapLoggerAdapter_With verifies the adapter keeps fields across With
func TestZapLoggerAdapter_With(t *testing.T) {
	logger := NewZapLoggerAdapter(zap.NewNop())

	child := logger.With(watermill.LogFields{"topic": ClicksTopic})

	child.Info("subscribed", nil)
	child.Error("failed", errors.New("boom"), watermill.LogFields{"attempt": 1})

	assert.IsType(t, &ZapLoggerAdapter{}, child)
}
