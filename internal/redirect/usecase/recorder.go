package usecase

import (
	"context"
	"errors"
	"time"

	"go-affiliate/internal/metrics"
	"go-affiliate/internal/redirect/domain"
	"go-affiliate/internal/shared/events"

	"go.uber.org/zap"
)

// DefaultRecordTimeout bounds one click insert.
const DefaultRecordTimeout = 1500 * time.Millisecond

// RecordResult is the outcome of a best-effort click write.
type RecordResult int

const (
	RecordOK RecordResult = iota
	RecordConflict
	RecordStoreError
	RecordSkipped
	RecordQueued
)

func (r RecordResult) String() string {
	switch r {
	case RecordOK:
		return "ok"
	case RecordConflict:
		return "conflict"
	case RecordStoreError:
		return "store_error"
	case RecordSkipped:
		return "skipped"
	case RecordQueued:
		return "queued"
	default:
		return "unknown"
	}
}

// Recorder persists a click without ever failing the redirect.
type Recorder interface {
	Record(ctx context.Context, click *domain.Click) RecordResult
}

// ClickRecorder writes clicks synchronously with a bounded timeout.
type ClickRecorder struct {
	store   ClickStore
	timeout time.Duration
	logger  *zap.Logger
}

var _ Recorder = (*ClickRecorder)(nil)

// NewClickRecorder creates a recorder. A non-positive timeout uses
// DefaultRecordTimeout.
func NewClickRecorder(store ClickStore, timeout time.Duration, logger *zap.Logger) *ClickRecorder {
	if timeout <= 0 {
		timeout = DefaultRecordTimeout
	}
	return &ClickRecorder{
		store:   store,
		timeout: timeout,
		logger:  logger,
	}
}

// Record inserts the click once. The insert survives client disconnects but
// not the timeout. Errors are logged and reported through the result.
func (r *ClickRecorder) Record(ctx context.Context, click *domain.Click) RecordResult {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
	defer cancel()

	result := RecordOK
	if err := r.store.InsertClick(ctx, click); err != nil {
		if errors.Is(err, domain.ErrSubIDConflict) {
			result = RecordConflict
			r.logger.Warn("click subid conflict",
				zap.String("offer_id", click.OfferID),
				zap.String("subid", click.SubID),
			)
		} else {
			result = RecordStoreError
			r.logger.Error("failed to record click",
				zap.String("offer_id", click.OfferID),
				zap.String("subid", click.SubID),
				zap.Error(err),
			)
		}
	}

	metrics.ClicksRecorded.WithLabelValues(result.String()).Inc()
	return result
}

// AsyncClickRecorder queues clicks for a ClickConsumer and returns at once.
type AsyncClickRecorder struct {
	publisher ClickPublisher
	logger    *zap.Logger
}

var _ Recorder = (*AsyncClickRecorder)(nil)

// NewAsyncClickRecorder creates a recorder publishing to publisher.
func NewAsyncClickRecorder(publisher ClickPublisher, logger *zap.Logger) *AsyncClickRecorder {
	return &AsyncClickRecorder{
		publisher: publisher,
		logger:    logger,
	}
}

// Record publishes the click. A failed publish loses the click.
func (r *AsyncClickRecorder) Record(ctx context.Context, click *domain.Click) RecordResult {
	if err := r.publisher.PublishClick(ctx, clickToEvent(click)); err != nil {
		r.logger.Error("failed to queue click",
			zap.String("offer_id", click.OfferID),
			zap.String("subid", click.SubID),
			zap.Error(err),
		)
		metrics.ClicksRecorded.WithLabelValues(RecordStoreError.String()).Inc()
		return RecordStoreError
	}
	return RecordQueued
}

// ClickConsumer persists queued clicks through a synchronous recorder.
type ClickConsumer struct {
	recorder *ClickRecorder
}

// NewClickConsumer creates a consumer writing through recorder.
func NewClickConsumer(recorder *ClickRecorder) *ClickConsumer {
	return &ClickConsumer{recorder: recorder}
}

// HandleClick records one queued click. Store failures are already logged
// by the recorder and are not retried.
func (c *ClickConsumer) HandleClick(ctx context.Context, e events.ClickEvent) error {
	c.recorder.Record(ctx, eventToClick(e))
	return nil
}

func clickToEvent(c *domain.Click) events.ClickEvent {
	occurredAt := c.CreatedAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}
	return events.ClickEvent{
		OfferID:    c.OfferID,
		SubID:      c.SubID,
		IPHash:     c.IPHash,
		UserAgent:  c.UserAgent,
		Referer:    c.Referer,
		ProductID:  c.ProductID,
		MerchantID: c.MerchantID,
		Country:    c.Country,
		OccurredAt: occurredAt,
	}
}

func eventToClick(e events.ClickEvent) *domain.Click {
	return &domain.Click{
		OfferID:    e.OfferID,
		SubID:      e.SubID,
		IPHash:     e.IPHash,
		UserAgent:  e.UserAgent,
		Referer:    e.Referer,
		ProductID:  e.ProductID,
		MerchantID: e.MerchantID,
		Country:    e.Country,
		CreatedAt:  e.OccurredAt,
	}
}
