package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go-affiliate/internal/redirect/domain"
	"go-affiliate/internal/redirect/testutil/mocks"
	"go-affiliate/internal/redirect/usecase"
	"go-affiliate/internal/shared/events"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClick() *domain.Click {
	return &domain.Click{
		OfferID:   "o1",
		SubID:     "s1_o1_web_pos1",
		IPHash:    "hash",
		UserAgent: "Mozilla/5.0",
	}
}

// TestClickRecorder_Record_OK verifies a successful insert
func TestClickRecorder_Record_OK(t *testing.T) {
	// Setup
	store := mocks.NewMockClickStore(t)
	recorder := usecase.NewClickRecorder(store, time.Second, zap.NewNop())
	click := testClick()

	store.EXPECT().InsertClick(mock.Anything, click).Return(nil)

	// Act
	result := recorder.Record(context.Background(), click)

	// Assert
	assert.Equal(t, usecase.RecordOK, result)
}

// TestClickRecorder_Record_Conflict verifies unique violations are classified and swallowed
func TestClickRecorder_Record_Conflict(t *testing.T) {
	// Setup
	store := mocks.NewMockClickStore(t)
	recorder := usecase.NewClickRecorder(store, time.Second, zap.NewNop())

	store.EXPECT().InsertClick(mock.Anything, mock.Anything).
		Return(fmt.Errorf("insert click: %w", domain.ErrSubIDConflict))

	// Act
	result := recorder.Record(context.Background(), testClick())

	// Assert
	assert.Equal(t, usecase.RecordConflict, result)
}

// TestClickRecorder_Record_StoreError verifies other failures are swallowed
func TestClickRecorder_Record_StoreError(t *testing.T) {
	// Setup
	store := mocks.NewMockClickStore(t)
	recorder := usecase.NewClickRecorder(store, time.Second, zap.NewNop())

	store.EXPECT().InsertClick(mock.Anything, mock.Anything).Return(errors.New("database is locked"))

	// Act
	result := recorder.Record(context.Background(), testClick())

	// Assert
	assert.Equal(t, usecase.RecordStoreError, result)
}

// TestClickRecorder_Record_SlowStore_TimesOut verifies the insert is bounded
func TestClickRecorder_Record_SlowStore_TimesOut(t *testing.T) {
	// Setup
	store := mocks.NewMockClickStore(t)
	recorder := usecase.NewClickRecorder(store, 50*time.Millisecond, zap.NewNop())

	store.EXPECT().InsertClick(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *domain.Click) error {
			<-ctx.Done()
			return ctx.Err()
		})

	// Act
	start := time.Now()
	result := recorder.Record(context.Background(), testClick())

	// Assert
	assert.Equal(t, usecase.RecordStoreError, result)
	assert.Less(t, time.Since(start), time.Second)
}

// TestClickRecorder_Record_CanceledRequest_StillInserts verifies client disconnects do not abort the write
func TestClickRecorder_Record_CanceledRequest_StillInserts(t *testing.T) {
	// Setup
	store := mocks.NewMockClickStore(t)
	recorder := usecase.NewClickRecorder(store, time.Second, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store.EXPECT().InsertClick(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *domain.Click) error {
			return ctx.Err()
		})

	// Act
	result := recorder.Record(ctx, testClick())

	// Assert
	assert.Equal(t, usecase.RecordOK, result)
}

// TestRecordResult_String verifies metric labels
func TestRecordResult_String(t *testing.T) {
	assert.Equal(t, "ok", usecase.RecordOK.String())
	assert.Equal(t, "conflict", usecase.RecordConflict.String())
	assert.Equal(t, "store_error", usecase.RecordStoreError.String())
	assert.Equal(t, "skipped", usecase.RecordSkipped.String())
	assert.Equal(t, "queued", usecase.RecordQueued.String())
	assert.Equal(t, "unknown", usecase.RecordResult(99).String())
}

// TestAsyncClickRecorder_Record_Queues verifies the click is published with all fields
func TestAsyncClickRecorder_Record_Queues(t *testing.T) {
	// Setup
	publisher := mocks.NewMockClickPublisher(t)
	recorder := usecase.NewAsyncClickRecorder(publisher, zap.NewNop())
	click := testClick()
	click.ProductID = lo.ToPtr("p1")
	click.Country = "VN"

	publisher.EXPECT().PublishClick(mock.Anything, mock.MatchedBy(func(e events.ClickEvent) bool {
		return e.OfferID == "o1" &&
			e.SubID == click.SubID &&
			e.ProductID != nil && *e.ProductID == "p1" &&
			e.Country == "VN" &&
			!e.OccurredAt.IsZero()
	})).Return(nil)

	// Act
	result := recorder.Record(context.Background(), click)

	// Assert
	assert.Equal(t, usecase.RecordQueued, result)
}

// TestAsyncClickRecorder_Record_PublishError verifies publish failures are reported, not raised
func TestAsyncClickRecorder_Record_PublishError(t *testing.T) {
	// Setup
	publisher := mocks.NewMockClickPublisher(t)
	recorder := usecase.NewAsyncClickRecorder(publisher, zap.NewNop())

	publisher.EXPECT().PublishClick(mock.Anything, mock.Anything).Return(errors.New("pubsub closed"))

	// Act
	result := recorder.Record(context.Background(), testClick())

	// Assert
	assert.Equal(t, usecase.RecordStoreError, result)
}

// TestClickConsumer_HandleClick_PersistsEvent verifies queued clicks reach the store
func TestClickConsumer_HandleClick_PersistsEvent(t *testing.T) {
	// Setup
	store := mocks.NewMockClickStore(t)
	consumer := usecase.NewClickConsumer(usecase.NewClickRecorder(store, time.Second, zap.NewNop()))

	store.EXPECT().InsertClick(mock.Anything, mock.MatchedBy(func(c *domain.Click) bool {
		return c.OfferID == "o1" && c.SubID == "s1" && c.MerchantID != nil && *c.MerchantID == "m1"
	})).Return(nil)

	// Act
	err := consumer.HandleClick(context.Background(), events.ClickEvent{
		OfferID:    "o1",
		SubID:      "s1",
		MerchantID: lo.ToPtr("m1"),
	})

	// Assert
	require.NoError(t, err)
}

// TestClickConsumer_HandleClick_KeepsOccurredAt verifies a backlogged click keeps its click time
func TestClickConsumer_HandleClick_KeepsOccurredAt(t *testing.T) {
	// Setup
	store := mocks.NewMockClickStore(t)
	consumer := usecase.NewClickConsumer(usecase.NewClickRecorder(store, time.Second, zap.NewNop()))
	occurredAt := time.UnixMilli(1736070000123).UTC()

	store.EXPECT().InsertClick(mock.Anything, mock.MatchedBy(func(c *domain.Click) bool {
		return c.CreatedAt.Equal(occurredAt)
	})).Return(nil)

	// Act
	err := consumer.HandleClick(context.Background(), events.ClickEvent{
		OfferID:    "o1",
		SubID:      "s1",
		OccurredAt: occurredAt,
	})

	// Assert
	require.NoError(t, err)
}

// TestClickConsumer_HandleClick_StoreError_NotRetried verifies at-most-once delivery
func TestClickConsumer_HandleClick_StoreError_NotRetried(t *testing.T) {
	// Setup
	store := mocks.NewMockClickStore(t)
	consumer := usecase.NewClickConsumer(usecase.NewClickRecorder(store, time.Second, zap.NewNop()))

	store.EXPECT().InsertClick(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	// Act
	err := consumer.HandleClick(context.Background(), events.ClickEvent{OfferID: "o1", SubID: "s1"})

	// Assert
	require.NoError(t, err)
}
