package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"
	"github.com/odelgado/product-catalog/internal/model"
	"github.com/odelgado/product-catalog/internal/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockEventRepository is a mock implementation of repository.Events.
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *model.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) ListPending(ctx context.Context, limit int) ([]model.Event, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Event), args.Error(1)
}

func (m *MockEventRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.EventStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// mockSendClient is a func-backed SQS client for the publisher.
type mockSendClient struct {
	sendMessageFunc func(ctx context.Context, params *awssqs.SendMessageInput, optFns ...func(*awssqs.Options)) (*awssqs.SendMessageOutput, error)
}

func (m *mockSendClient) SendMessage(ctx context.Context, params *awssqs.SendMessageInput, optFns ...func(*awssqs.Options)) (*awssqs.SendMessageOutput, error) {
	if m.sendMessageFunc != nil {
		return m.sendMessageFunc(ctx, params, optFns...)
	}
	return &awssqs.SendMessageOutput{}, nil
}

func pendingEvent(t *testing.T) model.Event {
	t.Helper()
	payload, err := json.Marshal(sqs.CatalogEventMessage{
		Action:    model.EventTypeProductCreated,
		ProductID: "card-01",
		Name:      "Credit Card Gold",
	})
	require.NoError(t, err)

	return model.Event{
		ID:        uuid.New(),
		EventType: model.EventTypeProductCreated,
		EventData: payload,
		Status:    model.EventStatusPending,
		CreatedAt: time.Now(),
	}
}

func TestOutboxWorker_ProcessEvents(t *testing.T) {
	t.Run("published events are marked processed", func(t *testing.T) {
		// given
		event := pendingEvent(t)
		events := new(MockEventRepository)
		events.On("ListPending", mock.Anything, eventBatchSize).Return([]model.Event{event}, nil)
		events.On("UpdateStatus", mock.Anything, event.ID, model.EventStatusProcessed).Return(nil)

		var published []string
		publisher := sqs.NewPublisher(&mockSendClient{
			sendMessageFunc: func(_ context.Context, params *awssqs.SendMessageInput, _ ...func(*awssqs.Options)) (*awssqs.SendMessageOutput, error) {
				published = append(published, *params.MessageBody)
				return &awssqs.SendMessageOutput{}, nil
			},
		}, "http://localhost:4566/queue")

		worker := NewOutboxWorker(events, publisher, time.Second)

		// when
		worker.processEvents(context.Background())

		// then
		require.Len(t, published, 1)
		assert.JSONEq(t, string(event.EventData), published[0])
		events.AssertExpectations(t)
	})

	t.Run("publish failure marks the event failed", func(t *testing.T) {
		// given
		event := pendingEvent(t)
		events := new(MockEventRepository)
		events.On("ListPending", mock.Anything, eventBatchSize).Return([]model.Event{event}, nil)
		events.On("UpdateStatus", mock.Anything, event.ID, model.EventStatusFailed).Return(nil)

		publisher := sqs.NewPublisher(&mockSendClient{
			sendMessageFunc: func(_ context.Context, _ *awssqs.SendMessageInput, _ ...func(*awssqs.Options)) (*awssqs.SendMessageOutput, error) {
				return nil, errors.New("queue unavailable")
			},
		}, "http://localhost:4566/queue")

		worker := NewOutboxWorker(events, publisher, time.Second)

		// when
		worker.processEvents(context.Background())

		// then
		events.AssertExpectations(t)
		events.AssertNotCalled(t, "UpdateStatus", mock.Anything, event.ID, model.EventStatusProcessed)
	})

	t.Run("list failure is absorbed", func(t *testing.T) {
		// given
		events := new(MockEventRepository)
		events.On("ListPending", mock.Anything, eventBatchSize).Return(nil, errors.New("db down"))

		worker := NewOutboxWorker(events, sqs.NewPublisher(&mockSendClient{}, "url"), time.Second)

		// when
		worker.processEvents(context.Background())

		// then
		events.AssertExpectations(t)
	})

	t.Run("no pending events publishes nothing", func(t *testing.T) {
		// given
		events := new(MockEventRepository)
		events.On("ListPending", mock.Anything, eventBatchSize).Return([]model.Event{}, nil)

		sent := false
		publisher := sqs.NewPublisher(&mockSendClient{
			sendMessageFunc: func(_ context.Context, _ *awssqs.SendMessageInput, _ ...func(*awssqs.Options)) (*awssqs.SendMessageOutput, error) {
				sent = true
				return &awssqs.SendMessageOutput{}, nil
			},
		}, "url")

		worker := NewOutboxWorker(events, publisher, time.Second)

		// when
		worker.processEvents(context.Background())

		// then
		assert.False(t, sent)
		events.AssertExpectations(t)
	})
}

func TestOutboxWorker_StartStop(t *testing.T) {
	t.Run("worker stops when Stop is called", func(t *testing.T) {
		events := new(MockEventRepository)
		worker := NewOutboxWorker(events, sqs.NewPublisher(&mockSendClient{}, "url"), time.Hour)

		done := make(chan struct{})
		go func() {
			worker.Start(context.Background())
			close(done)
		}()

		worker.Stop()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("worker did not stop")
		}
	})

	t.Run("worker stops when the context is cancelled", func(t *testing.T) {
		events := new(MockEventRepository)
		worker := NewOutboxWorker(events, sqs.NewPublisher(&mockSendClient{}, "url"), time.Hour)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			worker.Start(ctx)
			close(done)
		}()

		cancel()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("worker did not stop")
		}
	})
}
