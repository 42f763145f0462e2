package main

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	gcppubsub "cloud.google.com/go/pubsub/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/anandmehra/dailybasket-backend/pkg/config"
	"github.com/anandmehra/dailybasket-backend/pkg/db/models"
	"github.com/anandmehra/dailybasket-backend/pkg/enums"
	"github.com/anandmehra/dailybasket-backend/pkg/logger"
)

type stubDB struct {
	pingErr error
}

func (s *stubDB) Ping(context.Context) error { return s.pingErr }

func (s *stubDB) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(&gorm.DB{})
}

type stubPubSub struct {
	pingErr error
}

func (s *stubPubSub) Ping(context.Context) error { return s.pingErr }

func (s *stubPubSub) Publisher(string) *gcppubsub.Publisher { return nil }

type stubRepo struct {
	pending   []models.OutboxEvent
	published []uuid.UUID
	failed    []uuid.UUID
	lastError error
}

func (s *stubRepo) FetchUnpublishedForPublish(tx *gorm.DB, limit, maxAttempts int) ([]models.OutboxEvent, error) {
	events := s.pending
	if len(events) > limit {
		events = events[:limit]
	}
	s.pending = nil
	return events, nil
}

func (s *stubRepo) MarkPublishedTx(tx *gorm.DB, id uuid.UUID) error {
	s.published = append(s.published, id)
	return nil
}

func (s *stubRepo) MarkFailedTx(tx *gorm.DB, id uuid.UUID, err error) error {
	s.failed = append(s.failed, id)
	s.lastError = err
	return nil
}

type stubPublisher struct {
	err       error
	published []*gcppubsub.Message
}

func (s *stubPublisher) Publish(ctx context.Context, msg *gcppubsub.Message) publishResult {
	s.published = append(s.published, msg)
	return stubResult{err: s.err}
}

type stubResult struct {
	err error
}

func (s stubResult) Get(context.Context) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "msg-1", nil
}

func testServiceConfig() *config.Config {
	return &config.Config{
		PubSub: config.PubSubConfig{OrderEventsTopic: "dbk-order-events"},
		Outbox: config.OutboxConfig{BatchSize: 10, PollIntervalMS: 5, MaxAttempts: 3},
	}
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "outbox-publisher-test", Output: io.Discard})
}

func newTestService(t *testing.T, repo *stubRepo, pub *stubPublisher) *Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Config:     testServiceConfig(),
		Logger:     testLogger(),
		DB:         &stubDB{},
		PubSub:     &stubPubSub{},
		Repository: repo,
		PublisherFactory: func(string) publisher {
			return pub
		},
	})
	require.NoError(t, err)
	return svc
}

func pendingEvent(attempts int) models.OutboxEvent {
	return models.OutboxEvent{
		ID:            uuid.New(),
		EventType:     enums.EventOrderFinalized,
		AggregateType: enums.AggregateOrder,
		AggregateID:   uuid.New(),
		Payload:       []byte(`{"version":1,"eventId":"evt-1","data":{}}`),
		CreatedAt:     time.Now(),
		AttemptCount:  attempts,
	}
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	_, err := NewService(ServiceParams{})
	require.Error(t, err)

	_, err = NewService(ServiceParams{
		Config: testServiceConfig(),
		Logger: testLogger(),
		DB:     &stubDB{},
		PubSub: &stubPubSub{},
	})
	require.Error(t, err)
}

func TestProcessBatchPublishesAndMarks(t *testing.T) {
	event := pendingEvent(0)
	repo := &stubRepo{pending: []models.OutboxEvent{event}}
	pub := &stubPublisher{}
	svc := newTestService(t, repo, pub)

	processed, err := svc.processBatch(context.Background())
	require.NoError(t, err)
	require.True(t, processed)

	require.Len(t, pub.published, 1)
	msg := pub.published[0]
	require.Equal(t, string(event.EventType), msg.Attributes["event_type"])
	require.Equal(t, event.AggregateID.String(), msg.Attributes["aggregate_id"])
	require.Equal(t, "evt-1", msg.Attributes["event_id"])
	require.JSONEq(t, string(event.Payload), string(msg.Data))

	require.Equal(t, []uuid.UUID{event.ID}, repo.published)
	require.Empty(t, repo.failed)
}

func TestProcessBatchRecordsPublishFailure(t *testing.T) {
	event := pendingEvent(1)
	repo := &stubRepo{pending: []models.OutboxEvent{event}}
	pub := &stubPublisher{err: errors.New("topic unavailable")}
	svc := newTestService(t, repo, pub)

	processed, err := svc.processBatch(context.Background())
	require.NoError(t, err)
	require.True(t, processed)

	require.Empty(t, repo.published)
	require.Equal(t, []uuid.UUID{event.ID}, repo.failed)
	require.EqualError(t, repo.lastError, "topic unavailable")
}

func TestProcessBatchEmptyQueue(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(t, repo, &stubPublisher{})

	processed, err := svc.processBatch(context.Background())
	require.NoError(t, err)
	require.False(t, processed)
	require.Empty(t, repo.published)
	require.Empty(t, repo.failed)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(t, repo, &stubPublisher{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- svc.Run(ctx)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancellation")
	}
}

func TestRunFailsWhenDependencyUnreachable(t *testing.T) {
	svc, err := NewService(ServiceParams{
		Config:           testServiceConfig(),
		Logger:           testLogger(),
		DB:               &stubDB{pingErr: errors.New("connection refused")},
		PubSub:           &stubPubSub{},
		Repository:       &stubRepo{},
		PublisherFactory: func(string) publisher { return &stubPublisher{} },
	})
	require.NoError(t, err)

	err = svc.Run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "database ping failed")
}
