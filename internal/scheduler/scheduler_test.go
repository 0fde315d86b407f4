package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
	"github.com/yoshuavic8/church-management-sub002/internal/domain"
	"github.com/yoshuavic8/church-management-sub002/internal/scheduler/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_RefreshesOnEachTick(t *testing.T) {
	checkin := mocks.NewMockStatusRefresher(t)

	refreshed := make(chan struct{}, 8)
	checkin.EXPECT().RefreshStatus(mock.Anything).
		RunAndReturn(func(context.Context) (*domain.LiveStatus, error) {
			refreshed <- struct{}{}
			return &domain.LiveStatus{MeetingID: "m-1", Active: true}, nil
		})

	s := New(checkin, 10*time.Millisecond, newTestLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go s.Start(ctx)

	for i := 0; i < 2; i++ {
		select {
		case <-refreshed:
		case <-time.After(2 * time.Second):
			t.Fatal("watchdog did not refresh")
		}
	}
}

func TestScheduler_KeepsTickingAfterRefreshFailure(t *testing.T) {
	checkin := mocks.NewMockStatusRefresher(t)

	calls := make(chan struct{}, 8)
	checkin.EXPECT().RefreshStatus(mock.Anything).
		RunAndReturn(func(context.Context) (*domain.LiveStatus, error) {
			calls <- struct{}{}
			return nil, context.DeadlineExceeded
		})

	s := New(checkin, 10*time.Millisecond, newTestLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go s.Start(ctx)

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("watchdog stopped after a failure")
		}
	}
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	checkin := mocks.NewMockStatusRefresher(t)

	s := New(checkin, time.Hour, newTestLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watchdog did not stop")
	}
}
