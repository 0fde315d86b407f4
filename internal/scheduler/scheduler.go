package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
	"github.com/yoshuavic8/church-management-sub002/internal/domain"
)

// StatusRefresher re-fetches the backend's live view of the station's
// meeting; the orchestrator keeps the result as its gate.
type StatusRefresher interface {
	RefreshStatus(ctx context.Context) (*domain.LiveStatus, error)
}

// Scheduler is the live-window watchdog: it keeps the local gate in sync
// with the backend so an expired window blocks scanning without waiting for
// an operator action.
type Scheduler struct {
	checkin  StatusRefresher
	interval time.Duration
	logger   logger.Logger

	wasOpen bool
}

func New(
	checkin StatusRefresher,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		checkin:  checkin,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("live-status watchdog started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("live-status watchdog stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	status, err := s.checkin.RefreshStatus(ctx)
	if err != nil {
		s.logger.Error("failed to refresh live status",
			logger.String("error", err.Error()),
		)
		return
	}

	open := status.Open(time.Now())
	if s.wasOpen && !open {
		s.logger.Info("live check-in window closed",
			logger.String("meeting_id", status.MeetingID),
			logger.String("topic", status.Topic),
		)
	}
	s.wasOpen = open
}
