package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"
	"github.com/yoshuavic8/church-management-sub002/internal/domain"
	"github.com/yoshuavic8/church-management-sub002/internal/recurrence"
	"github.com/yoshuavic8/church-management-sub002/internal/service/ports"
)

const defaultLiveWindow = 3 * time.Hour

// MeetingService expands recurrence rules into meeting batches and drives the
// live-attendance window of a meeting.
type MeetingService struct {
	backend    ports.AttendanceBackend
	notifier   ports.LiveNotifier
	logger     logger.Logger
	liveWindow time.Duration
	now        func() time.Time
}

func NewMeetingService(
	backend ports.AttendanceBackend,
	notifier ports.LiveNotifier,
	log logger.Logger,
	liveWindow time.Duration,
) *MeetingService {
	if liveWindow <= 0 {
		liveWindow = defaultLiveWindow
	}
	return &MeetingService{
		backend:    backend,
		notifier:   notifier,
		logger:     log,
		liveWindow: liveWindow,
		now:        time.Now,
	}
}

// PlanRecurring expands the rule and hands the whole batch to the backend in
// one call. An empty expansion (inverted range) creates nothing and is not an
// error.
func (s *MeetingService) PlanRecurring(ctx context.Context, rule domain.RecurrenceRule) (*domain.PlannedSeries, error) {
	if rule.Base.Topic == "" {
		return nil, fmt.Errorf("%w: topic is required", domain.ErrValidation)
	}
	if _, err := domain.ParseEventCategory(string(rule.Base.Category)); err != nil {
		return nil, err
	}
	if rule.Base.Category.NeedsContext() && rule.Base.ContextRef == "" {
		return nil, fmt.Errorf("%w: %s meetings need a context reference", domain.ErrValidation, rule.Base.Category)
	}

	meetings, err := recurrence.Generate(rule)
	if err != nil {
		return nil, err
	}
	if len(meetings) == 0 {
		return &domain.PlannedSeries{}, nil
	}

	ids, err := s.backend.CreateMeetings(ctx, meetings)
	if err != nil {
		return nil, fmt.Errorf("create meetings: %w", err)
	}

	series := &domain.PlannedSeries{IDs: ids, Dates: make([]time.Time, len(meetings))}
	for i, m := range meetings {
		series.Dates[i] = m.MeetingDate
	}

	s.logger.Info("recurring series planned",
		logger.String("topic", rule.Base.Topic),
		logger.Any("pattern", rule.Pattern),
		logger.Int("count", len(meetings)),
	)

	go s.notifier.NotifySeriesPlanned(context.WithoutCancel(ctx), rule.Base.Topic, series.Dates)

	return series, nil
}

// OpenLiveWindow enables live check-in for the meeting with a bounded expiry.
func (s *MeetingService) OpenLiveWindow(ctx context.Context, meetingID string, window time.Duration) (*domain.LiveStatus, error) {
	if window <= 0 {
		window = s.liveWindow
	}
	expiresAt := s.now().UTC().Add(window)

	status, err := s.backend.SetLiveAttendance(ctx, meetingID, true, &expiresAt)
	if err != nil {
		return nil, fmt.Errorf("open live window: %w", err)
	}

	s.logger.Info("live window opened",
		logger.String("meeting_id", meetingID),
		logger.Duration("window", window),
	)

	go s.notifier.NotifyWindowOpened(context.WithoutCancel(ctx), status)

	return status, nil
}

// CloseLiveWindow disables live check-in for the meeting.
func (s *MeetingService) CloseLiveWindow(ctx context.Context, meetingID string) (*domain.LiveStatus, error) {
	status, err := s.backend.SetLiveAttendance(ctx, meetingID, false, nil)
	if err != nil {
		return nil, fmt.Errorf("close live window: %w", err)
	}

	s.logger.Info("live window closed", logger.String("meeting_id", meetingID))

	go s.notifier.NotifyWindowClosed(context.WithoutCancel(ctx), status)

	return status, nil
}
