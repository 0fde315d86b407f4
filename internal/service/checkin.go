package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"github.com/yoshuavic8/church-management-sub002/internal/domain"
	"github.com/yoshuavic8/church-management-sub002/internal/qr"
	"github.com/yoshuavic8/church-management-sub002/internal/service/ports"
)

const (
	defaultSuccessBannerTTL = 3 * time.Second
	defaultErrorBannerTTL   = 6 * time.Second
	defaultRecentLimit      = 10
)

type CheckinOptions struct {
	MeetingID        string
	SuccessBannerTTL time.Duration
	ErrorBannerTTL   time.Duration
	RecentLimit      int
}

// CheckinService orchestrates one scanning station: it gates on the live
// window, parses and validates payloads before any network call, submits at
// most one check-in at a time, and keeps the operator feedback state.
type CheckinService struct {
	backend ports.AttendanceBackend
	journal ports.ScanJournal
	logger  logger.Logger
	opts    CheckinOptions

	// inFlight makes scan handling single-flight: a scan arriving while one
	// is submitting is dropped, never queued.
	inFlight atomic.Bool

	mu          sync.Mutex
	status      *domain.LiveStatus
	recent      []domain.ScanRecord
	banner      *domain.Banner
	bannerTimer *time.Timer
	bannerGen   uint64
	closed      bool

	now func() time.Time
}

func NewCheckinService(
	backend ports.AttendanceBackend,
	journal ports.ScanJournal,
	log logger.Logger,
	opts CheckinOptions,
) *CheckinService {
	if opts.SuccessBannerTTL <= 0 {
		opts.SuccessBannerTTL = defaultSuccessBannerTTL
	}
	if opts.ErrorBannerTTL <= 0 {
		opts.ErrorBannerTTL = defaultErrorBannerTTL
	}
	if opts.RecentLimit <= 0 {
		opts.RecentLimit = defaultRecentLimit
	}

	return &CheckinService{
		backend: backend,
		journal: journal,
		logger:  log,
		opts:    opts,
		now:     time.Now,
	}
}

// RefreshStatus fetches the backend's live view of the meeting and caches it
// as the orchestrator's gate.
func (s *CheckinService) RefreshStatus(ctx context.Context) (*domain.LiveStatus, error) {
	status, err := s.backend.LiveStatus(ctx, s.opts.MeetingID)
	if err != nil {
		return nil, fmt.Errorf("fetch live status: %w", err)
	}

	s.mu.Lock()
	s.status = status
	s.mu.Unlock()

	return status, nil
}

// Status returns the last fetched live status, nil before the first refresh.
func (s *CheckinService) Status() *domain.LiveStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Recent returns a copy of the bounded recent-scans list, most recent first.
func (s *CheckinService) Recent() []domain.ScanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ScanRecord, len(s.recent))
	copy(out, s.recent)
	return out
}

// History reads back the journaled scan attempts for this station's meeting,
// most recent first. Empty when the local journal is disabled; unlike the
// in-memory recent list it survives a gateway restart.
func (s *CheckinService) History(ctx context.Context) ([]*domain.ScanEntry, error) {
	entries, err := s.journal.ListRecent(ctx, s.opts.MeetingID, nil, s.opts.RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("list journaled scans: %w", err)
	}
	return entries, nil
}

// Banner returns the currently displayed operator feedback, nil when none.
func (s *CheckinService) Banner() *domain.Banner {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.banner
}

// HandleScan runs one scan attempt end to end:
// parse -> validate -> gate -> submit. Parsing and validation failures never
// reach the network; the live gate is checked before submission; a duplicate
// check-in comes back as a success with AlreadyCheckedIn set.
func (s *CheckinService) HandleScan(ctx context.Context, raw string) (*domain.CheckinResult, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		s.logger.Debug("scan dropped, submission in flight")
		return nil, domain.ErrScanInFlight
	}
	defer s.inFlight.Store(false)

	if err := s.gate(); err != nil {
		s.journalScan(ctx, "", raw, domain.ScanRejected, err.Error())
		s.setBanner(domain.BannerError, err.Error(), s.opts.ErrorBannerTTL)
		return nil, err
	}

	payload, err := qr.Parse(raw)
	if err != nil {
		s.journalScan(ctx, "", raw, domain.ScanRejected, err.Error())
		s.setBanner(domain.BannerError, err.Error(), s.opts.ErrorBannerTTL)
		return nil, err
	}

	if err := payload.ValidateTarget(s.opts.MeetingID); err != nil {
		s.journalScan(ctx, payload.MemberID, raw, domain.ScanRejected, err.Error())
		s.setBanner(domain.BannerError, err.Error(), s.opts.ErrorBannerTTL)
		return nil, err
	}

	result, err := s.backend.CheckIn(ctx, s.opts.MeetingID, payload.MemberID)
	if err != nil {
		s.journalScan(ctx, payload.MemberID, raw, domain.ScanFailed, err.Error())
		s.setBanner(domain.BannerError, "check-in failed, please rescan", s.opts.ErrorBannerTTL)
		return nil, fmt.Errorf("submit check-in: %w", err)
	}

	outcome := domain.ScanAccepted
	message := "checked in"
	if result.AlreadyCheckedIn {
		outcome = domain.ScanDuplicate
		message = "already checked in"
	}
	if result.Member != nil {
		message = fmt.Sprintf("%s %s %s", result.Member.FirstName, result.Member.LastName, message)
		s.pushRecent(*result.Member, result.AlreadyCheckedIn)
	}

	s.journalScan(ctx, payload.MemberID, raw, outcome, "")
	s.setBanner(domain.BannerSuccess, message, s.opts.SuccessBannerTTL)

	s.logger.Info("check-in accepted",
		logger.String("meeting_id", s.opts.MeetingID),
		logger.String("member_id", payload.MemberID),
		logger.Any("outcome", outcome),
	)

	return result, nil
}

// Close cancels any pending banner dismissal. No state is mutated afterwards.
func (s *CheckinService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.bannerTimer != nil {
		s.bannerTimer.Stop()
		s.bannerTimer = nil
	}
}

// gate refuses submission unless the last known live status permits it.
func (s *CheckinService) gate() error {
	status := s.Status()
	if status == nil || !status.Active {
		return domain.ErrMeetingNotLive
	}
	if status.Expired || (status.ExpiresAt != nil && !s.now().Before(*status.ExpiresAt)) {
		return domain.ErrMeetingExpired
	}
	return nil
}

func (s *CheckinService) pushRecent(member domain.Member, duplicate bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Dedupe by member id, most recent first.
	filtered := s.recent[:0]
	for _, r := range s.recent {
		if r.Member.ID != member.ID {
			filtered = append(filtered, r)
		}
	}
	s.recent = append([]domain.ScanRecord{{
		Member:           member,
		AlreadyCheckedIn: duplicate,
		ScannedAt:        s.now(),
	}}, filtered...)

	if len(s.recent) > s.opts.RecentLimit {
		s.recent = s.recent[:s.opts.RecentLimit]
	}
}

func (s *CheckinService) setBanner(kind domain.BannerKind, message string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	if s.bannerTimer != nil {
		s.bannerTimer.Stop()
	}

	s.banner = &domain.Banner{Kind: kind, Message: message}
	s.bannerGen++
	gen := s.bannerGen

	s.bannerTimer = time.AfterFunc(ttl, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		// A newer banner or teardown already superseded this dismissal.
		if s.closed || s.bannerGen != gen {
			return
		}
		s.banner = nil
	})
}

func (s *CheckinService) journalScan(ctx context.Context, memberID, raw string, outcome domain.ScanOutcome, reason string) {
	entry := &domain.ScanEntry{
		ID:        uuid.New().String(),
		MeetingID: s.opts.MeetingID,
		MemberID:  memberID,
		RawText:   raw,
		Outcome:   outcome,
		Reason:    reason,
		CreatedAt: s.now().UTC(),
	}

	if err := s.journal.Append(ctx, entry); err != nil {
		// Audit trail loss must not block attendance.
		s.logger.Error("journal append failed",
			logger.String("meeting_id", entry.MeetingID),
			logger.String("error", err.Error()),
		)
	}
}
