package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"github.com/yoshuavic8/church-management-sub002/internal/domain"
	"github.com/yoshuavic8/church-management-sub002/internal/service/ports/mocks"
)

const (
	meetingID   = "m-1"
	memberID    = "11111111-1111-1111-1111-111111111111"
	altMemberID = "22222222-2222-2222-2222-222222222222"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func payloadFor(id string) string {
	return "MEMBER_CHECKIN:" + id + ":GENERAL"
}

func openStatus() *domain.LiveStatus {
	expires := time.Now().Add(time.Hour)
	return &domain.LiveStatus{
		MeetingID: meetingID,
		Topic:     "Sunday service",
		Active:    true,
		ExpiresAt: &expires,
	}
}

func newCheckinService(t *testing.T, opts CheckinOptions) (*CheckinService, *mocks.MockAttendanceBackend, *mocks.MockScanJournal) {
	t.Helper()
	backend := mocks.NewMockAttendanceBackend(t)
	journal := mocks.NewMockScanJournal(t)
	if opts.MeetingID == "" {
		opts.MeetingID = meetingID
	}
	svc := NewCheckinService(backend, journal, newTestLogger(t), opts)
	t.Cleanup(svc.Close)
	return svc, backend, journal
}

func activate(t *testing.T, svc *CheckinService, backend *mocks.MockAttendanceBackend, status *domain.LiveStatus) {
	t.Helper()
	backend.EXPECT().LiveStatus(mock.Anything, meetingID).Return(status, nil).Once()
	_, err := svc.RefreshStatus(context.Background())
	require.NoError(t, err)
}

func TestCheckinService_HandleScan_Success(t *testing.T) {
	svc, backend, journal := newCheckinService(t, CheckinOptions{})
	activate(t, svc, backend, openStatus())

	member := &domain.Member{ID: memberID, FirstName: "Grace", LastName: "Tan"}
	backend.EXPECT().CheckIn(mock.Anything, meetingID, memberID).
		Return(&domain.CheckinResult{Success: true, Member: member}, nil).Once()
	journal.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()

	result, err := svc.HandleScan(context.Background(), payloadFor(memberID))

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.False(t, result.AlreadyCheckedIn)

	recent := svc.Recent()
	require.Len(t, recent, 1)
	assert.Equal(t, memberID, recent[0].Member.ID)

	banner := svc.Banner()
	require.NotNil(t, banner)
	assert.Equal(t, domain.BannerSuccess, banner.Kind)
}

func TestCheckinService_HandleScan_DuplicateIsSuccess(t *testing.T) {
	svc, backend, journal := newCheckinService(t, CheckinOptions{})
	activate(t, svc, backend, openStatus())

	member := &domain.Member{ID: memberID, FirstName: "Grace", LastName: "Tan"}
	backend.EXPECT().CheckIn(mock.Anything, meetingID, memberID).
		Return(&domain.CheckinResult{Success: true, AlreadyCheckedIn: true, Member: member}, nil).Once()
	journal.EXPECT().Append(mock.Anything, mock.MatchedBy(func(e *domain.ScanEntry) bool {
		return e.Outcome == domain.ScanDuplicate && e.MemberID == memberID
	})).Return(nil).Once()

	result, err := svc.HandleScan(context.Background(), payloadFor(memberID))

	require.NoError(t, err)
	assert.True(t, result.AlreadyCheckedIn)

	banner := svc.Banner()
	require.NotNil(t, banner)
	assert.Equal(t, domain.BannerSuccess, banner.Kind)
}

func TestCheckinService_HandleScan_ParseFailureNeverHitsNetwork(t *testing.T) {
	svc, backend, journal := newCheckinService(t, CheckinOptions{})
	activate(t, svc, backend, openStatus())

	journal.EXPECT().Append(mock.Anything, mock.MatchedBy(func(e *domain.ScanEntry) bool {
		return e.Outcome == domain.ScanRejected
	})).Return(nil).Once()

	_, err := svc.HandleScan(context.Background(), "hello")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnrecognizedFormat)
	// No CheckIn expectation was registered; AssertExpectations would fail on
	// any backend submission.

	banner := svc.Banner()
	require.NotNil(t, banner)
	assert.Equal(t, domain.BannerError, banner.Kind)
}

func TestCheckinService_HandleScan_MeetingMismatch(t *testing.T) {
	svc, backend, journal := newCheckinService(t, CheckinOptions{})
	activate(t, svc, backend, openStatus())

	journal.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := svc.HandleScan(context.Background(), "MEMBER_CHECKIN:"+memberID+":other-meeting")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMeetingMismatch)
}

func TestCheckinService_HandleScan_InactiveMeetingBlocksSubmission(t *testing.T) {
	svc, backend, journal := newCheckinService(t, CheckinOptions{})
	activate(t, svc, backend, &domain.LiveStatus{MeetingID: meetingID, Active: false})

	journal.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := svc.HandleScan(context.Background(), payloadFor(memberID))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMeetingNotLive)
}

func TestCheckinService_HandleScan_BeforeFirstRefreshBlocks(t *testing.T) {
	svc, _, journal := newCheckinService(t, CheckinOptions{})

	journal.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := svc.HandleScan(context.Background(), payloadFor(memberID))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMeetingNotLive)
}

func TestCheckinService_HandleScan_ExpiredWindowBlocks(t *testing.T) {
	svc, backend, journal := newCheckinService(t, CheckinOptions{})
	expired := time.Now().Add(-time.Minute)
	activate(t, svc, backend, &domain.LiveStatus{MeetingID: meetingID, Active: true, ExpiresAt: &expired})

	journal.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := svc.HandleScan(context.Background(), payloadFor(memberID))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMeetingExpired)
}

func TestCheckinService_HandleScan_TransportFailure(t *testing.T) {
	svc, backend, journal := newCheckinService(t, CheckinOptions{})
	activate(t, svc, backend, openStatus())

	backend.EXPECT().CheckIn(mock.Anything, meetingID, memberID).Return(nil, assert.AnError).Once()
	journal.EXPECT().Append(mock.Anything, mock.MatchedBy(func(e *domain.ScanEntry) bool {
		return e.Outcome == domain.ScanFailed
	})).Return(nil).Once()

	_, err := svc.HandleScan(context.Background(), payloadFor(memberID))

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)

	banner := svc.Banner()
	require.NotNil(t, banner)
	assert.Equal(t, domain.BannerError, banner.Kind)
}

func TestCheckinService_HandleScan_SingleFlight(t *testing.T) {
	svc, backend, journal := newCheckinService(t, CheckinOptions{})
	activate(t, svc, backend, openStatus())

	release := make(chan struct{})
	started := make(chan struct{})
	backend.EXPECT().CheckIn(mock.Anything, meetingID, memberID).
		RunAndReturn(func(context.Context, string, string) (*domain.CheckinResult, error) {
			close(started)
			<-release
			return &domain.CheckinResult{Success: true, Member: &domain.Member{ID: memberID}}, nil
		}).Once()
	journal.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := svc.HandleScan(context.Background(), payloadFor(memberID))
		assert.NoError(t, err)
	}()

	<-started

	// A second scan for a different member while the first is submitting is
	// dropped: exactly one backend call happens (Once above enforces it).
	_, err := svc.HandleScan(context.Background(), payloadFor(altMemberID))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrScanInFlight)

	close(release)
	wg.Wait()
}

func TestCheckinService_RecentDedupesAndBounds(t *testing.T) {
	svc, backend, journal := newCheckinService(t, CheckinOptions{RecentLimit: 2})
	activate(t, svc, backend, openStatus())

	journal.EXPECT().Append(mock.Anything, mock.Anything).Return(nil)

	ids := []string{memberID, altMemberID, memberID, "33333333-3333-3333-3333-333333333333"}
	for _, id := range ids {
		backend.EXPECT().CheckIn(mock.Anything, meetingID, id).
			Return(&domain.CheckinResult{Success: true, Member: &domain.Member{ID: id}}, nil)
		_, err := svc.HandleScan(context.Background(), payloadFor(id))
		require.NoError(t, err)
	}

	recent := svc.Recent()
	require.Len(t, recent, 2)
	assert.Equal(t, "33333333-3333-3333-3333-333333333333", recent[0].Member.ID)
	assert.Equal(t, memberID, recent[1].Member.ID)
}

func TestCheckinService_BannerAutoClears(t *testing.T) {
	svc, backend, journal := newCheckinService(t, CheckinOptions{SuccessBannerTTL: 30 * time.Millisecond})
	activate(t, svc, backend, openStatus())

	backend.EXPECT().CheckIn(mock.Anything, meetingID, memberID).
		Return(&domain.CheckinResult{Success: true, Member: &domain.Member{ID: memberID}}, nil).Once()
	journal.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := svc.HandleScan(context.Background(), payloadFor(memberID))
	require.NoError(t, err)
	require.NotNil(t, svc.Banner())

	assert.Eventually(t, func() bool { return svc.Banner() == nil }, time.Second, 5*time.Millisecond)
}

func TestCheckinService_CloseCancelsPendingDismiss(t *testing.T) {
	svc, backend, journal := newCheckinService(t, CheckinOptions{SuccessBannerTTL: 30 * time.Millisecond})
	activate(t, svc, backend, openStatus())

	backend.EXPECT().CheckIn(mock.Anything, meetingID, memberID).
		Return(&domain.CheckinResult{Success: true, Member: &domain.Member{ID: memberID}}, nil).Once()
	journal.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := svc.HandleScan(context.Background(), payloadFor(memberID))
	require.NoError(t, err)

	svc.Close()
	banner := svc.Banner()
	require.NotNil(t, banner)

	// The pending dismiss must not fire after teardown.
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, banner, svc.Banner())
}

func TestCheckinService_JournalFailureDoesNotBlockCheckin(t *testing.T) {
	svc, backend, journal := newCheckinService(t, CheckinOptions{})
	activate(t, svc, backend, openStatus())

	backend.EXPECT().CheckIn(mock.Anything, meetingID, memberID).
		Return(&domain.CheckinResult{Success: true, Member: &domain.Member{ID: memberID}}, nil).Once()
	journal.EXPECT().Append(mock.Anything, mock.Anything).Return(assert.AnError).Once()

	result, err := svc.HandleScan(context.Background(), payloadFor(memberID))

	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestCheckinService_RefreshStatus_TransportError(t *testing.T) {
	svc, backend, _ := newCheckinService(t, CheckinOptions{})

	backend.EXPECT().LiveStatus(mock.Anything, meetingID).Return(nil, assert.AnError).Once()

	_, err := svc.RefreshStatus(context.Background())

	require.Error(t, err)
	assert.Nil(t, svc.Status())
}

func TestCheckinService_History_ReadsJournal(t *testing.T) {
	svc, _, journal := newCheckinService(t, CheckinOptions{RecentLimit: 5})

	entries := []*domain.ScanEntry{
		{ID: "e-2", MeetingID: meetingID, MemberID: altMemberID, Outcome: domain.ScanDuplicate},
		{ID: "e-1", MeetingID: meetingID, MemberID: memberID, Outcome: domain.ScanAccepted},
	}
	journal.EXPECT().ListRecent(mock.Anything, meetingID, mock.Anything, 5).
		Return(entries, nil).Once()

	got, err := svc.History(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestCheckinService_History_JournalError(t *testing.T) {
	svc, _, journal := newCheckinService(t, CheckinOptions{})

	journal.EXPECT().ListRecent(mock.Anything, meetingID, mock.Anything, defaultRecentLimit).
		Return(nil, assert.AnError).Once()

	_, err := svc.History(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
