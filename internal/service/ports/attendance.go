package ports

import (
	"context"
	"time"

	"github.com/yoshuavic8/church-management-sub002/internal/domain"
)

// AttendanceBackend is the REST contract the external attendance backend
// exposes. The gateway never persists attendance itself; everything stateful
// goes through here.
type AttendanceBackend interface {
	CreateMeetings(ctx context.Context, meetings []domain.Meeting) ([]string, error)
	SetLiveAttendance(ctx context.Context, meetingID string, active bool, expiresAt *time.Time) (*domain.LiveStatus, error)
	LiveStatus(ctx context.Context, meetingID string) (*domain.LiveStatus, error)
	CheckIn(ctx context.Context, meetingID, memberID string) (*domain.CheckinResult, error)
}
