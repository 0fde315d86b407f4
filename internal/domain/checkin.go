package domain

import "time"

type Member struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// LiveStatus mirrors the backend's live check-in state for one meeting. The
// backend owns it; the gateway only fetches and caches the latest view.
type LiveStatus struct {
	MeetingID   string     `json:"meeting_id"`
	Topic       string     `json:"topic"`
	MeetingDate time.Time  `json:"meeting_date"`
	Location    string     `json:"location"`
	Active      bool       `json:"live_checkin_active"`
	ExpiresAt   *time.Time `json:"live_checkin_expires_at"`
	Expired     bool       `json:"is_expired"`
}

// Open reports whether check-ins are currently permitted.
func (s *LiveStatus) Open(now time.Time) bool {
	if s == nil || !s.Active || s.Expired {
		return false
	}
	return s.ExpiresAt == nil || now.Before(*s.ExpiresAt)
}

type CheckinResult struct {
	Success          bool    `json:"success"`
	AlreadyCheckedIn bool    `json:"already_checked_in"`
	Member           *Member `json:"member,omitempty"`
	Message          string  `json:"message,omitempty"`
}

// ScanRecord is one entry of the orchestrator's bounded recent-scans list.
type ScanRecord struct {
	Member           Member    `json:"member"`
	AlreadyCheckedIn bool      `json:"already_checked_in"`
	ScannedAt        time.Time `json:"scanned_at"`
}

type BannerKind string

const (
	BannerSuccess BannerKind = "success"
	BannerError   BannerKind = "error"
)

// Banner is the transient operator feedback shown after a scan. It
// auto-dismisses; the zero value means no banner.
type Banner struct {
	Kind    BannerKind `json:"kind"`
	Message string     `json:"message"`
}

type ScanOutcome string

const (
	ScanAccepted  ScanOutcome = "accepted"
	ScanDuplicate ScanOutcome = "duplicate"
	ScanRejected  ScanOutcome = "rejected"
	ScanFailed    ScanOutcome = "failed"
)

var JournaledOutcomes = []ScanOutcome{ScanAccepted, ScanDuplicate, ScanRejected, ScanFailed}

// ScanEntry is one row of the local audit journal.
type ScanEntry struct {
	ID        string      `json:"id"`
	MeetingID string      `json:"meeting_id"`
	MemberID  string      `json:"member_id"`
	RawText   string      `json:"raw_text"`
	Outcome   ScanOutcome `json:"outcome"`
	Reason    string      `json:"reason,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
