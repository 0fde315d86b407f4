package dto

import (
	"time"

	"github.com/yoshuavic8/church-management-sub002/internal/domain"
)

type MemberResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
}

type CheckinResponse struct {
	Success          bool            `json:"success"`
	AlreadyCheckedIn bool            `json:"already_checked_in"`
	Member           *MemberResponse `json:"member,omitempty"`
	Message          string          `json:"message"`
}

type LiveStatusResponse struct {
	MeetingID   string  `json:"meeting_id"`
	Topic       string  `json:"topic"`
	MeetingDate string  `json:"meeting_date"`
	Location    string  `json:"location,omitempty"`
	Active      bool    `json:"active"`
	ExpiresAt   *string `json:"expires_at,omitempty"`
	Expired     bool    `json:"expired"`
	Open        bool    `json:"open"`
}

type StationStateResponse struct {
	Status      *LiveStatusResponse  `json:"status"`
	Banner      *BannerResponse      `json:"banner,omitempty"`
	RecentScans []ScanRecordResponse `json:"recent_scans"`
}

type BannerResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type ScanRecordResponse struct {
	Member           MemberResponse `json:"member"`
	AlreadyCheckedIn bool           `json:"already_checked_in"`
	ScannedAt        string         `json:"scanned_at"`
}

type RecentScansResponse struct {
	Scans   []ScanRecordResponse `json:"scans"`
	Journal []ScanEntryResponse  `json:"journal,omitempty"`
}

type ScanEntryResponse struct {
	ID        string `json:"id"`
	MeetingID string `json:"meeting_id"`
	MemberID  string `json:"member_id,omitempty"`
	Outcome   string `json:"outcome"`
	Reason    string `json:"reason,omitempty"`
	ScannedAt string `json:"scanned_at"`
}

type PlannedSeriesResponse struct {
	IDs   []string `json:"ids"`
	Dates []string `json:"dates"`
	Count int      `json:"count"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToMemberResponse(m *domain.Member) *MemberResponse {
	if m == nil {
		return nil
	}
	return &MemberResponse{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
	}
}

func ToCheckinResponse(r *domain.CheckinResult) CheckinResponse {
	return CheckinResponse{
		Success:          r.Success,
		AlreadyCheckedIn: r.AlreadyCheckedIn,
		Member:           ToMemberResponse(r.Member),
		Message:          r.Message,
	}
}

func ToLiveStatusResponse(s *domain.LiveStatus, now time.Time) *LiveStatusResponse {
	if s == nil {
		return nil
	}

	var expiresAt *string
	if s.ExpiresAt != nil {
		v := s.ExpiresAt.Format(time.RFC3339)
		expiresAt = &v
	}

	return &LiveStatusResponse{
		MeetingID:   s.MeetingID,
		Topic:       s.Topic,
		MeetingDate: s.MeetingDate.Format(time.RFC3339),
		Location:    s.Location,
		Active:      s.Active,
		ExpiresAt:   expiresAt,
		Expired:     s.Expired,
		Open:        s.Open(now),
	}
}

func ToBannerResponse(b *domain.Banner) *BannerResponse {
	if b == nil {
		return nil
	}
	return &BannerResponse{
		Kind:    string(b.Kind),
		Message: b.Message,
	}
}

func ToScanRecordResponse(r domain.ScanRecord) ScanRecordResponse {
	return ScanRecordResponse{
		Member:           *ToMemberResponse(&r.Member),
		AlreadyCheckedIn: r.AlreadyCheckedIn,
		ScannedAt:        r.ScannedAt.Format(time.RFC3339),
	}
}

func ToScanEntryResponse(e *domain.ScanEntry) ScanEntryResponse {
	return ScanEntryResponse{
		ID:        e.ID,
		MeetingID: e.MeetingID,
		MemberID:  e.MemberID,
		Outcome:   string(e.Outcome),
		Reason:    e.Reason,
		ScannedAt: e.CreatedAt.Format(time.RFC3339),
	}
}

func ToPlannedSeriesResponse(s *domain.PlannedSeries) PlannedSeriesResponse {
	dates := make([]string, 0, len(s.Dates))
	for _, d := range s.Dates {
		dates = append(dates, d.Format("2006-01-02"))
	}
	return PlannedSeriesResponse{
		IDs:   s.IDs,
		Dates: dates,
		Count: len(dates),
	}
}
