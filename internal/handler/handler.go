package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/yoshuavic8/church-management-sub002/internal/capture"
	"github.com/yoshuavic8/church-management-sub002/internal/domain"
	"github.com/yoshuavic8/church-management-sub002/internal/handler/dto"
	"github.com/yoshuavic8/church-management-sub002/internal/qr"
)

type CheckinSvc interface {
	HandleScan(ctx context.Context, raw string) (*domain.CheckinResult, error)
	RefreshStatus(ctx context.Context) (*domain.LiveStatus, error)
	Status() *domain.LiveStatus
	Recent() []domain.ScanRecord
	History(ctx context.Context) ([]*domain.ScanEntry, error)
	Banner() *domain.Banner
}

type MeetingSvc interface {
	PlanRecurring(ctx context.Context, rule domain.RecurrenceRule) (*domain.PlannedSeries, error)
	OpenLiveWindow(ctx context.Context, meetingID string, window time.Duration) (*domain.LiveStatus, error)
	CloseLiveWindow(ctx context.Context, meetingID string) (*domain.LiveStatus, error)
}

type Handler struct {
	checkinService CheckinSvc
	meetingService MeetingSvc
	meetingID      string
}

func NewHandler(checkinService CheckinSvc, meetingService MeetingSvc, meetingID string) *Handler {
	return &Handler{
		checkinService: checkinService,
		meetingService: meetingService,
		meetingID:      meetingID,
	}
}

// Scans

func (h *Handler) Scan(c *ginext.Context) {
	var req dto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.checkinService.HandleScan(c.Request.Context(), req.RawText)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckinResponse(result))
}

func (h *Handler) ScanImage(c *ginext.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing file upload"})
		return
	}
	defer file.Close()

	if header.Size > capture.MaxImageBytes {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "image too large"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, capture.MaxImageBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "failed to read upload"})
		return
	}
	if int64(len(data)) > capture.MaxImageBytes {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "image too large"})
		return
	}

	text, err := capture.DecodeImage(data)
	if err != nil {
		h.handleError(c, err)
		return
	}

	result, err := h.checkinService.HandleScan(c.Request.Context(), text)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckinResponse(result))
}

// RecentScans returns the in-memory recent list plus the journaled history
// when the local journal is enabled.
func (h *Handler) RecentScans(c *ginext.Context) {
	entries, err := h.checkinService.History(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	journal := make([]dto.ScanEntryResponse, 0, len(entries))
	for _, e := range entries {
		journal = append(journal, dto.ToScanEntryResponse(e))
	}

	c.JSON(http.StatusOK, dto.RecentScansResponse{
		Scans:   h.recentResponses(),
		Journal: journal,
	})
}

// Live window

func (h *Handler) LiveStatus(c *ginext.Context) {
	status, err := h.checkinService.RefreshStatus(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StationStateResponse{
		Status:      dto.ToLiveStatusResponse(status, time.Now()),
		Banner:      dto.ToBannerResponse(h.checkinService.Banner()),
		RecentScans: h.recentResponses(),
	})
}

func (h *Handler) ToggleLive(c *ginext.Context) {
	var req dto.ToggleLiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	var (
		status *domain.LiveStatus
		err    error
	)
	if req.Active {
		window := time.Duration(req.WindowMinutes) * time.Minute
		status, err = h.meetingService.OpenLiveWindow(c.Request.Context(), h.meetingID, window)
	} else {
		status, err = h.meetingService.CloseLiveWindow(c.Request.Context(), h.meetingID)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLiveStatusResponse(status, time.Now()))
}

// Meetings

func (h *Handler) PlanRecurring(c *ginext.Context) {
	var req dto.PlanRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_date format, expected YYYY-MM-DD",
		})
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid end_date format, expected YYYY-MM-DD",
		})
		return
	}

	pattern, err := domain.ParseRecurrencePattern(req.Pattern)
	if err != nil {
		h.handleError(c, err)
		return
	}
	category, err := domain.ParseEventCategory(req.Category)
	if err != nil {
		h.handleError(c, err)
		return
	}

	rule := domain.RecurrenceRule{
		StartDate: startDate,
		EndDate:   endDate,
		Pattern:   pattern,
		Base: domain.MeetingBase{
			Category:    category,
			ContextRef:  req.ContextRef,
			MeetingType: req.MeetingType,
			Topic:       req.Topic,
			Location:    req.Location,
			Notes:       req.Notes,
			Offering:    req.Offering,
			IsRealtime:  req.IsRealtime,
		},
	}

	series, err := h.meetingService.PlanRecurring(c.Request.Context(), rule)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPlannedSeriesResponse(series))
}

// Badges

func (h *Handler) MemberBadge(c *ginext.Context) {
	memberID := c.Param("id")
	if _, err := uuid.Parse(memberID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid member id"})
		return
	}

	scope := c.DefaultQuery("scope", qr.ScopeGeneral)

	png, err := qr.Badge(memberID, scope)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

func (h *Handler) recentResponses() []dto.ScanRecordResponse {
	records := h.checkinService.Recent()
	resp := make([]dto.ScanRecordResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, dto.ToScanRecordResponse(r))
	}
	return resp
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrMeetingNotFound),
		errors.Is(err, domain.ErrMemberNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrMeetingNotLive),
		errors.Is(err, domain.ErrMeetingExpired),
		errors.Is(err, domain.ErrMeetingMismatch):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrScanInFlight):
		c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUnrecognizedFormat),
		errors.Is(err, domain.ErrInvalidMemberID),
		errors.Is(err, domain.ErrUnknownPattern),
		errors.Is(err, domain.ErrUnknownCategory),
		errors.Is(err, domain.ErrNotImage),
		errors.Is(err, domain.ErrNoCodeFound):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
