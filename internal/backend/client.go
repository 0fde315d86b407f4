// Package backend is the HTTP client for the external attendance backend.
// All attendance state lives there; the gateway only speaks this contract.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
	"github.com/yoshuavic8/church-management-sub002/internal/domain"
)

const dateLayout = "2006-01-02"

type Client struct {
	baseURL  string
	token    string
	http     *http.Client
	strategy retry.Strategy
	log      logger.Logger
}

func NewClient(baseURL, token string, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		log: log,
	}
}

// CreateMeetings hands a whole expanded series to the backend in one batch.
func (c *Client) CreateMeetings(ctx context.Context, meetings []domain.Meeting) ([]string, error) {
	payload := make([]map[string]any, len(meetings))
	for i, m := range meetings {
		payload[i] = meetingPayload(m)
	}

	var resp struct {
		IDs []string `json:"ids"`
	}
	if err := c.do(ctx, http.MethodPost, "/attendance/meetings", c.token, payload, &resp); err != nil {
		return nil, fmt.Errorf("create meetings: %w", err)
	}

	return resp.IDs, nil
}

// SetLiveAttendance toggles the live check-in window of a meeting.
func (c *Client) SetLiveAttendance(ctx context.Context, meetingID string, active bool, expiresAt *time.Time) (*domain.LiveStatus, error) {
	body := map[string]any{"active": active}
	if expiresAt != nil {
		body["expires_at"] = expiresAt.UTC().Format(time.RFC3339)
	}

	var resp liveStatusResponse
	path := fmt.Sprintf("/attendance/meetings/%s/live-attendance", meetingID)
	if err := c.do(ctx, http.MethodPatch, path, c.token, body, &resp); err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, domain.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("set live attendance: %w", err)
	}

	return resp.toDomain(meetingID), nil
}

// LiveStatus fetches the backend's live view of a meeting. Idempotent, so it
// retries on transport failures.
func (c *Client) LiveStatus(ctx context.Context, meetingID string) (*domain.LiveStatus, error) {
	var resp liveStatusResponse
	path := fmt.Sprintf("/attendance/meetings/%s/live-status", meetingID)
	if err := c.withRetry(ctx, func() error {
		return c.do(ctx, http.MethodGet, path, c.token, nil, &resp)
	}); err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, domain.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("get live status: %w", err)
	}

	return resp.toDomain(meetingID), nil
}

// CheckIn marks a member present at a live meeting. The backend is the
// idempotency authority: a repeat submission answers already_checked_in
// instead of erroring or duplicating.
func (c *Client) CheckIn(ctx context.Context, meetingID, memberID string) (*domain.CheckinResult, error) {
	var resp struct {
		Message          string         `json:"message"`
		Member           *domain.Member `json:"member"`
		AlreadyCheckedIn bool           `json:"already_checked_in"`
	}
	path := fmt.Sprintf("/attendance/meetings/%s/live-checkin", meetingID)
	body := map[string]any{"member_id": memberID}
	if err := c.do(ctx, http.MethodPost, path, c.token, body, &resp); err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("check in: %w", err)
	}

	return &domain.CheckinResult{
		Success:          true,
		AlreadyCheckedIn: resp.AlreadyCheckedIn,
		Member:           resp.Member,
		Message:          resp.Message,
	}, nil
}

// CurrentActor resolves the operator behind a bearer token. Idempotent;
// retried so a flaky hop does not bounce a signed-in admin.
func (c *Client) CurrentActor(ctx context.Context, token string) (*domain.Actor, error) {
	var actor domain.Actor
	if err := c.withRetry(ctx, func() error {
		return c.do(ctx, http.MethodGet, "/auth/me", token, nil, &actor)
	}); err != nil {
		if isStatus(err, http.StatusUnauthorized) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("resolve actor: %w", err)
	}

	return &actor, nil
}

func meetingPayload(m domain.Meeting) map[string]any {
	p := map[string]any{
		"event_category": m.Category,
		"meeting_date":   m.MeetingDate.Format(dateLayout),
		"meeting_type":   m.MeetingType,
		"topic":          m.Topic,
		"location":       m.Location,
		"notes":          m.Notes,
		"offering":       m.Offering,
		"is_realtime":    m.IsRealtime,
	}
	if field, ok := m.Category.ContextField(); ok {
		p[field] = m.ContextRef
	}
	return p
}

type liveStatusResponse struct {
	Topic                string     `json:"topic"`
	MeetingDate          string     `json:"meeting_date"`
	Location             string     `json:"location"`
	LiveCheckinActive    bool       `json:"live_checkin_active"`
	LiveCheckinExpiresAt *time.Time `json:"live_checkin_expires_at"`
	IsExpired            bool       `json:"is_expired"`
}

func (r *liveStatusResponse) toDomain(meetingID string) *domain.LiveStatus {
	date, err := time.Parse(time.RFC3339, r.MeetingDate)
	if err != nil {
		date, _ = time.Parse(dateLayout, r.MeetingDate)
	}

	return &domain.LiveStatus{
		MeetingID:   meetingID,
		Topic:       r.Topic,
		MeetingDate: date,
		Location:    r.Location,
		Active:      r.LiveCheckinActive,
		ExpiresAt:   r.LiveCheckinExpiresAt,
		Expired:     r.IsExpired,
	}
}

// statusError carries the backend's HTTP status so callers can map contract
// errors onto domain sentinels.
type statusError struct {
	status  int
	message string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("backend responded %d: %s", e.status, e.message)
}

func isStatus(err error, status int) bool {
	var se *statusError
	return errors.As(err, &se) && se.status == status
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = json.Unmarshal(raw, &payload)
		msg := payload.Error
		if msg == "" {
			msg = payload.Message
		}
		return &statusError{status: resp.StatusCode, message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// withRetry reruns fn per the client's strategy. Only transport failures and
// backend 5xx are retried; contract errors come back immediately.
func (c *Client) withRetry(ctx context.Context, fn func() error) error {
	delay := c.strategy.Delay
	var err error
	for attempt := 1; attempt <= c.strategy.Attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}

		var se *statusError
		if errors.As(err, &se) && se.status < 500 {
			return err
		}
		if attempt == c.strategy.Attempts {
			return err
		}

		c.log.Warn("backend call failed, retrying",
			logger.Int("attempt", attempt),
			logger.String("error", err.Error()),
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= time.Duration(c.strategy.Backoff)
	}
	return err
}
