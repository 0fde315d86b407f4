package domain

import (
	"fmt"
	"time"
)

type RecurrencePattern string

const (
	PatternDaily    RecurrencePattern = "daily"
	PatternWeekly   RecurrencePattern = "weekly"
	PatternBiweekly RecurrencePattern = "biweekly"
	PatternMonthly  RecurrencePattern = "monthly"
)

// ParseRecurrencePattern rejects anything outside the four known patterns.
// An unknown pattern must never reach the stepping loop: it would leave the
// cursor static and spin forever.
func ParseRecurrencePattern(s string) (RecurrencePattern, error) {
	switch p := RecurrencePattern(s); p {
	case PatternDaily, PatternWeekly, PatternBiweekly, PatternMonthly:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPattern, s)
	}
}

type EventCategory string

const (
	CategoryCellGroup EventCategory = "cell_group"
	CategoryMinistry  EventCategory = "ministry"
	CategoryClass     EventCategory = "class"
	CategoryGeneral   EventCategory = "general"
)

func ParseEventCategory(s string) (EventCategory, error) {
	switch c := EventCategory(s); c {
	case CategoryCellGroup, CategoryMinistry, CategoryClass, CategoryGeneral:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
}

// ContextField maps a category to the backend field that carries its context
// reference. The switch is the single place category dispatch happens; adding
// a category means extending it here and nowhere else.
func (c EventCategory) ContextField() (string, bool) {
	switch c {
	case CategoryCellGroup:
		return "cell_group_id", true
	case CategoryMinistry:
		return "ministry_id", true
	case CategoryClass:
		return "class_id", true
	case CategoryGeneral:
		return "", false
	}
	return "", false
}

// NeedsContext reports whether meetings of this category must reference a
// cell group, ministry or class.
func (c EventCategory) NeedsContext() bool {
	_, ok := c.ContextField()
	return ok
}

// MeetingBase is the set of attributes shared by every instance of a
// recurring series.
type MeetingBase struct {
	Category    EventCategory `json:"event_category"`
	ContextRef  string        `json:"context_ref,omitempty"`
	MeetingType string        `json:"meeting_type"`
	Topic       string        `json:"topic"`
	Location    string        `json:"location"`
	Notes       string        `json:"notes"`
	Offering    float64       `json:"offering"`
	IsRealtime  bool          `json:"is_realtime"`
}

// Meeting is one concrete occurrence of an event, pinned to a single date.
type Meeting struct {
	MeetingBase
	MeetingDate time.Time `json:"meeting_date"`
}

// RecurrenceRule is built transiently from operator input; only its expanded
// instances are ever persisted.
type RecurrenceRule struct {
	StartDate time.Time
	EndDate   time.Time
	Pattern   RecurrencePattern
	Base      MeetingBase
}

// PlannedSeries is the outcome of expanding a rule and handing the batch to
// the backend.
type PlannedSeries struct {
	IDs   []string    `json:"ids"`
	Dates []time.Time `json:"dates"`
}
