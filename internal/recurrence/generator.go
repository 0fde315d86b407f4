// Package recurrence expands a recurrence rule into the concrete meeting
// instances it describes. Pure date arithmetic, no I/O.
package recurrence

import (
	"fmt"
	"time"

	"github.com/yoshuavic8/church-management-sub002/internal/domain"
)

// Generate expands [start, end] into one meeting per pattern step. Dates are
// compared at day granularity; time-of-day on the inputs is discarded.
//
// An inverted range yields an empty slice, not an error. An unknown pattern
// is rejected up front: stepping with an unrecognized pattern would leave the
// cursor static and never terminate.
func Generate(rule domain.RecurrenceRule) ([]domain.Meeting, error) {
	switch rule.Pattern {
	case domain.PatternDaily, domain.PatternWeekly, domain.PatternBiweekly, domain.PatternMonthly:
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPattern, rule.Pattern)
	}

	start := truncateToDay(rule.StartDate)
	end := truncateToDay(rule.EndDate)

	var meetings []domain.Meeting
	// monthIndex counts monthly steps from the anchor so that the series keeps
	// the start's day-of-month after passing through a short month
	// (Jan 31 -> Feb 28 -> Mar 31).
	monthIndex := 0
	for cursor := start; !cursor.After(end); {
		meetings = append(meetings, domain.Meeting{
			MeetingBase: rule.Base,
			MeetingDate: cursor,
		})

		switch rule.Pattern {
		case domain.PatternDaily:
			cursor = cursor.AddDate(0, 0, 1)
		case domain.PatternWeekly:
			cursor = cursor.AddDate(0, 0, 7)
		case domain.PatternBiweekly:
			cursor = cursor.AddDate(0, 0, 14)
		case domain.PatternMonthly:
			monthIndex++
			cursor = addMonthsClamped(start, monthIndex)
		}
	}

	return meetings, nil
}

// addMonthsClamped returns anchor shifted by months whole calendar months,
// clamping the day-of-month to the target month's last day instead of
// overflowing into the next month the way time.AddDate does.
func addMonthsClamped(anchor time.Time, months int) time.Time {
	y, m, d := anchor.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, anchor.Location())
	if last := daysIn(first.Year(), first.Month()); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, anchor.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
