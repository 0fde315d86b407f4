package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoshuavic8/church-management-sub002/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func rule(start, end time.Time, p domain.RecurrencePattern) domain.RecurrenceRule {
	return domain.RecurrenceRule{
		StartDate: start,
		EndDate:   end,
		Pattern:   p,
		Base: domain.MeetingBase{
			Category:    domain.CategoryCellGroup,
			ContextRef:  "cg-1",
			MeetingType: "regular",
			Topic:       "Midweek gathering",
		},
	}
}

func dates(meetings []domain.Meeting) []time.Time {
	out := make([]time.Time, len(meetings))
	for i, m := range meetings {
		out[i] = m.MeetingDate
	}
	return out
}

func TestGenerate_Weekly(t *testing.T) {
	meetings, err := Generate(rule(date(2025, 1, 1), date(2025, 1, 31), domain.PatternWeekly))

	require.NoError(t, err)
	assert.Equal(t, []time.Time{
		date(2025, 1, 1), date(2025, 1, 8), date(2025, 1, 15), date(2025, 1, 22), date(2025, 1, 29),
	}, dates(meetings))
}

func TestGenerate_Daily(t *testing.T) {
	meetings, err := Generate(rule(date(2025, 3, 1), date(2025, 3, 5), domain.PatternDaily))

	require.NoError(t, err)
	require.Len(t, meetings, 5)
	assert.Equal(t, date(2025, 3, 1), meetings[0].MeetingDate)
	assert.Equal(t, date(2025, 3, 5), meetings[4].MeetingDate)
}

func TestGenerate_Biweekly(t *testing.T) {
	meetings, err := Generate(rule(date(2025, 1, 1), date(2025, 2, 1), domain.PatternBiweekly))

	require.NoError(t, err)
	assert.Equal(t, []time.Time{
		date(2025, 1, 1), date(2025, 1, 15), date(2025, 1, 29),
	}, dates(meetings))
}

func TestGenerate_MonthlyClampsToShortMonth(t *testing.T) {
	meetings, err := Generate(rule(date(2025, 1, 31), date(2025, 4, 30), domain.PatternMonthly))

	require.NoError(t, err)
	assert.Equal(t, []time.Time{
		date(2025, 1, 31), date(2025, 2, 28), date(2025, 3, 31), date(2025, 4, 30),
	}, dates(meetings))
}

func TestGenerate_MonthlyAnchorDayReturnsAfterShortMonths(t *testing.T) {
	meetings, err := Generate(rule(date(2025, 1, 31), date(2025, 5, 31), domain.PatternMonthly))

	require.NoError(t, err)
	assert.Equal(t, []time.Time{
		date(2025, 1, 31), date(2025, 2, 28), date(2025, 3, 31), date(2025, 4, 30), date(2025, 5, 31),
	}, dates(meetings))
}

func TestGenerate_MonthlyLeapFebruary(t *testing.T) {
	meetings, err := Generate(rule(date(2024, 1, 31), date(2024, 2, 29), domain.PatternMonthly))

	require.NoError(t, err)
	assert.Equal(t, []time.Time{date(2024, 1, 31), date(2024, 2, 29)}, dates(meetings))
}

func TestGenerate_InvertedRangeIsEmpty(t *testing.T) {
	meetings, err := Generate(rule(date(2025, 2, 1), date(2025, 1, 1), domain.PatternWeekly))

	require.NoError(t, err)
	assert.Empty(t, meetings)
}

func TestGenerate_SingleDayRange(t *testing.T) {
	meetings, err := Generate(rule(date(2025, 1, 1), date(2025, 1, 1), domain.PatternMonthly))

	require.NoError(t, err)
	require.Len(t, meetings, 1)
	assert.Equal(t, date(2025, 1, 1), meetings[0].MeetingDate)
}

func TestGenerate_UnknownPatternRejected(t *testing.T) {
	_, err := Generate(rule(date(2025, 1, 1), date(2025, 1, 31), "fortnightly"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownPattern)
}

func TestGenerate_InstancesStrictlyIncreasingAndBounded(t *testing.T) {
	start, end := date(2025, 1, 31), date(2025, 12, 31)
	for _, p := range []domain.RecurrencePattern{
		domain.PatternDaily, domain.PatternWeekly, domain.PatternBiweekly, domain.PatternMonthly,
	} {
		meetings, err := Generate(rule(start, end, p))
		require.NoError(t, err, p)
		require.NotEmpty(t, meetings, p)

		for i, m := range meetings {
			assert.False(t, m.MeetingDate.Before(start), p)
			assert.False(t, m.MeetingDate.After(end), p)
			if i > 0 {
				assert.True(t, m.MeetingDate.After(meetings[i-1].MeetingDate), p)
			}
		}
	}
}

func TestGenerate_CopiesBaseRecord(t *testing.T) {
	r := rule(date(2025, 1, 1), date(2025, 1, 8), domain.PatternWeekly)
	r.Base.Offering = 125.50
	r.Base.IsRealtime = true

	meetings, err := Generate(r)

	require.NoError(t, err)
	for _, m := range meetings {
		assert.Equal(t, r.Base, m.MeetingBase)
	}
}
