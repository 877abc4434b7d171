// Package calendar maps wall-clock time onto plan weeks and calendar weeks.
// Every function is pure: "now" is always passed in.
package calendar

import (
	"math"
	"time"

	"github.com/example/doze/internal/models"
)

// TimestampLayout is the ISO-8601 form used for every stored timestamp.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

const day = 24 * time.Hour

// FormatTimestamp renders t in UTC with millisecond precision.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp accepts RFC 3339 timestamps (with or without fractional
// seconds) and bare dates.
func ParseTimestamp(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CurrentWeekNumber returns floor(elapsed days / 7) + 1 clamped to [1, 12].
// An unparseable start date yields week 1.
func CurrentWeekNumber(startDate string, now time.Time) int {
	start, ok := ParseTimestamp(startDate)
	if !ok {
		return 1
	}
	diffDays := math.Floor(float64(now.Sub(start)) / float64(day))
	week := int(math.Floor(diffDays/7)) + 1
	return clamp(week, 1, models.PlanWeeks)
}

// CalendarWeekNumber approximates the week of the year as
// ceil((daysSinceJan1 + weekday(Jan1) + 1) / 7), in now's location.
func CalendarWeekNumber(now time.Time) int {
	startOfYear := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	pastDays := float64(now.Sub(startOfYear)) / float64(day)
	return int(math.Ceil((pastDays + float64(startOfYear.Weekday()) + 1) / 7))
}

// WeekInfo describes the calendar week containing a moment.
type WeekInfo struct {
	WeekNumber int
	Start      time.Time // Monday 00:00
	End        time.Time // Sunday 00:00
}

// CurrentWeekInfo returns the calendar week containing now, Monday to Sunday.
func CurrentWeekInfo(now time.Time) WeekInfo {
	offset := int(now.Weekday()) - 1
	if now.Weekday() == time.Sunday {
		offset = 6
	}
	y, m, d := now.Date()
	monday := time.Date(y, m, d-offset, 0, 0, 0, 0, now.Location())
	return WeekInfo{
		WeekNumber: CalendarWeekNumber(now),
		Start:      monday,
		End:        monday.AddDate(0, 0, 6),
	}
}

// WeekBounds returns the first and last day of week n of a plan starting at start.
func WeekBounds(start time.Time, n int) (time.Time, time.Time) {
	weekStart := start.AddDate(0, 0, (n-1)*7)
	return weekStart, weekStart.AddDate(0, 0, 6)
}

// WeekDates fills empty start/end dates of every week from the plan start date.
// Weeks that already carry dates are left alone.
func WeekDates(plan *models.TwelveWeekPlan) {
	start, ok := ParseTimestamp(plan.StartDate)
	if !ok {
		return
	}
	for i := range plan.Weeks {
		w := &plan.Weeks[i]
		if w.StartDate != "" && w.EndDate != "" {
			continue
		}
		s, e := WeekBounds(start, w.WeekNumber)
		w.StartDate = FormatTimestamp(s)
		w.EndDate = FormatTimestamp(e)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
