package calendar

import (
	"testing"
	"time"

	"github.com/example/doze/internal/models"
)

func TestCurrentWeekNumber(t *testing.T) {
	now := time.Date(2026, 3, 18, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		startDate string
		want      int
	}{
		{name: "same day is week 1", startDate: FormatTimestamp(now), want: 1},
		{name: "6 days elapsed is week 1", startDate: FormatTimestamp(now.AddDate(0, 0, -6)), want: 1},
		{name: "7 days elapsed is week 2", startDate: FormatTimestamp(now.AddDate(0, 0, -7)), want: 2},
		{name: "20 days elapsed is week 3", startDate: FormatTimestamp(now.AddDate(0, 0, -20)), want: 3},
		{name: "70 days elapsed is week 11", startDate: FormatTimestamp(now.AddDate(0, 0, -70)), want: 11},
		{name: "far past clamps to 12", startDate: FormatTimestamp(now.AddDate(-3, 0, 0)), want: 12},
		{name: "future start clamps to 1", startDate: FormatTimestamp(now.AddDate(0, 2, 0)), want: 1},
		{name: "bare date", startDate: "2026-03-04", want: 3},
		{name: "unparseable falls back to 1", startDate: "not a date", want: 1},
		{name: "empty falls back to 1", startDate: "", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentWeekNumber(tt.startDate, now)
			if got != tt.want {
				t.Errorf("CurrentWeekNumber(%q) = %d, want %d", tt.startDate, got, tt.want)
			}
		})
	}
}

func TestCurrentWeekNumber_AlwaysInRange(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	for days := -400; days <= 400; days += 3 {
		start := FormatTimestamp(now.AddDate(0, 0, days))
		got := CurrentWeekNumber(start, now)
		if got < 1 || got > models.PlanWeeks {
			t.Fatalf("CurrentWeekNumber for offset %d = %d, out of range", days, got)
		}
	}
}

func TestCalendarWeekNumber(t *testing.T) {
	// 2026-01-01 is a Thursday.
	jan1 := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	if got := CalendarWeekNumber(jan1); got != 1 {
		t.Errorf("CalendarWeekNumber(Jan 1) = %d, want 1", got)
	}

	t.Run("does not decrease within a week", func(t *testing.T) {
		monday := time.Date(2026, 3, 9, 0, 30, 0, 0, time.UTC)
		prev := CalendarWeekNumber(monday)
		for h := 1; h < 7*24; h++ {
			cur := CalendarWeekNumber(monday.Add(time.Duration(h) * time.Hour))
			if cur < prev {
				t.Fatalf("week number decreased at +%dh: %d -> %d", h, prev, cur)
			}
			prev = cur
		}
	})

	t.Run("increases by one after seven days", func(t *testing.T) {
		base := time.Date(2026, 5, 13, 15, 0, 0, 0, time.UTC)
		for i := 0; i < 20; i++ {
			a := base.AddDate(0, 0, i)
			b := a.AddDate(0, 0, 7)
			if CalendarWeekNumber(b) != CalendarWeekNumber(a)+1 {
				t.Fatalf("week(%s)=%d, week(+7d)=%d", a, CalendarWeekNumber(a), CalendarWeekNumber(b))
			}
		}
	})
}

func TestCurrentWeekInfo(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
	}{
		{name: "wednesday", now: time.Date(2026, 10, 14, 13, 0, 0, 0, time.UTC)},
		{name: "monday", now: time.Date(2026, 10, 12, 8, 0, 0, 0, time.UTC)},
		{name: "sunday belongs to previous monday", now: time.Date(2026, 10, 18, 20, 0, 0, 0, time.UTC)},
	}
	wantStart := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := CurrentWeekInfo(tt.now)
			if !info.Start.Equal(wantStart) {
				t.Errorf("Start = %s, want %s", info.Start, wantStart)
			}
			if !info.End.Equal(wantStart.AddDate(0, 0, 6)) {
				t.Errorf("End = %s, want Sunday", info.End)
			}
			if info.WeekNumber != CalendarWeekNumber(tt.now) {
				t.Errorf("WeekNumber = %d, want %d", info.WeekNumber, CalendarWeekNumber(tt.now))
			}
		})
	}
}

func TestWeekDates(t *testing.T) {
	plan := &models.TwelveWeekPlan{
		StartDate: "2026-01-05T00:00:00.000Z",
		Weeks: []models.WeekPlan{
			{WeekNumber: 1},
			{WeekNumber: 3, StartDate: "keep", EndDate: "keep"},
		},
	}

	WeekDates(plan)

	if plan.Weeks[0].StartDate != "2026-01-05T00:00:00.000Z" {
		t.Errorf("week 1 start = %q", plan.Weeks[0].StartDate)
	}
	if plan.Weeks[0].EndDate != "2026-01-11T00:00:00.000Z" {
		t.Errorf("week 1 end = %q", plan.Weeks[0].EndDate)
	}
	if plan.Weeks[1].StartDate != "keep" {
		t.Errorf("week 3 dates were overwritten")
	}
}
