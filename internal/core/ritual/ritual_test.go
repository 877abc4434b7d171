package ritual

import (
	"testing"
	"time"

	"github.com/example/doze/internal/core/calendar"
	"github.com/example/doze/internal/models"
)

func TestRefresh(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	week := calendar.CalendarWeekNumber(now)

	t.Run("same week is kept", func(t *testing.T) {
		stored := models.GovernanceRitualState{WeeklyReview: true, WeeklyPlanning: true, WeekNumber: week}
		got, changed := Refresh(stored, now)
		if changed {
			t.Error("expected no reset")
		}
		if got != stored {
			t.Errorf("state = %+v, want %+v", got, stored)
		}
	})

	t.Run("previous week is reset", func(t *testing.T) {
		stored := models.GovernanceRitualState{WeeklyReview: true, WeeklyPlanning: true, WeekNumber: week - 1}
		got, changed := Refresh(stored, now)
		if !changed {
			t.Fatal("expected reset")
		}
		if got.WeeklyReview || got.WeeklyPlanning {
			t.Errorf("flags not cleared: %+v", got)
		}
		if got.WeekNumber != week {
			t.Errorf("WeekNumber = %d, want %d", got.WeekNumber, week)
		}
	})
}

func TestToggle(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	state := Fresh(now)

	state, err := Toggle(state, models.RitualWeeklyPlanning, now)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if !state.WeeklyPlanning || state.WeeklyReview {
		t.Errorf("state = %+v", state)
	}

	state, _ = Toggle(state, models.RitualWeeklyPlanning, now)
	if state.WeeklyPlanning {
		t.Error("second toggle should clear the flag")
	}

	if _, err := Toggle(state, "meditation", now); err == nil {
		t.Error("expected error for unknown ritual")
	}
}
