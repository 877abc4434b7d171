package app

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/example/doze/internal/core/calendar"
	"github.com/example/doze/internal/models"
	"github.com/example/doze/internal/ports/secondary"
)

func TestGetRituals_ResetsStaleWeek(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(testNow)
	week := calendar.CalendarWeekNumber(testNow)

	seedDoc(t, s.kv, secondary.KeyGovernanceRituals, models.GovernanceRitualState{
		WeeklyReview: true, WeeklyPlanning: true, WeekNumber: week - 1,
	})

	got := s.rituals.GetRituals(ctx)
	if got.WeeklyReview || got.WeeklyPlanning || got.WeekNumber != week {
		t.Errorf("state = %+v, want fresh week %d", got, week)
	}

	var stored models.GovernanceRitualState
	if err := json.Unmarshal([]byte(s.kv.docs[secondary.KeyGovernanceRituals]), &stored); err != nil {
		t.Fatalf("stored state: %v", err)
	}
	if stored.WeekNumber != week || stored.WeeklyReview {
		t.Errorf("persisted = %+v", stored)
	}
}

func TestGetRituals_CurrentWeekUntouched(t *testing.T) {
	s := newTestServices(testNow)
	seedDoc(t, s.kv, secondary.KeyGovernanceRituals, models.GovernanceRitualState{
		WeeklyReview: true, WeekNumber: calendar.CalendarWeekNumber(testNow),
	})

	if got := s.rituals.GetRituals(context.Background()); !got.WeeklyReview {
		t.Errorf("state = %+v", got)
	}
	if len(s.kv.writes) != 0 {
		t.Errorf("writes = %v, want none", s.kv.writes)
	}
}

func TestGetRituals_FirstRunNotPersisted(t *testing.T) {
	s := newTestServices(testNow)

	got := s.rituals.GetRituals(context.Background())
	if got.WeekNumber != calendar.CalendarWeekNumber(testNow) || got.AllDone() {
		t.Errorf("state = %+v", got)
	}
	if len(s.kv.writes) != 0 {
		t.Errorf("writes = %v, want none", s.kv.writes)
	}
}

func TestToggleRitual(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(testNow)

	state, err := s.rituals.ToggleRitual(ctx, models.RitualWeeklyPlanning)
	if err != nil {
		t.Fatalf("ToggleRitual: %v", err)
	}
	if !state.WeeklyPlanning || state.WeeklyReview {
		t.Errorf("state = %+v", state)
	}

	state, err = s.rituals.ToggleRitual(ctx, models.RitualWeeklyReview)
	if err != nil {
		t.Fatalf("ToggleRitual: %v", err)
	}
	if !state.AllDone() {
		t.Errorf("state = %+v, want all done", state)
	}
	if got := s.rituals.GetRituals(ctx); !got.AllDone() {
		t.Errorf("reloaded = %+v", got)
	}

	if _, err := s.rituals.ToggleRitual(ctx, models.Ritual("meditate")); err == nil {
		t.Error("expected error for unknown ritual")
	}
}

func TestToggleRitual_WriteFailure(t *testing.T) {
	s := newTestServices(testNow)
	s.kv.setErr = errors.New("read-only")

	if _, err := s.rituals.ToggleRitual(context.Background(), models.RitualWeeklyReview); err == nil {
		t.Fatal("expected error")
	}
}
