// Package ritual holds the weekly governance checklist rules.
package ritual

import (
	"fmt"
	"time"

	"github.com/example/doze/internal/core/calendar"
	"github.com/example/doze/internal/models"
)

// Fresh returns an unchecked state for the calendar week of now.
func Fresh(now time.Time) models.GovernanceRitualState {
	return models.GovernanceRitualState{
		WeekNumber: calendar.CalendarWeekNumber(now),
		UpdatedAt:  calendar.FormatTimestamp(now),
	}
}

// Refresh expires a stored state that belongs to another calendar week.
// The second result is true when the state was reset and must be persisted.
func Refresh(stored models.GovernanceRitualState, now time.Time) (models.GovernanceRitualState, bool) {
	if stored.WeekNumber == calendar.CalendarWeekNumber(now) {
		return stored, false
	}
	return Fresh(now), true
}

// Toggle flips the named ritual.
func Toggle(state models.GovernanceRitualState, name models.Ritual, now time.Time) (models.GovernanceRitualState, error) {
	switch name {
	case models.RitualWeeklyReview:
		state.WeeklyReview = !state.WeeklyReview
	case models.RitualWeeklyPlanning:
		state.WeeklyPlanning = !state.WeeklyPlanning
	default:
		return state, fmt.Errorf("unknown ritual %q (want %s or %s)", name, models.RitualWeeklyReview, models.RitualWeeklyPlanning)
	}
	state.UpdatedAt = calendar.FormatTimestamp(now)
	return state, nil
}
