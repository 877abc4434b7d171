// Package task contains the pure business logic for the weekly execution list.
// Guards are pure functions that evaluate preconditions without side effects.
package task

import (
	"fmt"
	"strings"

	"github.com/example/doze/internal/models"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// AddTaskContext provides context for manual task creation guards.
type AddTaskContext struct {
	PillarID    string
	PillarKnown bool
	Title       string
}

// CanAddTask evaluates whether a manual task can be added.
// Rules:
// - Title must not be blank
// - Pillar must be registered
func CanAddTask(ctx AddTaskContext) GuardResult {
	if strings.TrimSpace(ctx.Title) == "" {
		return GuardResult{Allowed: false, Reason: "task title is required"}
	}

	if !ctx.PillarKnown {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("pillar %s: %s", ctx.PillarID, models.ErrUnknownPillar),
		}
	}

	return GuardResult{Allowed: true}
}

// ToggleCompletion flips every task with taskID in place and reports how many
// matched. An unknown id leaves tasks unchanged.
func ToggleCompletion(tasks []models.WeeklyTask, taskID string) int {
	matched := 0
	for i := range tasks {
		if tasks[i].ID == taskID {
			tasks[i].Completed = !tasks[i].Completed
			matched++
		}
	}
	return matched
}
