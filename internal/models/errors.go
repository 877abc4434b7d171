package models

import "errors"

// Lookup failures raised by targeted plan mutations.
var (
	ErrPlanNotFound = errors.New("plan not found")
	ErrWeekNotFound = errors.New("week not found")
	ErrTaskNotFound = errors.New("task not found")
)

// ErrUnknownPillar is returned when a record names a pillar the registry does not know.
var ErrUnknownPillar = errors.New("unknown pillar")

// InvalidPlanError reports a plan that cannot be persisted.
type InvalidPlanError struct {
	Reason string
}

func (e *InvalidPlanError) Error() string {
	return "invalid plan: " + e.Reason
}
