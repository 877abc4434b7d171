// Package plan contains the pure business logic for twelve-week plans.
// Guards evaluate preconditions; planners compute new state. Nothing here
// performs I/O.
package plan

import "fmt"

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

// ApprovePlanContext provides context for plan approval guards.
type ApprovePlanContext struct {
	PillarID   string
	PlanExists bool
	Approved   bool // effective approval (nil flag reads as approved)
}

// GeneratePlanContext provides context for plan generation guards.
type GeneratePlanContext struct {
	PillarID    string
	PillarKnown bool
	HasGoal     bool
	GoalText    string // OKR, or desire when no OKR exists
}

// CanApprovePlan evaluates whether a plan can be approved.
// Rules:
// - Plan must exist
// - Plan must still be awaiting approval
func CanApprovePlan(ctx ApprovePlanContext) GuardResult {
	if !ctx.PlanExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("no plan for pillar %s", ctx.PillarID),
		}
	}

	if ctx.Approved {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("plan for pillar %s is already approved", ctx.PillarID),
		}
	}

	return GuardResult{Allowed: true}
}

// CanGeneratePlan evaluates whether a plan can be generated for a pillar.
// Rules:
// - Pillar must be known
// - Pillar must have a goal with an OKR or a desire
func CanGeneratePlan(ctx GeneratePlanContext) GuardResult {
	if !ctx.PillarKnown {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("unknown pillar %s", ctx.PillarID),
		}
	}

	if !ctx.HasGoal || ctx.GoalText == "" {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("pillar %s has no goal. Set one first with: doze goal set %s", ctx.PillarID, ctx.PillarID),
		}
	}

	return GuardResult{Allowed: true}
}
