package models

// MentorContext is a read-only snapshot of progress across every store.
type MentorContext struct {
	CalendarWeekNumber int
	ActivePlans        []ActivePlanSummary
	OverallProgress    int
	CurrentWeekTasks   WeekTaskSummary
	Overdue            OverdueSummary
	Rituals            GovernanceRitualState
	OneThing           string // empty when unset
	Goals              []GoalSummary
}

// ActivePlanSummary describes one approved plan.
type ActivePlanSummary struct {
	PillarID        string
	PillarName      string
	CurrentWeek     int
	TotalTasks      int
	CompletedTasks  int
	ProgressPercent int
	HasDelayedWeeks bool
}

// WeekTaskSummary counts the execution list.
type WeekTaskSummary struct {
	Total          int
	Completed      int
	Pending        int
	CompletionRate int
}

// OverdueSummary counts overdue tasks per pillar, in first-seen order.
type OverdueSummary struct {
	Count    int
	ByPillar []PillarCount
}

// PillarCount pairs a pillar with a count.
type PillarCount struct {
	PillarID string
	Count    int
}

// GoalSummary carries the OKR text of a pillar goal, empty when unset.
type GoalSummary struct {
	PillarID string
	OKR      string
}

// MentorInsights are findings derived from a MentorContext.
type MentorInsights struct {
	UrgentIssues []string
	Suggestions  []string
	Celebrations []string
}
