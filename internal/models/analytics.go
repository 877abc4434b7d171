package models

// ScoreLabel grades a weekly completion percentage.
type ScoreLabel string

const (
	ScoreUnstoppable ScoreLabel = "unstoppable"  // 80% and up
	ScoreOnTrack     ScoreLabel = "on track"     // 60% and up
	ScoreNeedsFocus  ScoreLabel = "needs focus"  // 40% and up
	ScoreUrgent      ScoreLabel = "urgent focus" // below 40%
)

// WeekScore is the completion of one plan week across active plans.
type WeekScore struct {
	WeekNumber int
	Completed  int
	Total      int
	Percent    int
}

// BurnUpPoint holds cumulative task counts up to and including a week.
// Completed stays 0 for weeks after the current one.
type BurnUpPoint struct {
	WeekNumber int
	Planned    int
	Completed  int
}

// PillarPerformance is the whole-plan completion of one pillar.
type PillarPerformance struct {
	PillarID   string
	PillarName string
	Completed  int
	Total      int
	Percent    int
}

// Analytics summarizes execution across every active plan.
type Analytics struct {
	CurrentWeek int
	Score       WeekScore
	Label       ScoreLabel
	BurnUp      []BurnUpPoint
	Pillars     []PillarPerformance // best first
	Overall     int
	History     []WeekScore // weeks 1 to 12
	Streak      int
}

// WeekStatus is the state of a plan week relative to the current week.
type WeekStatus string

const (
	WeekUpcoming  WeekStatus = "upcoming"
	WeekCurrent   WeekStatus = "current"
	WeekCompleted WeekStatus = "completed"
	WeekDelayed   WeekStatus = "delayed"
)

// PillarWeekTasks lists the tasks one pillar planned for a week.
type PillarWeekTasks struct {
	PillarID   string
	PillarName string
	Tasks      []WeeklyTask
}

// WeeklyReview is the end-of-week summary with a preview of the next week.
type WeeklyReview struct {
	CurrentWeek int
	Score       WeekScore
	Label       ScoreLabel
	NextWeek    []PillarWeekTasks
}
