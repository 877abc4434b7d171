package models

// Ritual names a weekly governance checklist item.
type Ritual string

// Governance rituals.
const (
	RitualWeeklyReview   Ritual = "weeklyReview"
	RitualWeeklyPlanning Ritual = "weeklyPlanning"
)

// GovernanceRitualState is the singleton weekly checklist.
type GovernanceRitualState struct {
	WeeklyReview   bool   `json:"weeklyReview"`
	WeeklyPlanning bool   `json:"weeklyPlanning"`
	WeekNumber     int    `json:"weekNumber"`
	UpdatedAt      string `json:"updatedAt"`
}

// AllDone reports whether every ritual of the week is checked.
func (s GovernanceRitualState) AllDone() bool {
	return s.WeeklyReview && s.WeeklyPlanning
}
