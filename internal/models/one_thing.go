package models

// OneThing is the single most important focus of a calendar week.
type OneThing struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	WeekNumber int    `json:"weekNumber"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	CreatedAt  string `json:"createdAt"`
}
