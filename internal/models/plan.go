package models

import "fmt"

// TwelveWeekPlan is the live plan of a pillar. At most one exists per pillar.
type TwelveWeekPlan struct {
	PillarID   string     `json:"pillarId"`
	Objective  string     `json:"objective"`
	KeyResults []string   `json:"keyResults"`
	Weeks      []WeekPlan `json:"weeks"`
	StartDate  string     `json:"startDate"`
	CreatedAt  string     `json:"createdAt"`
	// IsApproved is nil for plans written before approval existed.
	// nil reads as approved; only an explicit false holds a plan back.
	IsApproved *bool `json:"isApproved,omitempty"`
}

// WeekPlan holds the tasks of a single week of a plan.
// StartDate and EndDate may be empty; consumers recompute them from the plan start.
type WeekPlan struct {
	WeekNumber int          `json:"weekNumber"`
	Tasks      []WeeklyTask `json:"tasks"`
	StartDate  string       `json:"startDate"`
	EndDate    string       `json:"endDate"`
}

// PlanWeeks is the fixed length of a plan.
const PlanWeeks = 12

// Approved reports the effective approval of the plan.
func (p *TwelveWeekPlan) Approved() bool {
	if p == nil {
		return false
	}
	return p.IsApproved == nil || *p.IsApproved
}

// Week returns the week with the given number, or nil.
func (p *TwelveWeekPlan) Week(n int) *WeekPlan {
	for i := range p.Weeks {
		if p.Weeks[i].WeekNumber == n {
			return &p.Weeks[i]
		}
	}
	return nil
}

// TotalTasks counts tasks across every week.
func (p *TwelveWeekPlan) TotalTasks() int {
	n := 0
	for _, w := range p.Weeks {
		n += len(w.Tasks)
	}
	return n
}

// CompletedTasks counts completed tasks across every week.
func (p *TwelveWeekPlan) CompletedTasks() int {
	n := 0
	for _, w := range p.Weeks {
		for _, t := range w.Tasks {
			if t.Completed {
				n++
			}
		}
	}
	return n
}

// SeededTaskID is the deterministic id given to tasks created with a plan.
func SeededTaskID(pillarID string, week, index int) string {
	return fmt.Sprintf("%s-w%d-t%d", pillarID, week, index)
}

// BoolPtr is a helper for optional flags such as IsApproved.
func BoolPtr(v bool) *bool { return &v }
