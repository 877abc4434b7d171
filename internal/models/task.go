// Package models contains domain types for doze entities.
// Persistence lives in the app stores over ports/secondary.KVStore.
package models

// WeeklyTask is the atomic unit of work. The same task id may live both inside a
// WeekPlan (the plan copy) and in the weekly-task document (the execution copy);
// the two records are mutated independently and reconciled by the synchronizer.
type WeeklyTask struct {
	ID        string `json:"id"`
	PillarID  string `json:"pillarId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	DueDate   string `json:"dueDate,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// OverdueTask is an incomplete task found in a past week of an approved plan.
type OverdueTask struct {
	Task          WeeklyTask `json:"task"`
	WeekNumber    int        `json:"weekNumber"`
	PillarID      string     `json:"pillarId"`
	PlanStartDate string     `json:"planStartDate"`
}

// ManualTaskIDPrefix marks dashboard-only tasks that are not tied to any plan.
const ManualTaskIDPrefix = "manual-"
