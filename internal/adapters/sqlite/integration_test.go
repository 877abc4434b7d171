package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/example/doze/internal/adapters/sqlite"
	"github.com/example/doze/internal/app"
	"github.com/example/doze/internal/db"
	"github.com/example/doze/internal/models"
	"github.com/example/doze/internal/ports/primary"
	"github.com/example/doze/internal/ports/secondary"
)

// Integration tests run the application services against real SQLite storage.

func TestIntegration_GenerateApproveToggle(t *testing.T) {
	testDB := setupTestDB(t)
	ctx := context.Background()
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	opts := []app.Option{app.WithClock(func() time.Time { return now })}

	kv := sqlite.NewKVStore(testDB)
	events := sqlite.NewEventSink(testDB)
	pillars := models.NewPillarRegistry()

	goals := app.NewGoalService(kv, pillars, opts...)
	tasks := app.NewTaskService(kv, pillars, opts...)
	sync := app.NewSyncService(kv, tasks, pillars, events, opts...)
	plans := app.NewPlanService(kv, goals, sync, pillars, events, opts...)

	okr := "Correr 10km"
	if _, err := goals.SaveGoal(ctx, primary.SaveGoalRequest{PillarID: "physical", Desire: "Saúde", OKR: &okr}); err != nil {
		t.Fatalf("SaveGoal failed: %v", err)
	}
	if _, err := plans.GeneratePlan(ctx, primary.GeneratePlanRequest{
		PillarID: "physical",
		Text:     "Semana 1\n- Correr 3km\n- Alongar\nSemana 2\n- Correr 4km",
	}); err != nil {
		t.Fatalf("GeneratePlan failed: %v", err)
	}
	if got := tasks.GetTasks(ctx); len(got) != 0 {
		t.Fatalf("dashboard before approval = %+v", got)
	}

	if _, err := plans.ApprovePlan(ctx, "physical"); err != nil {
		t.Fatalf("ApprovePlan failed: %v", err)
	}
	dashboard := tasks.GetTasks(ctx)
	if len(dashboard) != 2 {
		t.Fatalf("dashboard = %+v, want the 2 week-1 tasks", dashboard)
	}

	if _, err := sync.ToggleTask(ctx, dashboard[0].ID); err != nil {
		t.Fatalf("ToggleTask failed: %v", err)
	}
	if !plans.GetPlan(ctx, "physical").Week(1).Tasks[0].Completed {
		t.Error("plan copy not completed after toggle")
	}

	if n := countRows(t, testDB, "analytics_events"); n != 3 {
		t.Errorf("analytics events = %d, want 3 (generated, approved, toggled)", n)
	}
}

func TestIntegration_ReminderFlow(t *testing.T) {
	testDB := setupTestDB(t)
	ctx := context.Background()
	monday := time.Date(2026, 10, 12, 9, 0, 0, 0, time.UTC)
	opts := []app.Option{app.WithClock(func() time.Time { return monday })}

	if err := db.SeedFixtures(testDB, monday); err != nil {
		t.Fatalf("SeedFixtures failed: %v", err)
	}

	kv := sqlite.NewKVStore(testDB)
	notifier := sqlite.NewReminderStore(testDB)
	pillars := models.NewPillarRegistry()
	tasks := app.NewTaskService(kv, pillars, opts...)
	sync := app.NewSyncService(kv, tasks, pillars, nil, opts...)
	overdue := app.NewOverdueService(kv, sync, pillars, nil, opts...)
	reminders := app.NewReminderService(notifier, overdue, opts...)

	scheduled, err := reminders.CheckMidWeekAlert(ctx)
	if err != nil {
		t.Fatalf("CheckMidWeekAlert failed: %v", err)
	}
	if !scheduled {
		t.Fatal("expected mid-week alert for the seeded overdue task")
	}

	list, err := notifier.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 || list[0].Identifier != secondary.ReminderMidWeekAlert {
		t.Errorf("reminders = %+v", list)
	}
}
