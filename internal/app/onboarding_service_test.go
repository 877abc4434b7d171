package app

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/example/doze/internal/models"
	"github.com/example/doze/internal/ports/primary"
	"github.com/example/doze/internal/ports/secondary"
)

func TestOnboardingFlag(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(testNow)

	if s.onboarding.HasCompletedOnboarding(ctx) {
		t.Fatal("fresh install reports onboarding completed")
	}
	if err := s.onboarding.SetOnboardingCompleted(ctx, true); err != nil {
		t.Fatalf("SetOnboardingCompleted: %v", err)
	}
	if got := s.kv.docs[secondary.KeyOnboardingCompleted]; got != "true" {
		t.Errorf("stored flag = %q", got)
	}
	if !s.onboarding.HasCompletedOnboarding(ctx) {
		t.Error("flag not read back")
	}

	s.kv.getErr = errors.New("io")
	if s.onboarding.HasCompletedOnboarding(ctx) {
		t.Error("read failure should degrade to false")
	}
}

func TestSaveGeneratedPlan(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(testNow)
	seedTasks(t, s.kv, models.WeeklyTask{ID: "manual-0", PillarID: "family"})

	err := s.onboarding.SaveGeneratedPlan(ctx, primary.GeneratedPlanData{
		Pillars: []primary.GeneratedPillar{
			{ID: "business", OKR: "Faturar 100k"},
			{ID: "physical", OKR: "Correr 10km"},
		},
		Tasks: []primary.GeneratedTask{
			{Title: "Listar clientes", PillarID: "business"},
			{Title: "Comprar tênis", PillarID: "physical"},
		},
		OneThing: "Fechar contrato",
	})
	if err != nil {
		t.Fatalf("SaveGeneratedPlan: %v", err)
	}

	goals := s.goals.GetGoals(ctx)
	if goals["business"].OKRText() != "Faturar 100k" || goals["physical"].Desire != "" {
		t.Errorf("goals = %+v", goals)
	}

	want := []string{"manual-0", "onboarding-task-id1", "onboarding-task-id2"}
	if got := taskIDs(s.tasks.GetTasks(ctx)); !reflect.DeepEqual(got, want) {
		t.Errorf("tasks = %v, want %v", got, want)
	}
	if one := s.oneThing.GetOneThing(ctx); one == nil || one.Title != "Fechar contrato" {
		t.Errorf("one thing = %+v", one)
	}
}

func TestSaveGeneratedPlan_UnknownPillar(t *testing.T) {
	s := newTestServices(testNow)

	err := s.onboarding.SaveGeneratedPlan(context.Background(), primary.GeneratedPlanData{
		Pillars: []primary.GeneratedPillar{{ID: "hobbies", OKR: "x"}},
	})
	if !errors.Is(err, models.ErrUnknownPillar) {
		t.Errorf("err = %v, want ErrUnknownPillar", err)
	}
}

func TestClearAllData(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(testNow)
	for _, k := range secondary.AllKeys {
		s.kv.docs[k] = "{}"
	}
	s.kv.docs["unrelated"] = "keep"

	if err := s.onboarding.ClearAllData(ctx); err != nil {
		t.Fatalf("ClearAllData: %v", err)
	}
	if len(s.kv.docs) != 1 || s.kv.docs["unrelated"] != "keep" {
		t.Errorf("docs after clear = %v", s.kv.docs)
	}
}
