package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/doze/internal/core/calendar"
	"github.com/example/doze/internal/models"
	"github.com/example/doze/internal/ports/secondary"
)

// SeedFixtures populates the database with a development data set: goals for
// two pillars, an approved business plan in its third week with one overdue
// task, the matching dashboard tasks and a One Thing.
func SeedFixtures(database *sql.DB, now time.Time) error {
	ts := calendar.FormatTimestamp(now)
	start := calendar.FormatTimestamp(now.AddDate(0, 0, -14))

	businessOKR := "Faturar R$ 100 mil no trimestre\nKR1: 10 novos clientes\nKR2: Ticket médio de R$ 10 mil"
	physicalOKR := "Correr 10 km abaixo de 60 minutos"
	goals := map[string]*models.Goal{
		models.PillarBusiness: {PillarID: models.PillarBusiness, Desire: "Crescer a consultoria", OKR: &businessOKR, CreatedAt: ts, UpdatedAt: ts},
		models.PillarPhysical: {PillarID: models.PillarPhysical, Desire: "Voltar a correr", OKR: &physicalOKR, CreatedAt: ts, UpdatedAt: ts},
	}

	weekTasks := map[int][]struct {
		title string
		done  bool
	}{
		1: {{"Mapear clientes atuais", true}, {"Definir oferta principal", false}},
		2: {{"Ligar para 10 leads", true}, {"Revisar precificação", true}},
		3: {{"Enviar 3 propostas", false}, {"Publicar estudo de caso", false}},
		4: {{"Fechar primeiro contrato", false}},
	}

	plan := &models.TwelveWeekPlan{
		PillarID:   models.PillarBusiness,
		Objective:  "Faturar R$ 100 mil no trimestre",
		KeyResults: []string{"KR1: 10 novos clientes", "KR2: Ticket médio de R$ 10 mil"},
		StartDate:  start,
		CreatedAt:  start,
		IsApproved: models.BoolPtr(true),
	}
	var dashboard []models.WeeklyTask
	for n := 1; n <= models.PlanWeeks; n++ {
		wp := models.WeekPlan{WeekNumber: n, Tasks: []models.WeeklyTask{}}
		for i, t := range weekTasks[n] {
			wp.Tasks = append(wp.Tasks, models.WeeklyTask{
				ID:        models.SeededTaskID(models.PillarBusiness, n, i),
				PillarID:  models.PillarBusiness,
				Title:     t.title,
				Completed: t.done,
				CreatedAt: start,
			})
		}
		if n == 3 {
			dashboard = append(dashboard, wp.Tasks...)
		}
		plan.Weeks = append(plan.Weeks, wp)
	}
	dashboard = append(dashboard, models.WeeklyTask{
		ID:        models.ManualTaskIDPrefix + "seed-1",
		PillarID:  models.PillarFamily,
		Title:     "Jantar em família",
		CreatedAt: ts,
	})

	oneThing := models.OneThing{
		ID:        "onething-seed",
		Title:     "Enviar 3 propostas",
		CreatedAt: ts,
	}

	docs := []struct {
		key   string
		value any
	}{
		{secondary.KeyPillarGoals, goals},
		{secondary.KeyTwelveWeekPlans, map[string]*models.TwelveWeekPlan{models.PillarBusiness: plan}},
		{secondary.KeyWeeklyTasks, dashboard},
		{secondary.KeyOneThing, oneThing},
		{secondary.KeyOnboardingCompleted, true},
	}
	for _, d := range docs {
		raw, err := json.Marshal(d.value)
		if err != nil {
			return fmt.Errorf("seed %s: %w", d.key, err)
		}
		if _, err := database.Exec(
			"INSERT INTO kv_documents (key, value, updated_at) VALUES (?, ?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at",
			d.key, string(raw), ts,
		); err != nil {
			return fmt.Errorf("seed %s: %w", d.key, err)
		}
	}

	return nil
}
