package app

import (
	"context"

	"github.com/example/doze/internal/core/calendar"
	"github.com/example/doze/internal/core/mentor"
	coreplan "github.com/example/doze/internal/core/plan"
	"github.com/example/doze/internal/models"
	"github.com/example/doze/internal/ports/primary"
	"github.com/example/doze/internal/ports/secondary"
)

// MentorServiceImpl implements the MentorService interface.
type MentorServiceImpl struct {
	plans   planStore
	tasks   taskStore
	goals   goalStore
	docs    documents
	rituals primary.RitualService
	pillars *models.PillarRegistry
	opts    options
}

// NewMentorService creates a new MentorService with injected dependencies.
func NewMentorService(
	kv secondary.KVStore,
	rituals primary.RitualService,
	pillars *models.PillarRegistry,
	opts ...Option,
) *MentorServiceImpl {
	o := buildOptions(opts)
	docs := documents{kv: kv, logger: o.logger}
	return &MentorServiceImpl{
		plans:   planStore{docs: docs},
		tasks:   taskStore{docs: docs},
		goals:   goalStore{docs: docs},
		docs:    docs,
		rituals: rituals,
		pillars: pillars,
		opts:    o,
	}
}

// GetMentorContext builds a progress snapshot.
func (s *MentorServiceImpl) GetMentorContext(ctx context.Context) models.MentorContext {
	now := s.opts.now()
	plans := s.plans.all(ctx)
	order := models.OrderedIDs(s.pillars, plans)

	mc := models.MentorContext{
		CalendarWeekNumber: calendar.CalendarWeekNumber(now),
		ActivePlans:        []models.ActivePlanSummary{},
		Overdue:            models.OverdueSummary{ByPillar: []models.PillarCount{}},
		Goals:              []models.GoalSummary{},
	}

	total, completed := 0, 0
	for _, pillarID := range order {
		p := plans[pillarID]
		if p == nil || !p.Approved() || len(p.Weeks) == 0 {
			continue
		}
		prog := coreplan.PlanProgress(p, now)
		mc.ActivePlans = append(mc.ActivePlans, models.ActivePlanSummary{
			PillarID:        pillarID,
			PillarName:      s.pillars.Name(pillarID),
			CurrentWeek:     prog.CurrentWeek,
			TotalTasks:      prog.TotalTasks,
			CompletedTasks:  prog.CompletedTasks,
			ProgressPercent: prog.Percent,
			HasDelayedWeeks: prog.HasDelayedWeeks,
		})
		total += prog.TotalTasks
		completed += prog.CompletedTasks
	}
	mc.OverallProgress = coreplan.Percent(completed, total)

	tasks := s.tasks.all(ctx)
	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	mc.CurrentWeekTasks = models.WeekTaskSummary{
		Total:          len(tasks),
		Completed:      done,
		Pending:        len(tasks) - done,
		CompletionRate: coreplan.Percent(done, len(tasks)),
	}

	overdue := coreplan.FindOverdue(order, plans, now)
	mc.Overdue.Count = len(overdue)
	index := make(map[string]int)
	for _, ot := range overdue {
		i, ok := index[ot.PillarID]
		if !ok {
			i = len(mc.Overdue.ByPillar)
			index[ot.PillarID] = i
			mc.Overdue.ByPillar = append(mc.Overdue.ByPillar, models.PillarCount{PillarID: ot.PillarID})
		}
		mc.Overdue.ByPillar[i].Count++
	}

	mc.Rituals = s.rituals.GetRituals(ctx)

	var one models.OneThing
	if s.docs.read(ctx, secondary.KeyOneThing, &one) {
		mc.OneThing = one.Title
	}

	goals := s.goals.all(ctx)
	for _, pillarID := range models.OrderedIDs(s.pillars, goals) {
		g := goals[pillarID]
		if g == nil {
			continue
		}
		mc.Goals = append(mc.Goals, models.GoalSummary{PillarID: pillarID, OKR: g.OKRText()})
	}

	return mc
}

// GetMentorInsights classifies the current snapshot.
func (s *MentorServiceImpl) GetMentorInsights(ctx context.Context) models.MentorInsights {
	return mentor.Insights(s.GetMentorContext(ctx))
}

// Ensure MentorServiceImpl implements the interface
var _ primary.MentorService = (*MentorServiceImpl)(nil)
