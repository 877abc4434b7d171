package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/example/doze/internal/models"
	"github.com/example/doze/internal/ports/secondary"
)

// documents reads and writes JSON documents over a KVStore.
// Reads never fail: missing or unreadable documents leave dst untouched.
type documents struct {
	kv     secondary.KVStore
	logger *slog.Logger
}

// read decodes the document under key into dst. It reports whether a document was decoded.
func (d documents) read(ctx context.Context, key string, dst any) bool {
	raw, found, err := d.kv.Get(ctx, key)
	if err != nil {
		d.logger.WarnContext(ctx, "document read failed", "key", key, "error", err)
		return false
	}
	if !found || raw == "" || raw == "null" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		d.logger.WarnContext(ctx, "document is not valid JSON", "key", key, "error", err)
		return false
	}
	return true
}

func (d documents) write(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := d.kv.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// planStore holds every pillar's plan in one document.
type planStore struct {
	docs documents
}

func (s planStore) all(ctx context.Context) map[string]*models.TwelveWeekPlan {
	plans := make(map[string]*models.TwelveWeekPlan)
	if !s.docs.read(ctx, secondary.KeyTwelveWeekPlans, &plans) || plans == nil {
		return make(map[string]*models.TwelveWeekPlan)
	}
	return plans
}

// save upserts p over a fresh read of the document.
func (s planStore) save(ctx context.Context, p *models.TwelveWeekPlan) error {
	return s.put(ctx, s.all(ctx), p)
}

// put stores p into plans, as returned by an earlier all, and writes that map
// back. The document is only read again after the write, to confirm the week
// count survived.
func (s planStore) put(ctx context.Context, plans map[string]*models.TwelveWeekPlan, p *models.TwelveWeekPlan) error {
	if p == nil || p.PillarID == "" {
		return &models.InvalidPlanError{Reason: "missing pillar id"}
	}

	plans[p.PillarID] = p
	if err := s.docs.write(ctx, secondary.KeyTwelveWeekPlans, plans); err != nil {
		return err
	}

	verified := s.all(ctx)[p.PillarID]
	verifiedWeeks := -1
	if verified != nil {
		verifiedWeeks = len(verified.Weeks)
	}
	if verifiedWeeks != len(p.Weeks) {
		s.docs.logger.ErrorContext(ctx, "plan verification failed",
			"pillar", p.PillarID,
			"saved_weeks", len(p.Weeks),
			"verified_weeks", verifiedWeeks,
		)
	}
	return nil
}

// taskStore holds the execution list.
type taskStore struct {
	docs documents
}

func (s taskStore) all(ctx context.Context) []models.WeeklyTask {
	var tasks []models.WeeklyTask
	if !s.docs.read(ctx, secondary.KeyWeeklyTasks, &tasks) || tasks == nil {
		return []models.WeeklyTask{}
	}
	return tasks
}

func (s taskStore) save(ctx context.Context, tasks []models.WeeklyTask) error {
	if tasks == nil {
		tasks = []models.WeeklyTask{}
	}
	return s.docs.write(ctx, secondary.KeyWeeklyTasks, tasks)
}

// goalStore holds every pillar's goal in one document.
type goalStore struct {
	docs documents
}

func (s goalStore) all(ctx context.Context) map[string]*models.Goal {
	goals := make(map[string]*models.Goal)
	if !s.docs.read(ctx, secondary.KeyPillarGoals, &goals) || goals == nil {
		return make(map[string]*models.Goal)
	}
	return goals
}

func (s goalStore) save(ctx context.Context, goals map[string]*models.Goal) error {
	return s.docs.write(ctx, secondary.KeyPillarGoals, goals)
}

func track(ctx context.Context, events secondary.EventSink, logger *slog.Logger, name string, props map[string]any) {
	if events == nil {
		return
	}
	if err := events.Track(ctx, name, props); err != nil {
		logger.WarnContext(ctx, "event not recorded", "event", name, "error", err)
	}
}
