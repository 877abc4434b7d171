package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/example/doze/internal/core/calendar"
	"github.com/example/doze/internal/models"
	"github.com/example/doze/internal/ports/secondary"
)

var testNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC) // a Thursday

// ============================================================================
// Mock Implementations
// ============================================================================

// Ensure mocks implement the interfaces
var (
	_ secondary.KVStore   = (*mockKVStore)(nil)
	_ secondary.Notifier  = (*mockNotifier)(nil)
	_ secondary.EventSink = (*mockEventSink)(nil)
)

// mockKVStore implements secondary.KVStore for testing.
type mockKVStore struct {
	docs      map[string]string
	writes    []string
	getErr    error
	setErr    error
	removeErr error
	// mangle, when set, rewrites a value as it is stored.
	mangle func(key, value string) string
}

func newMockKVStore() *mockKVStore {
	return &mockKVStore{docs: make(map[string]string)}
}

func (m *mockKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.docs[key]
	return v, ok, nil
}

func (m *mockKVStore) Set(ctx context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	if m.mangle != nil {
		value = m.mangle(key, value)
	}
	m.docs[key] = value
	m.writes = append(m.writes, key)
	return nil
}

func (m *mockKVStore) Remove(ctx context.Context, key string) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	delete(m.docs, key)
	return nil
}

func (m *mockKVStore) MultiRemove(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		if err := m.Remove(ctx, k); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockKVStore) writeCount(key string) int {
	n := 0
	for _, k := range m.writes {
		if k == key {
			n++
		}
	}
	return n
}

// mockNotifier implements secondary.Notifier for testing.
type mockNotifier struct {
	scheduled   map[string]secondary.Reminder
	cancelled   []string
	scheduleErr error
	cancelErr   error
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{scheduled: make(map[string]secondary.Reminder)}
}

func (m *mockNotifier) Schedule(ctx context.Context, r secondary.Reminder) error {
	if m.scheduleErr != nil {
		return m.scheduleErr
	}
	m.scheduled[r.Identifier] = r
	return nil
}

func (m *mockNotifier) Cancel(ctx context.Context, identifier string) error {
	if m.cancelErr != nil {
		return m.cancelErr
	}
	m.cancelled = append(m.cancelled, identifier)
	delete(m.scheduled, identifier)
	return nil
}

type trackedEvent struct {
	name  string
	props map[string]any
}

// mockEventSink implements secondary.EventSink for testing.
type mockEventSink struct {
	events   []trackedEvent
	trackErr error
}

func (m *mockEventSink) Track(ctx context.Context, name string, props map[string]any) error {
	if m.trackErr != nil {
		return m.trackErr
	}
	m.events = append(m.events, trackedEvent{name: name, props: props})
	return nil
}

func (m *mockEventSink) names() []string {
	var out []string
	for _, e := range m.events {
		out = append(out, e.name)
	}
	return out
}

// ============================================================================
// Service Wiring
// ============================================================================

type testServices struct {
	kv       *mockKVStore
	notifier *mockNotifier
	events   *mockEventSink
	logs     *bytes.Buffer

	goals      *GoalServiceImpl
	tasks      *TaskServiceImpl
	sync       *SyncServiceImpl
	plans      *PlanServiceImpl
	overdue    *OverdueServiceImpl
	rituals    *RitualServiceImpl
	mentor     *MentorServiceImpl
	reminders  *ReminderServiceImpl
	oneThing   *OneThingServiceImpl
	chat       *ChatServiceImpl
	onboarding *OnboardingServiceImpl
	analytics  *AnalyticsServiceImpl
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id%d", n)
	}
}

func newTestServices(now time.Time) *testServices {
	ts := &testServices{
		kv:       newMockKVStore(),
		notifier: newMockNotifier(),
		events:   &mockEventSink{},
		logs:     &bytes.Buffer{},
	}

	logger := slog.New(slog.NewTextHandler(ts.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	opts := []Option{
		WithClock(func() time.Time { return now }),
		WithIDGenerator(sequentialIDs()),
		WithLogger(logger),
	}
	pillars := models.NewPillarRegistry()

	ts.goals = NewGoalService(ts.kv, pillars, opts...)
	ts.tasks = NewTaskService(ts.kv, pillars, opts...)
	ts.sync = NewSyncService(ts.kv, ts.tasks, pillars, ts.events, opts...)
	ts.plans = NewPlanService(ts.kv, ts.goals, ts.sync, pillars, ts.events, opts...)
	ts.overdue = NewOverdueService(ts.kv, ts.sync, pillars, ts.events, opts...)
	ts.rituals = NewRitualService(ts.kv, opts...)
	ts.mentor = NewMentorService(ts.kv, ts.rituals, pillars, opts...)
	ts.reminders = NewReminderService(ts.notifier, ts.overdue, opts...)
	ts.oneThing = NewOneThingService(ts.kv, ts.reminders, opts...)
	ts.chat = NewChatService(ts.kv, opts...)
	ts.onboarding = NewOnboardingService(ts.kv, ts.goals, ts.tasks, ts.oneThing, opts...)
	ts.analytics = NewAnalyticsService(ts.kv, pillars, opts...)
	return ts
}

// ============================================================================
// Fixtures
// ============================================================================

// planInWeek returns a plan whose current week, as of testNow, is week.
func planInWeek(pillarID string, week int, approved *bool) *models.TwelveWeekPlan {
	start := testNow.AddDate(0, 0, -7*(week-1))
	return &models.TwelveWeekPlan{
		PillarID:   pillarID,
		Objective:  "objective " + pillarID,
		KeyResults: []string{},
		StartDate:  calendar.FormatTimestamp(start),
		CreatedAt:  calendar.FormatTimestamp(start),
		IsApproved: approved,
	}
}

func withWeek(p *models.TwelveWeekPlan, week int, tasks ...models.WeeklyTask) *models.TwelveWeekPlan {
	for i := range tasks {
		tasks[i].PillarID = p.PillarID
	}
	p.Weeks = append(p.Weeks, models.WeekPlan{WeekNumber: week, Tasks: tasks})
	return p
}

func task(id string, completed bool) models.WeeklyTask {
	return models.WeeklyTask{ID: id, Title: "title " + id, Completed: completed}
}

func seedDoc(t *testing.T, kv *mockKVStore, key string, v any) {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal %s: %v", key, err)
	}
	kv.docs[key] = string(raw)
}

func seedPlans(t *testing.T, kv *mockKVStore, plans ...*models.TwelveWeekPlan) {
	t.Helper()
	m := make(map[string]*models.TwelveWeekPlan)
	for _, p := range plans {
		m[p.PillarID] = p
	}
	seedDoc(t, kv, secondary.KeyTwelveWeekPlans, m)
}

func seedTasks(t *testing.T, kv *mockKVStore, tasks ...models.WeeklyTask) {
	t.Helper()
	if tasks == nil {
		tasks = []models.WeeklyTask{}
	}
	seedDoc(t, kv, secondary.KeyWeeklyTasks, tasks)
}

func taskIDs(tasks []models.WeeklyTask) []string {
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

func pillarTasks(tasks []models.WeeklyTask, pillarID string) []models.WeeklyTask {
	var out []models.WeeklyTask
	for _, t := range tasks {
		if t.PillarID == pillarID {
			out = append(out, t)
		}
	}
	return out
}
