package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/example/doze/internal/models"
	"github.com/example/doze/internal/ports/primary"
	"github.com/example/doze/internal/ports/secondary"
)

// sharedDocuments is one document table used by several devices.
type sharedDocuments struct {
	values   map[string]string
	versions map[string]int64
}

// deviceKVStore is one device's view of sharedDocuments. A Set of a key this
// device has read only succeeds while the key is still at the version it saw.
type deviceKVStore struct {
	shared *sharedDocuments
	seen   map[string]int64
	// onRead runs after every Get, once the version has been recorded.
	onRead func(key string)
}

var _ secondary.KVStore = (*deviceKVStore)(nil)

func (d *deviceKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok := d.shared.values[key]
	d.seen[key] = d.shared.versions[key]
	if d.onRead != nil {
		d.onRead(key)
	}
	return v, ok, nil
}

func (d *deviceKVStore) Set(ctx context.Context, key, value string) error {
	if seen, tracked := d.seen[key]; tracked && seen != d.shared.versions[key] {
		delete(d.seen, key)
		return fmt.Errorf("set %s: %w", key, secondary.ErrConcurrentWrite)
	}
	d.shared.versions[key]++
	d.shared.values[key] = value
	d.seen[key] = d.shared.versions[key]
	return nil
}

func (d *deviceKVStore) Remove(ctx context.Context, key string) error {
	delete(d.shared.values, key)
	d.shared.versions[key]++
	delete(d.seen, key)
	return nil
}

func (d *deviceKVStore) MultiRemove(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		if err := d.Remove(ctx, k); err != nil {
			return err
		}
	}
	return nil
}

type device struct {
	kv      *deviceKVStore
	plans   *PlanServiceImpl
	overdue *OverdueServiceImpl
	sync    *SyncServiceImpl
}

func newDevice(shared *sharedDocuments) *device {
	kv := &deviceKVStore{shared: shared, seen: make(map[string]int64)}
	opts := []Option{
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(sequentialIDs()),
	}
	pillars := models.NewPillarRegistry()
	goals := NewGoalService(kv, pillars, opts...)
	tasks := NewTaskService(kv, pillars, opts...)
	sync := NewSyncService(kv, tasks, pillars, nil, opts...)
	return &device{
		kv:      kv,
		plans:   NewPlanService(kv, goals, sync, pillars, nil, opts...),
		overdue: NewOverdueService(kv, sync, pillars, nil, opts...),
		sync:    sync,
	}
}

func newSharedDocuments(t *testing.T, plans ...*models.TwelveWeekPlan) *sharedDocuments {
	t.Helper()
	m := make(map[string]*models.TwelveWeekPlan)
	for _, p := range plans {
		m[p.PillarID] = p
	}
	raw, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal plans: %v", err)
	}
	return &sharedDocuments{
		values:   map[string]string{secondary.KeyTwelveWeekPlans: string(raw)},
		versions: map[string]int64{secondary.KeyTwelveWeekPlans: 1},
	}
}

func (s *sharedDocuments) plan(t *testing.T, pillarID string) *models.TwelveWeekPlan {
	t.Helper()
	var plans map[string]*models.TwelveWeekPlan
	if err := json.Unmarshal([]byte(s.values[secondary.KeyTwelveWeekPlans]), &plans); err != nil {
		t.Fatalf("unmarshal plans: %v", err)
	}
	return plans[pillarID]
}

// completeAfterRead makes b complete business-w1-t0 right after a's nth read
// of the plans document.
func completeAfterRead(t *testing.T, a, b *device, nth int) {
	reads := 0
	a.kv.onRead = func(key string) {
		if key != secondary.KeyTwelveWeekPlans {
			return
		}
		reads++
		if reads != nth {
			return
		}
		ref := primary.OverdueTaskRef{PillarID: "business", TaskID: "business-w1-t0", WeekNumber: 1}
		if err := b.overdue.CompleteOverdue(context.Background(), ref); err != nil {
			t.Errorf("other device CompleteOverdue() error = %v", err)
		}
	}
}

func TestPlanWrites_RejectedAfterOtherDeviceWrote(t *testing.T) {
	ctx := context.Background()
	ref := primary.OverdueTaskRef{PillarID: "business", TaskID: "business-w1-t0", WeekNumber: 1}

	tests := []struct {
		name     string
		approved *bool
		read     int
		run      func(d *device) error
	}{
		{
			name: "move to current week",
			run: func(d *device) error {
				_, err := d.overdue.MoveToCurrentWeek(ctx, ref)
				return err
			},
		},
		{
			name: "discard overdue",
			run: func(d *device) error {
				return d.overdue.DiscardOverdue(ctx, ref)
			},
		},
		{
			name: "move all overdue",
			// the first read only lists overdue tasks
			read: 2,
			run: func(d *device) error {
				_, err := d.overdue.MoveAllOverdue(ctx)
				return err
			},
		},
		{
			name:     "approve plan",
			approved: models.BoolPtr(false),
			run: func(d *device) error {
				_, err := d.plans.ApprovePlan(ctx, "business")
				return err
			},
		},
		{
			name: "rename plan task",
			run: func(d *device) error {
				return d.plans.UpdateTaskTitle(ctx, primary.UpdateTaskTitleRequest{
					PillarID: "business", WeekNumber: 3, TaskIndex: 0, Title: "renamed",
				})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			read := tt.read
			if read == 0 {
				read = 1
			}
			shared := newSharedDocuments(t, overduePlan("business", tt.approved))
			a, b := newDevice(shared), newDevice(shared)
			completeAfterRead(t, a, b, read)

			err := tt.run(a)
			if !errors.Is(err, secondary.ErrConcurrentWrite) {
				t.Fatalf("error = %v, want ErrConcurrentWrite", err)
			}

			p := shared.plan(t, "business")
			week1 := p.Week(1)
			if week1 == nil || len(week1.Tasks) != 2 || !week1.Tasks[0].Completed {
				t.Fatalf("week 1 = %+v, want the other device's completion kept", week1)
			}
			week3 := p.Week(3)
			if len(week3.Tasks) != 1 || week3.Tasks[0].Title != "title business-w3-t0" {
				t.Errorf("week 3 = %+v, want it untouched", week3.Tasks)
			}
		})
	}
}

func TestUpdatePlanTaskStatus_KeepsOtherDeviceWrite(t *testing.T) {
	shared := newSharedDocuments(t, overduePlan("business", nil))
	a, b := newDevice(shared), newDevice(shared)
	completeAfterRead(t, a, b, 1)

	a.sync.UpdatePlanTaskStatus(context.Background(), "business-w3-t0", true)

	p := shared.plan(t, "business")
	if !p.Week(1).Tasks[0].Completed {
		t.Errorf("the other device's completion was overwritten")
	}
	if p.Week(3).Tasks[0].Completed {
		t.Errorf("stale status write was stored")
	}
}

func TestPlanWrites_SucceedAfterFreshRead(t *testing.T) {
	ctx := context.Background()
	shared := newSharedDocuments(t, overduePlan("business", nil))
	a, b := newDevice(shared), newDevice(shared)

	ref := primary.OverdueTaskRef{PillarID: "business", TaskID: "business-w1-t0", WeekNumber: 1}
	if err := b.overdue.CompleteOverdue(ctx, ref); err != nil {
		t.Fatalf("CompleteOverdue() error = %v", err)
	}

	// a's rename starts from a fresh read that already holds b's completion.
	if err := a.plans.UpdateTaskTitle(ctx, primary.UpdateTaskTitleRequest{
		PillarID: "business", WeekNumber: 3, TaskIndex: 0, Title: "renamed",
	}); err != nil {
		t.Fatalf("UpdateTaskTitle() error = %v", err)
	}

	p := shared.plan(t, "business")
	if !p.Week(1).Tasks[0].Completed {
		t.Errorf("week 1 task 0 lost its completion")
	}
	if got := p.Week(3).Tasks[0].Title; got != "renamed" {
		t.Errorf("week 3 task 0 title = %q, want renamed", got)
	}
	if got := a.overdue.GetOverdueTasks(ctx); len(got) != 0 {
		t.Errorf("overdue = %+v, want none", got)
	}
}
