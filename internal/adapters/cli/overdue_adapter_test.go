package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/doze/internal/models"
	"github.com/example/doze/internal/ports/primary"
)

// mockOverdueService implements primary.OverdueService for testing
type mockOverdueService struct {
	overdue    []models.OverdueTask
	moveFn     func(ctx context.Context, ref primary.OverdueTaskRef) (*models.WeeklyTask, error)
	completeFn func(ctx context.Context, ref primary.OverdueTaskRef) error
	discardFn  func(ctx context.Context, ref primary.OverdueTaskRef) error
	moveAllFn  func(ctx context.Context) (int, error)
	lastRef    primary.OverdueTaskRef
}

func (m *mockOverdueService) GetOverdueTasks(ctx context.Context) []models.OverdueTask {
	return m.overdue
}

func (m *mockOverdueService) MoveToCurrentWeek(ctx context.Context, ref primary.OverdueTaskRef) (*models.WeeklyTask, error) {
	m.lastRef = ref
	if m.moveFn != nil {
		return m.moveFn(ctx, ref)
	}
	return &models.WeeklyTask{ID: "business-w3-moved-1", Title: "Ligar"}, nil
}

func (m *mockOverdueService) CompleteOverdue(ctx context.Context, ref primary.OverdueTaskRef) error {
	m.lastRef = ref
	if m.completeFn != nil {
		return m.completeFn(ctx, ref)
	}
	return nil
}

func (m *mockOverdueService) DiscardOverdue(ctx context.Context, ref primary.OverdueTaskRef) error {
	m.lastRef = ref
	if m.discardFn != nil {
		return m.discardFn(ctx, ref)
	}
	return nil
}

func (m *mockOverdueService) MoveAllOverdue(ctx context.Context) (int, error) {
	if m.moveAllFn != nil {
		return m.moveAllFn(ctx)
	}
	return 0, nil
}

func newTestOverdueAdapter(service primary.OverdueService) (*OverdueAdapter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewOverdueAdapter(service, models.NewPillarRegistry(), out), out
}

var testRef = primary.OverdueTaskRef{PillarID: models.PillarBusiness, TaskID: "business-w1-t0", WeekNumber: 1}

func TestOverdueAdapter_List(t *testing.T) {
	mock := &mockOverdueService{overdue: []models.OverdueTask{
		{PillarID: models.PillarBusiness, WeekNumber: 1, Task: models.WeeklyTask{ID: "business-w1-t0", Title: "Ligar"}},
		{PillarID: models.PillarFamily, WeekNumber: 2, Task: models.WeeklyTask{ID: "family-w2-t1", Title: "Jantar"}},
	}}
	adapter, out := newTestOverdueAdapter(mock)

	if err := adapter.List(context.Background()); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	output := out.String()
	for _, want := range []string{"2 overdue", "business-w1-t0", "Jantar"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestOverdueAdapter_ListEmpty(t *testing.T) {
	adapter, out := newTestOverdueAdapter(&mockOverdueService{})

	if err := adapter.List(context.Background()); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if !strings.Contains(out.String(), "✓ No overdue tasks") {
		t.Errorf("output = %q", out.String())
	}
}

func TestOverdueAdapter_Actions(t *testing.T) {
	tests := []struct {
		name string
		run  func(a *OverdueAdapter) error
		want string
	}{
		{"move", func(a *OverdueAdapter) error { return a.Move(context.Background(), testRef) }, `✓ Moved "Ligar" to this week as business-w3-moved-1`},
		{"complete", func(a *OverdueAdapter) error { return a.Complete(context.Background(), testRef) }, "✓ Task business-w1-t0 completed in week 1"},
		{"discard", func(a *OverdueAdapter) error { return a.Discard(context.Background(), testRef) }, "✓ Task business-w1-t0 discarded from Negócios"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockOverdueService{}
			adapter, out := newTestOverdueAdapter(mock)

			if err := tt.run(adapter); err != nil {
				t.Fatalf("%s failed: %v", tt.name, err)
			}
			if mock.lastRef != testRef {
				t.Errorf("ref = %+v, want %+v", mock.lastRef, testRef)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestOverdueAdapter_MoveError(t *testing.T) {
	mock := &mockOverdueService{
		moveFn: func(ctx context.Context, ref primary.OverdueTaskRef) (*models.WeeklyTask, error) {
			return nil, models.ErrTaskNotFound
		},
	}
	adapter, _ := newTestOverdueAdapter(mock)

	err := adapter.Move(context.Background(), testRef)
	if !errors.Is(err, models.ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestOverdueAdapter_MoveAll(t *testing.T) {
	tests := []struct {
		name    string
		moved   int
		err     error
		want    string
		wantErr string
	}{
		{name: "none", moved: 0, want: "✓ No overdue tasks"},
		{name: "some", moved: 3, want: "✓ Moved 3 overdue tasks to this week"},
		{name: "partial", moved: 2, err: errors.New("disk full"), wantErr: "moved 2 tasks before failing: disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockOverdueService{
				moveAllFn: func(ctx context.Context) (int, error) { return tt.moved, tt.err },
			}
			adapter, out := newTestOverdueAdapter(mock)

			err := adapter.MoveAll(context.Background())
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Errorf("err = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("MoveAll failed: %v", err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output = %q", out.String())
			}
		})
	}
}
