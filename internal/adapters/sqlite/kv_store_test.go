package sqlite_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/example/doze/internal/adapters/sqlite"
	"github.com/example/doze/internal/ports/secondary"
)

func TestKVStore_GetMissing(t *testing.T) {
	store := sqlite.NewKVStore(setupTestDB(t))

	value, found, err := store.Get(context.Background(), secondary.KeyWeeklyTasks)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found || value != "" {
		t.Errorf("Get = %q, %v; want missing", value, found)
	}
}

func TestKVStore_SetOverwrites(t *testing.T) {
	testDB := setupTestDB(t)
	store := sqlite.NewKVStore(testDB)
	ctx := context.Background()

	if err := store.Set(ctx, secondary.KeyOneThing, `{"title":"a"}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set(ctx, secondary.KeyOneThing, `{"title":"b"}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, found, err := store.Get(ctx, secondary.KeyOneThing)
	if err != nil || !found {
		t.Fatalf("Get = %v, %v", found, err)
	}
	if value != `{"title":"b"}` {
		t.Errorf("value = %s", value)
	}
	if n := countRows(t, testDB, "kv_documents"); n != 1 {
		t.Errorf("rows = %d, want 1", n)
	}
}

func TestKVStore_RemoveAndMultiRemove(t *testing.T) {
	testDB := setupTestDB(t)
	store := sqlite.NewKVStore(testDB)
	ctx := context.Background()

	seedDocument(t, testDB, secondary.KeyPillarGoals, "{}")
	seedDocument(t, testDB, secondary.KeyWeeklyTasks, "[]")
	seedDocument(t, testDB, secondary.KeyChatHistory, "[]")
	seedDocument(t, testDB, "other", "1")

	if err := store.Remove(ctx, "absent"); err != nil {
		t.Errorf("Remove absent key: %v", err)
	}
	if err := store.Remove(ctx, secondary.KeyChatHistory); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := store.MultiRemove(ctx, secondary.AllKeys...); err != nil {
		t.Fatalf("MultiRemove failed: %v", err)
	}
	if err := store.MultiRemove(ctx); err != nil {
		t.Errorf("MultiRemove with no keys: %v", err)
	}

	keys, err := store.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if !reflect.DeepEqual(keys, []string{"other"}) {
		t.Errorf("keys = %v, want [other]", keys)
	}
}
