package out_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	userdataout "chestdef/internal/modules/userdata/adapter/out"
	portout "chestdef/internal/modules/userdata/port/out"
	apperrors "chestdef/internal/platform/errors"
)

func exerciseSlotStore(t *testing.T, store portout.SlotStore) {
	t.Helper()
	ctx := context.Background()
	if _, err := store.Read(ctx, "chestDefData"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("absent slot should be not found, got %v", err)
	}
	if err := store.Write(ctx, "chestDefData", []byte(`{"favorites":["a"]}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := store.Write(ctx, "chestDefData", []byte(`{"favorites":["b"]}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := store.Read(ctx, "chestDefData")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != `{"favorites":["b"]}` {
		t.Fatalf("unexpected payload %s", got)
	}
}

func TestFileSlotStore(t *testing.T) {
	t.Parallel()
	exerciseSlotStore(t, userdataout.NewFileSlotStore(filepath.Join(t.TempDir(), "state")))
}

func TestSQLiteSlotStore(t *testing.T) {
	t.Parallel()
	store, err := userdataout.NewSQLiteSlotStore(filepath.Join(t.TempDir(), "db", "chestdef.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()
	exerciseSlotStore(t, store)
}
