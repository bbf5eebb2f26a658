package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	userdataout "chestdef/internal/modules/userdata/adapter/out"
	"chestdef/internal/modules/userdata/dto"
	userdatain "chestdef/internal/modules/userdata/port/in"
	"chestdef/internal/modules/userdata/service"
	"chestdef/internal/modules/userdata/usecase"
	"chestdef/internal/platform/clock"
	apperrors "chestdef/internal/platform/errors"
)

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return fmt.Sprintf("plan-%d", s.n)
}

type failingStore struct{}

func (failingStore) Read(context.Context, string) ([]byte, error) { return nil, errors.New("io error") }
func (failingStore) Write(context.Context, string, []byte) error  { return errors.New("disk full") }

func newUsecase(dir string) userdatain.Usecase {
	clk := clock.NewManual(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	return usecase.NewInteractor(service.NewUserDataService(userdataout.NewFileSlotStore(dir), clk, &seqID{}, nil))
}

func TestMutationsPersistAcrossInstances(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	ctx := context.Background()
	uc := newUsecase(dir)

	if fav, err := uc.ToggleFavorite(ctx, "grupado"); err != nil || !fav {
		t.Fatalf("toggle favorite: %v %v", fav, err)
	}
	if err := uc.SetNote(ctx, "grupado", "  joelhos juntos "); err != nil {
		t.Fatalf("set note: %v", err)
	}
	plan, err := uc.SavePlan(ctx, dto.SavePlanInput{Name: "Rápido", Exercises: []string{"grupado", "polichinelos"}})
	if err != nil {
		t.Fatalf("save plan: %v", err)
	}
	if err := uc.SetActiveWorkout(ctx, []string{"grupado"}); err != nil {
		t.Fatalf("set active: %v", err)
	}

	reloaded := newUsecase(dir)
	data := reloaded.Load(ctx)
	if !reloaded.IsFavorite(ctx, "grupado") || reloaded.Note(ctx, "grupado") != "joelhos juntos" {
		t.Fatalf("favorite/note not persisted: %+v", data)
	}
	if len(data.CustomPlans) != 1 || data.CustomPlans[0].ID != plan.ID || data.CustomPlans[0].Name != "Rápido" {
		t.Fatalf("plan not persisted: %+v", data.CustomPlans)
	}
	if len(data.ActiveWorkout) != 1 {
		t.Fatalf("active workout not persisted: %+v", data.ActiveWorkout)
	}

	if err := reloaded.ClearActiveWorkout(ctx); err != nil {
		t.Fatalf("clear active: %v", err)
	}
	if err := reloaded.DeletePlan(ctx, plan.ID); err != nil {
		t.Fatalf("delete plan: %v", err)
	}
	raw, err := os.ReadFile(filepath.Join(dir, "chestDefData.json"))
	if err != nil {
		t.Fatalf("read slot: %v", err)
	}
	if !strings.Contains(string(raw), `"activeWorkout":[]`) || !strings.Contains(string(raw), `"customPlans":{}`) {
		t.Fatalf("unexpected slot payload %s", raw)
	}
}

func TestMalformedSlotFallsBackToDefaults(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "chestDefData.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	uc := newUsecase(dir)
	data := uc.Load(context.Background())
	if len(data.Favorites) != 0 || data.Notes == nil || len(data.ActiveWorkout) != 0 {
		t.Fatalf("expected default record, got %+v", data)
	}
	if _, err := uc.ToggleFavorite(context.Background(), "grupado"); err != nil {
		t.Fatalf("mutation after fallback should save: %v", err)
	}
}

func TestValidationAndStoreErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newUsecase(t.TempDir())
	if _, err := uc.SavePlan(ctx, dto.SavePlanInput{Name: " "}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := uc.ToggleFavorite(ctx, ""); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if err := uc.DeletePlan(ctx, "ghost"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	broken := usecase.NewInteractor(service.NewUserDataService(failingStore{}, clock.SystemClock{}, &seqID{}, nil))
	if data := broken.Load(ctx); data.Favorites == nil {
		t.Fatalf("unreadable store should still yield defaults")
	}
	if _, err := broken.ToggleFavorite(ctx, "grupado"); err == nil {
		t.Fatalf("write failure should surface")
	}
	if broken.IsFavorite(ctx, "grupado") {
		t.Fatalf("failed write must not change in-memory state")
	}
}
