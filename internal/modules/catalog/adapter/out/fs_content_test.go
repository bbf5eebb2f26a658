package out_test

import (
	"context"
	"testing"
	"testing/fstest"

	catalogout "chestdef/internal/modules/catalog/adapter/out"
)

func TestEmbeddedContentLoads(t *testing.T) {
	t.Parallel()
	content := catalogout.NewEmbeddedContent()
	ctx := context.Background()

	exercises, err := content.Exercises(ctx)
	if err != nil {
		t.Fatalf("exercises: %v", err)
	}
	if len(exercises) != 7 {
		t.Fatalf("expected 7 exercises, got %d", len(exercises))
	}
	for _, ex := range exercises {
		if ex.Name.In("pt") == "" || ex.VideoURL == "" {
			t.Fatalf("exercise %s is missing name or video", ex.ID)
		}
		if len(ex.Steps["pt"]) != 4 || len(ex.Steps["en"]) != 4 {
			t.Fatalf("exercise %s should have four steps per locale, got %v", ex.ID, ex.Steps)
		}
	}

	workouts, err := content.Workouts(ctx)
	if err != nil {
		t.Fatalf("workouts: %v", err)
	}
	if len(workouts) != 1 || workouts[0].ID != "metodo-unico" || len(workouts[0].Exercises) != 8 || workouts[0].Sets != 3 {
		t.Fatalf("unexpected workouts %+v", workouts)
	}

	tr, err := content.Translations(ctx)
	if err != nil {
		t.Fatalf("translations: %v", err)
	}
	if tr.T("finishWorkout", "en") != "FINISH WORKOUT" || tr.T("timerCueRest", "pt") == "timerCueRest" {
		t.Fatalf("translations not loaded")
	}
}

func TestFSContentDerivesIDAndToleratesMissingFiles(t *testing.T) {
	t.Parallel()
	fsys := fstest.MapFS{
		"exercises/prancha.md": {Data: []byte("---\nname:\n  pt: Prancha\n---\n## pt\n- Segure.\n")},
	}
	content := catalogout.NewFSContent(fsys)
	exercises, err := content.Exercises(context.Background())
	if err != nil {
		t.Fatalf("exercises: %v", err)
	}
	if len(exercises) != 1 || exercises[0].ID != "prancha" || exercises[0].Steps["pt"][0] != "Segure." {
		t.Fatalf("unexpected exercises %+v", exercises)
	}
	workouts, err := content.Workouts(context.Background())
	if err != nil || len(workouts) != 0 {
		t.Fatalf("missing workouts file should yield none, got %v %v", workouts, err)
	}
	tr, err := content.Translations(context.Background())
	if err != nil || tr.T("x", "pt") != "x" {
		t.Fatalf("missing translations should yield empty table, got %v", err)
	}
}

func TestFSContentRejectsBrokenFrontmatter(t *testing.T) {
	t.Parallel()
	fsys := fstest.MapFS{
		"exercises/bad.md": {Data: []byte("---\nid: bad\n")},
	}
	if _, err := catalogout.NewFSContent(fsys).Exercises(context.Background()); err == nil {
		t.Fatalf("expected parse error")
	}
}
