package bootstrap_test

import (
	"context"
	"testing"
	"time"

	"chestdef/internal/bootstrap"
	sessiondto "chestdef/internal/modules/session/dto"
	"chestdef/internal/platform/clock"
	"chestdef/internal/platform/config"
	"chestdef/internal/platform/logging"
)

func newApp(t *testing.T, store string) (*bootstrap.App, *[]string) {
	t.Helper()
	cfg, err := config.New(t.TempDir())
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg.Store = store
	var opened []string
	app, err := bootstrap.New(cfg, logging.Nop(), bootstrap.Options{
		OpenURL: func(_ context.Context, target string) error {
			opened = append(opened, target)
			return nil
		},
	})
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	t.Cleanup(func() { app.Close() })
	return app, &opened
}

func TestSimulatorRunsOnEitherStore(t *testing.T) {
	t.Parallel()
	for _, store := range []string{config.StoreFile, config.StoreSQLite} {
		app, _ := newApp(t, store)
		clk := clock.NewManual(time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC))
		trace, err := app.Simulator(clk).Run(context.Background(),
			sessiondto.OpenInput{WorkoutID: "metodo-unico", Locale: "pt", LegalAccepted: true},
			[]string{"expand 3", "start", "wait 40s"})
		if err != nil {
			t.Fatalf("%s: %v", store, err)
		}
		if last := trace[len(trace)-1]; !last.GoalReached || len(last.Finished) != 1 || last.Finished[0] != 2 {
			t.Fatalf("%s: unexpected trace %+v", store, last)
		}
		if ids := app.UserDataCLI.Show(context.Background()).ActiveWorkout; len(ids) != 8 {
			t.Fatalf("%s: active workout not recorded: %v", store, ids)
		}
	}
}

func TestVideoOpensEmbedThroughLauncher(t *testing.T) {
	t.Parallel()
	app, opened := newApp(t, config.StoreFile)
	ex, err := app.CatalogCLI.ShowExercise(context.Background(), "polichinelos", "pt")
	if err != nil {
		t.Fatalf("exercise: %v", err)
	}
	src, err := app.MediaCLI.Open(context.Background(), ex.VideoURL)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if len(*opened) != 1 || (*opened)[0] == "" || src.Provider == "none" {
		t.Fatalf("launcher not used: %v %+v", *opened, src)
	}
}

func TestPortsAreWired(t *testing.T) {
	t.Parallel()
	app, _ := newApp(t, config.StoreFile)
	p := app.Ports()
	if p.Catalog == nil || p.Session == nil || p.Media == nil || p.Guide == nil || p.Nutrition == nil || p.UserData == nil {
		t.Fatalf("missing ports: %+v", p)
	}
}
