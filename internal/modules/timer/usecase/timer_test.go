package usecase_test

import (
	"testing"
	"time"

	"chestdef/internal/modules/timer/usecase"
	"chestdef/internal/platform/clock"
)

func TestInteractorStateProjection(t *testing.T) {
	t.Parallel()
	clk := clock.NewManual(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	factory := usecase.NewFactory(clk, clk, nil)
	timer := factory.New()
	defer timer.Dispose()

	st := timer.State()
	if st.Phase != "idle" || st.Clock != "00:00.0" || st.CueKey != "" || st.HintKey != "timerHint" {
		t.Fatalf("unexpected idle projection %+v", st)
	}

	timer.Tap()
	if timer.State().Stage != "awaiting-second-tap" {
		t.Fatalf("expected awaiting stage right after a tap, got %q", timer.State().Stage)
	}
	clk.Advance(41*time.Second + 500*time.Millisecond)
	st = timer.State()
	if st.Phase != "running" || !st.Running || !st.GoalReached || st.Clock != "00:41.5" {
		t.Fatalf("unexpected running projection %+v", st)
	}
	if st.CueKey != "timerCueDoubleTap" || st.Stage != "idle" {
		t.Fatalf("unexpected cue/stage %+v", st)
	}

	timer.Pause()
	if st := timer.State(); !st.Paused || st.Running {
		t.Fatalf("expected paused projection %+v", st)
	}
}

func TestFactoryTimersAreIndependent(t *testing.T) {
	t.Parallel()
	clk := clock.NewManual(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	factory := usecase.NewFactory(clk, clk, nil)
	a, b := factory.New(), factory.New()
	var goals int
	a.OnGoal(func(bool) { goals++ })
	a.Start()
	b.Start()
	b.Dispose()
	clk.Advance(40 * time.Second)
	if goals != 1 || !a.State().GoalReached {
		t.Fatalf("timer a should reach goal, goals=%d", goals)
	}
	if b.State().ElapsedMS != 0 {
		t.Fatalf("disposed timer b advanced to %dms", b.State().ElapsedMS)
	}
}
