package service_test

import (
	"testing"
	"time"

	"chestdef/internal/modules/timer/domain"
	"chestdef/internal/modules/timer/service"
	"chestdef/internal/platform/clock"
)

var epoch = time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

func newRunner() (*service.Runner, *clock.Manual) {
	clk := clock.NewManual(epoch)
	return service.NewRunner(clk, nil), clk
}

func TestRunnerTicksOnlyWhileAdvancing(t *testing.T) {
	t.Parallel()
	r, clk := newRunner()
	var events []bool
	r.Subscribe(func(reached bool) { events = append(events, reached) })

	if clk.Pending() != 0 {
		t.Fatalf("idle runner must not schedule ticks")
	}
	r.Start()
	if clk.Pending() != 1 || !r.Ticking() {
		t.Fatalf("start should create one tick handle, pending=%d", clk.Pending())
	}
	clk.Advance(41 * time.Second)
	st := r.State()
	if st.Elapsed != 41*time.Second || !st.GoalReached {
		t.Fatalf("unexpected state %+v", st)
	}
	if len(events) != 1 || !events[0] {
		t.Fatalf("expected a single goal=true event, got %v", events)
	}

	r.Pause()
	if clk.Pending() != 0 || r.Ticking() {
		t.Fatalf("pause must cancel the tick handle")
	}
	clk.Advance(10 * time.Second)
	if r.State().Elapsed != 41*time.Second {
		t.Fatalf("paused runner advanced to %v", r.State().Elapsed)
	}

	r.TogglePhase()
	if st := r.State(); st.Phase != domain.PhaseRest || st.Elapsed != 0 || st.GoalReached {
		t.Fatalf("unexpected state after toggle phase %+v", st)
	}
	if len(events) != 2 || events[1] {
		t.Fatalf("expected goal=false event, got %v", events)
	}
	if clk.Pending() != 1 {
		t.Fatalf("rest should keep counting")
	}
}

func TestRunnerResetAndDispose(t *testing.T) {
	t.Parallel()
	r, clk := newRunner()
	calls := 0
	cancel := r.Subscribe(func(bool) { calls++ })
	r.Start()
	clk.Advance(3 * time.Second)
	r.Reset()
	if st := r.State(); st != (domain.TimerState{}) {
		t.Fatalf("reset state %+v", st)
	}
	if clk.Pending() != 0 {
		t.Fatalf("reset must cancel ticking")
	}
	if calls != 1 {
		t.Fatalf("reset should announce goal=false once, got %d", calls)
	}
	cancel()
	r.Reset()
	if calls != 1 {
		t.Fatalf("cancelled observer was called")
	}

	r.Start()
	r.Dispose()
	if clk.Pending() != 0 {
		t.Fatalf("dispose must cancel ticking")
	}
	r.Start()
	clk.Advance(time.Second)
	if clk.Pending() != 0 || r.State().Elapsed != 0 {
		t.Fatalf("disposed runner must stay inert")
	}
}

func TestDisposedRunnerLeavesEngineUntouched(t *testing.T) {
	t.Parallel()
	r, clk := newRunner()
	r.Dispose()
	r.Start()
	r.TogglePhase()
	if st := r.State(); st != (domain.TimerState{}) {
		t.Fatalf("disposed runner changed engine state to %+v", st)
	}
	if r.Ticking() || clk.Pending() != 0 {
		t.Fatalf("disposed runner must not tick")
	}
}

func TestRunnerSuspendFreezesElapsed(t *testing.T) {
	t.Parallel()
	r, clk := newRunner()
	r.Start()
	clk.Advance(2 * time.Second)
	r.Suspend()
	clk.Advance(30 * time.Second)
	if r.State().Elapsed != 2*time.Second || !r.State().Advancing {
		t.Fatalf("suspended runner should freeze without pausing, got %+v", r.State())
	}
	r.Resume()
	clk.Advance(time.Second)
	if r.State().Elapsed != 3*time.Second {
		t.Fatalf("resume should continue from last value, got %v", r.State().Elapsed)
	}
}

func TestIndependentRunners(t *testing.T) {
	t.Parallel()
	clk := clock.NewManual(epoch)
	a := service.NewRunner(clk, nil)
	b := service.NewRunner(clk, nil)
	a.Start()
	clk.Advance(time.Second)
	b.Start()
	clk.Advance(time.Second)
	if a.State().Elapsed != 2*time.Second || b.State().Elapsed != time.Second {
		t.Fatalf("runners share state: a=%v b=%v", a.State().Elapsed, b.State().Elapsed)
	}
}
