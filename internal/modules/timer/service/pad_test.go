package service_test

import (
	"testing"
	"time"

	"chestdef/internal/modules/timer/domain"
	"chestdef/internal/modules/timer/service"
	"chestdef/internal/platform/clock"
)

func newPad() (*service.Pad, *service.Runner, *clock.Manual) {
	clk := clock.NewManual(epoch)
	r := service.NewRunner(clk, nil)
	return service.NewPad(r, clk, clk), r, clk
}

func press(p *service.Pad, clk *clock.Manual, hold time.Duration) {
	p.PointerDown()
	clk.Advance(hold)
	p.PointerUp()
}

func TestSingleTapTogglesRunning(t *testing.T) {
	t.Parallel()
	p, r, clk := newPad()
	press(p, clk, 50*time.Millisecond)
	if !r.State().Advancing || r.State().Phase != domain.PhaseRunning {
		t.Fatalf("tap should start the timer, got %+v", r.State())
	}
	clk.Advance(time.Second)
	press(p, clk, 50*time.Millisecond)
	if r.State().Advancing {
		t.Fatalf("second tap should pause")
	}
}

func TestDoubleTapBeforeGoalActsAsSingle(t *testing.T) {
	t.Parallel()
	p, r, clk := newPad()
	press(p, clk, 50*time.Millisecond)
	clk.Advance(200 * time.Millisecond)
	press(p, clk, 50*time.Millisecond)
	st := r.State()
	if st.Phase != domain.PhaseRunning || st.Advancing {
		t.Fatalf("gated double tap should toggle running, got %+v", st)
	}
}

func TestDoubleTapAfterGoalEntersRest(t *testing.T) {
	t.Parallel()
	p, r, clk := newPad()
	var events []bool
	r.Subscribe(func(reached bool) { events = append(events, reached) })
	r.Start()
	clk.Advance(41 * time.Second)

	p.PointerDown()
	clk.Advance(50 * time.Millisecond)
	p.PointerUp()
	clk.Advance(200 * time.Millisecond)
	p.PointerDown()
	clk.Advance(50 * time.Millisecond)
	p.PointerUp()

	st := r.State()
	if st.Phase != domain.PhaseRest || st.Elapsed != 0 || st.GoalReached || !st.Advancing {
		t.Fatalf("expected rest interval, got %+v", st)
	}
	if len(events) != 2 || !events[0] || events[1] {
		t.Fatalf("unexpected goal events %v", events)
	}

	clk.Advance(time.Second)
	p.Tap()
	p.Tap()
	if r.State().Phase != domain.PhaseRunning {
		t.Fatalf("double tap while resting should return to work, got %+v", r.State())
	}
}

func TestLongPressResets(t *testing.T) {
	t.Parallel()
	p, r, clk := newPad()
	r.Start()
	clk.Advance(5 * time.Second)
	press(p, clk, 900*time.Millisecond)
	if st := r.State(); st != (domain.TimerState{}) {
		t.Fatalf("long press should reset, got %+v", st)
	}
	if p.Stage() != domain.StageIdle {
		t.Fatalf("release after long press should be swallowed")
	}
}

func TestShortHoldDoesNotReset(t *testing.T) {
	t.Parallel()
	p, r, clk := newPad()
	r.Start()
	clk.Advance(5 * time.Second)
	press(p, clk, 500*time.Millisecond)
	clk.Advance(time.Second)
	st := r.State()
	if st.Phase != domain.PhaseRunning || st.Advancing {
		t.Fatalf("release at 500ms is a tap, got %+v", st)
	}
	if clk.Pending() != 0 {
		t.Fatalf("hold callback should have been cancelled, pending=%d", clk.Pending())
	}
}
