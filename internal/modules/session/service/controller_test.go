package service_test

import (
	"context"
	"testing"
	"time"

	"chestdef/internal/modules/session/domain"
	"chestdef/internal/modules/session/service"
	timerusecase "chestdef/internal/modules/timer/usecase"
	"chestdef/internal/platform/clock"
)

type fakeActive struct {
	set     [][]string
	cleared int
}

func (f *fakeActive) SetActive(_ context.Context, ids []string) error {
	f.set = append(f.set, ids)
	return nil
}

func (f *fakeActive) ClearActive(context.Context) error {
	f.cleared++
	return nil
}

func newController() (*service.Controller, *clock.Manual, *fakeActive) {
	clk := clock.NewManual(time.Date(2026, 1, 1, 7, 0, 0, 0, time.UTC))
	workout := domain.Workout{ID: "w", Exercises: []domain.Exercise{{ID: "a"}, {ID: "b"}, {ID: "a"}}}
	active := &fakeActive{}
	return service.NewController(workout, timerusecase.NewFactory(clk, clk, nil), active, nil), clk, active
}

func TestExpandedSlotOwnsTheOnlyTimer(t *testing.T) {
	t.Parallel()
	c, clk, _ := newController()
	if _, ok := c.Timer(); ok {
		t.Fatalf("collapsed controller should have no timer")
	}
	if err := c.ToggleExpanded(0); err != nil {
		t.Fatalf("expand: %v", err)
	}
	first, _ := c.Timer()
	first.Start()
	clk.Advance(3 * time.Second)

	if err := c.ToggleExpanded(2); err != nil {
		t.Fatalf("expand other: %v", err)
	}
	if clk.Pending() != 0 {
		t.Fatalf("collapsing must dispose the previous timer, pending=%d", clk.Pending())
	}
	second, ok := c.Timer()
	if !ok || second.State().ElapsedMS != 0 {
		t.Fatalf("new slot should mount a fresh timer")
	}
	c.ToggleExpanded(2)
	if _, ok := c.Timer(); ok || c.Expanded() != domain.NoSlot {
		t.Fatalf("toggling expanded slot should collapse")
	}
}

func TestGoalSetsAndAcknowledgeClearsFlag(t *testing.T) {
	t.Parallel()
	c, clk, _ := newController()
	var events []bool
	c.OnFinished(func(pos int, finished bool) {
		if pos != 2 {
			t.Errorf("unexpected slot %d", pos)
		}
		events = append(events, finished)
	})
	c.ToggleExpanded(2)
	timer, _ := c.Timer()
	timer.Start()
	clk.Advance(40 * time.Second)
	slots := c.Slots()
	if !slots[2].VideoFinished || slots[0].VideoFinished {
		t.Fatalf("only slot 2 should be finished: %+v", slots)
	}

	if err := c.AcknowledgeVideoReset(2); err != nil {
		t.Fatalf("ack: %v", err)
	}
	if c.Slots()[2].VideoFinished {
		t.Fatalf("ack should clear the flag")
	}
	if len(events) != 2 || !events[0] || events[1] {
		t.Fatalf("unexpected events %v", events)
	}
}

func TestFlagSurvivesCollapse(t *testing.T) {
	t.Parallel()
	c, clk, _ := newController()
	c.ToggleExpanded(1)
	timer, _ := c.Timer()
	timer.Start()
	clk.Advance(41 * time.Second)
	c.ToggleExpanded(1)
	if !c.Slots()[1].VideoFinished {
		t.Fatalf("flag should outlive the timer")
	}
}

func TestCompleteClearsEverything(t *testing.T) {
	t.Parallel()
	c, clk, active := newController()
	c.ToggleExpanded(0)
	timer, _ := c.Timer()
	timer.Start()
	clk.Advance(45 * time.Second)
	if err := c.Complete(context.Background()); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if c.Expanded() != domain.NoSlot || c.Slots()[0].VideoFinished || clk.Pending() != 0 {
		t.Fatalf("complete left state behind: expanded=%d slots=%+v", c.Expanded(), c.Slots())
	}
	if active.cleared != 1 {
		t.Fatalf("active workout should be cleared")
	}
	c.Dispose()
	if err := c.ToggleExpanded(0); err != nil || c.Expanded() != domain.NoSlot {
		t.Fatalf("disposed controller should ignore toggles")
	}
}
