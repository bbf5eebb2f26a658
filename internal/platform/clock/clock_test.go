package clock_test

import (
	"testing"
	"time"

	"chestdef/internal/platform/clock"
)

func TestManualFiresRecurringTasksInOrder(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	m := clock.NewManual(start)
	var fired []time.Duration
	h := m.Every(100*time.Millisecond, func() { fired = append(fired, m.Now().Sub(start)) })

	m.Advance(350 * time.Millisecond)
	if len(fired) != 3 {
		t.Fatalf("expected 3 pulses, got %d", len(fired))
	}
	if fired[2] != 300*time.Millisecond {
		t.Fatalf("third pulse should fire at 300ms, got %s", fired[2])
	}
	if got := m.Now().Sub(start); got != 350*time.Millisecond {
		t.Fatalf("expected clock at 350ms, got %s", got)
	}

	h.Stop()
	m.Advance(time.Second)
	if len(fired) != 3 {
		t.Fatalf("stopped task must not fire, got %d pulses", len(fired))
	}
	if m.Pending() != 0 {
		t.Fatalf("expected no pending tasks, got %d", m.Pending())
	}
}

func TestManualAfterFiresOnceAndCanBeCancelled(t *testing.T) {
	t.Parallel()
	m := clock.NewManual(time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	count := 0
	m.After(800*time.Millisecond, func() { count++ })
	cancelled := m.After(800*time.Millisecond, func() { count += 100 })
	cancelled.Stop()

	m.Advance(799 * time.Millisecond)
	if count != 0 {
		t.Fatalf("task fired early")
	}
	m.Advance(time.Millisecond)
	m.Advance(5 * time.Second)
	if count != 1 {
		t.Fatalf("expected single firing, got %d", count)
	}
}

func TestManualTaskStoppedFromAnotherCallback(t *testing.T) {
	t.Parallel()
	m := clock.NewManual(time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	ticks := 0
	var tick clock.Handle
	tick = m.Every(100*time.Millisecond, func() { ticks++ })
	m.After(250*time.Millisecond, func() { tick.Stop() })

	m.Advance(time.Second)
	if ticks != 2 {
		t.Fatalf("expected ticks to stop after 2 pulses, got %d", ticks)
	}
}

func TestSystemSchedulerDispatchesAndStops(t *testing.T) {
	t.Parallel()
	queue := make(chan func(), 64)
	s := clock.NewSystemScheduler(func(fn func()) { queue <- fn })

	fired := make(chan struct{}, 1)
	s.After(5*time.Millisecond, func() { fired <- struct{}{} })
	select {
	case fn := <-queue:
		fn()
	case <-time.After(2 * time.Second):
		t.Fatalf("after callback was never dispatched")
	}
	select {
	case <-fired:
	default:
		t.Fatalf("dispatched callback did not run")
	}

	pulses := 0
	h := s.Every(time.Millisecond, func() { pulses++ })
	select {
	case fn := <-queue:
		fn()
	case <-time.After(2 * time.Second):
		t.Fatalf("ticker never dispatched")
	}
	h.Stop()
	before := pulses
	// Anything queued before Stop is dropped when it finally runs.
	deadline := time.After(20 * time.Millisecond)
	for {
		select {
		case fn := <-queue:
			fn()
			continue
		case <-deadline:
		}
		break
	}
	if pulses != before {
		t.Fatalf("pulses ran after stop: %d -> %d", before, pulses)
	}
}

func TestManualNeverRunsBackwards(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	m := clock.NewManual(start)
	fired := 0
	m.Every(100*time.Millisecond, func() { fired++ })

	m.Advance(2 * time.Second)
	m.Advance(-1900 * time.Millisecond)
	if got := m.Now().Sub(start); got != 2*time.Second {
		t.Fatalf("negative advance moved the clock to %s", got)
	}
	m.Advance(100 * time.Millisecond)
	if fired != 21 {
		t.Fatalf("expected 21 pulses, got %d", fired)
	}
}
