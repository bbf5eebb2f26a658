package service

import (
	"chestdef/internal/modules/timer/domain"
	"chestdef/internal/platform/clock"
	"chestdef/internal/platform/logging"
)

type GoalObserver func(reached bool)

type subscription struct {
	id int
	fn GoalObserver
}

// Runner owns an engine and the recurring tick that drives it. The tick
// handle exists only while the engine is advancing and the runner is neither
// suspended nor disposed.
type Runner struct {
	engine    *domain.Engine
	scheduler clock.Scheduler
	logger    *logging.Logger

	tick      clock.Handle
	observers []subscription
	nextID    int
	suspended bool
	disposed  bool
}

func NewRunner(scheduler clock.Scheduler, logger *logging.Logger) *Runner {
	return &Runner{engine: domain.NewEngine(), scheduler: scheduler, logger: logger}
}

func (r *Runner) State() domain.TimerState {
	return r.engine.State()
}

func (r *Runner) Start()         { r.apply("start", r.engine.Start) }
func (r *Runner) Pause()         { r.apply("pause", r.engine.Pause) }
func (r *Runner) ToggleRunning() { r.apply("toggle running", r.engine.ToggleRunning) }
func (r *Runner) TogglePhase()   { r.apply("toggle phase", r.engine.TogglePhase) }
func (r *Runner) Reset()         { r.apply("reset", r.engine.Reset) }

// Subscribe registers fn for goal-reached transitions and returns its
// cancel func.
func (r *Runner) Subscribe(fn GoalObserver) func() {
	if r.disposed || fn == nil {
		return func() {}
	}
	r.nextID++
	id := r.nextID
	r.observers = append(r.observers, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range r.observers {
			if sub.id == id {
				r.observers = append(r.observers[:i], r.observers[i+1:]...)
				return
			}
		}
	}
}

// Suspend stops ticking without pausing, so elapsed time freezes while the
// clock is disconnected and counting continues on Resume.
func (r *Runner) Suspend() {
	r.suspended = true
	r.syncTick()
}

func (r *Runner) Resume() {
	r.suspended = false
	r.syncTick()
}

// Ticking reports whether a tick handle is currently owned.
func (r *Runner) Ticking() bool {
	return r.tick != nil
}

func (r *Runner) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	r.stopTick()
	r.observers = nil
}

func (r *Runner) onTick() {
	if r.disposed {
		return
	}
	t := r.engine.Tick(domain.TickInterval)
	if t.Changed {
		r.notify(t.GoalReached)
	}
}

// apply runs cmd against the engine unless the runner is disposed.
func (r *Runner) apply(op string, cmd func() domain.Transition) {
	if r.disposed {
		return
	}
	t := cmd()
	st := r.engine.State()
	r.logger.Debug("timer command", "op", op, "phase", st.Phase.String(), "elapsed_ms", st.Elapsed.Milliseconds(), "advancing", st.Advancing)
	r.syncTick()
	if t.Changed {
		r.notify(t.GoalReached)
	}
}

func (r *Runner) notify(reached bool) {
	r.logger.Info("goal transition", "reached", reached)
	for _, sub := range append([]subscription(nil), r.observers...) {
		sub.fn(reached)
	}
}

func (r *Runner) syncTick() {
	want := !r.disposed && !r.suspended && r.engine.State().Advancing
	switch {
	case want && r.tick == nil:
		r.tick = r.scheduler.Every(domain.TickInterval, r.onTick)
	case !want && r.tick != nil:
		r.stopTick()
	}
}

func (r *Runner) stopTick() {
	if r.tick != nil {
		r.tick.Stop()
		r.tick = nil
	}
}
