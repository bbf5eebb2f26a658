package service

import (
	"context"

	"chestdef/internal/modules/session/domain"
	sessionout "chestdef/internal/modules/session/port/out"
	timerin "chestdef/internal/modules/timer/port/in"
	"chestdef/internal/platform/logging"
)

type FinishedObserver func(position int, finished bool)

// Controller drives one open workout. The expanded slot owns the only
// mounted timer; collapsing the slot disposes it.
type Controller struct {
	workout domain.Workout
	board   *domain.Board
	timers  timerin.Factory
	active  sessionout.ActiveWorkoutStore
	logger  *logging.Logger

	timer     timerin.Usecase
	stopGoal  func()
	observers []FinishedObserver
	disposed  bool
}

func NewController(workout domain.Workout, timers timerin.Factory, active sessionout.ActiveWorkoutStore, logger *logging.Logger) *Controller {
	return &Controller{
		workout: workout,
		board:   domain.NewBoard(workout.Exercises),
		timers:  timers,
		active:  active,
		logger:  logger.WithWorkout(workout.ID),
	}
}

func (c *Controller) Workout() domain.Workout { return c.workout }

func (c *Controller) Slots() []domain.Slot { return c.board.Slots() }

func (c *Controller) Expanded() int { return c.board.Expanded() }

// Timer returns the expanded slot's timer.
func (c *Controller) Timer() (timerin.Usecase, bool) {
	return c.timer, c.timer != nil
}

func (c *Controller) OnFinished(fn FinishedObserver) {
	if fn != nil {
		c.observers = append(c.observers, fn)
	}
}

func (c *Controller) ToggleExpanded(pos int) error {
	if c.disposed {
		return nil
	}
	_, current, err := c.board.Toggle(pos)
	if err != nil {
		return err
	}
	c.unmount()
	if current != domain.NoSlot {
		c.mount(current)
	}
	return nil
}

// AcknowledgeVideoReset clears a slot's finished flag so its video can be
// replayed.
func (c *Controller) AcknowledgeVideoReset(pos int) error {
	return c.setFinished(pos, false)
}

// Complete ends the workout: timers are disposed, flags cleared, the
// accordion collapsed and the persisted active workout cleared.
func (c *Controller) Complete(ctx context.Context) error {
	c.unmount()
	for _, slot := range c.board.Slots() {
		if slot.VideoFinished {
			c.notify(slot.Position, false)
		}
	}
	c.board.Clear()
	c.logger.Info("workout completed")
	if c.active == nil {
		return nil
	}
	return c.active.ClearActive(ctx)
}

func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.unmount()
	c.observers = nil
	c.disposed = true
}

func (c *Controller) mount(pos int) {
	slot, _ := c.board.Slot(pos)
	c.timer = c.timers.New()
	c.stopGoal = c.timer.OnGoal(func(reached bool) {
		if err := c.setFinished(pos, reached); err != nil {
			c.logger.Warn("goal for unknown slot", "slot", pos, "error", err.Error())
		}
	})
	c.logger.WithSlot(pos+1, slot.Exercise.ID).Debug("slot expanded")
}

func (c *Controller) unmount() {
	if c.stopGoal != nil {
		c.stopGoal()
		c.stopGoal = nil
	}
	if c.timer != nil {
		c.timer.Dispose()
		c.timer = nil
	}
}

func (c *Controller) setFinished(pos int, finished bool) error {
	changed, err := c.board.SetFinished(pos, finished)
	if err != nil || !changed {
		return err
	}
	c.notify(pos, finished)
	return nil
}

func (c *Controller) notify(pos int, finished bool) {
	for _, fn := range c.observers {
		fn(pos, finished)
	}
}
