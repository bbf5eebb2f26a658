package service

import (
	"chestdef/internal/modules/timer/domain"
	"chestdef/internal/platform/clock"
)

// Pad maps pointer events on the timer surface to runner commands.
// Long press resets, double tap switches phase once the work goal is
// reached or while resting, and anything else toggles running.
type Pad struct {
	runner    *Runner
	clock     clock.Clock
	scheduler clock.Scheduler
	gestures  domain.Disambiguator
	hold      clock.Handle
}

func NewPad(runner *Runner, clk clock.Clock, scheduler clock.Scheduler) *Pad {
	return &Pad{runner: runner, clock: clk, scheduler: scheduler}
}

func (p *Pad) PointerDown() {
	p.cancelHold()
	delay := p.gestures.Down(p.clock.Now())
	p.hold = p.scheduler.After(delay, p.onHold)
}

func (p *Pad) PointerUp() {
	p.cancelHold()
	p.dispatch(p.gestures.Up(p.clock.Now()))
}

// Tap is a press and release at the same instant.
func (p *Pad) Tap() {
	p.PointerDown()
	p.PointerUp()
}

func (p *Pad) Stage() domain.GestureStage {
	return p.gestures.Stage(p.clock.Now())
}

func (p *Pad) Dispose() {
	p.cancelHold()
}

func (p *Pad) onHold() {
	p.hold = nil
	if p.gestures.HoldElapsed() == domain.GestureLongPress {
		p.runner.logger.Debug("gesture", "kind", domain.GestureLongPress.String())
		p.runner.Reset()
	}
}

func (p *Pad) dispatch(c domain.Classification) {
	if c.Gesture == domain.GestureNone {
		return
	}
	p.runner.logger.Debug("gesture", "kind", c.Gesture.String())
	switch c.Gesture {
	case domain.GestureDoubleTap:
		st := p.runner.State()
		if st.GoalReached || st.Phase == domain.PhaseRest {
			p.runner.TogglePhase()
			return
		}
		p.gestures.RecordTap(c.PressedAt)
		p.runner.ToggleRunning()
	case domain.GestureSingleTap:
		p.runner.ToggleRunning()
	}
}

func (p *Pad) cancelHold() {
	if p.hold != nil {
		p.hold.Stop()
		p.hold = nil
	}
}
