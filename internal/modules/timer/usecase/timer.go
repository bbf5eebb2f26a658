package usecase

import (
	"chestdef/internal/modules/timer/domain"
	"chestdef/internal/modules/timer/dto"
	timerin "chestdef/internal/modules/timer/port/in"
	"chestdef/internal/modules/timer/service"
	"chestdef/internal/platform/clock"
	"chestdef/internal/platform/logging"
)

type Interactor struct {
	runner *service.Runner
	pad    *service.Pad
}

func NewInteractor(clk clock.Clock, scheduler clock.Scheduler, logger *logging.Logger) timerin.Usecase {
	runner := service.NewRunner(scheduler, logger)
	return &Interactor{runner: runner, pad: service.NewPad(runner, clk, scheduler)}
}

func (i *Interactor) Start()         { i.runner.Start() }
func (i *Interactor) Pause()         { i.runner.Pause() }
func (i *Interactor) ToggleRunning() { i.runner.ToggleRunning() }
func (i *Interactor) TogglePhase()   { i.runner.TogglePhase() }
func (i *Interactor) Reset()         { i.runner.Reset() }
func (i *Interactor) PointerDown()   { i.pad.PointerDown() }
func (i *Interactor) PointerUp()     { i.pad.PointerUp() }
func (i *Interactor) Tap()           { i.pad.Tap() }
func (i *Interactor) Suspend()       { i.runner.Suspend() }
func (i *Interactor) Resume()        { i.runner.Resume() }

func (i *Interactor) OnGoal(fn func(reached bool)) func() {
	return i.runner.Subscribe(fn)
}

func (i *Interactor) State() dto.State {
	st := i.runner.State()
	stage := "idle"
	switch i.pad.Stage() {
	case domain.StagePressed:
		stage = "pressed"
	case domain.StageAwaitingSecondTap:
		stage = "awaiting-second-tap"
	}
	return dto.State{
		ElapsedMS:   st.Elapsed.Milliseconds(),
		Phase:       st.Phase.String(),
		Running:     st.Advancing,
		Paused:      st.Paused(),
		GoalReached: st.GoalReached,
		Clock:       domain.FormatElapsed(st.Elapsed),
		CueKey:      domain.CueKey(st),
		HintKey:     domain.HintKey(st),
		Stage:       stage,
	}
}

func (i *Interactor) Dispose() {
	i.pad.Dispose()
	i.runner.Dispose()
}

// Factory builds independent timers sharing one clock and scheduler.
type Factory struct {
	clock     clock.Clock
	scheduler clock.Scheduler
	logger    *logging.Logger
}

func NewFactory(clk clock.Clock, scheduler clock.Scheduler, logger *logging.Logger) timerin.Factory {
	return &Factory{clock: clk, scheduler: scheduler, logger: logger}
}

func (f *Factory) New() timerin.Usecase {
	return NewInteractor(f.clock, f.scheduler, f.logger)
}
