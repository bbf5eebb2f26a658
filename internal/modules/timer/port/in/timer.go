package in

import "chestdef/internal/modules/timer/dto"

type Usecase interface {
	Start()
	Pause()
	ToggleRunning()
	TogglePhase()
	Reset()
	PointerDown()
	PointerUp()
	Tap()
	Suspend()
	Resume()
	State() dto.State
	OnGoal(fn func(reached bool)) (cancel func())
	Dispose()
}

type Factory interface {
	New() Usecase
}
