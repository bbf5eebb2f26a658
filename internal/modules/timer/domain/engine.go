package domain

import (
	"fmt"
	"time"
)

const (
	WorkGoal     = 40 * time.Second
	TickInterval = 100 * time.Millisecond
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseRest
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseRest:
		return "rest"
	default:
		return "idle"
	}
}

type TimerState struct {
	Elapsed     time.Duration
	Phase       Phase
	Advancing   bool
	GoalReached bool
}

// Paused reports a started timer that is not advancing.
func (s TimerState) Paused() bool {
	return s.Phase != PhaseIdle && !s.Advancing
}

// Transition is the goal-reached change caused by a single engine call.
// Changed is false when observers have nothing to hear.
type Transition struct {
	Changed     bool
	GoalReached bool
}

// Engine is the work/rest timer state machine. It performs no I/O and is
// driven entirely by its caller.
type Engine struct {
	state TimerState
	goal  time.Duration
}

func NewEngine() *Engine {
	return &Engine{goal: WorkGoal}
}

func (e *Engine) State() TimerState {
	return e.state
}

func (e *Engine) Start() Transition {
	if e.state.Phase == PhaseIdle {
		e.state.Phase = PhaseRunning
	}
	e.state.Advancing = true
	return e.settle()
}

func (e *Engine) Pause() Transition {
	e.state.Advancing = false
	return Transition{}
}

func (e *Engine) ToggleRunning() Transition {
	if e.state.Advancing {
		return e.Pause()
	}
	return e.Start()
}

// TogglePhase flips between work and rest, zeroes elapsed time and keeps
// counting. Entering rest always announces goalReached=false.
func (e *Engine) TogglePhase() Transition {
	next := PhaseRest
	if e.state.Phase == PhaseRest {
		next = PhaseRunning
	}
	e.state.Phase = next
	e.state.Elapsed = 0
	e.state.Advancing = true
	t := e.settle()
	if next == PhaseRest {
		return Transition{Changed: true, GoalReached: false}
	}
	return t
}

// Reset returns to idle and always announces goalReached=false.
func (e *Engine) Reset() Transition {
	e.state = TimerState{}
	return Transition{Changed: true, GoalReached: false}
}

// Tick advances elapsed time by width when the timer is counting.
func (e *Engine) Tick(width time.Duration) Transition {
	if !e.state.Advancing || e.state.Phase == PhaseIdle || width <= 0 {
		return Transition{}
	}
	e.state.Elapsed += width
	return e.settle()
}

func (e *Engine) settle() Transition {
	reached := e.state.Phase == PhaseRunning && e.state.Elapsed >= e.goal
	if reached == e.state.GoalReached {
		return Transition{}
	}
	e.state.GoalReached = reached
	return Transition{Changed: true, GoalReached: reached}
}

// FormatElapsed renders d as MM:SS.t.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	tenths := int64(d / (100 * time.Millisecond))
	minutes := tenths / 600
	seconds := (tenths / 10) % 60
	return fmt.Sprintf("%02d:%02d.%d", minutes, seconds, tenths%10)
}

// CueKey returns the translation key of the motivational line shown for s,
// or "" when nothing should be shown.
func CueKey(s TimerState) string {
	if s.Phase == PhaseRest {
		return "timerCueRest"
	}
	if !s.Advancing && s.Elapsed == 0 {
		return ""
	}
	switch secs := int(s.Elapsed / time.Second); {
	case secs <= 10:
		return "timerCuePush"
	case secs <= 18:
		return "timerCueSerious"
	case secs <= 24:
		return "timerCueHarder"
	case secs <= 35:
		return "timerCueLimits"
	case secs <= 40:
		return "timerCueAlmost"
	default:
		return "timerCueDoubleTap"
	}
}

// HintKey returns the translation key of the gesture hint for s.
func HintKey(s TimerState) string {
	if s.Phase == PhaseRest {
		return "timerHintRest"
	}
	return "timerHint"
}
