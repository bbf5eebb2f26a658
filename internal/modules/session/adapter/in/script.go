package in

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	sessiondto "chestdef/internal/modules/session/dto"
	sessionin "chestdef/internal/modules/session/port/in"
	apperrors "chestdef/internal/platform/errors"
)

// Advancer moves a manual clock forward, firing due ticks.
type Advancer interface {
	Advance(d time.Duration)
}

// TraceLine is the observable state after one script step.
type TraceLine struct {
	Step        string
	Expanded    int
	Clock       string
	Phase       string
	Running     bool
	GoalReached bool
	Finished    []int
}

type step struct {
	verb string
	arg  string
}

// ParseScript splits a script of ";" or newline separated steps. Blank
// steps and "#" comments are ignored.
func ParseScript(script string) ([]string, error) {
	var steps []string
	for _, line := range strings.FieldsFunc(script, func(r rune) bool { return r == ';' || r == '\n' }) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := parseStep(line); err != nil {
			return nil, err
		}
		steps = append(steps, line)
	}
	return steps, nil
}

func parseStep(line string) (step, error) {
	fields := strings.Fields(line)
	s := step{verb: strings.ToLower(fields[0])}
	if len(fields) > 1 {
		s.arg = fields[1]
	}
	switch s.verb {
	case "tap", "double", "down", "up", "start", "pause", "toggle", "phase", "reset", "collapse", "complete":
		return s, nil
	case "wait", "hold":
		if d, err := time.ParseDuration(s.arg); err != nil || d < 0 {
			return step{}, fmt.Errorf("step %q: bad duration: %w", line, apperrors.ErrInvalidInput)
		}
		return s, nil
	case "expand", "ack":
		if n, err := strconv.Atoi(s.arg); err != nil || n < 1 {
			return step{}, fmt.Errorf("step %q: want a 1-based slot number: %w", line, apperrors.ErrInvalidInput)
		}
		return s, nil
	default:
		return step{}, fmt.Errorf("unknown step %q: %w", line, apperrors.ErrInvalidInput)
	}
}

// ScriptRunner replays gestures against an open session on a manual clock.
type ScriptRunner struct {
	usecase sessionin.Usecase
	clock   Advancer
}

func NewScriptRunner(usecase sessionin.Usecase, clock Advancer) ScriptRunner {
	return ScriptRunner{usecase: usecase, clock: clock}
}

// doubleTapGap separates the two taps of a scripted double tap.
const doubleTapGap = 100 * time.Millisecond

func (r ScriptRunner) Run(ctx context.Context, input sessiondto.OpenInput, steps []string) ([]TraceLine, error) {
	sess, err := r.usecase.Open(ctx, input)
	if err != nil {
		return nil, err
	}
	defer sess.Dispose()

	trace := make([]TraceLine, 0, len(steps))
	for _, line := range steps {
		s, err := parseStep(line)
		if err != nil {
			return trace, err
		}
		if err := r.apply(ctx, sess, s); err != nil {
			return trace, fmt.Errorf("step %q: %w", line, err)
		}
		trace = append(trace, snapshot(line, sess))
	}
	return trace, nil
}

func (r ScriptRunner) apply(ctx context.Context, sess sessionin.Session, s step) error {
	switch s.verb {
	case "expand":
		n, _ := strconv.Atoi(s.arg)
		if sess.Snapshot().Expanded == n-1 {
			return nil
		}
		return sess.ToggleExpanded(n - 1)
	case "collapse":
		if pos := sess.Snapshot().Expanded; pos >= 0 {
			return sess.ToggleExpanded(pos)
		}
		return nil
	case "ack":
		n, _ := strconv.Atoi(s.arg)
		return sess.AcknowledgeVideoReset(n - 1)
	case "complete":
		return sess.Complete(ctx)
	case "wait":
		d, _ := time.ParseDuration(s.arg)
		r.clock.Advance(d)
		return nil
	}

	timer, ok := sess.Timer()
	if !ok {
		return apperrors.ErrNoExpandedExercise
	}
	switch s.verb {
	case "tap":
		timer.Tap()
	case "double":
		timer.Tap()
		r.clock.Advance(doubleTapGap)
		timer.Tap()
	case "down":
		timer.PointerDown()
	case "up":
		timer.PointerUp()
	case "hold":
		d, _ := time.ParseDuration(s.arg)
		timer.PointerDown()
		r.clock.Advance(d)
		timer.PointerUp()
	case "start":
		timer.Start()
	case "pause":
		timer.Pause()
	case "toggle":
		timer.ToggleRunning()
	case "phase":
		timer.TogglePhase()
	case "reset":
		timer.Reset()
	}
	return nil
}

func snapshot(line string, sess sessionin.Session) TraceLine {
	snap := sess.Snapshot()
	out := TraceLine{Step: line, Expanded: snap.Expanded}
	for _, slot := range snap.Slots {
		if slot.VideoFinished {
			out.Finished = append(out.Finished, slot.Position)
		}
	}
	if timer, ok := sess.Timer(); ok {
		st := timer.State()
		out.Clock = st.Clock
		out.Phase = st.Phase
		out.Running = st.Running
		out.GoalReached = st.GoalReached
	}
	return out
}
