package domain

import "time"

const (
	DoubleTapWindow = 300 * time.Millisecond
	LongPressDelay  = 800 * time.Millisecond
)

type Gesture int

const (
	GestureNone Gesture = iota
	GestureSingleTap
	GestureDoubleTap
	GestureLongPress
)

func (g Gesture) String() string {
	switch g {
	case GestureSingleTap:
		return "single-tap"
	case GestureDoubleTap:
		return "double-tap"
	case GestureLongPress:
		return "long-press"
	default:
		return "none"
	}
}

type GestureStage int

const (
	StageIdle GestureStage = iota
	StagePressed
	StageAwaitingSecondTap
)

// Classification is the gesture recognised on release together with the
// pointer-down time of the press that produced it.
type Classification struct {
	Gesture   Gesture
	PressedAt time.Time
}

// Disambiguator turns raw pointer events into gestures. The caller owns the
// long-press timer: Down returns the delay after which HoldElapsed must be
// called unless the pointer was released first.
type Disambiguator struct {
	pressed   bool
	held      bool
	pressedAt time.Time
	lastTap   time.Time
	hasTap    bool
}

func (d *Disambiguator) Down(at time.Time) time.Duration {
	d.pressed = true
	d.held = false
	d.pressedAt = at
	return LongPressDelay
}

// HoldElapsed fires the long press if the pointer is still down. The release
// that follows is swallowed.
func (d *Disambiguator) HoldElapsed() Gesture {
	if !d.pressed || d.held {
		return GestureNone
	}
	d.held = true
	d.hasTap = false
	return GestureLongPress
}

func (d *Disambiguator) Up(at time.Time) Classification {
	if !d.pressed {
		return Classification{}
	}
	d.pressed = false
	if d.held {
		d.held = false
		return Classification{}
	}
	if d.hasTap && d.pressedAt.Sub(d.lastTap) < DoubleTapWindow {
		d.hasTap = false
		return Classification{Gesture: GestureDoubleTap, PressedAt: d.pressedAt}
	}
	d.RecordTap(d.pressedAt)
	return Classification{Gesture: GestureSingleTap, PressedAt: d.pressedAt}
}

// RecordTap makes at the reference for the next double-tap check.
func (d *Disambiguator) RecordTap(at time.Time) {
	d.lastTap = at
	d.hasTap = true
}

func (d *Disambiguator) Stage(now time.Time) GestureStage {
	switch {
	case d.pressed:
		return StagePressed
	case d.hasTap && now.Sub(d.lastTap) < DoubleTapWindow:
		return StageAwaitingSecondTap
	default:
		return StageIdle
	}
}
