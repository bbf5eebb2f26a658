package domain

import (
	"fmt"

	apperrors "chestdef/internal/platform/errors"
)

// NoSlot marks a collapsed accordion.
const NoSlot = -1

type Exercise struct {
	ID               string
	Name             string
	ShortDescription string
	Objective        string
	QuickFix         string
	Steps            []string
	VideoURL         string
}

type Workout struct {
	ID        string
	Title     string
	Sets      int
	Exercises []Exercise
}

// Slot is one position in a workout. The same exercise may fill several
// slots, so slots are addressed by position.
type Slot struct {
	Position      int
	Exercise      Exercise
	VideoFinished bool
}

// Board is the accordion over a workout's slots: at most one slot is
// expanded at a time.
type Board struct {
	slots    []Slot
	expanded int
}

func NewBoard(exercises []Exercise) *Board {
	slots := make([]Slot, len(exercises))
	for i, ex := range exercises {
		slots[i] = Slot{Position: i, Exercise: ex}
	}
	return &Board{slots: slots, expanded: NoSlot}
}

func (b *Board) Len() int { return len(b.slots) }

func (b *Board) Expanded() int { return b.expanded }

func (b *Board) Slot(pos int) (Slot, error) {
	if err := b.check(pos); err != nil {
		return Slot{}, err
	}
	return b.slots[pos], nil
}

func (b *Board) Slots() []Slot {
	return append([]Slot(nil), b.slots...)
}

// Toggle collapses the expanded slot and expands pos unless pos was the one
// expanded. It returns the previously and newly expanded positions.
func (b *Board) Toggle(pos int) (previous, current int, err error) {
	if err := b.check(pos); err != nil {
		return NoSlot, NoSlot, err
	}
	previous = b.expanded
	if previous == pos {
		b.expanded = NoSlot
	} else {
		b.expanded = pos
	}
	return previous, b.expanded, nil
}

// SetFinished sets a slot's video-finished flag and reports whether it
// changed.
func (b *Board) SetFinished(pos int, finished bool) (bool, error) {
	if err := b.check(pos); err != nil {
		return false, err
	}
	if b.slots[pos].VideoFinished == finished {
		return false, nil
	}
	b.slots[pos].VideoFinished = finished
	return true, nil
}

// Clear drops every flag and collapses the accordion.
func (b *Board) Clear() {
	for i := range b.slots {
		b.slots[i].VideoFinished = false
	}
	b.expanded = NoSlot
}

func (b *Board) check(pos int) error {
	if pos < 0 || pos >= len(b.slots) {
		return fmt.Errorf("slot %d out of range [0,%d): %w", pos, len(b.slots), apperrors.ErrInvalidInput)
	}
	return nil
}
