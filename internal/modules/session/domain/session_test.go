package domain_test

import (
	"errors"
	"math/rand"
	"testing"

	"chestdef/internal/modules/session/domain"
	apperrors "chestdef/internal/platform/errors"
)

func board() *domain.Board {
	return domain.NewBoard([]domain.Exercise{{ID: "a"}, {ID: "b"}, {ID: "a"}})
}

func TestToggleIsAnAccordion(t *testing.T) {
	t.Parallel()
	b := board()
	if prev, cur, _ := b.Toggle(0); prev != domain.NoSlot || cur != 0 {
		t.Fatalf("unexpected toggle result %d %d", prev, cur)
	}
	if prev, cur, _ := b.Toggle(2); prev != 0 || cur != 2 {
		t.Fatalf("expanding another slot should collapse the first, got %d %d", prev, cur)
	}
	if prev, cur, _ := b.Toggle(2); prev != 2 || cur != domain.NoSlot {
		t.Fatalf("toggling the expanded slot should collapse it, got %d %d", prev, cur)
	}
	if _, _, err := b.Toggle(3); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected out of range error, got %v", err)
	}
}

func TestAtMostOneExpandedUnderRandomToggles(t *testing.T) {
	t.Parallel()
	b := board()
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		pos := r.Intn(b.Len())
		before := b.Expanded()
		_, cur, err := b.Toggle(pos)
		if err != nil {
			t.Fatalf("toggle: %v", err)
		}
		if before == pos && cur != domain.NoSlot {
			t.Fatalf("re-toggle should collapse")
		}
		if before != pos && cur != pos {
			t.Fatalf("toggle should expand requested slot")
		}
	}
}

func TestFlagsAreAddressedByPosition(t *testing.T) {
	t.Parallel()
	b := board()
	if changed, _ := b.SetFinished(2, true); !changed {
		t.Fatalf("flag should change")
	}
	if changed, _ := b.SetFinished(2, true); changed {
		t.Fatalf("same value should not report a change")
	}
	slots := b.Slots()
	if slots[0].VideoFinished || !slots[2].VideoFinished {
		t.Fatalf("duplicate exercise ids must not share flags: %+v", slots)
	}
	b.Toggle(1)
	b.Clear()
	if b.Expanded() != domain.NoSlot || b.Slots()[2].VideoFinished {
		t.Fatalf("clear should reset everything")
	}
}
