package out

import "context"

// SlotStore persists named opaque payloads. Read returns
// apperrors.ErrNotFound for an absent slot.
type SlotStore interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, payload []byte) error
}
