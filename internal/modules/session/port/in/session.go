package in

import (
	"context"

	"chestdef/internal/modules/session/dto"
	timerin "chestdef/internal/modules/timer/port/in"
)

type Usecase interface {
	Open(ctx context.Context, input dto.OpenInput) (Session, error)
}

// Session is one open workout.
type Session interface {
	Snapshot() dto.SessionOutput
	ToggleExpanded(position int) error
	AcknowledgeVideoReset(position int) error
	Timer() (timerin.Usecase, bool)
	OnVideoFinished(fn func(position int, finished bool))
	Complete(ctx context.Context) error
	Dispose()
}
