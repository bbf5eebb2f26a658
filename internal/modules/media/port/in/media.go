package in

import (
	"context"

	"chestdef/internal/modules/media/dto"
)

type Usecase interface {
	Classify(url string) dto.SourceOutput
	// Open plays url once through the configured player.
	Open(ctx context.Context, url string) (dto.SourceOutput, error)
	NewPlayback() Playback
}

// Playback is a watched player bound to one source at a time.
type Playback interface {
	Load(url string) dto.SourceOutput
	Start(ctx context.Context)
	TogglePause(ctx context.Context)
	SetFinished(ctx context.Context, finished bool)
	Signal(ctx context.Context, signal string) error
	Status() dto.PlaybackOutput
	Stop(ctx context.Context)
}
