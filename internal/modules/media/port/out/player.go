package out

import "context"

// Player is the playback surface a watchdog keeps alive.
type Player interface {
	Play(ctx context.Context, target string) error
	Pause(ctx context.Context) error
	Paused() bool
}
