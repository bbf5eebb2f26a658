package service

import (
	"context"

	"chestdef/internal/modules/media/domain"
	mediaout "chestdef/internal/modules/media/port/out"
	"chestdef/internal/platform/logging"
)

// Watchdog keeps one video source playing. Stalled and waiting signals
// reissue play unless the viewer paused it or the set is finished.
type Watchdog struct {
	player mediaout.Player
	logger *logging.Logger

	source   domain.Source
	armed    bool
	paused   bool
	finished bool
	failures int
}

func NewWatchdog(player mediaout.Player, logger *logging.Logger) *Watchdog {
	return &Watchdog{player: player, logger: logger}
}

// Load replaces the source and disarms the watchdog until Start.
func (w *Watchdog) Load(src domain.Source) {
	w.source = src
	w.armed = false
	w.paused = false
	w.failures = 0
}

func (w *Watchdog) Source() domain.Source {
	return w.source
}

func (w *Watchdog) Start(ctx context.Context) {
	if !w.source.Playable() {
		return
	}
	w.armed = true
	w.paused = false
	w.forcePlay(ctx)
}

// TogglePause flips the viewer's pause intent.
func (w *Watchdog) TogglePause(ctx context.Context) {
	if !w.armed {
		w.Start(ctx)
		return
	}
	if w.paused {
		w.paused = false
		w.forcePlay(ctx)
		return
	}
	w.paused = true
	if err := w.player.Pause(ctx); err != nil {
		w.logger.Warn("video pause failed", "url", w.source.URL, "error", err.Error())
	}
}

func (w *Watchdog) SetFinished(ctx context.Context, finished bool) {
	if w.finished == finished {
		return
	}
	w.finished = finished
	if !finished {
		w.forcePlay(ctx)
	}
}

func (w *Watchdog) Signal(ctx context.Context, sig domain.Signal) {
	w.logger.Debug("video signal", "signal", int(sig), "url", w.source.URL)
	w.forcePlay(ctx)
}

func (w *Watchdog) Status() domain.Status {
	switch {
	case !w.source.Playable():
		return domain.StatusEmpty
	case w.finished:
		return domain.StatusFinished
	case !w.armed:
		return domain.StatusReady
	case w.paused:
		return domain.StatusPaused
	case w.player.Paused():
		return domain.StatusStalled
	default:
		return domain.StatusPlaying
	}
}

// Failures counts play attempts that returned an error since the last Load.
func (w *Watchdog) Failures() int {
	return w.failures
}

func (w *Watchdog) Stop(ctx context.Context) {
	if w.armed && !w.player.Paused() {
		if err := w.player.Pause(ctx); err != nil {
			w.logger.Warn("video stop failed", "url", w.source.URL, "error", err.Error())
		}
	}
	w.armed = false
}

func (w *Watchdog) forcePlay(ctx context.Context) {
	if !w.armed || w.paused || w.finished || !w.player.Paused() {
		return
	}
	if err := w.player.Play(ctx, w.source.Target()); err != nil {
		w.failures++
		w.logger.Warn("video play failed", "url", w.source.URL, "attempt", w.failures, "error", err.Error())
	}
}
