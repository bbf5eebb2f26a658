package usecase

import (
	"context"
	"fmt"

	"chestdef/internal/modules/media/domain"
	"chestdef/internal/modules/media/dto"
	mediain "chestdef/internal/modules/media/port/in"
	mediaout "chestdef/internal/modules/media/port/out"
	"chestdef/internal/modules/media/service"
	apperrors "chestdef/internal/platform/errors"
	"chestdef/internal/platform/logging"
)

type Interactor struct {
	newPlayer func() mediaout.Player
	logger    *logging.Logger
}

// NewInteractor takes a player constructor so every playback owns its own
// player.
func NewInteractor(newPlayer func() mediaout.Player, logger *logging.Logger) mediain.Usecase {
	return &Interactor{newPlayer: newPlayer, logger: logger}
}

func (i *Interactor) Classify(url string) dto.SourceOutput {
	return toSourceOutput(domain.Classify(url))
}

func (i *Interactor) Open(ctx context.Context, url string) (dto.SourceOutput, error) {
	src := domain.Classify(url)
	if !src.Playable() {
		return toSourceOutput(src), fmt.Errorf("unsupported video url %q: %w", url, apperrors.ErrInvalidInput)
	}
	if err := i.newPlayer().Play(ctx, src.Target()); err != nil {
		return toSourceOutput(src), fmt.Errorf("play video: %w", err)
	}
	return toSourceOutput(src), nil
}

func (i *Interactor) NewPlayback() mediain.Playback {
	return &playback{watchdog: service.NewWatchdog(i.newPlayer(), i.logger)}
}

type playback struct {
	watchdog *service.Watchdog
}

func (p *playback) Load(url string) dto.SourceOutput {
	src := domain.Classify(url)
	p.watchdog.Load(src)
	return toSourceOutput(src)
}

func (p *playback) Start(ctx context.Context)       { p.watchdog.Start(ctx) }
func (p *playback) TogglePause(ctx context.Context) { p.watchdog.TogglePause(ctx) }
func (p *playback) Stop(ctx context.Context)        { p.watchdog.Stop(ctx) }

func (p *playback) SetFinished(ctx context.Context, finished bool) {
	p.watchdog.SetFinished(ctx, finished)
}

func (p *playback) Signal(ctx context.Context, signal string) error {
	sig, ok := domain.ParseSignal(signal)
	if !ok {
		return fmt.Errorf("unknown playback signal %q: %w", signal, apperrors.ErrInvalidInput)
	}
	p.watchdog.Signal(ctx, sig)
	return nil
}

func (p *playback) Status() dto.PlaybackOutput {
	return dto.PlaybackOutput{
		Source:   toSourceOutput(p.watchdog.Source()),
		Status:   string(p.watchdog.Status()),
		Failures: p.watchdog.Failures(),
	}
}

func toSourceOutput(src domain.Source) dto.SourceOutput {
	return dto.SourceOutput{
		URL:       src.URL,
		Provider:  string(src.Provider),
		ID:        src.ID,
		EmbedURL:  src.EmbedURL,
		StreamURL: src.StreamURL,
		Playable:  src.Playable(),
	}
}
