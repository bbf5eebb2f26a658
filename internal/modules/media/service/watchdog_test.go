package service_test

import (
	"context"
	"errors"
	"testing"

	"chestdef/internal/modules/media/domain"
	"chestdef/internal/modules/media/service"
)

type fakePlayer struct {
	playing bool
	plays   int
	pauses  int
	failN   int
}

func (p *fakePlayer) Play(context.Context, string) error {
	p.plays++
	if p.failN > 0 {
		p.failN--
		return errors.New("autoplay blocked")
	}
	p.playing = true
	return nil
}

func (p *fakePlayer) Pause(context.Context) error {
	p.pauses++
	p.playing = false
	return nil
}

func (p *fakePlayer) Paused() bool { return !p.playing }

var src = domain.Classify("https://youtu.be/dQw4w9WgXcQ")

func TestWatchdogRetriesOnStallUntilPlaying(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	player := &fakePlayer{failN: 2}
	w := service.NewWatchdog(player, nil)
	w.Load(src)
	if w.Status() != domain.StatusReady {
		t.Fatalf("loaded source should be ready, got %s", w.Status())
	}
	w.Start(ctx)
	if w.Status() != domain.StatusStalled || w.Failures() != 1 {
		t.Fatalf("failed play should leave watchdog stalled, got %s failures=%d", w.Status(), w.Failures())
	}
	w.Signal(ctx, domain.SignalStalled)
	w.Signal(ctx, domain.SignalWaiting)
	if w.Status() != domain.StatusPlaying || player.plays != 3 {
		t.Fatalf("expected playing after retries, got %s plays=%d", w.Status(), player.plays)
	}
	w.Signal(ctx, domain.SignalWaiting)
	if player.plays != 3 {
		t.Fatalf("playing video must not be replayed")
	}
}

func TestWatchdogRespectsPauseAndFinished(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	player := &fakePlayer{}
	w := service.NewWatchdog(player, nil)
	w.Load(src)
	w.Start(ctx)

	w.TogglePause(ctx)
	if w.Status() != domain.StatusPaused || player.pauses != 1 {
		t.Fatalf("expected paused, got %s", w.Status())
	}
	w.Signal(ctx, domain.SignalStalled)
	if player.plays != 1 {
		t.Fatalf("paused video must not be restarted by the watchdog")
	}
	w.TogglePause(ctx)
	if w.Status() != domain.StatusPlaying || player.plays != 2 {
		t.Fatalf("resume should play, got %s", w.Status())
	}

	player.playing = false
	w.SetFinished(ctx, true)
	w.Signal(ctx, domain.SignalStalled)
	if w.Status() != domain.StatusFinished || player.plays != 2 {
		t.Fatalf("finished set must not restart playback")
	}
	w.SetFinished(ctx, false)
	if player.plays != 3 || w.Status() != domain.StatusPlaying {
		t.Fatalf("clearing finished should restart playback, plays=%d", player.plays)
	}
}

func TestWatchdogIgnoresUnplayableSources(t *testing.T) {
	t.Parallel()
	player := &fakePlayer{}
	w := service.NewWatchdog(player, nil)
	w.Load(domain.Classify("https://vimeo.com/1"))
	w.Start(context.Background())
	w.Signal(context.Background(), domain.SignalStalled)
	if player.plays != 0 || w.Status() != domain.StatusEmpty {
		t.Fatalf("unplayable source should never reach the player")
	}
}
