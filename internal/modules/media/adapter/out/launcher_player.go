package out

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	mediaout "chestdef/internal/modules/media/port/out"
)

// LauncherPlayer plays a video by handing its embed page to the OS browser.
// A target is launched once; Pause only forgets it, since the browser tab is
// outside our control.
type LauncherPlayer struct {
	open    func(ctx context.Context, target string) error
	current string
}

func NewLauncherPlayer() mediaout.Player {
	return &LauncherPlayer{open: openExternal}
}

func NewLauncherPlayerWith(open func(ctx context.Context, target string) error) mediaout.Player {
	return &LauncherPlayer{open: open}
}

func (p *LauncherPlayer) Play(ctx context.Context, target string) error {
	if target == "" {
		return fmt.Errorf("empty video target")
	}
	if target == p.current {
		return nil
	}
	if err := p.open(ctx, target); err != nil {
		return err
	}
	p.current = target
	return nil
}

func (p *LauncherPlayer) Pause(context.Context) error {
	p.current = ""
	return nil
}

func (p *LauncherPlayer) Paused() bool {
	return p.current == ""
}

func openExternal(ctx context.Context, target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", target)
	case "linux", "freebsd", "openbsd":
		cmd = exec.CommandContext(ctx, "xdg-open", target)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", target)
	default:
		return fmt.Errorf("external open is not supported on %s", runtime.GOOS)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open external target: %w", err)
	}
	return nil
}
