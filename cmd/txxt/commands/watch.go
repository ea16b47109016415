package commands

import (
	"context"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/txxt/internal/daemon"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Paths []string `arg:"" type:"existingpath" help:"Files or directories to watch"`
}

// Run starts the watch daemon until interrupted.
func (c *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	d, err := daemon.New(cfg, c.Paths)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return d.Run(ctx)
}
