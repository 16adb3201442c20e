package reposition

import (
	"context"
	"errors"
	"fmt"

	"github.com/yourusername/explorer-position/internal/config"
	"github.com/yourusername/explorer-position/internal/instance"
	"github.com/yourusername/explorer-position/internal/logging"
	"github.com/yourusername/explorer-position/internal/platform"
)

// ErrAlreadyRunning is returned by Run when another instance owns the desktop.
// It is not a failure; callers exit with status 0.
var ErrAlreadyRunning = errors.New("already running")

// Run checks for a duplicate instance, logs the monitor layout and then
// repositions matching windows until ctx is cancelled.
func Run(ctx context.Context, p *platform.Provider, cfg *config.Config) error {
	opts, err := cfg.PlacementOptions()
	if err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	dup, found, err := instance.Check(p.Processes)
	if err != nil {
		logging.Warn().Err(err).Msg("duplicate check skipped")
	} else if found {
		logging.Info().Uint32("pid", dup.PID).Str("process", dup.Name).Msg("another instance is running")
		if err := p.Notifier.Notify(instance.NoticeTitle, instance.NoticeText); err != nil {
			logging.Warn().Err(err).Msg("failed to show notice")
		}
		return ErrAlreadyRunning
	}

	monitors, err := p.Desktop.Monitors()
	if err != nil {
		return fmt.Errorf("startup monitor enumeration: %w", err)
	}
	for _, m := range monitors {
		logging.Info().
			Int("monitor", m.Index).
			Str("device", m.Device).
			Str("size", m.SizeString()).
			Str("bounds", m.Bounds.String()).
			Str("workArea", m.WorkArea.String()).
			Bool("primary", m.Primary).
			Msg("monitor")
	}

	target := TargetFromConfig(cfg)
	svc := NewService(p.Desktop, opts, target)

	logging.Info().
		Str("process", target.Process).
		Str("class", target.Class).
		Bool("positionUnderCursor", opts.PositionUnderCursor).
		Msg("started")

	err = p.Events.Watch(ctx, svc.Target().Matches, svc.Handle)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
