// Package reposition moves newly shown windows to the monitor under the
// cursor. It glues the platform services to the placement engine.
package reposition

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/yourusername/explorer-position/internal/logging"
	"github.com/yourusername/explorer-position/internal/placement"
	"github.com/yourusername/explorer-position/internal/platform"
	"github.com/yourusername/explorer-position/internal/snapshot"
)

// ErrMoveResize is returned when the computed bounds could not be applied.
var ErrMoveResize = errors.New("move/resize failed")

// Service repositions one window per call. It holds no geometry between
// calls; every event reads the desktop afresh.
type Service struct {
	desktop platform.Desktop
	opts    placement.Options
	target  Target
	newID   func() string
}

// NewService builds a Service with immutable placement options
func NewService(d platform.Desktop, opts placement.Options, target Target) *Service {
	return &Service{
		desktop: d,
		opts:    opts,
		target:  target,
		newID:   uuid.NewString,
	}
}

// Target returns the window filter the service was built with
func (s *Service) Target() Target {
	return s.target
}

// Reposition computes and applies new bounds for info.Handle.
func (s *Service) Reposition(info platform.WindowInfo) (*placement.Result, error) {
	eventID := s.newID()
	log := logging.Logger.With().
		Str("eventId", eventID).
		Uint64("hwnd", uint64(info.Handle)).
		Logger()

	log.Info().
		Str("process", info.ProcessName).
		Str("class", info.ClassName).
		Str("title", info.Title).
		Msg("window shown")

	snap, err := snapshot.Fetch(s.desktop, info.Handle)
	if err != nil {
		return nil, err
	}

	if current, ok := snap.CurrentMonitor(); ok {
		log.Debug().
			Int("monitor", current.Index).
			Str("workArea", current.WorkArea.String()).
			Str("window", snap.Window.String()).
			Msg("current placement")
	}

	result, err := placement.Compute(snap.Request(), s.opts)
	if err != nil {
		return nil, fmt.Errorf("cursor %s: %w", snap.Cursor, err)
	}

	target := snap.Monitors[result.Monitor]
	log.Info().
		Int("monitor", result.Monitor).
		Str("cursor", snap.Cursor.String()).
		Str("workArea", target.WorkArea.String()).
		Bool("inTaskbar", result.InTaskbar).
		Str("bounds", result.Rect().String()).
		Msg("repositioning window")

	if err := s.desktop.MoveResize(info.Handle, result.Rect()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMoveResize, err)
	}

	return &result, nil
}

// Handle is the event callback. Errors abandon the event and are only logged.
func (s *Service) Handle(info platform.WindowInfo) {
	if _, err := s.Reposition(info); err != nil {
		event := logging.Warn()
		if errors.Is(err, platform.ErrQueryFailed) || errors.Is(err, ErrMoveResize) {
			event = logging.Error()
		}
		event.Err(err).Uint64("hwnd", uint64(info.Handle)).Msg("window left in place")
	}
}
