package reposition

import (
	"strings"

	"github.com/yourusername/explorer-position/internal/config"
	"github.com/yourusername/explorer-position/internal/platform"
)

// Target describes which shown windows get repositioned.
type Target struct {
	Process      string // Executable image name, compared case-insensitively
	Class        string // Window class, compared exactly
	RequireTitle bool   // Skip windows with an empty title
}

// TargetFromConfig reads the target section, falling back to defaults
func TargetFromConfig(cfg *config.Config) Target {
	return Target{
		Process:      cfg.TargetProcess(),
		Class:        cfg.TargetClass(),
		RequireTitle: cfg.RequireTitle(),
	}
}

// Matches reports whether info is a qualifying window.
func (t Target) Matches(info platform.WindowInfo) bool {
	if !info.Visible || !info.TopLevel {
		return false
	}
	if !strings.EqualFold(info.ProcessName, t.Process) {
		return false
	}
	if info.ClassName != t.Class {
		return false
	}
	if t.RequireTitle && info.Title == "" {
		return false
	}
	return true
}
