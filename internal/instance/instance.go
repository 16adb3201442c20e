// Package instance detects a second running copy of the program.
package instance

import (
	"fmt"
	"strings"

	"github.com/yourusername/explorer-position/internal/platform"
)

const (
	NoticeTitle = "Duplicate process"
	NoticeText  = "This program is already running.\n\n" +
		"Existing process can be closed from Task Manager (open by pressing Ctrl+Shift+Esc)."
)

// FindDuplicate returns another process whose image name matches self's,
// compared case-insensitively.
func FindDuplicate(procs []platform.Process, self platform.Process) (platform.Process, bool) {
	for _, p := range procs {
		if p.PID != self.PID && strings.EqualFold(p.Name, self.Name) {
			return p, true
		}
	}
	return platform.Process{}, false
}

// Check lists running processes and reports a duplicate of the current one.
func Check(p platform.Processes) (platform.Process, bool, error) {
	self, err := p.Self()
	if err != nil {
		return platform.Process{}, false, fmt.Errorf("identify current process: %w", err)
	}
	procs, err := p.List()
	if err != nil {
		return platform.Process{}, false, fmt.Errorf("list processes: %w", err)
	}
	dup, found := FindDuplicate(procs, self)
	return dup, found, nil
}
