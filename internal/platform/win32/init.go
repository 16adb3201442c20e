//go:build windows

package win32

import "github.com/yourusername/explorer-position/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Desktop:   desktop{},
			Events:    &hookEvents{inspector: inspector{}},
			Processes: processes{},
			Notifier:  notifier{},
		}, nil
	}
}
