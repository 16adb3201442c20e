package platform

// Provider bundles all platform backends for the current OS.
type Provider struct {
	Desktop   Desktop
	Events    WindowEvents
	Processes Processes
	Notifier  Notifier
}

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/win32/init.go for the Windows registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
