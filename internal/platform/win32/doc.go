// Package win32 implements the platform interfaces on top of user32 and the
// toolhelp process snapshot. Importing it registers the backend with
// platform.NewProviderFunc; on other systems the package is empty.
package win32
