//go:build !unix && !windows

package output

func getTerminalSize() (width, height int) {
	return 80, 24
}
