//go:build windows

package win32

import (
	"errors"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/yourusername/explorer-position/internal/platform"
)

type processes struct{}

func (processes) List() ([]platform.Process, error) {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return nil, platform.NewQueryError("CreateToolhelp32Snapshot", err)
	}
	defer windows.CloseHandle(snapshot)

	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))

	if err := windows.Process32First(snapshot, &entry); err != nil {
		return nil, platform.NewQueryError("Process32First", err)
	}

	var list []platform.Process
	for {
		list = append(list, platform.Process{
			PID:  entry.ProcessID,
			Name: windows.UTF16ToString(entry.ExeFile[:]),
		})

		if err := windows.Process32Next(snapshot, &entry); err != nil {
			if errors.Is(err, windows.ERROR_NO_MORE_FILES) {
				break
			}
			return nil, platform.NewQueryError("Process32Next", err)
		}
	}
	return list, nil
}

func (processes) Self() (platform.Process, error) {
	exe, err := os.Executable()
	if err != nil {
		return platform.Process{}, platform.NewQueryError("GetModuleFileName", err)
	}
	return platform.Process{
		PID:  windows.GetCurrentProcessId(),
		Name: baseName(exe),
	}, nil
}
