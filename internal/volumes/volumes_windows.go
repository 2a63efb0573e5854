//go:build windows

package volumes

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// List returns the roots of all fixed, removable and network drives,
// e.g. ["C:\\", "D:\\"].
func List() ([]string, error) {
	mask, err := windows.GetLogicalDrives()
	if err != nil {
		return nil, fmt.Errorf("enumerate logical drives: %w", err)
	}

	var drives []string
	for i := 0; i < 26; i++ {
		if mask&(1<<i) == 0 {
			continue
		}
		root := string(rune('A'+i)) + `:\`
		rootPtr, err := windows.UTF16PtrFromString(root)
		if err != nil {
			continue
		}
		switch windows.GetDriveType(rootPtr) {
		case windows.DRIVE_FIXED, windows.DRIVE_REMOVABLE, windows.DRIVE_REMOTE:
			drives = append(drives, root)
		}
	}
	return drives, nil
}
