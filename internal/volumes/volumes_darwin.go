//go:build darwin

package volumes

import (
	"os"
	"path/filepath"
)

// List returns "/" plus every mounted volume under /Volumes. The boot
// volume's alias in /Volumes is a symlink back to "/" and is skipped.
func List() ([]string, error) {
	mounts := []string{"/"}
	entries, err := os.ReadDir("/Volumes")
	if err != nil {
		// No /Volumes means nothing extra is mounted.
		return mounts, nil
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		mounts = append(mounts, filepath.Join("/Volumes", entry.Name()))
	}
	return dedupe(mounts), nil
}
