//go:build linux

package volumes

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// List returns the mount points of block-device filesystems, the root
// filesystem first. Pseudo filesystems (proc, sysfs, tmpfs and friends)
// are excluded because walking them is either useless or unbounded.
func List() ([]string, error) {
	data, err := os.ReadFile("/proc/mounts")
	if err != nil {
		return nil, fmt.Errorf("read /proc/mounts: %w", err)
	}
	return parseMounts(data), nil
}

// parseMounts extracts mount points from /proc/mounts content. Only
// entries backed by a /dev device are kept; "/" is always present and
// always first.
func parseMounts(data []byte) []string {
	mounts := []string{"/"}
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		device, mountPoint := fields[0], fields[1]
		if !strings.HasPrefix(device, "/dev/") {
			continue
		}
		mounts = append(mounts, unescapeMount(mountPoint))
	}
	return dedupe(mounts)
}

// unescapeMount decodes the octal escapes the kernel uses for spaces,
// tabs and backslashes in mount points (e.g. "\040" for a space).
func unescapeMount(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+3 < len(s) {
			if v, err := strconv.ParseUint(s[i+1:i+4], 8, 8); err == nil {
				b.WriteByte(byte(v))
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
