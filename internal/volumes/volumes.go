// Package volumes enumerates mounted filesystems so a search can cover the
// whole machine. Enumeration happens at call time; callers must not cache
// the result across searches because volumes come and go.
package volumes

// dedupe preserves order while dropping repeated paths.
func dedupe(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
