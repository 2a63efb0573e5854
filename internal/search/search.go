package search

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"fileseek/internal/domain"
)

// Search walks req.Roots in order, depth-first, and invokes onMatch once for
// every regular file whose name matches the request. isCancelled is polled
// before each directory expansion and each per-file test; once it reports
// true the walk stops without visiting further entries and without error.
// Unreadable directories and vanished files are skipped silently and
// enumeration continues with their siblings. Completion is signalled by the
// call returning.
func Search(req domain.SearchRequest, onMatch func(domain.MatchResult), isCancelled func() bool) {
	for _, root := range req.Roots {
		if isCancelled() {
			return
		}
		walkRoot(root, req, onMatch, isCancelled)
	}
}

// walkRoot enumerates a single root. Symlinks are not followed.
func walkRoot(root string, req domain.SearchRequest, onMatch func(domain.MatchResult), isCancelled func() bool) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if isCancelled() {
			return fs.SkipAll
		}

		// Skip unreadable entries, continue with siblings
		if err != nil {
			slog.Debug("skipping unreadable entry", "path", path, "error", err)
			return nil
		}

		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		name := d.Name()
		if !req.AllowedExtensions.IsEmpty() {
			if !req.AllowedExtensions.Contains(filepath.Ext(name)) {
				return nil
			}
		}

		start, length, ok := matchName(name, req.Query, req.CaseSensitive)
		if !ok {
			return nil
		}

		onMatch(domain.MatchResult{
			FullPath:    path,
			FileName:    name,
			MatchStart:  start,
			MatchLength: length,
		})
		return nil
	})
}

// matchName locates the first occurrence of query within name and returns
// its span as byte offsets. The insensitive comparison follows the usual
// lower-case folding, so offsets stay valid in the original name.
func matchName(name, query string, caseSensitive bool) (start, length int, ok bool) {
	var index int
	if caseSensitive {
		index = strings.Index(name, query)
	} else {
		index = strings.Index(strings.ToLower(name), strings.ToLower(query))
	}
	if index < 0 {
		return 0, 0, false
	}
	return index, len(query), true
}
