package search

import (
	"fmt"
	"os"
	"strings"

	"fileseek/internal/domain"
)

// ValidateRequest rejects invalid requests before a worker is started.
// Empty queries and missing or non-directory roots are the invalid cases;
// anything that goes wrong mid-walk is handled by the walk itself.
func ValidateRequest(req domain.SearchRequest) error {
	if strings.TrimSpace(req.Query) == "" {
		return ErrEmptyQuery
	}
	if len(req.Roots) == 0 {
		return ErrNoRoots
	}
	for _, root := range req.Roots {
		info, err := os.Stat(root)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("%w: %s", ErrRootMissing, root)
			}
			return fmt.Errorf("stat %s: %w", root, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrRootNotADirectory, root)
		}
	}
	return nil
}
