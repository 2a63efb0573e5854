package search

import (
	"errors"
)

// -- Sentinels --

var (
	ErrEmptyQuery        = errors.New("query is required")
	ErrNoRoots           = errors.New("at least one root is required")
	ErrRootMissing       = errors.New("root does not exist")
	ErrRootNotADirectory = errors.New("root is not a directory")
	ErrInvalidExtension  = errors.New("invalid extension")
	ErrUnknownPreset     = errors.New("unknown preset")
)
