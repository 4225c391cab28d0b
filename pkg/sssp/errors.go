package sssp

import (
	"errors"

	"comespath/pkg/frontier"
)

// Sentinel errors returned by Solver. ErrInvalidSource, ErrInvalidTarget
// and ErrBucketOverflow are wrapped with fmt.Errorf and context before
// reaching the caller; ErrNoGraph is returned as is.
var (
	// ErrInvalidSource indicates source is outside [0, n).
	ErrInvalidSource = errors.New("sssp: source out of range")

	// ErrInvalidTarget indicates target is outside [0, n).
	ErrInvalidTarget = errors.New("sssp: target out of range")

	// ErrNoGraph indicates ShortestPath was called before SetGraph.
	ErrNoGraph = errors.New("sssp: no graph installed, call SetGraph first")

	// ErrBucketOverflow re-exports frontier.ErrBucketOverflow so callers of
	// this package need not import pkg/frontier to check it with errors.Is.
	ErrBucketOverflow = frontier.ErrBucketOverflow
)
