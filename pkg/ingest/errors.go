package ingest

import "errors"

// Sentinel errors returned by the loaders in this package.
// ErrMalformedRecord and ErrNonPositiveWeight are wrapped with fmt.Errorf
// for line/element context; ErrEmptySource is returned as is.
var (
	// ErrEmptySource indicates a file with no usable edges.
	ErrEmptySource = errors.New("ingest: source contains no edges")

	// ErrMalformedRecord indicates a line or element could not be parsed
	// into an edge.
	ErrMalformedRecord = errors.New("ingest: malformed record")

	// ErrNonPositiveWeight indicates a parsed edge weight was not strictly
	// positive, which csr.New would reject anyway but which is caught here
	// with the offending record's position for a better error message.
	ErrNonPositiveWeight = errors.New("ingest: edge weight must be positive")
)
