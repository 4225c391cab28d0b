package csr

import "errors"

// Sentinel errors for CSR graph validation, mirroring the solver's
// InvalidGraph / InvalidWeight error kinds.
var (
	// ErrInvalidGraph indicates malformed CSR topology: wrong array lengths,
	// a non-monotone Indptr, or an out-of-range neighbor id.
	ErrInvalidGraph = errors.New("csr: invalid graph")

	// ErrInvalidWeight indicates a non-positive or non-finite edge weight.
	ErrInvalidWeight = errors.New("csr: invalid edge weight")
)
