// Package bench generates synthetic CSR graphs for comparing the bucket
// solver against the heap fallback: a regular 2D grid and a
// Barabási–Albert scale-free graph.
package bench

import "errors"

// ErrTooFewVertices indicates Grid was asked for fewer than 1 row or
// column. BarabasiAlbert reports a bad n/m pair as ErrInvalidAttachment.
var ErrTooFewVertices = errors.New("bench: too few vertices")

// ErrInvalidAttachment indicates BarabasiAlbert's attachment degree m is
// not in [1, n).
var ErrInvalidAttachment = errors.New("bench: attachment degree m must satisfy 1 <= m < n")
