package frontier

import "errors"

// ErrBucketOverflow indicates the Partitioner under-sized num_buckets for
// the distances actually produced by a graph: an Insert landed num_buckets
// or more buckets ahead of the cursor, which would wrap around and
// collide with live entries. This is always a sizing bug, never a normal
// runtime condition.
var ErrBucketOverflow = errors.New("frontier: bucket overflow, num_buckets too small")
