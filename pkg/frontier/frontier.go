// Package frontier implements the Dial-style monotone bucket priority
// structure the solver uses instead of a binary heap: a cyclic array of
// buckets indexed by floor(d/width) mod numBuckets, with a 64-bit-word
// bitmap tracking non-empty buckets and a monotone cursor marking the
// current minimum bucket.
//
// Frontier is a concrete type, not an interface — the solver's main loop
// is monomorphic over this single implementation, so there is no
// indirection on the hot path (mirrors the teacher's concrete MinHeap).
package frontier

import (
	"fmt"
	"math/bits"
)

// NoNode is the sentinel returned by PopMin when the frontier is empty.
const NoNode = ^uint32(0)

const wordBits = 64

// Frontier is a cyclic array of node-id buckets ordered by quantized
// distance. Nodes may appear multiple times (no decrease-key); staleness
// is filtered by the caller via a settled set at pop time.
type Frontier struct {
	width      float64
	numBuckets int

	buckets []uint32Stack
	bitmap  []uint64
	cursor  int
	size    int
}

// uint32Stack is a LIFO of node ids backed by a growable slice. Go's append
// doubles capacity on overflow, satisfying spec's "capacity doubles" growth
// rule per bucket without the source's whole-array resize.
type uint32Stack []uint32

// New creates an empty Frontier with the given bucket width and bucket
// count. numBuckets should already be a multiple of 64 (partition.Derive
// guarantees this); New rounds up defensively if not.
func New(bucketWidth float64, numBuckets int) *Frontier {
	if numBuckets%wordBits != 0 {
		numBuckets = (numBuckets/wordBits + 1) * wordBits
	}
	return &Frontier{
		width:      bucketWidth,
		numBuckets: numBuckets,
		buckets:    make([]uint32Stack, numBuckets),
		bitmap:     make([]uint64, numBuckets/wordBits),
	}
}

// IsEmpty reports whether the frontier holds no entries.
func (f *Frontier) IsEmpty() bool {
	return f.size == 0
}

// Size returns the total number of entries across all buckets.
func (f *Frontier) Size() int {
	return f.size
}

// absBucket returns the unwrapped bucket index for distance d — i.e. the
// bucket number before taking it mod numBuckets.
func (f *Frontier) absBucket(d float64) int {
	return int(d / f.width)
}

// Insert places node v into the bucket for distance d.
//
// It is a parameter-sizing bug for d to land numBuckets or more buckets
// ahead of the cursor: that would wrap the cyclic array and collide with
// live entries. Such a call returns ErrBucketOverflow instead of silently
// corrupting the structure, naming the offending distance and the current
// bucket count so the caller can re-derive larger partition parameters.
func (f *Frontier) Insert(v uint32, d float64) error {
	abs := f.absBucket(d)
	if gap := abs - f.cursor; gap >= f.numBuckets {
		return fmt.Errorf("%w: distance=%v cursor=%d num_buckets=%d gap=%d",
			ErrBucketOverflow, d, f.cursor, f.numBuckets, gap)
	}

	idx := abs % f.numBuckets
	if idx < 0 {
		idx += f.numBuckets
	}

	f.buckets[idx] = append(f.buckets[idx], v)
	f.setBit(idx)
	f.size++
	return nil
}

// PopMin removes and returns a node from the non-empty bucket at or
// nearest the current cursor position. It returns NoNode if the frontier
// is empty.
//
// Cursor advance: while the bucket at cursor%numBuckets is empty, if the
// entire 64-bucket word containing it is all-zero, the cursor jumps to the
// start of the next word (((cursor/64)+1)*64); otherwise it advances by
// one. The cursor never regresses.
func (f *Frontier) PopMin() uint32 {
	if f.size == 0 {
		return NoNode
	}

	for {
		idx := f.cursor % f.numBuckets
		if len(f.buckets[idx]) > 0 {
			break
		}
		wordIdx := idx / wordBits
		if f.bitmap[wordIdx] == 0 {
			f.cursor = (f.cursor/wordBits + 1) * wordBits
		} else {
			f.cursor++
		}
	}

	idx := f.cursor % f.numBuckets
	bucket := f.buckets[idx]
	n := len(bucket)
	v := bucket[n-1]
	f.buckets[idx] = bucket[:n-1]
	if n-1 == 0 {
		f.clearBit(idx)
	}
	f.size--
	return v
}

// Reset clears the frontier back to the empty state produced by New,
// without reallocating the bucket or bitmap arrays. Only buckets the
// bitmap marks non-empty are touched, so cost is proportional to the
// entries left over from the previous query rather than to numBuckets.
func (f *Frontier) Reset() {
	for w, word := range f.bitmap {
		for word != 0 {
			b := bits.TrailingZeros64(word)
			idx := w*wordBits + b
			f.buckets[idx] = f.buckets[idx][:0]
			word &= word - 1
		}
		f.bitmap[w] = 0
	}
	f.cursor = 0
	f.size = 0
}

func (f *Frontier) setBit(idx int) {
	f.bitmap[idx/wordBits] |= 1 << uint(idx%wordBits)
}

func (f *Frontier) clearBit(idx int) {
	f.bitmap[idx/wordBits] &^= 1 << uint(idx%wordBits)
}
