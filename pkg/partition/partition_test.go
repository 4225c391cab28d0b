package partition

import (
	"math"
	"testing"
)

func TestDerive_Basic(t *testing.T) {
	p := Derive([]float64{1.0, 2.0, 5.0})
	if p.BucketWidth != 1.0 {
		t.Errorf("BucketWidth = %v, want 1.0", p.BucketWidth)
	}
	if p.NumBuckets != 1024 {
		t.Errorf("NumBuckets = %v, want 1024", p.NumBuckets)
	}
}

func TestDerive_Empty(t *testing.T) {
	p := Derive(nil)
	if p.NumBuckets != 64 || p.BucketWidth <= 0 {
		t.Errorf("Derive(nil) = %+v, want positive width and 64 buckets", p)
	}
}

func TestDerive_TinyWeightGuardedByEpsilon(t *testing.T) {
	p := Derive([]float64{0.0, 1.0})
	// min(weights) here is 0 only if 0 were allowed; csr.New rejects that
	// upstream, but Derive itself must still never produce width <= 0 for
	// a pathologically small positive minimum.
	tiny := Derive([]float64{1e-12, 1.0})
	if tiny.BucketWidth < Epsilon {
		t.Errorf("BucketWidth = %v, want >= Epsilon", tiny.BucketWidth)
	}
	_ = p
}

func TestDerive_NumBucketsIsMultipleOf64(t *testing.T) {
	p := Derive([]float64{1e-8, 1000.0})
	if p.NumBuckets%64 != 0 {
		t.Errorf("NumBuckets=%d not a multiple of 64", p.NumBuckets)
	}
}

func TestDerive_CapsAt100000RoundedUp(t *testing.T) {
	// min weight tiny, max weight huge -> min_buckets explodes past 100000.
	p := Derive([]float64{1e-3, 1e6})
	want := 100_032 // 100000 rounded up to the next multiple of 64
	if p.NumBuckets != want {
		t.Errorf("NumBuckets = %d, want %d", p.NumBuckets, want)
	}
}

func TestDerive_SatisfiesMinBucketsWhenUncapped(t *testing.T) {
	p := Derive([]float64{1.0, 3000.0})
	minBuckets := int(math.Ceil(3000.0/1.0)) + 2
	if p.NumBuckets < minBuckets {
		t.Errorf("NumBuckets=%d < required min_buckets=%d", p.NumBuckets, minBuckets)
	}
}
