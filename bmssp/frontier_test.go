// Package bmssp contains unit tests for the bounded frontier: insertion
// semantics, pull order, and the boundary contract its callers partition
// relaxations against.
package bmssp

import (
	"math"
	"testing"
)

// ------------------------------------------------------------------------
// 1. Insertion: improve-only replacement and idempotence.
// ------------------------------------------------------------------------

func TestFrontier_InsertImproveOnly(t *testing.T) {
	f := newBoundedFrontier(3, math.Inf(1))

	// First insert adds the key.
	f.Insert(7, 5.0, 2, 1)
	if f.Len() != 1 {
		t.Fatalf("Len = %d; want 1", f.Len())
	}

	// Smaller value replaces.
	f.Insert(7, 4.0, 9, 9)
	if got := f.entries[7]; got.value != 4.0 || got.pathLen != 9 || got.pred != 9 {
		t.Errorf("after improving insert: got %+v; want value=4 pathLen=9 pred=9", got)
	}

	// Identical triple is a no-op.
	f.Insert(7, 4.0, 9, 9)
	if f.Len() != 1 {
		t.Errorf("Len after identical insert = %d; want 1", f.Len())
	}

	// Equal value with fewer edges replaces.
	f.Insert(7, 4.0, 8, 9)
	if got := f.entries[7]; got.pathLen != 8 {
		t.Errorf("pathLen after tie-improving insert = %d; want 8", got.pathLen)
	}

	// Larger value is rejected.
	f.Insert(7, 6.0, 0, 0)
	if got := f.entries[7]; got.value != 4.0 {
		t.Errorf("value after worsening insert = %v; want 4", got.value)
	}
}

func TestFrontier_InsertMovesValueBucket(t *testing.T) {
	f := newBoundedFrontier(2, math.Inf(1))
	f.Insert(1, 9.0, 1, 0)
	f.Insert(2, 3.0, 1, 0)

	// Improving key 1 from 9.0 to 2.0 must re-bucket it in front of key 2.
	f.Insert(1, 2.0, 1, 0)

	boundary, pulled := f.Pull()
	if len(pulled) != 2 || pulled[0] != 1 || pulled[1] != 2 {
		t.Fatalf("pulled = %v; want [1 2]", pulled)
	}
	if want := math.Nextafter(3.0, math.Inf(1)); boundary != want {
		t.Errorf("boundary = %v; want %v", boundary, want)
	}
	// The 9.0 bucket must be gone, not lingering as a stale entry.
	if !f.Empty() {
		t.Errorf("frontier not empty after pulling both keys")
	}
}

// ------------------------------------------------------------------------
// 2. Pull: value order, insertion order within a value, capacity.
// ------------------------------------------------------------------------

func TestFrontier_PullSmallestFirst(t *testing.T) {
	f := newBoundedFrontier(2, math.Inf(1))
	f.Insert(1, 3.0, 1, 0)
	f.Insert(2, 1.0, 1, 0)
	f.Insert(3, 3.0, 1, 0)
	f.Insert(4, 2.0, 1, 0)

	boundary, pulled := f.Pull()
	if len(pulled) != 2 || pulled[0] != 2 || pulled[1] != 4 {
		t.Fatalf("pulled = %v; want [2 4]", pulled)
	}
	// Keys 1 and 3 remain at value 3.0, so the boundary is that value.
	if boundary != 3.0 {
		t.Errorf("boundary = %v; want 3", boundary)
	}
	if f.Len() != 2 {
		t.Errorf("Len after pull = %d; want 2", f.Len())
	}
}

func TestFrontier_PullTiesInInsertionOrder(t *testing.T) {
	f := newBoundedFrontier(3, math.Inf(1))
	f.Insert(5, 2.0, 1, 0)
	f.Insert(9, 2.0, 1, 0)
	f.Insert(1, 2.0, 1, 0)

	boundary, pulled := f.Pull()
	if len(pulled) != 3 || pulled[0] != 5 || pulled[1] != 9 || pulled[2] != 1 {
		t.Fatalf("pulled = %v; want [5 9 1] (insertion order)", pulled)
	}
	if want := math.Nextafter(2.0, math.Inf(1)); boundary != want {
		t.Errorf("boundary = %v; want next float above 2", boundary)
	}
}

func TestFrontier_PullCapacityMidBucket(t *testing.T) {
	f := newBoundedFrontier(2, math.Inf(1))
	f.Insert(5, 2.0, 1, 0)
	f.Insert(9, 2.0, 1, 0)
	f.Insert(1, 2.0, 1, 0)

	// Capacity 2 stops inside the 2.0 bucket: key 1 stays behind and the
	// boundary equals the bucket value itself.
	boundary, pulled := f.Pull()
	if len(pulled) != 2 || pulled[0] != 5 || pulled[1] != 9 {
		t.Fatalf("first pull = %v; want [5 9]", pulled)
	}
	if boundary != 2.0 {
		t.Errorf("first boundary = %v; want 2", boundary)
	}

	boundary, pulled = f.Pull()
	if len(pulled) != 1 || pulled[0] != 1 {
		t.Fatalf("second pull = %v; want [1]", pulled)
	}
	if want := math.Nextafter(2.0, math.Inf(1)); boundary != want {
		t.Errorf("second boundary = %v; want next float above 2", boundary)
	}
}

// ------------------------------------------------------------------------
// 3. Boundary contract: pulled values ≤ boundary ≤ remaining values.
// ------------------------------------------------------------------------

func TestFrontier_BoundaryContract(t *testing.T) {
	values := []float64{4.5, 0.25, 7.0, 4.5, 1.75, 3.0, 7.0, 2.5, 6.25, 0.25}
	f := newBoundedFrontier(3, math.Inf(1))
	for key, v := range values {
		f.Insert(key, v, 1, 0)
	}

	for !f.Empty() {
		snapshot := make(map[int]float64, f.Len())
		for k, it := range f.entries {
			snapshot[k] = it.value
		}

		boundary, pulled := f.Pull()
		for _, k := range pulled {
			if snapshot[k] > boundary {
				t.Fatalf("pulled key %d value %v above boundary %v", k, snapshot[k], boundary)
			}
		}
		for k, it := range f.entries {
			if it.value < boundary {
				t.Fatalf("remaining key %d value %v below boundary %v", k, it.value, boundary)
			}
		}
	}
}

func TestFrontier_PullEmptyReturnsBound(t *testing.T) {
	f := newBoundedFrontier(4, 42.0)

	// Nothing was ever queued: the configured bound comes back.
	boundary, pulled := f.Pull()
	if len(pulled) != 0 {
		t.Fatalf("pulled = %v; want empty", pulled)
	}
	if boundary != 42.0 {
		t.Errorf("boundary = %v; want configured bound 42", boundary)
	}
}

// ------------------------------------------------------------------------
// 4. BatchPrepend: repeated improve-only inserts.
// ------------------------------------------------------------------------

func TestFrontier_BatchPrepend(t *testing.T) {
	f := newBoundedFrontier(10, math.Inf(1))
	f.Insert(3, 2.0, 1, 0)

	f.BatchPrepend([]frontierItem{
		{key: 3, value: 1.5, pathLen: 1, pred: 0},
		{key: 4, value: 0.5, pathLen: 2, pred: 1},
		{key: 3, value: 5.0, pathLen: 1, pred: 0},
	})

	boundary, pulled := f.Pull()
	if len(pulled) != 2 || pulled[0] != 4 || pulled[1] != 3 {
		t.Fatalf("pulled = %v; want [4 3]", pulled)
	}
	if want := math.Nextafter(1.5, math.Inf(1)); boundary != want {
		t.Errorf("boundary = %v; want next float above 1.5", boundary)
	}
}

// ------------------------------------------------------------------------
// 5. Capacity floor and reuse after draining.
// ------------------------------------------------------------------------

func TestFrontier_CapacityFloorsToOne(t *testing.T) {
	f := newBoundedFrontier(0, math.Inf(1))
	f.Insert(1, 1.0, 1, 0)
	f.Insert(2, 2.0, 1, 0)

	_, pulled := f.Pull()
	if len(pulled) != 1 {
		t.Errorf("pulled %d keys with zero capacity; want floor to 1", len(pulled))
	}
}

func TestFrontier_ReinsertAfterPull(t *testing.T) {
	f := newBoundedFrontier(1, math.Inf(1))
	f.Insert(1, 1.0, 1, 0)
	f.Pull()

	f.Insert(1, 9.0, 3, 2)
	if f.Len() != 1 {
		t.Fatalf("Len after re-insert = %d; want 1", f.Len())
	}
	if got := f.entries[1]; got.value != 9.0 {
		t.Errorf("re-inserted value = %v; want 9 (pull cleared the old triple)", got.value)
	}
}
