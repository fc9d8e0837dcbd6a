// This file implements the ordered frontier: the bounded batched priority
// structure the recursion uses as its work queue.
package bmssp

import (
	"math"
	"sort"
)

// frontierItem is one queued vertex with the triple that orders it.
type frontierItem struct {
	key     int
	value   float64
	pathLen int64
	pred    int
}

// boundedFrontier maps vertex keys to (value, pathLen, pred) triples and
// hands them back in value order, at most capacity keys per pull, together
// with the exact value boundary separating pulled keys from remaining ones.
//
// Layout: keys live in per-value buckets that preserve insertion order;
// the distinct values are kept in a sorted slice for O(log) boundary
// lookups; entries is the key → triple index. Invariant: a key appears in
// exactly one bucket, and entries, buckets, and values agree at all times.
//
// Unlike a lazy-deletion heap there are no stale entries: an improving
// insert moves the key between buckets immediately, so Pull never has to
// re-check anything against outside state.
type boundedFrontier struct {
	capacity int     // M: maximum keys per pull, at least 1
	bound    float64 // B: boundary reported when nothing was ever pulled

	values  []float64            // sorted distinct values present
	buckets map[float64][]int    // value → keys in insertion order
	entries map[int]frontierItem // key → current triple
}

// newBoundedFrontier returns an empty frontier with pull capacity M (floored
// to 1) over bound B.
func newBoundedFrontier(capacity int, bound float64) *boundedFrontier {
	if capacity < 1 {
		capacity = 1
	}

	return &boundedFrontier{
		capacity: capacity,
		bound:    bound,
		buckets:  make(map[float64][]int),
		entries:  make(map[int]frontierItem),
	}
}

// Len returns the number of queued keys.
func (f *boundedFrontier) Len() int { return len(f.entries) }

// Empty reports whether no keys remain.
func (f *boundedFrontier) Empty() bool { return len(f.entries) == 0 }

// Insert queues key at the given triple. An absent key is added; a present
// key is replaced only when the new (value, pathLen, pred) triple is
// lexicographically smaller than the stored one, so insertion is idempotent
// and monotone-improving. A replacement moves the key to its new value
// bucket and keeps the sorted value index exact.
func (f *boundedFrontier) Insert(key int, value float64, pathLen int64, pred int) {
	if old, ok := f.entries[key]; ok {
		if !tripleLess(value, pathLen, pred, old.value, old.pathLen, old.pred) {
			return
		}
		f.remove(key, old.value)
	}
	f.add(frontierItem{key: key, value: value, pathLen: pathLen, pred: pred})
}

// BatchPrepend applies Insert for every item. Item order is immaterial:
// under the improve-only rule inserts commute.
func (f *boundedFrontier) BatchPrepend(items []frontierItem) {
	for _, it := range items {
		f.Insert(it.key, it.value, it.pathLen, it.pred)
	}
}

// Pull removes up to capacity keys with smallest values, ties within one
// value bucket broken by insertion order, and returns them with a boundary x
// such that every pulled key's value ≤ x and every remaining key's value ≥ x:
//
//   - keys remain        → x is the smallest remaining value;
//   - emptied by pulling → x is the next float64 above the largest pulled
//     value;
//   - nothing ever queued → x is the configured bound B.
//
// Callers partition subsequent relaxations against x, so this contract is
// load-bearing for the recursion's correctness.
func (f *boundedFrontier) Pull() (float64, []int) {
	pulled := make([]int, 0, f.capacity)
	var last float64

	for len(f.values) > 0 && len(pulled) < f.capacity {
		smallest := f.values[0]
		bucket := f.buckets[smallest]

		// Drain the head of the bucket up to capacity, preserving order.
		for len(bucket) > 0 && len(pulled) < f.capacity {
			key := bucket[0]
			bucket = bucket[1:]
			delete(f.entries, key)
			pulled = append(pulled, key)
			last = smallest
		}

		if len(bucket) == 0 {
			delete(f.buckets, smallest)
			f.values = f.values[1:]
		} else {
			// Capacity hit mid-bucket; the value stays indexed.
			f.buckets[smallest] = bucket
		}
	}

	switch {
	case len(f.values) > 0:
		return f.values[0], pulled
	case len(pulled) > 0:
		return math.Nextafter(last, math.Inf(1)), pulled
	default:
		return f.bound, pulled
	}
}

// add places item into its value bucket, creating the bucket and indexing
// the value if needed.
func (f *boundedFrontier) add(it frontierItem) {
	if _, ok := f.buckets[it.value]; !ok {
		idx := sort.SearchFloat64s(f.values, it.value)
		f.values = append(f.values, 0)
		copy(f.values[idx+1:], f.values[idx:])
		f.values[idx] = it.value
	}
	f.buckets[it.value] = append(f.buckets[it.value], it.key)
	f.entries[it.key] = it
}

// remove deletes key from the bucket holding value, dropping the bucket and
// its value index entry when it empties.
func (f *boundedFrontier) remove(key int, value float64) {
	delete(f.entries, key)

	bucket := f.buckets[value]
	for i, k := range bucket {
		if k == key {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(f.buckets, value)
		idx := sort.SearchFloat64s(f.values, value)
		if idx < len(f.values) && f.values[idx] == value {
			f.values = append(f.values[:idx], f.values[idx+1:]...)
		}

		return
	}
	f.buckets[value] = bucket
}

// tripleLess is the strict lexicographic order on (value, pathLen, pred).
func tripleLess(v1 float64, l1 int64, p1 int, v2 float64, l2 int64, p2 int) bool {
	if v1 != v2 {
		return v1 < v2
	}
	if l1 != l2 {
		return l1 < l2
	}

	return p1 < p2
}
