package edn

import (
	"sort"

	"github.com/joshuapare/ednkit/pkg/types"
)

// FindDuplicate locates a pair of structurally equal values in items and
// returns the index of the later one, or -1. The strategy is picked by
// size: pairwise equality for small arrays, canonical-order sorting for
// medium ones, an open-addressed hash table beyond that (falling back to
// sorting when the table cannot be allocated).
func FindDuplicate(items []*Value) int {
	n := len(items)
	switch {
	case n <= 1:
		return -1
	case n <= types.UniqueQuadraticMax:
		return findDupQuadratic(items)
	case n <= types.UniqueSortedMax:
		return findDupSorted(items)
	default:
		if dup, ok := findDupHashed(items); ok {
			return dup
		}
		return findDupSorted(items)
	}
}

func findDupQuadratic(items []*Value) int {
	for i := 1; i < len(items); i++ {
		for j := 0; j < i; j++ {
			if Equal(items[j], items[i]) {
				return i
			}
		}
	}
	return -1
}

func findDupSorted(items []*Value) int {
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return Compare(items[idx[i]], items[idx[j]]) < 0
	})
	// Equal values are adjacent after sorting, but a run of Compare==0
	// may hold pairs that are not structurally equal (NaN, external
	// values), so verify inside each run.
	for start := 0; start < len(idx); {
		end := start + 1
		for end < len(idx) && Compare(items[idx[start]], items[idx[end]]) == 0 {
			end++
		}
		if end-start > 1 {
			if dup := findDupQuadraticRun(items, idx[start:end]); dup >= 0 {
				return dup
			}
		}
		start = end
	}
	return -1
}

func findDupQuadraticRun(items []*Value, run []int) int {
	for i := 1; i < len(run); i++ {
		for j := 0; j < i; j++ {
			if Equal(items[run[j]], items[run[i]]) {
				if run[i] > run[j] {
					return run[i]
				}
				return run[j]
			}
		}
	}
	return -1
}

func findDupHashed(items []*Value) (dup int, ok bool) {
	size := 1
	for float64(size)*types.UniqueTableLoadFactor < float64(len(items)) {
		size <<= 1
	}
	table, allocated := allocTable(size)
	if !allocated {
		return -1, false
	}
	mask := size - 1
	for i, v := range items {
		slot := int(v.Hash()) & mask
		for {
			j := table[slot]
			if j == 0 {
				table[slot] = i + 1
				break
			}
			if Equal(items[j-1], v) {
				return i, true
			}
			slot = (slot + 1) & mask
		}
	}
	return -1, true
}

// allocTable obtains the probe table, reporting failure instead of
// propagating an allocation panic so the caller can fall back to the
// sorted strategy.
func allocTable(size int) (table []int, ok bool) {
	defer func() {
		if recover() != nil {
			table, ok = nil, false
		}
	}()
	return make([]int, size), true
}
