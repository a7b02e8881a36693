package edn

import (
	"bytes"
	"math"
	"sort"
)

// Type ranks of the canonical ordering. Lists and vectors share a rank
// (they compare equal element-wise), as do the int and ratio families.
const (
	rankNil = iota
	rankBool
	rankInt
	rankRatio
	rankFloat
	rankBigDec
	rankChar
	rankString
	rankSymbol
	rankKeyword
	rankSeq
	rankSet
	rankMap
	rankTagged
	rankExternal
)

func typeRank(k Kind) int {
	switch k {
	case KindNil:
		return rankNil
	case KindBool:
		return rankBool
	case KindInt, KindBigInt:
		return rankInt
	case KindRatio, KindBigRatio:
		return rankRatio
	case KindFloat:
		return rankFloat
	case KindBigDec:
		return rankBigDec
	case KindChar:
		return rankChar
	case KindString:
		return rankString
	case KindSymbol:
		return rankSymbol
	case KindKeyword:
		return rankKeyword
	case KindList, KindVector:
		return rankSeq
	case KindSet:
		return rankSet
	case KindMap:
		return rankMap
	case KindTagged:
		return rankTagged
	default:
		return rankExternal
	}
}

// Compare imposes a canonical total order over all values: types by fixed
// rank, then intra-type rules. Compare returns 0 for every structurally
// equal pair; the reverse does not hold for NaN floats and unregistered
// external values, so order-based uniqueness re-verifies with Equal.
func Compare(a, b *Value) int {
	ra, rb := typeRank(a.kind), typeRank(b.kind)
	if ra != rb {
		return cmpInt(int64(ra), int64(rb))
	}
	switch ra {
	case rankNil:
		return 0
	case rankBool:
		return cmpInt(a.num, b.num)
	case rankInt:
		return intCompare(a, b)
	case rankRatio:
		return ratioCompare(a, b)
	case rankFloat:
		return floatCompare(a.f, b.f)
	case rankBigDec:
		return bigDecCompare(a, b)
	case rankChar:
		return cmpInt(a.num, b.num)
	case rankString:
		return stringCompare(a, b)
	case rankSymbol, rankKeyword:
		if c := nsCompare(a.ns, b.ns); c != 0 {
			return c
		}
		return bytes.Compare(a.str, b.str)
	case rankSeq:
		return seqCompare(a, b)
	case rankSet:
		return setCompare(a, b)
	case rankMap:
		return mapCompare(a, b)
	case rankTagged:
		if c := bytes.Compare(a.str, b.str); c != 0 {
			return c
		}
		return Compare(a.inner, b.inner)
	default:
		return externalCompare(a, b)
	}
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func intCompare(a, b *Value) int {
	if a.kind == KindInt && b.kind == KindInt {
		return cmpInt(a.num, b.num)
	}
	za, erra := a.BigIntValue()
	zb, errb := b.BigIntValue()
	if erra != nil || errb != nil {
		return bytes.Compare(a.str, b.str)
	}
	return za.Cmp(zb)
}

func ratioCompare(a, b *Value) int {
	ra, erra := a.RatValue()
	rb, errb := b.RatValue()
	if erra != nil || errb != nil {
		return bytes.Compare(a.str, b.str)
	}
	return ra.Cmp(rb)
}

func floatCompare(a, b float64) int {
	an, bn := math.IsNaN(a), math.IsNaN(b)
	switch {
	case an && bn:
		return 0
	case an:
		return -1 // NaN orders before every other float
	case bn:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func bigDecCompare(a, b *Value) int {
	ra, erra := a.RatValue()
	rb, errb := b.RatValue()
	if erra != nil || errb != nil {
		return bytes.Compare(a.str, b.str)
	}
	return ra.Cmp(rb)
}

func stringCompare(a, b *Value) int {
	da, err := a.decodedBytes()
	if err != nil {
		da = a.str
	}
	db, err := b.decodedBytes()
	if err != nil {
		db = b.str
	}
	return bytes.Compare(da, db)
}

// nsCompare orders a missing namespace before any namespace.
func nsCompare(a, b []byte) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return bytes.Compare(a, b)
	}
}

func seqCompare(a, b *Value) int {
	n := len(a.items)
	if len(b.items) < n {
		n = len(b.items)
	}
	for i := 0; i < n; i++ {
		if c := Compare(a.items[i], b.items[i]); c != 0 {
			return c
		}
	}
	return cmpInt(int64(len(a.items)), int64(len(b.items)))
}

func setCompare(a, b *Value) int {
	if c := cmpInt(int64(len(a.items)), int64(len(b.items))); c != 0 {
		return c
	}
	sa := sortedCopy(a.items)
	sb := sortedCopy(b.items)
	for i := range sa {
		if c := Compare(sa[i], sb[i]); c != 0 {
			return c
		}
	}
	return 0
}

func mapCompare(a, b *Value) int {
	if c := cmpInt(int64(len(a.items)), int64(len(b.items))); c != 0 {
		return c
	}
	ia := sortedIndex(a.items)
	ib := sortedIndex(b.items)
	for i := range ia {
		if c := Compare(a.items[ia[i]], b.items[ib[i]]); c != 0 {
			return c
		}
	}
	for i := range ia {
		if c := Compare(a.vals[ia[i]], b.vals[ib[i]]); c != 0 {
			return c
		}
	}
	return 0
}

func externalCompare(a, b *Value) int {
	if c := cmpInt(int64(a.extID), int64(b.extID)); c != 0 {
		return c
	}
	ha, hb := a.Hash(), b.Hash()
	switch {
	case ha < hb:
		return -1
	case ha > hb:
		return 1
	default:
		return 0
	}
}

// sortedCopy returns the elements ordered by Compare without touching the
// original array.
func sortedCopy(items []*Value) []*Value {
	out := make([]*Value, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return Compare(out[i], out[j]) < 0 })
	return out
}

// sortedIndex returns index positions ordered by the Compare of the
// indexed elements.
func sortedIndex(items []*Value) []int {
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return Compare(items[idx[i]], items[idx[j]]) < 0
	})
	return idx
}
