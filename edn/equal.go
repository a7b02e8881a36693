package edn

import (
	"bytes"
	"math"
)

// Equal reports structural equality between two values.
//
// Integers compare numerically across int and big-int; ratios compare by
// cross product across ratio and big-ratio; floats are equal only to
// floats and NaN is not equal to itself; strings, symbols, keywords, and
// characters compare by value bytes and namespace; lists and vectors
// compare element-wise (and to each other); sets by membership; maps by
// key set and per-key values; tagged literals by tag and inner value.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		// One node is equal to itself, except a NaN float.
		return !(a.kind == KindFloat && math.IsNaN(a.f))
	}
	switch {
	case a.kind == KindNil || b.kind == KindNil:
		return a.kind == b.kind
	case isIntKind(a.kind) && isIntKind(b.kind):
		return intEqual(a, b)
	case isRatioKind(a.kind) && isRatioKind(b.kind):
		return ratioEqual(a, b)
	case a.kind != b.kind && !bothSeq(a.kind, b.kind):
		return false
	}
	switch a.kind {
	case KindBool:
		return a.num == b.num
	case KindFloat:
		return a.f == b.f
	case KindBigDec:
		return bigDecEqual(a, b)
	case KindChar:
		return a.num == b.num
	case KindString:
		return stringEqual(a, b)
	case KindSymbol, KindKeyword:
		return bytes.Equal(a.ns, b.ns) && bytes.Equal(a.str, b.str)
	case KindList, KindVector:
		return seqEqual(a, b)
	case KindSet:
		return setEqual(a, b)
	case KindMap:
		return mapEqual(a, b)
	case KindTagged:
		return bytes.Equal(a.str, b.str) && Equal(a.inner, b.inner)
	case KindExternal:
		return externalEqual(a, b)
	default:
		return false
	}
}

func isIntKind(k Kind) bool   { return k == KindInt || k == KindBigInt }
func isRatioKind(k Kind) bool { return k == KindRatio || k == KindBigRatio }

func bothSeq(a, b Kind) bool {
	return (a == KindList || a == KindVector) && (b == KindList || b == KindVector)
}

func intEqual(a, b *Value) bool {
	if a.kind == KindInt && b.kind == KindInt {
		return a.num == b.num
	}
	za, err := a.BigIntValue()
	if err != nil {
		return false
	}
	zb, err := b.BigIntValue()
	if err != nil {
		return false
	}
	return za.Cmp(zb) == 0
}

func ratioEqual(a, b *Value) bool {
	if a.kind == KindRatio && b.kind == KindRatio {
		// Lowest terms with positive denominators are canonical.
		return a.num == b.num && a.den == b.den
	}
	ra, err := a.RatValue()
	if err != nil {
		return false
	}
	rb, err := b.RatValue()
	if err != nil {
		return false
	}
	return ra.Cmp(rb) == 0
}

func bigDecEqual(a, b *Value) bool {
	ra, err := a.RatValue()
	if err != nil {
		return bytes.Equal(a.CleanDigits(), b.CleanDigits()) && a.Negative() == b.Negative()
	}
	rb, err := b.RatValue()
	if err != nil {
		return false
	}
	return ra.Cmp(rb) == 0
}

func stringEqual(a, b *Value) bool {
	da, err := a.decodedBytes()
	if err != nil {
		da = a.str
	}
	db, err := b.decodedBytes()
	if err != nil {
		db = b.str
	}
	return bytes.Equal(da, db)
}

func seqEqual(a, b *Value) bool {
	if len(a.items) != len(b.items) {
		return false
	}
	for i := range a.items {
		if !Equal(a.items[i], b.items[i]) {
			return false
		}
	}
	return true
}

func setEqual(a, b *Value) bool {
	if len(a.items) != len(b.items) {
		return false
	}
	// Elements are unique within each side, so one-directional
	// containment with equal counts is a bijection.
	for _, e := range a.items {
		if !b.SetContains(e) {
			return false
		}
	}
	return true
}

func mapEqual(a, b *Value) bool {
	if len(a.items) != len(b.items) {
		return false
	}
	for i, k := range a.items {
		bv := b.MapGet(k)
		if bv == nil || !Equal(a.vals[i], bv) {
			return false
		}
	}
	return true
}

func externalEqual(a, b *Value) bool {
	if a.extID != b.extID {
		return false
	}
	if et, ok := LookupExtType(a.extID); ok && et.Equal != nil {
		return et.Equal(a.ext, b.ext)
	}
	// Without a registered comparator only node identity holds, and that
	// was handled above.
	return false
}
