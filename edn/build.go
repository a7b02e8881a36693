package edn

import "github.com/joshuapare/ednkit/edn/arena"

// Builder constructs value nodes bound to one arena. Nodes come from
// slabs that grow in tiers so a parse performs O(slabs) allocations
// rather than one per node.
type Builder struct {
	ar   *arena.Arena
	slab []Value
	tier int
}

// Node slab growth tiers, in node counts.
const (
	slabFirst  = 64
	slabSecond = 256
	slabRest   = 1024
)

// NewBuilder returns a builder allocating from ar.
func NewBuilder(ar *arena.Arena) *Builder {
	return &Builder{ar: ar}
}

// Arena returns the arena every built node is owned by.
func (b *Builder) Arena() *arena.Arena { return b.ar }

// node hands out the next slab slot, growing the slab when exhausted.
// Returns nil when the allocator refuses.
func (b *Builder) node(k Kind) *Value {
	if len(b.slab) == 0 {
		if !b.growSlab() {
			return nil
		}
	}
	v := &b.slab[0]
	b.slab = b.slab[1:]
	v.kind = k
	v.ar = b.ar
	return v
}

func (b *Builder) growSlab() (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	size := slabRest
	switch b.tier {
	case 0:
		size = slabFirst
	case 1:
		size = slabSecond
	}
	b.tier++
	b.slab = make([]Value, size)
	return true
}

// Nil returns the shared nil singleton.
func (b *Builder) Nil() *Value { return nilValue }

// Bool returns the shared singleton for v.
func (b *Builder) Bool(v bool) *Value { return Bool(v) }

// Int builds a 64-bit integer node.
func (b *Builder) Int(n int64) *Value {
	v := b.node(KindInt)
	if v == nil {
		return nil
	}
	v.num = n
	return v
}

// Float builds a binary64 node.
func (b *Builder) Float(f float64) *Value {
	v := b.node(KindFloat)
	if v == nil {
		return nil
	}
	v.f = f
	return v
}

// Char builds a character node for the given Unicode scalar.
func (b *Builder) Char(cp rune) *Value {
	v := b.node(KindChar)
	if v == nil {
		return nil
	}
	v.num = int64(cp)
	return v
}

// String builds a string node over raw, which stays a zero-copy slice;
// decoding runs lazily when an accessor demands the bytes.
func (b *Builder) String(raw []byte, hasEscapes bool) *Value {
	v := b.node(KindString)
	if v == nil {
		return nil
	}
	v.str = raw
	if hasEscapes {
		v.flags |= flagHasEscapes
	}
	return v
}

// DecodedString builds a string node whose body was already materialised
// (text blocks). raw is the source span, body the decoded content.
func (b *Builder) DecodedString(raw, body []byte) *Value {
	v := b.node(KindString)
	if v == nil {
		return nil
	}
	v.str = raw
	v.dec = body
	v.flags |= flagDecoded
	return v
}

// BigInt builds an arbitrary-precision integer node over its digit slice.
// radix must be within 2..36.
func (b *Builder) BigInt(digits []byte, radix int, neg bool) *Value {
	v := b.node(KindBigInt)
	if v == nil {
		return nil
	}
	v.str = digits
	v.radix = uint8(radix)
	if neg {
		v.flags |= flagNeg
	}
	return v
}

// BigDec builds an arbitrary-precision decimal node over its source
// digits (which may include '.', exponent, and separators).
func (b *Builder) BigDec(digits []byte, neg bool) *Value {
	v := b.node(KindBigDec)
	if v == nil {
		return nil
	}
	v.str = digits
	if neg {
		v.flags |= flagNeg
	}
	return v
}

// Ratio builds a rational node. num and den must already be in lowest
// terms with den > 0.
func (b *Builder) Ratio(num, den int64) *Value {
	v := b.node(KindRatio)
	if v == nil {
		return nil
	}
	v.num = num
	v.den = den
	return v
}

// BigRatio builds a rational node over decimal digit slices.
func (b *Builder) BigRatio(num, den []byte, neg bool) *Value {
	v := b.node(KindBigRatio)
	if v == nil {
		return nil
	}
	v.str = num
	v.ns = den
	if neg {
		v.flags |= flagNeg
	}
	return v
}

// Symbol builds a symbol node. ns is nil for a bare symbol.
func (b *Builder) Symbol(ns, name []byte) *Value {
	v := b.node(KindSymbol)
	if v == nil {
		return nil
	}
	v.ns = ns
	v.str = name
	return v
}

// Keyword builds a keyword node. ns is nil for a bare keyword.
func (b *Builder) Keyword(ns, name []byte) *Value {
	v := b.node(KindKeyword)
	if v == nil {
		return nil
	}
	v.ns = ns
	v.str = name
	return v
}

// List builds a list node over items.
func (b *Builder) List(items []*Value) *Value {
	v := b.node(KindList)
	if v == nil {
		return nil
	}
	v.items = items
	return v
}

// Vector builds a vector node over items.
func (b *Builder) Vector(items []*Value) *Value {
	v := b.node(KindVector)
	if v == nil {
		return nil
	}
	v.items = items
	return v
}

// Set builds a set node over items. Uniqueness is the caller's contract;
// the parser verifies it before the node escapes.
func (b *Builder) Set(items []*Value) *Value {
	v := b.node(KindSet)
	if v == nil {
		return nil
	}
	v.items = items
	return v
}

// Map builds a map node over index-correlated key and value arrays.
func (b *Builder) Map(keys, vals []*Value) *Value {
	v := b.node(KindMap)
	if v == nil {
		return nil
	}
	v.items = keys
	v.vals = vals
	return v
}

// Tagged builds a tagged-literal node carrying the tag slice and the
// wrapped value.
func (b *Builder) Tagged(tag []byte, inner *Value) *Value {
	v := b.node(KindTagged)
	if v == nil {
		return nil
	}
	v.str = tag
	v.inner = inner
	return v
}

// External builds a node wrapping an opaque payload under a caller-owned
// 32-bit type id.
func (b *Builder) External(id uint32, payload any) *Value {
	v := b.node(KindExternal)
	if v == nil {
		return nil
	}
	v.extID = id
	v.ext = payload
	return v
}

// WithMeta attaches a metadata map to v and returns v. m must be a map
// node; a nil m clears nothing and is ignored.
func (b *Builder) WithMeta(v, m *Value) *Value {
	if v == nil || m == nil {
		return v
	}
	v.meta = m
	return v
}
