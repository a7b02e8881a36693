package edn

import "github.com/joshuapare/ednkit/edn/arena"

// Value is one node of a parsed tree. Nodes are immutable once built; the
// decoded-string, cleaned-digit, and hash fields are write-once caches
// populated on first access under single-threaded read.
//
// Every non-singleton node belongs to exactly one arena, and every slice
// it references points either into the parser's input buffer or into that
// arena.
type Value struct {
	kind  Kind
	flags uint8
	radix uint8  // big-int digit radix, 2..36
	extID uint32 // external type id

	hash uint64 // cached; 0 means not yet computed

	num int64   // int value, ratio numerator, char codepoint, bool
	den int64   // ratio denominator, > 0
	f   float64 // float payload

	str []byte // string body, digits, identifier name, or tag
	ns  []byte // identifier namespace, or big-ratio denominator digits

	items []*Value // list/vector/set elements; map keys
	vals  []*Value // map values, index-correlated with items
	inner *Value   // tagged wrapped value
	meta  *Value   // metadata map, nil unless attached

	ar *arena.Arena // owning arena; nil for the three singletons

	dec []byte // write-once: cleaned digits, or decoded string bytes
	s   string // write-once: decoded string cache
	ext any    // external payload
}

const (
	// flagNeg marks a negative big-int, big-dec, or big-ratio.
	flagNeg uint8 = 1 << iota
	// flagHasEscapes marks a string whose raw slice contains backslashes.
	flagHasEscapes
	// flagDecoded marks a string whose body was materialised at parse time
	// (text blocks) or by a completed lazy decode.
	flagDecoded
)

// The three singleton nodes. They carry no arena and are shared by every
// parse; their hashes are precomputed so they stay read-only.
var (
	nilValue   = &Value{kind: KindNil}
	trueValue  = &Value{kind: KindBool, num: 1}
	falseValue = &Value{kind: KindBool}
)

func init() {
	nilValue.Hash()
	trueValue.Hash()
	falseValue.Hash()
}

// Nil returns the shared nil singleton.
func Nil() *Value { return nilValue }

// True returns the shared true singleton.
func True() *Value { return trueValue }

// False returns the shared false singleton.
func False() *Value { return falseValue }

// Bool returns the singleton for v.
func Bool(v bool) *Value {
	if v {
		return trueValue
	}
	return falseValue
}

// Kind returns the variant of the value.
func (v *Value) Kind() Kind { return v.kind }

// IsNil reports whether the value is the nil literal.
func (v *Value) IsNil() bool { return v.kind == KindNil }

// Arena returns the owning arena, or nil for a singleton.
func (v *Value) Arena() *arena.Arena { return v.ar }

// Meta returns the attached metadata map, or nil.
func (v *Value) Meta() *Value { return v.meta }
