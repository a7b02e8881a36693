package edn

// Shape-level getters over a parsed tree. After a successful parse these
// are read-only apart from the write-once caches (decoded string, cleaned
// digits, hash).

// Bool returns the boolean payload. Valid for KindBool.
func (v *Value) Bool() bool { return v.num != 0 }

// Int returns the integer payload. Valid for KindInt.
func (v *Value) Int() int64 { return v.num }

// Float returns the binary64 payload. Valid for KindFloat.
func (v *Value) Float() float64 { return v.f }

// Char returns the Unicode scalar payload. Valid for KindChar.
func (v *Value) Char() rune { return rune(v.num) }

// Num returns the ratio numerator. Valid for KindRatio.
func (v *Value) Num() int64 { return v.num }

// Den returns the ratio denominator, always positive. Valid for KindRatio.
func (v *Value) Den() int64 { return v.den }

// RawString returns the undecoded body slice of a string, the digit slice
// of a big numeric, or the numerator digits of a big ratio.
func (v *Value) RawString() []byte { return v.str }

// HasEscapes reports whether a string's raw slice contains backslash
// escapes.
func (v *Value) HasEscapes() bool { return v.flags&flagHasEscapes != 0 }

// Radix returns the digit radix of a big integer.
func (v *Value) Radix() int { return int(v.radix) }

// Negative reports the sign of a big-int, big-dec, or big-ratio.
func (v *Value) Negative() bool { return v.flags&flagNeg != 0 }

// Name returns the name part of a symbol or keyword.
func (v *Value) Name() string { return string(v.str) }

// Namespace returns the namespace part of a symbol or keyword, or "".
func (v *Value) Namespace() string { return string(v.ns) }

// HasNamespace reports whether a symbol or keyword carries a namespace.
func (v *Value) HasNamespace() bool { return v.ns != nil }

// NameBytes returns the name slice without copying.
func (v *Value) NameBytes() []byte { return v.str }

// NamespaceBytes returns the namespace slice without copying, or nil.
func (v *Value) NamespaceBytes() []byte { return v.ns }

// Tag returns the tag slice of a tagged literal.
func (v *Value) Tag() []byte { return v.str }

// TagString returns the tag of a tagged literal as a string.
func (v *Value) TagString() string { return string(v.str) }

// Inner returns the wrapped value of a tagged literal.
func (v *Value) Inner() *Value { return v.inner }

// ExtID returns the registered type id of an external value.
func (v *Value) ExtID() uint32 { return v.extID }

// ExtPayload returns the opaque payload of an external value.
func (v *Value) ExtPayload() any { return v.ext }

// Count returns the element count of a list, vector, or set, or the entry
// count of a map. Zero for every other kind.
func (v *Value) Count() int { return len(v.items) }

// At returns the i-th element of a list, vector, or set.
func (v *Value) At(i int) *Value { return v.items[i] }

// MapKeyAt returns the i-th key of a map.
func (v *Value) MapKeyAt(i int) *Value { return v.items[i] }

// MapValAt returns the i-th value of a map.
func (v *Value) MapValAt(i int) *Value { return v.vals[i] }

// MapGet returns the value stored under key, or nil. Lookup is by
// structural equality.
func (v *Value) MapGet(key *Value) *Value {
	for i, k := range v.items {
		if Equal(k, key) {
			return v.vals[i]
		}
	}
	return nil
}

// SetContains reports whether a set holds an element structurally equal
// to elem.
func (v *Value) SetContains(elem *Value) bool {
	for _, e := range v.items {
		if Equal(e, elem) {
			return true
		}
	}
	return false
}
