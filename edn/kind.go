package edn

// Kind discriminates the variants of a Value.
type Kind uint8

const (
	// KindNil is the nil literal.
	KindNil Kind = iota
	// KindBool is true or false.
	KindBool
	// KindInt is a 64-bit signed integer.
	KindInt
	// KindBigInt is an arbitrary-precision integer kept as a digit slice
	// with a radix of 2..36 and a sign.
	KindBigInt
	// KindFloat is an IEEE-754 binary64.
	KindFloat
	// KindBigDec is an arbitrary-precision decimal kept as its source
	// digits.
	KindBigDec
	// KindRatio is a 64-bit rational in lowest terms with a positive
	// denominator.
	KindRatio
	// KindBigRatio is a rational whose numerator or denominator overflows
	// 64 bits, kept as digit slices.
	KindBigRatio
	// KindChar is a Unicode scalar codepoint.
	KindChar
	// KindString is a string kept as a slice into the input with lazy
	// escape decoding.
	KindString
	// KindSymbol is an identifier with an optional namespace.
	KindSymbol
	// KindKeyword is a ':'-prefixed identifier with an optional namespace.
	KindKeyword
	// KindList is an ordered '(...)' collection.
	KindList
	// KindVector is an ordered '[...]' collection.
	KindVector
	// KindSet is a '#{...}' collection with unique elements.
	KindSet
	// KindMap is a '{...}' collection of unique keys with values.
	KindMap
	// KindTagged is a '#tag form' literal left uninterpreted.
	KindTagged
	// KindExternal is an opaque caller-provided payload with a registered
	// 32-bit type id.
	KindExternal
)

var kindNames = [...]string{
	KindNil:      "nil",
	KindBool:     "bool",
	KindInt:      "int",
	KindBigInt:   "big-int",
	KindFloat:    "float",
	KindBigDec:   "big-dec",
	KindRatio:    "ratio",
	KindBigRatio: "big-ratio",
	KindChar:     "character",
	KindString:   "string",
	KindSymbol:   "symbol",
	KindKeyword:  "keyword",
	KindList:     "list",
	KindVector:   "vector",
	KindSet:      "set",
	KindMap:      "map",
	KindTagged:   "tagged",
	KindExternal: "external",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(?)"
}

// IsNumeric reports whether k is one of the numeric kinds.
func (k Kind) IsNumeric() bool {
	switch k {
	case KindInt, KindBigInt, KindFloat, KindBigDec, KindRatio, KindBigRatio:
		return true
	}
	return false
}

// IsCollection reports whether k is a list, vector, set, or map.
func (k Kind) IsCollection() bool {
	switch k {
	case KindList, KindVector, KindSet, KindMap:
		return true
	}
	return false
}
