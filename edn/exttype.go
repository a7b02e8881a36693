package edn

// ExtEqualFunc compares two external payloads registered under one type
// id.
type ExtEqualFunc func(a, b any) bool

// ExtHashFunc hashes an external payload. The result is folded into the
// structural hash, so it must agree with the type's equality function.
type ExtHashFunc func(v any) uint64

// ExtType is the behaviour registered for one external type id.
type ExtType struct {
	Equal ExtEqualFunc
	Hash  ExtHashFunc
}

// The external-type registry is process-wide. Registration and removal
// are not thread-safe and must happen at a quiescent moment, before any
// parse or tree comparison that could observe the entry.
var extTypes = make(map[uint32]ExtType)

// RegisterExtType binds equality and hash functions to a 32-bit type id,
// overriding any previous binding.
func RegisterExtType(id uint32, eq ExtEqualFunc, hash ExtHashFunc) {
	extTypes[id] = ExtType{Equal: eq, Hash: hash}
}

// UnregisterExtType removes the binding for id, if any.
func UnregisterExtType(id uint32) {
	delete(extTypes, id)
}

// LookupExtType returns the behaviour registered for id.
func LookupExtType(id uint32) (ExtType, bool) {
	et, ok := extTypes[id]
	return et, ok
}
