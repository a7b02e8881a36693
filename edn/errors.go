package edn

import "errors"

var (
	// ErrBadEscape indicates a string body carries a malformed or
	// surrogate escape sequence.
	ErrBadEscape = errors.New("edn: invalid string escape")

	// ErrBadDigits indicates a numeric digit slice does not parse under
	// its recorded radix.
	ErrBadDigits = errors.New("edn: invalid numeric digits")

	// ErrNoMemory indicates the arena refused an allocation.
	ErrNoMemory = errors.New("edn: allocation failed")

	// ErrWrongKind indicates a conversion was requested for a value of an
	// incompatible kind.
	ErrWrongKind = errors.New("edn: wrong value kind")
)
