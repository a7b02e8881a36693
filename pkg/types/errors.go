package types

import "fmt"

// Code classifies parse failures so callers can branch on intent rather
// than on message text.
type Code int

const (
	// OK indicates no error.
	OK Code = iota

	// ErrInvalidSyntax covers malformed identifiers, bad metadata targets,
	// bad tag symbols, and whitespace after '#'.
	ErrInvalidSyntax

	// ErrUnexpectedEOF indicates the input ended in the middle of a form.
	ErrUnexpectedEOF

	// ErrUnmatchedDelimiter indicates a closing bracket without an opener,
	// or a closer of the wrong kind.
	ErrUnmatchedDelimiter

	// ErrInvalidString covers unterminated strings, bad escapes, and
	// unterminated text blocks.
	ErrInvalidString

	// ErrInvalidNumber covers malformed numerics, non-positive ratio
	// denominators, and a missing delimiter after digits.
	ErrInvalidNumber

	// ErrInvalidCharacter covers malformed or empty character literals and
	// surrogate codepoints.
	ErrInvalidCharacter

	// ErrInvalidMap indicates an odd number of forms inside {...}.
	ErrInvalidMap

	// ErrDuplicateKey indicates two map keys compared structurally equal.
	ErrDuplicateKey

	// ErrDuplicateElement indicates two set elements compared structurally
	// equal.
	ErrDuplicateElement

	// ErrUnknownTag indicates a tag with no registered reader while the
	// default-reader mode is TagModeError.
	ErrUnknownTag

	// ErrOutOfMemory indicates the underlying allocator refused.
	ErrOutOfMemory

	// ErrDepthExceeded indicates the configured maximum nesting was reached.
	ErrDepthExceeded
)

// String returns the symbolic kind name for the code.
func (c Code) String() string {
	switch c {
	case OK:
		return "ok"
	case ErrInvalidSyntax:
		return "invalid-syntax"
	case ErrUnexpectedEOF:
		return "unexpected-eof"
	case ErrUnmatchedDelimiter:
		return "unmatched-delimiter"
	case ErrInvalidString:
		return "invalid-string"
	case ErrInvalidNumber:
		return "invalid-number"
	case ErrInvalidCharacter:
		return "invalid-character"
	case ErrInvalidMap:
		return "invalid-map"
	case ErrDuplicateKey:
		return "duplicate-key"
	case ErrDuplicateElement:
		return "duplicate-element"
	case ErrUnknownTag:
		return "unknown-tag"
	case ErrOutOfMemory:
		return "out-of-memory"
	case ErrDepthExceeded:
		return "depth-exceeded"
	default:
		return fmt.Sprintf("code(%d)", int(c))
	}
}

// ParseError is a typed parse failure with a position in the input.
// Line and Col are 1-based; both are 0 when position resolution was not
// performed. The reader resolves them for every failure it reports,
// out-of-memory included.
type ParseError struct {
	Code   Code
	Msg    string
	Offset int // byte offset of the cursor at failure
	Line   int
	Col    int
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("edn: %s: %s at %d:%d", e.Code, e.Msg, e.Line, e.Col)
	}
	return fmt.Sprintf("edn: %s: %s", e.Code, e.Msg)
}

// Is reports whether target is a *ParseError with the same code, so
// errors.Is(err, &ParseError{Code: ErrInvalidNumber}) branches on kind.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return e != nil && e.Code == t.Code
}

// Sentinels for errors.Is matching by code.
var (
	ErrSyntax     = &ParseError{Code: ErrInvalidSyntax, Msg: "invalid syntax"}
	ErrEOF        = &ParseError{Code: ErrUnexpectedEOF, Msg: "unexpected end of input"}
	ErrDelimiter  = &ParseError{Code: ErrUnmatchedDelimiter, Msg: "unmatched delimiter"}
	ErrString     = &ParseError{Code: ErrInvalidString, Msg: "invalid string"}
	ErrNumber     = &ParseError{Code: ErrInvalidNumber, Msg: "invalid number"}
	ErrCharacter  = &ParseError{Code: ErrInvalidCharacter, Msg: "invalid character"}
	ErrMap        = &ParseError{Code: ErrInvalidMap, Msg: "invalid map"}
	ErrDupKey     = &ParseError{Code: ErrDuplicateKey, Msg: "duplicate key"}
	ErrDupElement = &ParseError{Code: ErrDuplicateElement, Msg: "duplicate element"}
	ErrTag        = &ParseError{Code: ErrUnknownTag, Msg: "unknown tag"}
	ErrNoMemory   = &ParseError{Code: ErrOutOfMemory, Msg: "out of memory"}
	ErrDepth      = &ParseError{Code: ErrDepthExceeded, Msg: "depth exceeded"}
)
