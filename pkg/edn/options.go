package edn

import (
	core "github.com/joshuapare/ednkit/edn"
	"github.com/joshuapare/ednkit/pkg/types"
)

// Options controls parse behavior. The zero value of individual fields
// falls back to the documented default; passing a nil *Options to Parse
// selects DefaultOptions.
type Options struct {
	// Readers supplies tagged-literal reader functions.
	// If nil, no reader dispatch happens and the default mode applies to
	// every tag.
	Readers *core.ReaderRegistry

	// TagMode selects what to do with an unregistered tag.
	// Default: TagModePassthrough.
	TagMode types.TagMode

	// Extensions gates the optional grammar extensions.
	// DefaultOptions enables all of them; a zero Options disables all.
	Extensions types.Ext

	// MaxDepth bounds collection nesting per parse.
	// If 0, types.DefaultMaxDepth is used.
	MaxDepth int

	// EOFValue, when non-nil, is returned instead of an unexpected-eof
	// error when the input holds no form at all.
	EOFValue *core.Value
}

// DefaultOptions returns the options Parse uses for a nil pointer: every
// extension on, passthrough tag mode, the default depth limit.
func DefaultOptions() Options {
	return Options{
		Extensions: types.DefaultExtensions,
		MaxDepth:   types.DefaultMaxDepth,
	}
}

// Value is the parsed tree node type (re-exported for convenience).
type Value = core.Value

// Convenience re-exports so callers rarely import the core package
// directly.
type (
	Kind           = core.Kind
	Builder        = core.Builder
	ReaderFunc     = core.ReaderFunc
	ReaderRegistry = core.ReaderRegistry
)

// NewReaderRegistry returns an empty tag-reader registry.
func NewReaderRegistry() *ReaderRegistry { return core.NewReaderRegistry() }

// NewBuilder returns a builder bound to ar.
var NewBuilder = core.NewBuilder

// Singleton accessors.
var (
	NilValue = core.Nil
	True     = core.True
	False    = core.False
)

// Structural operations.
var (
	Equal   = core.Equal
	Compare = core.Compare
)

// External-type registry operations (process-wide; register at a
// quiescent moment).
var (
	RegisterExtType   = core.RegisterExtType
	UnregisterExtType = core.UnregisterExtType
	LookupExtType     = core.LookupExtType
)
