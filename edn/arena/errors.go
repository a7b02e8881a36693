package arena

import "errors"

var (
	// ErrNoMemory indicates the underlying allocator returned nothing.
	ErrNoMemory = errors.New("arena: allocation failed")
)
