// Package reader implements the parse driver and the per-construct
// scanners of the EDN reader.
//
// The driver dispatches on the class of the first byte of each form; each
// scanner advances the shared cursor and builds its result node through
// an edn.Builder bound to the parse's arena. Collection scanners recurse
// through the driver with the nesting depth guarded. Scanners return nil
// on failure after recording the parser's first error; the top level
// resolves the error position and releases the arena when no value
// survives.
package reader
