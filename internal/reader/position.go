package reader

import (
	"github.com/joshuapare/ednkit/internal/scan"
	"github.com/joshuapare/ednkit/pkg/types"
)

// resolvePosition fills the 1-based line and column of a parse error by
// scanning the consumed prefix of the input for newlines. The index is
// throwaway; nothing of it outlives the call.
func resolvePosition(src []byte, err *types.ParseError) {
	if err == nil {
		return
	}
	off := err.Offset
	if off > len(src) {
		off = len(src)
	}
	newlines := scan.FindAllNewlines(src[:off], scan.NewlineCRLF)
	err.Line, err.Col = scan.Position(newlines, off)
}
