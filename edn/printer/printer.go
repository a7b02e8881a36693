// Package printer renders parsed trees for diagnostics: an indented text
// view and a JSON projection. It is not an EDN serializer; the output is
// a human-facing description of the tree, the way a hive dump describes
// records.
package printer

import (
	"io"

	"github.com/joshuapare/ednkit/edn"
)

const DefaultIndentSize = 2

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs an indented human-readable tree.
	FormatText Format = "text"

	// FormatJSON outputs a JSON projection of the tree.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies the output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text only).
	// Default: 2
	IndentSize int

	// ShowMeta includes attached metadata maps in the text output.
	// Default: false. The JSON output carries attached metadata whether
	// or not ShowMeta is set.
	ShowMeta bool
}

// Print renders v to w under the given options.
func Print(w io.Writer, v *edn.Value, opts Options) error {
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	switch opts.Format {
	case FormatJSON:
		return printJSON(w, v)
	default:
		return printText(w, v, opts)
	}
}
