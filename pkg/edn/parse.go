package edn

import (
	"fmt"

	"github.com/joshuapare/ednkit/internal/mmfile"
	"github.com/joshuapare/ednkit/internal/reader"
	"github.com/joshuapare/ednkit/internal/textenc"
)

// Parse reads one EDN form from a UTF-8 byte buffer and returns the root
// of the parsed tree. A nil opts selects DefaultOptions. On failure the
// error is a *types.ParseError carrying the code, message, and 1-based
// line/column.
//
// Example:
//
//	v, err := edn.Parse([]byte(`{:name "svc" :port 8080}`), nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(v.Count())
func Parse(data []byte, opts *Options) (*Value, error) {
	cfg := resolve(opts)
	v, perr := reader.Parse(data, cfg)
	if perr != nil {
		return nil, perr
	}
	return v, nil
}

// ParseString reads one EDN form from a string.
//
// Example:
//
//	v, err := edn.ParseString("#{1 2 3}", nil)
func ParseString(src string, opts *Options) (*Value, error) {
	return Parse([]byte(src), opts)
}

// ParseFile memory-maps the file at path, normalises its encoding (UTF-16
// with a BOM is transcoded, a UTF-8 BOM is stripped), and parses one form.
// The mapping is released before parsing: transcoded input already lives
// in a fresh buffer, and input that was not transcoded is copied out of
// the mapping first, so the returned tree never points into mapped pages.
func ParseFile(path string, opts *Options) (*Value, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("edn: read %s: %w", path, err)
	}
	text, err := textenc.Normalize(data)
	if err != nil {
		cleanup()
		return nil, err
	}
	// The tree keeps zero-copy slices into the parse buffer, so the
	// mapped pages must outlive it when no transcode copy was made.
	if sameBuffer(text, data) {
		copied := make([]byte, len(text))
		copy(copied, text)
		text = copied
	}
	if cerr := cleanup(); cerr != nil {
		return nil, cerr
	}
	return Parse(text, opts)
}

// sameBuffer reports whether b is a slice of a's backing pages.
func sameBuffer(b, a []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return &b[0] == &a[0] || (len(a) >= len(b) && &b[0] == &a[len(a)-len(b)])
}

// resolve maps the public options onto the parser configuration.
func resolve(opts *Options) reader.Config {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	return reader.Config{
		Registry: o.Readers,
		TagMode:  o.TagMode,
		Ext:      o.Extensions,
		MaxDepth: o.MaxDepth,
		EOFValue: o.EOFValue,
	}
}
