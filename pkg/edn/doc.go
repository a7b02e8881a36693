// Package edn is the public facade of ednkit, a reader for the
// Extensible Data Notation.
//
// # Reading
//
// Parse, ParseString, and ParseFile read one form into an immutable tree
// owned by a single arena bound to the parse result:
//
//	v, err := edn.ParseString(`{:a 1, :b [2 3]}`, nil)
//	if err != nil {
//	    var perr *types.ParseError
//	    if errors.As(err, &perr) {
//	        fmt.Printf("%s at %d:%d\n", perr.Code, perr.Line, perr.Col)
//	    }
//	    return err
//	}
//	port := v.MapGet(key)
//
// # Options
//
// Options selects the tag-reader registry, the default-reader mode for
// unknown tags, the enabled grammar extensions (metadata, ratios, big
// numerics, text blocks, namespaced maps, digit separators), the nesting
// depth limit, and an optional EOF value for empty inputs. A nil options
// pointer means DefaultOptions: every extension on, passthrough tags.
//
// # Tagged literals
//
// A ReaderRegistry maps tag names to functions invoked at parse time:
//
//	reg := edn.NewReaderRegistry()
//	reg.Register("inst", func(b *edn.Builder, form *edn.Value) (*edn.Value, error) {
//	    s, err := form.Str()
//	    if err != nil {
//	        return nil, err
//	    }
//	    t, err := time.Parse(time.RFC3339, s)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return b.Int(t.Unix()), nil
//	})
//	v, err := edn.Parse(data, &edn.Options{
//	    Readers:    reg,
//	    Extensions: types.DefaultExtensions,
//	})
//
// Readers are never invoked for forms consumed by the discard reader #_.
//
// # Concurrency
//
// A parse call is single-threaded; distinct calls on distinct inputs are
// fully independent. A finished tree may be read from one goroutine, or
// from several once publication establishes a happens-before with the
// completing parse.
package edn
