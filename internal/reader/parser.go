package reader

import (
	"github.com/joshuapare/ednkit/edn"
	"github.com/joshuapare/ednkit/edn/arena"
	"github.com/joshuapare/ednkit/internal/scan"
	"github.com/joshuapare/ednkit/pkg/types"
)

// Config carries the per-parse options resolved by the facade.
type Config struct {
	// Registry supplies tagged-literal reader functions; nil disables
	// reader dispatch entirely.
	Registry *edn.ReaderRegistry

	// TagMode selects the behaviour for tags with no registered reader.
	TagMode types.TagMode

	// Ext gates the optional grammar extensions.
	Ext types.Ext

	// MaxDepth bounds collection nesting; 0 means types.DefaultMaxDepth.
	MaxDepth int

	// EOFValue, when non-nil, is returned instead of an unexpected-eof
	// error for an input holding no form.
	EOFValue *edn.Value
}

// parser is the single-threaded state of one parse call.
type parser struct {
	src     []byte
	pos     int
	depth   int
	b       *edn.Builder
	cfg     Config
	useMeta bool
	discard bool
	err     *types.ParseError
}

// Parse reads one top-level form from src. On failure the returned error
// carries the code, message, and resolved 1-based line/column, and the
// arena holding any partial tree is released.
func Parse(src []byte, cfg Config) (*edn.Value, *types.ParseError) {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = types.DefaultMaxDepth
	}
	ar := arena.New()
	p := &parser{
		src:     src,
		b:       edn.NewBuilder(ar),
		cfg:     cfg,
		useMeta: cfg.Ext.Has(types.ExtMetadata),
	}

	p.pos = scan.SkipWhitespace(src, 0)
	if p.pos >= len(src) {
		if cfg.EOFValue != nil {
			return cfg.EOFValue, nil
		}
		p.failEOF()
		resolvePosition(src, p.err)
		return nil, p.err
	}

	v := p.readForm()
	if p.err != nil {
		resolvePosition(src, p.err)
		ar.Release()
		return nil, p.err
	}
	if v.Arena() == nil {
		// A singleton root anchors nothing; drop the arena along with any
		// discarded intermediates.
		ar.Release()
	}
	return v, nil
}

// readForm reads the next form at the cursor. Discarded forms are
// consumed in place, so the loop may go around more than once before a
// value materialises.
func (p *parser) readForm() *edn.Value {
	for {
		p.pos = scan.SkipWhitespace(p.src, p.pos)
		if p.pos >= len(p.src) {
			return p.failEOF()
		}
		c := p.src[p.pos]
		switch scan.Classify(c, p.useMeta) {
		case scan.ClassIdent:
			return p.readIdentifier()
		case scan.ClassString:
			return p.readString()
		case scan.ClassChar:
			return p.readCharacter()
		case scan.ClassListOpen:
			return p.readSequence(')', edn.KindList)
		case scan.ClassVecOpen:
			return p.readSequence(']', edn.KindVector)
		case scan.ClassMapOpen:
			return p.readMap(nil)
		case scan.ClassSign:
			if p.pos+1 < len(p.src) && scan.IsDigit(p.src[p.pos+1]) {
				return p.readNumber()
			}
			return p.readIdentifier()
		case scan.ClassDigit:
			return p.readNumber()
		case scan.ClassDelim:
			return p.fail(types.ErrUnmatchedDelimiter, "Unmatched delimiter")
		case scan.ClassHash:
			if p.pos+1 >= len(p.src) {
				p.pos = len(p.src)
				return p.failEOF()
			}
			switch p.src[p.pos+1] {
			case '{':
				return p.readSet()
			case '#':
				return p.readSymbolic()
			case '_':
				p.pos += 2
				if !p.discardNext() {
					return nil
				}
				continue
			case ':':
				if p.cfg.Ext.Has(types.ExtNamespacedMaps) {
					return p.readNamespacedMap()
				}
				return p.readTagged()
			default:
				return p.readTagged()
			}
		case scan.ClassMeta:
			return p.readMeta()
		default:
			return p.fail(types.ErrInvalidSyntax, "Invalid form")
		}
	}
}

// discardNext reads and abandons one form under the discard flag. The
// flag suppresses tagged-literal reader dispatch and is restored on every
// exit, including error paths.
func (p *parser) discardNext() (ok bool) {
	saved := p.discard
	p.discard = true
	defer func() { p.discard = saved }()
	if !p.enter() {
		return false
	}
	defer p.leave()
	v := p.readForm()
	return v != nil && p.err == nil
}

// enter bumps the nesting depth against the configured bound.
func (p *parser) enter() bool {
	p.depth++
	if p.depth > p.cfg.MaxDepth {
		p.fail(types.ErrDepthExceeded, "Nesting too deep")
		return false
	}
	return true
}

func (p *parser) leave() { p.depth-- }

// fail records the first error with the current cursor and returns nil so
// scanners can propagate in one expression.
func (p *parser) fail(code types.Code, msg string) *edn.Value {
	p.failAt(code, msg, p.pos)
	return nil
}

// failAt records the first error at an explicit offset.
func (p *parser) failAt(code types.Code, msg string, offset int) {
	if p.err != nil {
		return
	}
	p.err = &types.ParseError{Code: code, Msg: msg, Offset: offset}
}

// failEOF records an unexpected-eof at the last input byte.
func (p *parser) failEOF() *edn.Value {
	off := len(p.src)
	if off > 0 {
		off--
	}
	p.failAt(types.ErrUnexpectedEOF, "Unexpected end of input", off)
	return nil
}

// failOOM records an out-of-memory failure.
func (p *parser) failOOM() *edn.Value {
	p.failAt(types.ErrOutOfMemory, "Out of memory", p.pos)
	return nil
}
