package reader

import (
	"bytes"
	"math"

	"github.com/joshuapare/ednkit/edn"
	"github.com/joshuapare/ednkit/internal/scan"
	"github.com/joshuapare/ednkit/pkg/types"
)

// readTagged parses '#tag form'. A configured registry resolves the tag
// to a reader function unless the parser is in discard mode; an unknown
// tag follows the configured default-reader mode.
func (p *parser) readTagged() *edn.Value {
	hash := p.pos
	p.pos++ // '#'
	if p.pos >= len(p.src) {
		return p.failEOF()
	}
	if scan.IsWhitespace(p.src[p.pos]) {
		return p.fail(types.ErrInvalidSyntax, "no whitespace allowed")
	}

	tagStart := p.pos
	id := scan.ScanIdentifier(p.src, p.pos)
	tag := p.src[tagStart:id.End]
	if len(tag) == 0 || tag[0] == ':' || id.AdjColons ||
		bytes.Equal(tag, symNil) || bytes.Equal(tag, symTrue) || bytes.Equal(tag, symFalse) {
		p.failAt(types.ErrInvalidSyntax, "Tagged literal must be a symbol", hash)
		return nil
	}
	if tag[0] == '/' || tag[len(tag)-1] == '/' {
		p.failAt(types.ErrInvalidSyntax, "Tagged literal must be a symbol", hash)
		return nil
	}
	p.pos = id.End

	if !p.enter() {
		return nil
	}
	defer p.leave()

	inner := p.readForm()
	if inner == nil {
		return nil
	}

	// Reader dispatch is suppressed while discarding: readers may have
	// side effects the discarded form must not trigger.
	if p.cfg.Registry != nil && !p.discard {
		if fn := p.cfg.Registry.Lookup(tag); fn != nil {
			out, err := fn(p.b, inner)
			if err != nil {
				p.failAt(types.ErrInvalidSyntax, err.Error(), hash)
				return nil
			}
			if out == nil {
				p.failAt(types.ErrInvalidSyntax, "Tag reader returned nothing", hash)
				return nil
			}
			return out
		}
	}

	switch p.cfg.TagMode {
	case types.TagModeUnwrap:
		return inner
	case types.TagModeError:
		p.failAt(types.ErrUnknownTag, "No reader for tag "+string(tag), hash)
		return nil
	default:
		return p.built(p.b.Tagged(tag, inner))
	}
}

// readSymbolic parses '##Inf', '##-Inf', and '##NaN'.
func (p *parser) readSymbolic() *edn.Value {
	start := p.pos
	p.pos += 2 // '##'
	id := scan.ScanIdentifier(p.src, p.pos)
	name := p.src[p.pos:id.End]
	p.pos = id.End
	switch string(name) {
	case "Inf":
		return p.built(p.b.Float(math.Inf(1)))
	case "-Inf":
		return p.built(p.b.Float(math.Inf(-1)))
	case "NaN":
		return p.built(p.b.Float(math.NaN()))
	}
	p.failAt(types.ErrInvalidSyntax, "Unknown symbolic value", start)
	return nil
}
