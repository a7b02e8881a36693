package reader

import (
	"github.com/joshuapare/ednkit/edn"
	"github.com/joshuapare/ednkit/internal/scan"
	"github.com/joshuapare/ednkit/pkg/types"
)

// isCloser reports whether b is a closing delimiter.
func isCloser(b byte) bool { return b == ')' || b == ']' || b == '}' }

// readSequence parses a list or vector body after its opening delimiter.
func (p *parser) readSequence(closer byte, kind edn.Kind) *edn.Value {
	p.pos++
	if !p.enter() {
		return nil
	}
	defer p.leave()

	var items []*edn.Value
	for {
		p.pos = scan.SkipWhitespace(p.src, p.pos)
		if p.pos >= len(p.src) {
			p.failAt(types.ErrUnexpectedEOF, "Unexpected end of input", eofOffset(p.src))
			return nil
		}
		c := p.src[p.pos]
		if c == closer {
			p.pos++
			break
		}
		if isCloser(c) {
			return p.fail(types.ErrUnmatchedDelimiter, "Unmatched delimiter")
		}
		if p.discardAhead() {
			if !p.consumeDiscard() {
				return nil
			}
			continue
		}
		v := p.readForm()
		if v == nil {
			return nil
		}
		items = append(items, v)
	}

	if kind == edn.KindList {
		return p.built(p.b.List(items))
	}
	return p.built(p.b.Vector(items))
}

// readSet parses '#{...}' and verifies element uniqueness.
func (p *parser) readSet() *edn.Value {
	open := p.pos
	p.pos += 2 // '#{'
	if !p.enter() {
		return nil
	}
	defer p.leave()

	var items []*edn.Value
	for {
		p.pos = scan.SkipWhitespace(p.src, p.pos)
		if p.pos >= len(p.src) {
			p.failAt(types.ErrUnexpectedEOF, "Unexpected end of input", eofOffset(p.src))
			return nil
		}
		c := p.src[p.pos]
		if c == '}' {
			p.pos++
			break
		}
		if isCloser(c) {
			return p.fail(types.ErrUnmatchedDelimiter, "Unmatched delimiter")
		}
		if p.discardAhead() {
			if !p.consumeDiscard() {
				return nil
			}
			continue
		}
		v := p.readForm()
		if v == nil {
			return nil
		}
		items = append(items, v)
	}

	if edn.FindDuplicate(items) >= 0 {
		p.failAt(types.ErrDuplicateElement, "Duplicate set element", open)
		return nil
	}
	return p.built(p.b.Set(items))
}

// readMap parses '{...}', alternating keys and values, and verifies key
// uniqueness. A non-nil autoNS rewrites bare keyword keys with that
// namespace (the namespaced-map reader).
func (p *parser) readMap(autoNS []byte) *edn.Value {
	open := p.pos
	p.pos++
	if !p.enter() {
		return nil
	}
	defer p.leave()

	var keys, vals []*edn.Value
	for {
		p.pos = scan.SkipWhitespace(p.src, p.pos)
		if p.pos >= len(p.src) {
			p.failAt(types.ErrUnexpectedEOF, "Unexpected end of input", eofOffset(p.src))
			return nil
		}
		c := p.src[p.pos]
		if c == '}' {
			p.pos++
			break
		}
		if isCloser(c) {
			return p.fail(types.ErrUnmatchedDelimiter, "Unmatched delimiter")
		}
		if p.discardAhead() {
			if !p.consumeDiscard() {
				return nil
			}
			continue
		}
		v := p.readForm()
		if v == nil {
			return nil
		}
		if len(keys) == len(vals) {
			keys = append(keys, v)
		} else {
			vals = append(vals, v)
		}
	}

	if len(keys) != len(vals) {
		p.failAt(types.ErrInvalidMap, "Map requires even number of forms", open)
		return nil
	}
	if autoNS != nil {
		if !p.applyMapNamespace(keys, autoNS) {
			return nil
		}
	}
	if edn.FindDuplicate(keys) >= 0 {
		p.failAt(types.ErrDuplicateKey, "Duplicate map key", open)
		return nil
	}
	return p.built(p.b.Map(keys, vals))
}

// discardAhead reports a '#_' at the cursor.
func (p *parser) discardAhead() bool {
	return p.src[p.pos] == '#' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '_'
}

// consumeDiscard eats '#_' plus the following form.
func (p *parser) consumeDiscard() bool {
	p.pos += 2
	return p.discardNext()
}

func eofOffset(src []byte) int {
	if len(src) == 0 {
		return 0
	}
	return len(src) - 1
}
