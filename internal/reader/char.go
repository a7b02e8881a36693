package reader

import (
	"unicode/utf8"

	"github.com/joshuapare/ednkit/edn"
	"github.com/joshuapare/ednkit/internal/scan"
	"github.com/joshuapare/ednkit/pkg/types"
)

// readCharacter decodes a character literal at the backslash: a named
// form, a \uXXXX escape, or any single Unicode scalar.
func (p *parser) readCharacter() *edn.Value {
	start := p.pos
	p.pos++ // backslash
	if p.pos >= len(p.src) {
		p.failAt(types.ErrInvalidCharacter, "Empty character literal", start)
		return nil
	}

	if scan.IsWhitespace(p.src[p.pos]) {
		p.failAt(types.ErrInvalidCharacter, "Empty character literal", start)
		return nil
	}
	// The first byte is consumed unconditionally, so '\(' and '\"' read
	// as the bracket and quote characters; only later bytes stop at a
	// delimiter.
	end := p.pos + 1
	for end < len(p.src) && !scan.IsDelim(p.src[end]) {
		end++
	}
	tok := p.src[p.pos:end]
	p.pos = end

	// Single byte, or a single multibyte scalar.
	if len(tok) == 1 {
		return p.built(p.b.Char(rune(tok[0])))
	}
	if tok[0] >= 0x80 {
		r, size := utf8.DecodeRune(tok)
		if r == utf8.RuneError && size <= 1 {
			p.failAt(types.ErrInvalidCharacter, "Invalid character literal", start)
			return nil
		}
		if size == len(tok) {
			return p.built(p.b.Char(r))
		}
		p.failAt(types.ErrInvalidCharacter, "Invalid character literal", start)
		return nil
	}

	if cp, ok := namedChar(tok); ok {
		return p.built(p.b.Char(cp))
	}

	if tok[0] == 'u' && len(tok) == 5 {
		cp := 0
		for _, c := range tok[1:] {
			cp <<= 4
			switch {
			case c >= '0' && c <= '9':
				cp |= int(c - '0')
			case c >= 'a' && c <= 'f':
				cp |= int(c-'a') + 10
			case c >= 'A' && c <= 'F':
				cp |= int(c-'A') + 10
			default:
				p.failAt(types.ErrInvalidCharacter, "Invalid character literal", start)
				return nil
			}
		}
		if cp >= 0xD800 && cp <= 0xDFFF {
			p.failAt(types.ErrInvalidCharacter, "Surrogate character literal", start)
			return nil
		}
		return p.built(p.b.Char(rune(cp)))
	}

	p.failAt(types.ErrInvalidCharacter, "Invalid character literal", start)
	return nil
}

// namedChar resolves the named character forms.
func namedChar(tok []byte) (rune, bool) {
	switch string(tok) {
	case "newline":
		return '\n', true
	case "return":
		return '\r', true
	case "space":
		return ' ', true
	case "tab":
		return '\t', true
	case "formfeed":
		return '\f', true
	case "backspace":
		return '\b', true
	}
	return 0, false
}
