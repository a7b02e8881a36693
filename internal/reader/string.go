package reader

import (
	"github.com/joshuapare/ednkit/edn"
	"github.com/joshuapare/ednkit/internal/scan"
	"github.com/joshuapare/ednkit/pkg/types"
)

// readString scans a string literal at the opening quote. The body stays
// a zero-copy slice; escape decoding runs lazily when an accessor demands
// the bytes. A '"""' opener followed by a newline delegates to the
// text-block reader when that extension is on.
func (p *parser) readString() *edn.Value {
	if p.cfg.Ext.Has(types.ExtTextBlocks) && p.textBlockAhead() {
		return p.readTextBlock()
	}
	p.pos++ // opening quote
	start := p.pos
	end, hasBackslash, ok := scan.FindQuote(p.src, p.pos)
	if !ok {
		p.failAt(types.ErrInvalidString, "Unterminated string", start-1)
		return nil
	}
	body := p.src[start:end]
	p.pos = end + 1
	return p.built(p.b.String(body, hasBackslash))
}

// textBlockAhead reports a '"""' opener followed by a newline (or CRLF).
func (p *parser) textBlockAhead() bool {
	if p.pos+3 >= len(p.src) {
		return false
	}
	if p.src[p.pos+1] != '"' || p.src[p.pos+2] != '"' {
		return false
	}
	c := p.src[p.pos+3]
	if c == '\n' {
		return true
	}
	return c == '\r' && p.pos+4 < len(p.src) && p.src[p.pos+4] == '\n'
}
