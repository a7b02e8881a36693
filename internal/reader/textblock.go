package reader

import (
	"github.com/joshuapare/ednkit/edn"
	"github.com/joshuapare/ednkit/pkg/types"
)

// tbLine is one logical line of a text block. start..end spans the bytes
// after the opening newline; lead counts the leading spaces and tabs.
type tbLine struct {
	start, end int
	lead       int
	terminal   bool
}

// readTextBlock scans a '"""' block at the cursor. The body is
// re-indented against the minimum leading-whitespace prefix of the
// content-bearing and terminating lines, trailing spaces and tabs are
// trimmed per line, and the single escape \""" unquotes to three quotes.
// The materialised body lives in the arena.
func (p *parser) readTextBlock() *edn.Value {
	open := p.pos
	p.pos += 3
	if p.src[p.pos] == '\r' {
		p.pos++
	}
	p.pos++ // opening newline

	lines, ok := p.scanTextBlockLines(open)
	if !ok {
		return nil
	}

	lwp := textBlockLWP(lines)
	body, ok := p.renderTextBlock(lines, lwp)
	if !ok {
		return nil
	}
	raw := p.src[open:p.pos]
	return p.built(p.b.DecodedString(raw, body))
}

// scanTextBlockLines splits the body into logical lines, stopping at the
// closing '"""'. The cursor ends after the closer.
func (p *parser) scanTextBlockLines(open int) ([]tbLine, bool) {
	var lines []tbLine
	for {
		ln := tbLine{start: p.pos}
		for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
			p.pos++
		}
		ln.lead = p.pos - ln.start

		for {
			if p.pos >= len(p.src) {
				p.failAt(types.ErrInvalidString, "Unterminated text block", open)
				return nil, false
			}
			c := p.src[p.pos]
			if c == '\\' && p.pos+3 < len(p.src) &&
				p.src[p.pos+1] == '"' && p.src[p.pos+2] == '"' && p.src[p.pos+3] == '"' {
				p.pos += 4
				continue
			}
			if c == '"' && p.pos+2 < len(p.src) &&
				p.src[p.pos+1] == '"' && p.src[p.pos+2] == '"' {
				ln.end = p.pos
				ln.terminal = true
				p.pos += 3
				return append(lines, ln), true
			}
			if c == '\n' {
				ln.end = p.pos
				if ln.end > ln.start && p.src[ln.end-1] == '\r' {
					ln.end--
				}
				p.pos++
				break
			}
			p.pos++
		}
		lines = append(lines, ln)
	}
}

// textBlockLWP computes the minimum leading-whitespace prefix across the
// content-bearing lines and the terminating line. Blank interior lines do
// not contribute.
func textBlockLWP(lines []tbLine) int {
	lwp := -1
	for _, ln := range lines {
		blank := ln.start+ln.lead >= ln.end
		if blank && !ln.terminal {
			continue
		}
		if lwp < 0 || ln.lead < lwp {
			lwp = ln.lead
		}
	}
	if lwp < 0 {
		return 0
	}
	return lwp
}

// renderTextBlock materialises the body: per line, strip the LWP from the
// leading run, keep any remaining lead, trim trailing spaces and tabs,
// and unescape \""" sequences. Every line emits a newline except a
// terminating line whose closer follows content.
func (p *parser) renderTextBlock(lines []tbLine, lwp int) ([]byte, bool) {
	size := 0
	for _, ln := range lines {
		size += ln.end - ln.start + 1
	}
	out := p.b.Arena().Alloc(size)
	if out == nil && size > 0 {
		p.failOOM()
		return nil, false
	}
	n := 0
	for _, ln := range lines {
		strip := lwp
		if strip > ln.lead {
			strip = ln.lead
		}
		seg := p.src[ln.start+strip : ln.end]
		// Trailing spaces and tabs go, per line.
		for len(seg) > 0 && (seg[len(seg)-1] == ' ' || seg[len(seg)-1] == '\t') {
			seg = seg[:len(seg)-1]
		}
		for i := 0; i < len(seg); i++ {
			if seg[i] == '\\' && i+3 < len(seg) &&
				seg[i+1] == '"' && seg[i+2] == '"' && seg[i+3] == '"' {
				out[n] = '"'
				out[n+1] = '"'
				out[n+2] = '"'
				n += 3
				i += 3
				continue
			}
			out[n] = seg[i]
			n++
		}
		if ln.terminal {
			// A closer on its own line leaves the previous newline as the
			// body's last byte; a closer after content emits no newline.
			break
		}
		out[n] = '\n'
		n++
	}
	return out[:n], true
}
