package reader

import (
	"bytes"

	"github.com/joshuapare/ednkit/edn"
	"github.com/joshuapare/ednkit/internal/scan"
	"github.com/joshuapare/ednkit/pkg/types"
)

// readIdentifier scans a symbol or keyword token at the cursor. The bare
// tokens nil, true, and false resolve to the shared singletons; a lone
// '/' is the division symbol.
func (p *parser) readIdentifier() *edn.Value {
	start := p.pos
	id := scan.ScanIdentifier(p.src, p.pos)
	tok := p.src[start:id.End]
	p.pos = id.End

	if len(tok) == 0 {
		return p.fail(types.ErrInvalidSyntax, "Invalid identifier")
	}
	// A token opening with '::' is left to readKeyword, which reports the
	// misplaced colon by name; any other adjacent pair is invalid here.
	if id.AdjColons && !bytes.HasPrefix(tok, []byte("::")) {
		return p.failIdentAt(start, "Invalid identifier")
	}

	if tok[0] == ':' {
		return p.readKeyword(start, tok, id.FirstSlash)
	}

	// A single '/' is the division symbol.
	if len(tok) == 1 && tok[0] == '/' {
		return p.built(p.b.Symbol(nil, tok))
	}
	if id.FirstSlash >= 0 {
		nsEnd := id.FirstSlash - start
		if nsEnd == 0 || nsEnd == len(tok)-1 {
			return p.failIdentAt(start, "Invalid identifier")
		}
		return p.built(p.b.Symbol(tok[:nsEnd], tok[nsEnd+1:]))
	}

	switch {
	case bytes.Equal(tok, symNil):
		return edn.Nil()
	case bytes.Equal(tok, symTrue):
		return edn.True()
	case bytes.Equal(tok, symFalse):
		return edn.False()
	}
	return p.built(p.b.Symbol(nil, tok))
}

var (
	symNil   = []byte("nil")
	symTrue  = []byte("true")
	symFalse = []byte("false")
)

// readKeyword splits a ':'-prefixed token into namespace and name.
func (p *parser) readKeyword(start int, tok []byte, firstSlash int) *edn.Value {
	body := tok[1:]
	if len(body) == 0 {
		return p.failIdentAt(start, "Empty keyword name")
	}
	if firstSlash < 0 {
		if body[0] == ':' {
			return p.failIdentAt(start, "Keyword name cannot start with ':'")
		}
		return p.built(p.b.Keyword(nil, body))
	}

	nsEnd := firstSlash - start - 1 // relative to body
	if nsEnd == 0 {
		return p.failIdentAt(start, "Empty namespace in keyword")
	}
	if nsEnd == len(body)-1 {
		return p.failIdentAt(start, "Empty keyword name")
	}
	ns, name := body[:nsEnd], body[nsEnd+1:]
	if ns[0] == ':' {
		return p.failIdentAt(start, "Keyword namespace cannot start with ':'")
	}
	if name[0] == ':' {
		return p.failIdentAt(start, "Keyword name cannot start with ':'")
	}
	return p.built(p.b.Keyword(ns, name))
}

// failIdentAt anchors an identifier error at the token start.
func (p *parser) failIdentAt(start int, msg string) *edn.Value {
	p.failAt(types.ErrInvalidSyntax, msg, start)
	return nil
}
