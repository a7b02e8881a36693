package reader

import (
	"github.com/joshuapare/ednkit/edn"
	"github.com/joshuapare/ednkit/internal/scan"
	"github.com/joshuapare/ednkit/pkg/types"
)

// readNamespacedMap parses '#:ns{...}': the inner map is read normally
// and every bare keyword key is rewritten to carry ns. Keys that already
// have a namespace, and non-keyword keys, pass through untouched.
func (p *parser) readNamespacedMap() *edn.Value {
	start := p.pos
	p.pos += 2 // '#:'
	nsStart := p.pos
	id := scan.ScanIdentifier(p.src, p.pos)
	ns := p.src[nsStart:id.End]
	if len(ns) == 0 || id.FirstSlash >= 0 || id.AdjColons || ns[0] == ':' {
		p.failAt(types.ErrInvalidSyntax, "Invalid map namespace", start)
		return nil
	}
	p.pos = id.End
	p.pos = scan.SkipWhitespace(p.src, p.pos)
	if p.pos >= len(p.src) {
		return p.failEOF()
	}
	if p.src[p.pos] != '{' {
		p.failAt(types.ErrInvalidSyntax, "Namespaced map requires a map", start)
		return nil
	}
	return p.readMap(ns)
}

// applyMapNamespace rewrites bare keyword keys in place before the map
// node is built.
func (p *parser) applyMapNamespace(keys []*edn.Value, ns []byte) bool {
	for i, k := range keys {
		if k.Kind() != edn.KindKeyword || k.HasNamespace() {
			continue
		}
		nk := p.b.Keyword(ns, k.NameBytes())
		if nk == nil {
			p.failOOM()
			return false
		}
		keys[i] = nk
	}
	return true
}
