package reader

import (
	"github.com/joshuapare/ednkit/edn"
	"github.com/joshuapare/ednkit/pkg/types"
)

// readMeta parses '^meta form', folds the metadata shorthands into a map,
// and attaches it to the following form. Chained metadata concatenates,
// newer entries at higher precedence.
func (p *parser) readMeta() *edn.Value {
	start := p.pos
	p.pos++ // '^'
	if !p.enter() {
		return nil
	}
	defer p.leave()

	meta := p.readForm()
	if meta == nil {
		return nil
	}
	metaMap := p.foldMeta(meta, start)
	if metaMap == nil {
		return nil
	}

	form := p.readForm()
	if form == nil {
		return nil
	}
	switch form.Kind() {
	case edn.KindList, edn.KindVector, edn.KindSet, edn.KindMap,
		edn.KindTagged, edn.KindSymbol:
	default:
		p.failAt(types.ErrInvalidSyntax, "Invalid metadata target", start)
		return nil
	}

	if existing := form.Meta(); existing != nil {
		metaMap = p.mergeMeta(existing, metaMap)
		if metaMap == nil {
			return nil
		}
	}
	return p.b.WithMeta(form, metaMap)
}

// foldMeta normalises the metadata shorthands: a keyword k becomes
// {k true}, a string or symbol s becomes {:tag s}, a vector v becomes
// {:param-tags v}; a map passes through.
func (p *parser) foldMeta(meta *edn.Value, start int) *edn.Value {
	switch meta.Kind() {
	case edn.KindMap:
		return meta
	case edn.KindKeyword:
		return p.built(p.b.Map(
			[]*edn.Value{meta},
			[]*edn.Value{edn.True()},
		))
	case edn.KindString, edn.KindSymbol:
		return p.metaEntry("tag", meta)
	case edn.KindVector:
		return p.metaEntry("param-tags", meta)
	default:
		p.failAt(types.ErrInvalidSyntax, "Invalid metadata", start)
		return nil
	}
}

// metaEntry builds the single-entry map {:name v}.
func (p *parser) metaEntry(name string, v *edn.Value) *edn.Value {
	kw := p.b.Arena().CopyString(name)
	if kw == nil {
		return p.failOOM()
	}
	key := p.b.Keyword(nil, kw)
	if key == nil {
		return p.failOOM()
	}
	return p.built(p.b.Map([]*edn.Value{key}, []*edn.Value{v}))
}

// mergeMeta concatenates newer entries after the existing ones; a newer
// entry for an existing key replaces its value in place.
func (p *parser) mergeMeta(existing, newer *edn.Value) *edn.Value {
	keys := make([]*edn.Value, 0, existing.Count()+newer.Count())
	vals := make([]*edn.Value, 0, existing.Count()+newer.Count())
	for i := 0; i < existing.Count(); i++ {
		keys = append(keys, existing.MapKeyAt(i))
		vals = append(vals, existing.MapValAt(i))
	}
	for i := 0; i < newer.Count(); i++ {
		k, v := newer.MapKeyAt(i), newer.MapValAt(i)
		replaced := false
		for j := range keys {
			if edn.Equal(keys[j], k) {
				vals[j] = v
				replaced = true
				break
			}
		}
		if !replaced {
			keys = append(keys, k)
			vals = append(vals, v)
		}
	}
	return p.built(p.b.Map(keys, vals))
}
