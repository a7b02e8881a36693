package reader

import (
	"testing"

	"github.com/joshuapare/ednkit/edn"
	"github.com/joshuapare/ednkit/pkg/types"
	"github.com/stretchr/testify/require"
)

func metaGet(t *testing.T, v *edn.Value, name string) *edn.Value {
	t.Helper()
	m := v.Meta()
	require.NotNil(t, m)
	require.Equal(t, edn.KindMap, m.Kind())
	b := edn.NewBuilder(v.Arena())
	return m.MapGet(b.Keyword(nil, []byte(name)))
}

func TestMetaMap(t *testing.T) {
	v := mustParse(t, `^{:doc "x"} [1]`)
	require.Equal(t, edn.KindVector, v.Kind())
	doc := metaGet(t, v, "doc")
	require.NotNil(t, doc)
	s, err := doc.Str()
	require.NoError(t, err)
	require.Equal(t, "x", s)
}

func TestMetaKeywordShorthand(t *testing.T) {
	v := mustParse(t, "^:dynamic sym")
	require.Equal(t, edn.KindSymbol, v.Kind())
	flag := metaGet(t, v, "dynamic")
	require.Same(t, edn.True(), flag)
}

func TestMetaTagShorthand(t *testing.T) {
	v := mustParse(t, "^String sym")
	tag := metaGet(t, v, "tag")
	require.NotNil(t, tag)
	require.Equal(t, edn.KindSymbol, tag.Kind())
	require.Equal(t, "String", tag.Name())

	v = mustParse(t, `^"String" sym`)
	tag = metaGet(t, v, "tag")
	require.Equal(t, edn.KindString, tag.Kind())
}

func TestMetaVectorShorthand(t *testing.T) {
	v := mustParse(t, "^[long] sym")
	pt := metaGet(t, v, "param-tags")
	require.NotNil(t, pt)
	require.Equal(t, edn.KindVector, pt.Kind())
}

func TestMetaChained(t *testing.T) {
	// Both maps land on the form; the outer (newer) one wins per key.
	v := mustParse(t, "^{:a 1 :b 1} ^{:a 2} sym")
	require.Equal(t, int64(1), metaGet(t, v, "a").Int(),
		"the outer metadata attaches last and wins per key")
	require.Equal(t, int64(1), metaGet(t, v, "b").Int())
}

func TestMetaTargets(t *testing.T) {
	for _, in := range []string{"^:m [1]", "^:m (1)", "^:m #{1}", "^:m {:a 1}", "^:m sym", "^:m #t x"} {
		v := mustParse(t, in)
		require.NotNil(t, v.Meta(), "%q", in)
	}
	for _, in := range []string{"^:m 42", `^:m "s"`, "^:m :kw", "^:m nil", "^:m true"} {
		err := parseErr(t, in, types.ErrInvalidSyntax)
		require.Equal(t, "Invalid metadata target", err.Msg, "%q", in)
	}
}

func TestMetaBadMetadata(t *testing.T) {
	err := parseErr(t, "^42 sym", types.ErrInvalidSyntax)
	require.Equal(t, "Invalid metadata", err.Msg)
}

func TestMetaGated(t *testing.T) {
	// Without the extension '^' is an identifier byte.
	ext := types.DefaultExtensions &^ types.ExtMetadata
	v, err := Parse([]byte("^foo"), Config{Ext: ext})
	require.Nil(t, err)
	require.Equal(t, edn.KindSymbol, v.Kind())
	require.Equal(t, "^foo", v.Name())
}

func TestMetaNotInEquality(t *testing.T) {
	a := mustParse(t, "^:m [1 2]")
	b := mustParse(t, "[1 2]")
	require.True(t, edn.Equal(a, b))
	require.Equal(t, a.Hash(), b.Hash())
}

func TestNamespacedMap(t *testing.T) {
	v := mustParse(t, "#:person{:name 1 :age 2}")
	require.Equal(t, edn.KindMap, v.Kind())
	require.Equal(t, 2, v.Count())
	k := v.MapKeyAt(0)
	require.Equal(t, "person", k.Namespace())
	require.Equal(t, "name", k.Name())
}

func TestNamespacedMapPreservesQualifiedKeys(t *testing.T) {
	v := mustParse(t, `#:ns{:a 1 :other/b 2 "s" 3 4 5}`)
	require.Equal(t, 4, v.Count())
	require.Equal(t, "ns", v.MapKeyAt(0).Namespace())
	require.Equal(t, "other", v.MapKeyAt(1).Namespace())
	require.Equal(t, edn.KindString, v.MapKeyAt(2).Kind())
	require.Equal(t, edn.KindInt, v.MapKeyAt(3).Kind())
}

func TestNamespacedMapDuplicateAfterRewrite(t *testing.T) {
	// Rewriting bare keys can collide with an already-qualified key.
	parseErr(t, "#:ns{:a 1 :ns/a 2}", types.ErrDuplicateKey)
}

func TestNamespacedMapErrors(t *testing.T) {
	parseErr(t, "#:{:a 1}", types.ErrInvalidSyntax)
	parseErr(t, "#:ns [1]", types.ErrInvalidSyntax)
}

func TestNamespacedMapGated(t *testing.T) {
	ext := types.DefaultExtensions &^ types.ExtNamespacedMaps
	_, err := Parse([]byte("#:ns{:a 1}"), Config{Ext: ext})
	require.NotNil(t, err)
	require.Equal(t, types.ErrInvalidSyntax, err.Code)
}
