package reader

import (
	"errors"
	"math"
	"testing"

	"github.com/joshuapare/ednkit/edn"
	"github.com/joshuapare/ednkit/pkg/types"
	"github.com/stretchr/testify/require"
)

func TestTaggedPassthrough(t *testing.T) {
	v := mustParse(t, `#inst "2024-01-01T00:00:00Z"`)
	require.Equal(t, edn.KindTagged, v.Kind())
	require.Equal(t, "inst", v.TagString())
	inner := v.Inner()
	require.Equal(t, edn.KindString, inner.Kind())
	s, err := inner.Str()
	require.NoError(t, err)
	require.Equal(t, "2024-01-01T00:00:00Z", s)
}

func TestTaggedNamespacedTag(t *testing.T) {
	v := mustParse(t, "#my.app/thing [1 2]")
	require.Equal(t, "my.app/thing", v.TagString())
}

func TestTaggedReaderInvocation(t *testing.T) {
	reg := edn.NewReaderRegistry()
	reg.Register("inst", func(b *edn.Builder, form *edn.Value) (*edn.Value, error) {
		return b.Int(1704067200), nil
	})
	v, err := Parse([]byte(`#inst "2024-01-01T00:00:00Z"`),
		Config{Ext: types.DefaultExtensions, Registry: reg})
	require.Nil(t, err)
	require.Equal(t, edn.KindInt, v.Kind())
	require.Equal(t, int64(1704067200), v.Int())
}

func TestTaggedReaderError(t *testing.T) {
	reg := edn.NewReaderRegistry()
	reg.Register("bad", func(b *edn.Builder, form *edn.Value) (*edn.Value, error) {
		return nil, errors.New("cannot interpret")
	})
	_, err := Parse([]byte("#bad 1"), Config{Ext: types.DefaultExtensions, Registry: reg})
	require.NotNil(t, err)
	require.Equal(t, types.ErrInvalidSyntax, err.Code)
	require.Equal(t, "cannot interpret", err.Msg)
}

func TestTaggedUnknownModes(t *testing.T) {
	// Unwrap discards the tag.
	v, err := Parse([]byte("#unknown 7"),
		Config{Ext: types.DefaultExtensions, TagMode: types.TagModeUnwrap})
	require.Nil(t, err)
	require.Equal(t, int64(7), v.Int())

	// Error mode fails.
	_, perr := Parse([]byte("#unknown 7"),
		Config{Ext: types.DefaultExtensions, TagMode: types.TagModeError})
	require.NotNil(t, perr)
	require.Equal(t, types.ErrUnknownTag, perr.Code)
}

func TestTaggedSyntaxErrors(t *testing.T) {
	err := parseErr(t, "# foo 1", types.ErrInvalidSyntax)
	require.Equal(t, "no whitespace allowed", err.Msg)

	for _, in := range []string{"#:x", "#nil 1", "#true 1", "#false 1"} {
		ext := types.DefaultExtensions &^ types.ExtNamespacedMaps
		_, perr := Parse([]byte(in), Config{Ext: ext})
		require.NotNil(t, perr, "%q", in)
		require.Equal(t, types.ErrInvalidSyntax, perr.Code, "%q", in)
	}
}

func TestDiscardTopLevel(t *testing.T) {
	v := mustParse(t, "#_42 :kept")
	kw(t, v, "kept")

	v = mustParse(t, "#_ {:a 1} [2]")
	require.Equal(t, edn.KindVector, v.Kind())
}

func TestDiscardSuppressesReaders(t *testing.T) {
	calls := 0
	reg := edn.NewReaderRegistry()
	reg.Register("T", func(b *edn.Builder, form *edn.Value) (*edn.Value, error) {
		calls++
		return form, nil
	})

	// A discarded tagged form must not invoke the registered reader.
	v, err := Parse([]byte("#_#T x y"), Config{Ext: types.DefaultExtensions, Registry: reg})
	require.Nil(t, err)
	require.Equal(t, "y", v.Name())
	require.Zero(t, calls)

	// Nested discards restore the flag: a tagged form after the discard
	// dispatches normally.
	v, err = Parse([]byte("#_#_1 2 #T z"), Config{Ext: types.DefaultExtensions, Registry: reg})
	require.Nil(t, err)
	require.Equal(t, "z", v.Name())
	require.Equal(t, 1, calls)
}

func TestSymbolicValues(t *testing.T) {
	v := mustParse(t, "##Inf")
	require.Equal(t, edn.KindFloat, v.Kind())
	require.True(t, math.IsInf(v.Float(), 1))

	v = mustParse(t, "##-Inf")
	require.True(t, math.IsInf(v.Float(), -1))

	v = mustParse(t, "##NaN")
	require.True(t, math.IsNaN(v.Float()))

	parseErr(t, "##Huge", types.ErrInvalidSyntax)
}
