package reader

import (
	"fmt"
	"strings"
	"testing"

	"github.com/joshuapare/ednkit/edn"
	"github.com/joshuapare/ednkit/pkg/types"
	"github.com/stretchr/testify/require"
)

func kw(t *testing.T, v *edn.Value, name string) {
	t.Helper()
	require.Equal(t, edn.KindKeyword, v.Kind())
	require.Equal(t, name, v.Name())
}

func TestReadList(t *testing.T) {
	v := mustParse(t, "(1 2 3)")
	require.Equal(t, edn.KindList, v.Kind())
	require.Equal(t, 3, v.Count())
	require.Equal(t, int64(1), v.At(0).Int())
	require.Equal(t, int64(3), v.At(2).Int())

	require.Equal(t, 0, mustParse(t, "()").Count())
	require.Equal(t, 0, mustParse(t, "( , , )").Count())
}

func TestReadVector(t *testing.T) {
	v := mustParse(t, `[1 "two" :three]`)
	require.Equal(t, edn.KindVector, v.Kind())
	require.Equal(t, 3, v.Count())
	kw(t, v.At(2), "three")
}

func TestReadNested(t *testing.T) {
	v := mustParse(t, "[[1] [[2]] (3 [4])]")
	require.Equal(t, 3, v.Count())
	require.Equal(t, edn.KindList, v.At(2).Kind())
	require.Equal(t, int64(4), v.At(2).At(1).At(0).Int())
}

func TestReadSet(t *testing.T) {
	v := mustParse(t, "#{1 2 3}")
	require.Equal(t, edn.KindSet, v.Kind())
	require.Equal(t, 3, v.Count())

	b := edn.NewBuilder(v.Arena())
	require.True(t, v.SetContains(b.Int(2)))
	require.False(t, v.SetContains(b.Int(9)))
}

func TestReadMap(t *testing.T) {
	v := mustParse(t, "{:a 1, :b 2}")
	require.Equal(t, edn.KindMap, v.Kind())
	require.Equal(t, 2, v.Count())
	kw(t, v.MapKeyAt(0), "a")
	require.Equal(t, int64(1), v.MapValAt(0).Int())
	kw(t, v.MapKeyAt(1), "b")
	require.Equal(t, int64(2), v.MapValAt(1).Int())

	b := edn.NewBuilder(v.Arena())
	got := v.MapGet(b.Keyword(nil, []byte("b")))
	require.NotNil(t, got)
	require.Equal(t, int64(2), got.Int())
}

func TestMapOddForms(t *testing.T) {
	err := parseErr(t, "{:a 1 :b}", types.ErrInvalidMap)
	require.Equal(t, "Map requires even number of forms", err.Msg)
}

func TestDuplicateMapKey(t *testing.T) {
	parseErr(t, "{:a 1 :a 2}", types.ErrDuplicateKey)
	// Numeric equality across widths also collides.
	parseErr(t, "{1 :x 1N :y}", types.ErrDuplicateKey)
	// Escaped and plain spellings of one string collide.
	parseErr(t, `{"a\tb" 1 "a	b" 2}`, types.ErrDuplicateKey)
}

func TestDuplicateSetElement(t *testing.T) {
	parseErr(t, "#{1 2 1}", types.ErrDuplicateElement)
	parseErr(t, "#{[1 2] [1 2]}", types.ErrDuplicateElement)
	// A list and a vector with equal elements are one element.
	parseErr(t, "#{(1 2) [1 2]}", types.ErrDuplicateElement)
}

func TestLargeSetUniqueness(t *testing.T) {
	// Push past the sorted-strategy threshold to exercise the hash table.
	var sb strings.Builder
	sb.WriteString("#{")
	for i := 0; i < 1200; i++ {
		fmt.Fprintf(&sb, "%d ", i)
	}
	sb.WriteString("}")
	v := mustParse(t, sb.String())
	require.Equal(t, 1200, v.Count())

	sb.Reset()
	sb.WriteString("#{")
	for i := 0; i < 1200; i++ {
		fmt.Fprintf(&sb, "%d ", i)
	}
	sb.WriteString("600}")
	parseErr(t, sb.String(), types.ErrDuplicateElement)
}

func TestCollectionErrors(t *testing.T) {
	parseErr(t, "[1 2", types.ErrUnexpectedEOF)
	parseErr(t, "(1 2", types.ErrUnexpectedEOF)
	parseErr(t, "{:a 1", types.ErrUnexpectedEOF)
	parseErr(t, "#{1", types.ErrUnexpectedEOF)
	parseErr(t, "[1)", types.ErrUnmatchedDelimiter)
	parseErr(t, "(1]", types.ErrUnmatchedDelimiter)
	parseErr(t, "{:a 1)", types.ErrUnmatchedDelimiter)
}

func TestDiscardInCollections(t *testing.T) {
	v := mustParse(t, "[1 #_2 3]")
	require.Equal(t, 2, v.Count())
	require.Equal(t, int64(3), v.At(1).Int())

	v = mustParse(t, "(#_x)")
	require.Equal(t, 0, v.Count())

	// Stacked discards drop two following forms.
	v = mustParse(t, "[#_#_1 2 3]")
	require.Equal(t, 1, v.Count())
	require.Equal(t, int64(3), v.At(0).Int())

	v = mustParse(t, "{#_:gone #_1 :a 2}")
	require.Equal(t, 1, v.Count())
	kw(t, v.MapKeyAt(0), "a")
}
