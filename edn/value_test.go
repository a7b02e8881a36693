package edn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSingletons(t *testing.T) {
	require.True(t, Nil().IsNil())
	require.Nil(t, Nil().Arena())
	require.Same(t, True(), Bool(true))
	require.Same(t, False(), Bool(false))
	require.True(t, True().Bool())
	require.False(t, False().Bool())

	// Precomputed hashes keep the singletons read-only.
	require.NotZero(t, Nil().Hash())
	require.NotEqual(t, True().Hash(), False().Hash())
}

func TestBuilderOwnership(t *testing.T) {
	b := newBuilder()
	v := b.Int(9)
	require.Same(t, b.Arena(), v.Arena())

	// Slab growth keeps handing out distinct nodes.
	seen := map[*Value]bool{}
	for i := 0; i < slabFirst+slabSecond+10; i++ {
		n := b.Int(int64(i))
		require.False(t, seen[n])
		seen[n] = true
	}
}

func TestStrCaching(t *testing.T) {
	b := newBuilder()
	v := b.String([]byte(`x\ty`), true)

	s1, err := v.Str()
	require.NoError(t, err)
	require.Equal(t, "x\ty", s1)

	s2, err := v.Str()
	require.NoError(t, err)
	require.Equal(t, s1, s2)
}

func TestStrBadEscapeSurfaces(t *testing.T) {
	b := newBuilder()
	v := b.String([]byte(`x\q`), true)
	_, err := v.Str()
	require.ErrorIs(t, err, ErrBadEscape)
}

func TestCleanDigits(t *testing.T) {
	b := newBuilder()

	plain := b.BigInt([]byte("1234"), 10, false)
	require.Equal(t, []byte("1234"), plain.CleanDigits())

	sep := b.BigInt([]byte("1_2_3"), 10, false)
	require.Equal(t, []byte("123"), sep.CleanDigits())
	// Cached: same backing run on the second call.
	first := sep.CleanDigits()
	require.Same(t, &first[0], &sep.CleanDigits()[0])
}

func TestBigIntValueRadix(t *testing.T) {
	b := newBuilder()
	v := b.BigInt([]byte("ff"), 16, true)
	z, err := v.BigIntValue()
	require.NoError(t, err)
	require.Equal(t, int64(-255), z.Int64())

	bad := b.BigInt([]byte("zz"), 10, false)
	_, err = bad.BigIntValue()
	require.ErrorIs(t, err, ErrBadDigits)
}

func TestKindPredicates(t *testing.T) {
	require.True(t, KindInt.IsNumeric())
	require.True(t, KindBigRatio.IsNumeric())
	require.False(t, KindString.IsNumeric())
	require.True(t, KindMap.IsCollection())
	require.False(t, KindTagged.IsCollection())
	require.Equal(t, "big-dec", KindBigDec.String())
}

func TestWithMeta(t *testing.T) {
	b := newBuilder()
	v := b.Vector([]*Value{b.Int(1)})
	m := b.Map([]*Value{b.Keyword(nil, []byte("k"))}, []*Value{True()})
	require.Nil(t, v.Meta())
	b.WithMeta(v, m)
	require.Same(t, m, v.Meta())
}
