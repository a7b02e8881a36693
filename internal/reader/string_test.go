package reader

import (
	"testing"

	"github.com/joshuapare/ednkit/edn"
	"github.com/joshuapare/ednkit/pkg/types"
	"github.com/stretchr/testify/require"
)

func str(t *testing.T, v *edn.Value) string {
	t.Helper()
	require.Equal(t, edn.KindString, v.Kind())
	s, err := v.Str()
	require.NoError(t, err)
	return s
}

func TestReadPlainString(t *testing.T) {
	v := mustParse(t, `"hello"`)
	require.Equal(t, "hello", str(t, v))
	require.False(t, v.HasEscapes())
	require.Equal(t, []byte("hello"), v.RawString())

	require.Equal(t, "", str(t, mustParse(t, `""`)))
	require.Equal(t, "a b ; not a comment", str(t, mustParse(t, `"a b ; not a comment"`)))
}

func TestReadEscapedString(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`"a\nb"`, "a\nb"},
		{`"a\tb"`, "a\tb"},
		{`"a\rb"`, "a\rb"},
		{`"a\fb"`, "a\fb"},
		{`"a\bb"`, "a\bb"},
		{`"say \"hi\""`, `say "hi"`},
		{`"back\\slash"`, `back\slash`},
		{`"\u0041"`, "A"},
		{`"\u00e9"`, "é"},
		{`"\u2603"`, "☃"},
	}
	for _, tc := range cases {
		v := mustParse(t, tc.in)
		require.True(t, v.HasEscapes(), "%q", tc.in)
		require.Equal(t, tc.want, str(t, v), "%q", tc.in)
	}
}

func TestEscapeDecodingIsLazyAndCached(t *testing.T) {
	v := mustParse(t, `"a\nb"`)
	s1, err := v.Str()
	require.NoError(t, err)
	s2, err := v.Str()
	require.NoError(t, err)
	require.Equal(t, s1, s2)

	// Decoded output is never longer than the raw slice.
	require.LessOrEqual(t, len(s1), len(v.RawString()))
}

func TestBadEscapes(t *testing.T) {
	for _, in := range []string{`"\q"`, `"\u12"`, `"\u12G4"`, `"\ud800"`, `"\uDFFF"`} {
		v := mustParse(t, in)
		_, err := v.Str()
		require.Error(t, err, "%q", in)
	}
}

func TestUnterminatedString(t *testing.T) {
	parseErr(t, `"abc`, types.ErrInvalidString)
	parseErr(t, `"abc\"`, types.ErrInvalidString)
}

func TestTextBlockBasic(t *testing.T) {
	src := "\"\"\"\n   SELECT *\n     FROM t\n   \"\"\""
	v := mustParse(t, src)
	require.Equal(t, "SELECT *\n  FROM t\n", str(t, v))
}

func TestTextBlockCloserAfterContent(t *testing.T) {
	// The closer on a content line suppresses the trailing newline.
	src := "\"\"\"\n  one\n  two\"\"\""
	require.Equal(t, "one\ntwo", str(t, mustParse(t, src)))
}

func TestTextBlockBlankLines(t *testing.T) {
	// Blank interior lines do not contribute to the prefix and come out
	// empty.
	src := "\"\"\"\n    a\n\n    b\n    \"\"\""
	require.Equal(t, "a\n\nb\n", str(t, mustParse(t, src)))
}

func TestTextBlockTrailingTrim(t *testing.T) {
	src := "\"\"\"\n  a   \n  b\t\n  \"\"\""
	require.Equal(t, "a\nb\n", str(t, mustParse(t, src)))
}

func TestTextBlockEscape(t *testing.T) {
	src := "\"\"\"\n  quoted \\\"\"\" here\n  \"\"\""
	require.Equal(t, "quoted \"\"\" here\n", str(t, mustParse(t, src)))
}

func TestTextBlockCRLF(t *testing.T) {
	src := "\"\"\"\r\n  a\r\n  \"\"\""
	require.Equal(t, "a\n", str(t, mustParse(t, src)))
}

func TestTextBlockUnterminated(t *testing.T) {
	parseErr(t, "\"\"\"\n  never closed", types.ErrInvalidString)
}

func TestTextBlockGated(t *testing.T) {
	// With the extension off, '"""\n...' reads as an empty string
	// followed by another form.
	ext := types.DefaultExtensions &^ types.ExtTextBlocks
	v, err := Parse([]byte("\"\"\"\n x \"\"\""), Config{Ext: ext})
	require.Nil(t, err)
	require.Equal(t, edn.KindString, v.Kind())
	s, serr := v.Str()
	require.NoError(t, serr)
	require.Equal(t, "", s)
}

func TestTripleQuoteWithoutNewlineIsPlainString(t *testing.T) {
	// '"""x"""' is not a text block opener; it reads as the empty string.
	v := mustParse(t, `"""x"""`)
	require.Equal(t, "", str(t, v))
}
