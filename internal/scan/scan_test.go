package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// bothImpls runs fn once with the word-at-a-time scanners and once with
// the scalar fallback.
func bothImpls(t *testing.T, fn func(t *testing.T)) {
	t.Run("fast", func(t *testing.T) {
		UseScalar(false)
		defer UseScalar(false)
		fn(t)
	})
	t.Run("scalar", func(t *testing.T) {
		UseScalar(true)
		defer UseScalar(false)
		fn(t)
	})
}

func TestClassify(t *testing.T) {
	require.Equal(t, ClassString, Classify('"', false))
	require.Equal(t, ClassChar, Classify('\\', false))
	require.Equal(t, ClassListOpen, Classify('(', false))
	require.Equal(t, ClassVecOpen, Classify('[', false))
	require.Equal(t, ClassMapOpen, Classify('{', false))
	require.Equal(t, ClassHash, Classify('#', false))
	require.Equal(t, ClassSign, Classify('+', false))
	require.Equal(t, ClassSign, Classify('-', false))
	require.Equal(t, ClassDigit, Classify('7', false))
	require.Equal(t, ClassDelim, Classify(')', false))
	require.Equal(t, ClassDelim, Classify(']', false))
	require.Equal(t, ClassDelim, Classify('}', false))
	require.Equal(t, ClassIdent, Classify('a', false))
	require.Equal(t, ClassIdent, Classify(0x80, false))
	require.Equal(t, ClassIdent, Classify(0xFF, false))

	// '^' is metadata only under the metadata table.
	require.Equal(t, ClassIdent, Classify('^', false))
	require.Equal(t, ClassMeta, Classify('^', true))
}

func TestDelimTable(t *testing.T) {
	for b := 0x09; b <= 0x0D; b++ {
		require.True(t, IsDelim(byte(b)), "0x%02X", b)
	}
	for b := 0x1C; b <= 0x1F; b++ {
		require.True(t, IsDelim(byte(b)), "0x%02X", b)
	}
	for _, b := range []byte(` ,;()[]{}"`) {
		require.True(t, IsDelim(b), "%q", b)
	}
	for _, b := range []byte(`ab/:.*+-_#'0^\`) {
		require.False(t, IsDelim(b), "%q", b)
	}
	for b := 0x80; b < 0x100; b++ {
		require.False(t, IsDelim(byte(b)), "0x%02X", b)
	}
}

func TestSkipWhitespace(t *testing.T) {
	bothImpls(t, func(t *testing.T) {
		cases := []struct {
			in   string
			pos  int
			want int
		}{
			{"abc", 0, 0},
			{"   abc", 0, 3},
			{"\t\n\r ,x", 0, 5},
			{"", 0, 0},
			{"    ", 0, 4},
			{"; comment\nx", 0, 10},
			{"; comment", 0, 9},
			{";a\n;b\n  z", 0, 8},
			{strings.Repeat(" ", 40) + "x", 0, 40},
			{strings.Repeat(",", 17) + "; c\n" + "y", 0, 21},
			{"\x1c\x1d\x1e\x1fq", 0, 4},
			{"ab  cd", 2, 4},
		}
		for _, tc := range cases {
			require.Equal(t, tc.want, SkipWhitespace([]byte(tc.in), tc.pos), "%q", tc.in)
		}
	})
}

func TestFindQuote(t *testing.T) {
	bothImpls(t, func(t *testing.T) {
		cases := []struct {
			in      string
			wantEnd int
			wantBS  bool
			wantOK  bool
		}{
			{`abc"`, 3, false, true},
			{`"`, 0, false, true},
			{`a\"b"`, 4, true, true},
			{`a\\"`, 3, true, true},
			{`no quote here`, 13, false, false},
			{`trailing\`, 10, true, false},
			{strings.Repeat("x", 30) + `"`, 30, false, true},
			{strings.Repeat("x", 30) + `\"` + `"`, 32, true, true},
		}
		for _, tc := range cases {
			end, bs, ok := FindQuote([]byte(tc.in), 0)
			require.Equal(t, tc.wantOK, ok, "%q", tc.in)
			require.Equal(t, tc.wantBS, bs, "%q", tc.in)
			if ok {
				require.Equal(t, tc.wantEnd, end, "%q", tc.in)
			}
		}
	})
}

func TestScanIdentifier(t *testing.T) {
	bothImpls(t, func(t *testing.T) {
		cases := []struct {
			in        string
			wantEnd   int
			wantSlash int
			wantAdj   bool
		}{
			{"foo", 3, -1, false},
			{"foo bar", 3, -1, false},
			{"foo/bar)", 7, 3, false},
			{"a/b/c", 5, 1, false},
			{"/", 1, 0, false},
			{"::x", 3, -1, true},
			{":a:b", 4, -1, false},
			{"x,", 1, -1, false},
			{"nil]", 3, -1, false},
			{"latin-\xC3\xA9{", 8, -1, false},
			{strings.Repeat("a", 40) + "/tail ", 45, 40, false},
			{"a\x01b ", 3, -1, false}, // low control bytes stay in the token
		}
		for _, tc := range cases {
			id := ScanIdentifier([]byte(tc.in), 0)
			require.Equal(t, tc.wantEnd, id.End, "%q end", tc.in)
			require.Equal(t, tc.wantSlash, id.FirstSlash, "%q slash", tc.in)
			require.Equal(t, tc.wantAdj, id.AdjColons, "%q colons", tc.in)
		}
	})
}

func TestScanDigits(t *testing.T) {
	bothImpls(t, func(t *testing.T) {
		cases := []struct {
			in   string
			pos  int
			want int
		}{
			{"123", 0, 3},
			{"123abc", 0, 3},
			{"abc", 0, 0},
			{"", 0, 0},
			{"12345678901234567890x", 0, 20},
			{"9" + strings.Repeat("0", 31) + ".5", 0, 32},
			{"ab123", 2, 5},
		}
		for _, tc := range cases {
			require.Equal(t, tc.want, ScanDigits([]byte(tc.in), tc.pos), "%q", tc.in)
		}
	})
}

func TestImplementationsAgree(t *testing.T) {
	inputs := []string{
		"", " ", ";;;", "word", `"quoted"`, `esc\"aped"`,
		strings.Repeat("digit123", 9), strings.Repeat(" ,\t", 11) + "x",
		"ns/name more", "a::b", strings.Repeat("\x00", 9) + " ",
		"; only a comment with no newline",
	}
	for _, in := range inputs {
		src := []byte(in)

		UseScalar(true)
		ws := SkipWhitespace(src, 0)
		qe, qb, qok := FindQuote(src, 0)
		id := ScanIdentifier(src, 0)
		dg := ScanDigits(src, 0)

		UseScalar(false)
		require.Equal(t, ws, SkipWhitespace(src, 0), "%q ws", in)
		e2, b2, ok2 := FindQuote(src, 0)
		require.Equal(t, qok, ok2, "%q quote ok", in)
		require.Equal(t, qb, b2, "%q quote bs", in)
		if qok {
			require.Equal(t, qe, e2, "%q quote end", in)
		}
		require.Equal(t, id, ScanIdentifier(src, 0), "%q ident", in)
		require.Equal(t, dg, ScanDigits(src, 0), "%q digits", in)
	}
}
