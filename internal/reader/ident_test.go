package reader

import (
	"testing"

	"github.com/joshuapare/ednkit/edn"
	"github.com/joshuapare/ednkit/pkg/types"
	"github.com/stretchr/testify/require"
)

func TestReadSymbols(t *testing.T) {
	cases := []struct {
		in       string
		ns, name string
	}{
		{"foo", "", "foo"},
		{"foo.bar/baz", "foo.bar", "baz"},
		{"a/b/c", "a", "b/c"},
		{"/", "", "/"},
		{"+", "", "+"},
		{"-foo", "", "-foo"},
		{"*special*", "", "*special*"},
		{"with-dash", "", "with-dash"},
		{"q?", "", "q?"},
		{"café", "", "café"},
	}
	for _, tc := range cases {
		v := mustParse(t, tc.in)
		require.Equal(t, edn.KindSymbol, v.Kind(), "%q", tc.in)
		require.Equal(t, tc.ns, v.Namespace(), "%q", tc.in)
		require.Equal(t, tc.name, v.Name(), "%q", tc.in)
	}
}

func TestReadKeywords(t *testing.T) {
	cases := []struct {
		in       string
		ns, name string
	}{
		{":a", "", "a"},
		{":foo.bar/baz", "foo.bar", "baz"},
		{":kept", "", "kept"},
		{":-", "", "-"},
	}
	for _, tc := range cases {
		v := mustParse(t, tc.in)
		require.Equal(t, edn.KindKeyword, v.Kind(), "%q", tc.in)
		require.Equal(t, tc.ns, v.Namespace(), "%q", tc.in)
		require.Equal(t, tc.name, v.Name(), "%q", tc.in)
	}
}

func TestIdentifierErrors(t *testing.T) {
	cases := []struct {
		in  string
		msg string
	}{
		{":", "Empty keyword name"},
		{"::x", "Keyword name cannot start with ':'"},
		{":/x", "Empty namespace in keyword"},
		{":ns/", "Empty keyword name"},
		{":ns/:x", "Keyword name cannot start with ':'"},
		{"a::b", "Invalid identifier"},
		{"x/", "Invalid identifier"},
	}
	for _, tc := range cases {
		err := parseErr(t, tc.in, types.ErrInvalidSyntax)
		require.Equal(t, tc.msg, err.Msg, "%q", tc.in)
	}
}

func TestNilTrueFalseAreSingletons(t *testing.T) {
	require.Same(t, edn.Nil(), mustParse(t, "nil"))
	require.Same(t, edn.True(), mustParse(t, "true"))
	require.Same(t, edn.False(), mustParse(t, "false"))

	// Prefixed lookalikes stay symbols.
	require.Equal(t, edn.KindSymbol, mustParse(t, "nils").Kind())
	require.Equal(t, edn.KindSymbol, mustParse(t, "true?").Kind())
	// Namespaced nil is a symbol, not the singleton.
	v := mustParse(t, "my/nil")
	require.Equal(t, edn.KindSymbol, v.Kind())
	require.Equal(t, "nil", v.Name())
}

func TestReadCharacters(t *testing.T) {
	cases := []struct {
		in   string
		want rune
	}{
		{`\a`, 'a'},
		{`\A`, 'A'},
		{`\1`, '1'},
		{`\newline`, '\n'},
		{`\return`, '\r'},
		{`\space`, ' '},
		{`\tab`, '\t'},
		{`\formfeed`, '\f'},
		{`\backspace`, '\b'},
		{`\u0041`, 'A'},
		{`\u00e9`, 'é'},
		{`\u2603`, '☃'},
		{`\é`, 'é'},
		{`\(`, '('},
		{`\"`, '"'},
		{`\\`, '\\'},
	}
	for _, tc := range cases {
		v := mustParse(t, tc.in)
		require.Equal(t, edn.KindChar, v.Kind(), "%q", tc.in)
		require.Equal(t, tc.want, v.Char(), "%q", tc.in)
	}
}

func TestCharacterErrors(t *testing.T) {
	parseErr(t, `\`, types.ErrInvalidCharacter)
	parseErr(t, `\ `, types.ErrInvalidCharacter)
	parseErr(t, `\notaname`, types.ErrInvalidCharacter)
	parseErr(t, `\u12`, types.ErrInvalidCharacter)
	parseErr(t, `\uZZZZ`, types.ErrInvalidCharacter)
	parseErr(t, `\ud800`, types.ErrInvalidCharacter)
	parseErr(t, `\uDFFF`, types.ErrInvalidCharacter)
}

func TestCharInVector(t *testing.T) {
	v := mustParse(t, `[\a \b]`)
	require.Equal(t, 2, v.Count())
	require.Equal(t, 'a', v.At(0).Char())
	require.Equal(t, 'b', v.At(1).Char())
}
