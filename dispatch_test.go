package thicket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordNull(t *testing.T) {
	v := mustParse(t, "null\n")
	assert.True(t, v.IsNull())
}

func TestKeywordTrueFalse(t *testing.T) {
	v := mustParse(t, "true\n")
	b, ok := v.Bool()
	require.True(t, ok)
	assert.True(t, b)

	v = mustParse(t, "false\n")
	b, ok = v.Bool()
	require.True(t, ok)
	assert.False(t, b)
}

func TestKeywordLikeStringIsLiteral(t *testing.T) {
	// "nullable" starts with "null" but is not the null keyword: the
	// keyword match is an exact substring match, so parsing falls through
	// to check_value_end on the would-be keyword boundary and rejects the
	// trailing letters as a bad character rather than silently treating it
	// as null.
	_, err := ParseString("nullable\n")
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Description, "Bad character encountered")
}

func TestUnknownConversionSpecifierFallsBackToLiteral(t *testing.T) {
	v := mustParse(t, ":bogus: hello\n")
	s, ok := v.String_()
	require.True(t, ok)
	assert.Equal(t, ":bogus: hello", s)
}

func TestCustomConversionSpecifier(t *testing.T) {
	upper := func(p *Parser) (Value, error) {
		lines, err := p.readBlock()
		if err != nil {
			return Value{}, err
		}
		return String(lines[0]), nil
	}
	p := NewParser(strings.NewReader(":shout: hello\n"), WithCustomParser("shout", upper))
	v, err := p.Parse()
	require.NoError(t, err)
	s, ok := v.String_()
	require.True(t, ok)
	assert.Equal(t, " hello", s)
}

func TestNotImplementedStubs(t *testing.T) {
	for _, name := range []string{"isodate", "timestamp", "json"} {
		_, err := ParseString(":" + name + ": 2024-01-01\n")
		require.Error(t, err)
		assert.True(t, ErrNotImplemented(err))
	}
}

func TestNonStringScalarBecomesMapKey(t *testing.T) {
	// "true" is parsed as the bool keyword first; checkValueEnd must
	// still recognize the ": " that follows it and re-enter parseMap
	// with the bool itself as the first key, not just its string form.
	v := mustParse(t, "true: yes\n")
	m, ok := v.Map()
	require.True(t, ok)
	val, ok := m.Get(Bool(true))
	require.True(t, ok)
	s, ok := val.String_()
	require.True(t, ok)
	assert.Equal(t, "yes", s)
}

func TestConversionSpecifierAppliesToNextLineWhenValueIsEmpty(t *testing.T) {
	v := mustParse(t, ":literal:\n    abc\n    def\n")
	s, ok := v.String_()
	require.True(t, ok)
	assert.Equal(t, "abc\ndef\n", s)
}
