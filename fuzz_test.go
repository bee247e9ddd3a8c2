package thicket

import (
	"strings"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

// TestFuzzQuotedStringRoundTrip checks the round-trip-of-quoted-strings
// invariant over randomly generated ASCII payloads that contain no
// characters requiring escaping.
func TestFuzzQuotedStringRoundTrip(t *testing.T) {
	printable := fuzz.UnicodeRange{First: ' ', Last: '~'}
	f := fuzz.New().Funcs(func(s *string, c fuzz.Continue) {
		printable.CustomStringFuzzFunc()(s, c)
		*s = strings.NewReplacer(`"`, "a", `\`, "b", "\n", " ").Replace(*s)
	})

	for i := 0; i < 200; i++ {
		var payload string
		f.Fuzz(&payload)

		v, err := ParseString(`"` + payload + "\"\n")
		require.NoError(t, err, "payload %q", payload)
		got, ok := v.String_()
		require.True(t, ok)
		require.Equal(t, payload, got, "payload %q", payload)
	}
}

// TestFuzzNumberParsingNeverPanics feeds randomly assembled digit
// strings, with and without radix prefixes and separators, through the
// full parser to guard against panics on malformed numerics.
func TestFuzzNumberParsingNeverPanics(t *testing.T) {
	digits := fuzz.UnicodeRange{First: '0', Last: '9'}
	f := fuzz.New().NilChance(0).Funcs(func(s *string, c fuzz.Continue) {
		digits.CustomStringFuzzFunc()(s, c)
	})

	prefixes := []string{"", "0b", "0o", "0x", "-", "+"}
	for i := 0; i < 200; i++ {
		var digitsOnly string
		f.Fuzz(&digitsOnly)
		requireNoPanic(t, prefixes[i%len(prefixes)]+digitsOnly)
	}
}

// TestFuzzDocumentStructureNeverPanics assembles random small documents
// out of the scalar/list/map shapes the parser recognizes and checks
// that parsing completes without panicking, whether or not it errors.
func TestFuzzDocumentStructureNeverPanics(t *testing.T) {
	words := fuzz.UnicodeRange{First: 'a', Last: 'z'}
	f := fuzz.New().NilChance(0).Funcs(func(s *string, c fuzz.Continue) {
		words.CustomStringFuzzFunc()(s, c)
		if *s == "" {
			*s = "x"
		}
	})

	templates := []string{
		"%s: %s\n",
		"- %s\n- %s\n",
		"%s:\n    %s: %s\n",
		":literal: %s\n          %s\n",
	}

	for i := 0; i < 100; i++ {
		var a, b string
		f.Fuzz(&a)
		f.Fuzz(&b)
		doc := fillTemplate(templates[i%len(templates)], a, b)
		requireNoPanic(t, doc)
	}
}

func fillTemplate(tmpl, a, b string) string {
	out := strings.Replace(tmpl, "%s", a, 1)
	return strings.ReplaceAll(out, "%s", b)
}

func requireNoPanic(t *testing.T, input string) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("parsing %q panicked: %v", input, r)
		}
	}()
	_, _ = ParseString(input + "\n")
}
