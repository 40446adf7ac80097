package uri_test

import (
	"testing"

	"github.com/hexwell/uri"
)

func TestEscape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want string
	}{
		{"empty", "", ""},
		{"unreserved", "abcXYZ019-_.~", "abcXYZ019-_.~"},
		{"space", "abcd efg", "abcd%20efg"},
		{"percent is escaped", "100%", "100%25"},
		{"reserved chars", "a/b?c=d", "a%2fb%3fc%3dd"},
		{"non-ascii", "世", "%e4%b8%96"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := uri.Escape(c.str), c.want; got != want {
				t.Errorf("uri.Escape(%q) = %q, want %q", c.str, got, want)
			}
		})
	}
}

func TestUnescape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want string
	}{
		{"empty", "", ""},
		{"no escapes", "abcd", "abcd"},
		{"space", "abcd%20efg", "abcd efg"},
		{"uppercase hex", "abcd%2Befg", "abcd+efg"},
		{"non-ascii", "%e4%b8%96", "世"},
		{"invalid digits decode as zero", "%zz", "\x00"},
		{"trailing percent kept", "abc%", "abc%"},
		{"incomplete escape kept", "abc%2", "abc%2"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := uri.Unescape(c.str), c.want; got != want {
				t.Errorf("uri.Unescape(%q) = %q, want %q", c.str, got, want)
			}
		})
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"plain",
		"abcd efg",
		"with/slash?and=query&chars",
		"100% of $5",
		"世界",
	}

	for _, input := range inputs {
		if got, want := uri.Unescape(uri.Escape(input)), input; got != want {
			t.Errorf("uri.Unescape(uri.Escape(%q)) = %q, want %q", input, got, want)
		}
	}
}

func TestEscapeBytes(t *testing.T) {
	t.Parallel()

	got := uri.Escape([]byte("a b"))
	if want := "a%20b"; string(got) != want {
		t.Errorf("uri.Escape(%q) = %q, want %q", "a b", got, want)
	}
}
