package grammar_test

import (
	"testing"

	"github.com/hexwell/uri/internal/grammar"
)

func TestEscape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want string
	}{
		{"empty", "", ""},
		{"no escape", "abc-_.~XYZ", "abc-_.~XYZ"},
		{"escape some", "abc+ qwe!", "abc%2b%20qwe%21"},
		{"existing escape re-escaped", "a%2Bb", "a%252Bb"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.Escape(c.str), c.want; got != want {
				t.Errorf("grammar.Escape(%q) = %q, want %q", c.str, got, want)
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
		{"no unescape", "abcd", "abcd"},
		{"unescape all", "abc%E4%b8%96", "abc世"}, //nolint:gosmopolitan
		{"lenient digits", "%4g", "@"},
		{"truncated escape", "ab%1", "ab%1"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.Unescape(c.str), c.want; got != want {
				t.Errorf("grammar.Unescape(%q) = %q, want %q", c.str, got, want)
			}
		})
	}
}

func TestIsSchemeChar(t *testing.T) {
	t.Parallel()

	for _, c := range []byte("azAZ09-.+") {
		if !grammar.IsSchemeChar(c) {
			t.Errorf("grammar.IsSchemeChar(%q) = false, want true", c)
		}
	}
	for _, c := range []byte(":/?#@ ~_") {
		if grammar.IsSchemeChar(c) {
			t.Errorf("grammar.IsSchemeChar(%q) = true, want false", c)
		}
	}
}

func TestIsCharUnreserved(t *testing.T) {
	t.Parallel()

	for _, c := range []byte("azAZ09-_.~") {
		if !grammar.IsCharUnreserved(c) {
			t.Errorf("grammar.IsCharUnreserved(%q) = false, want true", c)
		}
	}
	for _, c := range []byte("%/?#@ +!") {
		if grammar.IsCharUnreserved(c) {
			t.Errorf("grammar.IsCharUnreserved(%q) = true, want false", c)
		}
	}
}
