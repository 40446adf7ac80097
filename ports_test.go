package uri_test

import (
	"testing"

	"github.com/hexwell/uri"
)

func TestDefaultPort(t *testing.T) {
	t.Parallel()

	cases := []struct {
		scheme string
		want   uint16
	}{
		{"http", 80},
		{"https", 443},
		{"ssh", 22},
		{"ftp", 21},
		{"wss", 443},
		{"HTTP", 80},
		{"unknown", 0},
		{"", 0},
	}

	for _, c := range cases {
		t.Run(c.scheme, func(t *testing.T) {
			t.Parallel()

			if got, want := uri.DefaultPort(c.scheme), c.want; got != want {
				t.Errorf("uri.DefaultPort(%q) = %d, want %d", c.scheme, got, want)
			}
		})
	}
}
