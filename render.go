package uri

import (
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/hexwell/uri/internal/ioutil"
	"github.com/hexwell/uri/internal/util"
)

// RenderOptions contains options for rendering URIs.
type RenderOptions struct{}

// RenderTo writes the canonical string form of the URI to the provided
// writer.
//
// The scheme is followed by "//" unless the opaque component is present,
// in which case the opaque text is everything after "scheme:". The port is
// elided when it equals the scheme's well-known default (see [DefaultPort]).
// The path-root separator is always emitted.
func (u URI) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	if u.hasScheme {
		cw.WriteString(u.scheme)
		cw.WriteString(":")
		if !u.hasOpaque {
			cw.WriteString("//")
		}
	}
	if u.hasOpaque {
		cw.WriteString(u.opaque)
		return errtrace.Wrap2(cw.Result())
	}
	if u.hasUser {
		cw.WriteString(u.user)
		if u.hasPasswd {
			cw.Fprint(":", u.passwd)
		}
		cw.WriteString("@")
	}
	cw.WriteString(u.host)
	if u.hasPort && u.port != DefaultPort(u.scheme) {
		cw.Fprint(":", strconv.Itoa(int(u.port)))
	}
	cw.WriteString("/")
	cw.WriteString(u.path)
	if u.hasQuery {
		cw.Fprint("?", u.query)
	}
	if u.hasFragment {
		cw.Fprint("#", u.fragment)
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the URI.
func (u URI) Render(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the URI.
func (u URI) String() string {
	return u.Render(nil)
}
