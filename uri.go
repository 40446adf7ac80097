package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/hexwell/uri/internal/types"
	"github.com/hexwell/uri/internal/util"
)

// Values represents query parameters as a name/value map.
type Values = types.Values

// URI is an immutable structured representation of a URI.
//
// Every component is optional and independent: absence is distinct from
// emptiness. The zero value has no components set. Components are set
// through the With methods, each of which returns a new value, so a URI
// can be shared freely once built.
type URI struct {
	scheme   string
	opaque   string
	user     string
	passwd   string
	host     string
	path     string
	query    string
	fragment string

	port uint16

	hasScheme   bool
	hasOpaque   bool
	hasUser     bool
	hasPasswd   bool
	hasHost     bool
	hasPath     bool
	hasQuery    bool
	hasFragment bool
	hasPort     bool
}

// WithScheme returns a copy of the URI with the scheme set.
// A present scheme marks the URI absolute.
func (u URI) WithScheme(scheme string) URI {
	u.scheme, u.hasScheme = scheme, true
	return u
}

// WithOpaque returns a copy of the URI with the opaque component set.
// Opaque holds everything after "scheme:" when the scheme is not followed
// by "//", e.g. "user@example.com" in "mailto:user@example.com".
func (u URI) WithOpaque(opaque string) URI {
	u.opaque, u.hasOpaque = opaque, true
	return u
}

// WithUser returns a copy of the URI with the user component set.
func (u URI) WithUser(user string) URI {
	u.user, u.hasUser = user, true
	return u
}

// WithPassword returns a copy of the URI with the password component set.
// A password is only rendered when a user is present.
func (u URI) WithPassword(passwd string) URI {
	u.passwd, u.hasPasswd = passwd, true
	return u
}

// WithHost returns a copy of the URI with the host component set.
// The host may be a bracketed IPv6 literal, e.g. "[::1]".
func (u URI) WithHost(host string) URI {
	u.host, u.hasHost = host, true
	return u
}

// WithPort returns a copy of the URI with the port set.
func (u URI) WithPort(port uint16) URI {
	u.port, u.hasPort = port, true
	return u
}

// WithPath returns a copy of the URI with the path set.
// The path is stored without a leading slash; rendering always emits the
// path-root separator.
func (u URI) WithPath(path string) URI {
	u.path, u.hasPath = path, true
	return u
}

// WithQuery returns a copy of the URI with the raw query set ('?' stripped,
// not decoded).
func (u URI) WithQuery(query string) URI {
	u.query, u.hasQuery = query, true
	return u
}

// WithFragment returns a copy of the URI with the fragment set ('#' stripped).
func (u URI) WithFragment(fragment string) URI {
	u.fragment, u.hasFragment = fragment, true
	return u
}

// Scheme returns the scheme and a flag indicating whether it is set.
func (u URI) Scheme() (string, bool) { return u.scheme, u.hasScheme }

// Opaque returns the opaque component and a flag indicating whether it is set.
func (u URI) Opaque() (string, bool) { return u.opaque, u.hasOpaque }

// User returns the user component and a flag indicating whether it is set.
func (u URI) User() (string, bool) { return u.user, u.hasUser }

// Password returns the password and a flag indicating whether it is set.
func (u URI) Password() (string, bool) { return u.passwd, u.hasPasswd }

// Host returns the host and a flag indicating whether it is set.
// The host keeps IPv6 brackets as parsed; see Hostname.
func (u URI) Host() (string, bool) { return u.host, u.hasHost }

// Port returns the port and a flag indicating whether it is set.
func (u URI) Port() (uint16, bool) { return u.port, u.hasPort }

// Path returns the path and a flag indicating whether it is set.
func (u URI) Path() (string, bool) { return u.path, u.hasPath }

// Query returns the raw query and a flag indicating whether it is set.
func (u URI) Query() (string, bool) { return u.query, u.hasQuery }

// Fragment returns the fragment and a flag indicating whether it is set.
func (u URI) Fragment() (string, bool) { return u.fragment, u.hasFragment }

// Hostname returns the host with IPv6 brackets stripped,
// or an empty string when the host is not set.
func (u URI) Hostname() string {
	return strings.Trim(u.host, "[]")
}

// Userinfo returns the userinfo section as rendered before '@':
// "user" or "user:password". It is empty when no user is set.
func (u URI) Userinfo() string {
	if !u.hasUser {
		return ""
	}
	if !u.hasPasswd {
		return u.user
	}
	return u.user + ":" + u.passwd
}

// FullPath returns the path prefixed with the path-root separator,
// followed by "?query" when a query is present.
func (u URI) FullPath() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString("/")
	sb.WriteString(u.path)
	if u.hasQuery {
		sb.WriteString("?")
		sb.WriteString(u.query)
	}
	return sb.String()
}

// IsAbsolute reports whether the URI has a scheme.
func (u URI) IsAbsolute() bool { return u.hasScheme }

// IsRelative reports whether the URI has no scheme.
func (u URI) IsRelative() bool { return !u.hasScheme }

// IsValid checks whether the URI carries an addressable component.
func (u URI) IsValid() bool {
	return util.TrimSP(u.opaque) != "" ||
		util.TrimSP(u.host) != "" ||
		util.TrimSP(u.path) != ""
}

// Equal compares this URI with another for equality, accepting URI and *URI.
// Equality is defined over the rendered forms, so a record with an explicit
// default port compares equal to its default-port-elided counterpart.
func (u URI) Equal(val any) bool {
	var other URI
	switch v := val.(type) {
	case URI:
		other = v
	case *URI:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return u.String() == other.String()
}

// Format implements fmt.Formatter for custom formatting of the URI.
func (u URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), URI(u))
		return
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (u URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URI) UnmarshalText(text []byte) error {
	u1, err := Parse(text)
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = u1
	return nil
}
