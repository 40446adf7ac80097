package uri

import (
	"strconv"

	"braces.dev/errtrace"

	"github.com/hexwell/uri/internal/grammar"
)

// Parse parses a URI from the given input src (string or []byte).
//
// The scanner is permissive: empty or oddly delimited components are
// recorded as present-but-empty rather than rejected, and input that does
// not fit the absolute-URI shape degrades to a relative URI. The only hard
// failure is a non-digit character inside a port, reported as a [PortError]
// wrapping [ErrBadPort].
func Parse[T ~string | ~[]byte](src T) (URI, error) {
	s := scanner{src: string(src)}
	st := scanStart
	for st != nil {
		var err error
		if st, err = st(&s); err != nil {
			return URI{}, errtrace.Wrap(err)
		}
	}
	return s.uri, nil
}

// scanner pairs the immutable source string with the cursor offset and the
// record accumulated so far. Each state owns the cursor exclusively;
// lookahead scans run on a local index and leave the cursor untouched until
// the state commits.
type scanner struct {
	src string
	pos int
	uri URI
}

type scanState func(*scanner) (scanState, error)

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

// peek returns the current character without consuming it.
func (s *scanner) peek() (byte, bool) {
	if s.eof() {
		return 0, false
	}
	return s.src[s.pos], true
}

func scanStart(s *scanner) (scanState, error) {
	if c, ok := s.peek(); ok && grammar.IsAlphaChar(c) {
		return scanScheme, nil
	}
	return scanNoScheme, nil
}

// scanScheme scans a candidate scheme. When the run of scheme characters is
// not terminated by ':', the whole input is reinterpreted from the start as
// a scheme-less URI (a bare hostname or relative path that merely begins
// with a letter).
func scanScheme(s *scanner) (scanState, error) {
	for i := s.pos; i < len(s.src); i++ {
		c := s.src[i]
		if grammar.IsSchemeChar(c) {
			continue
		}
		if c != ':' {
			break
		}

		s.uri = s.uri.WithScheme(s.src[s.pos:i])
		s.pos = i + 1
		if s.pos+1 < len(s.src) && s.src[s.pos] == '/' && s.src[s.pos+1] == '/' {
			// Leave the cursor on the second slash: PathOrAuthority
			// decides between authority and path from there.
			s.pos++
			return scanPathOrAuthority, nil
		}
		s.uri = s.uri.WithOpaque(s.src[s.pos:])
		return nil, nil
	}
	s.pos = 0
	return scanNoScheme, nil
}

func scanNoScheme(s *scanner) (scanState, error) {
	if c, ok := s.peek(); ok && c == '#' {
		s.pos++
		return scanFragment, nil
	}
	return scanRelative, nil
}

func scanRelative(s *scanner) (scanState, error) {
	c, ok := s.peek()
	if !ok {
		return nil, nil
	}
	switch c {
	case '/':
		s.pos++
		return scanRelativeSlash, nil
	case '?':
		s.pos++
		return scanQuery, nil
	case '#':
		s.pos++
		return scanFragment, nil
	}
	return scanPath, nil
}

// scanRelativeSlash is entered after a single leading '/'. A second slash
// marks a scheme-less authority ("//host/..."); anything else, including
// end of input, is a path.
func scanRelativeSlash(s *scanner) (scanState, error) {
	if c, ok := s.peek(); ok && c == '/' {
		s.pos++
		return scanAuthority, nil
	}
	return scanPath, nil
}

// scanPathOrAuthority is entered just past "scheme:/" with the cursor on
// the character after the first slash.
func scanPathOrAuthority(s *scanner) (scanState, error) {
	if c, ok := s.peek(); ok && c == '/' {
		s.pos++
		return scanAuthority, nil
	}
	s.pos--
	return scanPath, nil
}

// scanAuthority looks ahead for an '@' before any authority terminator to
// decide between userinfo and host parsing. The cursor stays at the
// authority start; the chosen state rescans from there.
func scanAuthority(s *scanner) (scanState, error) {
	for i := s.pos; i < len(s.src); i++ {
		switch s.src[i] {
		case '@':
			return scanUserInfo, nil
		case '/', '?', '#':
			return scanHost, nil
		}
	}
	return scanHost, nil
}

// scanUserInfo splits "user[:password]@" at the first ':'. Further colons
// belong to the password.
func scanUserInfo(s *scanner) (scanState, error) {
	start := s.pos
	colon := -1
	for i := s.pos; i < len(s.src); i++ {
		switch s.src[i] {
		case ':':
			if colon < 0 {
				s.uri = s.uri.WithUser(s.src[start:i])
				colon = i
			}
		case '@':
			if colon >= 0 {
				s.uri = s.uri.WithPassword(s.src[colon+1 : i])
			} else {
				s.uri = s.uri.WithUser(s.src[start:i])
			}
			s.pos = i + 1
			return scanHost, nil
		}
	}
	// unreachable in practice: scanAuthority saw an '@' ahead
	s.pos = len(s.src)
	return scanHost, nil
}

// scanHost scans the host, tracking an IPv6 bracket flag so that colons
// inside "[...]" are not taken for a port separator.
func scanHost(s *scanner) (scanState, error) {
	if c, ok := s.peek(); ok && c == '/' {
		// empty host, e.g. "scheme:///path"
		return scanPath, nil
	}

	start := s.pos
	var bracket bool
	for i := s.pos; i < len(s.src); i++ {
		switch c := s.src[i]; c {
		case '[':
			bracket = true
		case ']':
			bracket = false
		case ':':
			if bracket {
				continue
			}
			s.uri = s.uri.WithHost(s.src[start:i])
			s.pos = i + 1
			return scanPort, nil
		case '/', '?', '#':
			s.uri = s.uri.WithHost(s.src[start:i])
			s.pos = i
			return s.afterAuthority(c), nil
		}
	}
	s.uri = s.uri.WithHost(s.src[start:])
	s.pos = len(s.src)
	return nil, nil
}

// scanPort scans a run of digits. Any other character that is not an
// authority terminator fails the parse with its offset.
func scanPort(s *scanner) (scanState, error) {
	start := s.pos
	for i := s.pos; i < len(s.src); i++ {
		c := s.src[i]
		if grammar.IsDigitChar(c) {
			continue
		}
		if c != '/' && c != '?' && c != '#' {
			return nil, errtrace.Wrap(&PortError{Offset: i})
		}
		if err := s.setPort(s.src[start:i], start); err != nil {
			return nil, errtrace.Wrap(err)
		}
		s.pos = i
		return s.afterAuthority(c), nil
	}
	if err := s.setPort(s.src[start:], start); err != nil {
		return nil, errtrace.Wrap(err)
	}
	s.pos = len(s.src)
	return nil, nil
}

// setPort records a scanned digit run. An empty run records no port; a run
// exceeding the port range is reported at the offset where the run began.
func (s *scanner) setPort(digits string, start int) error {
	if digits == "" {
		return nil
	}
	port, err := strconv.ParseUint(digits, 10, 16)
	if err != nil {
		return errtrace.Wrap(&PortError{Offset: start})
	}
	s.uri = s.uri.WithPort(uint16(port))
	return nil
}

// afterAuthority consumes the delimiter that terminated the authority
// section and dispatches to the matching component state.
func (s *scanner) afterAuthority(c byte) scanState {
	s.pos++
	switch c {
	case '/':
		return scanPath
	case '?':
		return scanQuery
	default:
		return scanFragment
	}
}

func scanPath(s *scanner) (scanState, error) {
	start := s.pos
	for i := s.pos; i < len(s.src); i++ {
		switch s.src[i] {
		case '?':
			s.uri = s.uri.WithPath(s.src[start:i])
			s.pos = i + 1
			return scanQuery, nil
		case '#':
			s.uri = s.uri.WithPath(s.src[start:i])
			s.pos = i + 1
			return scanFragment, nil
		}
	}
	s.uri = s.uri.WithPath(s.src[start:])
	s.pos = len(s.src)
	return nil, nil
}

func scanQuery(s *scanner) (scanState, error) {
	start := s.pos
	for i := s.pos; i < len(s.src); i++ {
		if s.src[i] == '#' {
			s.uri = s.uri.WithQuery(s.src[start:i])
			s.pos = i + 1
			return scanFragment, nil
		}
	}
	s.uri = s.uri.WithQuery(s.src[start:])
	s.pos = len(s.src)
	return nil, nil
}

func scanFragment(s *scanner) (scanState, error) {
	s.uri = s.uri.WithFragment(s.src[s.pos:])
	s.pos = len(s.src)
	return nil, nil
}
