// Package grammar provides character classification and the percent-encoding
// codec used by the scanner and the public API.
package grammar

import (
	"bytes"

	"github.com/hexwell/uri/internal/constraints"
)

// Escape percent-encodes s. Every byte outside the unreserved set
// (ASCII letters, digits, '-', '_', '.', '~') is replaced by '%' followed
// by two lowercase hex digits, high nibble first.
func Escape[T constraints.Byteseq](s T) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if IsCharUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(lowerhex[c>>4])
		b.WriteByte(lowerhex[c&15])
	}
	return T(b.Bytes())
}

// Unescape decodes percent-encoded sequences in s. A '%' consumes the next
// two characters and decodes them as hex nibbles, mapping any non-hex
// character to zero. A '%' with fewer than two characters remaining is
// emitted as-is.
func Unescape[T constraints.Byteseq](s T) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

const lowerhex = "0123456789abcdef"

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// IsAlphaChar checks the ALPHA rule.
func IsAlphaChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// IsDigitChar checks the DIGIT rule.
func IsDigitChar(c byte) bool { return '0' <= c && c <= '9' }

// IsAlphanumChar checks the alphanum rule.
func IsAlphanumChar(c byte) bool { return IsAlphaChar(c) || IsDigitChar(c) }

var schemeChars = map[byte]bool{
	'-': true,
	'.': true,
	'+': true,
}

// IsSchemeChar reports whether c may appear in a URI scheme after the
// leading letter.
func IsSchemeChar(c byte) bool { return schemeChars[c] || IsAlphanumChar(c) }

var unreservedChars = map[byte]bool{
	'-': true,
	'_': true,
	'.': true,
	'~': true,
}

// IsCharUnreserved checks the unreserved rule.
func IsCharUnreserved(c byte) bool { return unreservedChars[c] || IsAlphanumChar(c) }
