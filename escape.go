package uri

import (
	"github.com/hexwell/uri/internal/constraints"
	"github.com/hexwell/uri/internal/grammar"
)

// Escape percent-encodes every byte of s outside the unreserved set
// (ASCII letters, digits, '-', '_', '.', '~') as '%' plus two lowercase
// hex digits.
//
//	uri.Escape("abcd efg") // "abcd%20efg"
func Escape[T constraints.Byteseq](s T) T {
	return grammar.Escape(s)
}

// Unescape decodes percent-encoded sequences in s. It is the inverse of
// [Escape] and deliberately lenient: a '%' consumes the next two characters
// whatever they are, mapping non-hex digits to zero, except at the very end
// of the input where an incomplete escape is kept as-is.
//
//	uri.Unescape("abcd%20efg") // "abcd efg"
func Unescape[T constraints.Byteseq](s T) T {
	return grammar.Unescape(s)
}
