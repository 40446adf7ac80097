package uri

import (
	"strings"

	"braces.dev/errtrace"
)

// ParseQuery splits a raw query string into a [Values] map. Pairs are
// separated by '&'; name and value split on the first '='. A segment
// without '=' fails with a [QueryParamError] wrapping [ErrMalformedQuery].
//
// Splitting is purely textual: no percent-decoding is applied and empty
// input yields an empty map.
func ParseQuery[T ~string | ~[]byte](src T) (Values, error) {
	vals := make(Values)
	if len(src) == 0 {
		return vals, nil
	}
	for seg := range strings.SplitSeq(string(src), "&") {
		name, value, ok := strings.Cut(seg, "=")
		if !ok {
			return nil, errtrace.Wrap(&QueryParamError{Param: seg})
		}
		vals.Set(name, value)
	}
	return vals, nil
}

// QueryMap splits the URI's raw query into a [Values] map.
// A URI without a query yields an empty map.
func (u URI) QueryMap() (Values, error) {
	return errtrace.Wrap2(ParseQuery(u.query))
}
