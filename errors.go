package uri

import "fmt"

// Error is a string type that implements the error interface.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrBadPort is reported when a non-digit character is found while
	// scanning a port.
	ErrBadPort Error = "bad port"
	// ErrMalformedQuery is reported when a query segment does not split
	// into a name and a value.
	ErrMalformedQuery Error = "malformed query parameter"
)

// PortError is the parse failure returned for an invalid port.
// Offset is the 0-based position of the unexpected character.
type PortError struct {
	Offset int
}

func (e *PortError) Error() string {
	return fmt.Sprintf("Invalid URI: bad port at character %d", e.Offset)
}

func (e *PortError) Unwrap() error { return ErrBadPort }

// QueryParamError is the failure returned for a query segment without
// a name/value separator.
type QueryParamError struct {
	Param string
}

func (e *QueryParamError) Error() string {
	return fmt.Sprintf("Query parameter %s malformed.", e.Param)
}

func (e *QueryParamError) Unwrap() error { return ErrMalformedQuery }
