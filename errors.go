package cubealg

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cubealg package.
var (
	// Token errors
	ErrInvalidToken = errors.New("cubealg: invalid move token")

	// Expression errors
	ErrEmptyExpression     = errors.New("cubealg: empty expression")
	ErrMalformedExpression = errors.New("cubealg: malformed expression")
	ErrTooDeep             = errors.New("cubealg: expression nested too deeply")
	ErrTooLong             = errors.New("cubealg: expansion has too many moves")
)

// ParseError reports where parsing an expression failed.
// It wraps one of the sentinel errors above so callers can use errors.Is.
type ParseError struct {
	Input string // The full expression being parsed
	Pos   int    // Byte offset of the offending token
	Msg   string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v at offset %d: %s", e.Err, e.Pos, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
