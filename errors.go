package md2wiki

import (
	"errors"
	"fmt"
)

// Sentinel errors for library operations.
var (
	ErrInvalidDialect = errors.New("invalid dialect")
	ErrParse          = errors.New("markdown parse failed")
)

// ParseError reports input that cannot be tokenized at all. Offset is the
// byte position of the first invalid sequence.
type ParseError struct {
	Offset int
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("markdown parse failed at byte %d: %s", e.Offset, e.Reason)
}

// Unwrap makes errors.Is(err, ErrParse) work for wrapped ParseErrors.
func (e *ParseError) Unwrap() error {
	return ErrParse
}
