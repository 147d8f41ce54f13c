package codec

import (
	"errors"
	"fmt"
)

var ErrMalformedInput = errors.New("codec: malformed input")

// MalformedInputError reports where and why a table could not be parsed.
// Line is 1-based and zero when the failure is not tied to a line.
type MalformedInputError struct {
	Source string
	Line   int
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	prefix := "invalid table format: "
	if e.Source != "" {
		prefix = fmt.Sprintf("invalid table (from %q) format: ", e.Source)
	}

	msg := prefix + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}
