package core

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is the sentinel for any input-format violation.
var ErrMalformedInput = errors.New("malformed input")

// InputError wraps an input-format violation with the test case it occurred
// in. Case is 1-based; 0 means the failure happened before the first case
// (reading the test-case count).
type InputError struct {
	Case int
	Msg  string
}

func (e *InputError) Error() string {
	if e == nil {
		return ""
	}
	if e.Case == 0 {
		return fmt.Sprintf("malformed input: %s", e.Msg)
	}
	return fmt.Sprintf("malformed input at test case %d: %s", e.Case, e.Msg)
}

func (e *InputError) Unwrap() error { return ErrMalformedInput }

func malformedf(testCase int, format string, args ...any) error {
	return &InputError{Case: testCase, Msg: fmt.Sprintf(format, args...)}
}
