package scan

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
)

// Parsing in this module is fail-fast: a single malformed construct aborts
// the whole parse. Errors are flagged with sentinel error kinds, wrapped
// together with the byte position of the offending input fragment.
// Clients test for kinds with errors.Is(…).

// ErrUnexpectedEOF flags that the input was exhausted while at least one
// more character was required.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// ErrUnexpectedChar flags that a required literal or delimiter did not match.
var ErrUnexpectedChar = errors.New("unexpected character")

// PosError decorates an error kind with the byte position in the input
// where the error occurred.
type PosError struct {
	Pos  int    // byte offset into the input
	Info string // description of the offending fragment, may be empty
	kind error  // one of the sentinel error kinds
}

// ErrorAt wraps an error kind with a byte position and a description of
// the offending fragment.
func ErrorAt(pos int, kind error, format string, args ...interface{}) error {
	return &PosError{
		Pos:  pos,
		Info: fmt.Sprintf(format, args...),
		kind: kind,
	}
}

func (e *PosError) Error() string {
	if e.Info == "" {
		return fmt.Sprintf("%v at position %d", e.kind, e.Pos)
	}
	return fmt.Sprintf("%v at position %d: %s", e.kind, e.Pos, e.Info)
}

// Unwrap returns the sentinel error kind, making PosError matchable
// with errors.Is.
func (e *PosError) Unwrap() error {
	return e.kind
}
