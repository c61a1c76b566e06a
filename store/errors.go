// SPDX-License-Identifier: MIT
// Package: praxis/store
//
// errors.go — sentinel errors and the DecodeError detail type.
//
// Error policy (explicit and strict):
//   • Callers branch with errors.Is(err, ErrDecode); the concrete
//     *DecodeError is available via errors.As for field-level reporting.
//   • Sentinels are never wrapped with formatted strings at definition
//     site; context is attached with %w at the failure site.

package store

import (
	"errors"
	"fmt"
)

// ErrDecode indicates that Load (any codec) rejected the input. The store
// is guaranteed untouched when this is returned.
var ErrDecode = errors.New("store: decode failed")

// DecodeError reports the location of a Load failure: which record (index
// into the persisted pattern list, -1 for document-level failures) and
// which field could not be decoded.
type DecodeError struct {
	// Index is the zero-based position of the offending pattern record,
	// or -1 when the document itself failed to parse.
	Index int

	// Field is the dotted path of the offending field within the record,
	// e.g. "solution.transformation.steps[2].operation".
	Field string

	// Err is the underlying cause (an enum sentinel or codec error).
	Err error
}

// Error renders the record index, field path, and cause.
func (e *DecodeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("store: decode document: %v", e.Err)
	}

	return fmt.Sprintf("store: decode patterns[%d].%s: %v", e.Index, e.Field, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *DecodeError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrDecode) hold for every DecodeError.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// decodeErr builds a *DecodeError for record i, field path, and cause.
func decodeErr(i int, field string, cause error) error {
	return &DecodeError{Index: i, Field: field, Err: cause}
}
