package adi2edi

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedNumber is reported for a QSO_DATE, STX or SRX value that
	// is not an unsigned integer.
	ErrMalformedNumber = errors.New("malformed numeric field")
	ErrNotDocument     = errors.New("parse tree root is not a document")
)

// FieldError describes a field value that stopped the conversion.
type FieldError struct {
	// 1-based position of the record in the file
	Record int
	Tag    string
	Value  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("record %d: %s %q: %v: %v", e.Record, e.Tag, e.Value, ErrMalformedNumber, e.Err)
}

func (e *FieldError) Is(target error) bool {
	return target == ErrMalformedNumber
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
