package storage

import (
	"errors"
	"fmt"
)

var (
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrSchema           = errors.New("schema error")
	ErrWrite            = errors.New("write failure")
	ErrDecode           = errors.New("decode failure")
	ErrNotFound         = errors.New("record not found")
)

// SchemaError reports which relation could not be created.
type SchemaError struct {
	Relation string
	Err      error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("create relation %s: %v", e.Relation, e.Err)
}

func (e *SchemaError) Unwrap() []error { return []error{ErrSchema, e.Err} }

// DecodeError reports a stored value that could not be parsed.
type DecodeError struct {
	Field    string
	Fragment string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s from %q: %v", e.Field, e.Fragment, e.Err)
}

func (e *DecodeError) Unwrap() []error { return []error{ErrDecode, e.Err} }

func writeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrWrite, err)
}
