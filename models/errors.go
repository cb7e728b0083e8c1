package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotAnObject       = errors.New("expected a JSON object")
	ErrNotAnArray        = errors.New("expected a JSON array")
	ErrInvalidLooseValue = errors.New("expected null, a number or a string")
)

// ParseError reports a document that could not be decoded. Path points at the
// offending field (for example "cycles[0].ovulation.date") and is empty when the
// document itself is malformed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("could not decode cycle calculator document: %v", e.Err)
	}
	return fmt.Sprintf("could not decode cycle calculator document at %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErrorAt(path string, err error) error {
	var existing *ParseError
	if errors.As(err, &existing) {
		return err
	}
	return &ParseError{Path: path, Err: err}
}
