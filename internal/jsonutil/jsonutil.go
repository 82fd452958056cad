// Package jsonutil decodes JSON payloads with context-annotated errors.
package jsonutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrTrailingData is returned when a payload holds more than one JSON value.
var ErrTrailingData = errors.New("unexpected data after top-level value")

// DecodeArray reads a single JSON array from r.
// A literal null decodes to a nil slice; an empty array to an empty one.
// Element order is preserved.
func DecodeArray[T any](r io.Reader, context string) ([]T, error) {
	dec := json.NewDecoder(r)
	var entries []T
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("%s: %w", context, describe(err))
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", context, ErrTrailingData)
	}
	return entries, nil
}

// describe adds the byte offset to syntax errors, which encoding/json omits
// from the message.
func describe(err error) error {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		return fmt.Errorf("at offset %d: %w", syn.Offset, err)
	}
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("empty body: %w", err)
	}
	return err
}
