// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package option provides the optional wrapper and assembly errors that
// generated Go builders depend on.
package option

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Option holds either a value of T or nothing.
// The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and whether one is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// OrElse returns the held value, or fallback when empty.
func (o Option[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// MarshalJSON encodes None as null and Some(v) as v.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as None.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// ErrMissingRequiredField is matched by every MissingFieldError.
var ErrMissingRequiredField = errors.New("missing required field")

// MissingFieldError is returned by a builder's Build method when a required
// field was never set. Only the first such field, in declaration order, is
// reported.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingRequiredField, e.Field)
}

// Is makes errors.Is(err, ErrMissingRequiredField) hold.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingRequiredField
}

// Missing returns a MissingFieldError for field.
func Missing(field string) error {
	return &MissingFieldError{Field: field}
}
