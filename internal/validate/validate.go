// Package validate carries the result of a checked construction: either
// a value, or a description of why the input did not qualify. Callers
// that know their input is well-formed use MustValue; callers probing an
// arbitrary tree check IsValid first.
package validate

import "fmt"

// Validated holds the outcome of validating that a subject satisfies a
// named property.
type Validated[T any] struct {
	property string
	value    T
	invalid  bool
	subject  any
	message  string
}

// Valid wraps a successfully constructed value.
func Valid[T any](property string, value T) *Validated[T] {
	return &Validated[T]{property: property, value: value}
}

// Invalid records that subject does not satisfy property.
func Invalid[T any](property string, subject any, message string) *Validated[T] {
	return &Validated[T]{
		property: property,
		invalid:  true,
		subject:  subject,
		message:  message,
	}
}

// AsInvalid converts an invalid result to a different value type,
// keeping the original failure.
func AsInvalid[U, T any](v *Validated[T]) *Validated[U] {
	return &Validated[U]{
		property: v.property,
		invalid:  true,
		subject:  v.subject,
		message:  v.message,
	}
}

func (v *Validated[T]) IsValid() bool    { return !v.invalid }
func (v *Validated[T]) Property() string { return v.property }
func (v *Validated[T]) Subject() any     { return v.subject }
func (v *Validated[T]) Message() string  { return v.message }

// Value returns the validated value and whether it is usable.
func (v *Validated[T]) Value() (T, bool) {
	var zero T
	if v.invalid {
		return zero, false
	}
	return v.value, true
}

// MustValue returns the validated value and panics on an invalid result.
func (v *Validated[T]) MustValue() T {
	if v.invalid {
		panic(fmt.Sprintf("%s: %s", v.property, v.message))
	}
	return v.value
}

// Err returns the failure as an error, or nil for a valid result.
func (v *Validated[T]) Err() error {
	if !v.invalid {
		return nil
	}
	return fmt.Errorf("%s: %s", v.property, v.message)
}
