// Package trait provides semantic views over syntax tree nodes. A view
// does not copy the tree; it wraps a cursor and answers questions the
// raw node cannot, with an identity that is stable across repeated
// construction over the same node.
package trait

import (
	"reflect"

	"github.com/google/uuid"
)

// Element is a semantic view with stable identity. Two elements are the
// same element when they are the same kind of view over the same node.
type Element interface {
	ID() uuid.UUID
	// Name is the element's declared or synthesized name.
	Name() string
}

// Equals compares two elements by view kind and node identity.
// Reference-equal views short-circuit; otherwise the views must have
// the same concrete type and equal ids.
func Equals(a, b Element) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a == b {
		return true
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return a.ID() == b.ID()
}
