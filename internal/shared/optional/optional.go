// Package optional tracks whether a JSON field was present in a request payload.
package optional

import (
	"bytes"
	"encoding/json"
)

// Value records presence and nullness of a decoded JSON member.
// The zero value means the member was absent.
type Value[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Of returns a present, non-null value.
func Of[T any](v T) Value[T] {
	return Value[T]{Set: true, Value: v}
}

// UnmarshalJSON is only invoked for members present in the payload.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		v.Null = true
		var zero T
		v.Value = zero
		return nil
	}
	v.Null = false
	return json.Unmarshal(data, &v.Value)
}

// MarshalJSON renders null for absent or null values.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.Present() {
		return []byte("null"), nil
	}
	return json.Marshal(v.Value)
}

// Present reports a member that was supplied with a non-null value.
func (v Value[T]) Present() bool {
	return v.Set && !v.Null
}
