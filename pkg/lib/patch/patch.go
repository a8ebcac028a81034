// Package patch provides a field wrapper for partial updates that tells apart
// a key missing from the JSON body, a key sent as null and a key with a value.
package patch

import (
	"bytes"
	"encoding/json"
)

// Field holds one optional value of a PATCH/PUT body.
//
//	absent:  Set == false
//	null:    Set == true, Null == true
//	value:   Set == true, Null == false
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Of returns a Field carrying v.
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Null returns a Field explicitly set to null.
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

// HasValue reports whether the field was sent with a non-null value.
func (f Field[T]) HasValue() bool {
	return f.Set && !f.Null
}

// Ptr returns a pointer to the value, or nil when the field is absent or null.
func (f Field[T]) Ptr() *T {
	if !f.HasValue() {
		return nil
	}
	v := f.Value
	return &v
}

// UnmarshalJSON is only called by encoding/json when the key is present.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

// MarshalJSON writes null for absent and null fields.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.HasValue() {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}
