package domain

import "encoding/json"

// Optional carries a field of a partial update payload, distinguishing
// "field absent" from "field present" (including present-but-null, which
// callers model as Optional[*T] with a nil value).
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some builds a set Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// UnmarshalJSON marks the field as set whenever the key appears in the
// payload, even when the value is null.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON encodes the contained value; absent fields should be skipped
// by the caller instead.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Value)
}
