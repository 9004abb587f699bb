package model

import (
	"bytes"
	"encoding/json"
)

// Opt is a patch field with three states: unset (leave the column alone),
// null (clear it) and a value.
type Opt[T any] struct {
	set   bool
	valid bool
	val   T
}

func Some[T any](v T) Opt[T] {
	return Opt[T]{set: true, valid: true, val: v}
}

func Null[T any]() Opt[T] {
	return Opt[T]{set: true}
}

// OptPtr maps nil to Null and anything else to Some.
func OptPtr[T any](v *T) Opt[T] {
	if v == nil {
		return Null[T]()
	}
	return Some(*v)
}

func (o Opt[T]) IsSet() bool {
	return o.set
}

func (o Opt[T]) Get() (T, bool) {
	return o.val, o.valid
}

// Ptr returns the value, or nil when the field is null or unset.
func (o Opt[T]) Ptr() *T {
	if !o.valid {
		return nil
	}
	v := o.val
	return &v
}

// UnmarshalJSON is only called for keys present in the document, so an
// absent key keeps the zero (unset) state.
func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.valid = false
		var zero T
		o.val = zero
		return nil
	}
	err := json.Unmarshal(data, &o.val)
	if err != nil {
		return err
	}
	o.valid = true
	return nil
}
