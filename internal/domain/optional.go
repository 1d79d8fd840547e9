package domain

import (
	"encoding/json"
	"reflect"
)

// Optional distinguishes an omitted field from a supplied one.
// A nullable field is expressed as Optional[*T]; for any other T an
// explicit JSON null is rejected.
type Optional[T any] struct {
	Value T
	Set   bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		if !nilable[T]() {
			return &json.UnmarshalTypeError{Value: "null", Type: reflect.TypeFor[T]()}
		}
		var zero T
		o.Value = zero
		o.Set = true
		return nil
	}
	if err := json.Unmarshal(b, &o.Value); err != nil {
		return err
	}
	o.Set = true
	return nil
}

// Pointer returns a *T holding the supplied value, or a nil *T when the
// field was omitted. Validators see an omitted field as a nil pointer.
func (o Optional[T]) Pointer() any {
	if !o.Set {
		return (*T)(nil)
	}
	v := o.Value
	return &v
}

// ApplyTo overwrites dst when the field was supplied.
func (o Optional[T]) ApplyTo(dst *T) {
	if o.Set {
		*dst = o.Value
	}
}

func nilable[T any]() bool {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return true
	}
	return false
}
