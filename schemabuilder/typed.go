package schemabuilder

import (
	"fmt"
	"reflect"

	"go.appointy.com/gqlenum/graphql"
)

// TypedEnum is a view of an enum whose variants are of Go type T.
type TypedEnum[T comparable] struct {
	enum *graphql.Enum
}

// NewTypedEnum returns a typed view of e. It fails if e's variants are not of
// type T.
func NewTypedEnum[T comparable](e *graphql.Enum) (*TypedEnum[T], error) {
	want := reflect.TypeOf((*T)(nil)).Elem()
	if e.GoType != want {
		return nil, fmt.Errorf("enum %s holds %s variants, not %s", e.Type, e.GoType, want)
	}
	return &TypedEnum[T]{enum: e}, nil
}

// Enum returns the underlying descriptor.
func (t *TypedEnum[T]) Enum() *graphql.Enum {
	return t.enum
}

// Encode returns the value name of v.
func (t *TypedEnum[T]) Encode(v T) (string, error) {
	return t.enum.Encode(v)
}

// Decode returns the variant named name.
func (t *TypedEnum[T]) Decode(name string) (T, error) {
	var zero T
	v, err := t.enum.Decode(name)
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// Values returns the variants in declaration order.
func (t *TypedEnum[T]) Values() []T {
	out := make([]T, 0, len(t.enum.Values))
	for _, v := range t.enum.Values {
		out = append(out, v.Variant.(T))
	}
	return out
}
