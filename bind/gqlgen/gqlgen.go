// Package gqlgen adapts built enums to the marshaling hooks of
// github.com/99designs/gqlgen.
package gqlgen

import (
	"context"
	"io"
	"strconv"

	gqlgen "github.com/99designs/gqlgen/graphql"
	"go.appointy.com/gqlenum/graphql"
	"go.appointy.com/gqlenum/schemabuilder"
)

// Marshal writes the name of variant v as a JSON string. A value that is not a
// variant of e fails when written, and gqlgen reports it on the field.
func Marshal(e *graphql.Enum, v interface{}) gqlgen.ContextMarshaler {
	return gqlgen.ContextWriterFunc(func(ctx context.Context, w io.Writer) error {
		name, err := e.Encode(v)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, strconv.Quote(name))
		return err
	})
}

// Unmarshal coerces a raw input value, a name or an already coerced variant.
func Unmarshal(e *graphql.Enum, v interface{}) (interface{}, error) {
	variant, err := e.ParseValue(v)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, &graphql.UnknownEnumValueError{TypeName: e.Type, Value: "null"}
	}
	return variant, nil
}

// Codec is the typed pair of hooks for an enum with variants of type T. Its
// methods fit the MarshalX/UnmarshalX functions gqlgen calls for a bound model.
type Codec[T comparable] struct {
	enum *schemabuilder.TypedEnum[T]
}

// NewCodec fails if e's variants are not of type T.
func NewCodec[T comparable](e *graphql.Enum) (*Codec[T], error) {
	typed, err := schemabuilder.NewTypedEnum[T](e)
	if err != nil {
		return nil, err
	}
	return &Codec[T]{enum: typed}, nil
}

func (c *Codec[T]) Marshal(v T) gqlgen.ContextMarshaler {
	return Marshal(c.enum.Enum(), v)
}

func (c *Codec[T]) Unmarshal(v interface{}) (T, error) {
	var zero T
	variant, err := Unmarshal(c.enum.Enum(), v)
	if err != nil {
		return zero, err
	}
	return variant.(T), nil
}
