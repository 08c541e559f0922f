// Package graphqlgo binds built enums to github.com/graphql-go/graphql.
package graphqlgo

import (
	gographql "github.com/graphql-go/graphql"
	"go.appointy.com/gqlenum/graphql"
	"go.appointy.com/gqlenum/schemabuilder"
)

// Enum returns an engine enum whose values are the variants of e, so the
// engine serializes a variant to its name and parses a name to its variant.
func Enum(e *graphql.Enum) *gographql.Enum {
	values := make(gographql.EnumValueConfigMap, len(e.Values))
	for _, v := range e.Values {
		values[v.Name] = &gographql.EnumValueConfig{
			Value:             v.Variant,
			Description:       v.Description,
			DeprecationReason: v.DeprecationReason,
		}
	}

	return gographql.NewEnum(gographql.EnumConfig{
		Name:        e.Type,
		Description: e.Description,
		Values:      values,
	})
}

// Enums binds every enum of s, keyed by type name.
func Enums(s *graphql.Schema) map[string]*gographql.Enum {
	out := make(map[string]*gographql.Enum, len(s.Enums))
	for _, e := range s.Enums {
		out[e.Type] = Enum(e)
	}
	return out
}

// Args parses the arguments of a resolver into T. Enum arguments arrive
// already coerced by the engine.
func Args[T any](schema *graphql.Schema, p gographql.ResolveParams) (T, error) {
	return schemabuilder.ParseArgs[T](schema, p.Args)
}
