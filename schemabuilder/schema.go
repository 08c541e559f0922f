package schemabuilder

import (
	"reflect"

	"go.appointy.com/gqlenum/graphql"
)

// Schema collects enum registrations and builds them into a graphql.Schema.
//
// A Schema is meant to be filled and built once, during initialization, from a
// single goroutine.
type Schema struct {
	enums []*enumDefinition
}

type enumDefinition struct {
	name        string
	description string
	variants    []Variant
}

// NewSchema creates a new schema.
func NewSchema() *Schema {
	return &Schema{}
}

// Enum registers an enum type. The optional description (last arg) becomes the
// type description.
//
//	schema.Enum("Episode", []schemabuilder.Variant{
//		{Value: NewHope, Name: "NewHope"},
//		{Value: Empire, Name: "Empire"},
//		{Value: Jedi, Name: "Jedi", Override: "AAA"},
//	}, "One of the films in the Star Wars Trilogy")
func (s *Schema) Enum(name string, variants []Variant, description ...string) {
	if len(description) > 1 {
		panic("at most one description allowed for Enum")
	}

	desc := ""
	if len(description) > 0 {
		desc = description[0]
	}

	s.enums = append(s.enums, &enumDefinition{
		name:        name,
		description: desc,
		variants:    append([]Variant(nil), variants...),
	})
}

// Build builds every registered enum. It fails on the first invalid enum,
// duplicate type name or defined Go type bound twice; no partial schema is
// returned. Enums whose variants are of a predeclared type (plain strings, say)
// are not bound by Go type and may share it.
func (s *Schema) Build() (*graphql.Schema, error) {
	enums := make([]*graphql.Enum, 0, len(s.enums))
	names := make(map[string]bool, len(s.enums))
	goTypes := make(map[reflect.Type]bool, len(s.enums))

	for _, def := range s.enums {
		if names[def.name] {
			return nil, &DuplicateTypeError{Name: def.name}
		}
		names[def.name] = true

		e, err := BuildEnum(def.name, def.description, def.variants)
		if err != nil {
			return nil, err
		}

		if e.GoBound() {
			if goTypes[e.GoType] {
				return nil, &DuplicateTypeError{Name: e.GoType.String()}
			}
			goTypes[e.GoType] = true
		}

		enums = append(enums, e)
	}

	return graphql.NewSchema(enums...), nil
}

// MustBuild builds a schema and panics if an error occurs.
func (s *Schema) MustBuild() *graphql.Schema {
	built, err := s.Build()
	if err != nil {
		panic(err)
	}
	return built
}
