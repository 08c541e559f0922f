// Package introspection exposes built enums in the shape of the GraphQL
// __Type and __EnumValue introspection types.
package introspection

import (
	"encoding/json"

	"go.appointy.com/gqlenum/graphql"
)

// TypeKind is the value of __Type.kind.
type TypeKind string

const (
	// ENUM is the kind of every type this package describes.
	ENUM TypeKind = "ENUM"
)

// EnumValue is an __EnumValue.
type EnumValue struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	IsDeprecated bool   `json:"isDeprecated"`
	// DeprecationReason is nil unless the value is deprecated, so playgrounds
	// do not show every value as deprecated.
	DeprecationReason *string `json:"deprecationReason"`
}

// Type is a __Type. Only enums are modeled.
type Type struct {
	Inner graphql.Type `json:"-"`
}

// EnumType returns the __Type of e.
func EnumType(e *graphql.Enum) Type {
	return Type{Inner: e}
}

// Kind returns __Type.kind.
func (t Type) Kind() TypeKind {
	switch t.Inner.(type) {
	case *graphql.Enum:
		return ENUM
	default:
		return ""
	}
}

// Name returns __Type.name.
func (t Type) Name() string {
	return t.Inner.String()
}

// Description returns __Type.description, empty when unset.
func (t Type) Description() string {
	if e, ok := t.Inner.(*graphql.Enum); ok {
		return e.Description
	}
	return ""
}

// EnumValues lists the values in declaration order. Deprecated values are
// left out unless includeDeprecated is set, matching enumValues(includeDeprecated:).
func (t Type) EnumValues(includeDeprecated bool) []EnumValue {
	e, ok := t.Inner.(*graphql.Enum)
	if !ok {
		return nil
	}

	enumVals := make([]EnumValue, 0, len(e.Values))
	for _, v := range e.Values {
		if v.IsDeprecated() && !includeDeprecated {
			continue
		}
		val := EnumValue{Name: v.Name, Description: v.Description}
		if v.IsDeprecated() {
			reason := v.DeprecationReason
			val.IsDeprecated = true
			val.DeprecationReason = &reason
		}
		enumVals = append(enumVals, val)
	}
	return enumVals
}

type fullType struct {
	Kind        TypeKind    `json:"kind"`
	Name        string      `json:"name"`
	Description *string     `json:"description"`
	EnumValues  []EnumValue `json:"enumValues"`
}

// MarshalJSON renders the type the way an engine answers IntrospectionQuery.
func (t Type) MarshalJSON() ([]byte, error) {
	out := fullType{Kind: t.Kind(), Name: t.Name(), EnumValues: t.EnumValues(true)}
	if d := t.Description(); d != "" {
		out.Description = &d
	}
	return json.Marshal(out)
}

// SchemaInfo is the enum part of __schema.
type SchemaInfo struct {
	Types []Type `json:"types"`
}

// Schema returns the enum types of s in registration order.
func Schema(s *graphql.Schema) SchemaInfo {
	types := make([]Type, 0, len(s.Enums))
	for _, e := range s.Enums {
		types = append(types, EnumType(e))
	}
	return SchemaInfo{Types: types}
}

// LookupType resolves __type(name:). It returns nil for unknown names.
func LookupType(s *graphql.Schema, name string) *Type {
	e := s.Enum(name)
	if e == nil {
		return nil
	}
	t := EnumType(e)
	return &t
}

// ComputeSchemaJSON returns the result of executing IntrospectionQuery against
// s.
func ComputeSchemaJSON(s *graphql.Schema) ([]byte, error) {
	value := map[string]interface{}{
		"__schema": Schema(s),
	}
	return json.MarshalIndent(value, "", "  ")
}
