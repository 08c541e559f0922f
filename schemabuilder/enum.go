package schemabuilder

import (
	"fmt"
	"reflect"

	"go.appointy.com/gqlenum/graphql"
	"go.appointy.com/gqlenum/naming"
)

// Variant declares one value of an enum.
//
// For example, the Episode enum of the Star Wars schema, with JEDI renamed:
//
//	variants := []schemabuilder.Variant{
//		{Value: NewHope, Name: "NewHope", Description: "Released in 1977."},
//		{Value: Empire, Name: "Empire", Description: "Released in 1980."},
//		{Value: Jedi, Name: "Jedi", Override: "AAA", Description: "Released in 1983."},
//	}
type Variant struct {
	// Value is the host value of the variant. It must be comparable and all
	// variants of an enum must share its Go type.
	Value interface{}

	// Name is the declared identifier, normalized into the value name. When
	// empty it is taken from Value's String method or, for string kinds, from
	// Value itself.
	Name string

	// Override replaces the normalized name entirely. It is used verbatim.
	Override string

	Description string

	// Deprecation marks the value deprecated with the given reason.
	Deprecation string
}

func (v Variant) declaredName() string {
	if v.Name != "" {
		return v.Name
	}
	if s, ok := v.Value.(fmt.Stringer); ok {
		return s.String()
	}
	if rv := reflect.ValueOf(v.Value); rv.Kind() == reflect.String {
		return rv.String()
	}
	return ""
}

func (v Variant) label() string {
	if name := v.declaredName(); name != "" {
		return name
	}
	return fmt.Sprintf("%v", v.Value)
}

// EffectiveName returns the name the variant is known by in GraphQL.
func (v Variant) EffectiveName() string {
	if v.Override != "" {
		return v.Override
	}
	return naming.Normalize(v.declaredName())
}

// BuildEnum builds the descriptor of one enum type. Values keep the order of
// variants. Nothing is returned unless every variant is valid and every
// effective name is unique.
func BuildEnum(typeName, description string, variants []Variant) (*graphql.Enum, error) {
	if typeName == "" {
		return nil, ErrMissingTypeName
	}
	if len(variants) == 0 {
		return nil, &EmptyEnumError{TypeName: typeName}
	}

	goType := reflect.TypeOf(variants[0].Value)
	values := make([]*graphql.EnumValue, 0, len(variants))
	seenNames := make(map[string]int, len(variants))
	seenValues := make(map[interface{}]int, len(variants))

	for i, v := range variants {
		switch typ := reflect.TypeOf(v.Value); {
		case typ == nil:
			return nil, &InvalidVariantError{TypeName: typeName, Index: i, Reason: "value is nil"}
		case !typ.Comparable():
			return nil, &InvalidVariantError{TypeName: typeName, Index: i, Reason: fmt.Sprintf("%s is not comparable", typ)}
		case typ != goType:
			return nil, &InvalidVariantError{TypeName: typeName, Index: i, Reason: fmt.Sprintf("value of type %s, want %s", typ, goType)}
		}

		if j, ok := seenValues[v.Value]; ok {
			return nil, &InvalidVariantError{TypeName: typeName, Index: i, Reason: fmt.Sprintf("value %v already declared by variant %d", v.Value, j)}
		}
		seenValues[v.Value] = i

		name := v.EffectiveName()
		if name == "" {
			return nil, &InvalidVariantError{TypeName: typeName, Index: i, Reason: "no name can be derived from the value"}
		}
		if j, ok := seenNames[name]; ok {
			return nil, &DuplicateValueNameError{TypeName: typeName, Name: name, First: variants[j], Second: v}
		}
		seenNames[name] = i

		values = append(values, &graphql.EnumValue{
			Name:              name,
			Description:       v.Description,
			DeprecationReason: v.Deprecation,
			Variant:           v.Value,
		})
	}

	return graphql.NewEnum(typeName, description, values), nil
}
