package graphql

import (
	"fmt"
	"reflect"
)

// Encode returns the name of variant. It is the output coercion of the enum: the
// only failure is a value that is not one of the declared variants.
func (e *Enum) Encode(variant interface{}) (string, error) {
	if reflect.TypeOf(variant) != e.GoType {
		return "", &InvalidVariantValueError{TypeName: e.Type, Value: variant}
	}
	v, ok := e.byVariant[variant]
	if !ok {
		return "", &InvalidVariantValueError{TypeName: e.Type, Value: variant}
	}
	return v.Name, nil
}

// MustEncode is like Encode but panics if variant is not declared.
func (e *Enum) MustEncode(variant interface{}) string {
	name, err := e.Encode(variant)
	if err != nil {
		panic(err)
	}
	return name
}

// Decode returns the variant named name. Matching is exact and case-sensitive.
func (e *Enum) Decode(name string) (interface{}, error) {
	v, ok := e.byName[name]
	if !ok {
		return nil, &UnknownEnumValueError{TypeName: e.Type, Value: name}
	}
	return v.Variant, nil
}

// ParseValue coerces an input value for this enum. raw is either the name as
// found in a query literal or variable, or a variant that an engine already
// coerced. A plain string is always read as a name. A nil raw value is a
// GraphQL null and yields nil; nullability is up to the caller.
func (e *Enum) ParseValue(raw interface{}) (interface{}, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return e.Decode(v)
	}

	if reflect.TypeOf(raw) == e.GoType {
		if _, ok := e.byVariant[raw]; ok {
			return raw, nil
		}
		return nil, &InvalidVariantValueError{TypeName: e.Type, Value: raw}
	}
	return nil, &UnknownEnumValueError{TypeName: e.Type, Value: fmt.Sprint(raw)}
}

// Value returns the descriptor named name, or nil.
func (e *Enum) Value(name string) *EnumValue {
	return e.byName[name]
}

// Names returns the value names in declaration order.
func (e *Enum) Names() []string {
	names := make([]string, 0, len(e.Values))
	for _, v := range e.Values {
		names = append(names, v.Name)
	}
	return names
}
