package graphql

import (
	"fmt"
	"reflect"
)

// Type represents a GraphQL type. Enums are the only kind this package models.
type Type interface {
	String() string

	// isType() is a no-op used to tag the known values of Type, to prevent
	// arbitrary interface{} from implementing Type
	isType()
}

// Enum is a leaf value. It is the built descriptor of one GraphQL enum type:
// Values keep declaration order, which is also the introspection order.
//
// An Enum is immutable once returned by NewEnum and may be shared by any number
// of goroutines without synchronization.
type Enum struct {
	Type        string
	Description string
	Values      []*EnumValue

	// GoType is the dynamic Go type shared by every variant.
	GoType reflect.Type

	byName    map[string]*EnumValue
	byVariant map[interface{}]*EnumValue
}

func (e *Enum) isType() {}

func (e *Enum) String() string {
	return e.Type
}

// GoBound reports whether GoType identifies the enum. Only defined types do;
// variants of a predeclared type such as string or int are known by value and
// many enums may share that type.
func (e *Enum) GoBound() bool {
	return e.GoType.PkgPath() != ""
}

// EnumValue describes one value of an Enum.
type EnumValue struct {
	// Name is the effective name: either the explicit override or the
	// normalized identifier of the variant.
	Name        string
	Description string
	// DeprecationReason marks the value deprecated when non-empty.
	DeprecationReason string
	// Variant is the host value this name stands for.
	Variant interface{}
}

// IsDeprecated reports whether the value carries a deprecation reason.
func (v *EnumValue) IsDeprecated() bool {
	return v.DeprecationReason != ""
}

// NewEnum indexes values into an Enum. Values must be non-empty, share one
// comparable Go type and have unique names and variants; schemabuilder checks
// all of that and reports it as errors, so NewEnum panics instead.
func NewEnum(name, description string, values []*EnumValue) *Enum {
	if len(values) == 0 {
		panic(fmt.Sprintf("enum %s has no values", name))
	}

	e := &Enum{
		Type:        name,
		Description: description,
		Values:      values,
		GoType:      reflect.TypeOf(values[0].Variant),
		byName:      make(map[string]*EnumValue, len(values)),
		byVariant:   make(map[interface{}]*EnumValue, len(values)),
	}
	if e.GoType == nil || !e.GoType.Comparable() {
		panic(fmt.Sprintf("enum %s: variants must be non-nil comparable values", name))
	}

	for _, v := range values {
		if reflect.TypeOf(v.Variant) != e.GoType {
			panic(fmt.Sprintf("enum %s: mixed variant types %s and %T", name, e.GoType, v.Variant))
		}
		if _, ok := e.byName[v.Name]; ok {
			panic(fmt.Sprintf("enum %s: duplicate value %s", name, v.Name))
		}
		if _, ok := e.byVariant[v.Variant]; ok {
			panic(fmt.Sprintf("enum %s: duplicate variant %v", name, v.Variant))
		}
		e.byName[v.Name] = v
		e.byVariant[v.Variant] = v
	}
	return e
}

// Schema is the set of enum types built for one GraphQL schema.
type Schema struct {
	Enums []*Enum

	byName   map[string]*Enum
	byGoType map[reflect.Type]*Enum
}

// NewSchema indexes enums by type name and Go bound enums by Go type. Both
// must be unique.
func NewSchema(enums ...*Enum) *Schema {
	s := &Schema{
		Enums:    enums,
		byName:   make(map[string]*Enum, len(enums)),
		byGoType: make(map[reflect.Type]*Enum, len(enums)),
	}
	for _, e := range enums {
		if _, ok := s.byName[e.Type]; ok {
			panic(fmt.Sprintf("duplicate enum type %s", e.Type))
		}
		s.byName[e.Type] = e

		if !e.GoBound() {
			continue
		}
		if _, ok := s.byGoType[e.GoType]; ok {
			panic(fmt.Sprintf("Go type %s bound to more than one enum", e.GoType))
		}
		s.byGoType[e.GoType] = e
	}
	return s
}

// Enum returns the enum named name, or nil.
func (s *Schema) Enum(name string) *Enum {
	return s.byName[name]
}

// EnumFor returns the Go bound enum whose variants have Go type typ, or nil.
func (s *Schema) EnumFor(typ reflect.Type) *Enum {
	return s.byGoType[typ]
}

// Verify *Enum implements Type
var _ Type = &Enum{}
