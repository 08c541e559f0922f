// Package protoenum derives GraphQL enums from protobuf enum types. Each
// declared proto value becomes a variant whose identity is the generated Go
// enum value, so resolvers can return protobuf fields unchanged.
package protoenum

import (
	"strings"

	"github.com/iancoleman/strcase"
	"go.appointy.com/gqlenum/graphql"
	"go.appointy.com/gqlenum/schemabuilder"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

// DeprecationReason is used for proto values marked deprecated.
const DeprecationReason = "No longer supported"

type options struct {
	typeName    string
	description string
	trimPrefix  bool
	skipZero    bool
}

// Option configures Variants and Build.
type Option func(*options)

// WithTypeName sets the GraphQL type name.
func WithTypeName(name string) Option {
	return func(o *options) { o.typeName = name }
}

// WithDescription sets the type description.
func WithDescription(description string) Option {
	return func(o *options) { o.description = description }
}

// TrimPrefix strips the conventional ENUM_NAME_ prefix from value names, so
// LABEL_OPTIONAL of enum Label is named OPTIONAL.
func TrimPrefix() Option {
	return func(o *options) { o.trimPrefix = true }
}

// SkipZero leaves out the value numbered 0, usually an UNSPECIFIED placeholder.
func SkipZero() Option {
	return func(o *options) { o.skipZero = true }
}

// TypeName returns the default GraphQL type name of an enum: its full name
// relative to the proto package, camel cased. google.protobuf.FieldDescriptorProto.Label
// becomes FieldDescriptorProtoLabel.
func TypeName(ed protoreflect.EnumDescriptor) string {
	name := string(ed.FullName())
	if pkg := string(ed.ParentFile().Package()); pkg != "" {
		name = strings.TrimPrefix(name, pkg+".")
	}
	return strcase.ToCamel(strings.ReplaceAll(name, ".", "_"))
}

// Variants returns one variant per value declared by the enum type of e, in
// declaration order. Aliases (values sharing a number) keep the first name.
func Variants(e protoreflect.Enum, opts ...Option) []schemabuilder.Variant {
	o := collect(opts)
	ed := e.Descriptor()
	prefix := strcase.ToScreamingSnake(string(ed.Name())) + "_"
	locations := ed.ParentFile().SourceLocations()

	seen := make(map[protoreflect.EnumNumber]bool)
	values := ed.Values()
	variants := make([]schemabuilder.Variant, 0, values.Len())
	for i := 0; i < values.Len(); i++ {
		vd := values.Get(i)
		if seen[vd.Number()] || (o.skipZero && vd.Number() == 0) {
			continue
		}
		seen[vd.Number()] = true

		name := string(vd.Name())
		if o.trimPrefix && strings.HasPrefix(name, prefix) && len(name) > len(prefix) {
			name = strings.TrimPrefix(name, prefix)
		}

		variant := schemabuilder.Variant{
			Value:       e.Type().New(vd.Number()),
			Name:        name,
			Description: strings.TrimSpace(locations.ByDescriptor(vd).LeadingComments),
		}
		if opts, ok := vd.Options().(*descriptorpb.EnumValueOptions); ok && opts.GetDeprecated() {
			variant.Deprecation = DeprecationReason
		}
		variants = append(variants, variant)
	}
	return variants
}

// Build builds the GraphQL enum of e's type.
func Build(e protoreflect.Enum, opts ...Option) (*graphql.Enum, error) {
	o := collect(opts)
	typeName := o.typeName
	if typeName == "" {
		typeName = TypeName(e.Descriptor())
	}
	return schemabuilder.BuildEnum(typeName, o.description, Variants(e, opts...))
}

// Register adds the enum of e's type to schema.
func Register(schema *schemabuilder.Schema, e protoreflect.Enum, opts ...Option) {
	o := collect(opts)
	typeName := o.typeName
	if typeName == "" {
		typeName = TypeName(e.Descriptor())
	}
	schema.Enum(typeName, Variants(e, opts...), o.description)
}

func collect(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
