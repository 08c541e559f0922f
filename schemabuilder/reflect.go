package schemabuilder

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
)

// graphQLFieldInfo contains basic struct field information related to GraphQL.
type graphQLFieldInfo struct {
	// Skipped indicates that this field should not be included in GraphQL.
	Skipped bool

	// Name is the GraphQL argument or input field name for this field.
	Name string

	// OptionalInputField indicates that the field may be omitted even though
	// its Go type is not a pointer.
	OptionalInputField bool
}

// parseGraphQLFieldInfo parses a struct field and returns a struct with the parsed information about the field (tag info, name, etc).
// The graphql tag wins over the json tag, e.g. `graphql:"episode,optional"`.
func parseGraphQLFieldInfo(field reflect.StructField) (*graphQLFieldInfo, error) {
	if field.PkgPath != "" { //If the field of struct is not exported, then it is not exposed
		return &graphQLFieldInfo{Skipped: true}, nil
	}

	tag := field.Tag.Get("graphql")
	if tag == "" {
		tag = field.Tag.Get("json")
	}
	tags := strings.Split(tag, ",")
	name := strings.TrimSpace(tags[0])
	if name == "-" {
		return &graphQLFieldInfo{Skipped: true}, nil
	}

	if name == "" {
		name = makeGraphql(field.Name)
	}

	var optional bool
	for _, opt := range tags[1:] {
		switch opt = strings.TrimSpace(opt); opt {
		case "optional":
			optional = true
		case "omitempty", "":
			// json options carry no meaning for arguments.
		default:
			return nil, fmt.Errorf("field %s: unknown tag option %q", field.Name, opt)
		}
	}

	return &graphQLFieldInfo{Name: name, OptionalInputField: optional}, nil
}

// makeGraphql converts a field name "MyField" into a graphQL field name "myField".
func makeGraphql(s string) string {
	return strcase.ToLowerCamel(s)
}
