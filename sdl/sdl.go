// Package sdl renders built enums as GraphQL schema definition language.
package sdl

import (
	"bytes"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"go.appointy.com/gqlenum/graphql"
)

// Definition returns the enum type definition of e.
func Definition(e *graphql.Enum) *ast.Definition {
	def := &ast.Definition{
		Kind:        ast.Enum,
		Description: e.Description,
		Name:        e.Type,
	}
	for _, v := range e.Values {
		value := &ast.EnumValueDefinition{
			Description: v.Description,
			Name:        v.Name,
		}
		if v.IsDeprecated() {
			value.Directives = ast.DirectiveList{deprecated(v.DeprecationReason)}
		}
		def.EnumValues = append(def.EnumValues, value)
	}
	return def
}

func deprecated(reason string) *ast.Directive {
	return &ast.Directive{
		Name: "deprecated",
		Arguments: ast.ArgumentList{
			&ast.Argument{
				Name:  "reason",
				Value: &ast.Value{Kind: ast.StringValue, Raw: reason},
			},
		},
		Location: ast.LocationEnumValue,
	}
}

// Document returns a schema document holding every enum of s in registration
// order.
func Document(s *graphql.Schema) *ast.SchemaDocument {
	doc := &ast.SchemaDocument{}
	for _, e := range s.Enums {
		doc.Definitions = append(doc.Definitions, Definition(e))
	}
	return doc
}

// Render formats Document(s).
func Render(s *graphql.Schema) string {
	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatSchemaDocument(Document(s))
	return buf.String()
}

// Validate loads source as a schema, reporting syntax and type system errors.
func Validate(source string) error {
	_, err := gqlparser.LoadSchema(&ast.Source{Name: "enums.graphql", Input: source})
	if err != nil {
		return err
	}
	return nil
}
