package graphqlgo_test

import (
	"sort"
	"testing"

	gographql "github.com/graphql-go/graphql"
	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/require"
	"go.appointy.com/gqlenum/bind/graphqlgo"
	"go.appointy.com/gqlenum/graphql"
	"go.appointy.com/gqlenum/introspection"
	"go.appointy.com/gqlenum/schemabuilder"
)

type Episode int

const (
	NewHope Episode = iota + 4
	Empire
	Jedi
)

type heroArgs struct {
	Episode *Episode
}

func makeSchema(t *testing.T) (*graphql.Schema, gographql.Schema) {
	builder := schemabuilder.NewSchema()
	builder.Enum("Episode", []schemabuilder.Variant{
		{Value: NewHope, Name: "NewHope", Description: "Released in 1977."},
		{Value: Empire, Name: "Empire", Description: "Released in 1980."},
		{Value: Jedi, Name: "Jedi", Override: "AAA", Deprecation: "Watch EMPIRE"},
	}, "One of the films in the Star Wars Trilogy")
	enums := builder.MustBuild()

	episode := graphqlgo.Enum(enums.Enum("Episode"))
	query := gographql.NewObject(gographql.ObjectConfig{
		Name: "Query",
		Fields: gographql.Fields{
			"hero": &gographql.Field{
				Type: episode,
				Args: gographql.FieldConfigArgument{
					"episode": &gographql.ArgumentConfig{Type: episode},
				},
				Resolve: func(p gographql.ResolveParams) (interface{}, error) {
					args, err := graphqlgo.Args[heroArgs](enums, p)
					if err != nil {
						return nil, err
					}
					if args.Episode == nil {
						return Empire, nil
					}
					return *args.Episode, nil
				},
			},
			"favorite": &gographql.Field{
				Type: episode,
				Resolve: func(p gographql.ResolveParams) (interface{}, error) {
					return Jedi, nil
				},
			},
		},
	})

	schema, err := gographql.NewSchema(gographql.SchemaConfig{Query: query})
	require.NoError(t, err)
	return enums, schema
}

func TestEngineCoercion(t *testing.T) {
	_, schema := makeSchema(t)

	cases := []struct {
		query     string
		variables map[string]interface{}
		expected  map[string]interface{}
	}{
		{
			query:    `{ favorite }`,
			expected: map[string]interface{}{"favorite": "AAA"},
		},
		{
			query:    `{ hero }`,
			expected: map[string]interface{}{"hero": "EMPIRE"},
		},
		{
			query:    `{ hero(episode: NEW_HOPE) }`,
			expected: map[string]interface{}{"hero": "NEW_HOPE"},
		},
		{
			query:     `query Hero($ep: Episode) { hero(episode: $ep) }`,
			variables: map[string]interface{}{"ep": "AAA"},
			expected:  map[string]interface{}{"hero": "AAA"},
		},
	}

	for _, c := range cases {
		result := gographql.Do(gographql.Params{
			Schema:         schema,
			RequestString:  c.query,
			VariableValues: c.variables,
		})
		require.Empty(t, result.Errors, c.query)
		if diff := pretty.Compare(result.Data, c.expected); diff != "" {
			t.Errorf("%s: expected response to match, but received %s", c.query, diff)
		}
	}
}

func TestEngineRejectsUnknownValue(t *testing.T) {
	_, schema := makeSchema(t)

	result := gographql.Do(gographql.Params{
		Schema:        schema,
		RequestString: `{ hero(episode: JEDI) }`,
	})
	require.NotEmpty(t, result.Errors)
	require.Contains(t, result.Errors[0].Message, "JEDI")

	result = gographql.Do(gographql.Params{
		Schema:         schema,
		RequestString:  `query Hero($ep: Episode) { hero(episode: $ep) }`,
		VariableValues: map[string]interface{}{"ep": "Jedi"},
	})
	require.NotEmpty(t, result.Errors)
}

func TestEngineIntrospection(t *testing.T) {
	enums, schema := makeSchema(t)

	result := gographql.Do(gographql.Params{
		Schema:         schema,
		RequestString:  introspection.TypeQuery,
		VariableValues: map[string]interface{}{"name": "Episode"},
	})
	require.Empty(t, result.Errors)

	typ := result.Data.(map[string]interface{})["__type"].(map[string]interface{})
	require.Equal(t, "ENUM", typ["kind"])
	require.Equal(t, "One of the films in the Star Wars Trilogy", typ["description"])

	got := map[string]interface{}{}
	for _, v := range typ["enumValues"].([]interface{}) {
		value := v.(map[string]interface{})
		got[value["name"].(string)] = value["isDeprecated"]
	}
	expected := map[string]interface{}{}
	for _, v := range introspection.LookupType(enums, "Episode").EnumValues(true) {
		expected[v.Name] = v.IsDeprecated
	}
	if diff := pretty.Compare(got, expected); diff != "" {
		t.Errorf("expected engine introspection to match, but received %s", diff)
	}
}

func TestEnums(t *testing.T) {
	enums, _ := makeSchema(t)
	bound := graphqlgo.Enums(enums)
	require.Len(t, bound, 1)

	var names []string
	for _, v := range bound["Episode"].Values() {
		names = append(names, v.Name)
	}
	sort.Strings(names)
	require.Equal(t, []string{"AAA", "EMPIRE", "NEW_HOPE"}, names)
}
