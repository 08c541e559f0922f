// Package starwars serves the classic Star Wars schema on graphql-go with its
// Episode enum derived from a Go type.
package starwars

import (
	gographql "github.com/graphql-go/graphql"
	"go.appointy.com/gqlenum/bind/graphqlgo"
	"go.appointy.com/gqlenum/graphql"
	"go.appointy.com/gqlenum/schemabuilder"
)

type Episode int

const (
	NewHope Episode = iota + 4
	Empire
	Jedi
)

func (e Episode) String() string {
	switch e {
	case NewHope:
		return "NewHope"
	case Empire:
		return "Empire"
	case Jedi:
		return "Jedi"
	}
	return "Unknown"
}

type Character struct {
	Name      string
	AppearsIn []Episode
}

var characters = []Character{
	{Name: "Luke Skywalker", AppearsIn: []Episode{NewHope, Empire, Jedi}},
	{Name: "Han Solo", AppearsIn: []Episode{NewHope, Empire, Jedi}},
	{Name: "Wedge Antilles", AppearsIn: []Episode{NewHope}},
}

var heroes = map[Episode]string{
	NewHope: "Luke Skywalker",
	Empire:  "Luke Skywalker",
	Jedi:    "Han Solo",
}

// Enums registers the Episode enum.
func Enums() *schemabuilder.Schema {
	schema := schemabuilder.NewSchema()
	schema.Enum("Episode", []schemabuilder.Variant{
		{Value: NewHope, Description: "Released in 1977."},
		{Value: Empire, Description: "Released in 1980."},
		{Value: Jedi, Description: "Released in 1983."},
	}, "One of the films in the Star Wars Trilogy")
	return schema
}

type heroArgs struct {
	Episode *Episode
}

type charactersArgs struct {
	AppearsIn []Episode
}

// Schema builds the executable schema.
func Schema() (gographql.Schema, error) {
	enums, err := Enums().Build()
	if err != nil {
		return gographql.Schema{}, err
	}
	return newSchema(enums)
}

func newSchema(enums *graphql.Schema) (gographql.Schema, error) {
	episode := graphqlgo.Enums(enums)["Episode"]

	character := gographql.NewObject(gographql.ObjectConfig{
		Name: "Character",
		Fields: gographql.Fields{
			"name": &gographql.Field{
				Type: gographql.NewNonNull(gographql.String),
				Resolve: func(p gographql.ResolveParams) (interface{}, error) {
					return p.Source.(Character).Name, nil
				},
			},
			"appearsIn": &gographql.Field{
				Type: gographql.NewNonNull(gographql.NewList(gographql.NewNonNull(episode))),
				Resolve: func(p gographql.ResolveParams) (interface{}, error) {
					return p.Source.(Character).AppearsIn, nil
				},
			},
		},
	})

	query := gographql.NewObject(gographql.ObjectConfig{
		Name: "Query",
		Fields: gographql.Fields{
			"hero": &gographql.Field{
				Type: character,
				Args: gographql.FieldConfigArgument{
					"episode": &gographql.ArgumentConfig{Type: episode},
				},
				Resolve: func(p gographql.ResolveParams) (interface{}, error) {
					args, err := graphqlgo.Args[heroArgs](enums, p)
					if err != nil {
						return nil, err
					}
					name := heroes[Jedi]
					if args.Episode != nil {
						name = heroes[*args.Episode]
					}
					for _, c := range characters {
						if c.Name == name {
							return c, nil
						}
					}
					return nil, nil
				},
			},
			"characters": &gographql.Field{
				Type: gographql.NewList(character),
				Args: gographql.FieldConfigArgument{
					"appearsIn": &gographql.ArgumentConfig{Type: gographql.NewList(gographql.NewNonNull(episode))},
				},
				Resolve: func(p gographql.ResolveParams) (interface{}, error) {
					args, err := graphqlgo.Args[charactersArgs](enums, p)
					if err != nil {
						return nil, err
					}
					var out []Character
					for _, c := range characters {
						if appearsInAll(c, args.AppearsIn) {
							out = append(out, c)
						}
					}
					return out, nil
				},
			},
		},
	})

	return gographql.NewSchema(gographql.SchemaConfig{Query: query})
}

func appearsInAll(c Character, episodes []Episode) bool {
	for _, want := range episodes {
		found := false
		for _, e := range c.AppearsIn {
			if e == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
