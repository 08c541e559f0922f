// Package definitions reads enum declarations from YAML, for schemas whose
// enums are not backed by Go types. Each value is identified by its declared
// name.
//
//	enums:
//	  - name: Episode
//	    description: One of the films in the Star Wars Trilogy
//	    values:
//	      - name: NewHope
//	      - name: Jedi
//	        override: AAA
//	        deprecated: Watch EMPIRE
package definitions

import (
	"fmt"
	"io"

	"go.appointy.com/gqlenum/schemabuilder"
	"gopkg.in/yaml.v3"
)

type File struct {
	Enums []Enum `yaml:"enums"`
}

type Enum struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description,omitempty"`
	Values      []Value `yaml:"values"`
}

type Value struct {
	Name        string `yaml:"name"`
	Override    string `yaml:"override,omitempty"`
	Description string `yaml:"description,omitempty"`
	Deprecated  string `yaml:"deprecated,omitempty"`
}

// Load decodes a definitions file. Unknown keys are rejected.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &File{}, nil
		}
		return nil, fmt.Errorf("decoding definitions: %w", err)
	}
	return &f, nil
}

// Schema registers every declared enum in order.
func (f *File) Schema() *schemabuilder.Schema {
	schema := schemabuilder.NewSchema()
	for _, e := range f.Enums {
		variants := make([]schemabuilder.Variant, 0, len(e.Values))
		for _, v := range e.Values {
			variants = append(variants, schemabuilder.Variant{
				Value:       v.Name,
				Name:        v.Name,
				Override:    v.Override,
				Description: v.Description,
				Deprecation: v.Deprecated,
			})
		}
		schema.Enum(e.Name, variants, e.Description)
	}
	return schema
}
