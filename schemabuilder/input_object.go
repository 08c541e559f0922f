package schemabuilder

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"go.appointy.com/gqlenum/graphql"
	"go.appointy.com/gqlenum/jerrors"
)

// argParser fills dest from a JSON-like value as found in query literals and
// variables.
type argParser struct {
	FromJSON func(value interface{}, dest reflect.Value) error
	Type     reflect.Type
}

type argField struct {
	field    reflect.StructField
	parser   *argParser
	required bool
}

// ArgParser parses argument maps into an args struct whose enum typed fields are
// coerced with the enums of a schema. For example:
//
//	type heroArgs struct {
//		Episode *Episode
//		Filter  struct {
//			Exclude []Episode
//		} `graphql:",optional"`
//	}
//
// Parsers are built once and are safe for concurrent use.
type ArgParser struct {
	parser *argParser
}

// NewArgParser builds a parser for the struct type typ.
func NewArgParser(schema *graphql.Schema, typ reflect.Type) (*ArgParser, error) {
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct but received type %s", typ)
	}

	b := &parserBuilder{schema: schema, typeCache: make(map[reflect.Type]*argParser)}
	parser, err := b.generateObjectParser(typ)
	if err != nil {
		return nil, err
	}
	return &ArgParser{parser: parser}, nil
}

// Parse returns a new value of the parser's struct type filled from args.
// Every error carries the path of the argument that caused it.
func (p *ArgParser) Parse(args map[string]interface{}) (interface{}, error) {
	if args == nil {
		args = map[string]interface{}{}
	}
	dest := reflect.New(p.parser.Type).Elem()
	if err := p.parser.FromJSON(args, dest); err != nil {
		return nil, err
	}
	return dest.Interface(), nil
}

// Args is an ArgParser for the args struct T.
type Args[T any] struct {
	parser *ArgParser
}

// NewArgs builds a parser for T.
func NewArgs[T any](schema *graphql.Schema) (*Args[T], error) {
	p, err := NewArgParser(schema, reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return &Args[T]{parser: p}, nil
}

// Parse fills a T from args.
func (a *Args[T]) Parse(args map[string]interface{}) (T, error) {
	var zero T
	v, err := a.parser.Parse(args)
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// ParseArgs builds a parser for T and parses args with it. Callers parsing on
// every request should keep the result of NewArgs instead.
func ParseArgs[T any](schema *graphql.Schema, args map[string]interface{}) (T, error) {
	a, err := NewArgs[T](schema)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.Parse(args)
}

type parserBuilder struct {
	schema    *graphql.Schema
	typeCache map[reflect.Type]*argParser
}

// generateObjectParser generates the parser for typ, unwrapping pointers.
func (b *parserBuilder) generateObjectParser(typ reflect.Type) (*argParser, error) {
	if typ.Kind() == reflect.Ptr {
		parser, err := b.generateObjectParserInner(typ.Elem())
		if err != nil {
			return nil, err
		}
		return wrapPtrParser(parser), nil
	}

	return b.generateObjectParserInner(typ)
}

// generateObjectParserInner generates the parser without having to worry about pointer.
func (b *parserBuilder) generateObjectParserInner(typ reflect.Type) (*argParser, error) {
	if e := b.schema.EnumFor(typ); e != nil {
		return getEnumArgParser(e), nil
	}

	if parser, ok := getScalarArgParser(typ); ok {
		return parser, nil
	}

	switch typ.Kind() {
	case reflect.Slice:
		return b.generateSliceParser(typ)
	case reflect.Struct:
		return b.generateInputObjectParser(typ)
	default:
		return nil, fmt.Errorf("bad arg type %s: should be enum, scalar, struct, pointer, or a slice", typ)
	}
}

// generateInputObjectParser generates the parser for each field of an args or
// input object struct.
func (b *parserBuilder) generateInputObjectParser(typ reflect.Type) (*argParser, error) {
	if cached, ok := b.typeCache[typ]; ok {
		return cached, nil
	}

	fields := make(map[string]argField)
	var order []string
	parser := &argParser{Type: typ}

	// Cache type information ahead of time to catch self-reference
	b.typeCache[typ] = parser

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.Anonymous {
			return nil, fmt.Errorf("bad arg type %s: anonymous fields not supported", typ)
		}

		fieldInfo, err := parseGraphQLFieldInfo(field)
		if err != nil {
			return nil, fmt.Errorf("bad type %s: %s", typ, err.Error())
		}
		if fieldInfo.Skipped {
			continue
		}

		if _, ok := fields[fieldInfo.Name]; ok {
			return nil, fmt.Errorf("bad arg type %s: duplicate field %s", typ, fieldInfo.Name)
		}

		fieldParser, err := b.generateObjectParser(field.Type)
		if err != nil {
			return nil, err
		}

		kind := field.Type.Kind()
		order = append(order, fieldInfo.Name)
		fields[fieldInfo.Name] = argField{
			field:    field,
			parser:   fieldParser,
			required: !fieldInfo.OptionalInputField && kind != reflect.Ptr && kind != reflect.Slice,
		}
	}

	parser.FromJSON = func(value interface{}, dest reflect.Value) error {
		asMap, ok := value.(map[string]interface{})
		if !ok {
			return errors.New("not an object")
		}

		for name := range asMap {
			if _, ok := fields[name]; !ok {
				return jerrors.WithPath(errors.New("unknown argument"), name)
			}
		}

		for _, name := range order {
			field := fields[name]
			value, ok := asMap[name]
			if !ok || value == nil {
				if field.required {
					return jerrors.WithPath(errors.New("required value not provided"), name)
				}
				continue
			}

			fieldDest := dest.FieldByIndex(field.field.Index)
			if err := field.parser.FromJSON(value, fieldDest); err != nil {
				return jerrors.WithPath(err, name)
			}
		}
		return nil
	}

	return parser, nil
}

// generateSliceParser generates the parser for a slice input by generating the parser for underlying object and using it to fill the values in list.
// A single value where a list is expected is read as a list of one.
func (b *parserBuilder) generateSliceParser(typ reflect.Type) (*argParser, error) {
	inner, err := b.generateObjectParser(typ.Elem())
	if err != nil {
		return nil, err
	}

	return &argParser{
		FromJSON: func(value interface{}, dest reflect.Value) error {
			asSlice, ok := value.([]interface{})
			if !ok {
				asSlice = []interface{}{value}
			}

			sourceSlice := reflect.MakeSlice(typ, len(asSlice), len(asSlice))
			for i, value := range asSlice {
				if value == nil && typ.Elem().Kind() != reflect.Ptr {
					return jerrors.WithPath(errors.New("null list element"), strconv.Itoa(i))
				}
				if err := inner.FromJSON(value, sourceSlice.Index(i)); err != nil {
					return jerrors.WithPath(err, strconv.Itoa(i))
				}
			}

			dest.Set(sourceSlice)
			return nil
		},
		Type: typ,
	}, nil
}

// getEnumArgParser coerces names (or already coerced variants) through e.
func getEnumArgParser(e *graphql.Enum) *argParser {
	return &argParser{
		FromJSON: func(value interface{}, dest reflect.Value) error {
			v, err := e.ParseValue(value)
			if err != nil {
				return err
			}
			if v == nil {
				return fmt.Errorf("expected a value of enumeration type %q", e.Type)
			}
			dest.Set(reflect.ValueOf(v))
			return nil
		},
		Type: e.GoType,
	}
}

// wrapPtrParser leaves the pointer nil for null values.
func wrapPtrParser(inner *argParser) *argParser {
	return &argParser{
		FromJSON: func(value interface{}, dest reflect.Value) error {
			if value == nil {
				dest.Set(reflect.Zero(dest.Type()))
				return nil
			}

			ptr := reflect.New(inner.Type)
			if err := inner.FromJSON(value, ptr.Elem()); err != nil {
				return err
			}
			dest.Set(ptr)
			return nil
		},
		Type: reflect.PtrTo(inner.Type),
	}
}

// getScalarArgParser returns a parser for the built-in scalar kinds.
func getScalarArgParser(typ reflect.Type) (*argParser, bool) {
	var from func(value interface{}, dest reflect.Value) error

	switch typ.Kind() {
	case reflect.String:
		from = func(value interface{}, dest reflect.Value) error {
			s, ok := value.(string)
			if !ok {
				return errors.New("not a string")
			}
			dest.SetString(s)
			return nil
		}
	case reflect.Bool:
		from = func(value interface{}, dest reflect.Value) error {
			v, ok := value.(bool)
			if !ok {
				return errors.New("not a bool")
			}
			dest.SetBool(v)
			return nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		from = func(value interface{}, dest reflect.Value) error {
			f, err := asNumber(value)
			if err != nil {
				return err
			}
			if f != math.Trunc(f) || !fitsInt(f, typ.Bits()) {
				return fmt.Errorf("%v is not a valid %s", value, typ)
			}
			dest.SetInt(int64(f))
			return nil
		}
	case reflect.Float32, reflect.Float64:
		from = func(value interface{}, dest reflect.Value) error {
			f, err := asNumber(value)
			if err != nil {
				return err
			}
			if dest.OverflowFloat(f) {
				return fmt.Errorf("%v is not a valid %s", value, typ)
			}
			dest.SetFloat(f)
			return nil
		}
	default:
		return nil, false
	}

	return &argParser{FromJSON: from, Type: typ}, true
}

// fitsInt reports whether the integral float f is within the range of a
// signed integer of the given size. It must hold before f is converted.
func fitsInt(f float64, bits int) bool {
	limit := math.Ldexp(1, bits-1)
	return f >= -limit && f < limit
}

func asNumber(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	default:
		return 0, errors.New("not a number")
	}
}
