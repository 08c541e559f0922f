package graphql_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.appointy.com/gqlenum/graphql"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type color int

const (
	red color = iota
	green
	blue
)

func colorEnum() *graphql.Enum {
	return graphql.NewEnum("Color", "Primary colors.", []*graphql.EnumValue{
		{Name: "RED", Variant: red},
		{Name: "GREEN", Variant: green, Description: "Not a pigment primary."},
		{Name: "BLUE", Variant: blue, DeprecationReason: "Use GREEN"},
	})
}

func TestEnumEncodeDecode(t *testing.T) {
	e := colorEnum()

	require.Equal(t, "Color", e.String())
	require.Equal(t, []string{"RED", "GREEN", "BLUE"}, e.Names())

	for _, v := range e.Values {
		name, err := e.Encode(v.Variant)
		require.NoError(t, err)
		require.Equal(t, v.Name, name)

		variant, err := e.Decode(name)
		require.NoError(t, err)
		require.Equal(t, v.Variant, variant)
	}

	require.True(t, e.Value("BLUE").IsDeprecated())
	require.False(t, e.Value("RED").IsDeprecated())
	require.Nil(t, e.Value("PURPLE"))
}

func TestEnumDecodeUnknown(t *testing.T) {
	e := colorEnum()

	_, err := e.Decode("red")
	var unknown *graphql.UnknownEnumValueError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "red", unknown.Value)
	require.Equal(t, "Color", unknown.TypeName)
	require.Equal(t, `enumeration type "Color" does not contain the value "red"`, err.Error())
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Len(t, st.Details(), 1)
	br, ok := st.Details()[0].(*errdetails.BadRequest)
	require.True(t, ok, "got %T", st.Details()[0])
	require.Len(t, br.GetFieldViolations(), 1)
	require.Equal(t, "Color", br.GetFieldViolations()[0].GetField())
}

func TestEnumEncodeForeignValue(t *testing.T) {
	e := colorEnum()

	_, err := e.Encode(color(42))
	var invalid *graphql.InvalidVariantValueError
	require.True(t, errors.As(err, &invalid))

	_, err = e.Encode(0)
	require.True(t, errors.As(err, &invalid), "plain int is not a color")

	_, err = e.Encode(nil)
	require.Error(t, err)

	require.Panics(t, func() { e.MustEncode(color(42)) })
	require.Equal(t, "GREEN", e.MustEncode(green))
}

func TestEnumParseValue(t *testing.T) {
	e := colorEnum()

	v, err := e.ParseValue("GREEN")
	require.NoError(t, err)
	require.Equal(t, green, v)

	v, err = e.ParseValue(blue)
	require.NoError(t, err)
	require.Equal(t, blue, v)

	v, err = e.ParseValue(nil)
	require.NoError(t, err)
	require.Nil(t, v)

	_, err = e.ParseValue(color(9))
	require.Error(t, err)

	_, err = e.ParseValue([]interface{}{"RED"})
	var unknown *graphql.UnknownEnumValueError
	require.True(t, errors.As(err, &unknown))
}

func TestStringVariantsDecodeByName(t *testing.T) {
	e := graphql.NewEnum("Side", "", []*graphql.EnumValue{
		{Name: "LIGHT", Variant: "Light"},
		{Name: "DARK", Variant: "Dark"},
	})

	v, err := e.ParseValue("DARK")
	require.NoError(t, err)
	require.Equal(t, "Dark", v)

	_, err = e.ParseValue("Dark")
	require.Error(t, err, "plain strings are names, not variants")
}

func TestNewEnumPanics(t *testing.T) {
	require.Panics(t, func() { graphql.NewEnum("Empty", "", nil) })
	require.Panics(t, func() {
		graphql.NewEnum("Dup", "", []*graphql.EnumValue{{Name: "A", Variant: red}, {Name: "A", Variant: green}})
	})
	require.Panics(t, func() {
		graphql.NewEnum("DupVariant", "", []*graphql.EnumValue{{Name: "A", Variant: red}, {Name: "B", Variant: red}})
	})
	require.Panics(t, func() {
		graphql.NewEnum("Mixed", "", []*graphql.EnumValue{{Name: "A", Variant: red}, {Name: "B", Variant: 1}})
	})
	require.Panics(t, func() {
		graphql.NewEnum("Slice", "", []*graphql.EnumValue{{Name: "A", Variant: []int{1}}})
	})
}

func TestSchemaLookup(t *testing.T) {
	e := colorEnum()
	s := graphql.NewSchema(e)

	require.Same(t, e, s.Enum("Color"))
	require.Same(t, e, s.EnumFor(e.GoType))
	require.Nil(t, s.Enum("Episode"))

	require.Panics(t, func() { graphql.NewSchema(e, colorEnum()) })
}

func TestEnumConcurrentReads(t *testing.T) {
	e := colorEnum()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				v := e.Values[j%len(e.Values)]
				name, err := e.Encode(v.Variant)
				if err != nil || name != v.Name {
					t.Errorf("encode %v: %q %v", v.Variant, name, err)
					return
				}
				if _, err := e.Decode(name); err != nil {
					t.Errorf("decode %s: %v", name, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
