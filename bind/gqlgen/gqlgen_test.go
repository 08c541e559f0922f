package gqlgen_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.appointy.com/gqlenum/bind/gqlgen"
	"go.appointy.com/gqlenum/graphql"
	"go.appointy.com/gqlenum/schemabuilder"
)

type Side string

const (
	Light Side = "light"
	Dark  Side = "dark"
)

func sideEnum(t *testing.T) *graphql.Enum {
	e, err := schemabuilder.BuildEnum("Side", "", []schemabuilder.Variant{
		{Value: Light, Name: "LightSide"},
		{Value: Dark, Name: "DarkSide"},
	})
	require.NoError(t, err)
	return e
}

func TestMarshal(t *testing.T) {
	e := sideEnum(t)

	var buf bytes.Buffer
	require.NoError(t, gqlgen.Marshal(e, Dark).MarshalGQLContext(context.Background(), &buf))
	require.Equal(t, `"DARK_SIDE"`, buf.String())

	buf.Reset()
	err := gqlgen.Marshal(e, Side("grey")).MarshalGQLContext(context.Background(), &buf)
	var invalid *graphql.InvalidVariantValueError
	require.True(t, errors.As(err, &invalid))
	require.Empty(t, buf.String())
}

func TestUnmarshal(t *testing.T) {
	e := sideEnum(t)

	v, err := gqlgen.Unmarshal(e, "LIGHT_SIDE")
	require.NoError(t, err)
	require.Equal(t, Light, v)

	v, err = gqlgen.Unmarshal(e, Dark)
	require.NoError(t, err)
	require.Equal(t, Dark, v)

	_, err = gqlgen.Unmarshal(e, "light")
	var unknown *graphql.UnknownEnumValueError
	require.True(t, errors.As(err, &unknown))

	_, err = gqlgen.Unmarshal(e, nil)
	require.Error(t, err)
}

func TestCodec(t *testing.T) {
	e := sideEnum(t)

	codec, err := gqlgen.NewCodec[Side](e)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, codec.Marshal(Light).MarshalGQLContext(context.Background(), &buf))
	require.Equal(t, `"LIGHT_SIDE"`, buf.String())

	side, err := codec.Unmarshal("DARK_SIDE")
	require.NoError(t, err)
	require.Equal(t, Dark, side)

	side, err = codec.Unmarshal("GREY")
	require.Error(t, err)
	require.Equal(t, Side(""), side)

	_, err = gqlgen.NewCodec[int](e)
	require.Error(t, err)
}
