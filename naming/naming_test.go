package naming_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"go.appointy.com/gqlenum/naming"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"NewHope", "NEW_HOPE"},
		{"Empire", "EMPIRE"},
		{"Jedi", "JEDI"},
		{"AAA", "AAA"},
		{"newHope", "NEW_HOPE"},
		{"new_hope", "NEW_HOPE"},
		{"new-hope", "NEW_HOPE"},
		{"NEW_HOPE", "NEW_HOPE"},
		{"Episode4Remaster", "EPISODE4_REMASTER"},
		{"v2alpha", "V2ALPHA"},
		{"Episode4th", "EPISODE4TH"},
		{"A2b", "A2B"},
		{"A2B", "A2B"},
		{"Version2Beta", "VERSION2_BETA"},
		{"new hope", "NEW_HOPE"},
		{"HTTPServer", "HTTPSERVER"},
		{"__Leading__Trailing__", "LEADING_TRAILING"},
		{"x", "X"},
		{"", ""},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			require.Equal(t, c.want, naming.Normalize(c.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	r := rand.New(rand.NewSource(1977))

	for i := 0; i < 2000; i++ {
		b := make([]byte, 1+r.Intn(16))
		for j := range b {
			b[j] = alphabet[r.Intn(len(alphabet))]
		}
		once := naming.Normalize(string(b))
		require.Equal(t, once, naming.Normalize(once), "input %q", string(b))
	}
}

func TestIsConventional(t *testing.T) {
	require.True(t, naming.IsConventional("NEW_HOPE"))
	require.True(t, naming.IsConventional("A1"))
	require.False(t, naming.IsConventional(""))
	require.False(t, naming.IsConventional("_A"))
	require.False(t, naming.IsConventional("1A"))
	require.False(t, naming.IsConventional("Jedi"))
}
