package locale

import (
	"fmt"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jeronymous/words2num/data"
	"github.com/Jeronymous/words2num/vocab"
)

func builtin(t *testing.T) *Registry {
	t.Helper()
	sub, err := fs.Sub(data.Locales, "locales")
	require.NoError(t, err)
	r, err := Load(sub)
	require.NoError(t, err)
	return r
}

func TestResolve(t *testing.T) {
	t.Parallel()
	r := builtin(t)

	cases := []struct {
		tag  string
		want string
	}{
		{"fr", "fr"},
		{"fr_CA", "fr"},
		{"fr-CA", "fr"},
		{"FR_fr", "fr"},
		{"fr_XX", "fr"},
		{"fr-Latn-FR", "fr"},
		{" fr ", "fr"},
		{"en", "en"},
		{"en_GB", "en"},
		{"en-US", "en"},
		{"az", "az"},
		{"az_Latn_AZ", "az"},
		{"az-Cyrl", "az"},
	}
	for _, tt := range cases {
		t.Run(tt.tag, func(t *testing.T) {
			t.Parallel()
			e, err := r.Resolve(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.Locale().Tag)
		})
	}
}

func TestResolveUnsupported(t *testing.T) {
	t.Parallel()
	r := builtin(t)

	for _, tag := range []string{"de", "de_DE", "", "f", "es-419"} {
		t.Run(tag, func(t *testing.T) {
			t.Parallel()
			_, err := r.Resolve(tag)
			assert.ErrorIs(t, err, ErrUnsupportedLocale)

			_, err = r.Locale(tag)
			assert.ErrorIs(t, err, ErrUnsupportedLocale)
		})
	}
}

func TestResolveEvaluates(t *testing.T) {
	t.Parallel()
	r := builtin(t)

	e, err := r.Resolve("fr_BE")
	require.NoError(t, err)
	v, err := e.Evaluate("nonante-neuf")
	require.NoError(t, err)
	assert.Equal(t, "99", v.String())
}

func TestTags(t *testing.T) {
	t.Parallel()
	r := builtin(t)

	assert.Equal(t, []string{"az", "en", "fr"}, r.Tags())

	// Callers cannot mutate the registry through the returned slice.
	tags := r.Tags()
	tags[0] = "xx"
	assert.Equal(t, "az", r.Tags()[0])
}

func TestLocale(t *testing.T) {
	t.Parallel()
	r := builtin(t)

	loc, err := r.Locale("fr-CH")
	require.NoError(t, err)
	assert.Equal(t, ",", loc.DecimalSeparator)
	assert.Equal(t, []string{"virgule", "point"}, loc.DecimalMarkers)
}

const minimal = `
tag: %s
aliases: [%s]
decimal_markers: [dot]
words:
  digit:
    one: "1"
`

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	t.Run("no tables", func(t *testing.T) {
		_, err := Load(fstest.MapFS{})
		assert.Error(t, err)
	})
	t.Run("invalid table", func(t *testing.T) {
		fsys := fstest.MapFS{"xx.yaml": {Data: []byte("tag: xx\nwords: [")}}
		_, err := Load(fsys)
		assert.ErrorIs(t, err, vocab.ErrInvalidTable)
	})
	t.Run("duplicate alias", func(t *testing.T) {
		fsys := fstest.MapFS{
			"aa.yaml": {Data: fmt.Appendf(nil, minimal, "aa", "zz")},
			"ab.yaml": {Data: fmt.Appendf(nil, minimal, "ab", "zz")},
		}
		_, err := Load(fsys)
		assert.ErrorIs(t, err, ErrDuplicateTag)
	})
	t.Run("other files ignored", func(t *testing.T) {
		fsys := fstest.MapFS{
			"aa.yaml":   {Data: fmt.Appendf(nil, minimal, "aa", "aa_AA")},
			"README.md": {Data: []byte("# tables")},
		}
		r, err := Load(fsys)
		require.NoError(t, err)
		assert.Equal(t, []string{"aa"}, r.Tags())
	})
}

func ExampleRegistry_Resolve() {
	sub, _ := fs.Sub(data.Locales, "locales")
	r, err := Load(sub)
	if err != nil {
		panic(err)
	}

	e, _ := r.Resolve("fr-CA")
	v, _ := e.Evaluate("quatre-vingt-dix-neuf")
	fmt.Println(e.Locale().Tag, v)

	_, err = r.Resolve("de")
	fmt.Println(err)
	// Output:
	// fr 99
	// locale: unsupported locale: "de"
}
