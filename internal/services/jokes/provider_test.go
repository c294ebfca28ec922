package jokes

import (
	"context"
	"testing"

	"github.com/avolkov/barcounter/internal/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogProvider(t *testing.T) {
	catalogs, err := locale.New(map[string][]byte{
		"en_US": []byte(`
name: English
default_drinks:
  - name: beer
    intoxication: 10
    portion_size: 500
    portions_per_day: 10
jokes:
  - "first one"
  - "second one"
`),
		"ru_RU": []byte(`
name: "Русский"
default_drinks:
  - name: "пиво"
    intoxication: 10
    portion_size: 500
    portions_per_day: 10
`),
	}, "en_US")
	require.NoError(t, err)

	p := NewCatalogProvider(catalogs)
	ctx := context.Background()

	joke, ok := p.Joke(ctx, "en_US")
	assert.True(t, ok)
	assert.Contains(t, []string{"first one", "second one"}, joke)

	// A catalog without jokes stays silent
	_, ok = p.Joke(ctx, "ru_RU")
	assert.False(t, ok)

	// So does an unknown locale
	_, ok = p.Joke(ctx, "de_DE")
	assert.False(t, ok)
}
