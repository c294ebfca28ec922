package locale

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

const defaultCatalogYAML = `
name: English
greeting: "hello"
only_in_default: "fallback value"
choices:
  - "one"
  - "two"
  - "three"
nested:
  inner: "deep value"
default_drinks:
  - name: beer
    intoxication: 10
    portion_size: 500
    portions_per_day: 10
jokes:
  - "a joke"
`

const otherCatalogYAML = `
name: "Русский"
greeting: "привет"
default_drinks:
  - name: "пиво"
    intoxication: 12
    portion_size: 500
    portions_per_day: 8
`

type CatalogsTestSuite struct {
	suite.Suite
	catalogs *Catalogs
}

func (s *CatalogsTestSuite) SetupTest() {
	catalogs, err := New(map[string][]byte{
		"en_US": []byte(defaultCatalogYAML),
		"ru_RU": []byte(otherCatalogYAML),
	}, "en_US")
	s.Require().NoError(err)
	s.catalogs = catalogs
}

func TestCatalogsTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogsTestSuite))
}

func (s *CatalogsTestSuite) TestTextDirectHit() {
	text, err := s.catalogs.Text("ru_RU", "greeting")
	s.Require().NoError(err)
	s.Equal("привет", text)
}

func (s *CatalogsTestSuite) TestTextFallsBackToDefault() {
	text, err := s.catalogs.Text("ru_RU", "only_in_default")
	s.Require().NoError(err)
	s.Equal("fallback value", text)
}

func (s *CatalogsTestSuite) TestTextNestedPath() {
	text, err := s.catalogs.Text("en_US", "nested", "inner")
	s.Require().NoError(err)
	s.Equal("deep value", text)
}

func (s *CatalogsTestSuite) TestTextMissingEverywhere() {
	_, err := s.catalogs.Text("ru_RU", "no_such_key")
	s.Require().Error(err)
	s.ErrorIs(err, ErrKeyNotFound)
}

func (s *CatalogsTestSuite) TestTextRandomChoiceMembership() {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		text, err := s.catalogs.Text("en_US", "choices")
		s.Require().NoError(err)
		s.Contains([]string{"one", "two", "three"}, text)
		seen[text] = true
	}
	// 50 draws over 3 options; all of them should show up
	s.Len(seen, 3)
}

func (s *CatalogsTestSuite) TestUnknownLocaleUsesDefault() {
	text, err := s.catalogs.Text("de_DE", "greeting")
	s.Require().NoError(err)
	s.Equal("hello", text)
}

func (s *CatalogsTestSuite) TestSupported() {
	s.True(s.catalogs.Supported("en_US"))
	s.True(s.catalogs.Supported("ru_RU"))
	s.False(s.catalogs.Supported("de_DE"))
}

func (s *CatalogsTestSuite) TestNormalize() {
	s.Equal("ru_RU", Normalize("ru-RU"))
	s.Equal("en_US", Normalize("en_US"))
}

func (s *CatalogsTestSuite) TestLanguages() {
	langs := s.catalogs.Languages()
	s.Require().Len(langs, 2)
	s.Equal("en_US", langs[0].Code)
	s.Equal("English", langs[0].Name)
	s.Equal("ru_RU", langs[1].Code)
}

func (s *CatalogsTestSuite) TestDefaultDrinks() {
	drinks := s.catalogs.DefaultDrinks("ru_RU")
	s.Require().Len(drinks, 1)
	s.Equal("пиво", drinks[0].Name)
	s.Equal(12, drinks[0].Intoxication)

	// unknown locale falls back to the default menu
	drinks = s.catalogs.DefaultDrinks("de_DE")
	s.Require().Len(drinks, 1)
	s.Equal("beer", drinks[0].Name)
}

func (s *CatalogsTestSuite) TestJokes() {
	joke, ok := s.catalogs.Joke("en_US")
	s.True(ok)
	s.Equal("a joke", joke)

	// no cross-locale fallback for jokes
	_, ok = s.catalogs.Joke("ru_RU")
	s.False(ok)
}

func (s *CatalogsTestSuite) TestRejectsCatalogWithoutDrinks() {
	_, err := New(map[string][]byte{
		"en_US": []byte("name: English\n"),
	}, "en_US")
	s.Require().Error(err)
}

func (s *CatalogsTestSuite) TestRejectsMissingDefaultCatalog() {
	_, err := New(map[string][]byte{
		"ru_RU": []byte(otherCatalogYAML),
	}, "en_US")
	s.Require().Error(err)
}

func (s *CatalogsTestSuite) TestRejectsInvalidSeedDrink() {
	bad := `
name: English
default_drinks:
  - name: rocket fuel
    intoxication: 150
    portion_size: 100
    portions_per_day: 5
`
	_, err := New(map[string][]byte{"en_US": []byte(bad)}, "en_US")
	s.Require().Error(err)
}
