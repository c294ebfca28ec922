// Package locale loads the per-language message catalogs and resolves
// message keys with fallback to the default language. A key may map to a
// list of alternatives, in which case one is picked at random per lookup.
package locale

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrKeyNotFound is returned when a key path is missing from both the
// requested and the default catalog.
var ErrKeyNotFound = errors.New("locale key not found")

// ErrUnknownLocale is returned when a catalog for the requested code
// does not exist.
var ErrUnknownLocale = errors.New("unknown locale")

// DefaultDrink is one seed entry from a catalog's default menu.
type DefaultDrink struct {
	Name           string `yaml:"name"`
	Intoxication   int    `yaml:"intoxication"`
	PortionSize    int    `yaml:"portion_size"`
	PortionsPerDay int    `yaml:"portions_per_day"`
}

// Language pairs a locale code with its display name.
type Language struct {
	Code string
	Name string
}

// catalog holds one parsed locale file.
type catalog struct {
	name   string
	drinks []DefaultDrink
	jokes  []string
	tree   map[string]interface{}
}

// Catalogs holds every loaded locale catalog.
type Catalogs struct {
	defaultLang string
	catalogs    map[string]*catalog
	rand        *rand.Rand
}

// Load reads every *.yaml file in dir as a locale catalog; the file base
// name is the locale code. The default language must be among them.
func Load(dir, defaultLang string) (*Catalogs, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale dir: %w", err)
	}

	raw := make(map[string][]byte)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		code := strings.TrimSuffix(entry.Name(), ".yaml")
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", entry.Name(), err)
		}
		raw[code] = data
	}

	return New(raw, defaultLang)
}

// New parses and validates raw catalog data keyed by locale code.
func New(raw map[string][]byte, defaultLang string) (*Catalogs, error) {
	if defaultLang == "" {
		return nil, errors.New("default language cannot be empty")
	}

	catalogs := make(map[string]*catalog, len(raw))
	for code, data := range raw {
		cat, err := parseCatalog(data)
		if err != nil {
			return nil, fmt.Errorf("invalid locale catalog %s: %w", code, err)
		}
		catalogs[code] = cat
	}

	if _, ok := catalogs[defaultLang]; !ok {
		return nil, fmt.Errorf("default locale catalog %s is missing", defaultLang)
	}

	return &Catalogs{
		defaultLang: defaultLang,
		catalogs:    catalogs,
		rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

func parseCatalog(data []byte) (*catalog, error) {
	var tree map[string]interface{}
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}

	var typed struct {
		Name          string         `yaml:"name"`
		DefaultDrinks []DefaultDrink `yaml:"default_drinks"`
		Jokes         []string       `yaml:"jokes"`
	}
	if err := yaml.Unmarshal(data, &typed); err != nil {
		return nil, err
	}

	if typed.Name == "" {
		return nil, errors.New("catalog has no name")
	}
	if len(typed.DefaultDrinks) == 0 {
		return nil, errors.New("catalog has no default_drinks")
	}
	for _, d := range typed.DefaultDrinks {
		if d.Name == "" || d.Intoxication < 0 || d.Intoxication > 100 ||
			d.PortionSize <= 0 || d.PortionsPerDay <= 0 {
			return nil, fmt.Errorf("invalid default drink %q", d.Name)
		}
	}

	return &catalog{
		name:   typed.Name,
		drinks: typed.DefaultDrinks,
		jokes:  typed.Jokes,
		tree:   tree,
	}, nil
}

// DefaultLang returns the fallback locale code.
func (c *Catalogs) DefaultLang() string {
	return c.defaultLang
}

// Supported reports whether a catalog exists for the code.
func (c *Catalogs) Supported(code string) bool {
	_, ok := c.catalogs[code]
	return ok
}

// Normalize converts a platform-suggested locale such as "ru-RU" to the
// catalog code form "ru_RU".
func Normalize(suggested string) string {
	return strings.ReplaceAll(suggested, "-", "_")
}

// Languages lists the loaded locales sorted by code.
func (c *Catalogs) Languages() []Language {
	langs := make([]Language, 0, len(c.catalogs))
	for code, cat := range c.catalogs {
		langs = append(langs, Language{Code: code, Name: cat.name})
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i].Code < langs[j].Code })
	return langs
}

// Text resolves a key path in the given locale. A missing path under a
// non-default locale is retried against the default catalog. List values
// yield one element chosen uniformly at random per call.
func (c *Catalogs) Text(lang string, path ...string) (string, error) {
	if cat, ok := c.catalogs[lang]; ok {
		if s, err := c.lookup(cat, path); err == nil {
			return s, nil
		}
	}
	cat, ok := c.catalogs[c.defaultLang]
	if !ok {
		return "", ErrUnknownLocale
	}
	s, err := c.lookup(cat, path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, strings.Join(path, "."))
	}
	return s, nil
}

func (c *Catalogs) lookup(cat *catalog, path []string) (string, error) {
	var node interface{} = cat.tree
	for _, p := range path {
		m, ok := node.(map[string]interface{})
		if !ok {
			return "", ErrKeyNotFound
		}
		node, ok = m[p]
		if !ok {
			return "", ErrKeyNotFound
		}
	}

	switch v := node.(type) {
	case string:
		return v, nil
	case []interface{}:
		if len(v) == 0 {
			return "", ErrKeyNotFound
		}
		s, ok := v[c.rand.Intn(len(v))].(string)
		if !ok {
			return "", ErrKeyNotFound
		}
		return s, nil
	default:
		return "", ErrKeyNotFound
	}
}

// DefaultDrinks returns the seed menu for the locale, falling back to
// the default locale's menu for unknown codes.
func (c *Catalogs) DefaultDrinks(lang string) []DefaultDrink {
	if cat, ok := c.catalogs[lang]; ok {
		return cat.drinks
	}
	return c.catalogs[c.defaultLang].drinks
}

// Joke returns a random joke line for the locale. Jokes do not fall back
// across locales; a catalog without jokes reports ok=false.
func (c *Catalogs) Joke(lang string) (string, bool) {
	cat, ok := c.catalogs[lang]
	if !ok || len(cat.jokes) == 0 {
		return "", false
	}
	return cat.jokes[c.rand.Intn(len(cat.jokes))], true
}
