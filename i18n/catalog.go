// Package i18n maps (language, key) pairs to display strings and tracks the
// session's language preference.
package i18n

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/Nguyen-Van-Truong/fe-hoan-hao/domain"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Dictionary maps a dotted key such as "nav.home" to its display string.
type Dictionary map[string]string

// Catalog holds one dictionary per supported language. It is read-only
// after construction.
type Catalog struct {
	dicts map[domain.Language]Dictionary
}

// NewCatalog builds a catalog from in-memory dictionaries.
func NewCatalog(dicts map[domain.Language]Dictionary) *Catalog {
	return &Catalog{dicts: dicts}
}

// LoadCatalog parses the embedded locale files.
func LoadCatalog() (*Catalog, error) {
	dicts := make(map[domain.Language]Dictionary, 2)
	for _, lang := range []domain.Language{domain.English, domain.Vietnamese} {
		path := "locales/" + string(lang) + ".yaml"
		data, err := localeFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var d Dictionary
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		dicts[lang] = d
	}
	return &Catalog{dicts: dicts}, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := LoadCatalog()
	if err != nil {
		panic(err) // embedded files are part of the binary
	}
	return c
})

// Default returns the catalog built from the embedded locale files.
func Default() *Catalog {
	return defaultCatalog()
}

// Lookup returns the string for key in lang, if present.
func (c *Catalog) Lookup(lang domain.Language, key string) (string, bool) {
	s, ok := c.dicts[lang][key]
	return s, ok
}

// Translate returns the string for key in lang, or key itself when missing.
// It never falls back to another language.
func (c *Catalog) Translate(lang domain.Language, key string) string {
	if s, ok := c.Lookup(lang, key); ok {
		return s
	}
	return key
}

// Translate looks key up in the default catalog.
func Translate(lang domain.Language, key string) string {
	return Default().Translate(lang, key)
}
