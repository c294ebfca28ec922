// Package jokes supplies the one-liners appended to ordinary
// consumption messages.
package jokes

import (
	"context"

	"github.com/avolkov/barcounter/internal/locale"
)

// Provider hands out a joke line for a locale. Not every locale carries
// jokes; ok is false when there is nothing to tell.
type Provider interface {
	Joke(ctx context.Context, lang string) (string, bool)
}

// CatalogProvider draws jokes from the loaded locale catalogs.
type CatalogProvider struct {
	catalogs *locale.Catalogs
}

// NewCatalogProvider creates a catalog-backed joke provider
func NewCatalogProvider(catalogs *locale.Catalogs) *CatalogProvider {
	return &CatalogProvider{catalogs: catalogs}
}

// Joke returns a random joke line for the locale
func (p *CatalogProvider) Joke(_ context.Context, lang string) (string, bool) {
	if p.catalogs == nil {
		return "", false
	}
	return p.catalogs.Joke(lang)
}
