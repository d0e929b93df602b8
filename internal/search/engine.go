// Package search narrows a product catalog to the listings matching a free-text
// query and structured filters, and orders them by relevance.
//
// Everything in this package is pure: the catalog passed in is never mutated and
// every call returns a fresh slice.
package search

import (
	"strings"

	"github.com/kahvecikaan/techpulse/internal/domain"
)

// Engine searches a fixed catalog snapshot
type Engine struct {
	catalog domain.Products
}

// New returns an Engine over catalog
func New(catalog domain.Products) *Engine {
	return &Engine{catalog: catalog}
}

// Search returns the products matching query and filters, best match first.
//
// An empty or whitespace-only query matches every product. Structured filters
// apply whether or not the query is empty.
func (e *Engine) Search(query string, filters domain.SearchFilters) domain.Products {
	results := make(domain.Products, 0, len(e.catalog))

	q := strings.ToLower(strings.TrimSpace(query))
	var (
		constraints Constraints
		tokens      []string
	)
	if q != "" {
		constraints = ExtractConstraints(query)
		tokens = strings.Fields(q)
	}

	for _, p := range e.catalog {
		if q != "" {
			if !constraints.Allow(p) || !matchesText(p, q, tokens) {
				continue
			}
		}
		if !matchesFilters(p, filters) {
			continue
		}
		results = append(results, p.Clone())
	}

	Rank(results)
	return results
}

// Allow reports whether p satisfies the embedded constraints
func (c Constraints) Allow(p domain.Product) bool {
	if c.MaxPrice != nil && p.Price > *c.MaxPrice {
		return false
	}
	if c.MinRating != nil && p.Rating < *c.MinRating {
		return false
	}
	return true
}

// Corpus is the lowercased searchable text of a product
func Corpus(p domain.Product) string {
	parts := make([]string, 0, 5+len(p.Features))
	parts = append(parts, p.Name, p.Brand, p.Category, p.Description)
	if p.Store != "" {
		parts = append(parts, p.Store)
	}
	parts = append(parts, p.Features...)
	return strings.ToLower(strings.Join(parts, " "))
}

// matchesText keeps a product whose corpus holds the whole query or any one of its tokens
func matchesText(p domain.Product, query string, tokens []string) bool {
	corpus := Corpus(p)
	if strings.Contains(corpus, query) {
		return true
	}
	for _, t := range tokens {
		if strings.Contains(corpus, t) {
			return true
		}
	}
	return false
}

func matchesFilters(p domain.Product, f domain.SearchFilters) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}

	if f.Brand != "" {
		brand := strings.ToLower(f.Brand)
		if !strings.Contains(strings.ToLower(p.Brand), brand) &&
			!strings.Contains(strings.ToLower(p.Store), brand) {
			return false
		}
	}

	switch f.StoreType {
	case domain.StoreTypeLocal:
		if !p.IsLocal {
			return false
		}
	case domain.StoreTypeInternational:
		if p.IsLocal {
			return false
		}
	}

	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinRating != nil && p.Rating < *f.MinRating {
		return false
	}

	return true
}
