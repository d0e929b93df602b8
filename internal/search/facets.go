package search

import (
	"sort"

	"github.com/kahvecikaan/techpulse/internal/domain"
)

// Bucket is one value of a facet and how many products carry it
type Bucket struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// PriceRange is the cheapest and dearest price in a result set
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Facets summarizes a result set for building filter controls
type Facets struct {
	Total         int         `json:"total"`
	Categories    []Bucket    `json:"categories"`
	Brands        []Bucket    `json:"brands"`
	Stores        []Bucket    `json:"stores"`
	Price         *PriceRange `json:"price,omitempty"`
	InStock       int         `json:"inStock"`
	OutOfStock    int         `json:"outOfStock"`
	Local         int         `json:"local"`
	International int         `json:"international"`
}

// BuildFacets counts the filterable values of products
func BuildFacets(products domain.Products) Facets {
	f := Facets{Total: len(products)}

	categories := map[string]int{}
	brands := map[string]int{}
	stores := map[string]int{}

	for _, p := range products {
		categories[p.Category]++
		brands[p.Brand]++
		if p.Store != "" {
			stores[p.Store]++
		}

		if f.Price == nil {
			f.Price = &PriceRange{Min: p.Price, Max: p.Price}
		} else {
			f.Price.Min = min(f.Price.Min, p.Price)
			f.Price.Max = max(f.Price.Max, p.Price)
		}

		if p.InStock {
			f.InStock++
		} else {
			f.OutOfStock++
		}
		if p.IsLocal {
			f.Local++
		} else {
			f.International++
		}
	}

	f.Categories = buckets(categories)
	f.Brands = buckets(brands)
	f.Stores = buckets(stores)
	return f
}

func buckets(counts map[string]int) []Bucket {
	out := make([]Bucket, 0, len(counts))
	for v, c := range counts {
		out = append(out, Bucket{Value: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}
