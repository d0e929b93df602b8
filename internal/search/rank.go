package search

import (
	"math"
	"sort"

	"github.com/kahvecikaan/techpulse/internal/domain"
)

// Score rewards rating and review volume, with diminishing returns on volume
func Score(p domain.Product) float64 {
	return p.Rating * math.Log(float64(p.ReviewCount)+1)
}

// Rank sorts products in place by descending score. Equal scores fall back to
// rating, then review count, then a local listing before an international one;
// remaining ties keep their order.
func Rank(products domain.Products) {
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		if sa, sb := Score(a), Score(b); sa != sb {
			return sa > sb
		}
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		if a.ReviewCount != b.ReviewCount {
			return a.ReviewCount > b.ReviewCount
		}
		return a.IsLocal && !b.IsLocal
	})
}

// SortProducts reorders relevance-ranked products for the requested order.
// Relevance and unknown orders leave the slice untouched.
func SortProducts(products domain.Products, order domain.SortOrder) {
	var less func(a, b domain.Product) bool

	switch order {
	case domain.SortPriceAsc:
		less = func(a, b domain.Product) bool { return a.Price < b.Price }
	case domain.SortPriceDesc:
		less = func(a, b domain.Product) bool { return a.Price > b.Price }
	case domain.SortRating:
		less = func(a, b domain.Product) bool { return a.Rating > b.Rating }
	case domain.SortReviews:
		less = func(a, b domain.Product) bool { return a.ReviewCount > b.ReviewCount }
	default:
		return
	}

	sort.SliceStable(products, func(i, j int) bool {
		return less(products[i], products[j])
	})
}
