package search

import (
	"testing"

	"github.com/kahvecikaan/techpulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func testCatalog() domain.Products {
	return domain.Products{
		{
			ID: "galaxy", Name: "Samsung Galaxy A14 5G", Brand: "Samsung", Category: "Smartphones",
			Description: "Affordable 5G smartphone", Price: 3999, Currency: "ZAR", Rating: 4.3, ReviewCount: 610,
			Features: []string{"5000mAh battery", "50MP camera"}, InStock: true, Store: "Takealot", IsLocal: true,
		},
		{
			ID: "macbook", Name: "MacBook Pro 14\" M3", Brand: "Apple", Category: "Laptops",
			Description: "Professional laptop with M3 chip", Price: 45999, Currency: "ZAR", Rating: 4.9, ReviewCount: 750,
			Features: []string{"Apple M3 chip"}, InStock: true, Store: "iStore", IsLocal: true,
		},
		{
			ID: "aspire", Name: "Acer Aspire 3", Brand: "Acer", Category: "Laptops",
			Description: "Budget laptop for study", Price: 4999, Currency: "ZAR", Rating: 4.1, ReviewCount: 310,
			Features: []string{"Intel Core i3"}, InStock: true, Store: "Takealot", IsLocal: true,
		},
		{
			ID: "sony-amazon", Name: "Sony WH-1000XM5", Brand: "Sony", Category: "Headphones",
			Description: "Premium noise-cancelling headphones", Price: 399, Currency: "USD", Rating: 4.8, ReviewCount: 890,
			Features: []string{"30-hour battery"}, InStock: true, Store: "Amazon", IsLocal: false,
		},
		{
			ID: "sony-local", Name: "Sony WH-1000XM5", Brand: "Sony", Category: "Headphones",
			Description: "Premium noise-cancelling headphones", Price: 7999, Currency: "ZAR", Rating: 4.8, ReviewCount: 890,
			Features: []string{"30-hour battery"}, InStock: true, Store: "Incredible Connection", IsLocal: true,
		},
		{
			ID: "mxkeys", Name: "Logitech MX Keys", Brand: "Logitech", Category: "Keyboards",
			Description: "Wireless keyboard", Price: 119, Currency: "USD", Rating: 4.6, ReviewCount: 2100,
			Features: []string{"Backlit keys"}, InStock: true, Store: "Amazon", IsLocal: false,
		},
		{
			ID: "rtx", Name: "NVIDIA RTX 4080", Brand: "NVIDIA", Category: "PC Parts",
			Description: "Graphics card for gaming", Price: 22999, Currency: "ZAR", Rating: 4.9, ReviewCount: 650,
			Features: []string{"Ray tracing"}, InStock: false, Store: "Evetech", IsLocal: true,
		},
	}
}

func ids(products domain.Products) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestSearchEmptyQueryReturnsWholeCatalog(t *testing.T) {
	catalog := testCatalog()
	e := New(catalog)

	for _, q := range []string{"", "   ", "\t\n"} {
		results := e.Search(q, domain.SearchFilters{})
		require.Len(t, results, len(catalog))
		assert.ElementsMatch(t, ids(catalog), ids(results))
	}
}

func TestSearchIsIdempotent(t *testing.T) {
	e := New(testCatalog())

	first := e.Search("sony headphones", domain.SearchFilters{StoreType: domain.StoreTypeAll})
	second := e.Search("sony headphones", domain.SearchFilters{StoreType: domain.StoreTypeAll})

	assert.Equal(t, first, second)
}

func TestSearchBudgetConstraint(t *testing.T) {
	e := New(testCatalog())

	for _, q := range []string{"laptop under 5000", "laptop under R5000", "LAPTOP UNDER r5000"} {
		t.Run(q, func(t *testing.T) {
			results := e.Search(q, domain.SearchFilters{})
			require.NotEmpty(t, results)
			for _, p := range results {
				assert.LessOrEqual(t, p.Price, 5000.0, p.ID)
			}
			assert.Contains(t, ids(results), "aspire")
			assert.NotContains(t, ids(results), "macbook")
		})
	}
}

func TestSearchRatingConstraint(t *testing.T) {
	e := New(testCatalog())

	results := e.Search("laptop 4.5 stars", domain.SearchFilters{})
	assert.Equal(t, []string{"macbook"}, ids(results))

	for _, p := range e.Search("headphones 4+ stars", domain.SearchFilters{}) {
		assert.GreaterOrEqual(t, p.Rating, 4.0)
	}

	sony := e.Search("sony 4.5 stars", domain.SearchFilters{})
	assert.Equal(t, []string{"sony-local", "sony-amazon"}, ids(sony))

	assert.Empty(t, e.Search("sony 4.9 stars", domain.SearchFilters{}))
}

func TestSearchCategoryIsSubset(t *testing.T) {
	e := New(testCatalog())

	all := e.Search("", domain.SearchFilters{})
	laptops := e.Search("", domain.SearchFilters{Category: "Laptops"})

	require.Len(t, laptops, 2)
	for _, p := range laptops {
		assert.Equal(t, "Laptops", p.Category)
	}
	assert.Subset(t, ids(all), ids(laptops))

	// exact match only
	assert.Empty(t, e.Search("", domain.SearchFilters{Category: "laptops"}))
}

func assertMonotonic(t *testing.T, results domain.Products) {
	t.Helper()
	for i := range results {
		for j := i + 1; j < len(results); j++ {
			a, b := results[j], results[i]
			if a.Rating > b.Rating && a.ReviewCount >= b.ReviewCount {
				t.Fatalf("%s ranked after %s despite higher rating and reviews", a.ID, b.ID)
			}
		}
	}
}

func TestSearchRankingMonotonicity(t *testing.T) {
	assertMonotonic(t, New(testCatalog()).Search("", domain.SearchFilters{}))
}

func TestSearchRankingWithoutReviews(t *testing.T) {
	// with no reviews every score is zero
	catalog := domain.Products{
		{ID: "b-local", Name: "Budget buds", Brand: "Acme", Category: "Headphones", Rating: 4, IsLocal: true},
		{ID: "a-intl", Name: "Studio buds", Brand: "Acme", Category: "Headphones", Rating: 5},
		{ID: "c-local", Name: "Basic buds", Brand: "Acme", Category: "Headphones", Rating: 5, IsLocal: true},
		{ID: "d-intl", Name: "Sport buds", Brand: "Acme", Category: "Headphones", Rating: 5},
	}

	results := New(catalog).Search("", domain.SearchFilters{})

	assertMonotonic(t, results)
	assert.Equal(t, []string{"c-local", "a-intl", "d-intl", "b-local"}, ids(results))
}

func TestSearchLocalFirstOnEqualScore(t *testing.T) {
	results := New(testCatalog()).Search("sony", domain.SearchFilters{})

	assert.Equal(t, []string{"sony-local", "sony-amazon"}, ids(results))
}

func TestSearchStoreTypePartition(t *testing.T) {
	e := New(testCatalog())

	all := e.Search("", domain.SearchFilters{StoreType: domain.StoreTypeAll})
	local := e.Search("", domain.SearchFilters{StoreType: domain.StoreTypeLocal})
	international := e.Search("", domain.SearchFilters{StoreType: domain.StoreTypeInternational})

	assert.Len(t, local, 5)
	assert.Len(t, international, 2)
	assert.ElementsMatch(t, ids(all), append(ids(local), ids(international)...))
	for _, id := range ids(local) {
		assert.NotContains(t, ids(international), id)
	}
}

func TestSearchBrandMatchesBrandOrStore(t *testing.T) {
	e := New(testCatalog())

	assert.ElementsMatch(t, []string{"sony-amazon", "mxkeys"}, ids(e.Search("", domain.SearchFilters{Brand: "amazon"})))
	assert.ElementsMatch(t, []string{"sony-amazon", "sony-local"}, ids(e.Search("", domain.SearchFilters{Brand: "SONY"})))
}

func TestSearchPriceAndRatingFilters(t *testing.T) {
	e := New(testCatalog())

	results := e.Search("", domain.SearchFilters{MinPrice: ptr(4000.0), MaxPrice: ptr(25000.0)})
	assert.ElementsMatch(t, []string{"aspire", "sony-local", "rtx"}, ids(results))

	results = e.Search("", domain.SearchFilters{MinRating: ptr(4.8)})
	assert.ElementsMatch(t, []string{"macbook", "sony-amazon", "sony-local", "rtx"}, ids(results))

	assert.Empty(t, e.Search("", domain.SearchFilters{MinPrice: ptr(10.0), MaxPrice: ptr(5.0)}))
}

func TestSearchEndToEndBudgetSmartphone(t *testing.T) {
	results := New(testCatalog()).Search("budget smartphone under 5000", domain.SearchFilters{})

	assert.Contains(t, ids(results), "galaxy")
	assert.NotContains(t, ids(results), "macbook")
}

func TestSearchMatchesFeaturesAndStore(t *testing.T) {
	e := New(testCatalog())

	assert.Equal(t, []string{"rtx"}, ids(e.Search("ray tracing", domain.SearchFilters{})))
	assert.Equal(t, []string{"sony-local"}, ids(e.Search("incredible", domain.SearchFilters{})))
	assert.Empty(t, e.Search("toaster", domain.SearchFilters{}))
}

func TestSearchDoesNotMutateCatalog(t *testing.T) {
	catalog := testCatalog()
	results := New(catalog).Search("", domain.SearchFilters{})

	for i := range results {
		results[i].Name = "changed"
		results[i].Features[0] = "changed"
	}

	assert.Equal(t, testCatalog(), catalog)
}

func TestExtractConstraints(t *testing.T) {
	testCases := []struct {
		query     string
		maxPrice  *float64
		minRating *float64
	}{
		{"laptop under 5000", ptr(5000.0), nil},
		{"budget laptop under R5000 with 4+ stars", ptr(5000.0), ptr(4.0)},
		{"phone 4.5 stars", nil, ptr(4.5)},
		{"monitor +3 star", nil, ptr(3.0)},
		{"Under r7000", ptr(7000.0), nil},
		{"underwater camera", nil, nil},
		{"under budget", nil, nil},
		{"", nil, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			c := ExtractConstraints(tc.query)
			assert.Equal(t, tc.maxPrice, c.MaxPrice)
			assert.Equal(t, tc.minRating, c.MinRating)
			assert.Equal(t, tc.maxPrice == nil && tc.minRating == nil, c.Empty())
		})
	}
}

func TestSortProducts(t *testing.T) {
	results := New(testCatalog()).Search("", domain.SearchFilters{})

	SortProducts(results, domain.SortPriceAsc)
	assert.Equal(t, "mxkeys", results[0].ID)
	assert.Equal(t, "macbook", results[len(results)-1].ID)

	SortProducts(results, domain.SortPriceDesc)
	assert.Equal(t, "macbook", results[0].ID)

	SortProducts(results, domain.SortReviews)
	assert.Equal(t, "mxkeys", results[0].ID)

	SortProducts(results, domain.SortRating)
	assert.Equal(t, 4.9, results[0].Rating)
	assert.Equal(t, 4.1, results[len(results)-1].Rating)

	before := ids(results)
	SortProducts(results, domain.SortRelevance)
	assert.Equal(t, before, ids(results))
}
