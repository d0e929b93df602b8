package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestSearchRequestValidation(t *testing.T) {
	v := NewValidation()

	testCases := []struct {
		name  string
		req   SearchRequest
		valid bool
		field string
	}{
		{"Empty request", SearchRequest{}, true, ""},
		{"Full request", SearchRequest{
			Query: "laptop",
			Filters: SearchFilters{
				MinPrice:  ptr(100.0),
				MaxPrice:  ptr(5000.0),
				MinRating: ptr(4.0),
				StoreType: StoreTypeLocal,
			},
			Sort: SortPriceAsc,
		}, true, ""},
		{"Unknown store type", SearchRequest{Filters: SearchFilters{StoreType: "online"}}, false, "StoreType"},
		{"Unknown sort", SearchRequest{Sort: "cheapest"}, false, "Sort"},
		{"Rating above five", SearchRequest{Filters: SearchFilters{MinRating: ptr(5.5)}}, false, "MinRating"},
		{"Negative price", SearchRequest{Filters: SearchFilters{MinPrice: ptr(-1.0)}}, false, "MinPrice"},
		{"Inverted price range", SearchRequest{Filters: SearchFilters{MinPrice: ptr(10.0), MaxPrice: ptr(5.0)}}, false, "MaxPrice"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			errs := v.Validate(&tc.req)
			if tc.valid {
				assert.Empty(t, errs)
				return
			}
			require.NotEmpty(t, errs)
			assert.Equal(t, tc.field, errs[0].Field)
			assert.Contains(t, errs.Errors()[0], tc.field)
		})
	}
}

func TestProductValidation(t *testing.T) {
	v := NewValidation()

	valid := Product{
		ID:          "1",
		Name:        "Dell XPS 15",
		Brand:       "Dell",
		Category:    "laptops",
		Price:       35999,
		Currency:    "ZAR",
		Rating:      4.6,
		ReviewCount: 420,
		Store:       "Evetech",
		StoreURL:    "https://www.evetech.co.za",
	}
	assert.Empty(t, v.Validate(&valid))

	discounted := valid.Clone()
	discounted.OriginalPrice = ptr(30000.0)
	errs := v.Validate(&discounted)
	require.Len(t, errs, 1)
	assert.Equal(t, "OriginalPrice", errs[0].Field)

	badRating := valid.Clone()
	badRating.Rating = 7
	errs = v.Validate(&badRating)
	require.Len(t, errs, 1)
	assert.Equal(t, "Rating", errs[0].Field)
}

func TestProductCloneIsDeep(t *testing.T) {
	p := Product{Features: []string{"a", "b"}, Discount: ptr(10)}
	c := p.Clone()
	c.Features[0] = "changed"
	*c.Discount = 50

	assert.Equal(t, "a", p.Features[0])
	assert.Equal(t, 10, *p.Discount)
}

func TestSessionAnonymous(t *testing.T) {
	assert.True(t, Session{}.Anonymous())
	assert.False(t, Session{UserID: "u1"}.Anonymous())
}
