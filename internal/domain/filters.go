package domain

// StoreType restricts results by retailer locality
type StoreType string

const (
	StoreTypeAll           StoreType = "all"
	StoreTypeLocal         StoreType = "local"
	StoreTypeInternational StoreType = "international"
)

// IsValid reports whether s is a known store type. The empty value counts as all.
func (s StoreType) IsValid() bool {
	switch s {
	case "", StoreTypeAll, StoreTypeLocal, StoreTypeInternational:
		return true
	}
	return false
}

// SortOrder selects how search results are ordered
type SortOrder string

const (
	SortRelevance SortOrder = "relevance"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
	SortRating    SortOrder = "rating"
	SortReviews   SortOrder = "reviews"
)

// IsValid reports whether s is a known sort order. The empty value counts as relevance.
func (s SortOrder) IsValid() bool {
	switch s {
	case "", SortRelevance, SortPriceAsc, SortPriceDesc, SortRating, SortReviews:
		return true
	}
	return false
}

// SearchFilters are the structured refinements of a search.
// Nil bounds and empty strings impose no constraint.
//
// swagger:model
type SearchFilters struct {
	// Lower price bound, inclusive
	MinPrice *float64 `json:"minPrice,omitempty" validate:"omitempty,gte=0"`

	// Upper price bound, inclusive
	MaxPrice *float64 `json:"maxPrice,omitempty" validate:"omitempty,gte=0"`

	// Lower rating bound, inclusive
	MinRating *float64 `json:"minRating,omitempty" validate:"omitempty,gte=0,lte=5"`

	// Exact category match
	Category string `json:"category,omitempty"`

	// Case-insensitive substring of brand or store
	Brand string `json:"brand,omitempty"`

	// all, local or international
	StoreType StoreType `json:"storeType,omitempty" validate:"storetype"`
}

// SearchRequest is the typed input of a search call
//
// swagger:model
type SearchRequest struct {
	// Free text, may carry embedded constraints such as "under R5000" or "4+ stars"
	Query string `json:"query" validate:"max=256"`

	Filters SearchFilters `json:"filters"`

	// relevance, price_asc, price_desc, rating or reviews
	Sort SortOrder `json:"sort,omitempty" validate:"sortorder"`
}
