// Package classification of TechPulse API
//
// # Documentation for TechPulse API
//
// Product search across local and international tech retailers, with
// per-shopper favorites.
//
// Schemes: http
// BasePath: /
// Version: 1.0.0
//
// Consumes:
// - application/json
//
// Produces:
// - application/json
//
// SecurityDefinitions:
// bearer:
//
//	type: apiKey
//	name: Authorization
//	in: header
//
// swagger:meta
package http

import (
	"github.com/kahvecikaan/techpulse/internal/domain"
	"github.com/kahvecikaan/techpulse/internal/search"
	"github.com/kahvecikaan/techpulse/internal/service"
)

// NOTE: Wrapper types defined here are purely for documentation purposes
// These wrappers are not used by any of the handlers

// Generic error message returned as a string
// swagger:response errorResponse
type errorResponseWrapper struct {
	// Description of the error
	// in: body
	Body ErrorResponse
}

// Validation errors defined as an array of strings
// swagger:response validationErrorResponse
type validationErrorResponseWrapper struct {
	// Collection of the errors
	// in: body
	Body ValidationError
}

// A list of products
// swagger:response productsResponse
type productsResponseWrapper struct {
	// in: body
	Body []domain.Product
}

// Data structure representing a single product
// swagger:response productResponse
type productResponseWrapper struct {
	// in: body
	Body domain.Product
}

// Ranked search results and the constraints read from the query
// swagger:response searchResponse
type searchResponseWrapper struct {
	// in: body
	Body service.SearchResult
}

// swagger:response summaryResponse
type summaryResponseWrapper struct {
	// in: body
	Body SummaryResponse
}

// swagger:response suggestionsResponse
type suggestionsResponseWrapper struct {
	// in: body
	Body []string
}

// swagger:response facetsResponse
type facetsResponseWrapper struct {
	// in: body
	Body search.Facets
}

// swagger:response signInResponse
type signInResponseWrapper struct {
	// in: body
	Body SignInResponse
}

// swagger:response favoritesResponse
type favoritesResponseWrapper struct {
	// in: body
	Body []domain.FavoriteAssociation
}

// swagger:response favoriteResponse
type favoriteResponseWrapper struct {
	// in: body
	Body domain.FavoriteAssociation
}

// swagger:response isFavoriteResponse
type isFavoriteResponseWrapper struct {
	// in: body
	Body IsFavoriteResponse
}

// No content response for endpoints that return 204
// swagger:response noContentResponse
type noContentResponseWrapper struct{}

// swagger:parameters getProductByID getProductSummary
type productIDParamsWrapper struct {
	// The ID of the product
	// in: path
	// required: true
	ID string `json:"id"`
}

// swagger:parameters removeFavorite isFavorite
type favoriteProductIDParamsWrapper struct {
	// in: path
	// required: true
	ProductID string `json:"productId"`
}

// swagger:parameters searchProducts getFacets
type searchQueryParamsWrapper struct {
	// Free text
	// in: query
	Q string `json:"q"`
	// in: query
	Category string `json:"category"`
	// in: query
	Brand string `json:"brand"`
	// in: query
	StoreType string `json:"storeType"`
	// in: query
	MinPrice float64 `json:"minPrice"`
	// in: query
	MaxPrice float64 `json:"maxPrice"`
	// in: query
	MinRating float64 `json:"minRating"`
	// in: query
	Sort string `json:"sort"`
}

// swagger:parameters searchProductsBody
type searchBodyParamsWrapper struct {
	// in: body
	// required: true
	Body domain.SearchRequest
}

// swagger:parameters listSuggestions
type suggestionsParamsWrapper struct {
	// in: query
	Q string `json:"q"`
}

// swagger:parameters signIn
type signInParamsWrapper struct {
	// in: body
	// required: true
	Body domain.SignInRequest
}

// swagger:parameters addFavorite
type addFavoriteParamsWrapper struct {
	// in: body
	// required: true
	Body domain.AddFavoriteRequest
}

// swagger:parameters listFavorites
type listFavoritesParamsWrapper struct {
	// date, name or price
	// in: query
	Sort string `json:"sort"`
}

// ErrorResponse defines the structure for API error responses
//
// swagger:model
type ErrorResponse struct {
	// The error message
	//
	// required: true
	Message string `json:"message"`
}

// ValidationError defines the structure for API validation error responses
//
// swagger:model
type ValidationError struct {
	// The validation errors
	//
	// required: true
	Messages []string `json:"messages"`
}

// swagger:model
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// swagger:model
type SignInResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// swagger:model
type IsFavoriteResponse struct {
	Favorite bool `json:"favorite"`
}
