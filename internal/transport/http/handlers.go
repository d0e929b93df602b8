package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/techpulse/internal/domain"
	"github.com/kahvecikaan/techpulse/internal/service"
)

type CatalogHandler struct {
	catalogService service.CatalogService
	validator      *domain.Validation
	logger         hclog.Logger
}

func NewCatalogHandler(cs service.CatalogService, validator *domain.Validation, log hclog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: cs,
		validator:      validator,
		logger:         log,
	}
}

// GetProducts handles GET /products
//
// swagger:route GET /products products listProducts
//
// Returns the whole catalog, best match first.
//
// Responses:
//
//	200: productsResponse
//	500: errorResponse
func (h *CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogService.Search(r.Context(), domain.SearchRequest{})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	json.NewEncoder(w).Encode(result.Products)
}

// SearchProducts handles GET /products/search
//
// swagger:route GET /products/search products searchProducts
//
// Searches the catalog with a free-text query and structured filters.
//
// Responses:
//
//	200: searchResponse
//	400: errorResponse
//	422: validationErrorResponse
//	500: errorResponse
func (h *CatalogHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	req, ok := h.searchRequestFromQuery(w, r)
	if !ok {
		return
	}
	h.search(w, r, req)
}

// SearchProductsBody handles POST /products/search
//
// swagger:route POST /products/search products searchProductsBody
//
// Searches the catalog with a JSON search request.
//
// Responses:
//
//	200: searchResponse
//	400: errorResponse
//	422: validationErrorResponse
//	500: errorResponse
func (h *CatalogHandler) SearchProductsBody(w http.ResponseWriter, r *http.Request) {
	req, ok := bodyFromContext[domain.SearchRequest](r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid search request")
		return
	}
	h.search(w, r, *req)
}

func (h *CatalogHandler) search(w http.ResponseWriter, r *http.Request, req domain.SearchRequest) {
	result, err := h.catalogService.Search(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	json.NewEncoder(w).Encode(result)
}

// GetProductByID handles GET /products/{id}
//
// swagger:route GET /products/{id} products getProductByID
//
// Returns a product by ID.
//
// Responses:
//
//	200: productResponse
//	404: errorResponse
func (h *CatalogHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalogService.GetProduct(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	json.NewEncoder(w).Encode(product)
}

// GetProductSummary handles GET /products/{id}/summary
//
// swagger:route GET /products/{id}/summary products getProductSummary
//
// Returns a one-line description of a product.
//
// Responses:
//
//	200: summaryResponse
//	404: errorResponse
func (h *CatalogHandler) GetProductSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.catalogService.Describe(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	json.NewEncoder(w).Encode(SummaryResponse{Summary: summary})
}

// GetSuggestions handles GET /suggestions
//
// swagger:route GET /suggestions search listSuggestions
//
// Returns popular queries containing the partial input.
//
// Responses:
//
//	200: suggestionsResponse
func (h *CatalogHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestions := h.catalogService.Suggestions(r.Context(), r.URL.Query().Get("q"))
	json.NewEncoder(w).Encode(suggestions)
}

// GetFacets handles GET /facets
//
// swagger:route GET /facets search getFacets
//
// Counts the categories, brands, stores and prices of a search result.
//
// Responses:
//
//	200: facetsResponse
//	400: errorResponse
//	422: validationErrorResponse
//	500: errorResponse
func (h *CatalogHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	req, ok := h.searchRequestFromQuery(w, r)
	if !ok {
		return
	}

	facets, err := h.catalogService.Facets(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	json.NewEncoder(w).Encode(facets)
}

// searchRequestFromQuery builds a validated SearchRequest from the URL query.
// It writes the error response itself and reports false when the request is unusable.
func (h *CatalogHandler) searchRequestFromQuery(w http.ResponseWriter, r *http.Request) (domain.SearchRequest, bool) {
	q := r.URL.Query()
	req := domain.SearchRequest{
		Query: q.Get("q"),
		Sort:  domain.SortOrder(q.Get("sort")),
		Filters: domain.SearchFilters{
			Category:  q.Get("category"),
			Brand:     q.Get("brand"),
			StoreType: domain.StoreType(q.Get("storeType")),
		},
	}

	var err error
	if req.Filters.MinPrice, err = parseFloatParam(r, "minPrice"); err != nil {
		h.writeServiceError(w, err)
		return req, false
	}
	if req.Filters.MaxPrice, err = parseFloatParam(r, "maxPrice"); err != nil {
		h.writeServiceError(w, err)
		return req, false
	}
	if req.Filters.MinRating, err = parseFloatParam(r, "minRating"); err != nil {
		h.writeServiceError(w, err)
		return req, false
	}

	if errs := h.validator.Validate(&req); len(errs) > 0 {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(ValidationError{Messages: errs.Errors()})
		return req, false
	}
	return req, true
}

func (h *CatalogHandler) writeServiceError(w http.ResponseWriter, err error) {
	if status := statusFor(err); status != http.StatusInternalServerError {
		writeError(w, status, err.Error())
		return
	}
	h.logger.Error("Error serving catalog request", "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidFilter):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrFavoriteNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Message: message})
}

func parseFloatParam(r *http.Request, name string) (*float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number, got %q", domain.ErrInvalidFilter, name, raw)
	}
	return &v, nil
}
