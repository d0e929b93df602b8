package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/techpulse/internal/domain"
	"github.com/kahvecikaan/techpulse/internal/service"
)

type FavoritesHandler struct {
	favoritesService service.FavoritesService
	logger           hclog.Logger
}

func NewFavoritesHandler(fs service.FavoritesService, log hclog.Logger) *FavoritesHandler {
	return &FavoritesHandler{
		favoritesService: fs,
		logger:           log,
	}
}

// ListFavorites handles GET /favorites
//
// swagger:route GET /favorites favorites listFavorites
//
// Returns the caller's favorites.
//
// Responses:
//
//	200: favoritesResponse
//	400: errorResponse
//	401: errorResponse
//	500: errorResponse
func (h *FavoritesHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	order := domain.FavoriteSort(r.URL.Query().Get("sort"))
	if !order.IsValid() {
		h.writeServiceError(w, fmt.Errorf("%w: unknown sort %q", domain.ErrInvalidFilter, order))
		return
	}

	favorites, err := h.favoritesService.List(r.Context(), sessionFromContext(r), order)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	json.NewEncoder(w).Encode(favorites)
}

// AddFavorite handles POST /favorites
//
// swagger:route POST /favorites favorites addFavorite
//
// Adds a product to the caller's favorites. Adding it twice is harmless.
//
// Responses:
//
//	201: favoriteResponse
//	401: errorResponse
//	404: errorResponse
//	422: validationErrorResponse
//	500: errorResponse
func (h *FavoritesHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	req, ok := bodyFromContext[domain.AddFavoriteRequest](r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid favorite request")
		return
	}

	favorite, err := h.favoritesService.Add(r.Context(), sessionFromContext(r), req.ProductID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(favorite)
}

// RemoveFavorite handles DELETE /favorites/{productId}
//
// swagger:route DELETE /favorites/{productId} favorites removeFavorite
//
// Removes a product from the caller's favorites.
//
// Responses:
//
//	204: noContentResponse
//	401: errorResponse
//	404: errorResponse
//	500: errorResponse
func (h *FavoritesHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	err := h.favoritesService.Remove(r.Context(), sessionFromContext(r), mux.Vars(r)["productId"])
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// IsFavorite handles GET /favorites/{productId}
//
// swagger:route GET /favorites/{productId} favorites isFavorite
//
// Reports whether a product is among the caller's favorites.
//
// Responses:
//
//	200: isFavoriteResponse
//	401: errorResponse
//	500: errorResponse
func (h *FavoritesHandler) IsFavorite(w http.ResponseWriter, r *http.Request) {
	favorite, err := h.favoritesService.IsFavorite(r.Context(), sessionFromContext(r), mux.Vars(r)["productId"])
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	json.NewEncoder(w).Encode(IsFavoriteResponse{Favorite: favorite})
}

func (h *FavoritesHandler) writeServiceError(w http.ResponseWriter, err error) {
	if status := statusFor(err); status != http.StatusInternalServerError {
		writeError(w, status, err.Error())
		return
	}
	h.logger.Error("Error serving favorites request", "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}
