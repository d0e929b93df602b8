package http

import (
	"net/http"
	"path/filepath"
	"runtime"

	"github.com/go-openapi/runtime/middleware"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/kahvecikaan/techpulse/internal/domain"
	websocketTransport "github.com/kahvecikaan/techpulse/internal/transport/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes groups what NewRouter serves
type Routes struct {
	Catalog   *CatalogHandler
	Auth      *AuthHandler
	Favorites *FavoritesHandler
	WebSocket *websocketTransport.Handler
	Gatherer  prometheus.Gatherer
}

func NewRouter(routes Routes, mw *Middleware) http.Handler {
	router := mux.NewRouter()

	router.Use(mw.LoggingMiddleware)

	// Streaming and tooling routes stay outside the JSON and compression middleware
	if routes.WebSocket != nil {
		router.HandleFunc("/ws", routes.WebSocket.HandleWebSocket).Methods(http.MethodGet)
	}
	if routes.Gatherer != nil {
		router.Handle("/metrics", promhttp.HandlerFor(routes.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	// Swagger UI and specification routes
	// filename is the path to this file (router.go); swagger.yaml lives at the module root
	_, filename, _, _ := runtime.Caller(0)
	swaggerFilePath := filepath.Join(filepath.Dir(filename), "..", "..", "..", "swagger.yaml")

	router.HandleFunc("/swagger.yaml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, swaggerFilePath)
	}).Methods(http.MethodGet)

	swaggerHandler := middleware.Redoc(middleware.RedocOpts{SpecURL: "/swagger.yaml"}, nil)
	router.Handle("/docs", swaggerHandler).Methods(http.MethodGet)

	api := router.NewRoute().Subrouter()
	api.Use(mw.ContentTypeMiddleware)
	api.Use(handlers.CompressHandler)

	ch := routes.Catalog
	api.HandleFunc("/products", ch.GetProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/search", ch.SearchProducts).Methods(http.MethodGet)
	api.Handle("/products/search",
		ValidateBody[domain.SearchRequest](mw)(http.HandlerFunc(ch.SearchProductsBody)),
	).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}", ch.GetProductByID).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}/summary", ch.GetProductSummary).Methods(http.MethodGet)
	api.HandleFunc("/suggestions", ch.GetSuggestions).Methods(http.MethodGet)
	api.HandleFunc("/facets", ch.GetFacets).Methods(http.MethodGet)

	ah := routes.Auth
	api.Handle("/auth/signin",
		ValidateBody[domain.SignInRequest](mw)(http.HandlerFunc(ah.SignIn)),
	).Methods(http.MethodPost)
	api.Handle("/auth/signout", mw.RequireSession(http.HandlerFunc(ah.SignOut))).Methods(http.MethodPost)

	// Favorites are scoped to the caller and always need a session
	fh := routes.Favorites
	api.Handle("/favorites", mw.RequireSession(http.HandlerFunc(fh.ListFavorites))).Methods(http.MethodGet)
	api.Handle("/favorites", mw.RequireSession(
		ValidateBody[domain.AddFavoriteRequest](mw)(http.HandlerFunc(fh.AddFavorite)),
	)).Methods(http.MethodPost)
	api.Handle("/favorites/{productId}", mw.RequireSession(http.HandlerFunc(fh.IsFavorite))).Methods(http.MethodGet)
	api.Handle("/favorites/{productId}", mw.RequireSession(http.HandlerFunc(fh.RemoveFavorite))).Methods(http.MethodDelete)

	return mw.Recovery(mw.CORS(router))
}
