package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/kahvecikaan/techpulse/internal/domain"
	"github.com/kahvecikaan/techpulse/internal/events"
	"github.com/kahvecikaan/techpulse/internal/metrics"
	"github.com/kahvecikaan/techpulse/internal/repository"
	"github.com/kahvecikaan/techpulse/internal/service"
	httpTransport "github.com/kahvecikaan/techpulse/internal/transport/http"
	websocketTransport "github.com/kahvecikaan/techpulse/internal/transport/websocket"
	"github.com/nicholasjackson/env"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Environment variables
var (
	bindAddress = env.String("BIND_ADDRESS", false,
		":9090", "Bind address for the server")
	logLevel = env.String("LOG_LEVEL", false,
		"debug", "Log output level for the server [trace, debug, info, warn, error]")
	databaseDriver = env.String("DATABASE_DRIVER", false,
		repository.DriverSQLite, "Database driver for users and favorites [sqlite, postgres]")
	databaseDSN = env.String("DATABASE_DSN", false,
		"file:techpulse.db?cache=shared", "Database connection string")
	jwtSecret = env.String("JWT_SECRET", true,
		"", "Secret used to sign session tokens")
	jwtIssuer = env.String("JWT_ISSUER", false,
		"techpulse", "Issuer claim of session tokens")
	sessionTTL = env.String("SESSION_TTL", false,
		"24h", "Lifetime of a session token")
	corsOrigins = env.String("CORS_ORIGINS", false,
		"http://localhost:3000", "Comma separated origins allowed to call the API")
	catalogFile = env.String("CATALOG_FILE", false,
		"", "JSON catalog to serve instead of the built-in one")
)

func main() {
	// A .env file is optional; real environment variables win
	_ = godotenv.Load()

	// Initialize the logger
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "techpulse",
		Level: hclog.LevelFromString(*logLevel),
	})

	if err := env.Parse(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logger.SetLevel(hclog.LevelFromString(*logLevel))

	ttl, err := time.ParseDuration(*sessionTTL)
	if err != nil {
		logger.Error("Invalid SESSION_TTL", "value", *sessionTTL, "error", err)
		os.Exit(1)
	}

	// Create a standard logger for the HTTP server
	standardLogger := logger.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})

	// Initialize the validator
	validator := domain.NewValidation()

	// Load the catalog
	catalog := repository.NewMemoryCatalogRepository()
	if *catalogFile != "" {
		catalog, err = repository.LoadCatalogFile(*catalogFile, validator)
		if err != nil {
			logger.Error("Unable to load catalog", "file", *catalogFile, "error", err)
			os.Exit(1)
		}
		logger.Info("Loaded catalog", "file", *catalogFile)
	}

	// Open the identity and favorites store
	db, err := repository.OpenDatabase(*databaseDriver, *databaseDSN, logger.Named("database"))
	if err != nil {
		logger.Error("Unable to open database", "driver", *databaseDriver, "error", err)
		os.Exit(1)
	}

	// Metrics live on their own registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	storeMetrics := metrics.New(registry)

	// Initialize the event bus - this will be shared between services
	eventBus := events.NewEventBus[any]()
	busLogger := logger.Named("event-bus")
	eventBus.OnDrop(func(e any) {
		busLogger.Warn("Dropped event for a slow subscriber", "user_id", events.UserID(e))
	})

	authService, err := service.NewAuthService(
		repository.NewUserRepository(db),
		service.AuthConfig{Secret: *jwtSecret, Issuer: *jwtIssuer, TTL: ttl},
		logger.Named("auth-service"),
	)
	if err != nil {
		logger.Error("Invalid session configuration", "error", err)
		os.Exit(1)
	}

	catalogService := service.NewCatalogService(
		catalog,
		storeMetrics,
		logger.Named("catalog-service"),
	)

	favoritesService := service.NewFavoritesService(
		repository.NewFavoriteRepository(db),
		catalog,
		eventBus,
		storeMetrics,
		logger.Named("favorites-service"),
	)

	origins := splitList(*corsOrigins)
	corsConfig := httpTransport.DefaultCORSConfig()
	corsConfig.AllowedOrigins = origins

	// Initialize HTTP and WebSocket handlers
	router := httpTransport.NewRouter(
		httpTransport.Routes{
			Catalog:   httpTransport.NewCatalogHandler(catalogService, validator, logger.Named("catalog-handler")),
			Auth:      httpTransport.NewAuthHandler(authService, logger.Named("auth-handler")),
			Favorites: httpTransport.NewFavoritesHandler(favoritesService, logger.Named("favorites-handler")),
			WebSocket: websocketTransport.NewHandler(
				logger.Named("websocket-handler"),
				eventBus,
				authService,
				origins,
			),
			Gatherer: registry,
		},
		httpTransport.NewMiddleware(logger.Named("http"), validator, authService, corsConfig),
	)

	// Create the HTTP Server
	server := &http.Server{
		Addr:         *bindAddress,
		Handler:      router,
		ErrorLog:     standardLogger,
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// Start the server in a new goroutine
	go func() {
		logger.Info("Starting server", "bind_address", *bindAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Error starting server", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("Shutting down server", "signal", sig)

	// Context for graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Closing the bus ends every open WebSocket stream
	eventBus.Close()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error shutting down server", "error", err)
	}

	if err := repository.CloseDatabase(db); err != nil {
		logger.Error("Error closing database", "error", err)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
