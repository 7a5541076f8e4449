package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/talentledger/contracts/internal/catalog"
	"github.com/talentledger/contracts/internal/config"
	"github.com/talentledger/contracts/internal/contract"
	"github.com/talentledger/contracts/internal/db"
	"github.com/talentledger/contracts/internal/server/middleware"
	"github.com/talentledger/contracts/internal/server/ratelimit"
)

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	registry    *contract.Registry
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	auth        *AuthHandler
	records     *RecordsHandler
	schemas     *SchemasHandler
}

// New creates a server backed by PostgreSQL, connecting and running schema
// setup before any route is exposed.
func New(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Setup(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}

	s := newServer(database, catalog.Default(), jwtConfig, passwordConfig, ratelimit.LoadConfig())
	s.db = database
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.Routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s, nil
}

// newServer wires the handlers against any Store. Tests use it with an
// in-memory store and call Routes directly.
func newServer(store Store, registry *contract.Registry, jwtCfg *config.JWTConfig, pwCfg *config.PasswordConfig, rlCfg ratelimit.Config) *Server {
	jwtService := NewJWTService(jwtCfg)
	return &Server{
		registry:    registry,
		rateLimiter: ratelimit.NewLimiter(rlCfg),
		jwtService:  jwtService,
		auth:        NewAuthHandler(store, pwCfg, jwtService),
		records:     NewRecordsHandler(store, registry),
		schemas:     NewSchemasHandler(registry),
	}
}

// Routes builds the route table. Record routes require a bearer token; the
// auth middleware scopes every request to the token's tenant.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/register", s.auth.Register)
	mux.HandleFunc("POST /auth/login", s.auth.Login)

	mux.HandleFunc("GET /v1/schemas", s.schemas.List)
	mux.HandleFunc("GET /v1/schemas/{kind}", s.schemas.Get)
	mux.HandleFunc("POST /v1/validate/{kind}", s.schemas.Validate)

	authed := middleware.Auth(s.jwtService.AsTokenValidator())
	mux.Handle("POST /v1/records/{kind}", authed(http.HandlerFunc(s.records.Create)))
	mux.Handle("GET /v1/records/{kind}", authed(http.HandlerFunc(s.records.List)))
	mux.Handle("GET /v1/records/{kind}/{id}", authed(http.HandlerFunc(s.records.Get)))
	mux.Handle("PATCH /v1/records/{kind}/{id}", authed(http.HandlerFunc(s.records.Patch)))
	mux.Handle("DELETE /v1/records/{kind}/{id}", authed(http.HandlerFunc(s.records.Delete)))

	return mux
}

// Start begins listening and blocks until an interrupt or SIGTERM, then
// shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.db != nil {
		s.db.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withRateLimit rejects requests over the per-client budget with 429.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.rateLimiter.Allow(ratelimit.ClientKey(r)) {
			errorResponse(w, http.StatusTooManyRequests, APIError{
				Code:    "rate_limited",
				Message: "rate limit exceeded, try again later",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes the error envelope: { code, message, details? } at the
// top level of the body.
func errorResponse(w http.ResponseWriter, status int, apiErr APIError) {
	jsonResponse(w, status, apiErr)
}
