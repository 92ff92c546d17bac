package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/khushprajapati/portfolio-backend/auth"
	"github.com/khushprajapati/portfolio-backend/config"
	"github.com/khushprajapati/portfolio-backend/database"
	"github.com/khushprajapati/portfolio-backend/services"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(cfg config.Config, db database.Database, messages MessageStore, dispatcher services.Dispatcher) (Server, error) {
	address := fmt.Sprintf("0.0.0.0:%s", cfg.Port)

	startupTime := time.Now()

	router := newRouter(db, messages, dispatcher, withConfig(cfg), withStartupTime(startupTime))

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      config.Config
	startupTime time.Time
}

func withConfig(cfg config.Config) func(*router) {
	return func(r *router) {
		r.config = cfg
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(db database.Database, messages MessageStore, dispatcher services.Dispatcher, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}
	cfg := router.config

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Auth components built from process-wide configuration, injected rather
	// than read from the environment per request
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	verifier := auth.NewCredentialVerifier(cfg.AdminUsername, cfg.AdminPassword, cfg.AdminPasswordHash, issuer)

	handlers := initializeHandlers(verifier, db.ProjectRepo(), db.SkillRepo(), messages, dispatcher)
	authMiddleware := newAuthMiddleware(issuer)
	limiter := NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	setupRoutes(chiRouter, handlers, authMiddleware, limiter)

	responder := NewResponder(log.With().Str("handlerName", "router").Logger())

	chiRouter.Get("/", func(w http.ResponseWriter, r *http.Request) {
		responder.WriteMessage(w, http.StatusOK, "Khush Prajapati Portfolio API", map[string]any{
			"uptime": time.Since(router.startupTime).Round(time.Second).String(),
		})
	})

	chiRouter.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responder.writeJSON(w, http.StatusNotFound, envelope{Success: false, Message: "Route not found"})
	})

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
