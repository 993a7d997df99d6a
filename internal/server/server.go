package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/partshub/apiserver/config"
	"github.com/partshub/apiserver/internal/db"
	"github.com/partshub/apiserver/internal/events"
	"github.com/partshub/apiserver/internal/handlers"
	"github.com/partshub/apiserver/internal/mq"
	"github.com/partshub/apiserver/internal/services"
	"github.com/partshub/apiserver/internal/storage"
	"github.com/partshub/apiserver/internal/store"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
	broker     mq.Backend
}

// New constructs a Server with basic middleware and defaults.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	jwtSecret := strings.TrimSpace(cfg.Auth.JWTSecret)
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	tokenTTL := time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute

	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	broker, err := mq.NewBackend(ctx, cfg.Events)
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}
	publisher := events.NewPublisher(broker, cfg.Events.Channel)

	imageStore, err := storage.NewObjectStorage(ctx, cfg.Storage)
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}
	if imageStore != nil {
		if err := imageStore.EnsureBucket(ctx); err != nil {
			_ = dbConn.Close()
			return nil, err
		}
	}

	userRepo := store.NewUserRepository(dbConn)
	productRepo := store.NewProductRepository(dbConn)
	taxonomyRepo := store.NewTaxonomyRepository(dbConn)
	contentRepo := store.NewContentRepository(dbConn)
	quizRepo := store.NewQuizRepository(dbConn)

	userService := services.NewUserService(userRepo)
	catalogService := services.NewCatalogService(productRepo, taxonomyRepo, publisher)
	contentService := services.NewContentService(contentRepo, publisher)
	quizService := services.NewQuizService(quizRepo)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/auth", func(r chi.Router) {
		handlers.AuthRouter(r, userService, jwtSecret, tokenTTL)
	})
	handlers.CatalogRouter(router, catalogService)
	handlers.ContentRouter(router, contentService)
	handlers.QuizRouter(router, quizService)
	if imageStore != nil {
		router.Route("/images", func(r chi.Router) {
			handlers.ImageRouter(r, imageStore)
		})
	}

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
		broker:     broker,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.db != nil {
		_ = s.db.Close()
	}
	if s.broker != nil {
		_ = s.broker.Close()
	}
	return s.httpServer.Close()
}
