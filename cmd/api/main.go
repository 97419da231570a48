package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/himanshu221/medium-backend/internal/config"
	"github.com/himanshu221/medium-backend/internal/handler"
	"github.com/himanshu221/medium-backend/internal/middleware"
	"github.com/himanshu221/medium-backend/internal/migrate"
	"github.com/himanshu221/medium-backend/internal/repository"
	"github.com/himanshu221/medium-backend/internal/service"
	"github.com/himanshu221/medium-backend/internal/token"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Apply schema migrations
	if err := migrate.Up(context.Background(), cfg.DatabaseURL); err != nil {
		logger.Fatalf("Failed to apply migrations: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	tokens := token.NewManager(cfg.JWTSecret)
	svc := service.NewService(repo, tokens, logger)
	h := handler.NewHandler(svc, logger)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	// Public routes
	api.HandleFunc("/user/signup", h.Signup).Methods("POST")
	api.HandleFunc("/user/signin", h.Signin).Methods("POST")
	api.HandleFunc("/blog/bulk", h.ListBlogs).Methods("GET")
	api.HandleFunc("/blog/{id}", h.GetBlog).Methods("GET")
	// Protected routes
	blog := api.PathPrefix("/blog").Subrouter()
	blog.Use(middleware.Auth(tokens, logger))
	blog.HandleFunc("", h.CreateBlog).Methods("POST")
	blog.HandleFunc("", h.UpdateBlog).Methods("PUT")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(r),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
