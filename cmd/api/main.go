package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/gatherly/gatherly-go/internal/config"
	"github.com/gatherly/gatherly-go/internal/handler"
	"github.com/gatherly/gatherly-go/internal/middleware"
	"github.com/gatherly/gatherly-go/internal/repository"
	"github.com/gatherly/gatherly-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := repository.EnsureSchema(ctx, db); err != nil {
		cancel()
		slog.Error("schema setup failed", "error", err)
		os.Exit(1)
	}
	cancel()

	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	attendeeRepo := repository.NewAttendeeRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	eventService := service.NewEventService(eventRepo)
	attendeeService := service.NewAttendeeService(attendeeRepo, eventRepo, userRepo)

	authHandler := handler.NewAuthHandler(authService)
	eventHandler := handler.NewEventHandler(eventService)
	attendeeHandler := handler.NewAttendeeHandler(attendeeService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/v1/auth/register", authHandler.HandleRegister)
		r.Post("/api/v1/auth/login", authHandler.HandleLogin)
	})

	// Event browsing is public; everything that writes requires a token.
	r.Get("/api/v1/events", eventHandler.HandleList)
	r.Get("/api/v1/events/{id}", eventHandler.HandleGet)
	r.Get("/api/v1/events/{id}/attendees", attendeeHandler.HandleListForEvent)

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/api/v1/auth/me", authHandler.HandleMe)

		r.Post("/api/v1/events", eventHandler.HandleCreate)
		r.Put("/api/v1/events/{id}", eventHandler.HandleUpdate)
		r.Delete("/api/v1/events/{id}", eventHandler.HandleDelete)

		r.Post("/api/v1/events/{id}/attendees/{userId}", attendeeHandler.HandleJoin)
		r.Delete("/api/v1/events/{id}/attendees/{userId}", attendeeHandler.HandleLeave)
		r.Get("/api/v1/attendees/{userId}/events", attendeeHandler.HandleEventsForUser)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
