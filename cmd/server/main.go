package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codexa/backend/internal/config"
	"github.com/codexa/backend/internal/handler"
	"github.com/codexa/backend/internal/logging"
	"github.com/codexa/backend/internal/repository"
	"github.com/codexa/backend/internal/service"
	"github.com/codexa/backend/pkg/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	submissionRepo := repository.NewPgSubmissionRepository(pool)
	testimonialRepo := repository.NewPgTestimonialRepository(pool)
	profileRepo := repository.NewPgProfileRepository(pool)

	submissionService := service.NewSubmissionService(submissionRepo)
	testimonialService := service.NewTestimonialService(testimonialRepo)
	authService := service.NewAuthService(profileRepo)

	sessionSecret := auth.SecretBytes(cfg.SessionSecret)

	h := handler.New(pool, cfg.FrontendURL)
	contactHandler := handler.NewContactHandler(submissionService)
	testimonialHandler := handler.NewTestimonialHandler(testimonialService)
	authHandler := handler.NewAuthHandler(authService, sessionSecret, cfg.SessionTTL)
	adminHandler := handler.NewAdminHandler(submissionService, testimonialService)
	siteHandler := handler.NewSiteHandler()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /api/services", siteHandler.Services)

	// Public intake and the approved-testimonials feed
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("POST /api/testimonials", testimonialHandler.Submit)
	mux.HandleFunc("GET /api/testimonials", testimonialHandler.PublicList)

	// Session endpoints
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/me", authHandler.Me)

	// Admin endpoints: every request re-validates the session token
	requireAdmin := auth.RequireAdmin(sessionSecret)
	mux.Handle("GET /api/admin/overview", requireAdmin(http.HandlerFunc(adminHandler.Overview)))
	mux.Handle("GET /api/admin/submissions", requireAdmin(http.HandlerFunc(contactHandler.AdminList)))
	mux.Handle("PATCH /api/admin/submissions/{id}/read", requireAdmin(http.HandlerFunc(contactHandler.MarkRead)))
	mux.Handle("PUT /api/admin/submissions/{id}/notes", requireAdmin(http.HandlerFunc(contactHandler.SaveNotes)))
	mux.Handle("DELETE /api/admin/submissions/{id}", requireAdmin(http.HandlerFunc(contactHandler.Delete)))
	mux.Handle("GET /api/admin/testimonials", requireAdmin(http.HandlerFunc(testimonialHandler.AdminList)))
	mux.Handle("PATCH /api/admin/testimonials/{id}/approve", requireAdmin(http.HandlerFunc(testimonialHandler.Approve)))
	mux.Handle("PATCH /api/admin/testimonials/{id}/feature", requireAdmin(http.HandlerFunc(testimonialHandler.ToggleFeatured)))
	mux.Handle("DELETE /api/admin/testimonials/{id}", requireAdmin(http.HandlerFunc(testimonialHandler.Delete)))

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      h.CORS(handler.RequestLogger(mux)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
