package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sejongblog/backend/internal/config"
	"github.com/sejongblog/backend/internal/handler"
	"github.com/sejongblog/backend/internal/logging"
	"github.com/sejongblog/backend/internal/repository"
	"github.com/sejongblog/backend/internal/service"
	"github.com/sejongblog/backend/internal/storage"
	"github.com/sejongblog/backend/pkg/auth"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("failed to load config", "error", err)
	}

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	adminRepo := repository.NewPgAdminRepository(pool)
	postRepo := repository.NewPgPostRepository(pool)
	serviceRepo := repository.NewPgServiceRepository(pool)
	contactRepo := repository.NewPgContactRepository(pool)

	codec := auth.NewTokenCodec([]byte(cfg.SecretKey), cfg.TokenTTL())
	guard := auth.NewGuard(codec, adminRepo)

	authService := service.NewAuthService(adminRepo, codec)
	postService := service.NewPostService(postRepo)
	serviceService := service.NewServiceService(serviceRepo)
	contactService := service.NewContactService(contactRepo)
	statsService := service.NewStatsService(postRepo, serviceRepo, contactRepo)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logging.Fatal("failed to create upload dir", "error", err, "dir", cfg.UploadDir)
	}
	store := storage.NewLocalStorage(cfg.UploadDir, "/uploads")

	h := handler.New(pool, cfg.FrontendURL)
	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	serviceHandler := handler.NewServiceHandler(serviceService)
	contactHandler := handler.NewContactHandler(contactService)
	adminHandler := handler.NewAdminHandler(statsService, contactService)
	homeHandler := handler.NewHomeHandler(statsService)
	uploadHandler := handler.NewUploadHandler(store, cfg.MaxUploadSize)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /api/home", homeHandler.Home)

	// Auth
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.Handle("GET /api/auth/me", guard.Require(http.HandlerFunc(authHandler.Me)))

	// Posts (public reads, admin writes)
	mux.HandleFunc("GET /api/posts", postHandler.List)
	mux.HandleFunc("GET /api/posts/{id}", postHandler.Get)
	mux.Handle("POST /api/posts", guard.Require(http.HandlerFunc(postHandler.Create)))
	mux.Handle("PUT /api/posts/{id}", guard.Require(http.HandlerFunc(postHandler.Update)))
	mux.Handle("DELETE /api/posts/{id}", guard.Require(http.HandlerFunc(postHandler.Delete)))

	// Services. The literal "featured" route must be registered alongside
	// the {id} pattern; the mux prefers the more specific one.
	mux.HandleFunc("GET /api/services", serviceHandler.List)
	mux.HandleFunc("GET /api/services/featured", serviceHandler.Featured)
	mux.HandleFunc("GET /api/services/{id}", serviceHandler.Get)
	mux.Handle("POST /api/services", guard.Require(http.HandlerFunc(serviceHandler.Create)))
	mux.Handle("PUT /api/services/{id}", guard.Require(http.HandlerFunc(serviceHandler.Update)))
	mux.Handle("DELETE /api/services/{id}", guard.Require(http.HandlerFunc(serviceHandler.Delete)))

	// Contacts. Detail resolves the requester optionally so admins bypass
	// the secret gate with their bearer token.
	mux.HandleFunc("POST /api/contacts", contactHandler.Submit)
	mux.HandleFunc("GET /api/contacts", contactHandler.List)
	mux.Handle("GET /api/contacts/{id}", guard.Optional(http.HandlerFunc(contactHandler.Get)))
	mux.HandleFunc("POST /api/contacts/{id}/verify", contactHandler.Verify)

	// Admin console
	mux.Handle("GET /api/admin/dashboard", guard.Require(http.HandlerFunc(adminHandler.Dashboard)))
	mux.Handle("GET /api/admin/posts", guard.Require(http.HandlerFunc(postHandler.AdminList)))
	mux.Handle("GET /api/admin/services", guard.Require(http.HandlerFunc(serviceHandler.AdminList)))
	mux.Handle("GET /api/admin/contacts", guard.Require(http.HandlerFunc(adminHandler.ListContacts)))
	mux.Handle("GET /api/admin/contacts/{id}", guard.Require(http.HandlerFunc(adminHandler.GetContact)))
	mux.Handle("PUT /api/admin/contacts/{id}/reply", guard.Require(http.HandlerFunc(adminHandler.ReplyContact)))
	mux.Handle("DELETE /api/admin/contacts/{id}", guard.Require(http.HandlerFunc(adminHandler.DeleteContact)))
	mux.Handle("POST /api/admin/uploads", guard.Require(http.HandlerFunc(uploadHandler.Upload)))

	// Uploaded assets
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	server := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      handler.SecurityHeaders(h.CORS(handler.RequestLogger(mux))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
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
