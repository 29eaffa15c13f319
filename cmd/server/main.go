package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/abdoachhoubi/billsplitter/internal/auth"
	"github.com/abdoachhoubi/billsplitter/internal/calculator"
	"github.com/abdoachhoubi/billsplitter/internal/config"
	"github.com/abdoachhoubi/billsplitter/internal/jobs"
	"github.com/abdoachhoubi/billsplitter/internal/middleware"
	"github.com/abdoachhoubi/billsplitter/internal/service"
	"github.com/abdoachhoubi/billsplitter/internal/storage"
	"github.com/abdoachhoubi/billsplitter/internal/storage/sqlite"
	"github.com/abdoachhoubi/billsplitter/pkg/api/apiconnect"
	"github.com/abdoachhoubi/billsplitter/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	opts := service.Options{Currency: cfg.DefaultCurrency, Locale: cfg.Locale}
	statsCache := calculator.NewStatsCache(calculator.DefaultStatsCacheSize)

	r := newRouter(store, jwtManager, statsCache, opts)

	// Outstanding-bills digest
	var scheduler *jobs.Scheduler
	if cfg.DigestSchedule != "" {
		digest := jobs.NewDigest(store, slog.Default(), time.Minute)
		scheduler, err = jobs.NewScheduler(cfg.DigestSchedule, digest, slog.Default())
		if err != nil {
			slog.Error("Failed to schedule digest", "error", err)
			os.Exit(1)
		}
		scheduler.Start()
		slog.Info("Digest scheduled", "schedule", cfg.DigestSchedule)
	}

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           h2c.NewHandler(r, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Connect server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr), "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if scheduler != nil {
		if err := scheduler.Stop(ctx); err != nil {
			slog.Warn("Digest did not stop in time", "error", err)
		}
	}
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
}

// newRouter mounts the Connect services behind the auth and logging
// interceptors, plus the metrics and health endpoints.
func newRouter(store storage.Store, jwtManager *auth.JWTManager, statsCache *calculator.StatsCache, opts service.Options) http.Handler {
	interceptors := connect.WithInterceptors(
		middleware.RequireAuth(jwtManager,
			apiconnect.AuthServiceRegisterProcedure,
			apiconnect.AuthServiceLoginProcedure,
		),
		middleware.LoggingInterceptor(),
	)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(loggingMiddleware)
	r.Use(corsMiddleware)

	// Register Connect services
	authenticator := auth.NewPasswordAuthenticator(store)
	authPath, authHandler := apiconnect.NewAuthServiceHandler(
		service.NewAuthService(authenticator, jwtManager, store, slog.Default()), interceptors)
	r.Mount(authPath, authHandler)

	billPath, billHandler := apiconnect.NewBillServiceHandler(service.NewBillService(store, opts), interceptors)
	r.Mount(billPath, billHandler)

	contactPath, contactHandler := apiconnect.NewContactServiceHandler(
		service.NewContactService(store, statsCache, opts), interceptors)
	r.Mount(contactPath, contactHandler)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"request_id", chimw.GetReqID(r.Context()),
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
