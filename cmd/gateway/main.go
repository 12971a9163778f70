package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/mind-engage/writescore/internal/api/http"
	"github.com/mind-engage/writescore/internal/app"
	auth "github.com/mind-engage/writescore/internal/auth/middleware"
	"github.com/mind-engage/writescore/internal/config"
	"github.com/mind-engage/writescore/internal/telemetry"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, "writescore-gateway", cfg.OTELEndpoint)
	if err != nil {
		log.Fatalf("telemetry: %v", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	// --- Stores + services ---
	octx, cancel := context.WithTimeout(ctx, 10*time.Second)
	a, err := app.New(octx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("init failed: %v", err)
	}
	defer a.Close()

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	deps := api.Deps{
		Auth:          auth.NewAuthService(cfg.AuthHMACSecret),
		AdminUser:     cfg.AdminUser,
		AdminPassHash: cfg.AdminPassHash,
		SecureCookies: cfg.Mode == config.ModeOnline,
		Topics:        a.Topics,
		History:       a.History,
		Evaluator:     a.Evaluation,
		Ready:         a.Ready,
	}
	if a.Events != nil {
		deps.Events = a.Events
	}
	if a.Archive != nil {
		deps.Archive = a.Archive
	}
	api.Mount(r, deps)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(sctx)
	}()

	log.Printf("listening on %s (mode=%s, history=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.HistoryDriver, cfg.DBDriver)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
