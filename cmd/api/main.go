package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/clauseguard/clauseguard/internal/application"
	appanalyses "github.com/clauseguard/clauseguard/internal/application/analyses"
	"github.com/clauseguard/clauseguard/internal/config"
	domain "github.com/clauseguard/clauseguard/internal/domain/analysis"
	"github.com/clauseguard/clauseguard/internal/infra/ai/keyword"
	aiopenai "github.com/clauseguard/clauseguard/internal/infra/ai/openai"
	mysqlp "github.com/clauseguard/clauseguard/internal/infra/db/mysql"
	postgresp "github.com/clauseguard/clauseguard/internal/infra/db/postgres"
	"github.com/clauseguard/clauseguard/internal/infra/extract"
	"github.com/clauseguard/clauseguard/internal/infra/fetch"
	"github.com/clauseguard/clauseguard/internal/infra/httpserver"
	minioStore "github.com/clauseguard/clauseguard/internal/infra/storage"
	"github.com/clauseguard/clauseguard/internal/middleware"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	healthCheckers := map[string]middleware.HealthChecker{
		"openai": &middleware.ConfiguredChecker{
			Configured: cfg.OpenAI.APIKey != "",
			Missing:    "openai api key",
		},
	}

	// connect database (optional; tanpa database analisa tetap jalan)
	var repo domain.Repository
	var failures domain.FailureRepository
	if cfg.HasDatabase() {
		switch cfg.Database.Driver {
		case "postgres":
			db, err := postgresp.Connect(ctx, cfg.PostgresDSN())
			if err != nil {
				log.Fatalf("postgres connect error: %v", err)
			}
			defer db.Close()
			repo = postgresp.NewAnalysisRepository(db)
			healthCheckers["database"] = &middleware.DatabaseHealthChecker{DB: db}
		default:
			db, err := mysqlp.Connect(ctx, cfg.MySQLDSN())
			if err != nil {
				log.Fatalf("mysql connect error: %v", err)
			}
			defer db.Close()
			repo = mysqlp.NewAnalysisRepository(db)
			failures = mysqlp.NewFailureRepository(db)
			healthCheckers["database"] = &middleware.DatabaseHealthChecker{DB: db}
		}
	} else {
		log.Println("no database configured, analyses will not be persisted")
	}

	// init minio (optional)
	var snapshots domain.SnapshotStore
	if cfg.HasMinio() {
		store, err := minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			log.Fatalf("minio init error: %v", err)
		}
		snapshots = store
	}

	// init classifier chain: model-backed with deterministic keyword fallback
	primary := aiopenai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	classifier := appanalyses.WithFallback(primary, keyword.New())

	// init service
	svc := &appanalyses.Service{
		Fetcher:    fetch.New(cfg.FetchTimeout(), cfg.Fetcher.UserAgent),
		Extractor:  extract.New(),
		Classifier: classifier,
		Repo:       repo,
		Failures:   failures,
		Snapshots:  snapshots,
		Clock:      application.SystemClock{},
	}

	// init router
	mux := chi.NewRouter()
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	if cfg.RateLimit.Capacity > 0 {
		mux.Use(middleware.RateLimitMiddleware(cfg.RateLimit.Capacity, cfg.RateLimit.RefillRate))
	}
	if cfg.Auth.APIKey != "" {
		mux.Use(middleware.APIKeyAuth(cfg.Auth.APIKey))
	}
	mux.Mount("/", httpserver.NewRouter(svc, cfg.CORS.AllowedOrigins, healthCheckers))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
