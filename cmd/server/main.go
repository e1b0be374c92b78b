package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/freelinkd/kuesioner-api/internal/cache"
	"github.com/freelinkd/kuesioner-api/internal/config"
	"github.com/freelinkd/kuesioner-api/internal/repository"
	"github.com/freelinkd/kuesioner-api/internal/service"
	"github.com/freelinkd/kuesioner-api/internal/transport/rest"
	"github.com/freelinkd/kuesioner-api/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// Storage backend is a deployment-time choice: one port, two adapters.
	var (
		kuesionerRepo repository.KuesionerRepository
		userRepo      repository.UserRepository
	)
	switch cfg.Backend {
	case config.BackendAstra:
		if cfg.AstraEndpoint == "" || cfg.AstraToken == "" {
			log.Fatal("astra backend selected but ASTRA_DB_API_ENDPOINT/ASTRA_DB_APPLICATION_TOKEN not set")
		}
		astra := repository.NewAstraClient(cfg.AstraEndpoint, cfg.AstraToken, cfg.AstraKeyspace)
		kuesionerRepo = repository.NewAstraKuesionerRepo(astra)
		userRepo = repository.NewAstraUserRepo(astra)
		log.Printf("storage backend: astra (keyspace %s)", cfg.AstraKeyspace)

	default:
		mongoClient := repository.NewMongoClient(cfg.MongoURI, cfg.MongoDBName)
		defer mongoClient.Close(ctx)

		// Liveness check to fail fast on misconfiguration; the connection
		// itself stays lazy and is re-established on demand.
		if _, err := mongoClient.Database(ctx); err != nil {
			log.Printf("warning: initial MongoDB connect failed, will retry on first request: %v", err)
		} else {
			log.Println("Connected to MongoDB")
		}
		kuesionerRepo = repository.NewMongoKuesionerRepo(mongoClient)
		userRepo = repository.NewMongoUserRepo(mongoClient)
		log.Printf("storage backend: mongo (database %s)", cfg.MongoDBName)
	}

	// Redis is optional: without it the dashboard reads the store directly.
	var formsCache cache.FormsCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()

		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.Printf("warning: Redis unreachable, dashboard cache disabled: %v", err)
		} else {
			formsCache = cache.NewFormsCache(rdb)
			log.Println("Connected to Redis")
		}
	}

	// Live feed for connected admin dashboards
	wsHub := ws.NewHub()

	authSvc := service.NewAuthService(userRepo)
	kuesionerSvc := service.NewKuesionerService(kuesionerRepo, formsCache, wsHub)
	exportSvc := service.NewExportService()

	container := &rest.Container{
		AuthService:      authSvc,
		KuesionerService: kuesionerSvc,
		ExportService:    exportSvc,
		WSHub:            wsHub,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /submit-questionnaire")
		log.Println("  POST /wizard/next, /wizard/back")
		log.Println("  GET  /questions/{section}")
		log.Println("  GET  /admin/forms")
		log.Println("  GET  /admin/download-csv")
		log.Println("  POST /auth/admin/login, /register, /me")
		log.Println("  WS   /ws/admin/feed")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
