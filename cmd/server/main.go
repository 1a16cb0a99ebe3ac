package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"idcheck/internal/audit"
	"idcheck/internal/division"
	divstore "idcheck/internal/division/store"
	"idcheck/internal/platform/config"
	"idcheck/internal/platform/httpserver"
	"idcheck/internal/platform/logger"
	"idcheck/internal/platform/middleware"
	platformredis "idcheck/internal/platform/redis"
	"idcheck/internal/verification"
	"idcheck/internal/verification/handler"
	"idcheck/internal/verification/metrics"
)

// main wires dependencies and owns the server lifecycle. Everything with
// behavior lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	ctx := context.Background()

	// Division registry: embedded table by default, Postgres when configured,
	// Redis read-through cache on top when configured.
	var registry division.Registry = division.Default()
	var seeder division.Seeder = division.Default()
	if cfg.PostgresDSN != "" {
		db, err := divstore.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Error("postgres connect failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		pg := divstore.NewPostgres(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Error("postgres schema failed", "error", err)
			os.Exit(1)
		}
		registry, seeder = pg, pg
		log.Info("division registry backed by postgres")
	}

	var invalidator handler.Invalidator
	if cfg.RedisURL != "" {
		client, err := platformredis.New(ctx, cfg.RedisURL)
		if err != nil {
			log.Error("redis connect failed", "error", err)
			os.Exit(1)
		}
		defer client.Close()

		cache := divstore.NewRedisCache(registry, client.Client, cfg.CacheTTL)
		registry, invalidator = cache, cache
		log.Info("division cache enabled", "ttl", cfg.CacheTTL)
	}

	// Audit trail: Kafka when brokers are configured, in-memory otherwise.
	var auditStore audit.Store = audit.NewMemoryStore()
	if len(cfg.KafkaBrokers) > 0 {
		kafka, err := audit.NewKafkaStore(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			log.Error("kafka connect failed", "error", err)
			os.Exit(1)
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := kafka.Close(closeCtx); err != nil {
				log.Error("kafka close failed", "error", err)
			}
		}()
		auditStore = kafka
		log.Info("audit trail shipping to kafka", "topic", cfg.KafkaTopic)
	}

	service := verification.New(registry, audit.NewPublisher(auditStore), metrics.New(), log)
	service.SetBatchLimit(cfg.BatchLimit)

	h := handler.New(service, registry, log)
	admin := handler.NewAdmin(seeder, invalidator, log)
	adminAuth := middleware.RequireAdmin(cfg.JWTSigningKey, log)

	srv := httpserver.New(cfg.Addr, handler.NewRouter(h, admin, adminAuth))

	log.Info("starting idcheck", "addr", cfg.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("idcheck stopped")
}
