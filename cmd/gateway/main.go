package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/eventfold/eventfold/internal/audit"
	"github.com/eventfold/eventfold/internal/config"
	"github.com/eventfold/eventfold/internal/db"
	"github.com/eventfold/eventfold/internal/httpserver"
	mw "github.com/eventfold/eventfold/internal/middleware"
	"github.com/eventfold/eventfold/internal/search"
	"github.com/eventfold/eventfold/pkg/logging"
	"github.com/eventfold/eventfold/pkg/querycache"
	"github.com/eventfold/eventfold/pkg/tokenstore"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	ctx := context.Background()
	database, err := db.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := tokenstore.AutoMigrate(database); err != nil {
		log.Fatalf("migrate token store: %v", err)
	}

	registry := prometheus.NewRegistry()
	cache := querycache.New(querycache.Options{
		StaleAfter:  cfg.CacheStaleAfter,
		EvictAfter:  cfg.CacheEvictAfter,
		ReadRetries: cfg.CacheRetries,
		Metrics:     querycache.NewMetrics(registry),
	})
	defer cache.Close()

	producer := audit.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic, logger)

	deps := &httpserver.Deps{
		Log: logger,
		Resolver: &mw.Resolver{
			DB:          database,
			PlatformURL: cfg.PlatformURL,
			Cache:       cache,
			HTTP: &http.Client{
				Timeout: 5 * time.Second,
			},
		},
		Audit:    producer,
		Registry: registry,
		ESIndex:  cfg.ESIndex,
	}

	if cfg.ESURL != "" {
		esClient, err := search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			log.Fatalf("elasticsearch: %v", err)
		}
		deps.ES = esClient
	}

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	httpserver.Register(e, deps)

	go func() {
		if err := e.Start(cfg.ListenAddr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}
}
