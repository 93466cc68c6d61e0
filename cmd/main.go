package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/foodbridge/foodbridge/internal/cache"
	"github.com/foodbridge/foodbridge/internal/db"
	"github.com/foodbridge/foodbridge/internal/engine"
	"github.com/foodbridge/foodbridge/internal/expiry"
	"github.com/foodbridge/foodbridge/internal/kafka"
	"github.com/foodbridge/foodbridge/internal/logger"
	"github.com/foodbridge/foodbridge/internal/repository/postgresql"
	"github.com/foodbridge/foodbridge/internal/server"
)

const (
	defaultPort         = "9000"
	defaultDistanceKm   = 2.0
	outboxPollInterval  = 2 * time.Second
	outboxBatchSize     = 10
	outboxMaxAttempts   = 5
	expirySweepInterval = time.Minute
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	zapLogger := logger.New()
	defer func() {
		_ = zapLogger.Sync()
	}()

	database, err := db.NewDb(ctx)
	if err != nil {
		log.Fatalf("Database init error: %v", err)
	}
	defer database.Close()

	foodRepo := postgresql.NewFoodPostRepo(database)
	orgRepo := postgresql.NewOrgRepo(database)
	matchRepo := postgresql.NewMatchRepo(database)
	impactRepo := postgresql.NewImpactRepo(database)
	historyRepo := postgresql.NewHistoryRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()
	userRepo := postgresql.NewUserRepo(database)

	matchCache := cache.NewMatchCache(matchRepo)
	if err := matchCache.LoadInitialData(ctx); err != nil {
		log.Printf("WARNING: failed to warm match cache: %v", err)
	}

	orchestrator := engine.NewOrchestrator(
		database,
		foodRepo,
		orgRepo,
		matchRepo,
		impactRepo,
		historyRepo,
		outboxRepo,
		engine.FixedDistanceProvider{Km: fixedDistanceKm()},
		engine.Config{},
		zapLogger,
	).WithMatchCache(matchCache)

	publisher := kafka.NewPublisher(database, outboxRepo, buildProducer(), kafka.PublisherConfig{
		PollInterval: outboxPollInterval,
		BatchSize:    outboxBatchSize,
		MaxAttempts:  outboxMaxAttempts,
	})

	sweeper := expiry.NewSweeper(orchestrator, expirySweepInterval)

	srv := server.New(orchestrator, userRepo)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run(gCtx, serverPort())
	})
	g.Go(func() error {
		publisher.Run(gCtx)
		return nil
	})
	g.Go(func() error {
		sweeper.Run(gCtx)
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Println("Shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		sweeper.Shutdown()
		publisher.Shutdown()
		return srv.Shutdown(shutdownCtx)
	})

	log.Printf("Engine started on port %s", serverPort())
	if err := g.Wait(); err != nil {
		log.Fatalf("Shutdown with error: %v", err)
	}
	log.Println("Engine gracefully stopped")
}

func serverPort() string {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		return port
	}
	return defaultPort
}

func fixedDistanceKm() float64 {
	raw := os.Getenv("FIXED_DISTANCE_KM")
	if raw == "" {
		return defaultDistanceKm
	}
	km, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("WARNING: invalid FIXED_DISTANCE_KM %q, using %.1f", raw, defaultDistanceKm)
		return defaultDistanceKm
	}
	return km
}

func buildProducer() kafka.Producer {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		log.Println("KAFKA_BROKERS not set, using console producer")
		return kafka.NewConsoleProducer()
	}
	return kafka.NewKafkaProducer(strings.Split(brokers, ","))
}
