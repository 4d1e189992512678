package main

import (
	"context"
	"log"

	"bents-gateway/config"
	"bents-gateway/internal/downstream"
	"bents-gateway/internal/handler"
	"bents-gateway/internal/redis"
	"bents-gateway/internal/repository"
	"bents-gateway/internal/server"
	"bents-gateway/internal/services"
	"bents-gateway/internal/storage"
	"bents-gateway/pkg/database"
	"bents-gateway/pkg/events"
	"bents-gateway/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	l := logger.New(cfg.LogMode)
	logger.SetGlobalLogger(l)
	defer l.Sync()

	ctx := context.Background()

	pool, err := database.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open database pool: %v", err)
	}
	defer pool.Close()
	if err := database.HealthCheck(ctx, pool); err != nil {
		l.Warnf("Database not reachable yet, /contact will fail until it is: %v", err)
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.EventsEnabled() {
		client, err := redis.Connect(ctx, redis.Config{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		if err != nil {
			l.Warnf("Contact events disabled: %v", err)
		} else {
			broker := events.NewRedisBroker(client)
			defer broker.Close()
			publisher = broker
			l.Infof("Publishing contact events to redis channel %q", cfg.ContactEvents)
		}
	}

	var archive services.TranscriptArchive
	if cfg.ArchiveEnabled() {
		s3Client, err := storage.NewClient(ctx, storage.S3Config{
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Endpoint:  cfg.S3Endpoint,
		})
		if err != nil {
			l.Warnf("Transcript archive disabled: %v", err)
		} else {
			archive = s3Client
			l.Infof("Archiving uploaded transcripts to s3://%s", cfg.S3Bucket)
		}
	}

	contactRepo := repository.NewContactRepository(pool)
	contactService := services.NewContactService(contactRepo, publisher, cfg.ContactEvents, l)

	forwarder := downstream.NewClient(downstream.Config{BaseURL: cfg.DownstreamURL, Timeout: cfg.DownstreamTimeout})
	documentService := services.NewDocumentService(forwarder, archive, l)

	srv := server.New(cfg, l)
	srv.SetupRoutes(&server.Handlers{
		Contact:  handler.NewContactHandler(contactService),
		Document: handler.NewDocumentHandler(documentService),
		Health:   handler.NewHealthHandler(pool),
	})

	l.Infof("Relaying chat and document routes to %s", cfg.DownstreamURL)
	if err := srv.Start(); err != nil {
		l.Errorf("Server exited: %v", err)
	}
}
