package main

import (
	"context"
	"errors"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"client-hub/internal/cache"
	"client-hub/internal/config"
	"client-hub/internal/events"
	"client-hub/internal/http"
	"client-hub/internal/http/handler"
	"client-hub/internal/notify"
	"client-hub/internal/observe"
	"client-hub/internal/repository/mongodb"

	"github.com/joho/godotenv"
)

const (
	envFilePath      = ".env"
	serverAddrPrefix = ":"
	signalBufferSize = 1
	logOutputFlags   = log.LstdFlags | log.Lshortfile
)

var shutdownSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
}

func main() {
	if err := godotenv.Load(envFilePath); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(logOutputFlags)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Println("Configuration loaded successfully")

	if err := observe.InitSentry(cfg.Sentry); err != nil {
		log.Fatalf("Failed to initialize Sentry: %v", err)
	}
	defer observe.Flush()

	db, err := mongodb.New(&cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			log.Printf("Error closing database connection: %v", err)
		}
	}()

	log.Printf("Database connection established (db %q)", cfg.Mongo.DatabaseName())

	clientRepo := mongodb.NewClientRepository(db)

	var listCache handler.ListCache
	if cfg.Cache.RedisHost != "" {
		clientCache, err := cache.New(cfg.Cache)
		if err != nil {
			log.Printf("Warning: client list cache disabled: %v", err)
		} else {
			listCache = clientCache
			defer clientCache.Close()
			log.Println("Client list cache enabled")
		}
	}

	var publisher handler.EventPublisher = events.NoopPublisher{}
	if cfg.Events.Broker != "" {
		kafkaPublisher := events.NewKafkaPublisher(cfg.Events.Broker)
		publisher = kafkaPublisher
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				log.Printf("Error closing Kafka writer: %v", err)
			}
		}()
		log.Println("Client event publishing enabled")
	}

	notifier := notify.NewEmailNotifier(cfg.Notify)

	server := http.NewServer(&http.ServerDependencies{
		Config:     cfg,
		ClientRepo: clientRepo,
		ListCache:  listCache,
		Events:     publisher,
		Notifier:   notifier,
	})

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Server.Port)
		if err := server.Start(serverAddrPrefix + cfg.Server.Port); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, signalBufferSize)
	signal.Notify(quit, shutdownSignals...)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
