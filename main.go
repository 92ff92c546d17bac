package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/khushprajapati/portfolio-backend/api"
	"github.com/khushprajapati/portfolio-backend/config"
	"github.com/khushprajapati/portfolio-backend/database"
	"github.com/khushprajapati/portfolio-backend/docstore"
	"github.com/khushprajapati/portfolio-backend/services"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg := config.Load(config.New())

	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is not set; admin tokens will not survive verification across restarts")
	}

	// Relational store (projects, skills). A failed connection is logged but
	// not fatal: the contact path can still run without the catalog.
	db, err := database.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Error().Err(err).Msg("Error connecting to relational database; catalog endpoints will fail until it returns")
		db = nil
	} else {
		if err := database.AutoMigrate(db); err != nil {
			log.Error().Err(err).Msg("Error migrating relational schema")
			os.Exit(1)
		}
		if cfg.SeedOnStart {
			if err := database.Seed(db); err != nil {
				log.Error().Err(err).Msg("Error seeding starter catalog")
			}
		}
		log.Info().Str("driver", cfg.DBDriver).Msg("Relational database connected")
	}
	currentDB := database.New(db)

	// Document store (contact messages). Without it there is nowhere to put
	// submissions, so a failed connection is fatal.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := docstore.Open(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	cancel()
	if err != nil {
		log.Error().Err(err).Msg("Error connecting to document store")
		os.Exit(1)
	}
	defer store.Close()
	log.Info().Str("addr", cfg.RedisAddr).Msg("Document store connected")

	// Notification path: queue-backed when available, in-process otherwise.
	// Either way delivery is best-effort and never blocks a submission.
	mailer := services.NewMailer(cfg.ResendAPIKey, cfg.ResendFromEmail)
	notifier := services.NewContactNotifier(mailer, cfg.AdminEmail)

	var dispatcher services.Dispatcher
	var worker *services.Worker
	if cfg.QueueEnabled {
		asyncDispatcher, err := services.NewAsyncDispatcher(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Warn().Err(err).Msg("Notification queue unavailable, falling back to sync dispatch")
			dispatcher = services.NewSyncDispatcher(notifier)
		} else {
			dispatcher = asyncDispatcher
			worker = services.NewWorker(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, notifier)
			if err := worker.Start(); err != nil {
				log.Error().Err(err).Msg("Error starting notification worker")
			}
		}
	} else {
		dispatcher = services.NewSyncDispatcher(notifier)
	}
	defer dispatcher.Close()

	// Never closed: the server goroutine still sends ErrServerClosed into it
	// during graceful shutdown, after the receive below has already fired.
	errChannel := make(chan error, 1)

	server, err := api.NewServer(cfg, currentDB, store.MessageRepo(), dispatcher)
	if err != nil {
		log.Error().Err(err).Msg("Error initializing server")
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
	if worker != nil {
		worker.Stop()
	}
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
