package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/activity"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/config"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/database"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/routes"
)

func main() {
	// Load configuration from config package
	config, err := loadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize the record store client
	if err := database.InitRecordStore(config.RecordStoreURL, 30*time.Second); err != nil {
		log.Fatalf("failed to initialize record store client: %v", err)
	}

	// Initialize Redis for the activity feed
	if err := database.InitializeRedis(); err != nil {
		log.Fatalf("failed to initialize Redis client: %v", err)
	}

	feed, err := activity.NewLog()
	if err != nil {
		log.Fatalf("failed to initialize activity feed: %v", err)
	}

	// Pass the config to SetupRoutes
	handler := routes.SetupRoutes(feed, config)

	// Configure and start the server
	srv := &http.Server{
		Addr:           config.ListenAddr,
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		log.Printf("Starting server on %s", config.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown handling
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	// Create a context with a timeout for shutdown
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	log.Println("Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %+v", err)
	}

	wg.Wait() // Wait for all goroutines to finish before exiting
	log.Println("Server exited gracefully")
}

// loadConfig loads configuration from environment variables.
func loadConfig() (*config.AppConfig, error) {
	// The record store holds every collection this dashboard fronts
	recordStoreURL := os.Getenv("RECORD_STORE_URL")
	if recordStoreURL == "" {
		return nil, errors.New("missing RECORD_STORE_URL environment variable")
	}

	redisAddress := os.Getenv("REDIS_URL")
	if redisAddress == "" {
		return nil, errors.New("missing REDIS_URL environment variable")
	}

	listenAddr := os.Getenv("LISTEN_ADDR")
	if listenAddr == "" {
		listenAddr = ":8930"
	}

	// Optional: when unset the gateway is open (authorization is handled by
	// the record store)
	bearerToken := os.Getenv("BEARER_TOKEN")

	return &config.AppConfig{
		RecordStoreURL: recordStoreURL,
		RedisAddress:   redisAddress,
		ListenAddr:     listenAddr,
		BearerToken:    bearerToken,
	}, nil
}
