package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rwizi/clickatellhttp/clickatell"
	"github.com/rwizi/clickatellhttp/internal/config"
	"github.com/rwizi/clickatellhttp/internal/handler"
	routes "github.com/rwizi/clickatellhttp/internal/router"
	"github.com/rwizi/clickatellhttp/internal/server"
)

// @title       Clickatell HTTP Bridge API
// @version     1.0
// @description Stateless JSON facade over the Clickatell legacy HTTP API.
// @BasePath    /
func main() {
	// Base context for the whole application lifetime.
	rootCtx := context.Background()

	// Load configuration from environment/.env.
	cfg := config.New()

	// Authenticate against the Clickatell gateway. Construction is
	// eager: if the credentials are wrong we find out right here.
	connectCtx, cancelConnect := context.WithTimeout(rootCtx, cfg.Gateway.Timeout)
	gateway, err := clickatell.Connect(connectCtx, clickatell.Config{
		APIID:    cfg.Gateway.APIID,
		User:     cfg.Gateway.User,
		Password: cfg.Gateway.Password,
		Secure:   cfg.Gateway.Secure,
	}, clickatell.NewHTTPFetcher(cfg.Gateway.Timeout))
	cancelConnect()
	if err != nil {
		log.Fatalf("failed to connect to Clickatell gateway: %v", err)
	}
	log.Println("[Main] Gateway session established.")

	// HTTP dependencies & server wiring.

	// Handlers
	homeHandler := handler.NewHomeHandler(gateway)
	messageHandler := handler.NewMessageHandler(gateway)

	// Init route dependencies
	deps := routes.AppDeps{
		Home:    homeHandler,
		Message: messageHandler,
	}

	// Init Server
	addr := fmt.Sprintf("%s:%s", cfg.API.Host, cfg.API.Port)
	srv := server.New(addr, deps)

	// Create a context that is cancelled on SIGINT/SIGTERM (Ctrl+C, docker stop etc.).
	ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start the HTTP server in a separate goroutine so we can listen for signals.
	go func() {
		log.Printf("HTTP server listening on %s", addr)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Block until we receive a shutdown signal.
	<-ctx.Done()
	log.Println("[Main] Shutdown signal received, starting graceful shutdown...")

	// Give in-flight requests some time to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Println("[Main] Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[Main] HTTP server graceful shutdown failed: %v", err)
	} else {
		log.Println("[Main] HTTP server stopped.")
	}

	log.Println("[Main] Shutdown complete.")
}
