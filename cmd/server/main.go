package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/alecthomas/kong"
	"github.com/w-h-a/timekit"
	"github.com/w-h-a/timekit/server"
	httpserver "github.com/w-h-a/timekit/server/http"
)

var (
	cfg struct {
		Address string `help:"Address for the HTTP tool server" default:":8080"`
	}
)

func main() {
	// Parse inputs
	_ = kong.Parse(&cfg)

	// Create the toolkit
	kit, err := timekit.New()
	if err != nil {
		log.Fatalf("failed to build toolkit: %v", err)
	}

	// Serve it
	srv := httpserver.NewServer(
		kit,
		server.WithAddress(cfg.Address),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()
	log.Printf("time toolkit listening on %s", cfg.Address)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("server error: %v", err)
		}
	case sig := <-sigCh:
		log.Printf("received %v, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}
}
