//go:build !cli
// +build !cli

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "coffeebar.GO/custom"

	"coffeebar.GO/app"
	"coffeebar.GO/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, cleanup, err := app.Bootstrap(ctx, false)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer cleanup()

	server.Banner("Coffeebar")
	if err := server.Run(ctx, deps); err != nil {
		cleanup()
		log.Fatalf("server stopped: %v", err)
	}
}
