package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"bookvoice/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.PlaygroundCmd.ExecuteContext(ctx); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}
