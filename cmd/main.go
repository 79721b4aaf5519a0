package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"doppel/config"
	"doppel/logger"
	"doppel/progress"
	"doppel/report"
	"doppel/scanner"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(cfg.LogLevel)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleSignals(cancel)

	reporter := progress.NewReporter()
	res, err := scanner.Scan(ctx, cfg, reporter)
	reporter.Done()
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Fatal("Scan aborted.")
		}
		logger.Fatalf("Scan failed: %v", err)
	}

	if err := report.Render(os.Stdout, res, cfg); err != nil {
		logger.Fatalf("Failed to render report: %v", err)
	}
}

func handleSignals(cancelFunc context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	handleSignalEvent(cancelFunc, sigChan)
}

func handleSignalEvent(cancelFunc context.CancelFunc, sigChan chan os.Signal) {
	<-sigChan
	logger.Info("Interrupt signal received. Shutting down...")
	cancelFunc()
}
