// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command worker is the background compute bundle's entry point: it runs
// one worker per registered data source until all finish or the process is
// interrupted. It imports the same data-source registration packages as
// cmd/viewer, so both bundles are built from one source tree with one
// plugin list.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gogpu/sceneview"
	"github.com/gogpu/sceneview/datasource"

	// Data-source plugin list, shared with cmd/viewer.
	_ "github.com/gogpu/sceneview/datasource/proceduralmesh"
)

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	sceneview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "worker:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	names := datasource.Names()
	if len(names) == 0 {
		return fmt.Errorf("no data sources registered")
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(names))
	for _, name := range names {
		provider, _ := datasource.Lookup(name)
		worker, err := provider.NewWorker()
		if err != nil {
			return fmt.Errorf("create worker for source %q: %w", name, err)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			slog.Info("worker started", "source", name)
			if err := worker.Run(ctx); err != nil && ctx.Err() == nil {
				errs <- fmt.Errorf("source %q: %w", name, err)
				return
			}
			slog.Info("worker finished", "source", name)
		}()
	}
	wg.Wait()
	close(errs)
	return <-errs
}
