package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/multilan/internal/platform"
	adapter "github.com/aretw0/multilan/pkg/adapters/lifecycle"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload the catalog whenever its files change",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc := mustService(platform.WithWatcherErrorHandler(func(err error) {
			slog.Warn("watch error", "error", err)
		}))

		events, err := svc.Watch(ctx)
		if err != nil {
			fatal("Error starting watcher", err)
		}

		src := adapter.NewSource(events)
		if err := src.Start(ctx); err != nil {
			fatal("Error starting event source", err)
		}

		store, _ := svc.Store()
		fmt.Printf("Watching %s (%d translations). Press Ctrl+C to stop.\n", cfg.Catalog.Path, store.Count())
		for e := range src.Events() {
			fmt.Println(e.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
