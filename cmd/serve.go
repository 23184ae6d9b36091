package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/classpatch/classpatch/internal/history"
	"github.com/classpatch/classpatch/internal/server"
	"github.com/classpatch/classpatch/internal/source"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	serveAddr string
	serveRoot string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the class engine over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunServe(cmd.Context(), serveAddr, serveRoot)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:7878", "Listen address")
	serveCmd.Flags().StringVar(&serveRoot, "root", ".", "Project root to serve files from")
	rootCmd.AddCommand(serveCmd)
}

func RunServe(ctx context.Context, addr, root string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()

	store, err := source.NewStore(root)
	if err != nil {
		return err
	}

	// Journal is optional for the server; wired when init was run.
	var db *sql.DB
	if _, err := os.Stat(dataDir); err == nil {
		db, err = history.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening journal: %w", err)
		}
		defer db.Close()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, addr, server.New(store, db, logger))
}
