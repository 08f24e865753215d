package cmd

import (
	"fmt"
	"os"

	"bucketpath/core/config"
	"bucketpath/core/logger"
	"bucketpath/core/storage"
	"bucketpath/feature/pathfs"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "bucketpath",
	Short: "Filesystem-style access to object storage",
	Long: `bucketpath presents S3-compatible object storage through a
filesystem-path-like interface: list directories, check existence, copy and
delete objects, and browse buckets over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

// setup loads configuration and wires the storage and path clients shared by
// every subcommand.
func setup() (*pathfs.Client, storage.Client, *config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("initialize logger: %w", err)
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("create storage client: %w", err)
	}

	return pathfs.NewClient(store, logg), store, cfg, logg, nil
}
