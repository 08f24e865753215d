package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"bucketpath/core/loader"
	"bucketpath/core/logger"
	"bucketpath/core/middleware/auth"
	"bucketpath/core/middleware/rayid"
	"bucketpath/feature/browse"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd starts the HTTP browse server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the browse HTTP server",
	Long:  `Starts the HTTP server exposing read-only browse endpoints over the configured storage.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, cfg, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// RayID must be first so every request is traceable
		app.Use(rayid.New())

		// Request logging with Zap + RayID
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Protect the API
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		mgr := loader.NewManager()
		mgr.Register(browse.NewFeature(client, logg))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
