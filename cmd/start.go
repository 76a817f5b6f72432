package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"stock-counter/core/database"
	"stock-counter/core/loader"
	"stock-counter/core/logger"
	"stock-counter/core/middleware/rayid"
	"stock-counter/core/storage"

	"stock-counter/feature/counting"
	"stock-counter/feature/integrity"
	"stock-counter/feature/product"
	"stock-counter/feature/snapshot"
	"stock-counter/feature/ui"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "stock-counter/docs/swagger"
)

// @title Stock Counter API
// @version 1.0
// @description API for barcode based stock counting.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the stock counter server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Configuration and Logger
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Connect to Database (Required)
		db, err := openStore(cfg.Database, logg)
		if err != nil {
			return err
		}
		defer func() {
			if err := database.Close(db); err != nil {
				logg.Warn("Failed to close database", zap.Error(err))
			}
		}()

		// 3. Initialize Storage (Optional, snapshots only)
		var store storage.Client
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Storage client unavailable, snapshots disabled", zap.Error(err))
		} else {
			store = client
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(product.NewFeature(db, logg))
		mgr.Register(counting.NewFeature(db, logg))
		mgr.Register(integrity.NewFeature(store, cfg.Storage.Bucket, logg, db))
		mgr.Register(snapshot.NewFeature(db, store, cfg.Storage, logg))
		// The page is mounted at / and must come after the API routes.
		mgr.Register(ui.NewFeature())

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware
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

		// 3. Swagger Documentation
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		// 7. Start Server
		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			errCh <- app.Listen(cfg.Server.Address())
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return err
		case <-c:
		}
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
