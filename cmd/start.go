package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"wardrobe-manager/core/loader"
	"wardrobe-manager/core/logger"
	"wardrobe-manager/core/middleware/auth"
	"wardrobe-manager/core/middleware/rayid"
	"wardrobe-manager/feature/integrity"
	"wardrobe-manager/feature/wardrobe"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "wardrobe-manager/docs/swagger"
)

// @title Wardrobe Manager API
// @version 1.0
// @description API for the classified Habbo clothing catalog.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the wardrobe manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		logg := rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(wardrobe.NewFeature(rt.aggregator, rt.publisher, logg.Named("wardrobe")))
		mgr.Register(integrity.NewFeature(rt.client, rt.cfg.Storage.Bucket, rt.cfg.Wardrobe.PublishPrefix, rt.publishedObjects(), logg.Named("integrity"), rt.db))

		// RayID runs first so every later log line carries it.
		app.Use(rayid.New())

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

		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey, Skip: []string{"/swagger"}}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		// Resolve once so the first request is served from cache.
		go func() {
			cat := rt.aggregator.Catalog(cmd.Context())
			logg.Info("Catalog warmed",
				zap.String("build", cat.BuildID),
				zap.String("source", string(cat.Source)),
				zap.Int("categories", len(cat.Categories)),
			)
		}()

		go func() {
			logg.Info("Starting server", zap.String("address", rt.cfg.Server.Address()))
			if err := app.Listen(rt.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
