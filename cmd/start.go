package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"upsolve-tracker/core/loader"
	"upsolve-tracker/core/logger"
	"upsolve-tracker/core/middleware/auth"
	"upsolve-tracker/core/middleware/rayid"
	"upsolve-tracker/feature/analysis"
	"upsolve-tracker/feature/students"
	"upsolve-tracker/feature/upsolve"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "upsolve-tracker/docs/swagger"
)

// @title Upsolve Tracker API
// @version 1.0
// @description Codeforces upsolve queue for students.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the upsolve tracker server",
	Long:  `Starts the HTTP server, initializes all enabled features and the periodic sync.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		rt, err := bootstrap(ctx)
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := rt.log
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// Database is optional: without it only the analysis feature is served.
		var db *gorm.DB
		if conn, err := rt.connect(); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to database", zap.String("driver", rt.cfg.Database.Driver))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		studentsFeature := students.NewFeature(db, logg)
		upsolveFeature := upsolve.NewFeature(db, rt.judge, studentsFeature.Service(), rt.clock, logg)

		mgr := loader.NewManager(logg)
		mgr.Register(studentsFeature)
		mgr.Register(upsolveFeature)
		mgr.Register(analysis.NewFeature(rt.judge, logg))

		// RayID first so every later log line carries it.
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

		// Swagger stays public.
		app.Get("/swagger/*", swagger.HandlerDefault)

		if !rt.cfg.Server.Protected() {
			logg.Warn("API key not set, requests are not authenticated")
		}
		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		var worker *upsolve.Worker
		if rt.cfg.Sync.Enabled && db != nil {
			worker = upsolve.NewWorker(upsolveFeature.Service(), studentsFeature.Service(), rt.cfg.Sync.Interval, logg)
			if err := worker.Start(ctx); err != nil {
				logg.Fatal("Failed to start upsolve sync", zap.Error(err))
			}
		}

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
		cancel()

		if worker != nil {
			if err := worker.Stop(); err != nil {
				logg.Warn("Upsolve sync did not stop cleanly", zap.Error(err))
			}
		}
		for slot, st := range rt.judge.Stats() {
			logg.Info("Cache stats", zap.String("slot", slot),
				zap.Int64("hits", st.Hits), zap.Int64("misses", st.Misses),
				zap.Int64("stale", st.Stale), zap.Int64("failures", st.Failures))
		}
		_ = app.ShutdownWithTimeout(time.Duration(rt.cfg.Server.ShutdownSeconds) * time.Second)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
