package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"poc-availability/core/config"
	"poc-availability/core/database"
	"poc-availability/core/loader"
	"poc-availability/core/logger"
	"poc-availability/core/middleware/auth"
	"poc-availability/core/middleware/ratelimit"
	"poc-availability/core/middleware/rayid"
	"poc-availability/core/storage"

	"poc-availability/feature/availability"
	"poc-availability/feature/integrity"
	"poc-availability/feature/snapshot"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "poc-availability/docs/swagger"
)

// @title POC Availability API
// @version 1.0
// @description Open appointment slots per point of contact.
// @host localhost:3001
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the availability server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return err
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return err
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		// The server still starts without it so integrity checks can report the failure.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to scheduling database",
				zap.String("driver", cfg.Database.Driver),
				zap.String("database", cfg.Database.Name))
		}

		// 4. Initialize Storage (connects lazily)
		var store storage.Client
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Storage client unavailable, snapshots disabled", zap.Error(err))
		} else {
			store = client
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			ReadTimeout:           time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
			WriteTimeout:          time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		})

		// 5. Features
		availFeature, err := availability.NewFeature(db, cfg.Availability, logg)
		if err != nil {
			return err
		}

		var snapSvc *snapshot.Service
		if store != nil && availFeature.Service() != nil {
			snapSvc, err = snapshot.NewService(availFeature.Service(), store, cfg.Storage, cfg.Snapshot, logg)
			if err != nil {
				return err
			}
		}

		mgr := loader.NewManager()
		mgr.Register(availFeature)
		mgr.Register(snapshot.NewFeature(snapSvc))
		mgr.Register(integrity.NewFeature(db, store, cfg.Storage, cfg.Snapshot.Prefix, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())
		app.Use(recover.New())

		// 2. Logging Middleware (Zap + RayID)
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

		// 3. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Auth (Protect API)
		app.Use(auth.New(auth.Config{
			ApiKey: cfg.Server.ApiKey,
			Skip: func(c *fiber.Ctx) bool {
				return strings.HasPrefix(c.Path(), "/swagger")
			},
		}))

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		// 5. Rate Limiting
		if cfg.RateLimit.Enabled {
			rl := cfg.RateLimit
			limiter := ratelimit.NewStore(rl.RPS, rl.Burst, time.Duration(rl.IdleTTLSeconds)*time.Second)
			limiter.RunCleanup(ctx, time.Minute)

			var stats ratelimit.Stats
			if rl.RedisAddr != "" {
				rdb := ratelimit.NewRedisClient(rl)
				defer rdb.Close()
				stats = ratelimit.NewRedisStats(rdb, rl.RedisPrefix)
				logg.Info("Rate limit counters stored in redis", zap.String("addr", rl.RedisAddr))
			} else {
				stats = ratelimit.NewMemoryStats()
			}

			app.Get("/ratelimit/stats", ratelimit.StatsHandler(stats))
			app.Use(ratelimit.New(ratelimit.Options{
				Store:     limiter,
				Stats:     stats,
				KeyHeader: rl.KeyHeader,
				Logger:    logg,
			}))
		}

		// 6. Load Features
		loaded, err := mgr.LoadAll(app)
		if err != nil {
			return err
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		// 7. Snapshot Schedule
		if cfg.Snapshot.Enabled {
			if snapSvc == nil {
				logg.Warn("Snapshot schedule enabled but database or storage is unavailable")
			} else {
				sched, err := snapshot.NewScheduler(snapSvc, cfg.Snapshot.Schedule, 5*time.Minute, logg)
				if err != nil {
					return err
				}
				sched.Start()
				defer func() { <-sched.Stop().Done() }()
				logg.Info("Snapshot schedule started",
					zap.String("schedule", cfg.Snapshot.Schedule),
					zap.Int("targets", len(snapSvc.Targets())))
			}
		}

		// 8. Start Server
		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			errCh <- app.Listen(cfg.Server.Address())
		}()

		// 9. Graceful Shutdown
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		select {
		case <-sig:
		case err := <-errCh:
			if err != nil {
				return err
			}
		}
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
