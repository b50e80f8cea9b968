package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/carecompanion/carecompanion/internal/config"
	"github.com/carecompanion/carecompanion/internal/domain/appointment"
	"github.com/carecompanion/carecompanion/internal/domain/goals"
	"github.com/carecompanion/carecompanion/internal/domain/medication"
	"github.com/carecompanion/carecompanion/internal/domain/metrics"
	"github.com/carecompanion/carecompanion/internal/domain/tips"
	"github.com/carecompanion/carecompanion/internal/domain/user"
	"github.com/carecompanion/carecompanion/internal/platform/auth"
	"github.com/carecompanion/carecompanion/internal/platform/db"
	"github.com/carecompanion/carecompanion/internal/platform/demo"
	"github.com/carecompanion/carecompanion/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "care-server",
		Short: "CareCompanion API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, cfg.MigrationsDir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s).\n", count)
			return nil
		},
	}
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, cfg.MigrationsDir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			for _, s := range statuses {
				state := "pending"
				appliedAt := ""
				if s.AppliedAt != nil {
					state = "applied"
					appliedAt = s.AppliedAt.Format(time.RFC3339)
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, state, appliedAt)
			}
			return nil
		},
	}
	cmd.AddCommand(statusCmd)

	return cmd
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the health-tip catalogue and optional demo data",
		RunE: func(cmd *cobra.Command, args []string) error {
			withDemoUser, _ := cmd.Flags().GetBool("demo-user")

			logger := newLogger()
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			seeder := demo.NewSeeder(
				user.NewService(user.NewRepoPG(pool)),
				medication.NewService(
					medication.NewRepoPG(pool),
					medication.NewScheduleRepoPG(pool),
					medication.NewLogRepoPG(pool),
				),
				metrics.NewService(metrics.NewRepoPG(pool)),
				goals.NewService(goals.NewRepoPG(pool)),
				tips.NewService(tips.NewRepoPG(pool)),
				appointment.NewService(appointment.NewRepoPG(pool)),
				logger,
			)
			return seeder.Seed(ctx, withDemoUser)
		},
	}
	cmd.Flags().Bool("demo-user", false, "Also create a demo user with sample data")
	return cmd
}

func newLogger() zerolog.Logger {
	if os.Getenv("ENV") == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func runServer() error {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.BodyLimit(cfg.BodyLimit))
	e.Use(middleware.RequestTimeout(time.Duration(cfg.RequestTimeout) * time.Second))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Health endpoints stay outside auth
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	// Public content
	public := e.Group("/api")
	public.Use(db.RequestConnMiddleware(pool))
	tipsSvc := tips.NewService(tips.NewRepoPG(pool))
	tips.NewHandler(tipsSvc).RegisterRoutes(public)

	// Authenticated API
	api := e.Group("/api")
	if cfg.IsDev() {
		api.Use(auth.DevAuthMiddleware())
	} else {
		api.Use(auth.SessionMiddleware(auth.SessionConfig{
			Secret: []byte(cfg.SessionSecret),
			Issuer: cfg.SessionIssuer,
		}))
	}
	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	api.Use(middleware.RateLimit(rateLimitCfg))
	api.Use(db.RequestConnMiddleware(pool))

	userSvc := user.NewService(user.NewRepoPG(pool))
	user.NewHandler(userSvc).RegisterRoutes(api)

	medSvc := medication.NewService(
		medication.NewRepoPG(pool),
		medication.NewScheduleRepoPG(pool),
		medication.NewLogRepoPG(pool),
	)
	medication.NewHandler(medSvc).RegisterRoutes(api)

	metricsSvc := metrics.NewService(metrics.NewRepoPG(pool))
	metrics.NewHandler(metricsSvc).RegisterRoutes(api)

	goalsSvc := goals.NewService(goals.NewRepoPG(pool))
	goals.NewHandler(goalsSvc).RegisterRoutes(api)

	apptSvc := appointment.NewService(appointment.NewRepoPG(pool))
	appointment.NewHandler(apptSvc).RegisterRoutes(api)

	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
