package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/saulo-duarte/trivia-api/internal/config"
	"github.com/saulo-duarte/trivia-api/internal/container"
	"github.com/saulo-duarte/trivia-api/internal/database"
	"github.com/urfave/cli/v2"
)

const (
	shutdownTimeout = 10 * time.Second
	configKey       = "config"
)

// appConfig returns the configuration loaded once in the app's Before hook.
func appConfig(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata[configKey].(*config.Config); ok {
		return cfg
	}
	return config.Load()
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "trivia-api",
		Usage: "trivia questions and quiz HTTP API",
		Before: func(c *cli.Context) error {
			cfg := config.Load()
			if c.App.Metadata == nil {
				c.App.Metadata = map[string]interface{}{}
			}
			c.App.Metadata[configKey] = cfg
			config.InitLogger(cfg)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the HTTP server",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "create or update the categories and questions tables",
				Action: migrate,
			},
			{
				Name:  "seed",
				Usage: "insert the default categories into an empty store",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "migrate", Usage: "run migrate before seeding"},
				},
				Action: seed,
			},
		},
		DefaultCommand: "serve",
	}
}

func serve(c *cli.Context) error {
	cfg := appConfig(c)
	log := config.Logger.WithField("addr", cfg.Addr())

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := container.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           app.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("trivia-api listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func migrate(c *cli.Context) error {
	cfg := appConfig(c)

	app, err := container.New(c.Context, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := database.AutoMigrate(app.DB); err != nil {
		return err
	}
	config.Logger.Info("Database migrated")
	return nil
}

func seed(c *cli.Context) error {
	cfg := appConfig(c)

	app, err := container.New(c.Context, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if c.Bool("migrate") {
		if err := database.AutoMigrate(app.DB); err != nil {
			return err
		}
	}

	_, err = database.SeedCategories(c.Context, app.DB)
	return err
}
