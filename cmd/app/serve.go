package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"burger/cmd"
	"burger/internal/adapters/in/catalogfile"
	"burger/internal/core/application/usecases/commands"
	"burger/internal/pkg/logging"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(c *cobra.Command, _ []string) error {
		envFile, _ := c.Flags().GetString("env-file")
		configs, err := cmd.LoadConfig(envFile)
		if err != nil {
			return err
		}
		if err = configs.ValidateForServe(); err != nil {
			return err
		}
		return serve(c.Context(), configs)
	},
}

func serve(ctx context.Context, configs cmd.Config) error {
	logger := logging.New(logging.ParseLevel(configs.LogLevel))

	db, err := cmd.OpenDatabase(configs)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := cmd.CloseDatabase(db); closeErr != nil {
			logger.Error("failed to close database", "error", closeErr)
		}
	}()

	app, err := cmd.NewCompositionRoot(configs, db, logger)
	if err != nil {
		return err
	}

	if err = warmCatalog(ctx, app, configs.CatalogFile, logger); err != nil {
		return err
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return err
	}
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := app.CreateEcho()
	if err != nil {
		return err
	}
	e.Logger.SetLevel(log.INFO)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err = <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-shutdown:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// warmCatalog loads the catalog cache before the first request. An empty
// database is seeded from the catalog file when one is configured.
func warmCatalog(ctx context.Context, app *cmd.CompositionRoot, catalogFile string, logger *slog.Logger) error {
	size, err := app.Catalog().Refresh(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	if size > 0 || catalogFile == "" {
		logger.Info("catalog loaded", "ingredients", size)
		return nil
	}

	ings, err := catalogfile.LoadFile(catalogFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("catalog is empty and no catalog file was found", "file", catalogFile)
			return nil
		}
		return err
	}

	seed, err := commands.NewSeedCatalogCommand(ings)
	if err != nil {
		return err
	}
	handler := app.CreateSeedCatalogCommandHandler()
	if _, err = handler.Handle(ctx, seed); err != nil {
		return err
	}

	size, err = app.Catalog().Refresh(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	logger.Info("catalog seeded", "file", catalogFile, "ingredients", size)
	return nil
}
