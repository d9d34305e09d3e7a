package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"cinema-catalog/internal/data/repository"
	"cinema-catalog/internal/wire"
	"cinema-catalog/pkg/database"
	"cinema-catalog/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			rt.logger.Info("Starting application",
				zap.String("app", rt.config.App.Name),
				zap.String("port", rt.config.App.Port),
				zap.Bool("debug", rt.config.App.Debug),
			)

			db, err := database.InitDB(ctx, rt.config.Database)
			if err != nil {
				rt.logger.Error("Failed to connect to database", zap.Error(err))
				return err
			}
			defer db.Close()

			rt.logger.Info("Database connected successfully")

			repos := repository.NewRepository(db, rt.logger)
			app := wire.Wiring(repos, rt.config, rt.logger)

			return APIServer(ctx, app.Router, rt.config, rt.logger)
		},
	}
}

// APIServer serves handler until ctx is cancelled, then drains in-flight
// requests within the configured shutdown timeout.
func APIServer(ctx context.Context, handler http.Handler, config *utils.Config, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", config.App.Port),
		Handler:      handler,
		ReadTimeout:  config.HTTP.ReadTimeout,
		WriteTimeout: config.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Server error", zap.Error(err))
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server", zap.Duration("timeout", config.HTTP.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
