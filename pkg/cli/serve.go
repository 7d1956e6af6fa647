package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/halcyon-ops/hourglass/pkg/cli/config"
	controller "github.com/halcyon-ops/hourglass/pkg/controller/http"
	"github.com/halcyon-ops/hourglass/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		mspCfg    config.MSPManager
		reportCfg config.Report
	)

	flags := joinFlags(
		serverCfg.Flags(),
		mspCfg.Flags(),
		reportCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting hourglass server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("mspmanager", mspCfg),
				slog.Any("report", reportCfg),
			)

			source, err := mspCfg.Configure()
			if err != nil {
				return err
			}

			denylist, err := reportCfg.Denylist()
			if err != nil {
				return goerr.Wrap(err, "failed to load report configuration")
			}

			uc := &controller.UseCases{
				Reports:       usecase.NewReports(source, denylist),
				Dashboard:     usecase.NewDashboard(source),
				Tickets:       usecase.NewTickets(source),
				ClientReports: usecase.NewClientReports(source),
			}

			server := controller.NewServer(ctx, serverCfg.Addr, uc, serverCfg.AllowedOrigins)

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
