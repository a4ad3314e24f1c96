package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/geunaseh/jeumala/pkg/cli/config"
	httpctrl "github.com/geunaseh/jeumala/pkg/controller/http"
	"github.com/geunaseh/jeumala/pkg/usecase"
	"github.com/geunaseh/jeumala/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var schemaCfg config.Schema
	var repoCfg config.Repository
	var authCfg config.Auth
	var storageCfg config.Storage
	var slackCfg config.Slack

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("JEUMALA_ADDR"),
			Destination: &addr,
		},
	}

	// Add shared config flags
	flags = append(flags, schemaCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, authCfg.Flags()...)
	flags = append(flags, storageCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()
			logger.Info("Server configuration",
				"schema", schemaCfg,
				"repository", repoCfg,
				"auth", authCfg,
				"storage", storageCfg,
				"slack", slackCfg,
			)

			schema, err := schemaCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load resource schema")
			}

			repo, closeRepo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer closeRepo()

			authUC, err := authCfg.Configure(repo)
			if err != nil {
				return goerr.Wrap(err, "failed to configure authentication")
			}
			if authCfg.IsNoAuthn() {
				logger.Warn("Running in no-authn mode (development only)")
			}

			blobs, closeStorage, err := storageCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure upload storage")
			}
			defer closeStorage()

			ucOpts := []usecase.Option{
				usecase.WithSchema(schema),
				usecase.WithAuth(authUC),
			}
			if blobs != nil {
				ucOpts = append(ucOpts, usecase.WithStorage(blobs))
			}

			notifier, err := slackCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to initialize slack notifier")
			}
			if notifier != nil {
				ucOpts = append(ucOpts, usecase.WithRegistrationNotifier(notifier))
				logger.Info("Slack registration notices enabled")
			}

			uc := usecase.New(repo, ucOpts...)

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logger.Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			// Wait for shutdown signal or server error
			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logger.Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logger.Info("Server shutdown completed")
				return nil
			}
		},
	}
}
