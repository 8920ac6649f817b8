package cli

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"github.com/donbr/raven/pkg/cli/config"
	server "github.com/donbr/raven/pkg/controller/http"
	mcpservice "github.com/donbr/raven/pkg/service/mcp"
	"github.com/donbr/raven/pkg/usecase"
)

func cmdServe() *cli.Command {
	var (
		addr         string
		agentsCfg    config.Agents
		firestoreCfg config.Firestore
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Aliases:     []string{"a"},
			Sources:     cli.EnvVars("RAVEN_ADDR"),
			Usage:       "Listen address (default: 127.0.0.1:8080)",
			Value:       "127.0.0.1:8080",
			Destination: &addr,
		},
	}
	flags = append(flags, agentsCfg.Flags()...)
	flags = append(flags, firestoreCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run catalog and run-history API server",
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger := ctxlog.From(ctx)
			logger.Info("starting server",
				"addr", addr,
			)

			mcpRegistry, err := mcpservice.New(ctx)
			if err != nil {
				return err
			}

			runRepo, closeRepo, err := newRunRepository(ctx, &firestoreCfg)
			if err != nil {
				return err
			}
			if closeRepo != nil {
				defer closeRepo()
			}

			uc := usecase.New(
				usecase.WithAgentRegistry(agentsCfg.Configure()),
				usecase.WithRunRepository(runRepo),
				usecase.WithMCPRegistry(mcpRegistry),
			)

			serverOptions := []server.Options{
				server.WithWorkflowUseCases(uc),
				server.WithCatalogUseCases(uc),
			}

			httpServer := http.Server{
				Addr:              addr,
				Handler:           server.New(serverOptions...),
				ReadTimeout:       30 * time.Second,
				ReadHeaderTimeout: 10 * time.Second,
				BaseContext: func(l net.Listener) context.Context {
					return ctx
				},
			}

			errCh := make(chan error, 1)
			go func() {
				defer close(errCh)
				ctxlog.From(ctx).Info("server started", "addr", addr)
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case <-sigCh:
				ctxlog.From(ctx).Info("shutting down server...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return httpServer.Shutdown(shutdownCtx)
			}
		},
	}
}
