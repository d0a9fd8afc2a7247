package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tonghaoch/hello-cicd-go/internal/config"
	"github.com/tonghaoch/hello-cicd-go/internal/logger"
	"github.com/tonghaoch/hello-cicd-go/internal/server"
)

var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "hello-cicd-go",
		Short:        "Hello World HTTP server for the CI/CD demo",
		Long:         "Serves GET / and GET /health on the port given by $PORT (default 3000).",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Setup(slog.LevelInfo)
			slog.Info("hello-cicd-go", "version", version)

			cfg := config.Load()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sigCh
				slog.Info("shutting down...")
				os.Exit(0)
			}()

			srv := server.New(cfg)
			if err := server.Run(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		},
	}
}
