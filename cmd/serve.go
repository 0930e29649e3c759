package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/marcosmenezes/portfolio/internal/analytics"
	"github.com/marcosmenezes/portfolio/internal/config"
	"github.com/marcosmenezes/portfolio/internal/content"
	"github.com/marcosmenezes/portfolio/internal/logger"
	"github.com/marcosmenezes/portfolio/internal/server"
)

//nolint:gochecknoglobals // Cobra boilerplate
var servePort string

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if servePort != "" {
			cfg.Port = servePort
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg)
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, cfg config.Config) (err error) {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.LogLevel,
		HumanReadable: cfg.LogFormat == "console",
	})
	if err != nil {
		err = errors.Wrap(err, "failed to create logger")
		return err
	}

	doc, err := content.Load(cfg.ContentFile)
	if err != nil {
		return err
	}

	store, err := analytics.Open(cfg.DatabasePath, log)
	if err != nil {
		return err
	}
	defer store.Close()

	srv, err := server.New(server.Deps{
		Config:  cfg,
		Content: doc,
		Store:   store,
		Log:     log,
	})
	if err != nil {
		return err
	}

	err = srv.Run(ctx)
	return err
}
