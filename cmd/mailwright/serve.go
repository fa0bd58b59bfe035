// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/mailwright/internal/braindump"
	"github.com/pdiddy/mailwright/internal/compose"
	"github.com/pdiddy/mailwright/internal/config"
	"github.com/pdiddy/mailwright/internal/handler"
	"github.com/pdiddy/mailwright/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the brain dump and draft endpoints over HTTP",
	Long: `Serve starts an HTTP server with:

  POST ` + server.PathBrainDump + `   brain dump -> email request
  POST ` + server.PathDrafts + `      email request -> three drafts
  GET  ` + server.PathHealth + `
  GET  ` + server.PathMetrics + `

The /.netlify/functions/ paths are served as aliases. The server stops
gracefully on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	bindFlag(config.KeyServerAddr, serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, log, err := newGateway(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	h := handler.New(
		braindump.NewExtractor(client),
		compose.NewGenerator(client),
		log,
	)
	srv := server.New(cfg.Server, server.NewHandler(h, log), log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting mailwright", zap.String("version", version), zap.String("model", client.Model()))
	return srv.Run(ctx)
}
