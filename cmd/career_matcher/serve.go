package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/career-matcher/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the recommendation, scoring and catalog operations as REST endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8080, "Port to listen on")
	bindFlag("server.port", serveCmd.Flags().Lookup("port"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appCtx.log.Info("starting career matcher API",
		zap.Int("port", appCtx.cfg.Server.Port),
		zap.Int("careers", appCtx.engine.Catalog().Len()),
		zap.Bool("rate_limit", appCtx.cfg.RateLimit.Enabled),
	)

	srv := server.New(appCtx.cfg, appCtx.engine, appCtx.log)
	return srv.Start(ctx)
}
