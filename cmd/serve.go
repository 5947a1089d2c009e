// ABOUTME: Serve command starting the HTTP API server
// ABOUTME: Wires config, logging, cache, and handlers together

package cmd

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"clab-gcp-planner/cache"
	"clab-gcp-planner/config"
	"clab-gcp-planner/handlers"
	"clab-gcp-planner/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Serve the capacity planner API over HTTP.

Endpoints are mounted under /api/v1/; see the analyze, optimize, pricing,
compare, recommend, and plan routes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Init()

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		slog.Info("Starting capacity planner API", "region", cfg.Region)

		cacheTTL := time.Duration(cfg.PricingCacheTTL) * time.Second
		c := cache.New(cacheTTL)
		slog.Info("Pricing cache initialized", "ttl", cacheTTL)

		h := handlers.NewHandler(cfg, c)
		mux := http.NewServeMux()
		h.Register(mux)

		addr := ":" + cfg.Port
		slog.Info("Server listening", "addr", addr)
		return http.ListenAndServe(addr, mux)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
