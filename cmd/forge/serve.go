package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	_ "github.com/productforge/forge/docs/swagger" // registers the OpenAPI spec
	"github.com/productforge/forge/internal/config"
	"github.com/productforge/forge/internal/home"
	"github.com/productforge/forge/internal/server"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the forge server",
	Long: `Start the forge HTTP server.

The server provides:
  - /health, /ready, /status   - Health and status checks
  - /api/segment, /api/normalize, /api/titles - Text-structure extraction
  - /api/wizard                - Guided ebook assembly
  - /api/extract, /api/generate - Document extraction and PDF rendering

Examples:
  forge serve                    # Start on default port 8080
  forge serve --port 3000        # Start on custom port
  forge serve --host 127.0.0.1   # Bind to loopback only`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Set up logger
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		// Set up home directory (~/.forge by default)
		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}
		if cfgFile == "" && h.ConfigExists() {
			cfgFile = h.ConfigPath()
		}

		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cm.WatchConfig()

		srvCfg := server.FromManager(cm, logger)
		if cmd.Flags().Changed("host") {
			srvCfg.Host = serveHost
		}
		if cmd.Flags().Changed("port") {
			srvCfg.Port = servePort
		}
		// Relative paths are anchored in the home directory
		if !filepath.IsAbs(srvCfg.UploadDir) {
			srvCfg.UploadDir = filepath.Join(h.Path(), srvCfg.UploadDir)
		}
		if srvCfg.PresetsDir == "" {
			srvCfg.PresetsDir = h.PresetsPath()
		}

		srv, err := server.New(srvCfg)
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "0.0.0.0", "Host to bind to")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Port to listen on")

	rootCmd.AddCommand(serveCmd)
}
