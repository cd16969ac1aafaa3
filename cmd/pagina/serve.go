package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/pagina/internal/server"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Pagina server",
	Long: `Start the Pagina HTTP server.

The server keeps labelling sessions in memory and evicts idle ones after
pagination.session_ttl_minutes. Edits to the config file are picked up
without a restart.

The server provides:
  - /health              - Basic server health check
  - /status              - Version, config and session store state
  - /api/labels          - Generate labels for a pattern
  - /api/patterns/check  - Describe a pattern or report its syntax error
  - /api/sessions        - Labelling sessions
  - /api/settings        - Active configuration

Examples:
  pagina serve                    # Start on the configured port (default 8080)
  pagina serve --port 3000        # Start on custom port
  pagina serve --host 0.0.0.0     # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		logger, err := newLogger()
		if err != nil {
			return err
		}

		h, err := getHome()
		if err != nil {
			return err
		}

		mgr, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		mgr.WatchConfig()
		if f := mgr.ConfigFile(); f != "" {
			logger.Info("loaded config", "file", f)
		}

		cfg := mgr.Get()
		host, port := cfg.Server.Host, cfg.Server.Port
		if cmd.Flags().Changed("host") {
			host = serveHost
		}
		if cmd.Flags().Changed("port") {
			port = servePort
		}

		srv, err := server.New(server.Config{
			Host:          host,
			Port:          port,
			ConfigManager: mgr,
			Home:          h,
			Logger:        logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Host to bind to (overrides server.host)")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Port to listen on (overrides server.port)")

	rootCmd.AddCommand(serveCmd)
}
