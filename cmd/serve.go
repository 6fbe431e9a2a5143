package cmd

import (
	"fmt"

	"github.com/Digni/user-idle/internal/logging"
	"github.com/Digni/user-idle/internal/server"
	"github.com/spf13/cobra"
)

var serveAddress string
var startServer = server.Start
var serveLoadConfig = loadConfigForCommand

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the idle time over HTTP",
	Long: `Start an HTTP server that answers idle time queries.

Endpoints:
  GET /idle       Query the idle time now ({"backend":"x11","idle_ms":1234,"idle":"1.234s"})
  GET /health     Health check
  GET /metrics    Prometheus metrics

Example:
  curl localhost:8229/idle`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loadResult, err := serveLoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		printConfigSourceDetails(cmd, loadResult.Source)
		cfg := loadResult.Config
		initializeCommandLogging(cmd.ErrOrStderr(), cfg.Logging, logging.RoleServer)

		if serveAddress != "" {
			cfg.Server.Address = serveAddress
		}

		q, err := newQuerier(cfg, backendFlag)
		if err != nil {
			return err
		}

		return startServer(cfg, q)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddress, "address", "l", "", "Listen address (default from config, e.g. 127.0.0.1:8229)")

	rootCmd.AddCommand(serveCmd)
}
