package cmd

import (
	"log"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/toolbridge/toolbridge/internal/config"
	"github.com/toolbridge/toolbridge/internal/server"
	"github.com/toolbridge/toolbridge/internal/tables"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog as a JSON API",
	Long:  `Start an HTTP server exposing the entry registry and reference tables as a read-only JSON API.`,
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from TOOLBRIDGE_LISTEN_ADDR or :8390)")
}

func runServe(cmd *cobra.Command, args []string) {
	settings := config.LoadSettings()
	logger := settings.ConfigureLogger()

	addr := settings.ListenAddr
	if serveAddr != "" {
		addr = serveAddr
	}

	srv, err := buildServer(settings, logger)
	if err != nil {
		log.Fatalf("Failed to build server: %v", err)
	}

	logger.Info("listening", "addr", addr)
	if err := http.ListenAndServe(addr, srv.Routes()); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// buildServer serves the embedded tables unless TOOLBRIDGE_CONTENT_DIR
// points at an external content directory.
func buildServer(settings *config.Settings, logger *slog.Logger) (*server.Server, error) {
	if settings.ContentDir == "" {
		return server.New(logger)
	}
	store, err := tables.LoadExternal(settings.ContentDir, settings.ContentPatterns)
	if err != nil {
		return nil, err
	}
	return server.NewWithTables(logger, store)
}
