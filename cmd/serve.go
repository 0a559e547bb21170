package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/strollcast/episode-api/api"
	"github.com/strollcast/episode-api/api/types"
	"github.com/strollcast/episode-api/internal/services/assembly"
	"github.com/strollcast/episode-api/pkg/config"
	"github.com/strollcast/episode-api/pkg/download"
	"github.com/strollcast/episode-api/pkg/ffmpeg"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Episode Assembly API server with the configured settings.

The server accepts assembly jobs, reports job progress, and derives
episode identifiers.

Example:
  episode-api serve
  episode-api serve --port 9090
  episode-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	// Use config values if flags not provided
	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	transform := ffmpeg.New(cfg.Assembly.FFmpegPath)
	if err := transform.ValidateBinary(); err != nil {
		log.Printf("[WARN] %v; assembly jobs will fail until it is installed", err)
	}

	transfer := download.NewClient(download.Options{
		MaxSize:   cfg.Download.MaxSize,
		Timeout:   cfg.Download.Timeout,
		UserAgent: cfg.Download.UserAgent,
	})

	// Jobs in flight are cancelled when this context closes.
	baseCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracker := assembly.NewStatusTracker()
	assemblyService := assembly.NewService(tracker, transfer, transform, baseCtx,
		assembly.WithJobTimeout(cfg.Assembly.JobTimeout),
		assembly.WithTempDir(cfg.Assembly.TempDir),
	)

	server := api.NewServer(fmt.Sprintf("%s:%d", serverHost, serverPort))
	server.SetDependencies(&types.Dependencies{
		DB:              db,
		AssemblyService: assemblyService,
		StatusTracker:   tracker,
	})
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	log.Printf("[INFO] Episode Assembly API listening on %s:%d", serverHost, serverPort)

	select {
	case <-baseCtx.Done():
		log.Printf("[INFO] Shutting down server...")
	case err := <-serverErr:
		log.Printf("[WARN] %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Printf("[INFO] Server gracefully stopped")
	return nil
}
