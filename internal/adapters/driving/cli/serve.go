package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/helio-labs/heliotime/internal/adapters/driving/httpapi"
)

var serveListenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Serves GET /sun, GET /sun.ics and GET /healthz. The config file is
watched while serving; edits apply without a restart.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveListenAddr, "listen", "", "listen address (default from config, then :8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	addr := serveListenAddr
	if addr == "" {
		addr = configStore.GetString(keyListenAddr)
	}
	if addr == "" {
		addr = DefaultListenAddr
	}

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	api := httpapi.NewServer(sunService, locationService, crossChecker, log)
	server := &http.Server{
		Addr:              addr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Hot-reload the config file while serving. Rebuilding the service
	// graph picks up new limits and providers; in-flight requests keep
	// the old ones.
	go func() {
		err := configStore.Watch(ctx, func() {
			log.Info().Str("path", configStore.Path()).Msg("config reloaded")
			if err := initServices(); err != nil {
				log.Error().Err(err).Msg("rebuilding services after config change")
				return
			}
			api.Swap(sunService, locationService, crossChecker)
		})
		if err != nil {
			log.Warn().Err(err).Msg("config watch stopped")
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	cmd.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
