// Package httpd implements the HTTP server command for the comparison
// service.
package httpd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/gocompare/cmd/common"
	"github.com/jonesrussell/gocompare/internal/api"
)

// Channel buffer sizes for server lifecycle handling.
const (
	errorChannelBufferSize  = 1
	signalChannelBufferSize = 1
)

// Cmd represents the httpd command.
var Cmd = &cobra.Command{
	Use:   "httpd",
	Short: "Start the comparison HTTP API server",
	RunE:  runHTTPD,
}

// Command returns the httpd command for use in the root command
func Command() *cobra.Command {
	return Cmd
}

// runHTTPD starts the HTTP server and blocks until interrupted.
func runHTTPD(cmd *cobra.Command, _ []string) error {
	cfgFile, debug := common.GlobalFlags(cmd)
	deps, err := common.NewCommandDeps(cfgFile, debug)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	handlers := api.NewHandlers(deps.Client, deps.Config, deps.Logger)
	server := api.NewServer(handlers)

	deps.Logger.Info("Starting HTTP server", "addr", server.Addr)
	errChan := make(chan error, errorChannelBufferSize)
	go func() {
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errChan <- serveErr
		}
	}()

	return runUntilInterrupt(deps, server, errChan)
}

// runUntilInterrupt blocks until a shutdown signal or server error arrives.
func runUntilInterrupt(deps common.CommandDeps, server *http.Server, errChan chan error) error {
	sigChan := make(chan os.Signal, signalChannelBufferSize)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case serverErr := <-errChan:
		deps.Logger.Error("Server error", "error", serverErr)
		return fmt.Errorf("server error: %w", serverErr)
	case sig := <-sigChan:
		return shutdownServer(deps, server, sig)
	}
}

// shutdownServer performs graceful shutdown of the server.
func shutdownServer(deps common.CommandDeps, server *http.Server, sig os.Signal) error {
	deps.Logger.Info("Shutdown signal received", "signal", sig.String())

	shutdownCtx, cancel := common.ShutdownContext()
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		deps.Logger.Error("Failed to stop server", "error", err)
		return fmt.Errorf("failed to stop server: %w", err)
	}

	deps.Logger.Info("Server stopped successfully")
	return nil
}
