package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/andon-systems/andon/internal/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the andon HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "andon.yaml", "path to the configuration file")
	return cmd
}

func runServe(configPath string) error {
	st, err := buildStack(configPath)
	if err != nil {
		return err
	}

	addr := ":3000"
	if st.cfg.Server != nil && st.cfg.Server.Addr != "" {
		addr = st.cfg.Server.Addr
	}

	ctx := context.Background()
	st.store.Start(ctx)

	srv := server.New(addr, st.engine, st.store, nil)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		color.Yellow("\nReceived %s, shutting down...", sig)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		st.store.Stop(shutdownCtx)
		if err := srv.Stop(shutdownCtx); err != nil {
			return err
		}
		color.Green("Shutdown complete.")
		return nil
	}
}
