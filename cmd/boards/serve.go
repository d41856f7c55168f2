package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yuribeats/the-boards/constants"
	boardshttp "github.com/yuribeats/the-boards/http"
	"github.com/yuribeats/the-boards/telemetry"
	"github.com/yuribeats/the-boards/utils"
)

// newServeCmd creates the 'serve' subcommand.
func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   constants.CmdServe,
		Short: constants.DescServe,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			shutdownTracing, err := telemetry.Init(cfg)
			if err != nil {
				return err
			}
			defer func() {
				sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdownTracing(sctx); err != nil {
					utils.Warn("tracer shutdown: %v", err)
				}
			}()

			app, err := boardshttp.NewApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			srv := &http.Server{
				Addr:              cfg.HTTP.Addr,
				Handler:           boardshttp.NewRouter(app),
				ReadHeaderTimeout: 10 * time.Second,
			}
			errCh := make(chan error, 1)
			go func() {
				utils.Info("listening on %s", cfg.HTTP.Addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
				utils.Info("shutting down")
				sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return srv.Shutdown(sctx)
			}
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, "+constants.DefaultServeAddr+")")
	return cmd
}
