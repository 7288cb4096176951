package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"tapecalc/internal/app"
	"tapecalc/internal/config"
	"tapecalc/internal/logger"
	"tapecalc/internal/metrics"
	"tapecalc/internal/server"
)

var log = logger.ForComponent("main")

func main() {
	var home, addr string
	cmd := &cobra.Command{
		Use:          "tapecalc-server",
		Short:        "Serve the tape calculator over HTTP",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return run(ctx, home, addr)
		},
	}
	cmd.Flags().StringVar(&home, "home", "", "data dir (default $TAPECALC_HOME or ~/.tapecalc)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, home, addr string) error {
	if home == "" {
		dir, err := config.DefaultHome()
		if err != nil {
			return err
		}
		home = dir
	}
	if err := os.MkdirAll(home, 0o700); err != nil {
		return err
	}
	cfg, err := config.Load(home)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger.Init(cfg.LoggerConfig())

	m := metrics.New("tapecalc")
	w, err := app.NewWire(app.Config{
		Home:       home,
		Backend:    cfg.Backend(),
		Passphrase: cfg.Passphrase,
		Precision:  cfg.PrecisionValue(),
		Display:    cfg.DisplayOptions(),
		Observer:   m,
	})
	if err != nil {
		return err
	}
	defer w.Close()

	live := config.NewLive(cfg)
	if err := live.Watch(ctx, home, func(next config.Config) {
		logger.Init(next.LoggerConfig())
		log.Info("config reloaded", "log_level", next.Log.Level)
	}); err != nil {
		log.Warn("config watch disabled", "err", err)
	}

	srv := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: server.NewRouter(server.Deps{
			History: w.History,
			Saved:   w.Saved,
			Metrics: m,
		}, server.RouterConfig{
			MetricsEnabled: cfg.Server.Metrics,
			MetricsPath:    cfg.Server.MetricsPath,
			RequestTimeout: cfg.Server.RequestTimeout,
			Precision:      cfg.PrecisionValue(),
			Display:        cfg.DisplayOptions(),
		}),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", srv.Addr, "store", cfg.Store, "home", home)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}
