package serve

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/statcalc/statcalc/cmd/config"
	"github.com/statcalc/statcalc/cmd/util"
	"github.com/statcalc/statcalc/internal/api"
	"github.com/statcalc/statcalc/internal/app/service"
	httpApi "github.com/statcalc/statcalc/internal/app/subsystems/api/http"
	"github.com/statcalc/statcalc/internal/app/subsystems/store/migrations"
	"github.com/statcalc/statcalc/internal/metrics"
	"github.com/statcalc/statcalc/pkg/log"
)

func NewCmd(cfg *config.Config, vip *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the statcalc server",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return util.ReadConfig(cmd, vip)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Parse(cfg, vip); err != nil {
				return err
			}

			return Serve(cfg)
		},
	}

	// bind config file flag
	cmd.Flags().StringP("config", "c", "", "config file (default statcalc.yaml)")

	// bind config
	config.Bind(cfg, cmd.Flags(), vip)

	// bind other flags
	cmd.Flags().Bool("ignore-asserts", false, "ignore-asserts mode")
	_ = viper.BindPFlag("ignore-asserts", cmd.Flags().Lookup("ignore-asserts"))

	return cmd
}

func Serve(cfg *config.Config) error {
	// logger
	logger, err := log.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		slog.Error("failed to create logger", "error", err)
		return err
	}
	slog.SetDefault(logger)

	// metrics
	reg := prometheus.NewRegistry()
	metrics := metrics.New(reg)

	// store
	store, err := cfg.Store.New()
	if err != nil {
		return err
	}
	if err := store.Start(); err != nil {
		var migrationErr *migrations.MigrationError
		if errors.As(err, &migrationErr) {
			slog.Error("failed to start store", "error", fmt.Sprintf("Migration %03d_%s failed: %v", migrationErr.Version, migrationErr.Name, migrationErr.Err))
		} else {
			slog.Error("failed to start store", "error", err)
		}
		return err
	}

	// calculator
	calc := service.New(store, metrics, &cfg.History)
	if err := calc.Load(); err != nil {
		slog.Error("failed to load state", "error", err)
		return err
	}

	// api
	api := api.New()

	server, err := httpApi.New(calc, metrics, &cfg.API.Http)
	if err != nil {
		return err
	}
	api.AddSubsystem(server)

	if err := api.Start(); err != nil {
		slog.Error("failed to start api", "error", err)
		return err
	}

	// metrics server
	metricsServer := newMetricsServer(cfg.MetricsAddr, reg)
	go func() {
		for {
			slog.Info("starting metrics server", "addr", metricsServer.Addr)
			if err := metricsServer.ListenAndServe(); err != nil && errors.Is(err, http.ErrServerClosed) {
				return
			}

			slog.Error("restarting metrics server...", "error", err)
			time.Sleep(5 * time.Second)
		}
	}()

	// halt until we get a shutdown signal or an error
	// occurs, whichever happens first
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		slog.Info("shutdown signal received, shutting down", "signal", s)
	case err := <-api.Errors():
		slog.Error("api error received, shutting down", "error", err)
	}

	// shutdown metrics server
	if err := metricsServer.Close(); err != nil {
		slog.Warn("error stopping metrics server", "error", err)
	}

	// stop api/store
	if err := api.Stop(); err != nil {
		slog.Error("failed to stop api", "error", err)
		return err
	}
	if err := store.Stop(); err != nil {
		slog.Error("failed to stop store", "error", err)
		return err
	}

	slog.Info("shutdown complete", "calculator", calc)
	return nil
}

func newMetricsServer(addr string, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return &http.Server{Addr: addr, Handler: mux}
}
