// bankd CLI - serves the simulated account-management REST backend.
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

	"github.com/getbankd/bankd/pkg/backend"
	"github.com/getbankd/bankd/pkg/config"
	"github.com/getbankd/bankd/pkg/logging"
	"github.com/getbankd/bankd/pkg/store"
)

// Build-time variables set via ldflags.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

var (
	cfgPath   string
	addr      string
	dataDir   string
	latency   time.Duration
	ephemeral bool
)

var rootCmd = &cobra.Command{
	Use:   "bankd",
	Short: "bankd is a simulated account-management REST backend",
	Long: `bankd serves a fake bank-account API for backend-less UI development:
list/search/add/edit/delete accounts plus login and registration, backed by a
durable keyed store and delivered with a fixed simulated network latency.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the fake API server",
	RunE:  runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bankd %s (commit %s, built %s)\n", Version, Commit, BuildDate)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to YAML config file")
	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	serveCmd.Flags().StringVar(&dataDir, "data-dir", "", "Data directory for durable collections (overrides config)")
	serveCmd.Flags().DurationVar(&latency, "latency", 0, "Simulated network delay per response (overrides config)")
	serveCmd.Flags().BoolVar(&ephemeral, "ephemeral", false, "Keep collections in memory only")

	rootCmd.AddCommand(serveCmd, versionCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Addr = addr
	}
	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir = dataDir
	}
	if cmd.Flags().Changed("latency") {
		cfg.Latency = config.Duration(latency)
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: logging.ParseFormat(cfg.Log.Format),
	})

	var kv store.KV
	if ephemeral || cfg.DataDir == "" {
		kv = store.NewMemKV()
	} else {
		kv = store.NewFileKV(cfg.DataDir)
	}

	st, err := store.Open(kv, store.DefaultSeed())
	if err != nil {
		return fmt.Errorf("open record store: %w", err)
	}

	router, err := backend.NewRouter(st, backend.Options{
		Latency:     cfg.Latency.Std(),
		EnforceAuth: cfg.EnforceAuth,
		Logger:      log,
	})
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: backend.NewHTTPHandler(router, nil),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("bankd listening", "addr", cfg.Addr, "latency", cfg.Latency.Std(), "ephemeral", ephemeral)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return nil
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
