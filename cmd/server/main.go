package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/good-yellow-bee/siteboard/internal/backend"
	"github.com/good-yellow-bee/siteboard/internal/metrics"
	"github.com/good-yellow-bee/siteboard/internal/policy"
	"github.com/good-yellow-bee/siteboard/internal/web"
	"github.com/good-yellow-bee/siteboard/pkg/config"
)

var (
	configFile string
	listenAddr string
	backendURL string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "siteboard-server",
	Short: "SiteBoard Server - Construction project admin console",
	Long: `SiteBoard Server renders the administrative console for a
construction project-management backend. All project data lives on the
backend API; this server holds only sessions.`,
	RunE: runServer,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("siteboard-server %s\n", config.Version)
		fmt.Printf("  commit: %s\n", config.Commit)
		fmt.Printf("  built:  %s\n", config.BuildTime)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (optional)")
	rootCmd.PersistentFlags().StringVarP(&listenAddr, "address", "a", "", "HTTP listen address")
	rootCmd.PersistentFlags().StringVarP(&backendURL, "backend", "b", "", "backend API base URL")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	var cfg *Config

	if configFile != "" {
		var err error
		cfg, err = LoadConfig(configFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	} else {
		cfg = DefaultConfig()
	}

	// Override with CLI flags
	if listenAddr != "" {
		cfg.Server.ListenAddress = listenAddr
	}
	if backendURL != "" {
		cfg.Backend.URL = backendURL
	}
	cfg.Verbose = verbose

	if cfg.Backend.URL == "" {
		return fmt.Errorf("backend API URL is required (--backend or backend.url)")
	}

	csrfKey := os.Getenv("SITEBOARD_CSRF_KEY")
	if len(csrfKey) < 32 {
		return fmt.Errorf("SITEBOARD_CSRF_KEY environment variable must be at least 32 bytes")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Role allow-lists: defaults, optionally overridden by a file that
	// is hot-reloaded on change.
	pol := policy.Default()
	if cfg.Policy.File != "" {
		loaded, err := policy.Load(cfg.Policy.File)
		if err != nil {
			return fmt.Errorf("load policy: %w", err)
		}
		pol.Replace(loaded)
		if err := policy.Watch(ctx, pol, cfg.Policy.File); err != nil {
			return fmt.Errorf("watch policy: %w", err)
		}
		log.Printf("policy loaded from %s", cfg.Policy.File)
	}

	api := backend.New(cfg.Backend.URL)

	srv := web.NewServer(api, pol, web.Options{
		SessionTTL:      cfg.Server.SessionTTL,
		LoginsPerMinute: cfg.Server.LoginsPerMinute,
		CSRFKey:         csrfKey,
		SecureCookies:   cfg.Server.SecureCookies,
		Verbose:         cfg.Verbose,
	})

	httpServer := &http.Server{
		Addr:         cfg.Server.ListenAddress,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	metrics.SetBuildInfo(config.Version, config.Commit, config.BuildTime)
	metricsServer := metrics.NewServer(cfg.Server.MetricsAddress)
	go func() {
		if err := metricsServer.Start(); err != nil {
			log.Printf("metrics server error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("starting siteboard-server %s", config.Version)
		log.Printf("console listening on %s, backend %s", cfg.Server.ListenAddress, cfg.Backend.URL)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case sig := <-sigChan:
		log.Printf("received signal %v, shutting down...", sig)
	case err := <-errChan:
		return fmt.Errorf("run server: %w", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("metrics shutdown: %v", err)
	}

	log.Printf("server stopped")
	return nil
}
