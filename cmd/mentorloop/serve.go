package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecgard/mentorloop/internal/api"
	"github.com/alecgard/mentorloop/internal/config"
	"github.com/alecgard/mentorloop/internal/metrics"
	"github.com/alecgard/mentorloop/internal/platform"
	"github.com/alecgard/mentorloop/internal/ratelimit"
	"github.com/alecgard/mentorloop/internal/store"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MentorLoop application server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.New()

	client := platform.NewClient(cfg.Platform.BaseURL, cfg.Platform.Timeout)
	client.SetMetrics(m)

	st := store.New(client)
	st.SetBcryptCost(cfg.Auth.BcryptCost)
	st.SetMetrics(m)
	m.RegisterStoreCollector(st.Counts)

	// Load the full working copy before taking traffic. A platform outage
	// leaves the collections empty; the server still starts.
	st.Initialize(ctx)
	users, sessions, messages := st.Counts()
	slog.Info("initial state loaded",
		"platform_url", cfg.Platform.BaseURL,
		"users", users,
		"sessions", sessions,
		"messages", messages,
	)

	router := api.NewRouter(api.RouterDeps{
		Store:        st,
		Metrics:      m,
		LoginLimiter: ratelimit.New(cfg.Auth.LoginRate, cfg.Auth.LoginWindow),
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-sigCh
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	return srv.Shutdown(shutdownCtx)
}
