package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/device-benefit-calculator/internal/config"
	appHTTP "github.com/cmlabs-hris/device-benefit-calculator/internal/handler/http"
	"github.com/cmlabs-hris/device-benefit-calculator/internal/pkg/logger"
	comparisonService "github.com/cmlabs-hris/device-benefit-calculator/internal/service/comparison"
	taxService "github.com/cmlabs-hris/device-benefit-calculator/internal/service/tax"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	level, err := logger.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		fmt.Println("Error parsing log level:", err)
		os.Exit(1)
	}
	log := logger.New(os.Stdout, level, cfg.App.Name, cfg.App.Version, cfg.App.Env)
	slog.SetDefault(log)

	schedule := taxService.DefaultSchedule()
	if err := schedule.Validate(); err != nil {
		log.Error("invalid tax schedule", slog.String("schedule", schedule.Name), slog.Any("error", err))
		os.Exit(1)
	}

	comparisonSvc := comparisonService.NewComparisonService(log)
	comparisonHandler := appHTTP.NewComparisonHandler(comparisonSvc)
	router := appHTTP.NewRouter(cfg, log, comparisonHandler)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server running", slog.String("addr", "http://localhost"+cfg.Addr()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", slog.Any("error", err))
		os.Exit(1)
	}
	log.Info("server stopped")
}
