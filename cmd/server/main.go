package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"jobcard/internal/app"
	"jobcard/internal/config"
	"jobcard/internal/logger"
	"jobcard/internal/scheduler"
	"jobcard/internal/server"
	httptransport "jobcard/internal/transport/http"
)

func main() {
	cfg := config.MustLoad()

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to start", zap.Error(err))
	}
	defer a.Close()

	scheduler.NewSessionSweeper(a.JobCards, cfg.Sessions.TTL, cfg.Sessions.SweepInterval, log.Named("sessions")).Start(ctx)

	router := httptransport.Router(httptransport.Services{
		Sessions: a.JobCards,
		Catalog:  a.Catalog,
		Reports:  a.Reports,
	}, log.Named("http"))

	log.Info("listening", zap.String("env", cfg.Env), zap.String("port", cfg.Server.Port))
	if err := server.Start(ctx, cfg.Server, router); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server stopped", zap.Error(err))
	}
}
