package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/salescrm/internal/config"
	"github.com/umalmyha/salescrm/internal/infra"
)

const DefaultPort = 3000
const DefaultShutdownTimeout = 10 * time.Second
const DefaultConnectTimeout = 5 * time.Second

func main() {
	cfg, err := config.Build()
	if err != nil {
		logrus.Fatal(err)
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), DefaultConnectTimeout)
	defer cancel()

	pgPool, err := infra.Postgresql(connectCtx, cfg.PostgresCfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer pgPool.Close()

	mongoClient, err := infra.Mongodb(connectCtx, cfg.MongoCfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logrus.Errorf("failed to disconnect from mongodb - %v", err)
		}
	}()

	redisClient, err := infra.Redis(connectCtx, cfg.RedisCfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logrus.Errorf("failed to close redis connection - %v", err)
		}
	}()

	app, err := infra.Router(pgPool, mongoClient, redisClient, cfg)
	if err != nil {
		logrus.Fatal(err)
	}

	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt)

	go func() {
		errorCh <- app.Start(fmt.Sprintf(":%d", DefaultPort))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer cancel()

		logrus.Info("shutdown signal has been sent, stopping the server...")
		if err := app.Shutdown(ctx); err != nil {
			logrus.Fatalf("failed to stop server gracefully - %s", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("shutting down the server, unexpected error occurred - %s", err)
		}
	}
}
