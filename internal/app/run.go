package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"sensorhub-server/internal/config"
	"sensorhub-server/internal/httpapi"
	"sensorhub-server/internal/modules/reading"
	"sensorhub-server/internal/modules/reading/store"
	"sensorhub-server/internal/mqtt"
)

func Run(ctx context.Context, cfg config.Config) error {
	slog.Info("config loaded",
		"appEnv", cfg.AppEnv,
		"logLevel", cfg.LogLevel.String(),
		"httpAddr", cfg.HTTPAddr,
		"mqttBroker", cfg.MQTTBroker,
		"mqttPort", cfg.MQTTPort,
		"mqttTopic", cfg.MQTTTopic,
	)

	readingStore := store.NewMemoryStore()

	// Set the message handler before Connect so OnConnectHandler can subscribe
	// immediately. The broker may send queued messages right after CONNACK; we
	// must be subscribed before that to receive them.
	mqttSubscriber := mqtt.NewSubscriber(cfg)
	mux := httpapi.NewMux(mqttSubscriber)
	reading.RegisterFeature(mux, readingStore, mqttSubscriber)

	// Use a short timeout for initial MQTT connect so we don't block startup
	// when the broker is down; the service still serves HTTP without it.
	connectCtx, connectCancel := context.WithTimeout(ctx, 5*time.Second)
	err := mqttSubscriber.Connect(connectCtx)
	connectCancel()
	if err != nil {
		slog.Warn("mqtt connection failed (continuing without mqtt)", "error", err)
	}

	srv := httpapi.NewServer(cfg, mux)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http listening", "addr", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	slog.Info("mqtt disconnecting")
	mqttSubscriber.Disconnect()

	slog.Info("http shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	err = <-errCh
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return ctx.Err()
}
