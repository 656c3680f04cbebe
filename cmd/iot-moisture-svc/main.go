package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/greenmesh/iot-moisture-svc/internal/pkg/application/readings"
	"github.com/greenmesh/iot-moisture-svc/internal/pkg/infrastructure/router"
	"github.com/greenmesh/iot-moisture-svc/internal/pkg/infrastructure/storage"
	"github.com/greenmesh/iot-moisture-svc/internal/pkg/presentation/api"
	"github.com/joho/godotenv"
)

const serviceName string = "iot-moisture-svc"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode
)

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "3000",

		dbHost:     "localhost",
		dbUser:     "postgres",
		dbPassword: "postgres",
		dbPort:     "5432",
		dbName:     "plantdata",
		dbSSLMode:  "disable",
	}
}

func main() {
	godotenv.Load()

	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	s, err := storage.New(ctx, storage.NewConfig(
		flags[dbHost], flags[dbUser], flags[dbPassword], flags[dbPort], flags[dbName], flags[dbSSLMode],
	))
	exitIf(err, logger, "could not connect to database")

	err = s.Initialize(ctx)
	exitIf(err, logger, "could not initialize database")

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")

	svc := readings.New(s, messenger)

	messenger.Start()

	err = svc.RegisterTopicMessageHandler(ctx)
	exitIf(err, logger, "failed to register topic message handler")

	mux, err := api.RegisterHandlers(ctx, router.New(serviceName), svc)
	exitIf(err, logger, "failed to register handlers")

	webServer := &http.Server{
		Addr:    net.JoinHostPort(flags[listenAddress], flags[servicePort]),
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting to listen for incoming connections", "port", flags[servicePort])
		serveErr <- webServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			exitIf(err, logger, "failed to serve requests")
		}
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = webServer.Shutdown(shutdownCtx)
	if err != nil {
		logger.Error("failed to shutdown web server", "err", err.Error())
	}

	messenger.Close()
	s.Close()
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef(ctx, "PORT", flags[servicePort])

	flags[dbHost] = envOrDef(ctx, "DB_HOST", flags[dbHost])
	flags[dbPort] = envOrDef(ctx, "DB_PORT", flags[dbPort])
	flags[dbName] = envOrDef(ctx, "DB_NAME", flags[dbName])
	flags[dbUser] = envOrDef(ctx, "DB_USER", flags[dbUser])
	flags[dbPassword] = envOrDef(ctx, "DB_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef(ctx, "DB_SSLMODE", flags[dbSSLMode])

	return ctx, flags
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
