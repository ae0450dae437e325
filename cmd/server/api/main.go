package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/reign/pkg/api"
	"github.com/cbodonnell/reign/pkg/config"
	"github.com/cbodonnell/reign/pkg/log"
	"github.com/cbodonnell/reign/pkg/repositories"
	"github.com/cbodonnell/reign/pkg/version"
)

func main() {
	envConfig, err := config.ParseEnv()
	if err != nil {
		panic(fmt.Sprintf("Failed to parse environment: %v", err))
	}

	port := flag.Int("port", 9090, "port to listen on")
	allowOrigin := flag.String("allow-origin", "*", "value of the Access-Control-Allow-Origin header")
	logLevel := flag.String("log-level", envConfig.LogLevel, "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting api server version %s", version.Get())
	ctx := context.Background()

	connStr := envConfig.DatabaseURL
	if connStr == "" {
		connStr = "sqlite://reign.db"
	}

	repository, err := repositories.NewRepository(ctx, connStr)
	if err != nil {
		panic(fmt.Sprintf("Failed to create repository: %v", err))
	}
	defer repository.Close(ctx)

	apiServerOpts := api.NewAPIServerOptions{
		Port:        *port,
		AllowOrigin: *allowOrigin,
		Repository:  repository,
	}
	if envConfig.TLSEnabled() {
		apiServerOpts.TLS = &api.TLSConfig{
			CertFile: envConfig.APITLSCertFile,
			KeyFile:  envConfig.APITLSKeyFile,
		}
	}
	server := api.NewAPIServer(apiServerOpts)
	go server.Start()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt

	log.Info("Shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		log.Error("Failed to stop server: %v", err)
	}
}
