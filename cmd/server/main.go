// Package main starts the pwncheck HTTP(S) server, wiring configuration,
// logging, the range client, the optional PostgreSQL audit log, services
// and handlers.
package main

import (
	"cmp"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	nethttp "net/http"

	"github.com/atinyakov/pwncheck/internal/client/rangeapi"
	"github.com/atinyakov/pwncheck/internal/config"
	"github.com/atinyakov/pwncheck/internal/db"
	"github.com/atinyakov/pwncheck/internal/logger"
	"github.com/atinyakov/pwncheck/internal/repository"
	"github.com/atinyakov/pwncheck/internal/server/handler/http"
	"github.com/atinyakov/pwncheck/internal/service"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options, err := config.ParseServer(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))
	if options.Version {
		return
	}

	// Initialize structured logging.
	lg := logger.New()
	defer func() { _ = lg.Log.Sync() }()
	if err := lg.Init(cmp.Or(options.LogLevel, "info")); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	zapLogger := lg.Log

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Range API client.
	httpClient, err := rangeapi.NewHTTPClient(time.Duration(options.Timeout), options.CAFile)
	if err != nil {
		zapLogger.Fatal("cannot build range client", zap.Error(err))
	}
	rangeClient := rangeapi.New(
		&rangeapi.HTTPGetter{Client: httpClient, UserAgent: options.UserAgent, Padding: options.Padding},
		rangeapi.Options{BaseURL: options.APIURL, Retries: options.Retries},
		zapLogger,
	)

	// Optional audit log.
	var checkRepo service.CheckRepository
	if options.DatabaseDSN != "" {
		postgresDB, err := db.InitPostgres(options.DatabaseDSN)
		if err != nil {
			zapLogger.Fatal("cannot init database", zap.Error(err))
		}
		defer postgresDB.Close()

		db.StartRetentionCleaner(ctx, postgresDB, time.Hour, time.Duration(options.Retention), zapLogger)
		checkRepo = repository.NewPostgresCheckRepository(postgresDB)
	} else {
		zapLogger.Info("no database configured, audit log disabled")
	}

	checkService := service.NewCheckService(rangeClient, checkRepo, zapLogger)

	router := http.NewRouter(
		&http.CheckHandler{CheckService: checkService},
		&http.RangeHandler{Lookup: rangeClient},
		zapLogger,
	)

	server := &nethttp.Server{
		Addr:              options.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	if options.TLSCert != "" && options.TLSKey != "" {
		zapLogger.Info("starting HTTPS server", zap.String("addr", options.Port))
		err = server.ListenAndServeTLS(options.TLSCert, options.TLSKey)
	} else {
		zapLogger.Info("starting HTTP server", zap.String("addr", options.Port))
		err = server.ListenAndServe()
	}
	if err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		zapLogger.Fatal("server failed", zap.Error(err))
	}
}
