// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	mglog "github.com/absmach/supermq/logger"
	"github.com/ultravioletrs/fog-report/internal"
	"github.com/ultravioletrs/fog-report/internal/env"
	"github.com/ultravioletrs/fog-report/internal/server"
	grpcserver "github.com/ultravioletrs/fog-report/internal/server/grpc"
	"github.com/ultravioletrs/fog-report/reports"
	"github.com/ultravioletrs/fog-report/reports/api"
	reportsgrpc "github.com/ultravioletrs/fog-report/reports/api/grpc"
	"github.com/ultravioletrs/fog-report/reports/manifest"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

const (
	svcName        = "fog-report"
	envPrefixGRPC  = "FOG_REPORT_GRPC_"
	defSvcGRPCPort = "7001"
)

type config struct {
	LogLevel     string `env:"FOG_REPORT_LOG_LEVEL" envDefault:"info"`
	ManifestPath string `env:"FOG_REPORT_MANIFEST"  envDefault:"reports.json"`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("failed to load %s configuration : %s\n", svcName, err)
		os.Exit(1)
	}

	var exitCode int
	defer mglog.ExitWithError(&exitCode)

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		fmt.Println(err)
		exitCode = 1
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	entries, err := manifest.Read(cfg.ManifestPath)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to read reports manifest %s: %s", cfg.ManifestPath, err))
		exitCode = 1
		return
	}

	// A registry with ambiguous identifiers must never serve.
	registry, err := reports.Load(entries)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to load report registry: %s", err))
		exitCode = 1
		return
	}
	logger.Info(fmt.Sprintf("loaded %d stub report(s) from %s", registry.Len(), cfg.ManifestPath))

	svc := newService(registry, logger)

	grpcServerConfig := server.Config{Port: defSvcGRPCPort}
	if err := env.Parse(&grpcServerConfig, env.Options{Prefix: envPrefixGRPC}); err != nil {
		logger.Error(fmt.Sprintf("failed to load %s gRPC server configuration: %s", svcName, err))
		exitCode = 1
		return
	}

	registerFogReportServiceServer := func(srv *grpc.Server) {
		reflection.Register(srv)
		reports.RegisterFogReportServiceServer(srv, reportsgrpc.NewServer(svc))
	}

	gs := grpcserver.New(ctx, cancel, svcName, grpcServerConfig, registerFogReportServiceServer, logger)

	g.Go(func() error {
		return gs.Start()
	})

	g.Go(func() error {
		return server.StopHandler(ctx, cancel, logger, svcName, gs)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("%s service terminated: %s", svcName, err))
		exitCode = 1
	}
}

func newService(registry *reports.Registry, logger *slog.Logger) reports.Service {
	svc := reports.New(registry)

	svc = api.LoggingMiddleware(svc, logger)
	counter, latency := internal.MakeMetrics("fog_report", "api")
	svc = api.MetricsMiddleware(svc, counter, latency)

	return svc
}
