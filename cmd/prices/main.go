package main

import (
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"PriceRegistry/internal/registry"
	"PriceRegistry/pkg/kit"
)

func main() {
	service := "prices"
	log := kit.NewLogger(service, getenv("LOG_LEVEL", "info"))
	defer func() { _ = log.Sync() }()

	addr := getenv("ADDR", "127.0.0.1:3001")

	s := &registry.Server{
		Store: registry.NewStore(),
		IDs:   registry.RandomIDs{},
		Log:   log,
	}

	h := registry.NewHandler(s, registry.HTTPDeps{
		Log:      log,
		Service:  service,
		Registry: prometheus.NewRegistry(),

		MetricsEnabled: getenv("METRICS_ENABLED", "") == "true",
		MetricsToken:   getenv("METRICS_TOKEN", ""),

		WriteLimit:         atoienv("WRITE_RATE_LIMIT", 0),
		WriteWindowSeconds: atoienv("WRITE_RATE_WINDOW_SECONDS", 60),
	})

	shutdown := time.Duration(atoienv("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second
	if err := kit.RunHTTPServer(addr, h, log, shutdown); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoienv(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
