package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/cepharum/dnsd/internal/dns/common/log"
	"github.com/cepharum/dnsd/internal/dns/infra/config"
	"github.com/cepharum/dnsd/internal/dns/infra/zonestore"
	"github.com/cepharum/dnsd/internal/dns/server"
)

const (
	version = "0.1.0-dev"
	appName = "dnsd"

	defaultShutdownTimeout = 10 * time.Second
	zoneSnapshotFile       = "zones.db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	if err := log.Configure(cfg.Env, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}

	log.Info(map[string]any{
		"version":   version,
		"env":       cfg.Env,
		"log_level": cfg.LogLevel,
		"port":      cfg.Port,
		"address":   cfg.Address,
		"ttl":       cfg.TTL,
	}, "starting "+appName)

	srv, store, err := buildServer(cfg)
	if err != nil {
		log.Fatal(map[string]any{"error": err}, "failed to build server")
	}
	if store != nil {
		defer store.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info(map[string]any{"signal": sig.String()}, "shutdown signal received")
		cancel()
	}()

	srv.On(server.EventListening, func(args ...any) {
		log.Info(map[string]any{"port": cfg.Port, "address": cfg.Address}, "dns server listening")
	})
	srv.On(server.EventError, func(args ...any) {
		if len(args) > 0 {
			log.Error(map[string]any{"error": fmt.Sprint(args[0])}, "server error")
		}
	})

	srv.Listen(cfg.Port, cfg.Address, nil)

	<-ctx.Done()
	log.Info(nil, "shutdown initiated")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancelShutdown()

	done := make(chan struct{})
	go func() {
		srv.Close()
		close(done)
	}()

	select {
	case <-done:
		log.Info(nil, "graceful shutdown completed")
	case <-shutdownCtx.Done():
		log.Warn(map[string]any{"timeout": defaultShutdownTimeout}, "shutdown timeout exceeded")
	}
}

// buildServer wires a server.Server from configuration, replaying any
// zones previously persisted to the durable zone snapshot, if one exists
// at the current working directory.
func buildServer(cfg *config.AppConfig) (*server.Server, *zonestore.Store, error) {
	srv := server.Create(defaultHandler, server.Options{TTL: cfg.TTL})

	path := filepath.Join(".", zoneSnapshotFile)
	store, err := zonestore.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open zone snapshot: %w", err)
	}

	zones, err := store.LoadAll()
	if err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("load zone snapshot: %w", err)
	}
	for _, zone := range zones {
		soa := zone.SOAData()
		srv.Zone(zone.Name, soa.MName, soa.RName, soa.Serial, soa.Refresh, soa.Retry, soa.Expire, soa.TTL)
	}
	log.Info(map[string]any{"zones": len(zones), "snapshot": path}, "replayed zone snapshot")

	return srv, store, nil
}

// defaultHandler answers every query from the server's registered zone
// table alone: End's automatic SOA/authority behavior and TTL defaulting do
// all the work, so the handler itself has nothing to add.
func defaultHandler(req *server.Request, res *server.Response) {
	_ = res.End(nil)
}
