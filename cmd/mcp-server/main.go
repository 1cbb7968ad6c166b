// cmd/mcp-server/main.go: Standalone HTTP tool server for scicalc
//
// Exposes the calculator tools as an HTTP endpoint for AI agent frameworks.
//
// Usage:
//
//	go run ./cmd/mcp-server -port 8080 -config scicalc.toml
//
// Tool call endpoint: POST /tool
// Schema endpoint:    GET  /schema
// Health endpoint:    GET  /health
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/njchilds90/goscicalc/internal/config"
	"github.com/njchilds90/goscicalc/internal/logging"
	"github.com/njchilds90/goscicalc/internal/server"
)

func main() {
	cfgPath := flag.String("config", "", "Config file (TOML or YAML)")
	port := flag.Int("port", 0, "Port to listen on (overrides config)")
	host := flag.String("host", "", "Host to bind (overrides config)")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *cfgPath != "" {
		cfg, err = config.Load(*cfgPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *host != "" {
		cfg.Server.Host = *host
	}

	logger := logging.New(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "scicalc-mcp",
	})
	logger.Info("endpoints",
		"tool", "POST /tool",
		"schema", "GET /schema",
		"health", "GET /health")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(cfg.Server, logger).ListenAndServe(ctx, cfg.Addr()); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
