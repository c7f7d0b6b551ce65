package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/mboyd/shapecast/pkg/config"
	"github.com/mboyd/shapecast/web/server"
)

func main() {
	port := flag.Int("port", 0, "Port to serve on (overrides SHAPECAST_PORT)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Port = *port
	}

	if err := server.New(cfg.Port).Start(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
