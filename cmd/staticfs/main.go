package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/naivary/staticfs"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	port := flag.Int("port", 0, "port to serve on (overrides the config)")
	dir := flag.String("dir", "", "directory to serve (overrides the config)")
	flag.Parse()

	cfg := staticfs.DefaultConfig()
	if *configPath != "" {
		c, err := staticfs.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = c
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *dir != "" {
		cfg.Root = *dir
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	types := staticfs.NewContentTypeTable(cfg.MimeTypes)
	handler := staticfs.NewHTTPHandler(osfs.New(cfg.Root), types, staticfs.DefaultHTTPHandlerOptions())
	srv := staticfs.NewServer(cfg, handler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := srv.ListenAndServe(ctx); err != nil {
		log.Fatalf("serve failure: %v", err)
	}
}
