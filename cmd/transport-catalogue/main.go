package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/config"
	"github.com/theoremus-urban-solutions/transport-catalogue/gtfs"
	"github.com/theoremus-urban-solutions/transport-catalogue/internal"
	"github.com/theoremus-urban-solutions/transport-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transport-catalogue/request"
	"github.com/theoremus-urban-solutions/transport-catalogue/server"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	input := flag.String("input", "", "JSON request document (overrides config; '-' or empty reads stdin in oneshot mode)")
	gtfsSource := flag.String("gtfs", "", "GTFS zip path or URL to serve instead of a request document (overrides config)")
	configPath := flag.String("config", "", "config file (default: search config.yml)")
	flag.Parse()

	if *mode == "oneshot" {
		internal.InitLogging(os.Stderr)
	} else {
		internal.InitLogging(os.Stdout)
	}

	cfg, err := config.LoadAppConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *input != "" {
		cfg.Input.Path = *input
	}
	if *gtfsSource != "" {
		cfg.GTFS.StaticPath = *gtfsSource
	}

	switch *mode {
	case "oneshot":
		if err := runOneshot(cfg); err != nil {
			log.Fatalf("oneshot: %v", err)
		}
	case "serve":
		h, err := loadHandler(cfg)
		if err != nil {
			log.Fatalf("load: %v", err)
		}
		srv := server.New(h, cfg)
		srv.Start()
		srv.HandleGracefulShutdown()
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

func openInput(path string) (io.ReadCloser, string, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), "stdin", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	return f, path, nil
}

func runOneshot(cfg config.AppConfig) error {
	in, _, err := openInput(cfg.Input.Path)
	if err != nil {
		return err
	}
	defer in.Close()
	return request.Process(in, os.Stdout, request.Options{Routing: &cfg.Routing})
}

// loadHandler builds the query handler from a GTFS feed when one is
// configured, else from the request document.
func loadHandler(cfg config.AppConfig) (*request.Handler, error) {
	if src := cfg.GTFS.Source(); src != "" {
		feed, err := loadFeed(cfg.GTFS, src)
		if err != nil {
			return nil, err
		}
		b := catalogue.NewBuilder()
		warnings := internal.NewWarningAggregator()
		if _, err := feed.Populate(b, warnings); err != nil {
			return nil, err
		}
		warnings.LogAll(src)
		render := renderer.DefaultSettings()
		return request.NewHandler(b.Build(), &cfg.Routing, &render)
	}

	if cfg.Input.Path == "" {
		return nil, fmt.Errorf("no input: set -input, -gtfs or the config file")
	}
	in, name, err := openInput(cfg.Input.Path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	h, _, err := request.Load(in, name, request.Options{Routing: &cfg.Routing})
	return h, err
}

// loadFeed reads the parsed feed from the gob cache when it was written for
// src, else parses the zip and refreshes the cache.
func loadFeed(cfg config.GTFSConfig, src string) (*gtfs.Feed, error) {
	if cfg.CachePath != "" {
		feed, err := gtfs.DeserializeFeedFromFile(cfg.CachePath, src)
		if err == nil {
			log.Printf("GTFS feed loaded from cache %s", cfg.CachePath)
			return feed, nil
		}
		if errors.Is(err, gtfs.ErrStaleCache) {
			log.Printf("GTFS cache %s ignored: %v", cfg.CachePath, err)
		}
	}

	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var (
		feed *gtfs.Feed
		err  error
	)
	if isURL(src) {
		var data []byte
		data, err = newFetcher(timeout).fetch(ctx, src)
		if err != nil {
			return nil, err
		}
		feed, err = gtfs.LoadFromBytes(data)
	} else {
		feed, err = gtfs.LoadFromFile(src)
	}
	if err != nil {
		return nil, err
	}

	if cfg.CachePath != "" {
		if err := gtfs.SerializeFeedToFile(feed, src, cfg.CachePath); err != nil {
			log.Printf("failed to write GTFS cache: %v", err)
		}
	}
	return feed, nil
}
