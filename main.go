package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/0xb0b1/academy/config"
	"github.com/0xb0b1/academy/content"
	"github.com/0xb0b1/academy/i18n"
	"github.com/0xb0b1/academy/models"
	"github.com/0xb0b1/academy/server"
	"github.com/0xb0b1/academy/storage"
	"github.com/0xb0b1/academy/telemetry"
)

const serviceName = "academy"

func main() {
	log.SetPrefix("[ACADEMY] ")

	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	site := config.LoadSite(cfg.SiteConfig)
	metrics := telemetry.NewMetrics()

	// Translation bundles, embedded unless a directory is configured
	var locales fs.FS = i18n.Embedded()
	if cfg.LocalesDir != "" {
		locales = os.DirFS(cfg.LocalesDir)
	}
	catalog := i18n.NewCatalog(locales)
	catalog.OnFallback = metrics.BundleFallback
	if missing, err := catalog.Check(); err != nil {
		log.Printf("Warning: translation check failed: %v", err)
	} else {
		for l, keys := range missing {
			log.Printf("Warning: %s bundle is missing %d keys: %v", l, len(keys), keys)
		}
	}

	// Blog posts for all locales
	blog, err := models.LoadBlog(content.FS)
	if err != nil {
		log.Fatalf("Failed to load posts: %v", err)
	}
	for _, l := range i18n.Supported() {
		log.Printf("Loaded %d posts for %s", blog.Count(l), l)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	inbox, err := storage.NewInbox(filepath.Join(cfg.DataDir, "inbox.json"))
	if err != nil {
		log.Fatalf("Failed to initialize inbox: %v", err)
	}
	log.Printf("Inbox initialized with %d messages", inbox.Count())

	shutdownTracing, err := telemetry.SetupTracing(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		log.Printf("Warning: tracing disabled: %v", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Printf("Warning: tracing shutdown: %v", err)
		}
	}()

	srv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: server.New(server.Options{
			Catalog:        catalog,
			Site:           site,
			Blog:           blog,
			Inbox:          inbox,
			Metrics:        metrics,
			PostsPerPage:   cfg.PostsPerPage,
			CoursesPerPage: cfg.CoursesPerPage,
			AccessLog:      os.Stdout,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Warning: server shutdown: %v", err)
		}
	}()

	log.Printf("Server starting on http://%s", cfg.HTTPAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start server: %v", err)
	}
	log.Printf("Server stopped")
}
