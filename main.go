package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/facet-platform/facet/internal/api"
	"github.com/facet-platform/facet/internal/manifest"
	"github.com/facet-platform/facet/internal/registry"
)

func main() {
	var listenAddr string
	var manifestDir string
	var dev bool

	flag.StringVar(&listenAddr, "listen", ":8080", "The address the resolution API binds to.")
	flag.StringVar(&manifestDir, "manifest-dir", "", "Directory of component manifests (*.yaml) to preload.")
	flag.BoolVar(&dev, "dev", false, "Enable development logging.")
	flag.Parse()

	logger, err := newLogger(dev)
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	setupLog := logger.Named("setup")

	reg := registry.New()
	if manifestDir != "" {
		n, err := preload(reg, manifestDir, setupLog)
		if err != nil {
			setupLog.Error("unable to preload manifests", zap.Error(err))
			os.Exit(1)
		}
		setupLog.Info("manifests preloaded", zap.Int("components", n), zap.String("dir", manifestDir))
	}

	server := api.NewServer(reg, logger.Named("api"), listenAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			setupLog.Error("api server failed", zap.Error(err))
			os.Exit(1)
		}
	case <-ctx.Done():
		setupLog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			setupLog.Error("shutdown failed", zap.Error(err))
			os.Exit(1)
		}
	}
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// preload registers every *.yaml / *.yml manifest found in dir.
func preload(reg *registry.Registry, dir string, log *zap.Logger) (int, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.y*ml"))
	if err != nil {
		return 0, err
	}
	count := 0
	for _, path := range matches {
		doc, err := manifest.LoadFile(path)
		if err != nil {
			return count, err
		}
		reg.Put(doc.Component, doc.Schema)
		log.Info("component loaded",
			zap.String("component", doc.Component.ID.String()),
			zap.String("file", filepath.Base(path)),
		)
		count++
	}
	return count, nil
}
