package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"pos-catalog/internal/config"
	"pos-catalog/internal/domain"
	"pos-catalog/internal/httpserver"
	"pos-catalog/internal/importer"
	"pos-catalog/internal/seed"
	cartsvc "pos-catalog/internal/service/cart"
	categorysvc "pos-catalog/internal/service/category"
	productsvc "pos-catalog/internal/service/product"
	"pos-catalog/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	catalog := store.New(store.Options{PlaceholderImage: cfg.PlaceholderImage}, logger)
	products, err := loadCatalog(cfg.CatalogFile, catalog.Options())
	if err != nil {
		logger.Fatalf("load catalog: %v", err)
	}
	opts := catalog.Options()
	count := seed.Apply(catalog, products, opts.PlaceholderImage, opts.DefaultDescription)
	logger.Printf("catalog ready with %d products", count)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		ProductSvc:  productsvc.New(catalog),
		CartSvc:     cartsvc.New(catalog),
		CategorySvc: categorysvc.New(catalog),
	}, cfg.CORSAllowedOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

// loadCatalog reads the optional catalog CSV. No file means the demo catalog.
func loadCatalog(path string, opts store.Options) ([]domain.Product, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return importer.NewCSVImporter(f, opts).Run()
}
