package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"jewelstore/internal/catalog"
	"jewelstore/internal/config"
	"jewelstore/internal/db"
	"jewelstore/internal/domain"
	"jewelstore/internal/httpserver"
	"jewelstore/internal/inquiry"
	inquiryrepo "jewelstore/internal/repository/inquiry"
	productrepo "jewelstore/internal/repository/product"

	"github.com/jackc/pgx/v5/pgxpool"
)

// unavailableInquiries stands in for the inquiry repository when the server
// starts without a database. Reads fall back to the bundled catalog; writes
// can only report that the store is down.
type unavailableInquiries struct{}

func (unavailableInquiries) Create(ctx context.Context, in domain.Inquiry) (*domain.Inquiry, error) {
	return nil, domain.ErrStoreUnavailable
}

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	var pool *pgxpool.Pool
	if p, err := db.Connect(ctx, cfg.DBConnString); err != nil {
		logger.Printf("connect to db: %v (serving products from the bundled catalog)", err)
	} else {
		pool = p
		defer pool.Close()
	}

	fallback := productrepo.NewMemory(catalog.Seed())
	deps := httpserver.Deps{SeedSecret: cfg.SeedSecret}

	if pool != nil {
		pgRepo := productrepo.NewPostgres(pool, logger)
		deps.Catalog = catalog.New(pgRepo, fallback, logger)
		deps.SeedRepo = pgRepo
		deps.Inquiry = inquiry.New(inquiryrepo.NewPostgres(pool, logger), logger)
	} else {
		deps.Catalog = catalog.New(nil, fallback, logger)
		deps.Inquiry = inquiry.New(unavailableInquiries{}, logger)
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, pool, deps)
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
