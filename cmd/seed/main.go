package main

import (
	"context"
	"errors"
	"log"
	"os"

	"jewelstore/internal/config"
	"jewelstore/internal/db"
	productrepo "jewelstore/internal/repository/product"
	"jewelstore/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	count, err := seed.Apply(ctx, productrepo.NewPostgres(pool, logger), logger)
	if err != nil {
		if errors.Is(err, seed.ErrAlreadySeeded) {
			logger.Printf("database already has %d products, nothing to do", count)
			return
		}
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Printf("seeded %d products", count)
}
