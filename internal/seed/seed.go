// Package seed loads the bundled catalog into the persistent store.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"jewelstore/internal/catalog"
	productrepo "jewelstore/internal/repository/product"
)

// ErrAlreadySeeded is returned when the store already holds products.
// Seeding never overwrites an existing catalog.
var ErrAlreadySeeded = errors.New("products already present")

// Apply inserts the bundled catalog. It refuses to run against a non-empty
// store and returns the number of products inserted.
func Apply(ctx context.Context, repo productrepo.Writer, logger *log.Logger) (int, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	existing, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	if existing > 0 {
		return existing, ErrAlreadySeeded
	}

	products := catalog.Seed()
	for _, p := range products {
		if err := repo.Insert(ctx, p); err != nil {
			return 0, fmt.Errorf("insert product %s: %w", p.Slug, err)
		}
	}
	logger.Printf("seed: inserted %d products", len(products))
	return len(products), nil
}
