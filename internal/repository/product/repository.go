package product

import (
	"context"
	"strings"

	"jewelstore/internal/domain"
)

// Sort keys accepted by Query.Sort.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
	SortPopular   = "popular"
)

const (
	DefaultLimit = 12
	MaxLimit     = 50

	defaultMaxPrice = 999999
)

// Query is the filter/sort/pagination input to List. Both implementations
// apply identical semantics.
type Query struct {
	Category   string
	Search     string
	Featured   bool
	Bestseller bool
	New        bool
	MinPrice   float64
	MaxPrice   float64
	Sort       string
	Page       int
	Limit      int
}

// Normalize applies defaults and clamps. Category "all" means unfiltered.
func (q Query) Normalize() Query {
	q.Category = strings.ToLower(strings.TrimSpace(q.Category))
	if q.Category == "all" {
		q.Category = ""
	}
	q.Search = strings.TrimSpace(q.Search)
	if q.MinPrice < 0 {
		q.MinPrice = 0
	}
	if q.MaxPrice <= 0 {
		q.MaxPrice = defaultMaxPrice
	}
	switch q.Sort {
	case SortPriceAsc, SortPriceDesc, SortRating, SortPopular:
	default:
		q.Sort = SortNewest
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}

// Offset is the number of rows to skip for the requested page.
func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Repository reads products from a backing store. List returns one page plus
// the total filtered count. Related returns up to limit in-category products
// excluding the given slug, in store-native order.
type Repository interface {
	List(ctx context.Context, q Query) ([]domain.Product, int, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	Related(ctx context.Context, category, excludeSlug string, limit int) ([]domain.Product, error)
}

// Writer is the administrative surface used by seeding and import. Only the
// postgres implementation provides it; there is no fallback for writes.
type Writer interface {
	Insert(ctx context.Context, p domain.Product) error
	Count(ctx context.Context) (int, error)
}
