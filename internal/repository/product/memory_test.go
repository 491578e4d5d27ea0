package product

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"jewelstore/internal/domain"
)

// fixture returns n in-stock rings, newest-first, with ascending prices
// 10, 20, 30, ... along the slice.
func fixture(n int) []domain.Product {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	products := make([]domain.Product, n)
	for i := range products {
		products[i] = domain.Product{
			Slug:        fmt.Sprintf("ring-%02d", i),
			Name:        fmt.Sprintf("Ring %02d", i),
			Category:    "rings",
			Price:       float64((i + 1) * 10),
			Rating:      float64(i%5) + 1,
			ReviewCount: i * 3,
			InStock:     true,
			CreatedAt:   base.Add(-time.Duration(i) * time.Hour),
		}
	}
	return products
}

func TestPagination25Items12PerPage(t *testing.T) {
	repo := NewMemory(fixture(25))

	page1, total, err := repo.List(context.Background(), Query{Limit: 12, Page: 1})
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if total != 25 || len(page1) != 12 {
		t.Fatalf("page 1: total=%d len=%d, want 25/12", total, len(page1))
	}

	page3, total, err := repo.List(context.Background(), Query{Limit: 12, Page: 3})
	if err != nil {
		t.Fatalf("page 3: %v", err)
	}
	if total != 25 || len(page3) != 1 {
		t.Fatalf("page 3: total=%d len=%d, want 25/1", total, len(page3))
	}
}

func TestPageBeyondRangeKeepsTotal(t *testing.T) {
	repo := NewMemory(fixture(5))

	items, total, err := repo.List(context.Background(), Query{Limit: 12, Page: 4})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty page, got %d items", len(items))
	}
	if total != 5 {
		t.Fatalf("total = %d, want full filtered count 5", total)
	}
}

func TestLimitClamping(t *testing.T) {
	repo := NewMemory(fixture(60))

	items, _, err := repo.List(context.Background(), Query{Limit: 200})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != MaxLimit {
		t.Fatalf("limit not clamped: got %d items, want %d", len(items), MaxLimit)
	}

	items, _, err = repo.List(context.Background(), Query{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != DefaultLimit {
		t.Fatalf("default limit: got %d items, want %d", len(items), DefaultLimit)
	}
}

func TestCategoryFilterCaseInsensitiveAndAll(t *testing.T) {
	products := fixture(3)
	products[1].Category = "pendants"
	repo := NewMemory(products)

	items, total, _ := repo.List(context.Background(), Query{Category: "Rings", Limit: 10})
	if total != 2 || len(items) != 2 {
		t.Fatalf("category filter: total=%d len=%d", total, len(items))
	}

	_, total, _ = repo.List(context.Background(), Query{Category: "all", Limit: 10})
	if total != 3 {
		t.Fatalf("'all' should not filter: total=%d", total)
	}
}

func TestSearchMatchesNameDescriptionTags(t *testing.T) {
	products := fixture(4)
	products[0].Name = "Emerald Crown"
	products[1].Description = "set with an emerald accent"
	products[2].Tags = []string{"emerald", "festive"}
	repo := NewMemory(products)

	_, total, _ := repo.List(context.Background(), Query{Search: "EMERALD", Limit: 10})
	if total != 3 {
		t.Fatalf("search total = %d, want 3 (name, description, tag)", total)
	}
}

func TestSearchTreatsPatternCharactersAsLiterals(t *testing.T) {
	products := fixture(3)
	products[0].Name = "Rings"
	products[1].Name = "50% Off Pendant"
	repo := NewMemory(products)

	// "ring_" is a literal substring, not a single-character wildcard.
	_, total, _ := repo.List(context.Background(), Query{Search: "ring_", Limit: 10})
	if total != 0 {
		t.Fatalf("search ring_ total = %d, want 0", total)
	}

	_, total, _ = repo.List(context.Background(), Query{Search: "50%", Limit: 10})
	if total != 1 {
		t.Fatalf("search 50%% total = %d, want 1", total)
	}
}

func TestFlagFiltersNarrow(t *testing.T) {
	products := fixture(4)
	products[0].IsFeatured = true
	products[1].IsFeatured = true
	products[1].IsBestseller = true
	repo := NewMemory(products)

	_, total, _ := repo.List(context.Background(), Query{Featured: true, Limit: 10})
	if total != 2 {
		t.Fatalf("featured total = %d, want 2", total)
	}
	_, total, _ = repo.List(context.Background(), Query{Featured: true, Bestseller: true, Limit: 10})
	if total != 1 {
		t.Fatalf("featured+bestseller total = %d, want 1", total)
	}
}

func TestPriceRangeInclusive(t *testing.T) {
	repo := NewMemory(fixture(5)) // prices 10..50

	_, total, _ := repo.List(context.Background(), Query{MinPrice: 20, MaxPrice: 40, Limit: 10})
	if total != 3 {
		t.Fatalf("price range total = %d, want 3 (bounds inclusive)", total)
	}
}

func TestOutOfStockExcluded(t *testing.T) {
	products := fixture(3)
	products[1].InStock = false
	repo := NewMemory(products)

	_, total, _ := repo.List(context.Background(), Query{Limit: 10})
	if total != 2 {
		t.Fatalf("total = %d, want 2 in-stock", total)
	}
}

func TestSortOrders(t *testing.T) {
	repo := NewMemory(fixture(5))
	ctx := context.Background()

	items, _, _ := repo.List(ctx, Query{Sort: SortPriceAsc, Limit: 10})
	for i := 1; i < len(items); i++ {
		if items[i-1].Price > items[i].Price {
			t.Fatalf("price-asc violated: %+v", items)
		}
	}

	items, _, _ = repo.List(ctx, Query{Sort: SortPriceDesc, Limit: 10})
	for i := 1; i < len(items); i++ {
		if items[i-1].Price < items[i].Price {
			t.Fatalf("price-desc violated: %+v", items)
		}
	}

	items, _, _ = repo.List(ctx, Query{Sort: SortPopular, Limit: 10})
	for i := 1; i < len(items); i++ {
		if items[i-1].ReviewCount < items[i].ReviewCount {
			t.Fatalf("popular violated: %+v", items)
		}
	}

	// Default keeps catalog (newest-first) order.
	items, _, _ = repo.List(ctx, Query{Limit: 10})
	for i := 1; i < len(items); i++ {
		if items[i-1].CreatedAt.Before(items[i].CreatedAt) {
			t.Fatalf("newest violated: %+v", items)
		}
	}
}

func TestGetBySlug(t *testing.T) {
	repo := NewMemory(fixture(3))

	p, err := repo.GetBySlug(context.Background(), "ring-01")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Slug != "ring-01" {
		t.Fatalf("unexpected product %+v", p)
	}

	if _, err := repo.GetBySlug(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRelatedExcludesSelfAndCapsAtLimit(t *testing.T) {
	repo := NewMemory(fixture(8))

	related, err := repo.Related(context.Background(), "rings", "ring-00", 4)
	if err != nil {
		t.Fatalf("related: %v", err)
	}
	if len(related) != 4 {
		t.Fatalf("related count = %d, want 4", len(related))
	}
	for _, r := range related {
		if r.Slug == "ring-00" {
			t.Fatalf("related contains the excluded slug")
		}
	}
}
