package catalog

import (
	"context"
	"errors"
	"testing"

	"jewelstore/internal/domain"
	productrepo "jewelstore/internal/repository/product"
)

type failingRepo struct{}

func (failingRepo) List(context.Context, productrepo.Query) ([]domain.Product, int, error) {
	return nil, 0, errors.New("connection refused")
}

func (failingRepo) GetBySlug(context.Context, string) (*domain.Product, error) {
	return nil, errors.New("connection refused")
}

func (failingRepo) Related(context.Context, string, string, int) ([]domain.Product, error) {
	return nil, errors.New("connection refused")
}

func TestQueryFallsBackWhenStoreDown(t *testing.T) {
	svc := New(failingRepo{}, productrepo.NewMemory(Seed()), nil)

	page, err := svc.Query(context.Background(), productrepo.Query{})
	if err != nil {
		t.Fatalf("expected transparent fallback, got error: %v", err)
	}
	if page.Total != len(Seed()) {
		t.Fatalf("fallback total = %d, want %d", page.Total, len(Seed()))
	}
}

func TestQueryWithoutPrimaryUsesFallback(t *testing.T) {
	svc := New(nil, productrepo.NewMemory(Seed()), nil)

	page, err := svc.Query(context.Background(), productrepo.Query{Category: "rings"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	for _, p := range page.Items {
		if p.Category != "rings" {
			t.Fatalf("unexpected category %q", p.Category)
		}
	}
}

func TestQueryPaginationMath(t *testing.T) {
	svc := New(nil, productrepo.NewMemory(Seed()), nil)

	page, err := svc.Query(context.Background(), productrepo.Query{Limit: 5, Page: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	wantPages := (len(Seed()) + 4) / 5
	if page.Pages != wantPages {
		t.Fatalf("pages = %d, want %d", page.Pages, wantPages)
	}
	if page.Page != 2 || page.Limit != 5 {
		t.Fatalf("echoed pagination wrong: %+v", page)
	}
}

func TestGetReturnsRelatedFromSameCategory(t *testing.T) {
	svc := New(nil, productrepo.NewMemory(Seed()), nil)

	p, related, err := svc.Get(context.Background(), "gold-solitaire-ring")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Name != "Gold Solitaire Ring" {
		t.Fatalf("unexpected product %+v", p)
	}
	if len(related) == 0 || len(related) > 4 {
		t.Fatalf("related count out of range: %d", len(related))
	}
	for _, r := range related {
		if r.Category != p.Category {
			t.Fatalf("related item %q from category %q", r.Slug, r.Category)
		}
		if r.Slug == p.Slug {
			t.Fatalf("related items must exclude the queried product")
		}
	}
}

func TestGetFallsBackWhenStoreDown(t *testing.T) {
	svc := New(failingRepo{}, productrepo.NewMemory(Seed()), nil)

	p, _, err := svc.Get(context.Background(), "sapphire-halo-pendant")
	if err != nil {
		t.Fatalf("expected fallback to serve product, got %v", err)
	}
	if p.Slug != "sapphire-halo-pendant" {
		t.Fatalf("unexpected product %+v", p)
	}
}

func TestGetUnknownSlug(t *testing.T) {
	svc := New(nil, productrepo.NewMemory(Seed()), nil)

	if _, _, err := svc.Get(context.Background(), "no-such-item"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSeedCatalogIsWellFormed(t *testing.T) {
	seen := map[string]bool{}
	var prev *domain.Product
	for i, p := range Seed() {
		if seen[p.Slug] {
			t.Fatalf("duplicate slug %q", p.Slug)
		}
		seen[p.Slug] = true
		if !domain.ValidCategory(p.Category) {
			t.Fatalf("invalid category %q on %q", p.Category, p.Slug)
		}
		if p.Price < 0 || p.Rating < 0 || p.Rating > 5 || p.ReviewCount < 0 {
			t.Fatalf("out-of-range numeric fields on %q", p.Slug)
		}
		if prev != nil && !p.CreatedAt.Before(prev.CreatedAt) {
			t.Fatalf("catalog not newest-first at index %d", i)
		}
		cp := p
		prev = &cp
	}
}
