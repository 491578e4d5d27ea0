// Package catalog answers product queries. Reads try the persistent store
// first and fall back transparently to the bundled catalog when the store is
// unavailable; the caller never sees a hard failure for a read the fallback
// can satisfy.
package catalog

import (
	"context"
	"errors"
	"io"
	"log"

	"jewelstore/internal/domain"
	productrepo "jewelstore/internal/repository/product"
)

const relatedLimit = 4

// Page is one page of query results plus pagination math.
type Page struct {
	Items []domain.Product
	Total int
	Page  int
	Limit int
	Pages int
}

type Service struct {
	primary  productrepo.Repository
	fallback productrepo.Repository
	logger   *log.Logger
}

// New builds a Service. primary may be nil when no store is configured;
// fallback must not be.
func New(primary, fallback productrepo.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{primary: primary, fallback: fallback, logger: logger}
}

// Query returns one page of filtered, sorted products. Both paths apply
// identical semantics, so a fallback answer is indistinguishable apart from
// dataset contents.
func (s *Service) Query(ctx context.Context, q productrepo.Query) (Page, error) {
	q = q.Normalize()

	items, total, err := s.list(ctx, q)
	if err != nil {
		return Page{}, err
	}

	pages := (total + q.Limit - 1) / q.Limit
	return Page{
		Items: items,
		Total: total,
		Page:  q.Page,
		Limit: q.Limit,
		Pages: pages,
	}, nil
}

func (s *Service) list(ctx context.Context, q productrepo.Query) ([]domain.Product, int, error) {
	if s.primary != nil {
		items, total, err := s.primary.List(ctx, q)
		if err == nil {
			return items, total, nil
		}
		s.logger.Printf("catalog: store unavailable for list, using fallback: %v", err)
	}
	return s.fallback.List(ctx, q)
}

// Get returns one product by slug plus up to 4 related items from the same
// category. A store miss falls through to the bundled catalog, matching the
// list path's resilience.
func (s *Service) Get(ctx context.Context, slug string) (*domain.Product, []domain.Product, error) {
	repo := s.fallback
	var p *domain.Product
	if s.primary != nil {
		got, err := s.primary.GetBySlug(ctx, slug)
		if err == nil {
			p = got
			repo = s.primary
		} else if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Printf("catalog: store unavailable for get, using fallback: %v", err)
		}
	}
	if p == nil {
		got, err := repo.GetBySlug(ctx, slug)
		if err != nil {
			return nil, nil, err
		}
		p = got
		repo = s.fallback
	}

	related, err := repo.Related(ctx, p.Category, p.Slug, relatedLimit)
	if err != nil {
		s.logger.Printf("catalog: related lookup failed for slug=%s: %v", slug, err)
		related = nil
	}
	return p, related, nil
}
