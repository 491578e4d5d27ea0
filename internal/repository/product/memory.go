package product

import (
	"context"
	"sort"
	"strings"

	"jewelstore/internal/domain"
)

// memoryRepo serves a fixed catalog with the same filter/sort/paginate
// semantics as the postgres implementation. It backs the transparent
// fallback path when the database is unreachable.
type memoryRepo struct {
	products []domain.Product
}

func NewMemory(products []domain.Product) Repository {
	cp := make([]domain.Product, len(products))
	copy(cp, products)
	return &memoryRepo{products: cp}
}

func (r *memoryRepo) List(_ context.Context, q Query) ([]domain.Product, int, error) {
	q = q.Normalize()

	var filtered []domain.Product
	for _, p := range r.products {
		if matches(p, q) {
			filtered = append(filtered, p)
		}
	}

	sortProducts(filtered, q.Sort)

	total := len(filtered)
	start := q.Offset()
	if start > total {
		start = total
	}
	end := start + q.Limit
	if end > total {
		end = total
	}
	page := make([]domain.Product, end-start)
	copy(page, filtered[start:end])
	return page, total, nil
}

func (r *memoryRepo) GetBySlug(_ context.Context, slug string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.Slug == slug {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) Related(_ context.Context, category, excludeSlug string, limit int) ([]domain.Product, error) {
	var result []domain.Product
	for _, p := range r.products {
		if p.Category == category && p.Slug != excludeSlug {
			result = append(result, p)
			if len(result) == limit {
				break
			}
		}
	}
	return result, nil
}

func matches(p domain.Product, q Query) bool {
	if !p.InStock {
		return false
	}
	if p.Price < q.MinPrice || p.Price > q.MaxPrice {
		return false
	}
	if q.Category != "" && strings.ToLower(p.Category) != q.Category {
		return false
	}
	if q.Featured && !p.IsFeatured {
		return false
	}
	if q.Bestseller && !p.IsBestseller {
		return false
	}
	if q.New && !p.IsNew {
		return false
	}
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) &&
			!tagMatch(p.Tags, needle) {
			return false
		}
	}
	return true
}

func tagMatch(tags []string, needle string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}

// sortProducts is stable so that equal keys keep catalog (newest-first) order,
// matching the created_at tiebreak on the postgres path.
func sortProducts(products []domain.Product, sortKey string) {
	switch sortKey {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
	case SortPopular:
		sort.SliceStable(products, func(i, j int) bool { return products[i].ReviewCount > products[j].ReviewCount })
	default:
		// Catalog order is creation order descending already.
	}
}
