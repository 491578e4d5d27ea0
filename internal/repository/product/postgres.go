package product

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"jewelstore/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `slug, name, category, price, COALESCE(original_price, 0), currency, images,
description, COALESCE(short_description, ''), material, COALESCE(weight, ''), COALESCE(purity, ''),
gemstones, sizes, rating, review_count, is_new, is_bestseller, is_featured, in_stock, tags, created_at`

// Postgres implements Repository and the administrative Writer operations.
type Postgres struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) *Postgres {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Postgres{pool: pool, logger: logger}
}

func (r *Postgres) List(ctx context.Context, q Query) ([]domain.Product, int, error) {
	q = q.Normalize()
	where, args := buildFilter(q)

	countQuery := "SELECT COUNT(*) FROM products WHERE " + where
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		r.logger.Printf("product repo: count error=%v", err)
		return nil, 0, err
	}

	pageQuery := fmt.Sprintf(
		"SELECT %s FROM products WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		productColumns, where, orderClause(q.Sort), len(args)+1, len(args)+2,
	)
	args = append(args, q.Limit, q.Offset())

	rows, err := r.pool.Query(ctx, pageQuery, args...)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, 0, err
	}
	r.logger.Printf("product repo: list page=%d limit=%d count=%d total=%d", q.Page, q.Limit, len(result), total)
	return result, total, nil
}

func (r *Postgres) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	query := fmt.Sprintf("SELECT %s FROM products WHERE slug = $1", productColumns)
	row := r.pool.QueryRow(ctx, query, slug)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("product repo: get slug=%s not found", slug)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get slug=%s error=%v", slug, err)
		return nil, err
	}
	return &p, nil
}

func (r *Postgres) Related(ctx context.Context, category, excludeSlug string, limit int) ([]domain.Product, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM products WHERE category = $1 AND slug <> $2 ORDER BY created_at DESC LIMIT $3",
		productColumns,
	)
	rows, err := r.pool.Query(ctx, query, category, excludeSlug, limit)
	if err != nil {
		r.logger.Printf("product repo: related category=%s error=%v", category, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// Insert adds one product. Slugs are unique; a conflicting slug fails.
func (r *Postgres) Insert(ctx context.Context, p domain.Product) error {
	const q = `
INSERT INTO products (slug, name, category, price, original_price, currency, images, description,
    short_description, material, weight, purity, gemstones, sizes, rating, review_count,
    is_new, is_bestseller, is_featured, in_stock, tags, created_at)
VALUES ($1, $2, $3, $4, NULLIF($5, 0::numeric), $6, $7, $8, NULLIF($9, ''), $10, NULLIF($11, ''), NULLIF($12, ''),
    $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
`
	_, err := r.pool.Exec(ctx, q,
		p.Slug, p.Name, p.Category, p.Price, p.OriginalPrice, p.Currency, textArray(p.Images),
		p.Description, p.ShortDescription, p.Material, p.Weight, p.Purity,
		textArray(p.Gemstones), textArray(p.Sizes), p.Rating, p.ReviewCount,
		p.IsNew, p.IsBestseller, p.IsFeatured, p.InStock, textArray(p.Tags), p.CreatedAt,
	)
	if err != nil {
		r.logger.Printf("product repo: insert slug=%s error=%v", p.Slug, err)
	}
	return err
}

// Count returns the number of products in the store.
func (r *Postgres) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&n); err != nil {
		r.logger.Printf("product repo: count all error=%v", err)
		return 0, err
	}
	return n, nil
}

// likeEscaper makes the search term literal inside an ILIKE pattern, so that
// `%`, `_`, and `\` match themselves exactly as they do on the in-memory path.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func buildFilter(q Query) (string, []any) {
	conds := []string{"in_stock = TRUE"}
	var args []any

	args = append(args, q.MinPrice)
	conds = append(conds, fmt.Sprintf("price >= $%d", len(args)))
	args = append(args, q.MaxPrice)
	conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))

	if q.Category != "" {
		args = append(args, q.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if q.Search != "" {
		args = append(args, "%"+likeEscaper.Replace(q.Search)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(name ILIKE $%d OR description ILIKE $%d OR EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag ILIKE $%d))",
			n, n, n,
		))
	}
	if q.Featured {
		conds = append(conds, "is_featured = TRUE")
	}
	if q.Bestseller {
		conds = append(conds, "is_bestseller = TRUE")
	}
	if q.New {
		conds = append(conds, "is_new = TRUE")
	}

	return strings.Join(conds, " AND "), args
}

func orderClause(sortKey string) string {
	switch sortKey {
	case SortPriceAsc:
		return "price ASC, created_at DESC"
	case SortPriceDesc:
		return "price DESC, created_at DESC"
	case SortRating:
		return "rating DESC, created_at DESC"
	case SortPopular:
		return "review_count DESC, created_at DESC"
	default:
		return "created_at DESC"
	}
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.Slug, &p.Name, &p.Category, &p.Price, &p.OriginalPrice, &p.Currency, &p.Images,
		&p.Description, &p.ShortDescription, &p.Material, &p.Weight, &p.Purity,
		&p.Gemstones, &p.Sizes, &p.Rating, &p.ReviewCount,
		&p.IsNew, &p.IsBestseller, &p.IsFeatured, &p.InStock, &p.Tags, &p.CreatedAt,
	)
	return p, err
}

// textArray keeps text[] columns NOT NULL friendly.
func textArray(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
