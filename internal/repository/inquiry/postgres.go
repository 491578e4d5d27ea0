package inquiry

import (
	"context"
	"io"
	"log"

	"jewelstore/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, in domain.Inquiry) (*domain.Inquiry, error) {
	const q = `
INSERT INTO inquiries (name, email, phone, country, subject, message, product_slug, status)
VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), $6, NULLIF($7, ''), $8)
RETURNING id::text, created_at
`
	res := in
	err := r.pool.QueryRow(ctx, q,
		in.Name, in.Email, in.Phone, in.Country, in.Subject, in.Message, in.ProductSlug, in.Status,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("inquiry repo: create email=%s error=%v", in.Email, err)
		return nil, err
	}
	r.logger.Printf("inquiry repo: created id=%s", res.ID)
	return &res, nil
}
