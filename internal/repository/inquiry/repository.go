package inquiry

import (
	"context"

	"jewelstore/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, in domain.Inquiry) (*domain.Inquiry, error)
}
