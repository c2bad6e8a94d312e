package mask

import (
	"context"

	"photo-masker/internal/domain"
)

type maskUsecase interface {
	MaskByURL(ctx context.Context, url string) (*domain.CompositeResult, error)
	MaskBytes(ctx context.Context, data []byte) (*domain.CompositeResult, error)
}
