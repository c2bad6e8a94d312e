package mask

import (
	"context"
	"image"

	"photo-masker/internal/domain"
)

type maskCatalog interface {
	List() []*domain.Mask
	Get(name string) (*domain.Mask, error)
}

type photoFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type maskSelector interface {
	Pick(masks []*domain.Mask) *domain.Mask
}

type compositor interface {
	Compose(photo image.Image, mask *domain.Mask) image.Image
}
