package mask

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"photo-masker/internal/domain"
	photo_repo "photo-masker/internal/repository/photo"
	"photo-masker/internal/usecase/processor"

	"github.com/disintegration/imaging"
	"github.com/wb-go/wbf/zlog"
)

type MaskUsecase struct {
	catalog    maskCatalog
	fetcher    photoFetcher
	selector   maskSelector
	compositor compositor
	logger     *zlog.Zerolog
	maxSize    int64
}

func NewMaskUsecase(catalog maskCatalog, fetcher photoFetcher, selector maskSelector, compositor compositor, logger *zlog.Zerolog, maxSize int64) *MaskUsecase {
	return &MaskUsecase{
		catalog:    catalog,
		fetcher:    fetcher,
		selector:   selector,
		compositor: compositor,
		logger:     logger,
		maxSize:    maxSize,
	}
}

// MaskByURL fetches photo bytes from the given URL and applies a random mask.
func (u *MaskUsecase) MaskByURL(ctx context.Context, url string) (*domain.CompositeResult, error) {
	data, err := u.fetcher.Fetch(ctx, url)
	if err != nil {
		switch {
		case errors.Is(err, photo_repo.ErrTooLarge):
			return nil, fmt.Errorf("%w: %v", ErrPayloadTooLarge, err)
		case errors.Is(err, photo_repo.ErrUnsupportedContentType):
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
		}
	}

	return u.MaskBytes(ctx, data)
}

// MaskBytes applies a random mask to already-obtained photo bytes.
func (u *MaskUsecase) MaskBytes(ctx context.Context, data []byte) (*domain.CompositeResult, error) {
	if int64(len(data)) > u.maxSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(data))
	}

	photo, err := processor.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	chosen := u.selector.Pick(u.catalog.List())
	if chosen == nil {
		// Startup fails fast on an empty catalog, so this should never
		// trigger; guarded anyway so the usecase stands on its own.
		return nil, errors.New("mask catalog is empty")
	}

	composite := u.compositor.Compose(photo, chosen)

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, composite, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode composite: %w", err)
	}

	u.logger.Info().
		Str("mask", chosen.Name).
		Int("photo_bytes", len(data)).
		Int("png_bytes", buf.Len()).
		Msg("Mask applied")

	return &domain.CompositeResult{
		MaskUsed:    chosen.Name,
		ImageData:   base64.StdEncoding.EncodeToString(buf.Bytes()),
		ContentType: domain.ContentTypePNG,
	}, nil
}
