package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"photo-masker/internal/domain"
	photo_repo "photo-masker/internal/repository/photo"
)

// Fetcher downloads photo bytes from a remote URL. Every request is bounded
// by the client timeout and the configured byte cap; no retries are made.
type Fetcher struct {
	client    *http.Client
	userAgent string
	maxSize   int64
}

func NewFetcher(timeout time.Duration, maxSize int64) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: domain.DefaultUserAgent,
		maxSize:   maxSize,
	}
}

func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", photo_repo.ErrRequestFailed, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", photo_repo.ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %d", photo_repo.ErrBadStatus, resp.StatusCode)
	}

	contentType := strings.TrimSpace(strings.Split(resp.Header.Get("Content-Type"), ";")[0])
	if !domain.AllowedContentType(contentType) {
		return nil, fmt.Errorf("%w: %s", photo_repo.ErrUnsupportedContentType, contentType)
	}

	if resp.ContentLength > f.maxSize {
		return nil, fmt.Errorf("%w: %d bytes", photo_repo.ErrTooLarge, resp.ContentLength)
	}

	// Content-Length may be absent or lie; cap the stream regardless.
	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", photo_repo.ErrRequestFailed, err)
	}
	if int64(len(data)) > f.maxSize {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", photo_repo.ErrTooLarge, f.maxSize)
	}

	return data, nil
}
