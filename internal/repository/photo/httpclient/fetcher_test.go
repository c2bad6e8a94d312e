package httpclient

import (
	"bytes"
	"context"
	"image"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	photo_repo "photo-masker/internal/repository/photo"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchSuccess(t *testing.T) {
	pngBytes := encodePNG(t, 32, 32)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "image/png")
		w.Write(pngBytes)
	}))
	defer srv.Close()

	fetcher := NewFetcher(5*time.Second, 10<<20)

	data, err := fetcher.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)
}

func TestFetchRejectsContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	fetcher := NewFetcher(5*time.Second, 10<<20)

	_, err := fetcher.Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, photo_repo.ErrUnsupportedContentType)
}

func TestFetchRejectsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	fetcher := NewFetcher(5*time.Second, 10<<20)

	_, err := fetcher.Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, photo_repo.ErrBadStatus)
}

func TestFetchRejectsOversizedBody(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "content-length header over the cap",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "image/png")
				w.Header().Set("Content-Length", "4096")
				w.Write(bytes.Repeat([]byte{0xff}, 4096))
			},
		},
		{
			name: "streamed body over the cap without content-length",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "image/png")
				flusher := w.(http.Flusher)
				chunk := bytes.Repeat([]byte{0xff}, 512)
				for i := 0; i < 8; i++ {
					w.Write(chunk)
					flusher.Flush()
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			fetcher := NewFetcher(5*time.Second, 1024)

			_, err := fetcher.Fetch(context.Background(), srv.URL)
			assert.ErrorIs(t, err, photo_repo.ErrTooLarge)
		})
	}
}

func TestFetchUnreachableHost(t *testing.T) {
	fetcher := NewFetcher(500*time.Millisecond, 10<<20)

	_, err := fetcher.Fetch(context.Background(), "http://127.0.0.1:1/photo.png")
	assert.ErrorIs(t, err, photo_repo.ErrRequestFailed)
}

func TestFetchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer srv.Close()

	fetcher := NewFetcher(100*time.Millisecond, 10<<20)

	start := time.Now()
	_, err := fetcher.Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, photo_repo.ErrRequestFailed)
	assert.Less(t, time.Since(start), time.Second)
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	buf := new(bytes.Buffer)
	require.NoError(t, imaging.Encode(buf, image.NewNRGBA(image.Rect(0, 0, w, h)), imaging.PNG))
	return buf.Bytes()
}
