package domain

import "image"

// Mask is a decorative overlay with an alpha channel: opaque pixels carry the
// mask's own border art, transparent pixels let the photo show through.
// Masks are loaded once at startup and shared read-only between requests.
type Mask struct {
	Name   string
	Image  image.Image
	Width  int
	Height int
}

// CompositeResult is a finished masked photo, already encoded and ready to
// be returned to the client.
type CompositeResult struct {
	MaskUsed    string
	ImageData   string
	ContentType string
}

const (
	MaxImageSize = 10 << 20

	ContentTypePNG = "image/png"

	DefaultUserAgent = "PhotoMaskingAPI/1.0"
)

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// AllowedContentType reports whether ct names one of the accepted photo
// source formats (JPEG, PNG, WebP, GIF).
func AllowedContentType(ct string) bool {
	return allowedContentTypes[ct]
}
