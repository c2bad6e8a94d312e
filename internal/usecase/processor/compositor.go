package processor

import (
	"image"

	"photo-masker/internal/domain"

	"github.com/disintegration/imaging"
)

// Compositor crops a photo to a mask's aspect ratio, resizes it to the mask's
// exact dimensions and draws the mask's border art on top through its alpha
// channel.
type Compositor struct{}

func NewCompositor() *Compositor {
	return &Compositor{}
}

// Compose returns an image of exactly mask.Width x mask.Height.
//
// The crop rectangle matches the mask's aspect ratio before any resampling
// happens, so the single Lanczos resize preserves aspect fidelity. When the
// photo is relatively wider than the mask the crop is horizontally centered;
// when it is relatively taller the crop always starts at the top row, so a
// portrait's face near the top edge survives the vertical cut.
func (c *Compositor) Compose(photo image.Image, mask *domain.Mask) image.Image {
	cropped := c.cropToRatio(photo, mask.Width, mask.Height)
	resized := imaging.Resize(cropped, mask.Width, mask.Height, imaging.Lanczos)
	return imaging.Overlay(resized, mask.Image, image.Pt(0, 0), 1.0)
}

func (c *Compositor) cropToRatio(photo image.Image, mw, mh int) image.Image {
	bounds := photo.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	// Compare W/H against Mw/Mh in integers: W*Mh vs H*Mw.
	switch {
	case w*mh > h*mw:
		// Photo relatively wider: keep full height, center horizontally.
		// Extreme aspect mismatches truncate to zero; a crop is never
		// narrower than one pixel.
		cw := h * mw / mh
		if cw < 1 {
			cw = 1
		}
		x := bounds.Min.X + (w-cw)/2
		return imaging.Crop(photo, image.Rect(x, bounds.Min.Y, x+cw, bounds.Min.Y+h))
	case w*mh < h*mw:
		// Photo relatively taller: keep full width, crop from the top.
		ch := w * mh / mw
		if ch < 1 {
			ch = 1
		}
		return imaging.Crop(photo, image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Min.X+w, bounds.Min.Y+ch))
	default:
		// Aspect ratios match exactly, no crop.
		return photo
	}
}
