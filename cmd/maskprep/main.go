package main

import (
	"flag"
	"image"
	"path/filepath"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/wb-go/wbf/zlog"
)

// maskprep upscales the mask assets in place: the alpha channel is resampled
// with Lanczos and the color channels are rebuilt as plain white, so the
// border art stays crisp and uniform after scaling.
func main() {
	zlog.Init()

	dir := flag.String("dir", "./masks", "masks directory")
	scale := flag.Int("scale", 2, "upscale factor")
	flag.Parse()

	if *scale < 1 {
		zlog.Logger.Fatal().Int("scale", *scale).Msg("Scale must be at least 1")
	}

	paths, err := filepath.Glob(filepath.Join(*dir, "mask_*.png"))
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("Failed to list masks")
	}
	if len(paths) == 0 {
		zlog.Logger.Fatal().Str("dir", *dir).Msg("No mask files found")
	}
	sort.Strings(paths)

	for _, path := range paths {
		if err := upscaleMask(path, *scale); err != nil {
			zlog.Logger.Fatal().Err(err).Str("mask", path).Msg("Failed to upscale mask")
		}
		zlog.Logger.Info().Str("mask", path).Int("scale", *scale).Msg("Mask upscaled")
	}
}

func upscaleMask(path string, scale int) error {
	img, err := imaging.Open(path)
	if err != nil {
		return err
	}

	bounds := img.Bounds()
	upscaled := imaging.Resize(img, bounds.Dx()*scale, bounds.Dy()*scale, imaging.Lanczos)

	out := image.NewNRGBA(upscaled.Bounds())
	for i := 0; i < len(upscaled.Pix); i += 4 {
		out.Pix[i] = 255
		out.Pix[i+1] = 255
		out.Pix[i+2] = 255
		out.Pix[i+3] = upscaled.Pix[i+3]
	}

	return imaging.Save(out, path)
}
