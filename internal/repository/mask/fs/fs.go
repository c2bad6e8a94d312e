package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"photo-masker/internal/domain"
	mask_repo "photo-masker/internal/repository/mask"

	"github.com/disintegration/imaging"
	"github.com/wb-go/wbf/zlog"
)

// Catalog holds every mask decoded from the masks directory. It is built
// once before the server starts serving and never mutated afterwards, so
// reads need no synchronization.
type Catalog struct {
	masks  []*domain.Mask
	byName map[string]*domain.Mask
}

func NewCatalog(dir string, logger *zlog.Zerolog) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read masks directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.ToLower(filepath.Ext(entry.Name())) != ".png" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	catalog := &Catalog{
		byName: make(map[string]*domain.Mask, len(names)),
	}

	for _, name := range names {
		img, err := imaging.Open(filepath.Join(dir, name))
		if err != nil {
			logger.Warn().Err(err).Str("mask", name).Msg("Skipping undecodable mask file")
			continue
		}

		bounds := img.Bounds()
		m := &domain.Mask{
			Name:   name,
			Image:  img,
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
		}

		catalog.masks = append(catalog.masks, m)
		catalog.byName[name] = m
	}

	if len(catalog.masks) == 0 {
		return nil, fmt.Errorf("%w in %s", mask_repo.ErrNoMasks, dir)
	}

	logger.Info().Int("count", len(catalog.masks)).Str("dir", dir).Msg("Mask catalog loaded")
	return catalog, nil
}

func (c *Catalog) List() []*domain.Mask {
	return c.masks
}

func (c *Catalog) Get(name string) (*domain.Mask, error) {
	m, ok := c.byName[name]
	if !ok {
		return nil, mask_repo.ErrMaskNotFound
	}
	return m, nil
}
