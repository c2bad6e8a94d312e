package processor

import (
	"fmt"
	"math/rand"
	"testing"

	"photo-masker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectorPickCoversAllMasks(t *testing.T) {
	const picks = 2000

	masks := make([]*domain.Mask, 5)
	for i := range masks {
		masks[i] = &domain.Mask{Name: fmt.Sprintf("mask_%d.png", i+1)}
	}

	selector := NewSelector(rand.New(rand.NewSource(42)))

	counts := make(map[string]int, len(masks))
	for i := 0; i < picks; i++ {
		m := selector.Pick(masks)
		require.NotNil(t, m)
		counts[m.Name]++
	}

	// Every mask must be reachable, and none wildly off a uniform share.
	expected := picks / len(masks)
	for _, m := range masks {
		assert.Greater(t, counts[m.Name], expected/2, "mask %s under-selected", m.Name)
		assert.Less(t, counts[m.Name], expected*2, "mask %s over-selected", m.Name)
	}
}

func TestSelectorDeterministicWithSeed(t *testing.T) {
	masks := []*domain.Mask{
		{Name: "mask_1.png"},
		{Name: "mask_2.png"},
		{Name: "mask_3.png"},
	}

	first := NewSelector(rand.New(rand.NewSource(7)))
	second := NewSelector(rand.New(rand.NewSource(7)))

	for i := 0; i < 50; i++ {
		assert.Equal(t, first.Pick(masks).Name, second.Pick(masks).Name)
	}
}

func TestSelectorEmptyCatalog(t *testing.T) {
	selector := NewSelector(rand.New(rand.NewSource(1)))
	assert.Nil(t, selector.Pick(nil))
}

func TestSelectorSingleMask(t *testing.T) {
	selector := NewSelector(nil)
	masks := []*domain.Mask{{Name: "mask_1.png"}}

	for i := 0; i < 10; i++ {
		assert.Equal(t, "mask_1.png", selector.Pick(masks).Name)
	}
}
