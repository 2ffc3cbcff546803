// Package generator builds tile supplies that are solvable by
// construction: every tile placed originates from the pattern's derived
// launcher requirements, so the exact-count check always passes.
package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/Ludaxis/levelforge-sub003/internal/domain"
	"github.com/Ludaxis/levelforge-sub003/internal/launcher"
	"github.com/Ludaxis/levelforge-sub003/internal/ports"
)

// ErrBadShape reports a structurally invalid supply shape.
var ErrBadShape = errors.New("invalid supply shape")

// Default depth band for columns when the caller leaves it unset.
const (
	DefaultMinDepth = 2
	DefaultMaxDepth = 5
)

// DefaultShape returns a shape with the standard depth band.
func DefaultShape(columnCount int) domain.SupplyShape {
	return domain.SupplyShape{
		ColumnCount: columnCount,
		MinDepth:    DefaultMinDepth,
		MaxDepth:    DefaultMaxDepth,
	}
}

func normalizeShape(shape domain.SupplyShape) (domain.SupplyShape, error) {
	if shape.ColumnCount < 1 {
		return shape, fmt.Errorf("%w: column count %d", ErrBadShape, shape.ColumnCount)
	}
	if shape.MinDepth == 0 && shape.MaxDepth == 0 {
		shape.MinDepth = DefaultMinDepth
		shape.MaxDepth = DefaultMaxDepth
	}
	if shape.MinDepth < 0 || shape.MaxDepth < shape.MinDepth {
		return shape, fmt.Errorf("%w: depth band [%d,%d]", ErrBadShape, shape.MinDepth, shape.MaxDepth)
	}
	return shape, nil
}

// SinkGenerator lays out solvable supplies. Depth targets are best-effort:
// when maxDepth clamping removes capacity, the overflow pass stacks the
// leftovers anyway, because tile conservation is the hard invariant.
type SinkGenerator struct{}

func New() *SinkGenerator { return &SinkGenerator{} }

// Generate builds a supply for the pattern. The seed fully determines the
// output, so fixtures can pin layouts; callers wanting variety pass a
// fresh seed per call.
func (g *SinkGenerator) Generate(ctx context.Context, p domain.Pattern, seed int64, shape domain.SupplyShape) (domain.Supply, ports.Stats, error) {
	start := time.Now()
	shape, err := normalizeShape(shape)
	if err != nil {
		return domain.Supply{}, ports.Stats{}, err
	}
	rng := rand.New(rand.NewSource(seed))

	// 1) flat multiset: exactly 3 tiles per required launcher per color
	counts := p.ColorCounts()
	var tiles []domain.SupplyTile
	for ci := 0; ci < domain.NumColors; ci++ {
		for n := launcher.RequiredTiles(counts[ci]); n > 0; n-- {
			tiles = append(tiles, domain.SupplyTile{Color: domain.Color(ci)})
		}
	}

	// 2) uniform shuffle
	rng.Shuffle(len(tiles), func(i, j int) { tiles[i], tiles[j] = tiles[j], tiles[i] })

	// 3) per-column depth targets: floor split, extras to the first
	// total%columns targets, clamped into the depth band, order shuffled
	// so depth variety is not correlated with column index.
	total := len(tiles)
	cc := shape.ColumnCount
	targets := make([]int, cc)
	base, extra := total/cc, total%cc
	for i := range targets {
		t := base
		if i < extra {
			t++
		}
		if t < shape.MinDepth {
			t = shape.MinDepth
		}
		if t > shape.MaxDepth {
			t = shape.MaxDepth
		}
		targets[i] = t
	}
	rng.Shuffle(cc, func(i, j int) { targets[i], targets[j] = targets[j], targets[i] })

	// 4) fill each column up to its target
	supply := domain.Supply{Columns: make([][]domain.SupplyTile, cc)}
	idx := 0
	for i := 0; i < cc; i++ {
		for len(supply.Columns[i]) < targets[i] && idx < total {
			supply.Columns[i] = append(supply.Columns[i], tiles[idx])
			idx++
		}
	}

	// 5) overflow pass: clamping may have removed capacity; drop each
	// leftover into the currently shallowest column, past maxDepth if
	// need be.
	for ; idx < total; idx++ {
		shallowest := 0
		for i := 1; i < cc; i++ {
			if len(supply.Columns[i]) < len(supply.Columns[shallowest]) {
				shallowest = i
			}
		}
		supply.Columns[shallowest] = append(supply.Columns[shallowest], tiles[idx])
	}

	return supply, ports.Stats{Tiles: total, Duration: time.Since(start)}, nil
}
