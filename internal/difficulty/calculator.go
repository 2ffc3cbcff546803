// Package difficulty scores levels on a fixed six-factor linear model and
// derives tier labels, completion-time estimates, and per-tier authoring
// recommendations from the result.
package difficulty

import (
	"context"
	"math"

	"github.com/Ludaxis/levelforge-sub003/internal/domain"
	"github.com/Ludaxis/levelforge-sub003/internal/launcher"
	"github.com/Ludaxis/levelforge-sub003/internal/ports"
)

// Scoring model constants. Weights sum to 1.0; factors are clamped to
// [0,1] before weighting. Kept in one place so re-tuning never touches
// the algorithm below.
const (
	weightPixels       = 0.15
	weightColors       = 0.20
	weightBuffer       = 0.25
	weightVisibility   = 0.15
	weightDistribution = 0.10
	weightDecision     = 0.15

	pixelFloor = 400  // pixels at or below this contribute nothing
	pixelSpan  = 9600 // pixels over the floor to reach the full factor
	colorFloor = 2
	colorSpan  = 4

	// foreseeableDepth is how many tiles of a column the player can see.
	foreseeableDepth = 3
)

// Calculator derives the full metrics record for a level.
type Calculator struct {
	Checker ports.Checker
}

func NewCalculator(c ports.Checker) *Calculator {
	return &Calculator{Checker: c}
}

func (c *Calculator) Score(ctx context.Context, lvl *domain.Level) (*domain.DifficultyMetrics, error) {
	m := &domain.DifficultyMetrics{}

	m.ColorCounts = lvl.Pattern.ColorCounts()
	for ci := 0; ci < domain.NumColors; ci++ {
		m.TotalPixels += m.ColorCounts[ci]
		if m.ColorCounts[ci] > 0 {
			m.UniqueColors++
		}
		m.LauncherCounts[ci] = launcher.Needed(m.ColorCounts[ci])
		m.TotalLaunchers += m.LauncherCounts[ci]
	}
	m.AverageLauncherCapacity = float64(m.TotalPixels) / float64(max(m.TotalLaunchers, 1))

	m.TotalTilesInSink = lvl.Supply.TileCount()
	m.ColumnCount = len(lvl.Supply.Columns)
	m.ColumnDepths = lvl.Supply.ColumnDepths()
	for _, d := range m.ColumnDepths {
		if d > m.MaxDepth {
			m.MaxDepth = d
		}
	}
	if m.ColumnCount > 0 {
		m.AverageDepth = float64(m.TotalTilesInSink) / float64(m.ColumnCount)
	}

	report, err := c.Checker.Check(ctx, lvl.Pattern, lvl.Supply, lvl.BufferCapacity)
	if err != nil {
		return nil, err
	}
	m.IsSolvable = report.IsSolvable
	m.Issues = report.Issues

	// Empty levels stay at score zero rather than collecting free
	// difficulty from the buffer-pressure factor.
	if m.TotalPixels == 0 && m.TotalTilesInSink == 0 {
		m.VisibilityScore = 1
		m.DistributionEvenness = 1
		m.Score = 0
		m.Tier = TierForScore(0)
		return m, nil
	}

	m.BufferRatio = float64(lvl.BufferCapacity) / float64(max(m.UniqueColors, 1))
	m.VisibilityScore = visibility(m.ColumnDepths, m.TotalTilesInSink)
	m.DistributionEvenness = evenness(m.ColorCounts)
	m.DecisionComplexity = decisionComplexity(m.ColumnCount, m.UniqueColors, activeColumns(lvl.Supply))

	pixelFactor := clamp01(float64(m.TotalPixels-pixelFloor) / pixelSpan)
	colorFactor := clamp01(float64(m.UniqueColors-colorFloor) / colorSpan)
	bufferFactor := clamp01(1 - (m.BufferRatio - 1))
	visibilityFactor := 1 - m.VisibilityScore
	distributionFactor := 1 - m.DistributionEvenness
	decisionFactor := clamp01(m.DecisionComplexity)

	weighted := weightPixels*pixelFactor +
		weightColors*colorFactor +
		weightBuffer*bufferFactor +
		weightVisibility*visibilityFactor +
		weightDistribution*distributionFactor +
		weightDecision*decisionFactor
	m.Score = int(math.Round(100 * weighted))
	m.Tier = TierForScore(m.Score)
	return m, nil
}

// TierForScore maps a 0-100 score onto half-open tier buckets.
func TierForScore(score int) domain.DifficultyTier {
	switch {
	case score < 20:
		return domain.TierTrivial
	case score < 35:
		return domain.TierEasy
	case score < 50:
		return domain.TierMedium
	case score < 65:
		return domain.TierHard
	case score < 80:
		return domain.TierExpert
	default:
		return domain.TierNightmare
	}
}

// visibility models that only the top few tiles of a column are
// foreseeable; an empty sink counts as fully visible.
func visibility(depths []int, totalTiles int) float64 {
	if totalTiles == 0 {
		return 1
	}
	seen := 0
	for _, d := range depths {
		seen += min(d, foreseeableDepth)
	}
	return float64(seen) / float64(totalTiles)
}

// evenness is 1-cv over the nonzero per-color counts, floored at 0, and
// defined as 1 when at most one color is present.
func evenness(counts [domain.NumColors]int) float64 {
	var present []int
	for _, n := range counts {
		if n > 0 {
			present = append(present, n)
		}
	}
	if len(present) <= 1 {
		return 1
	}
	mean := 0.0
	for _, n := range present {
		mean += float64(n)
	}
	mean /= float64(len(present))
	variance := 0.0
	for _, n := range present {
		d := float64(n) - mean
		variance += d * d
	}
	variance /= float64(len(present))
	cv := math.Sqrt(variance) / mean
	if cv >= 1 {
		return 0
	}
	return 1 - cv
}

func decisionComplexity(columnCount, uniqueColors, active int) float64 {
	if columnCount == 0 {
		return 0
	}
	return 0.4*(float64(columnCount)/10) +
		0.4*(float64(uniqueColors)/6) +
		0.2*(float64(active)/float64(columnCount))
}

func activeColumns(s domain.Supply) int {
	n := 0
	for _, col := range s.Columns {
		if len(col) > 0 {
			n++
		}
	}
	return n
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
