// Package solvability verifies that a supply's per-color tile counts
// exactly match a pattern's derived launcher requirements.
package solvability

import (
	"context"
	"fmt"

	"github.com/Ludaxis/levelforge-sub003/internal/domain"
	"github.com/Ludaxis/levelforge-sub003/internal/launcher"
)

// ExactChecker reports pass/fail on exact per-color tile counts.
// Excess tiles fail just like a shortfall: an orphan tile that cannot
// complete any launcher can never leave the supply.
type ExactChecker struct{}

func New() *ExactChecker { return &ExactChecker{} }

// MinSafeBuffer is the waiting-stand size below which an advisory is
// raised for a pattern with the given number of active colors.
func MinSafeBuffer(uniqueColors int) int {
	n := uniqueColors - 1
	if n < 3 {
		n = 3
	}
	return n * 2
}

func (c *ExactChecker) Check(ctx context.Context, p domain.Pattern, s domain.Supply, bufferCapacity int) (domain.SolvabilityReport, error) {
	pixels := p.ColorCounts()
	actual := s.ColorCounts()

	report := domain.SolvabilityReport{IsSolvable: true}
	uniqueColors := 0
	for ci := 0; ci < domain.NumColors; ci++ {
		required := launcher.RequiredTiles(pixels[ci])
		if required > 0 {
			uniqueColors++
		}
		if actual[ci] == required {
			continue
		}
		report.IsSolvable = false
		color := domain.Color(ci)
		if actual[ci] < required {
			report.Issues = append(report.Issues,
				fmt.Sprintf("%s: not enough tiles in supply (have %d, need %d)", color, actual[ci], required))
		} else {
			report.Issues = append(report.Issues,
				fmt.Sprintf("%s: too many tiles in supply (have %d, need %d)", color, actual[ci], required))
		}
	}

	// Advisories below never affect the verdict.
	if min := MinSafeBuffer(uniqueColors); uniqueColors > 0 && bufferCapacity < min {
		report.Issues = append(report.Issues,
			fmt.Sprintf("advisory: buffer has %d slots, %d recommended for %d colors", bufferCapacity, min, uniqueColors))
	}
	for ci := 0; ci < domain.NumColors; ci++ {
		if actual[ci] > 0 && actual[ci]%launcher.TilesPerLauncher != 0 {
			report.Issues = append(report.Issues,
				fmt.Sprintf("advisory: %s tile count %d is not a multiple of %d", domain.Color(ci), actual[ci], launcher.TilesPerLauncher))
		}
	}
	return report, nil
}
