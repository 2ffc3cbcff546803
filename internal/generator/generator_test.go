package generator

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/Ludaxis/levelforge-sub003/internal/domain"
	"github.com/Ludaxis/levelforge-sub003/internal/launcher"
	"github.com/Ludaxis/levelforge-sub003/internal/solvability"
)

func patternOf(counts map[domain.Color]int) domain.Pattern {
	var p domain.Pattern
	row := 0
	for color, n := range counts {
		for i := 0; i < n; i++ {
			p.Cells = append(p.Cells, domain.TargetCell{Row: row, Col: i, Color: color})
		}
		row++
	}
	return p
}

func TestGenerateSingleLauncherPattern(t *testing.T) {
	// 5 pixels → 1 launcher → exactly 3 tiles of that color, 0 of any other
	p := patternOf(map[domain.Color]int{domain.Green: 5})
	supply, st, err := New().Generate(context.Background(), p, 1, DefaultShape(2))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	counts := supply.ColorCounts()
	for ci := 0; ci < domain.NumColors; ci++ {
		want := 0
		if domain.Color(ci) == domain.Green {
			want = 3
		}
		if counts[ci] != want {
			t.Fatalf("%s tiles = %d, want %d", domain.Color(ci), counts[ci], want)
		}
	}
	if st.Tiles != 3 {
		t.Fatalf("Stats.Tiles = %d, want 3", st.Tiles)
	}
}

func TestGenerateRoundtripSolvable(t *testing.T) {
	p := patternOf(map[domain.Color]int{
		domain.Red:    150,
		domain.Blue:   77,
		domain.Yellow: 240,
		domain.Purple: 12,
	})
	checker := solvability.New()
	for columns := 1; columns <= 12; columns++ {
		supply, _, err := New().Generate(context.Background(), p, int64(columns), DefaultShape(columns))
		if err != nil {
			t.Fatalf("Generate(%d columns) failed: %v", columns, err)
		}
		if len(supply.Columns) != columns {
			t.Fatalf("column count = %d, want %d", len(supply.Columns), columns)
		}
		report, err := checker.Check(context.Background(), p, supply, 100)
		if err != nil {
			t.Fatalf("Check failed: %v", err)
		}
		if !report.IsSolvable {
			t.Fatalf("generated supply unsolvable at %d columns: %v", columns, report.Issues)
		}
	}
}

func TestGenerateConservationPerColor(t *testing.T) {
	counts := map[domain.Color]int{domain.Red: 150, domain.Cyan: 61, domain.Brown: 20}
	p := patternOf(counts)
	supply, _, err := New().Generate(context.Background(), p, 7, DefaultShape(4))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	got := supply.ColorCounts()
	pixels := p.ColorCounts()
	for ci := 0; ci < domain.NumColors; ci++ {
		want := launcher.RequiredTiles(pixels[ci])
		if got[ci] != want {
			t.Fatalf("%s: supply has %d tiles, want %d", domain.Color(ci), got[ci], want)
		}
	}
}

func TestGenerateDepthAccountingUnderOverflow(t *testing.T) {
	// 1000 pixels → 10 launchers → 30 tiles; 3 columns capped at depth 5
	// hold only 15, so the overflow pass must stack past maxDepth while
	// still conserving every tile.
	p := patternOf(map[domain.Color]int{domain.Orange: 1000})
	shape := domain.SupplyShape{ColumnCount: 3, MinDepth: 2, MaxDepth: 5}
	supply, st, err := New().Generate(context.Background(), p, 99, shape)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	sum := 0
	overflowed := false
	for _, d := range supply.ColumnDepths() {
		sum += d
		if d > shape.MaxDepth {
			overflowed = true
		}
	}
	if sum != st.Tiles || sum != supply.TileCount() {
		t.Fatalf("depth sum %d != tile count %d", sum, st.Tiles)
	}
	if sum != 30 {
		t.Fatalf("tile count = %d, want 30", sum)
	}
	if !overflowed {
		t.Fatal("expected at least one column past maxDepth when targets are capped")
	}
}

func TestGenerateDepthTargetsRespectedWithoutOverflow(t *testing.T) {
	// 12 tiles across 4 columns fits the band exactly: 3 per column.
	p := patternOf(map[domain.Color]int{domain.Red: 120, domain.Blue: 120})
	supply, _, err := New().Generate(context.Background(), p, 5, domain.SupplyShape{ColumnCount: 4, MinDepth: 2, MaxDepth: 5})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for i, d := range supply.ColumnDepths() {
		if d < 2 || d > 5 {
			t.Fatalf("column %d depth %d outside [2,5]", i, d)
		}
	}
}

func TestGenerateDeterministicUnderSeed(t *testing.T) {
	p := patternOf(map[domain.Color]int{domain.Red: 150, domain.Blue: 240})
	a, _, err := New().Generate(context.Background(), p, 42, DefaultShape(5))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, _, err := New().Generate(context.Background(), p, 42, DefaultShape(5))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different supplies")
	}
	c, _, err := New().Generate(context.Background(), p, 43, DefaultShape(5))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if reflect.DeepEqual(a, c) {
		t.Fatal("different seeds produced identical supplies (suspicious shuffle)")
	}
}

func TestGenerateEmptyPattern(t *testing.T) {
	supply, st, err := New().Generate(context.Background(), domain.Pattern{}, 1, DefaultShape(3))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if supply.TileCount() != 0 || st.Tiles != 0 {
		t.Fatalf("empty pattern produced %d tiles", supply.TileCount())
	}
	if len(supply.Columns) != 3 {
		t.Fatalf("column count = %d, want 3", len(supply.Columns))
	}
}

func TestGenerateBadShape(t *testing.T) {
	p := patternOf(map[domain.Color]int{domain.Red: 20})
	cases := []struct {
		name  string
		shape domain.SupplyShape
	}{
		{"zero columns", domain.SupplyShape{ColumnCount: 0}},
		{"negative columns", domain.SupplyShape{ColumnCount: -2}},
		{"negative min depth", domain.SupplyShape{ColumnCount: 3, MinDepth: -1, MaxDepth: 4}},
		{"inverted band", domain.SupplyShape{ColumnCount: 3, MinDepth: 5, MaxDepth: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := New().Generate(context.Background(), p, 1, tc.shape)
			if !errors.Is(err, ErrBadShape) {
				t.Fatalf("err = %v, want ErrBadShape", err)
			}
		})
	}
}
