package solvability

import (
	"context"
	"strings"
	"testing"

	"github.com/Ludaxis/levelforge-sub003/internal/domain"
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

func columnOf(color domain.Color, n int) []domain.SupplyTile {
	col := make([]domain.SupplyTile, n)
	for i := range col {
		col[i] = domain.SupplyTile{Color: color}
	}
	return col
}

func TestCheckExactMatchPasses(t *testing.T) {
	// 120 pixels pack as 100+20 → 2 launchers → exactly 6 tiles
	p := patternOf(map[domain.Color]int{domain.Red: 120})
	s := domain.Supply{Columns: [][]domain.SupplyTile{columnOf(domain.Red, 6)}}

	report, err := New().Check(context.Background(), p, s, 8)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if !report.IsSolvable {
		t.Fatalf("exact-match supply reported unsolvable: %v", report.Issues)
	}
	if len(report.Issues) != 0 {
		t.Fatalf("unexpected issues for clean level: %v", report.Issues)
	}
}

func TestCheckMismatches(t *testing.T) {
	p := patternOf(map[domain.Color]int{domain.Red: 120}) // needs 6 red tiles
	cases := []struct {
		name string
		red  int
		want string
	}{
		{"shortfall", 3, "not enough"},
		{"excess", 9, "too many"},
		{"orphan single tile", 7, "too many"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := domain.Supply{Columns: [][]domain.SupplyTile{columnOf(domain.Red, tc.red)}}
			report, err := New().Check(context.Background(), p, s, 8)
			if err != nil {
				t.Fatalf("Check failed: %v", err)
			}
			if report.IsSolvable {
				t.Fatalf("mismatched supply (%d tiles) reported solvable", tc.red)
			}
			found := false
			for _, issue := range report.Issues {
				if strings.Contains(issue, tc.want) {
					found = true
				}
			}
			if !found {
				t.Fatalf("issues %v missing %q", report.Issues, tc.want)
			}
		})
	}
}

func TestCheckExcessColorNotInPattern(t *testing.T) {
	p := patternOf(map[domain.Color]int{domain.Red: 120})
	s := domain.Supply{Columns: [][]domain.SupplyTile{
		columnOf(domain.Red, 6),
		columnOf(domain.Blue, 3),
	}}
	report, err := New().Check(context.Background(), p, s, 8)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if report.IsSolvable {
		t.Fatal("supply with orphan color reported solvable")
	}
}

func TestCheckAdvisoriesDoNotAffectVerdict(t *testing.T) {
	// 4 active colors → minSafeBuffer = max(3,3)*2 = 6; buffer 4 is short.
	counts := map[domain.Color]int{domain.Red: 20, domain.Green: 20, domain.Blue: 20, domain.Yellow: 20}
	p := patternOf(counts)
	s := domain.Supply{Columns: [][]domain.SupplyTile{
		columnOf(domain.Red, 3),
		columnOf(domain.Green, 3),
		columnOf(domain.Blue, 3),
		columnOf(domain.Yellow, 3),
	}}
	report, err := New().Check(context.Background(), p, s, 4)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if !report.IsSolvable {
		t.Fatalf("advisory-only level reported unsolvable: %v", report.Issues)
	}
	found := false
	for _, issue := range report.Issues {
		if strings.Contains(issue, "advisory: buffer") {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing buffer advisory in %v", report.Issues)
	}
}

func TestCheckNonMultipleOfThreeAdvisory(t *testing.T) {
	p := patternOf(map[domain.Color]int{domain.Red: 120}) // needs 6
	s := domain.Supply{Columns: [][]domain.SupplyTile{columnOf(domain.Red, 7)}}
	report, err := New().Check(context.Background(), p, s, 8)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	found := false
	for _, issue := range report.Issues {
		if strings.Contains(issue, "not a multiple of 3") {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing mod-3 advisory in %v", report.Issues)
	}
}

func TestCheckEmptyPattern(t *testing.T) {
	report, err := New().Check(context.Background(), domain.Pattern{}, domain.Supply{}, 0)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if !report.IsSolvable || len(report.Issues) != 0 {
		t.Fatalf("empty level not trivially solvable: %+v", report)
	}
}

func TestMinSafeBuffer(t *testing.T) {
	cases := []struct{ colors, want int }{
		{1, 6},
		{3, 6},
		{4, 6},
		{5, 8},
		{9, 16},
	}
	for _, tc := range cases {
		if got := MinSafeBuffer(tc.colors); got != tc.want {
			t.Fatalf("MinSafeBuffer(%d) = %d, want %d", tc.colors, got, tc.want)
		}
	}
}
