package domain

// TargetCell is one cell of the pattern to be filled.
type TargetCell struct {
	Row   int   `json:"row"`
	Col   int   `json:"col"`
	Color Color `json:"color"`
}

// Pattern is the target pixel art. Cells are unique by (row, col).
type Pattern struct {
	Cells []TargetCell `json:"cells"`
}

// ColorCounts returns per-color pixel counts on the dense color index.
func (p Pattern) ColorCounts() [NumColors]int {
	var counts [NumColors]int
	for _, c := range p.Cells {
		if c.Color >= 0 && int(c.Color) < NumColors {
			counts[c.Color]++
		}
	}
	return counts
}

// SupplyTile is one tile in a sink column.
type SupplyTile struct {
	Color Color `json:"color"`
}

// Supply is the columnar sink feeding launchers. Within a column, index 0
// is the top, the only tile currently reachable by the player.
type Supply struct {
	Columns [][]SupplyTile `json:"columns"`
}

// TileCount returns the total number of tiles across all columns.
func (s Supply) TileCount() int {
	n := 0
	for _, col := range s.Columns {
		n += len(col)
	}
	return n
}

// ColorCounts returns per-color tile counts on the dense color index.
func (s Supply) ColorCounts() [NumColors]int {
	var counts [NumColors]int
	for _, col := range s.Columns {
		for _, t := range col {
			if t.Color >= 0 && int(t.Color) < NumColors {
				counts[t.Color]++
			}
		}
	}
	return counts
}

// ColumnDepths returns the depth of each column in order.
func (s Supply) ColumnDepths() []int {
	depths := make([]int, len(s.Columns))
	for i, col := range s.Columns {
		depths[i] = len(col)
	}
	return depths
}

// Level is a persisted puzzle level with metadata.
type Level struct {
	ID             string         `json:"id,omitempty"`
	Seed           int64          `json:"seed,omitempty"`
	Tier           DifficultyTier `json:"tier,omitempty"`
	Pattern        Pattern        `json:"pattern"`
	Supply         Supply         `json:"supply"`
	BufferCapacity int            `json:"bufferCapacity"`
	CreatedAt      int64          `json:"createdAt,omitempty"`
	// Optional author metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// LevelMeta is a lightweight listing entry.
type LevelMeta struct {
	ID        string         `json:"id"`
	Name      string         `json:"name,omitempty"`
	Tier      DifficultyTier `json:"tier"`
	CreatedAt int64          `json:"createdAt"`
}

// SolvabilityReport is the checker verdict plus itemized findings.
// Advisory findings are included in Issues but never flip IsSolvable.
type SolvabilityReport struct {
	IsSolvable bool     `json:"isSolvable"`
	Issues     []string `json:"issues,omitempty"`
}

// DifficultyMetrics is a derived, read-only snapshot of a level's
// difficulty; recomputed whenever the pattern or supply changes.
type DifficultyMetrics struct {
	TotalPixels  int             `json:"totalPixels"`
	ColorCounts  [NumColors]int  `json:"colorCounts"`
	UniqueColors int             `json:"uniqueColors"`

	LauncherCounts          [NumColors]int `json:"launcherCounts"`
	TotalLaunchers          int            `json:"totalLaunchers"`
	AverageLauncherCapacity float64        `json:"averageLauncherCapacity"`

	TotalTilesInSink int     `json:"totalTilesInSink"`
	ColumnCount      int     `json:"columnCount"`
	ColumnDepths     []int   `json:"columnDepths,omitempty"`
	MaxDepth         int     `json:"maxDepth"`
	AverageDepth     float64 `json:"averageDepth"`

	BufferRatio          float64 `json:"bufferRatio"`
	VisibilityScore      float64 `json:"visibilityScore"`
	DistributionEvenness float64 `json:"distributionEvenness"`
	DecisionComplexity   float64 `json:"decisionComplexity"`

	IsSolvable bool     `json:"isSolvable"`
	Issues     []string `json:"issues,omitempty"`

	Score int            `json:"score"`
	Tier  DifficultyTier `json:"tier"`
}

// SupplyShape configures supply generation: how many sink columns to lay
// out and the depth band each column should aim for.
type SupplyShape struct {
	ColumnCount int `json:"columnCount"`
	MinDepth    int `json:"minDepth,omitempty"`
	MaxDepth    int `json:"maxDepth,omitempty"`
}

// TimeEstimate is an expected completion time band, in minutes.
type TimeEstimate struct {
	Min     float64 `json:"min"`
	Average float64 `json:"average"`
	Max     float64 `json:"max"`
}

// SettingRange bounds one authoring parameter for a tier.
type SettingRange struct {
	Min         int `json:"min"`
	Max         int `json:"max"`
	Recommended int `json:"recommended"`
}

// TierSettings are the recommended authoring parameters for a tier.
type TierSettings struct {
	GridSize    SettingRange `json:"gridSize"`
	ColorCount  SettingRange `json:"colorCount"`
	BufferSlots SettingRange `json:"bufferSlots"`
	ColumnCount SettingRange `json:"columnCount"`
}
