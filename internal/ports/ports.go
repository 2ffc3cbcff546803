package ports

import (
	"context"
	"time"

	"github.com/Ludaxis/levelforge-sub003/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Tiles    int
	Duration time.Duration
}

// Scorer computes the full difficulty metrics for a level.
type Scorer interface {
	Score(ctx context.Context, lvl *domain.Level) (*domain.DifficultyMetrics, error)
}

// Checker verifies a supply against a pattern's launcher requirements.
type Checker interface {
	Check(ctx context.Context, p domain.Pattern, s domain.Supply, bufferCapacity int) (domain.SolvabilityReport, error)
}

// SupplyGenerator builds a supply solvable for the given pattern.
type SupplyGenerator interface {
	Generate(ctx context.Context, p domain.Pattern, seed int64, shape domain.SupplyShape) (domain.Supply, Stats, error)
}

// Storage persists and retrieves levels as JSON.
type Storage interface {
	Save(ctx context.Context, lvl *domain.Level) error
	Load(ctx context.Context, id string) (*domain.Level, error)
	List(ctx context.Context) ([]domain.LevelMeta, error)
}
