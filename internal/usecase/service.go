package usecase

import (
	"context"
	"errors"

	"github.com/Ludaxis/levelforge-sub003/internal/difficulty"
	"github.com/Ludaxis/levelforge-sub003/internal/domain"
	"github.com/Ludaxis/levelforge-sub003/internal/ports"
)

type Service struct {
	Scorer    ports.Scorer
	Checker   ports.Checker
	Generator ports.SupplyGenerator
	Storage   ports.Storage
}

func NewService(sc ports.Scorer, ch ports.Checker, g ports.SupplyGenerator, st ports.Storage) *Service {
	return &Service{Scorer: sc, Checker: ch, Generator: g, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Score(ctx context.Context, lvl *domain.Level) (*domain.DifficultyMetrics, error) {
	if u.Scorer == nil {
		return nil, errNotConfigured
	}
	return u.Scorer.Score(ctx, lvl)
}

func (u *Service) Check(ctx context.Context, p domain.Pattern, s domain.Supply, bufferCapacity int) (domain.SolvabilityReport, error) {
	if u.Checker == nil {
		return domain.SolvabilityReport{}, errNotConfigured
	}
	return u.Checker.Check(ctx, p, s, bufferCapacity)
}

func (u *Service) GenerateSupply(ctx context.Context, p domain.Pattern, seed int64, shape domain.SupplyShape) (domain.Supply, ports.Stats, error) {
	if u.Generator == nil {
		return domain.Supply{}, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, p, seed, shape)
}

// Estimate and Recommend are static lookups over already-computed data;
// they need no injected provider.
func (u *Service) Estimate(m *domain.DifficultyMetrics) domain.TimeEstimate {
	return difficulty.EstimateCompletionTime(m)
}

func (u *Service) Recommend(t domain.DifficultyTier) domain.TierSettings {
	return difficulty.RecommendedSettings(t)
}

// Persistence
func (u *Service) Save(ctx context.Context, lvl *domain.Level) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, lvl)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Level, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.LevelMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
