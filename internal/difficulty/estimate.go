package difficulty

import "github.com/Ludaxis/levelforge-sub003/internal/domain"

// Per-action costs in seconds for the completion-time model.
const (
	secondsPerTile  = 1.0
	secondsPerPixel = 0.5
)

// EstimateCompletionTime converts a metrics record into a completion-time
// band in minutes. Harder levels inflate the base mechanical time by up to
// 2x to account for thinking.
func EstimateCompletionTime(m *domain.DifficultyMetrics) domain.TimeEstimate {
	base := float64(m.TotalTilesInSink)*secondsPerTile + float64(m.TotalPixels)*secondsPerPixel
	thinking := 1 + float64(m.Score)/100
	avg := base * thinking / 60
	return domain.TimeEstimate{
		Min:     0.5 * avg,
		Average: avg,
		Max:     2 * avg,
	}
}
