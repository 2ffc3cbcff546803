package difficulty

import "github.com/Ludaxis/levelforge-sub003/internal/domain"

// recommended is the static per-tier authoring table: harder tiers get
// larger grids, more colors, fewer buffer slots, and wider sinks.
var recommended = map[domain.DifficultyTier]domain.TierSettings{
	domain.TierTrivial: {
		GridSize:    domain.SettingRange{Min: 8, Max: 12, Recommended: 10},
		ColorCount:  domain.SettingRange{Min: 2, Max: 3, Recommended: 2},
		BufferSlots: domain.SettingRange{Min: 10, Max: 14, Recommended: 12},
		ColumnCount: domain.SettingRange{Min: 3, Max: 4, Recommended: 3},
	},
	domain.TierEasy: {
		GridSize:    domain.SettingRange{Min: 10, Max: 16, Recommended: 12},
		ColorCount:  domain.SettingRange{Min: 3, Max: 4, Recommended: 3},
		BufferSlots: domain.SettingRange{Min: 9, Max: 12, Recommended: 10},
		ColumnCount: domain.SettingRange{Min: 4, Max: 5, Recommended: 4},
	},
	domain.TierMedium: {
		GridSize:    domain.SettingRange{Min: 14, Max: 20, Recommended: 16},
		ColorCount:  domain.SettingRange{Min: 4, Max: 5, Recommended: 4},
		BufferSlots: domain.SettingRange{Min: 8, Max: 10, Recommended: 8},
		ColumnCount: domain.SettingRange{Min: 5, Max: 6, Recommended: 5},
	},
	domain.TierHard: {
		GridSize:    domain.SettingRange{Min: 18, Max: 26, Recommended: 22},
		ColorCount:  domain.SettingRange{Min: 5, Max: 6, Recommended: 5},
		BufferSlots: domain.SettingRange{Min: 7, Max: 9, Recommended: 8},
		ColumnCount: domain.SettingRange{Min: 6, Max: 8, Recommended: 7},
	},
	domain.TierExpert: {
		GridSize:    domain.SettingRange{Min: 24, Max: 32, Recommended: 28},
		ColorCount:  domain.SettingRange{Min: 6, Max: 7, Recommended: 6},
		BufferSlots: domain.SettingRange{Min: 6, Max: 8, Recommended: 7},
		ColumnCount: domain.SettingRange{Min: 7, Max: 9, Recommended: 8},
	},
	domain.TierNightmare: {
		GridSize:    domain.SettingRange{Min: 28, Max: 40, Recommended: 32},
		ColorCount:  domain.SettingRange{Min: 7, Max: 9, Recommended: 8},
		BufferSlots: domain.SettingRange{Min: 5, Max: 7, Recommended: 6},
		ColumnCount: domain.SettingRange{Min: 8, Max: 10, Recommended: 9},
	},
}

// RecommendedSettings returns the authoring parameter ranges for a tier.
// Unknown tiers fall back to medium.
func RecommendedSettings(t domain.DifficultyTier) domain.TierSettings {
	if s, ok := recommended[t]; ok {
		return s
	}
	return recommended[domain.TierMedium]
}
