package domain

// Color tags a pattern cell or supply tile. Values are opaque; the
// enumeration order carries no gameplay meaning.
type Color int

const (
	Red Color = iota
	Orange
	Yellow
	Green
	Cyan
	Blue
	Purple
	Pink
	Brown
)

// NumColors is the size of the dense color index space.
const NumColors = int(Brown) + 1

var colorNames = [NumColors]string{
	"red", "orange", "yellow", "green", "cyan", "blue", "purple", "pink", "brown",
}

func (c Color) String() string {
	if c < 0 || int(c) >= NumColors {
		return "unknown"
	}
	return colorNames[c]
}

// DifficultyTier buckets the numeric 0-100 score.
type DifficultyTier int

const (
	TierTrivial DifficultyTier = iota
	TierEasy
	TierMedium
	TierHard
	TierExpert
	TierNightmare
)

var tierNames = [...]string{"trivial", "easy", "medium", "hard", "expert", "nightmare"}

func (t DifficultyTier) String() string {
	if t < TierTrivial || t > TierNightmare {
		return "unknown"
	}
	return tierNames[t]
}
