// Package launcher decomposes per-color pixel counts into launcher
// capacities and derives the tile requirements a supply must meet.
package launcher

// Capacities enumerates the launcher sizes, ascending. A launcher fills
// that many pattern pixels of its color when fed TilesPerLauncher tiles.
var Capacities = [...]int{20, 40, 60, 80, 100}

// TilesPerLauncher is how many same-color tiles one launcher consumes.
const TilesPerLauncher = 3

// Breakdown packs a pixel count into capacities, greedy largest-first.
// A remainder smaller than the smallest capacity is absorbed by one extra
// smallest launcher, so the result is biased toward fewer, larger
// launchers rather than bin-packing optimality. A count of zero or less
// yields no launchers.
func Breakdown(pixels int) []int {
	if pixels <= 0 {
		return nil
	}
	var out []int
	rem := pixels
	for rem > 0 {
		placed := false
		for i := len(Capacities) - 1; i >= 0; i-- {
			if Capacities[i] <= rem {
				out = append(out, Capacities[i])
				rem -= Capacities[i]
				placed = true
				break
			}
		}
		if !placed {
			// rem < smallest capacity
			out = append(out, Capacities[0])
			break
		}
	}
	return out
}

// Needed returns how many launchers a pixel count requires.
func Needed(pixels int) int {
	return len(Breakdown(pixels))
}

// RequiredTiles returns the exact supply tile count one color needs.
func RequiredTiles(pixels int) int {
	return TilesPerLauncher * Needed(pixels)
}
