package sampling

import (
	"math/rand/v2"

	"github.com/meshkit/trimesh/point"
)

// goldenGamma is the splitmix64 increment constant, used only to derive
// a second, independent-looking seed half from a single uint64 seed so
// that rand.NewPCG never receives a degenerate (0, 0) stream pair.
const goldenGamma = 0x9E3779B97F4A7C15

// Generate returns n points independently and uniformly distributed in
// [0,1)x[0,1), deterministic in (seed, n): the same pair always yields
// the same slice, so a triangulation's input is fully reproducible from
// its logged seed.
func Generate(seed uint64, n int) ([]point.Point, error) {
	if n <= 0 {
		return nil, ErrNonPositiveCount
	}

	rng := rand.New(rand.NewPCG(seed, seed^goldenGamma))
	points := make([]point.Point, n)
	for i := range points {
		points[i] = point.New(rng.Float64(), rng.Float64())
	}
	return points, nil
}
