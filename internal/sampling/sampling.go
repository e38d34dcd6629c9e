package sampling

import (
	"fmt"
)

const tol = 1e-9

// SampleOne returns the first index i of pv where sum(pv[:i+1]) > x.
// x is expected to be drawn uniformly from [0, 1).
func SampleOne(pv []float64, x float64) int {
	var cumProb float64
	for i, p := range pv {
		cumProb += p
		if cumProb > x {
			return i
		}
	}

	if cumProb < 1.0-tol { // Leave room for floating point error.
		panic(fmt.Errorf("probability distribution does not sum to 1! x=%v, pv=%v", x, pv))
	}

	return len(pv) - 1
}
