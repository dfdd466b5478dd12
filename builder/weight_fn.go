package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight assigned to each edge when no WeightFn is configured.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an edge weight from an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn returns a WeightFn that always yields value.
func ConstantWeightFn(value int64) WeightFn {
	return func(_ *rand.Rand) int64 { return value }
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max] inclusive.
// Panics if max < min. With a nil rng it yields min.
func UniformWeightFn(min, max int64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	// span is max-min+1 in uint64; 0 means the whole int64 range.
	span := uint64(max) - uint64(min) + 1
	return func(rng *rand.Rand) int64 {
		switch {
		case rng == nil || span == 1:
			return min
		case span == 0:
			return int64(rng.Uint64())
		case span <= math.MaxInt64:
			return min + rng.Int63n(int64(span))
		}
		// More than half of all uint64 values are in range: reject the rest.
		for {
			if v := rng.Uint64(); v < span {
				return int64(uint64(min) + v)
			}
		}
	}
}
