package core

import (
	"math"
	"strconv"
)

// Distance is a shortest-path length: either Finite(n) or Unreachable.
// The zero value is Unreachable, so freshly allocated slices start at "infinity"
// without a magic integer sentinel.
type Distance struct {
	value     int64
	reachable bool
}

// Finite returns a reachable Distance of length v.
func Finite(v int64) Distance { return Distance{value: v, reachable: true} }

// Unreachable returns the Distance of a vertex no path reaches.
func Unreachable() Distance { return Distance{} }

// Value returns the length and whether the vertex is reachable.
func (d Distance) Value() (int64, bool) { return d.value, d.reachable }

// Reachable reports whether d is finite.
func (d Distance) Reachable() bool { return d.reachable }

// Less orders distances ascending with Unreachable greater than any finite value.
func (d Distance) Less(o Distance) bool {
	switch {
	case !d.reachable:
		return false
	case !o.reachable:
		return true
	default:
		return d.value < o.value
	}
}

// Compare returns -1, 0 or +1 following the order of Less.
func (d Distance) Compare(o Distance) int {
	switch {
	case d.Less(o):
		return -1
	case o.Less(d):
		return 1
	default:
		return 0
	}
}

// Add returns d + w. ok is false when d is Unreachable or the sum overflows int64;
// the sentinel never takes part in arithmetic.
func (d Distance) Add(w int64) (sum Distance, ok bool) {
	if !d.reachable {
		return Distance{}, false
	}
	if (w > 0 && d.value > math.MaxInt64-w) || (w < 0 && d.value < math.MinInt64-w) {
		return Distance{}, false
	}

	return Finite(d.value + w), true
}

// String renders a finite distance in decimal and Unreachable as "unreachable".
func (d Distance) String() string {
	if !d.reachable {
		return "unreachable"
	}

	return strconv.FormatInt(d.value, 10)
}

// Distances is the total mapping from every vertex to its Distance.
type Distances[K comparable] map[K]Distance

// Reachable returns the number of vertices with a finite distance.
func (m Distances[K]) Reachable() int {
	n := 0
	for _, d := range m {
		if d.reachable {
			n++
		}
	}

	return n
}

// Equal reports whether m and o hold the same vertices with the same distances.
func (m Distances[K]) Equal(o Distances[K]) bool {
	if len(m) != len(o) {
		return false
	}
	for k, d := range m {
		if od, ok := o[k]; !ok || od != d {
			return false
		}
	}

	return true
}
