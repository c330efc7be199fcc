package bionic

import "math"

// boundaryEpsilon absorbs binary float error, e.g. 10*0.7 = 7.000000000000001.
const boundaryEpsilon = 1e-9

// EmphasisBoundary returns ceil(n*ratio) clamped to [0,n]: the number of
// leading grapheme clusters of an eligible word that are emphasized. n must
// be a grapheme count, not a byte or UTF-16 length.
func EmphasisBoundary(n int, ratio float64) int {
	if n <= 0 || !(ratio > 0) {
		return 0
	}
	b := int(math.Ceil(float64(n)*ratio - boundaryEpsilon))
	if b < 0 {
		return 0
	}
	if b > n {
		return n
	}
	return b
}
