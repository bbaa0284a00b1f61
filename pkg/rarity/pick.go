// Package rarity implements weighted-probability option selection and the
// compact YxxDxxx rarity code.
package rarity

// Weighted is an option carrying a selection probability in (0,1].
type Weighted interface {
	Weight() float64
}

// Pick selects one option by cumulative-probability scan: the first option
// whose running probability sum exceeds roll wins. When floating-point drift
// (or a table summing below 1.0) exhausts the scan, the last option is
// returned; Pick never fails for a non-empty table.
//
// Determinism rests entirely on the roll being reproducibly derived.
func Pick[T Weighted](options []T, roll float64) T {
	var acc float64
	for _, opt := range options {
		acc += opt.Weight()
		if roll < acc {
			return opt
		}
	}
	return options[len(options)-1]
}

// CheckWeights reports whether the option probabilities sum to 1.0 within
// tolerance. A table summing low silently over-weights its final entry via
// the Pick fallback; this is checked in tests rather than at runtime so a
// cosmetic drift can never block minting.
func CheckWeights[T Weighted](options []T, tolerance float64) bool {
	var sum float64
	for _, opt := range options {
		sum += opt.Weight()
	}
	diff := sum - 1.0
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}
