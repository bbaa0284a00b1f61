// Package detrand derives reproducible pseudo-random values from string
// seeds.
//
// Every visual trait in the system (sigil colors, ornament shapes, layout
// parameters) is derived through this package, so the exact recurrences are
// a compatibility contract: the same seed must produce bit-identical output
// across runs, platforms and releases, or previously minted artifacts would
// re-render differently. None of this is cryptographic.
package detrand

// Hash32 computes a 32-bit FNV-1a hash of the seed bytes.
func Hash32(seed string) uint32 {
	h := uint32(0x811c9dc5)
	for i := 0; i < len(seed); i++ {
		h ^= uint32(seed[i])
		h *= 0x01000193
	}
	return h
}

// Bytes derives n reproducible pseudo-random bytes from the seed.
//
// The seed is first folded into a 32-bit state (h = h*31 + b), then each
// output byte advances a numerical-recipes LCG perturbed by the byte index.
func Bytes(seed string, n int) []byte {
	var h uint32
	for i := 0; i < len(seed); i++ {
		h = h*31 + uint32(seed[i])
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		h = h*1664525 + 1013904223 + uint32(i)
		out[i] = byte(h)
	}
	return out
}

// Roll maps the seed to a uniform value in [0,1]. The divisor is 2^32-1, so
// a maximal hash yields exactly 1.0; weighted pickers must treat the final
// option as a catch-all.
func Roll(seed string) float64 {
	return float64(Hash32(seed)) / float64(0xffffffff)
}

// MapByte linearly maps a byte (0..255) into [min,max].
func MapByte(v byte, min, max float64) float64 {
	return min + float64(v)/255*(max-min)
}
