// Package seed turns ordered sequences of primitive values into
// deterministic 32-bit hashes and reproducible random streams. The mixing
// algorithm is pinned: changing it invalidates every universe ever generated,
// so treat it as part of the save format.
package seed

import (
	"fmt"
	"math"
)

// Per-position folding constant; large odd value decorrelates adjacent parts.
const foldConst uint32 = 0x9e3779b1

// mix32 finalizes a 32-bit value into a well-distributed output
// (Murmur finalizer-style avalanching).
func mix32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}

// fold absorbs one 32-bit word into the running hash. Mixing after every
// word keeps the result order-sensitive.
func fold(h, w uint32) uint32 {
	return mix32(h ^ w*foldConst)
}

// fold64 absorbs a 64-bit word low half first.
func fold64(h uint32, w uint64) uint32 {
	h = fold(h, uint32(w))
	return fold(h, uint32(w>>32))
}

// foldString absorbs a string byte by byte, then a final mix so strings of
// different lengths cannot collide by extension.
func foldString(h uint32, s string) uint32 {
	for i := 0; i < len(s); i++ {
		h = (h ^ uint32(s[i])) * 16777619
	}
	return fold(h, uint32(len(s)))
}

// Hash mixes an ordered sequence of primitive values (integers, floats,
// booleans, strings) into a deterministic 32-bit output. Identical inputs
// always yield identical outputs; a one-value perturbation flips roughly half
// the output bits.
func Hash(parts ...any) uint32 {
	h := uint32(0x811c9dc5)
	for _, p := range parts {
		switch v := p.(type) {
		case int:
			h = fold64(h, uint64(int64(v)))
		case int32:
			h = fold(h, uint32(v))
		case int64:
			h = fold64(h, uint64(v))
		case uint32:
			h = fold(h, v)
		case uint64:
			h = fold64(h, v)
		case float64:
			h = fold64(h, math.Float64bits(v))
		case float32:
			h = fold(h, math.Float32bits(v))
		case bool:
			if v {
				h = fold(h, 1)
			} else {
				h = fold(h, 0)
			}
		case string:
			h = foldString(h, v)
		default:
			h = foldString(h, fmt.Sprint(v))
		}
	}
	return mix32(h)
}

// HashFloat maps the hash of parts onto [0, 1).
func HashFloat(parts ...any) float64 {
	return float64(Hash(parts...)) / (1 << 32)
}

// HashRange maps the hash of parts onto the inclusive integer interval
// [min, max].
func HashRange(min, max int, parts ...any) int {
	if max < min {
		min, max = max, min
	}
	span := uint32(max - min + 1)
	return min + int(Hash(parts...)%span)
}
