package seed

// Stream is a Mulberry32 sequence generator. Like the hash, the algorithm is
// pinned: a stream seeded with the same value replays the same sequence on
// any goroutine, in any process, forever.
type Stream struct {
	state uint32
}

// NewStream creates a stream from a raw 32-bit seed.
func NewStream(s uint32) *Stream {
	return &Stream{state: s}
}

// New creates a stream seeded from the hash of the ordered parts.
func New(parts ...any) *Stream {
	return NewStream(Hash(parts...))
}

// Uint32 advances the stream and returns the next raw value.
func (s *Stream) Uint32() uint32 {
	s.state += 0x6d2b79f5
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return t ^ (t >> 14)
}

// Float64 returns the next value in [0, 1).
func (s *Stream) Float64() float64 {
	return float64(s.Uint32()) / (1 << 32)
}

// IntN returns the next value in [0, n). n <= 0 yields 0.
func (s *Stream) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.Float64() * float64(n))
}

// Range returns the next value in the inclusive interval [min, max].
func (s *Stream) Range(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + s.IntN(max-min+1)
}

// FloatRange returns the next value in [min, max).
func (s *Stream) FloatRange(min, max float64) float64 {
	return min + s.Float64()*(max-min)
}

// Chance reports whether the next value falls below probability p.
func (s *Stream) Chance(p float64) bool {
	return s.Float64() < p
}
