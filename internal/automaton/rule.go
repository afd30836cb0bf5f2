// Package automaton implements elementary one-dimensional cellular automata
// (Wolfram codes) with fixed dead boundaries, plus an empirical complexity
// classifier over their behavior.
package automaton

import (
	"errors"
	"fmt"
)

// ErrInvalidRule reports a Wolfram code outside [0, 255].
var ErrInvalidRule = errors.New("automaton: rule outside [0,255]")

// ErrInvalidDimension reports a zero, negative, or too-small grid dimension.
var ErrInvalidDimension = errors.New("automaton: invalid dimension")

// Rule is an 8-bit Wolfram code: bit p of the rule is the successor state
// for the 3-cell neighborhood pattern p.
type Rule uint8

// NewRule validates n and returns it as a Rule. Values outside [0, 255]
// fail fast rather than silently truncating.
func NewRule(n int) (Rule, error) {
	if n < 0 || n > 255 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRule, n)
	}
	return Rule(n), nil
}

// Apply returns the successor state for the neighborhood (left, center,
// right). Any nonzero cell counts as live.
func (r Rule) Apply(left, center, right uint8) uint8 {
	pattern := uint8(0)
	if left != 0 {
		pattern |= 4
	}
	if center != 0 {
		pattern |= 2
	}
	if right != 0 {
		pattern |= 1
	}
	return uint8(r>>pattern) & 1
}
