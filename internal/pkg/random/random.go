// Package random abstracts the random source used for game codes, secret
// words, and role draws, so tests can substitute a deterministic one.
package random

import "math/rand/v2"

// Source yields uniformly distributed integers in [0, n).
type Source interface {
	IntN(n int) int
}

type systemSource struct{}

func (systemSource) IntN(n int) int { return rand.IntN(n) }

// System returns the process-wide source backed by math/rand/v2, which is
// safe for concurrent use.
func System() Source { return systemSource{} }
