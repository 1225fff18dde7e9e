// Package descent - deterministic random generation for the escape
// mechanism.
//
// Goals:
//   - Determinism: same seed ⇒ identical walks across platforms.
//   - Encapsulation: one RNG per walk, created at entry from Options.Seed;
//     no package-level RNG, no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; the walker never shares its
//     instance.
package descent

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass Seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}
