package solver

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/jumble_solver/internal/common"
	"github.com/domino14/jumble_solver/internal/wordindex"
)

// MaxExhaustiveLetters is the most letters a bit mask can cover.
const MaxExhaustiveLetters = 62

var _ Solver = (*Exhaustive)(nil)

// Exhaustive tries all 2^n-1 subsets of the jumble's letters, which is
// O(2^n * n) work for n letters.
type Exhaustive struct {
	index *wordindex.WordIndex
}

func NewExhaustive(idx *wordindex.WordIndex) *Exhaustive {
	return &Exhaustive{index: idx}
}

// Solve returns every word that uses some subset of letters. When letters
// repeat, different masks can pick the same sub-signature, and the words
// for it are then returned once per such mask. The output is not
// de-duplicated.
func (s *Exhaustive) Solve(letters string) []string {
	sig := common.Signature(letters)
	n := len(sig)
	if n > MaxExhaustiveLetters {
		log.Error().Int("letters", n).Msg("too-many-letters-for-exhaustive-search")
		return nil
	}
	words := []string{}
	buf := make([]byte, 0, n)
	lookups := 0
	for mask := uint64(1); mask < uint64(1)<<n; mask++ {
		buf = buf[:0]
		// The first letter is the most significant bit.
		for i := 0; i < n; i++ {
			if mask&(uint64(1)<<(n-1-i)) != 0 {
				buf = append(buf, sig[i])
			}
		}
		lookups++
		if found, ok := s.index.Lookup(string(buf)); ok {
			words = append(words, found...)
		}
	}
	log.Debug().Str("signature", sig).Int("lookups", lookups).
		Int("found", len(words)).Msg("exhaustive-finished")
	return words
}
