package solver

import (
	"container/heap"

	"github.com/rs/zerolog/log"

	"github.com/domino14/jumble_solver/internal/common"
	"github.com/domino14/jumble_solver/internal/model"
	"github.com/domino14/jumble_solver/internal/wordindex"
)

// DefaultThreshold is the priority below which BestFirst stops searching.
const DefaultThreshold = 0.05

var _ Solver = (*BestFirst)(nil)

// BestFirst imitates how a person attacks a jumble: it builds words one
// letter at a time, always extending the most promising ordering next.
//
// The promise of putting letter c after prefix p is
//
//	sequential(last(p) -> c) * positional(c at len(p))
//
// normalized over the other letters that could have gone there. Ending the
// word is one of the choices (the Boundary letter). A finished ordering is
// kept only if it spells a dictionary word exactly.
//
// This is not an exhaustive search. With a threshold of 0 it visits every
// ordering, which is O(n! log n!) for n letters.
type BestFirst struct {
	index      *wordindex.WordIndex
	positional model.LetterModel
	sequential model.LetterModel

	// Threshold stops the search once the best pending ordering has a
	// lower priority than this.
	Threshold float64
}

func NewBestFirst(idx *wordindex.WordIndex, positional, sequential model.LetterModel) *BestFirst {
	return &BestFirst{
		index:      idx,
		positional: positional,
		sequential: sequential,
		Threshold:  DefaultThreshold,
	}
}

// Solve returns the words found in the order they were completed. A word
// can appear more than once when the jumble repeats a letter.
func (s *BestFirst) Solve(letters string) []string {
	remaining := common.Encode(common.Signature(letters))
	remaining = append(remaining, common.Boundary)

	// The queue lives and dies with this call.
	q := &stateQueue{}
	heap.Push(q, &state{priority: 1, remaining: remaining})

	words := []string{}
	expanded := 0
	for q.Len() > 0 {
		if q.peek().priority < s.Threshold {
			break
		}
		st := heap.Pop(q).(*state)
		if st.done() {
			if w, ok := s.index.ExactMatch(common.Decode(st.prefix)); ok {
				words = append(words, w)
			}
			continue
		}
		s.expand(q, st)
		expanded++
	}
	log.Debug().Str("letters", letters).Int("expanded", expanded).
		Int("pending", q.Len()).Int("found", len(words)).Msg("best-first-finished")
	return words
}

func (s *BestFirst) expand(q *stateQueue, st *state) {
	pos := len(st.prefix)
	from := common.Boundary
	if pos > 0 {
		from = st.prefix[pos-1]
	}

	children := make([]*state, len(st.remaining))
	total := 0.0
	for i, l := range st.remaining {
		score := s.sequential.Probability(int(from), int(l)) * s.positionFactor(l, pos)

		prefix := make([]common.Letter, pos+1)
		copy(prefix, st.prefix)
		prefix[pos] = l
		rest := make([]common.Letter, 0, len(st.remaining)-1)
		rest = append(rest, st.remaining[:i]...)
		rest = append(rest, st.remaining[i+1:]...)

		children[i] = &state{priority: score, prefix: prefix, remaining: rest}
		total += score
	}
	for _, c := range children {
		if total > 0 {
			c.priority /= total
		} else {
			c.priority = 0
		}
		heap.Push(q, c)
	}
}

// positionFactor is neutral past the modeled positions; every sibling is
// at the same position, so the sequential model decides alone there.
func (s *BestFirst) positionFactor(l common.Letter, pos int) float64 {
	if pos >= model.PositionalColumns {
		return 1
	}
	return s.positional.Probability(int(l), pos)
}
