package model

import "github.com/domino14/jumble_solver/internal/common"

// PositionalColumns is how many positions within a word are modeled.
// Letters further along are not recorded.
const PositionalColumns = 12

// PositionalModel learns where in a word each letter tends to appear. Cell
// [l][p] is the probability that letter l, when it occurs, is at position
// p. The boundary row records the position the word ends at, that is, the
// word's length.
type PositionalModel struct {
	matrix
}

func NewPositionalModel() *PositionalModel {
	return &PositionalModel{matrix: newMatrix(numRows, PositionalColumns)}
}

// Accumulate counts the position of every letter of word. Only letters
// advance the position; other characters are skipped.
func (m *PositionalModel) Accumulate(word string) {
	pos := 0
	for _, r := range word {
		idx, ok := common.LetterIndex(r)
		if !ok {
			continue
		}
		if pos < PositionalColumns {
			m.inc(idx, pos)
		}
		pos++
	}
	if pos > 0 && pos < PositionalColumns {
		m.inc(Boundary, pos)
	}
}

func (m *PositionalModel) Normalize() {
	m.normalize()
}

// Probability returns the probability of letter at position. Positions
// outside the model are 0.
func (m *PositionalModel) Probability(letter, position int) float64 {
	return m.at(letter, position)
}
