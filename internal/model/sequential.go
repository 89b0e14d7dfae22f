package model

import "github.com/domino14/jumble_solver/internal/common"

// SequentialModel learns which letter follows which. Cell [i][j] is the
// probability that j comes right after i. Row Boundary holds the first
// letters of words and column Boundary holds their last letters.
type SequentialModel struct {
	matrix
}

func NewSequentialModel() *SequentialModel {
	return &SequentialModel{matrix: newMatrix(numRows, numRows)}
}

func (m *SequentialModel) Accumulate(word string) {
	prev := Boundary
	for _, r := range word {
		idx, ok := common.LetterIndex(r)
		if !ok {
			continue
		}
		m.inc(prev, idx)
		prev = idx
	}
	// Words with no letters at all leave no trace.
	if prev != Boundary {
		m.inc(prev, Boundary)
	}
}

func (m *SequentialModel) Normalize() {
	m.normalize()
}

// Probability returns the probability of moving from letter from to letter
// to. Either may be Boundary.
func (m *SequentialModel) Probability(from, to int) float64 {
	return m.at(from, to)
}
