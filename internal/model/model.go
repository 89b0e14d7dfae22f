// Package model implements the letter models used to guess the order in
// which a person would try the letters of a jumble.
//
// A model is a matrix of counts with one row per letter. Training replays
// every word of one or more corpora through the model's Accumulate rule, and
// Normalize then turns each row into a probability distribution. Rows that
// never saw a count stay all zero.
//
// Both models carry an extra row (and the sequential model an extra column)
// at index common.Boundary for the start and end of a word, so boundary
// statistics never mix with those of a real letter.
package model

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/domino14/jumble_solver/internal/common"
	"github.com/domino14/jumble_solver/internal/corpus"
)

// Boundary is the row/column index used for word boundaries.
const Boundary = int(common.Boundary)

// numRows covers a-z plus the boundary row.
const numRows = common.NumLetters + 1

// LetterModel is the training contract shared by the positional and
// sequential models.
type LetterModel interface {
	Accumulate(word string)
	Normalize()
	Probability(row, col int) float64
}

type matrix struct {
	dense      *mat.Dense
	normalized bool
}

func newMatrix(rows, cols int) matrix {
	return matrix{dense: mat.NewDense(rows, cols, nil)}
}

func (m *matrix) inc(row, col int) {
	if m.normalized {
		log.Warn().Int("row", row).Int("col", col).Msg("accumulate-after-normalize")
		return
	}
	m.dense.Set(row, col, m.dense.At(row, col)+1)
}

// normalize scales each row to sum to 1. Zero rows are left alone.
// Calling it a second time is a no-op.
func (m *matrix) normalize() {
	if m.normalized {
		return
	}
	rows, _ := m.dense.Dims()
	for i := 0; i < rows; i++ {
		row := m.dense.RawRowView(i)
		total := floats.Sum(row)
		if total == 0 {
			continue
		}
		floats.Scale(1/total, row)
	}
	m.normalized = true
}

// at returns 0 for out of range cells.
func (m *matrix) at(row, col int) float64 {
	rows, cols := m.dense.Dims()
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return 0
	}
	return m.dense.At(row, col)
}

// String renders the matrix as CSV, one row per line.
func (m *matrix) String() string {
	var sb strings.Builder
	rows, _ := m.dense.Dims()
	for i := 0; i < rows; i++ {
		for j, v := range m.dense.RawRowView(i) {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Train feeds every word to every model and then normalizes each model
// exactly once.
func Train(words []string, models ...LetterModel) {
	for _, w := range words {
		for _, m := range models {
			m.Accumulate(w)
		}
	}
	for _, m := range models {
		m.Normalize()
	}
}

// TrainFiles is Train over the words of the given corpus files. If any file
// cannot be read the models must be discarded.
func TrainFiles(paths []string, models ...LetterModel) error {
	nwords := 0
	err := corpus.ForEachFileWord(paths, func(w string) {
		nwords++
		for _, m := range models {
			m.Accumulate(w)
		}
	})
	if err != nil {
		return err
	}
	for _, m := range models {
		m.Normalize()
	}
	log.Debug().Strs("paths", paths).Int("words", nwords).Msg("models-trained")
	return nil
}

// NewTrained builds and trains both models from the corpus files.
func NewTrained(paths []string) (*PositionalModel, *SequentialModel, error) {
	pm := NewPositionalModel()
	sm := NewSequentialModel()
	if err := TrainFiles(paths, pm, sm); err != nil {
		return nil, nil, err
	}
	return pm, sm, nil
}
