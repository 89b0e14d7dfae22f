package model

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func idx(r byte) int { return int(r - 'a') }

func rowSum(m LetterModel, row, cols int) float64 {
	s := 0.0
	for c := 0; c < cols; c++ {
		s += m.Probability(row, c)
	}
	return s
}

func TestPositionalAccumulate(t *testing.T) {
	is := is.New(t)
	m := NewPositionalModel()
	m.Accumulate("c-a't")
	m.Accumulate("Tac")

	// Skipped characters do not advance the position.
	is.Equal(m.Probability(idx('c'), 0), 1.0)
	is.Equal(m.Probability(idx('a'), 1), 2.0)
	is.Equal(m.Probability(idx('t'), 2), 1.0)
	is.Equal(m.Probability(idx('t'), 0), 1.0)
	is.Equal(m.Probability(Boundary, 3), 2.0)
}

func TestPositionalIgnoresLongPositions(t *testing.T) {
	is := is.New(t)
	m := NewPositionalModel()
	m.Accumulate("abcdefghijklmnop")
	for _, r := range "mnop" {
		is.Equal(rowSum(m, idx(byte(r)), PositionalColumns), 0.0)
	}
	is.Equal(m.Probability(idx('l'), 11), 1.0)
	is.Equal(m.Probability(idx('a'), 12), 0.0) // out of range
	// the word is too long for its end to be recorded
	is.Equal(rowSum(m, Boundary, PositionalColumns), 0.0)
}

func TestSequentialAccumulate(t *testing.T) {
	is := is.New(t)
	m := NewSequentialModel()
	m.Accumulate("cat")
	m.Accumulate("2cat!")
	m.Accumulate("123")

	is.Equal(m.Probability(Boundary, idx('c')), 2.0)
	is.Equal(m.Probability(idx('c'), idx('a')), 2.0)
	is.Equal(m.Probability(idx('a'), idx('t')), 2.0)
	is.Equal(m.Probability(idx('t'), Boundary), 2.0)
	// boundary transitions never land in z's row or column
	is.Equal(rowSum(m, idx('z'), numRows), 0.0)
	is.Equal(m.Probability(idx('t'), idx('z')), 0.0)
	is.Equal(m.Probability(Boundary, Boundary), 0.0)
}

func TestNormalizeRowsSumToOne(t *testing.T) {
	pm := NewPositionalModel()
	sm := NewSequentialModel()
	Train(strings.Fields("the quick brown fox jumps over the lazy dog again"), pm, sm)

	for row := 0; row < numRows; row++ {
		for _, tc := range []struct {
			m    LetterModel
			cols int
		}{{pm, PositionalColumns}, {sm, numRows}} {
			s := rowSum(tc.m, row, tc.cols)
			if s != 0 {
				assert.InDelta(t, 1.0, s, eps, "row %d", row)
			}
		}
	}
	// two of the ten words start with t
	assert.InDelta(t, 0.2, sm.Probability(Boundary, idx('t')), eps)
}

func TestNormalizeZeroRowStaysZero(t *testing.T) {
	is := is.New(t)
	m := NewSequentialModel()
	Train([]string{"ab"}, m)
	for c := 0; c < numRows; c++ {
		p := m.Probability(idx('q'), c)
		is.True(!math.IsNaN(p))
		is.Equal(p, 0.0)
	}
	is.Equal(m.Probability(idx('a'), idx('b')), 1.0)
}

func TestNormalizeOnce(t *testing.T) {
	is := is.New(t)
	m := NewPositionalModel()
	Train([]string{"ab", "ba"}, m)
	is.Equal(m.Probability(idx('a'), 0), 0.5)
	m.Normalize()
	is.Equal(m.Probability(idx('a'), 0), 0.5)
	// training is over; further words are ignored
	m.Accumulate("aaaa")
	is.Equal(m.Probability(idx('a'), 0), 0.5)
}

func TestNewTrained(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("cat\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("cot cut\n"), 0o644))

	pm, sm, err := NewTrained([]string{a, b})
	require.NoError(t, err)
	assert.Equal(t, 1.0, pm.Probability(idx('c'), 0))
	assert.InDelta(t, 1.0/3.0, sm.Probability(idx('c'), idx('o')), eps)
	assert.Equal(t, 1.0, sm.Probability(idx('t'), Boundary))

	_, _, err = NewTrained([]string{a, filepath.Join(dir, "missing.txt")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestString(t *testing.T) {
	is := is.New(t)
	m := NewPositionalModel()
	Train([]string{"a"}, m)
	lines := strings.Split(strings.TrimSuffix(m.String(), "\n"), "\n")
	is.Equal(len(lines), numRows)
	is.Equal(lines[0], "1,0,0,0,0,0,0,0,0,0,0,0")
}
