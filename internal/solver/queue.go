package solver

import (
	"container/heap"
	"slices"

	"github.com/domino14/jumble_solver/internal/common"
)

var _ heap.Interface = (*stateQueue)(nil)

// state is one partial ordering. States are never modified once pushed.
type state struct {
	priority  float64
	prefix    []common.Letter
	remaining []common.Letter
}

func (s *state) done() bool {
	n := len(s.prefix)
	return n > 0 && s.prefix[n-1] == common.Boundary
}

// stateQueue is a max-heap on priority. Ties go to the smaller prefix and
// then the smaller remaining set, so runs are reproducible.
type stateQueue []*state

func (q stateQueue) Len() int { return len(q) }

func (q stateQueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority > q[j].priority
	}
	if c := slices.Compare(q[i].prefix, q[j].prefix); c != 0 {
		return c < 0
	}
	return slices.Compare(q[i].remaining, q[j].remaining) < 0
}

func (q stateQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *stateQueue) Push(x any) {
	*q = append(*q, x.(*state))
}

func (q *stateQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// peek returns the best state without removing it.
func (q stateQueue) peek() *state {
	return q[0]
}
