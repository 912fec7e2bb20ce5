// Package tour - cost utilities.
//
// Length sums a distance matrix along the closed tour; Objective adds the
// selected nodes' costs, which is the score the solvers minimise and report
// as min_value for their best solution.
package tour

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/MichalRedm/evolutionary-computation/nodeset"
)

// Length returns the length of the closed tour under dist, including the step
// from the last node back to the first.
//
// Contract:
//   - dist is square and every id indexes it, else ErrUnknownNode;
//   - entries are finite and non-negative.
//
// Complexity: O(len(ids)).
func Length(dist mat.Matrix, ids []int) (float64, error) {
	if len(ids) == 0 {
		return 0, decodeErr(ErrEmptyTour, -1, "")
	}
	r, c := dist.Dims()
	if r != c {
		return 0, fmt.Errorf("tour: distance matrix is %dx%d, not square", r, c)
	}

	var (
		sum float64
		w   float64
		e   Edge
		i   int
	)
	for i, e = range Edges(ids) {
		if e.From < 0 || e.From >= r || e.To < 0 || e.To >= r {
			return 0, decodeErr(ErrUnknownNode, i, fmt.Sprintf("%d->%d", e.From, e.To))
		}
		w = dist.At(e.From, e.To)
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return 0, fmt.Errorf("tour: invalid distance %v for edge %d->%d", w, e.From, e.To)
		}
		sum += w
	}
	return sum, nil
}

// Objective scores ids against set: the sum of visited nodes' costs plus the
// closed-cycle length under the set's rounded Euclidean distances.
// ids is validated first, so failures match ErrDecode.
//
// Complexity: O(len(ids)) plus the one-off O(n²) distance matrix.
func Objective(set *nodeset.Set, ids []int) (float64, error) {
	if err := Validate(ids, set.Len()); err != nil {
		return 0, err
	}

	var (
		all   = set.Costs()
		costs = make([]float64, len(ids))
		i, v  int
	)
	for i, v = range ids {
		costs[i] = all[v]
	}

	length, err := Length(set.Distances(), ids)
	if err != nil {
		return 0, err
	}
	return floats.Sum(costs) + length, nil
}
