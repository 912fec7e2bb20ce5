package nodeset

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Node is a single point of an instance.
type Node struct {
	// ID is the 0-based row position in the source data.
	ID int

	// X, Y is the position on the plane.
	X, Y float64

	// Cost is the non-negative weight of visiting the node.
	Cost float64
}

// Set is the immutable collection of all nodes of one instance.
type Set struct {
	name  string
	nodes []Node

	distOnce sync.Once
	dist     *mat.SymDense
}

// New builds a Set named name from nodes. Identifiers are reassigned from the
// slice position so that they are always contiguous; the input is copied.
// An empty slice yields ErrEmptySet.
func New(name string, nodes []Node) (*Set, error) {
	if len(nodes) == 0 {
		return nil, ErrEmptySet
	}

	cp := make([]Node, len(nodes))
	var i int
	for i = range nodes {
		cp[i] = nodes[i]
		cp[i].ID = i
	}

	return &Set{name: name, nodes: cp}, nil
}

// Name returns the instance name the set was loaded for.
func (s *Set) Name() string { return s.name }

// Len returns the number of nodes.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.nodes)
}

// Contains reports whether id names a node of the set.
func (s *Set) Contains(id int) bool {
	return id >= 0 && id < s.Len()
}

// Node returns the node with the given id.
func (s *Set) Node(id int) (Node, bool) {
	if !s.Contains(id) {
		return Node{}, false
	}
	return s.nodes[id], true
}

// Nodes returns a copy of all nodes in identifier order.
func (s *Set) Nodes() []Node {
	out := make([]Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Costs returns the cost of every node in identifier order.
func (s *Set) Costs() []float64 {
	out := make([]float64, len(s.nodes))
	for i, n := range s.nodes {
		out[i] = n.Cost
	}
	return out
}

// Distances returns the symmetric matrix of Euclidean distances rounded to the
// nearest integer, the metric the solvers score tours with. The matrix is
// computed on first use and shared afterwards; callers must not modify it.
//
// Complexity: O(n²) time and space on first call, O(1) afterwards.
func (s *Set) Distances() *mat.SymDense {
	s.distOnce.Do(func() {
		var (
			n    = len(s.nodes)
			d    = mat.NewSymDense(n, nil)
			i, j int
		)
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				d.SetSym(i, j, Distance(s.nodes[i], s.nodes[j]))
			}
		}
		s.dist = d
	})
	return s.dist
}

// Distance is the Euclidean distance between a and b rounded half away from
// zero.
func Distance(a, b Node) float64 {
	return math.Round(math.Hypot(a.X-b.X, a.Y-b.Y))
}
