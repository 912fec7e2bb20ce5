// Package tour - structural utilities on identifier sequences.
//
// Helpers in this file operate on tour structure only and never consult
// node positions or costs:
//   - Known: every id known to a node set of size n, repeats allowed.
//   - Validate: Known plus no id repeated.
//   - IndexOfMin / RotateToMin / RotateToStart: cyclic shifts.
//   - Close: append the first id to make the loop explicit.
//   - Edges: the cyclic edge list including the closing edge.
//   - EqualModuloRotation: equality of cyclic sequences.
//   - DebugString: compact printable form for logs and tests.
//
// Tours here are open: the closing node is implicit. All helpers return fresh
// slices and never modify their input.
package tour

import (
	"strconv"
	"strings"
)

// Edge is a directed step of a tour.
type Edge struct {
	From, To int
}

// Undirected returns the edge with endpoints ordered so that From <= To.
func (e Edge) Undirected() Edge {
	if e.From > e.To {
		return Edge{From: e.To, To: e.From}
	}
	return e
}

// Known checks that ids is non-empty and that every identifier belongs to a
// node set with n nodes (identifiers 0..n-1). Repeated identifiers pass.
// Failures match ErrDecode.
//
// Complexity: O(len(ids)).
func Known(ids []int, n int) error {
	if len(ids) == 0 {
		return decodeErr(ErrEmptyTour, -1, "")
	}
	for i, v := range ids {
		if v < 0 || v >= n {
			return decodeErr(ErrUnknownNode, i, strconv.Itoa(v))
		}
	}
	return nil
}

// Validate checks that ids is a non-empty sequence of distinct identifiers of
// a node set with n nodes. Failures match ErrDecode.
//
// Complexity: O(len(ids)) time, O(n) space.
func Validate(ids []int, n int) error {
	if err := Known(ids, n); err != nil {
		return err
	}

	var (
		seen = make([]bool, n)
		i    int
		v    int
	)
	for i, v = range ids {
		if seen[v] {
			return decodeErr(ErrDuplicateNode, i, strconv.Itoa(v))
		}
		seen[v] = true
	}
	return nil
}

// IndexOfMin returns the position of the smallest identifier, -1 for an empty
// tour. With repeated minima the first occurrence wins.
//
// Complexity: O(len(ids)).
func IndexOfMin(ids []int) int {
	if len(ids) == 0 {
		return -1
	}
	var (
		best = 0
		i    int
	)
	for i = 1; i < len(ids); i++ {
		if ids[i] < ids[best] {
			best = i
		}
	}
	return best
}

// RotateToMin returns a copy of ids shifted so that it begins at its minimum
// identifier, preserving cyclic order. [3 1 2] becomes [1 2 3]; a sequence
// that already starts at its minimum is returned unchanged (as a copy).
//
// Complexity: O(len(ids)) time and space.
func RotateToMin(ids []int) ([]int, error) {
	pivot := IndexOfMin(ids)
	if pivot < 0 {
		return nil, decodeErr(ErrEmptyTour, -1, "")
	}
	return rotate(ids, pivot), nil
}

// RotateToStart returns a copy of ids shifted so that it begins at start.
// ErrUnknownNode is returned when start does not occur in ids.
//
// Complexity: O(len(ids)) time and space.
func RotateToStart(ids []int, start int) ([]int, error) {
	if len(ids) == 0 {
		return nil, decodeErr(ErrEmptyTour, -1, "")
	}
	var (
		pivot = -1
		i     int
	)
	for i = range ids {
		if ids[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, decodeErr(ErrUnknownNode, -1, strconv.Itoa(start))
	}
	return rotate(ids, pivot), nil
}

func rotate(ids []int, pivot int) []int {
	var (
		n   = len(ids)
		out = make([]int, n)
		i   int
	)
	for i = 0; i < n; i++ {
		out[i] = ids[(pivot+i)%n]
	}
	return out
}

// Close returns ids followed by its first element: k ids give k+1 entries with
// out[0] == out[k]. An empty input yields nil.
func Close(ids []int) []int {
	if len(ids) == 0 {
		return nil
	}
	out := make([]int, len(ids)+1)
	copy(out, ids)
	out[len(ids)] = ids[0]
	return out
}

// Edges returns the directed steps of the closed tour, one per node:
// ids[i]→ids[i+1] and finally ids[k-1]→ids[0]. A single-node tour yields the
// self-loop {v, v}.
//
// Complexity: O(len(ids)).
func Edges(ids []int) []Edge {
	n := len(ids)
	if n == 0 {
		return nil
	}
	out := make([]Edge, n)
	for i := 0; i < n; i++ {
		out[i] = Edge{From: ids[i], To: ids[(i+1)%n]}
	}
	return out
}

// EqualModuloRotation reports whether a and b describe the same cyclic
// sequence in the same direction, regardless of starting offset.
//
// Complexity: O(n) for distinct identifiers.
func EqualModuloRotation(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}

	var (
		n = len(a)
		p int
		i int
	)
	for p = 0; p < n; p++ {
		if b[p] != a[0] {
			continue
		}
		for i = 0; i < n; i++ {
			if a[i] != b[(p+i)%n] {
				break
			}
		}
		if i == n {
			return true
		}
	}
	return false
}

// DebugString renders ids as "[0 3 1 2 | 0]", the bar marking the implicit
// closing step.
func DebugString(ids []int) string {
	if len(ids) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range ids {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteString(" | ")
	sb.WriteString(strconv.Itoa(ids[0]))
	sb.WriteByte(']')
	return sb.String()
}
