// Package nodeset holds the node data of a TSP instance: positions and
// per-node costs, as read from the semicolon-separated files the solvers use.
//
// A Set is built once and is read-only afterwards. Node identifiers are the
// 0-based row positions of the source file, so a Set of n nodes always
// contains exactly the identifiers 0..n-1.
//
// Loading:
//
//	set, err := nodeset.Load("TSPA", "../data/TSPA.csv")
//	if err != nil {
//		// errors.Is(err, nodeset.ErrInputFormat) for malformed rows
//	}
//
// Distances returns the rounded Euclidean distance matrix used by the
// solvers' objective function as a gonum *mat.SymDense.
package nodeset
