// Package tour decodes, normalises and scores TSP tours given as sequences of
// node identifiers.
//
// A tour is an open sequence of distinct node identifiers that is read as a
// closed loop: the last node connects back to the first. Tours produced by the
// solvers may be partial (a selection of nodes, not every node of the
// instance); nothing in this package assumes full coverage.
//
// Encodings accepted by Solution:
//
//   - JSON integer array, e.g. [1, 2, 0] (what the solvers write);
//   - delimited string, e.g. "1 2 0" or "1,2,0";
//   - legacy digit string, e.g. "120", one identifier per character. This
//     form cannot express identifiers above 9 and any other character is a
//     decoding error.
//
// Normalisation:
//
//	ids, _ := tour.FromString("120").Decode() // [1 2 0]
//	ids, _ = tour.RotateToMin(ids)            // [0 1 2]
//	closed := tour.Close(ids)                 // [0 1 2 0]
//
// Rotation never changes the cyclic identity of a tour, only the offset it is
// iterated from; EqualModuloRotation and Edges make that observable.
//
// Scoring follows the solvers' objective: the sum of the selected nodes'
// costs plus the length of the closed cycle under rounded Euclidean
// distances (see Objective).
package tour
