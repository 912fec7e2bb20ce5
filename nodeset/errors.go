package nodeset

import "errors"

// Sentinel errors. Callers branch with errors.Is; loaders attach the file name
// and line number with %w.
var (
	// ErrInputFormat is returned for a row that is not exactly three numeric
	// fields (x;y;cost) or that carries a negative cost.
	ErrInputFormat = errors.New("nodeset: malformed node data")

	// ErrEmptySet is returned when a source holds no node rows.
	ErrEmptySet = errors.New("nodeset: no nodes")
)
