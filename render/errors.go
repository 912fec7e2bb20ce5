package render

import "errors"

var (
	// ErrEmptyNodeSet is returned when the node set is nil or has no nodes.
	ErrEmptyNodeSet = errors.New("render: empty node set")

	// ErrOutputDir is returned when the output file's parent directory is
	// missing or is not a directory.
	ErrOutputDir = errors.New("render: output directory unavailable")

	// ErrWrite wraps any failure to encode or write the image file.
	ErrWrite = errors.New("render: cannot write image")
)
