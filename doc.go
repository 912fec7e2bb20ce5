// Package evocomp is the visualisation toolkit of the evolutionary
// computation course solvers: it turns their results files into PNG plots of
// the best tour found for every (instance, method) pair.
//
// What is in the module?
//
//	nodeset/    - node data (x, y, cost) loaded from ';'-separated CSV, with a
//	              cached rounded Euclidean distance matrix
//	tour/       - solution decoding, validation, rotation and objective scoring
//	results/    - the solvers' JSON results files
//	render/     - scatter + closed path + labels figures, encoded as PNG
//	config/     - tspviz.toml: node data locations, figure and log settings
//	logging/    - logrus setup with optional rotating log file
//	batch/      - one image per results entry, sequential, stop on first error
//	cmd/tspviz/ - the command line entry point
//
// Quick start:
//
//	go run ./cmd/tspviz --input results/greedy.json --output plots/
//
// The objective of a tour is the sum of its node costs plus the length of the
// closed cycle, each edge rounded to the nearest integer:
//
//	[0 1 2 | 0] over (0,0,1) (3,0,2) (3,4,3)  ->  1+2+3 + 3+4+5 = 18
package evocomp
