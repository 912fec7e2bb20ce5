package nodeset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Separator is the field delimiter of node data files.
const Separator = ';'

// Load reads the node data file at path and returns it as the Set for
// instance name.
func Load(name, path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("nodeset: open %s: %w", path, err)
	}
	defer f.Close()

	set, err := Parse(name, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Parse reads headerless x;y;cost rows from r. Blank lines are skipped; every
// other row must hold exactly three numbers and a non-negative cost.
func Parse(name string, r io.Reader) (*Set, error) {
	cr := csv.NewReader(r)
	cr.Comma = Separator
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var (
		nodes  []Node
		record []string
		err    error
	)
	for {
		record, err = cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, fmt.Errorf("%w: line %d: %v", ErrInputFormat, perr.Line, perr.Err)
			}
			return nil, fmt.Errorf("nodeset: read: %w", err)
		}

		line, _ := cr.FieldPos(0)
		node, err := parseRecord(record, len(nodes))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInputFormat, line, err)
		}
		nodes = append(nodes, node)
	}

	return New(name, nodes)
}

func parseRecord(record []string, id int) (Node, error) {
	var (
		vals [3]float64
		err  error
		i    int
	)
	for i = range vals {
		vals[i], err = strconv.ParseFloat(strings.TrimSpace(record[i]), 64)
		if err != nil || math.IsNaN(vals[i]) || math.IsInf(vals[i], 0) {
			return Node{}, fmt.Errorf("field %d: %q is not a finite number", i+1, record[i])
		}
	}
	if vals[2] < 0 {
		return Node{}, fmt.Errorf("negative cost %v", vals[2])
	}

	return Node{ID: id, X: vals[0], Y: vals[1], Cost: vals[2]}, nil
}
