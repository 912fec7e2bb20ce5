// Package results reads the experiment results files written by the solvers:
// a JSON object mapping instance name to method name to a Record.
//
//	{
//	  "TSPA": {
//	    "Greedy 2-regret": {"best_solution": [0, 4, 2], "min_value": 7104, ...}
//	  }
//	}
//
// Only best_solution is required. The statistics the solvers record next to
// it are kept when present; any other field is ignored.
package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/MichalRedm/evolutionary-computation/tour"
)

var (
	// ErrInputFormat is returned for input that is not a results object.
	ErrInputFormat = errors.New("results: malformed results file")

	// ErrMissingSolution is returned for a record without best_solution.
	ErrMissingSolution = errors.New("results: record has no best_solution")
)

// Record is the outcome of one method on one instance.
type Record struct {
	BestSolution tour.Solution `json:"best_solution"`

	MinValue      *float64 `json:"min_value,omitempty"`
	MaxValue      *float64 `json:"max_value,omitempty"`
	AvgValue      *float64 `json:"avg_value,omitempty"`
	AvgRuntimesMs *float64 `json:"avg_runtimes_ms,omitempty"`
	MinSearches   *float64 `json:"min_searches,omitempty"`
	MaxSearches   *float64 `json:"max_searches,omitempty"`
	AvgSearches   *float64 `json:"avg_searches,omitempty"`
}

// Collection maps instance name to method name to Record.
type Collection map[string]map[string]Record

// Entry is one (instance, method, record) triple of a Collection.
type Entry struct {
	Instance string
	Method   string
	Record   Record
}

// Load reads and decodes the results file at path.
func Load(path string) (Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("results: open %s: %w", path, err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode reads a Collection from r and checks that every record carries a
// best_solution. The solution itself is not decoded here.
func Decode(r io.Reader) (Collection, error) {
	var c Collection
	dec := json.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputFormat, err)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: top level must be an object", ErrInputFormat)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: data after the results object", ErrInputFormat)
	}

	for _, e := range c.Entries() {
		if e.Record.BestSolution.IsZero() {
			return nil, fmt.Errorf("%w: %s / %s", ErrMissingSolution, e.Instance, e.Method)
		}
	}
	return c, nil
}

// Entries flattens c into triples ordered by instance name, then method name.
func (c Collection) Entries() []Entry {
	var out []Entry
	for inst, methods := range c {
		for method, rec := range methods {
			out = append(out, Entry{Instance: inst, Method: method, Record: rec})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Instance != out[j].Instance {
			return out[i].Instance < out[j].Instance
		}
		return out[i].Method < out[j].Method
	})
	return out
}

// Instances returns the sorted instance names of c.
func (c Collection) Instances() []string {
	out := make([]string, 0, len(c))
	for inst := range c {
		out = append(out, inst)
	}
	sort.Strings(out)
	return out
}
