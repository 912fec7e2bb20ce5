// Package batch renders every solution of a results file, one image per
// (instance, method) pair.
//
// The run is sequential and stops at the first error: a results file that
// cannot be read, a node data file that cannot be loaded, a solution that does
// not decode, or an image that cannot be written.
package batch

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot/vg"

	"github.com/MichalRedm/evolutionary-computation/config"
	"github.com/MichalRedm/evolutionary-computation/nodeset"
	"github.com/MichalRedm/evolutionary-computation/render"
	"github.com/MichalRedm/evolutionary-computation/results"
	"github.com/MichalRedm/evolutionary-computation/tour"
)

// ErrUnknownInstance is returned for a results instance with no configured
// node data.
var ErrUnknownInstance = errors.New("batch: instance has no node data configured")

// objectiveTol is the largest difference between a recomputed objective and
// the record's min_value that is not reported.
const objectiveTol = 1e-6

// Summary describes a finished run.
type Summary struct {
	Rendered int
	Outputs  []string
}

// Runner drives one batch. It loads each node data file at most once.
type Runner struct {
	cfg      *config.Config
	renderer *render.Renderer
	log      logrus.FieldLogger
	out      io.Writer
	host     func() (HostInfo, error)

	sets map[string]*nodeset.Set
}

// RunnerOption customises a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger (default: the logrus standard logger).
func WithLogger(l logrus.FieldLogger) RunnerOption {
	if l == nil {
		panic("batch: WithLogger(nil)")
	}
	return func(r *Runner) { r.log = l }
}

// WithOutput sets where progress lines are printed (default: stdout).
func WithOutput(w io.Writer) RunnerOption {
	if w == nil {
		panic("batch: WithOutput(nil)")
	}
	return func(r *Runner) { r.out = w }
}

// WithRenderer replaces the renderer built from the configuration.
func WithRenderer(rr *render.Renderer) RunnerOption {
	if rr == nil {
		panic("batch: WithRenderer(nil)")
	}
	return func(r *Runner) { r.renderer = rr }
}

// NewRunner validates cfg and returns a Runner for it.
func NewRunner(cfg *config.Config, opts ...RunnerOption) (*Runner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil configuration", config.ErrInvalid)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Runner{
		cfg: cfg,
		renderer: render.New(
			render.WithSize(vg.Length(cfg.Figure.WidthIn)*vg.Inch, vg.Length(cfg.Figure.HeightIn)*vg.Inch),
			render.WithCostDivisor(cfg.Figure.CostDivisor),
			render.WithLegend(cfg.Figure.ShowLegend()),
		),
		log:  logrus.StandardLogger(),
		out:  os.Stdout,
		host: CollectHostInfo,
		sets: make(map[string]*nodeset.Set),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// OutputName returns the image file name for method on instance: spaces in
// the method name become underscores, e.g. "Greedy_2-regret_TSPA.png".
func OutputName(method, instance string) string {
	return strings.ReplaceAll(method, " ", "_") + "_" + instance + ".png"
}

// Run renders every solution of the results file at inputPath into outputDir,
// creating outputDir and its parents when missing.
func (r *Runner) Run(inputPath, outputDir string) (Summary, error) {
	var sum Summary

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return sum, fmt.Errorf("batch: create output directory: %w", err)
	}

	coll, err := results.Load(inputPath)
	if err != nil {
		return sum, err
	}
	r.logHost()

	entries := coll.Entries()
	r.log.WithFields(logrus.Fields{
		"input":     inputPath,
		"output":    outputDir,
		"instances": len(coll),
		"solutions": len(entries),
	}).Info("Rendering solutions")

	for _, e := range entries {
		path, err := r.renderEntry(e, outputDir)
		if err != nil {
			return sum, fmt.Errorf("batch: %s on %s: %w", e.Method, e.Instance, err)
		}
		sum.Rendered++
		sum.Outputs = append(sum.Outputs, path)
	}

	r.log.WithField("rendered", sum.Rendered).Info("Batch finished")
	return sum, nil
}

func (r *Runner) renderEntry(e results.Entry, outputDir string) (string, error) {
	set, err := r.nodeSet(e.Instance)
	if err != nil {
		return "", err
	}

	path := filepath.Join(outputDir, OutputName(e.Method, e.Instance))
	rr := r.renderer
	if r.cfg.Figure.Title {
		rr = rr.With(render.WithTitle(fmt.Sprintf("Method: %s\nInstance: %s", e.Method, e.Instance)))
	}
	if err = rr.Render(set, e.Record.BestSolution, path); err != nil {
		return "", err
	}

	r.checkObjective(e, set)
	fmt.Fprintf(r.out, "Generated plot for %s on %s at %s\n", e.Method, e.Instance, path)
	r.log.WithFields(logrus.Fields{"instance": e.Instance, "method": e.Method, "path": path}).
		Debug("Generated plot")
	return path, nil
}

// nodeSet returns the node data of instance, loading it on first use.
func (r *Runner) nodeSet(instance string) (*nodeset.Set, error) {
	if set, ok := r.sets[instance]; ok {
		return set, nil
	}
	path, ok := r.cfg.Instances[instance]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInstance, instance)
	}

	set, err := nodeset.Load(instance, path)
	if err != nil {
		return nil, err
	}
	r.log.WithFields(logrus.Fields{"instance": instance, "path": path, "nodes": set.Len()}).
		Debug("Loaded node data")
	r.sets[instance] = set
	return set, nil
}

// checkObjective recomputes the score of the rendered solution and warns when
// it disagrees with the min_value the solver recorded for it.
func (r *Runner) checkObjective(e results.Entry, set *nodeset.Set) {
	fields := logrus.Fields{"instance": e.Instance, "method": e.Method}

	ids, err := e.Record.BestSolution.Decode()
	if err != nil {
		return
	}
	obj, err := tour.Objective(set, ids)
	if errors.Is(err, tour.ErrDuplicateNode) {
		r.log.WithFields(fields).WithError(err).Warn("Solution visits a node more than once")
		return
	}
	if err != nil {
		r.log.WithFields(fields).WithError(err).Warn("Cannot score solution")
		return
	}
	fields["objective"] = obj
	fields["nodes"] = len(ids)
	r.log.WithFields(fields).Debugf("Solution %s", tour.DebugString(ids))

	if e.Record.MinValue != nil && math.Abs(obj-*e.Record.MinValue) > objectiveTol {
		r.log.WithFields(fields).Warnf("Best solution scores %v but min_value is %v", obj, *e.Record.MinValue)
	}
}

// logHost logs the machine description at debug level. The system queries
// are skipped when debug entries would be discarded.
func (r *Runner) logHost() {
	if !debugEnabled(r.log) {
		return
	}
	info, err := r.host()
	if err != nil {
		r.log.WithError(err).Debug("Host information unavailable")
		return
	}
	r.log.WithFields(logrus.Fields{
		"platform": info.Platform,
		"cpu":      info.CPU,
		"ram":      info.RAM(),
	}).Debug("Host")
}

func debugEnabled(l logrus.FieldLogger) bool {
	switch v := l.(type) {
	case *logrus.Logger:
		return v.IsLevelEnabled(logrus.DebugLevel)
	case *logrus.Entry:
		return v.Logger.IsLevelEnabled(logrus.DebugLevel)
	}
	return true
}
