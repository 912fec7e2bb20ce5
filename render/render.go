package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/MichalRedm/evolutionary-computation/nodeset"
	"github.com/MichalRedm/evolutionary-computation/tour"
)

// imageFormat is the encoding of every rendered image.
const imageFormat = "png"

// Palette.
var (
	colorAllNodes = color.NRGBA{R: 211, G: 211, B: 211, A: 128} // lightgray, alpha 0.5
	colorSelected = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	colorPath     = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	colorLabel    = color.White
)

const (
	pathWidth    = 2   // pt
	labelSize    = 9.0 // pt
	legendRadius = 4   // pt
)

// Renderer draws solutions. It holds configuration only and is safe to reuse.
type Renderer struct {
	cfg renderConfig
}

// New returns a Renderer with the given options applied over the defaults.
func New(opts ...Option) *Renderer {
	r := &Renderer{cfg: defaultConfig()}
	for _, opt := range opts {
		opt(&r.cfg)
	}
	return r
}

// With returns a copy of r with opts applied on top of its configuration.
func (r *Renderer) With(opts ...Option) *Renderer {
	cp := &Renderer{cfg: r.cfg}
	for _, opt := range opts {
		opt(&cp.cfg)
	}
	return cp
}

// Render decodes solution, draws it over nodes and writes a PNG image to
// outputPath. The parent directory of outputPath must exist. On failure no
// file is left behind. nodes and solution are not modified.
//
// Errors match tour.ErrDecode for bad solutions, ErrEmptyNodeSet,
// ErrOutputDir, or ErrWrite.
func (r *Renderer) Render(nodes *nodeset.Set, solution tour.Solution, outputPath string) error {
	wt, err := r.encode(nodes, solution)
	if err != nil {
		return err
	}
	if err = checkOutputDir(outputPath); err != nil {
		return err
	}
	return writeFile(outputPath, wt)
}

// Encode draws solution over nodes and writes the PNG bytes to w.
func (r *Renderer) Encode(w io.Writer, nodes *nodeset.Set, solution tour.Solution) error {
	wt, err := r.encode(nodes, solution)
	if err != nil {
		return err
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// encode runs every step up to a drawn canvas, so that a failure before the
// output file is opened leaves the file system untouched.
func (r *Renderer) encode(nodes *nodeset.Set, solution tour.Solution) (io.WriterTo, error) {
	ids, err := solution.DecodeFor(nodes.Len())
	if err != nil {
		return nil, err
	}
	p, err := r.Figure(nodes, ids)
	if err != nil {
		return nil, err
	}
	wt, err := p.WriterTo(r.cfg.width, r.cfg.height, imageFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return wt, nil
}

// Figure builds the plot of the tour ids over nodes without encoding it.
// ids is checked against nodes and rotated to its minimum identifier.
func (r *Renderer) Figure(nodes *nodeset.Set, ids []int) (*plot.Plot, error) {
	selected, err := resolve(nodes, ids)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	if r.cfg.title != "" {
		p.Title.Text = r.cfg.title
	}
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	all, err := r.scatter(nodes.Nodes(), colorAllNodes)
	if err != nil {
		return nil, err
	}
	visited, err := r.scatter(selected, colorSelected)
	if err != nil {
		return nil, err
	}

	path, err := plotter.NewLine(closedXYs(selected))
	if err != nil {
		return nil, fmt.Errorf("render: path: %w", err)
	}
	path.LineStyle.Color = colorPath
	path.LineStyle.Width = vg.Points(pathWidth)

	labels, err := idLabels(selected)
	if err != nil {
		return nil, err
	}

	p.Add(all, visited, path, labels)
	if r.cfg.legend {
		p.Legend.Top = true
		p.Legend.Add("All nodes", all)
		p.Legend.Add("Selected nodes", visited)
		p.Legend.Add("Solution path", path)
	}
	return p, nil
}

// ClosedPath returns the path the renderer draws for ids: the positions of the
// tour rotated to its minimum identifier, with the first position repeated at
// the end. k ids give k+1 points.
func ClosedPath(nodes *nodeset.Set, ids []int) (plotter.XYs, error) {
	selected, err := resolve(nodes, ids)
	if err != nil {
		return nil, err
	}
	return closedXYs(selected), nil
}

// resolve checks that every id is a node of nodes, rotates ids to the minimum
// identifier and looks up the nodes in that order. Repeated ids are drawn as
// given.
func resolve(nodes *nodeset.Set, ids []int) ([]nodeset.Node, error) {
	if nodes.Len() == 0 {
		return nil, ErrEmptyNodeSet
	}
	if err := tour.Known(ids, nodes.Len()); err != nil {
		return nil, err
	}
	rotated, err := tour.RotateToMin(ids)
	if err != nil {
		return nil, err
	}

	out := make([]nodeset.Node, len(rotated))
	for i, id := range rotated {
		out[i], _ = nodes.Node(id)
	}
	return out, nil
}

func xys(ns []nodeset.Node) plotter.XYs {
	out := make(plotter.XYs, len(ns))
	for i, n := range ns {
		out[i].X, out[i].Y = n.X, n.Y
	}
	return out
}

func closedXYs(ns []nodeset.Node) plotter.XYs {
	out := xys(ns)
	if len(out) > 0 {
		out = append(out, out[0])
	}
	return out
}

// scatter draws ns as circles whose area in pt² is cost/divisor.
func (r *Renderer) scatter(ns []nodeset.Node, c color.Color) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(xys(ns))
	if err != nil {
		return nil, fmt.Errorf("render: scatter: %w", err)
	}

	radii := make([]vg.Length, len(ns))
	for i, n := range ns {
		radii[i] = markerRadius(n.Cost, r.cfg.costDivisor)
	}
	// The legend thumbnail is drawn from GlyphStyle, not GlyphStyleFunc.
	s.GlyphStyle = draw.GlyphStyle{Color: c, Radius: vg.Points(legendRadius), Shape: draw.CircleGlyph{}}
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{Color: c, Radius: radii[i], Shape: draw.CircleGlyph{}}
	}
	return s, nil
}

// markerRadius converts a cost into the radius of a circle of area
// cost/divisor pt², measured the way scatter sizes are: the marker's diameter
// is the square root of its area.
func markerRadius(cost, divisor float64) vg.Length {
	area := cost / divisor
	if !(area > 0) {
		return 0
	}
	return vg.Points(math.Sqrt(area) / 2)
}

func idLabels(ns []nodeset.Node) (*plotter.Labels, error) {
	names := make([]string, len(ns))
	for i, n := range ns {
		names[i] = strconv.Itoa(n.ID)
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys(ns), Labels: names})
	if err != nil {
		return nil, fmt.Errorf("render: labels: %w", err)
	}
	for i := range labels.TextStyle {
		sty := &labels.TextStyle[i]
		sty.Color = colorLabel
		sty.Font.Size = vg.Points(labelSize)
		sty.Font.Weight = xfont.WeightBold
		sty.XAlign = text.XCenter
		sty.YAlign = text.YCenter
	}
	return labels, nil
}

func checkOutputDir(outputPath string) error {
	dir := filepath.Dir(outputPath)
	fi, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutputDir, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrOutputDir, dir)
	}
	return nil
}

func writeFile(path string, wt io.WriterTo) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("%w: %w", ErrWrite, cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if _, err = wt.WriteTo(f); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
