// Package render - functional options.
//
// Contract:
//   - Options are functional (type Option func(*renderConfig)).
//   - Option constructors panic on meaningless input (non-positive sizes or
//     divisor); rendering itself never panics on user data.
package render

import (
	"fmt"

	"gonum.org/v1/plot/vg"
)

// Defaults of a Renderer built without options.
const (
	DefaultWidth       = 8 * vg.Inch
	DefaultHeight      = 8 * vg.Inch
	DefaultCostDivisor = 4.0
)

// Option customises a Renderer.
type Option func(*renderConfig)

type renderConfig struct {
	width, height vg.Length
	costDivisor   float64
	title         string
	legend        bool
}

func defaultConfig() renderConfig {
	return renderConfig{
		width:       DefaultWidth,
		height:      DefaultHeight,
		costDivisor: DefaultCostDivisor,
		legend:      true,
	}
}

// WithSize sets the figure size. Panics unless both are positive.
func WithSize(w, h vg.Length) Option {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("render: WithSize(%v, %v)", w, h))
	}
	return func(c *renderConfig) {
		c.width, c.height = w, h
	}
}

// WithCostDivisor sets the divisor turning a node cost into a marker area in
// pt². Panics unless d is positive.
func WithCostDivisor(d float64) Option {
	if !(d > 0) {
		panic(fmt.Sprintf("render: WithCostDivisor(%v)", d))
	}
	return func(c *renderConfig) {
		c.costDivisor = d
	}
}

// WithTitle sets the plot title; empty means no title.
func WithTitle(title string) Option {
	return func(c *renderConfig) {
		c.title = title
	}
}

// WithLegend toggles the legend (on by default).
func WithLegend(on bool) Option {
	return func(c *renderConfig) {
		c.legend = on
	}
}
