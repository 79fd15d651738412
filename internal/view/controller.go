// Package view binds the curve samples to a render surface and keeps the
// interactive state: the parameter n and which curves are shown.
package view

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"bigo_visualizer/internal/config"
	"bigo_visualizer/internal/curves"
)

// Line is a drawable series whose points can be replaced.
type Line interface {
	SetData(x, y []float64)
}

// Surface creates lines and repaints them on demand.
type Surface interface {
	NewLine(label string, c color.Color) Line
	// Refresh marks the surface dirty; the toolkit repaints it when idle.
	Refresh()
}

// Readout displays the current value of n.
type Readout interface {
	SetText(string)
}

// State is the interactive state shown by the window.
type State struct {
	N       int
	Visible [curves.Count]bool
}

// Controller owns State and redraws the surface on every change.
type Controller struct {
	min, max int
	samples  *curves.Samples
	surface  Surface
	readout  Readout
	lines    [curves.Count]Line
	logger   *zap.Logger

	state State
}

// New creates one line per curve on surface and draws the initial state:
// n at its minimum and every curve hidden.
func New(cfg config.Config, samples *curves.Samples, surface Surface, readout Readout, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		min:     cfg.SliderMin,
		max:     cfg.SliderMax,
		samples: samples,
		surface: surface,
		readout: readout,
		logger:  logger,
		state:   State{N: cfg.SliderMin},
	}
	for i, set := range samples.Sets {
		c.lines[i] = surface.NewLine(set.Spec.Label, set.Spec.Color)
	}
	c.updateReadout()
	c.Redraw()
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// SetParameter stores raw as n, truncated to an integer and clamped into the
// slider range. Only a value that cannot be read as a number fails.
func (c *Controller) SetParameter(raw interface{}) error {
	f, err := cast.ToFloat64E(raw)
	if err != nil {
		return errors.Wrapf(err, "parameter %v", raw)
	}
	if math.IsNaN(f) {
		return errors.Errorf("parameter %v is not a number", raw)
	}
	n := int(math.Max(float64(c.min), math.Min(f, float64(c.max))))
	if n != c.state.N {
		c.logger.Debug("parameter changed", zap.Int("from", c.state.N), zap.Int("to", n))
	}
	c.state.N = n
	c.updateReadout()
	c.Redraw()
	return nil
}

func (c *Controller) ToggleVisibility(k curves.Kind) {
	c.SetVisible(k, !c.state.Visible[k])
}

func (c *Controller) SetVisible(k curves.Kind, visible bool) {
	c.state.Visible[k] = visible
	c.logger.Debug("visibility changed", zap.Stringer("curve", k), zap.Bool("visible", visible))
	c.Redraw()
}

// Redraw pushes the visible prefix of each shown curve to its line and
// empties the hidden ones.
func (c *Controller) Redraw() {
	k := visiblePrefix(c.samples.Grid, float64(c.state.N))
	for i, set := range c.samples.Sets {
		if c.state.Visible[i] {
			c.lines[i].SetData(set.X[:k], set.Y[:k])
		} else {
			c.lines[i].SetData(nil, nil)
		}
	}
	c.surface.Refresh()
}

func (c *Controller) updateReadout() {
	if c.readout != nil {
		c.readout.SetText(fmt.Sprintf("n = %d", c.state.N))
	}
}

// visiblePrefix returns how many leading grid points are <= n.
func visiblePrefix(grid []float64, n float64) int {
	return sort.Search(len(grid), func(i int) bool { return grid[i] > n })
}
