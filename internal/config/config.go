// Package config holds the compiled-in settings of the visualizer window.
package config

import (
	"github.com/pkg/errors"
)

// Config describes the window and the sampling of the curves.
type Config struct {
	Title  string
	Width  float32
	Height float32

	// SliderMin and SliderMax bound the interactive parameter n.
	SliderMin int
	SliderMax int

	// PlotMax is the upper limit of both plot axes.
	PlotMax float64

	// GridPoints is the number of x samples shared by every curve.
	GridPoints int
}

// Default returns the settings the application ships with.
func Default() Config {
	return Config{
		Title:      "Big O Complexity Visualizer",
		Width:      1000,
		Height:     700,
		SliderMin:  2,
		SliderMax:  50,
		PlotMax:    50,
		GridPoints: 500,
	}
}

// Validate reports the first violated precondition. A SliderMin below 1 is
// rejected: the logarithmic curve is only defined from 1 upwards.
func (c Config) Validate() error {
	if c.SliderMin < 1 {
		return errors.Errorf("slider min must be >= 1, got %d", c.SliderMin)
	}
	if c.SliderMin >= c.SliderMax {
		return errors.Errorf("slider min %d must be below slider max %d", c.SliderMin, c.SliderMax)
	}
	if c.GridPoints < 2 {
		return errors.Errorf("grid needs at least 2 points, got %d", c.GridPoints)
	}
	if c.PlotMax <= 0 {
		return errors.Errorf("plot max must be positive, got %g", c.PlotMax)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("invalid window size %gx%g", c.Width, c.Height)
	}
	return nil
}
