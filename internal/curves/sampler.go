package curves

import (
	"github.com/pkg/errors"
)

// SampleSet is one curve evaluated over the shared grid. X aliases
// Samples.Grid; neither slice is modified after Sample returns.
type SampleSet struct {
	Spec Spec
	X    []float64
	Y    []float64
}

type Samples struct {
	Grid []float64
	Sets [Count]SampleSet
}

// Sample evaluates every catalog entry over points evenly spaced values in
// [1, sliderMax]. It fails if the bounds or the resulting grid are unusable.
func Sample(catalog [Count]Spec, sliderMin, sliderMax, points int) (*Samples, error) {
	if sliderMin < 1 {
		return nil, errors.Errorf("slider min %d below 1", sliderMin)
	}
	if sliderMin >= sliderMax {
		return nil, errors.Errorf("slider min %d not below slider max %d", sliderMin, sliderMax)
	}

	grid := Linspace(1, float64(sliderMax), points)
	for i := range grid {
		if grid[i] < 1 {
			grid[i] = 1
		}
	}
	if err := checkIncreasing(grid); err != nil {
		return nil, err
	}

	s := &Samples{Grid: grid}
	for i, spec := range catalog {
		if spec.Kind != Kind(i) {
			return nil, errors.Errorf("catalog entry %d holds %v", i, spec.Kind)
		}
		y := make([]float64, len(grid))
		for j, x := range grid {
			y[j] = spec.Kind.Eval(x)
		}
		s.Sets[i] = SampleSet{Spec: spec, X: grid, Y: y}
	}
	return s, nil
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

func checkIncreasing(grid []float64) error {
	if len(grid) < 2 {
		return errors.Errorf("grid has %d points", len(grid))
	}
	for i := 1; i < len(grid); i++ {
		if grid[i] <= grid[i-1] {
			return errors.Errorf("grid not increasing at %d: %g <= %g", i, grid[i], grid[i-1])
		}
	}
	return nil
}
