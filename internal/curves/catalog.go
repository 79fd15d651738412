// Package curves defines the growth curves shown by the visualizer and
// precomputes their samples.
package curves

import (
	"image/color"
	"math"

	"golang.org/x/image/colornames"
)

// Kind tags one of the four growth classes.
type Kind int

const (
	Constant Kind = iota
	Logarithmic
	Linear
	Quadratic

	// Count is the number of kinds.
	Count = 4
)

var labels = [Count]string{
	Constant:    "O(1) constant",
	Logarithmic: "O(log n) logarithmic",
	Linear:      "O(n) linear",
	Quadratic:   "O(n^2) quadratic",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= Count {
		return "unknown"
	}
	return labels[k]
}

// Eval returns the growth function of k at x. The logarithm is taken of
// max(x, 1) so it never goes negative.
func (k Kind) Eval(x float64) float64 {
	switch k {
	case Constant:
		return 1
	case Logarithmic:
		if x < 1 {
			x = 1
		}
		return math.Log2(x)
	case Linear:
		return x
	case Quadratic:
		return x * x
	}
	panic("curves: unknown kind")
}

// Spec is one catalog entry.
type Spec struct {
	Kind  Kind
	Label string
	Color color.Color
}

// Catalog returns the curves in display order.
func Catalog() [Count]Spec {
	return [Count]Spec{
		{Kind: Constant, Label: labels[Constant], Color: colornames.Cyan},
		{Kind: Logarithmic, Label: labels[Logarithmic], Color: colornames.Green},
		{Kind: Linear, Label: labels[Linear], Color: colornames.Blue},
		{Kind: Quadratic, Label: labels[Quadratic], Color: colornames.Red},
	}
}
