// Package plot is a small fyne line chart with fixed axes. The title, axes,
// ticks and legend are laid out once; only the raster holding the series is
// regenerated when the plot is refreshed.
package plot

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const lineWidth = 2.5 // pixels

var (
	areaColor  = color.RGBA{255, 255, 255, 255}
	gridColor  = color.RGBA{200, 200, 200, 255}
	frameColor = color.RGBA{60, 60, 60, 255}
)

// Series is one line of the plot.
type Series struct {
	Label string
	Color color.Color

	x, y []float64
}

// SetData replaces the points of s. The slices are kept, not copied.
// Call Plot.Refresh to repaint.
func (s *Series) SetData(x, y []float64) {
	s.x, s.y = x, y
}

// Len is the number of points drawn.
func (s *Series) Len() int {
	if len(s.x) < len(s.y) {
		return len(s.x)
	}
	return len(s.y)
}

// Plot is a line chart widget with both axes fixed at [0, max].
type Plot struct {
	widget.BaseWidget

	Title  string
	XLabel string
	YLabel string
	XMax   float64
	YMax   float64
	// Ticks is the number of intervals between tick labels on each axis.
	Ticks int

	series []*Series
}

// New returns an empty plot with five tick intervals per axis.
func New(title, xLabel, yLabel string, xMax, yMax float64) *Plot {
	p := &Plot{
		Title:  title,
		XLabel: xLabel,
		YLabel: yLabel,
		XMax:   xMax,
		YMax:   yMax,
		Ticks:  5,
	}
	p.ExtendBaseWidget(p)
	return p
}

// AddSeries appends an empty series. Series must be added before the plot is
// first shown; the legend is built only once.
func (p *Plot) AddSeries(label string, c color.Color) *Series {
	s := &Series{Label: label, Color: c}
	p.series = append(p.series, s)
	return s
}

func (p *Plot) CreateRenderer() fyne.WidgetRenderer {
	return newRenderer(p)
}

// render draws the grid, every series and the frame into a w x h image.
// The chart has no padding and hidden axes, so its canvas is exactly the data
// rectangle; points beyond the fixed ranges fall outside the image.
func (p *Plot) render(w, h int) image.Image {
	if w < 2 || h < 2 {
		return blank(w, h)
	}

	ch := chart.Chart{
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.BoxZero, FillColor: toDrawing(areaColor)},
		Canvas:     chart.Style{FillColor: toDrawing(areaColor)},
		XAxis: chart.XAxis{
			Style: chart.Style{Hidden: true},
			Range: &chart.ContinuousRange{Min: 0, Max: p.XMax},
		},
		YAxis: chart.YAxis{
			Style: chart.Style{Hidden: true},
			Range: &chart.ContinuousRange{Min: 0, Max: p.YMax},
		},
		YAxisSecondary: chart.YAxis{Style: chart.Style{Hidden: true}},
		Series:         p.chartSeries(),
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return blank(w, h)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return blank(w, h)
	}
	return img
}

// chartSeries returns the grid lines, the non-empty series and the frame in
// drawing order.
func (p *Plot) chartSeries() []chart.Series {
	grid := chart.Style{
		StrokeColor:     toDrawing(gridColor),
		StrokeWidth:     1,
		StrokeDashArray: []float64{4, 4},
	}
	var out []chart.Series
	for i := 1; i < p.Ticks; i++ {
		f := float64(i) / float64(p.Ticks)
		out = append(out,
			chart.ContinuousSeries{Style: grid, XValues: []float64{f * p.XMax, f * p.XMax}, YValues: []float64{0, p.YMax}},
			chart.ContinuousSeries{Style: grid, XValues: []float64{0, p.XMax}, YValues: []float64{f * p.YMax, f * p.YMax}},
		)
	}

	for _, s := range p.series {
		n := s.Len()
		if n < 2 {
			continue
		}
		out = append(out, chart.ContinuousSeries{
			Name:    s.Label,
			Style:   chart.Style{StrokeColor: toDrawing(s.Color), StrokeWidth: lineWidth},
			XValues: s.x[:n],
			YValues: s.y[:n],
		})
	}

	out = append(out, chart.ContinuousSeries{
		Style:   chart.Style{StrokeColor: toDrawing(frameColor), StrokeWidth: 2},
		XValues: []float64{0, p.XMax, p.XMax, 0, 0},
		YValues: []float64{0, 0, p.YMax, p.YMax, 0},
	})
	return out
}

func toDrawing(c color.Color) drawing.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return drawing.Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(areaColor), image.Point{}, draw.Src)
	return img
}
