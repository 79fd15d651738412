package plot

import (
	"image"
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.RGBA{255, 0, 0, 255}

func pixel(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestRenderDiagonal(t *testing.T) {
	p := New("t", "x", "y", 50, 50)
	s := p.AddSeries("linear", red)
	s.SetData([]float64{0, 25, 50}, []float64{0, 25, 50})

	img := p.render(100, 100)
	require.Equal(t, image.Rect(0, 0, 100, 100), img.Bounds())

	c := pixel(img, 50, 49)
	assert.Greater(t, c.R, uint8(200))
	assert.Less(t, c.G, uint8(100))
	assert.Less(t, c.B, uint8(100))

	// away from the line and the grid the area stays white
	assert.Equal(t, areaColor, pixel(img, 70, 25))
}

func TestRenderEmptySeries(t *testing.T) {
	p := New("t", "x", "y", 50, 50)
	p.AddSeries("hidden", red)

	img := p.render(100, 100)
	assert.Equal(t, areaColor, pixel(img, 50, 49))

	frame := pixel(img, 0, 50)
	assert.Less(t, frame.R, uint8(160))
}

func TestChartSeriesSkipsShortSeries(t *testing.T) {
	p := New("t", "x", "y", 50, 50)
	p.AddSeries("empty", red)
	one := p.AddSeries("one point", red)
	one.SetData([]float64{1}, []float64{1})
	two := p.AddSeries("two points", red)
	two.SetData([]float64{1, 2, 3}, []float64{1, 2})

	// interior grid lines on both axes, the two-point series and the frame
	series := p.chartSeries()
	assert.Len(t, series, 2*(p.Ticks-1)+1+1)
}

func TestRenderTallCurve(t *testing.T) {
	p := New("t", "x", "y", 50, 50)
	s := p.AddSeries("quadratic", red)
	xs := []float64{1, 5, 7, 8, 10, 20}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = x * x
	}
	s.SetData(xs, ys)

	var img image.Image
	require.NotPanics(t, func() { img = p.render(200, 150) })
	assert.Equal(t, image.Rect(0, 0, 200, 150), img.Bounds())
	assert.NotPanics(t, func() { p.render(1, 1) })
}

func TestRendererLayout(t *testing.T) {
	test.NewTempApp(t)

	p := New("Growth", "n", "operations", 50, 50)
	p.AddSeries("a", red)
	p.AddSeries("b", color.RGBA{0, 0, 255, 255})

	r := test.WidgetRenderer(p).(*plotRenderer)
	r.Layout(fyne.NewSize(600, 400))

	assert.Len(t, r.xTicks, 6)
	assert.Equal(t, "50", r.xTicks[5].Text)
	assert.True(t, r.legend.Visible())

	pos, area := r.area(fyne.NewSize(600, 400))
	assert.Equal(t, pos, r.raster.Position())
	assert.Equal(t, area, r.raster.Size())
	assert.Greater(t, area.Width, float32(0))
	assert.Greater(t, area.Height, float32(0))

	w := test.NewWindow(p)
	defer w.Close()
	p.series[0].SetData([]float64{1, 2}, []float64{1, 2})
	assert.NotPanics(t, p.Refresh)
}
