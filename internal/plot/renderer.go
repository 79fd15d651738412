package plot

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
)

const (
	margin     = 12
	tickGap    = 6
	swatchSize = 12
)

type plotRenderer struct {
	p *Plot

	background *canvas.Rectangle
	raster     *canvas.Raster
	title      *canvas.Text
	xLabel     *canvas.Text
	yLabel     *canvas.Text
	xTicks     []*canvas.Text
	yTicks     []*canvas.Text
	legend     *fyne.Container

	objects []fyne.CanvasObject
}

func newRenderer(p *Plot) *plotRenderer {
	fg := theme.Color(theme.ColorNameForeground)

	r := &plotRenderer{
		p:          p,
		background: canvas.NewRectangle(theme.Color(theme.ColorNameBackground)),
		raster:     canvas.NewRaster(p.render),
		title:      canvas.NewText(p.Title, fg),
		xLabel:     canvas.NewText(p.XLabel, fg),
		yLabel:     canvas.NewText(p.YLabel, fg),
	}
	r.title.TextSize = theme.TextSize() * 1.4
	r.title.TextStyle.Bold = true

	for i := 0; i <= p.Ticks; i++ {
		r.xTicks = append(r.xTicks, tickText(p.XMax*float64(i)/float64(p.Ticks), fg))
		r.yTicks = append(r.yTicks, tickText(p.YMax*float64(i)/float64(p.Ticks), fg))
	}

	rows := container.NewVBox()
	for _, s := range p.series {
		swatch := canvas.NewRectangle(s.Color)
		swatch.SetMinSize(fyne.NewSize(swatchSize, swatchSize))
		label := canvas.NewText(s.Label, color.Black)
		rows.Add(container.NewHBox(container.NewCenter(swatch), label))
	}
	legendBG := canvas.NewRectangle(color.NRGBA{255, 255, 255, 220})
	legendBG.StrokeColor = gridColor
	legendBG.StrokeWidth = 1
	r.legend = container.NewStack(legendBG, container.NewPadded(rows))
	if len(p.series) == 0 {
		r.legend.Hide()
	}

	r.objects = []fyne.CanvasObject{r.background, r.raster, r.title, r.xLabel, r.yLabel}
	for _, t := range r.xTicks {
		r.objects = append(r.objects, t)
	}
	for _, t := range r.yTicks {
		r.objects = append(r.objects, t)
	}
	r.objects = append(r.objects, r.legend)
	return r
}

func tickText(v float64, c color.Color) *canvas.Text {
	t := canvas.NewText(strconv.FormatFloat(v, 'g', 4, 64), c)
	t.TextSize = theme.CaptionTextSize()
	return t
}

// area returns the position and size of the data rectangle.
func (r *plotRenderer) area(size fyne.Size) (fyne.Position, fyne.Size) {
	tick := r.yTicks[len(r.yTicks)-1].MinSize()
	left := margin + tick.Width + tickGap
	top := margin + r.title.MinSize().Height + tickGap + r.yLabel.MinSize().Height + tickGap
	bottom := margin + r.xLabel.MinSize().Height + tickGap + tick.Height + tickGap
	right := float32(margin) + tick.Width/2

	w := size.Width - left - right
	h := size.Height - top - bottom
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return fyne.NewPos(left, top), fyne.NewSize(w, h)
}

func (r *plotRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)

	pos, area := r.area(size)
	r.raster.Move(pos)
	r.raster.Resize(area)

	ts := r.title.MinSize()
	r.title.Move(fyne.NewPos((size.Width-ts.Width)/2, margin))
	r.title.Resize(ts)

	ys := r.yLabel.MinSize()
	r.yLabel.Move(fyne.NewPos(pos.X, pos.Y-ys.Height-tickGap))
	r.yLabel.Resize(ys)

	n := float32(len(r.xTicks) - 1)
	for i, t := range r.xTicks {
		ms := t.MinSize()
		x := pos.X + area.Width*float32(i)/n - ms.Width/2
		t.Move(fyne.NewPos(x, pos.Y+area.Height+tickGap))
		t.Resize(ms)
	}
	for i, t := range r.yTicks {
		ms := t.MinSize()
		y := pos.Y + area.Height*(1-float32(i)/n) - ms.Height/2
		t.Move(fyne.NewPos(pos.X-ms.Width-tickGap, y))
		t.Resize(ms)
	}

	xs := r.xLabel.MinSize()
	tickH := r.xTicks[0].MinSize().Height
	r.xLabel.Move(fyne.NewPos(pos.X+(area.Width-xs.Width)/2, pos.Y+area.Height+tickGap+tickH+tickGap))
	r.xLabel.Resize(xs)

	r.legend.Move(pos.Add(fyne.NewPos(tickGap, tickGap)))
	r.legend.Resize(r.legend.MinSize())
}

func (r *plotRenderer) MinSize() fyne.Size {
	return fyne.NewSize(320, 240)
}

// Refresh regenerates the series raster only.
func (r *plotRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *plotRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *plotRenderer) Destroy() {}
