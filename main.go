package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"bigo_visualizer/internal/config"
	"bigo_visualizer/internal/curves"
	"bigo_visualizer/internal/plot"
	"bigo_visualizer/internal/view"
)

const helpText = `
BIG O VISUALIZER - Classroom Activity

WHAT IS IT?
Each curve shows how many operations an algorithm of a given complexity
class needs for an input of size n.

* O(1) constant: the same work whatever the input
* O(log n) logarithmic: grows very slowly (binary search)
* O(n) linear: one step per element
* O(n^2) quadratic: one step per pair of elements

HOW TO USE IT

1. Tick the functions you want to compare.
2. Move the slider up to increase n progressively.
3. Take a screenshot of the plot for a few values of n.

QUESTIONS

* Which curve grows fastest?
* Which one barely changes?
* Why does O(n^2) quickly become impractical?
`

// plotSurface adapts the plot widget to the controller's surface and keeps
// the series it hands out, in catalog order.
type plotSurface struct {
	*plot.Plot
	lines []*plot.Series
}

func (s *plotSurface) NewLine(label string, c color.Color) view.Line {
	line := s.AddSeries(label, c)
	s.lines = append(s.lines, line)
	return line
}

type visualizer struct {
	window     fyne.Window
	plot       *plot.Plot
	surface    *plotSurface
	controller *view.Controller
	checks     [curves.Count]*widget.Check
	slider     *widget.Slider
	readout    *widget.Label
}

func newVisualizer(a fyne.App, cfg config.Config, logger *zap.Logger) (*visualizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	samples, err := curves.Sample(curves.Catalog(), cfg.SliderMin, cfg.SliderMax, cfg.GridPoints)
	if err != nil {
		return nil, err
	}

	v := &visualizer{
		window:  a.NewWindow(cfg.Title),
		plot:    plot.New("Big O Notation Growth", "Input size (n)", "Number of operations", cfg.PlotMax, cfg.PlotMax),
		readout: widget.NewLabel(""),
	}
	v.readout.TextStyle.Bold = true
	v.surface = &plotSurface{Plot: v.plot}
	v.controller = view.New(cfg, samples, v.surface, v.readout, logger)

	checks := container.NewVBox()
	for _, spec := range curves.Catalog() {
		kind := spec.Kind
		check := widget.NewCheck(spec.Label, func(checked bool) {
			v.controller.SetVisible(kind, checked)
		})
		v.checks[kind] = check
		checks.Add(check)
	}

	v.slider = widget.NewSlider(float64(cfg.SliderMin), float64(cfg.SliderMax))
	v.slider.Orientation = widget.Vertical
	v.slider.Step = 1
	v.slider.Value = float64(v.controller.State().N)
	v.slider.OnChanged = func(value float64) {
		if err := v.controller.SetParameter(value); err != nil {
			logger.Error("slider value rejected", zap.Float64("value", value), zap.Error(err))
		}
	}

	helpButton := widget.NewButton("How to use it?", func() {
		helpLabel := widget.NewLabel(helpText)
		helpLabel.Wrapping = fyne.TextWrapWord

		scrollHelp := container.NewScroll(helpLabel)
		scrollHelp.SetMinSize(fyne.NewSize(500, 400))

		dialog.NewCustom("How to use it?", "Close", scrollHelp, v.window).Show()
	})

	controls := container.NewBorder(
		container.NewVBox(
			widget.NewCard("", "Visible functions", checks),
			widget.NewLabel("Value of 'n'"),
		),
		container.NewVBox(v.readout, widget.NewSeparator(), helpButton),
		nil,
		nil,
		v.slider,
	)

	v.window.SetContent(container.NewBorder(nil, nil, nil, container.NewPadded(controls), v.plot))
	v.window.Resize(fyne.NewSize(cfg.Width, cfg.Height))
	v.window.SetFixedSize(true)
	v.window.CenterOnScreen()
	return v, nil
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Default()
	v, err := newVisualizer(app.New(), cfg, logger)
	if err != nil {
		logger.Fatal("cannot start visualizer", zap.Error(err))
	}

	logger.Info("visualizer ready",
		zap.Int("sliderMin", cfg.SliderMin),
		zap.Int("sliderMax", cfg.SliderMax),
		zap.Int("gridPoints", cfg.GridPoints))
	v.window.ShowAndRun()
}
