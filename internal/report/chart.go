package report

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"StockAnalysis/internal/model"
)

// DefaultChartDPI matches print-quality output.
const DefaultChartDPI = 150

var (
	closeColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	ma20Color  = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	ma50Color  = color.RGBA{R: 44, G: 160, B: 44, A: 255}
)

// ChartRenderer draws close price with MA20/MA50 overlays to a PNG file.
type ChartRenderer struct {
	Dir    string
	DPI    int
	Width  vg.Length
	Height vg.Length
	Now    func() time.Time
}

// NewChartRenderer creates a renderer writing into dir at the given DPI.
func NewChartRenderer(dir string, dpi int) *ChartRenderer {
	if dpi <= 0 {
		dpi = DefaultChartDPI
	}
	return &ChartRenderer{
		Dir:    dir,
		DPI:    dpi,
		Width:  6.4 * vg.Inch,
		Height: 4.8 * vg.Inch,
	}
}

// Render writes {TICKER}_price_ma_{timestamp}.png and returns its path.
// Each call builds and discards its own plot and canvas.
func (r *ChartRenderer) Render(series model.IndicatorSeries, ticker string) (path string, err error) {
	if series.Len() == 0 {
		return "", errors.New("render chart: empty series")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s Price with Moving Averages", strings.ToUpper(ticker))
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Price ($)"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	lines := []struct {
		label string
		col   color.Color
		value func(model.IndicatorBar) model.Metric
	}{
		{"Close", closeColor, func(b model.IndicatorBar) model.Metric { return model.Some(b.Close) }},
		{"MA20", ma20Color, func(b model.IndicatorBar) model.Metric { return b.MA20 }},
		{"MA50", ma50Color, func(b model.IndicatorBar) model.Metric { return b.MA50 }},
	}
	for _, l := range lines {
		pts := make(plotter.XYs, 0, series.Len())
		for _, b := range series.Bars {
			if m := l.value(b); m.Valid {
				pts = append(pts, plotter.XY{X: float64(b.Time.Unix()), Y: m.Value})
			}
		}
		if len(pts) == 0 {
			continue // still in warmup for the whole series
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return "", fmt.Errorf("render chart %s: %w", l.label, err)
		}
		line.LineStyle.Color = l.col
		line.LineStyle.Width = vg.Points(1.2)
		p.Add(line)
		p.Legend.Add(l.label, line)
	}

	c := vgimg.NewWith(vgimg.UseWH(r.Width, r.Height), vgimg.UseDPI(r.DPI))
	p.Draw(draw.New(c))

	path, err = outputPath(r.Dir, ticker, "price_ma", "png", clock(r.Now))
	if err != nil {
		return "", err
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create chart file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close chart file: %w", cerr)
		}
	}()
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(f); err != nil {
		return "", fmt.Errorf("write chart: %w", err)
	}
	return path, nil
}
