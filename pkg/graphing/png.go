package graphing

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

const (
	chartWidth  = 16 * vg.Inch
	chartHeight = 10 * vg.Inch

	chartTitle = "Memory Bandwidth per Socket"
	yAxisLabel = "Bandwidth (MB/s)"

	timeFormat = "15:04:05"
	maxXTicks  = 10
)

// One color per memory tier, matplotlib tab palette.
var tierColors = map[Tier]color.RGBA{
	TierDRAM: {R: 214, G: 39, B: 40, A: 255},
	TierPMM:  {R: 255, G: 127, B: 14, A: 255},
	TierCXL:  {R: 44, G: 160, B: 44, A: 255},
}

// RenderPNG draws the lines against the timestamp index and saves the chart.
func RenderPNG(lines []Line, index []time.Time, path string) error {
	if len(lines) == 0 {
		return fmt.Errorf("no lines to plot")
	}

	p := plot.New()
	p.Title.Text = chartTitle
	p.X.Label.Text = "Time"
	p.Y.Label.Text = yAxisLabel
	p.X.Tick.Marker = timeTicker{count: maxXTicks}
	p.X.Tick.Label.Rotation = math.Pi / 6
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true

	for _, l := range lines {
		pts := make(plotter.XYs, len(index))
		for i, ts := range index {
			pts[i].X = float64(ts.UnixNano()) / 1e9
			if i < len(l.Values) {
				pts[i].Y = l.Values[i]
			}
		}

		ln, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("failed to build line %s: %w", l.Label(), err)
		}
		ln.Color = tierColors[l.Tier]
		ln.Width = vg.Points(1.5)
		if l.Kind == KindWrite {
			ln.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		}

		p.Add(ln)
		p.Legend.Add(l.Label(), ln)
	}

	return p.Save(chartWidth, chartHeight, path)
}

// timeTicker places at most count evenly spaced time ticks.
type timeTicker struct {
	count int
}

func (t timeTicker) Ticks(min, max float64) []plot.Tick {
	label := func(v float64) string {
		sec := int64(v)
		nsec := int64((v - float64(sec)) * 1e9)
		return time.Unix(sec, nsec).UTC().Format(timeFormat)
	}

	if t.count < 2 || max <= min {
		return []plot.Tick{{Value: min, Label: label(min)}}
	}

	step := (max - min) / float64(t.count-1)
	ticks := make([]plot.Tick, 0, t.count)
	for i := 0; i < t.count; i++ {
		v := min + float64(i)*step
		ticks = append(ticks, plot.Tick{Value: v, Label: label(v)})
	}
	return ticks
}
