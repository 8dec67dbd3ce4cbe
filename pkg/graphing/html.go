package graphing

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Summary describes one run for the report header.
type Summary struct {
	SessionID string
	InputFile string
	Mode      Mode
	Sockets   []string
	Rows      int
	Start     time.Time
	End       time.Time
}

// WriteHTMLReport renders the lines as an interactive chart with a run
// summary and writes the page to path.
func WriteHTMLReport(path string, sum Summary, lines []Line, index []time.Time) error {
	if len(lines) == 0 {
		return fmt.Errorf("no lines to plot")
	}

	page := components.NewPage()
	page.PageTitle = chartTitle
	page.AddCharts(createBandwidthChart(lines, index))

	var buf strings.Builder
	if err := page.Render(&buf); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	// Inject the summary section after <body> and its styles into <head>;
	// the page renderer owns the rest of the document.
	html := buf.String()
	summaryHTML, err := renderSummary(sum)
	if err != nil {
		return err
	}
	html = strings.Replace(html, "<body>", "<body>\n"+summaryHTML, 1)
	html = strings.Replace(html, "</head>", reportCSS+"</head>", 1)

	return os.WriteFile(path, []byte(html), 0644)
}

func createBandwidthChart(lines []Line, index []time.Time) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: chartTitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Right: "0"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", AxisLabel: &opts.AxisLabel{Rotate: 30}}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: yAxisLabel}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", Start: 0, End: 100}),
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "600px"}),
	)

	xLabels := make([]string, len(index))
	for i, ts := range index {
		xLabels[i] = ts.Format(timeFormat)
	}
	chart.SetXAxis(xLabels)

	for _, l := range lines {
		data := make([]opts.LineData, len(l.Values))
		for i, v := range l.Values {
			data[i] = opts.LineData{Value: v}
		}

		lineType := "solid"
		if l.Kind == KindWrite {
			lineType = "dashed"
		}
		c := tierColors[l.Tier]

		chart.AddSeries(l.Label(), data,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
			charts.WithLineStyleOpts(opts.LineStyle{
				Color: fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B),
				Width: 2,
				Type:  lineType,
			}),
		)
	}

	return chart
}
