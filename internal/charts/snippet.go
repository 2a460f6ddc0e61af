package charts

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"econograph/internal/format"
	"econograph/internal/timeseries"
)

// ChartSnippet is an embeddable ECharts chart fragment for the HTML
// report: a root div plus the script block that initializes it.
type ChartSnippet struct {
	ID    string
	Title string
	HTML  string
}

// BuildLineSnippet renders the aligned rows as an interactive ECharts
// line chart fragment. Absent values become nulls, which ECharts draws
// as gaps in the line.
func (cg *ChartGenerator) BuildLineSnippet(id, title string, rows []timeseries.Row, datasets []timeseries.Dataset, cfg GraphConfig) (ChartSnippet, error) {
	if len(rows) == 0 {
		return ChartSnippet{}, fmt.Errorf("no rows to plot")
	}

	frequency := axisFrequency(datasets)
	xAxis := make([]string, len(rows))
	for i, row := range rows {
		xAxis[i] = format.FormatDate(row.Date, frequency)
	}

	width := "100%"
	if !cfg.Responsive {
		width = fmt.Sprintf("%dpx", cfg.Width)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			ChartID: id,
			Width:   width,
			Height:  fmt.Sprintf("%dpx", cfg.Height),
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    true,
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: cfg.ShowLegend,
		}),
		charts.WithColorsOpts(opts.Colors(cfg.Colors)),
	)

	line.SetXAxis(xAxis)
	for i, ds := range datasets {
		data := make([]opts.LineData, len(rows))
		for j, row := range rows {
			v := row.Values[ds.ID]
			if timeseries.IsMissing(v) {
				data[j] = opts.LineData{Value: nil}
			} else {
				data[j] = opts.LineData{Value: *v}
			}
		}
		line.AddSeries(ds.Label, data,
			charts.WithLineChartOpts(opts.LineChart{Smooth: cfg.Smooth}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: cfg.ColorAt(i)}),
		)
	}

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return ChartSnippet{}, fmt.Errorf("failed to render line snippet: %w", err)
	}

	return ChartSnippet{ID: id, Title: title, HTML: buf.String()}, nil
}
