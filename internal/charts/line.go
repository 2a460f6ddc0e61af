package charts

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"econograph/internal/format"
	"econograph/internal/timeseries"
)

// ChartGenerator renders chart artifacts for a report into outputDir.
type ChartGenerator struct {
	outputDir string
}

// NewChartGenerator creates a new chart generator.
func NewChartGenerator(outputDir string) *ChartGenerator {
	return &ChartGenerator{outputDir: outputDir}
}

// RenderLinePNG draws one overlaid line per dataset over the aligned
// row table and writes a PNG to outputDir. Absent values are skipped,
// which breaks the line around interior gaps the caller chose not to
// fill. Datasets with fewer than two plottable points are dropped from
// the image; rendering fails only when nothing remains.
func (cg *ChartGenerator) RenderLinePNG(title string, rows []timeseries.Row, datasets []timeseries.Dataset, cfg GraphConfig, filename string) (string, error) {
	if len(rows) == 0 {
		return "", fmt.Errorf("no rows to plot")
	}

	var series []chart.Series
	for i, ds := range datasets {
		var xValues []time.Time
		var yValues []float64
		for _, row := range rows {
			v := row.Values[ds.ID]
			if timeseries.IsMissing(v) {
				continue
			}
			xValues = append(xValues, row.Date.Time())
			yValues = append(yValues, *v)
		}
		if len(xValues) < 2 {
			continue
		}

		color := parseHexColor(cfg.ColorAt(i))
		style := chart.Style{
			StrokeColor: color,
			StrokeWidth: 2,
		}
		if cfg.Type == ChartArea {
			style.FillColor = color.WithAlpha(uint8(cfg.FillOpacity * 255))
		}
		series = append(series, chart.TimeSeries{
			Name:    ds.Label,
			Style:   style,
			XValues: xValues,
			YValues: yValues,
		})
	}

	if len(series) == 0 {
		return "", fmt.Errorf("no dataset has enough plottable points")
	}

	frequency := axisFrequency(datasets)
	unitHint := axisUnitHint(datasets)

	graph := chart.Chart{
		Title: title,
		TitleStyle: chart.Style{
			FontSize:  16,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    cfg.Margin.Top,
				Left:   cfg.Margin.Left,
				Right:  cfg.Margin.Right,
				Bottom: cfg.Margin.Bottom,
			},
		},
		Width:  cfg.Width,
		Height: cfg.Height,
		XAxis: chart.XAxis{
			Style: chart.Style{FontSize: 9},
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(time.Time); ok {
					return format.FormatDate(timeseries.DateKeyFromTime(t), frequency)
				}
				if f, ok := v.(float64); ok {
					return format.FormatDate(timeseries.DateKeyFromTime(chart.TimeFromFloat64(f)), frequency)
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			Style: chart.Style{FontSize: 10},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return format.FormatValue(&f, unitHint)
				}
				return ""
			},
		},
		Series: series,
	}

	if cfg.ShowGrid {
		graph.XAxis.GridMajorStyle = chart.Style{
			StrokeColor: drawing.Color{R: 220, G: 220, B: 220, A: 255},
			StrokeWidth: 1,
		}
		graph.YAxis.GridMajorStyle = chart.Style{
			StrokeColor: drawing.Color{R: 220, G: 220, B: 220, A: 255},
			StrokeWidth: 1,
		}
	}
	if cfg.ShowLegend {
		graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	}

	path := filepath.Join(cg.outputDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("failed to render chart: %w", err)
	}
	return path, nil
}

// axisFrequency picks the date label granularity for the shared axis:
// the first dataset's frequency when all agree, otherwise full dates.
func axisFrequency(datasets []timeseries.Dataset) string {
	var frequency string
	for _, ds := range datasets {
		if ds.Metadata == nil {
			continue
		}
		if frequency == "" {
			frequency = ds.Metadata.Frequency
		} else if ds.Metadata.Frequency != frequency {
			return ""
		}
	}
	return frequency
}

// axisUnitHint returns the shared unit hint when every dataset reports
// the same units; mixed units get plain magnitude formatting.
func axisUnitHint(datasets []timeseries.Dataset) string {
	var units string
	for _, ds := range datasets {
		if ds.Metadata == nil {
			continue
		}
		if units == "" {
			units = ds.Metadata.Units
		} else if ds.Metadata.Units != units {
			return ""
		}
	}
	return units
}

// parseHexColor converts "#rrggbb" to a drawing color; bad tokens get
// an opaque gray rather than failing the render.
func parseHexColor(s string) drawing.Color {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return drawing.Color{R: 128, G: 128, B: 128, A: 255}
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(s[i*2])
		lo, ok2 := hexDigit(s[i*2+1])
		if !ok1 || !ok2 {
			return drawing.Color{R: 128, G: 128, B: 128, A: 255}
		}
		rgb[i] = hi<<4 | lo
	}
	return drawing.Color{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
