package charts

import "strings"

// ChartType selects the renderer variant. Only line charts are fully
// implemented; bar and area reuse the line geometry with their own
// defaults.
type ChartType string

const (
	ChartLine ChartType = "line"
	ChartArea ChartType = "area"
	ChartBar  ChartType = "bar"
)

// ParseChartType maps a user-supplied chart type string to a ChartType.
// Unrecognized types fall back to line. This is a deliberate
// lenient-degrade policy: a typo in a cosmetic field should not fail a
// whole render.
func ParseChartType(s string) ChartType {
	switch ChartType(strings.ToLower(strings.TrimSpace(s))) {
	case ChartArea:
		return ChartArea
	case ChartBar:
		return ChartBar
	default:
		return ChartLine
	}
}

// Margin is the whitespace around the plot area in pixels.
type Margin struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// GraphConfig is the fully-populated rendering configuration consumed
// by the renderers. It is built once per render by ResolveGraphConfig
// and never persisted.
type GraphConfig struct {
	Type        ChartType `json:"type"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Margin      Margin    `json:"margin"`
	Colors      []string  `json:"colors"`
	ShowLegend  bool      `json:"show_legend"`
	ShowGrid    bool      `json:"show_grid"`
	Responsive  bool      `json:"responsive"`
	Smooth      bool      `json:"smooth"`
	FillOpacity float64   `json:"fill_opacity"`
}

// GraphConfigOverride is a partial user-supplied configuration. Nil
// fields keep the chart-type default.
type GraphConfigOverride struct {
	Width       *int            `json:"width,omitempty"`
	Height      *int            `json:"height,omitempty"`
	Margin      *MarginOverride `json:"margin,omitempty"`
	Colors      []string        `json:"colors,omitempty"`
	ShowLegend  *bool           `json:"show_legend,omitempty"`
	ShowGrid    *bool           `json:"show_grid,omitempty"`
	Responsive  *bool           `json:"responsive,omitempty"`
	Smooth      *bool           `json:"smooth,omitempty"`
	FillOpacity *float64        `json:"fill_opacity,omitempty"`
}

// MarginOverride overrides individual margin sides; unset sides fall
// back to the default.
type MarginOverride struct {
	Top    *int `json:"top,omitempty"`
	Right  *int `json:"right,omitempty"`
	Bottom *int `json:"bottom,omitempty"`
	Left   *int `json:"left,omitempty"`
}

// defaultPalette is cycled through by dataset position.
var defaultPalette = []string{
	"#3366cc", "#dc3912", "#ff9900", "#109618",
	"#990099", "#0099c6", "#dd4477", "#66aa00",
}

func defaultConfig(chartType ChartType) GraphConfig {
	cfg := GraphConfig{
		Type:       ChartLine,
		Width:      900,
		Height:     420,
		Margin:     Margin{Top: 40, Right: 30, Bottom: 60, Left: 70},
		Colors:     defaultPalette,
		ShowLegend: true,
		ShowGrid:   true,
		Responsive: true,
	}

	switch chartType {
	case ChartArea:
		cfg.Type = ChartArea
		cfg.FillOpacity = 0.25
	case ChartBar:
		cfg.Type = ChartBar
		cfg.ShowGrid = false
	}
	return cfg
}

// ResolveGraphConfig merges a partial override onto the chart-type
// default. The merge is shallow field-by-field, except for Margin,
// which merges side-by-side so overriding one side keeps the defaults
// for the rest. An unknown chart type resolves to the line defaults
// (see ParseChartType).
func ResolveGraphConfig(chartType ChartType, override *GraphConfigOverride) GraphConfig {
	cfg := defaultConfig(chartType)

	// Copy the palette so callers mutating the result cannot corrupt
	// the shared default.
	cfg.Colors = append([]string(nil), cfg.Colors...)

	if override == nil {
		return cfg
	}

	if override.Width != nil {
		cfg.Width = *override.Width
	}
	if override.Height != nil {
		cfg.Height = *override.Height
	}
	if override.Margin != nil {
		if override.Margin.Top != nil {
			cfg.Margin.Top = *override.Margin.Top
		}
		if override.Margin.Right != nil {
			cfg.Margin.Right = *override.Margin.Right
		}
		if override.Margin.Bottom != nil {
			cfg.Margin.Bottom = *override.Margin.Bottom
		}
		if override.Margin.Left != nil {
			cfg.Margin.Left = *override.Margin.Left
		}
	}
	if len(override.Colors) > 0 {
		cfg.Colors = append([]string(nil), override.Colors...)
	}
	if override.ShowLegend != nil {
		cfg.ShowLegend = *override.ShowLegend
	}
	if override.ShowGrid != nil {
		cfg.ShowGrid = *override.ShowGrid
	}
	if override.Responsive != nil {
		cfg.Responsive = *override.Responsive
	}
	if override.Smooth != nil {
		cfg.Smooth = *override.Smooth
	}
	if override.FillOpacity != nil {
		cfg.FillOpacity = *override.FillOpacity
	}
	return cfg
}

// ColorAt returns the color assigned to the dataset at the given
// position, cycling through the palette.
func (c GraphConfig) ColorAt(position int) string {
	colors := c.Colors
	if len(colors) == 0 {
		colors = defaultPalette
	}
	if position < 0 {
		position = 0
	}
	return colors[position%len(colors)]
}
