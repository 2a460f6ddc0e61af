package reports

import (
	"html/template"
	"strings"

	"econograph/internal/format"
	"econograph/internal/models"
	"econograph/internal/timeseries"
)

// BuildDataTable renders the aligned rows as an HTML table: a date
// column followed by one column per dataset. Values are formatted with
// each dataset's unit hint; absent values show the missing marker.
func BuildDataTable(rows []timeseries.Row, datasets []timeseries.Dataset) template.HTML {
	if len(rows) == 0 || len(datasets) == 0 {
		return ""
	}

	dateFrequency := sharedFrequency(datasets)

	var buf strings.Builder
	buf.WriteString(`<table class="data-table">`)
	buf.WriteString(`<thead><tr><th class="date">Date</th>`)
	for _, ds := range datasets {
		buf.WriteString("<th>")
		buf.WriteString(template.HTMLEscapeString(ds.Label))
		buf.WriteString("</th>")
	}
	buf.WriteString("</tr></thead><tbody>")

	for _, row := range rows {
		buf.WriteString(`<tr><td class="date">`)
		buf.WriteString(template.HTMLEscapeString(format.FormatDate(row.Date, dateFrequency)))
		buf.WriteString("</td>")
		for _, ds := range datasets {
			buf.WriteString("<td>")
			buf.WriteString(template.HTMLEscapeString(format.FormatValue(row.Values[ds.ID], unitHint(ds))))
			buf.WriteString("</td>")
		}
		buf.WriteString("</tr>")
	}

	buf.WriteString("</tbody></table>")
	return template.HTML(buf.String())
}

// BuildReleaseList renders the release calendar entries as a list.
func BuildReleaseList(items []models.ReleaseItem) template.HTML {
	if len(items) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString("<ul>")
	for _, item := range items {
		buf.WriteString(`<li><a href="`)
		buf.WriteString(template.HTMLEscapeString(item.Link))
		buf.WriteString(`">`)
		buf.WriteString(template.HTMLEscapeString(item.Title))
		buf.WriteString("</a>")
		if item.Published != "" {
			buf.WriteString(` <span class="published">`)
			buf.WriteString(template.HTMLEscapeString(item.Published))
			buf.WriteString("</span>")
		}
		buf.WriteString("</li>")
	}
	buf.WriteString("</ul>")
	return template.HTML(buf.String())
}

// sharedFrequency returns the common frequency of all datasets, or
// empty when they disagree so dates fall back to full precision.
func sharedFrequency(datasets []timeseries.Dataset) string {
	frequency := ""
	for _, ds := range datasets {
		if ds.Metadata == nil || ds.Metadata.Frequency == "" {
			continue
		}
		if frequency == "" {
			frequency = ds.Metadata.Frequency
			continue
		}
		if !strings.EqualFold(frequency, ds.Metadata.Frequency) {
			return ""
		}
	}
	return frequency
}

func unitHint(ds timeseries.Dataset) string {
	if ds.Metadata == nil {
		return ""
	}
	return ds.Metadata.Units
}
