// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package export

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/NVIDIA/benchmark-results/pkg/table"
)

// DefaultChartTitle is the page title of HTML exports.
const DefaultChartTitle = "Benchmark results"

func init() {
	Register(&ChartExporter{Title: DefaultChartTitle})
}

// ChartExporter renders one line chart per metric column, plotted against
// the repetition index. Extra columns are shown in the chart subtitle.
type ChartExporter struct {
	Title string
}

func (e *ChartExporter) Name() string         { return "html" }
func (e *ChartExporter) Extensions() []string { return []string{".html", ".htm"} }

func (e *ChartExporter) Export(ctx context.Context, w io.Writer, t *table.Table) error {
	page := components.NewPage()
	page.PageTitle = e.Title
	page.SetLayout(components.PageFlexLayout)

	xLabels := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		xLabels[i] = row[0].String()
	}

	subtitle := extrasSubtitle(t)
	for j, name := range t.Fieldnames {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !isMetricColumn(t, j) {
			continue
		}
		page.AddCharts(lineChart(name, subtitle, xLabels, t, j))
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render html: %w", err)
	}
	return nil
}

func lineChart(name, subtitle string, xLabels []string, t *table.Table, j int) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: name, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Name: table.CountFieldname}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", Start: 0, End: 100}),
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "400px"}),
	)

	data := make([]opts.LineData, len(t.Rows))
	for i, row := range t.Rows {
		if f, ok := row[j].Float(); ok {
			data[i] = opts.LineData{Value: f}
		} else {
			// echarts renders "-" as a gap
			data[i] = opts.LineData{Value: "-"}
		}
	}

	line.SetXAxis(xLabels).AddSeries(name, data,
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
	)
	return line
}

// isMetricColumn reports whether column j holds observations rather than
// the index or an extra value.
func isMetricColumn(t *table.Table, j int) bool {
	if j == 0 {
		return false
	}
	for _, row := range t.Rows {
		switch row[j].Kind() {
		case table.CellNumber:
			return true
		case table.CellText, table.CellIndex:
			return false
		}
	}
	return true
}

func extrasSubtitle(t *table.Table) string {
	if len(t.Rows) == 0 {
		return ""
	}
	var parts []string
	for j, name := range t.Fieldnames {
		if t.Rows[0][j].Kind() != table.CellText {
			continue
		}
		seen := make(map[string]bool)
		var values []string
		for _, row := range t.Rows {
			v := row[j].String()
			if !seen[v] {
				seen[v] = true
				values = append(values, v)
			}
		}
		parts = append(parts, name+"="+strings.Join(values, ","))
	}
	return strings.Join(parts, " ")
}
