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

package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/Masterminds/sprig/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/netops/wifiaudit/pkg/clients"
	"github.com/netops/wifiaudit/pkg/defaults"
)

// Chart trace settings shared by every donut.
const (
	ChartHole      = 0.4
	ChartTextInfo  = "label+percent"
	ChartHoverInfo = "label+value"
)

// Meta carries the per-run values printed in the document.
type Meta struct {
	Title           string
	ChartLibraryURL string
	RunID           string
	GeneratedAt     time.Time
}

// Chart is one statistic as handed to the charting library.
type Chart struct {
	ID     string
	Name   string
	Labels []string
	Values []int
}

type document struct {
	Meta
	Table       template.HTML
	Charts      []Chart
	ClientCount int
	Hole        float64
	TextInfo    string
	HoverInfo   string
}

var reportTemplate = template.Must(template.New("report").Funcs(reportFuncs()).Parse(reportHTML))

func reportFuncs() template.FuncMap {
	funcs := sprig.HtmlFuncMap()
	funcs["count"] = FormatCount
	return funcs
}

var countPrinter = message.NewPrinter(language.English)

// FormatCount renders n with digit grouping, e.g. 1,234.
func FormatCount(n int) string {
	return countPrinter.Sprintf("%d", n)
}

// ChartID derives the element id of a statistic's chart.
func ChartID(name string) string {
	return strings.ReplaceAll(name, " ", "_") + "_chart"
}

// Charts converts statistics into chart data, keeping statistic order.
func Charts(stats clients.Statistics) []Chart {
	charts := make([]Chart, 0, len(stats))
	for _, s := range stats {
		charts = append(charts, Chart{
			ID:     ChartID(s.Name),
			Name:   s.Name,
			Labels: s.Labels(),
			Values: s.Values(),
		})
	}
	return charts
}

// RenderHTML renders the interactive report: the client table followed by
// one donut chart per statistic.
func RenderHTML(rows []clients.Row, stats clients.Statistics, meta Meta) ([]byte, error) {
	if meta.Title == "" {
		meta.Title = defaults.ReportTitle
	}
	if meta.ChartLibraryURL == "" {
		meta.ChartLibraryURL = defaults.ChartLibraryURL
	}
	if meta.GeneratedAt.IsZero() {
		meta.GeneratedAt = time.Now()
	}

	doc := document{
		Meta:        meta,
		Table:       template.HTML(RenderTableHTML(rows)), //nolint:gosec // go-pretty escapes cell text
		Charts:      Charts(stats),
		ClientCount: len(rows),
		Hole:        ChartHole,
		TextInfo:    ChartTextInfo,
		HoverInfo:   ChartHoverInfo,
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("failed to render html report: %w", err)
	}
	return buf.Bytes(), nil
}

const reportHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>{{ .Title | trim }}</title>
    <script src="{{ .ChartLibraryURL }}"></script>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; margin: 20px; color: #111827; }
        h1 { font-size: 24px; }
        table.clients-table { border-collapse: collapse; margin-bottom: 30px; font-size: 13px; }
        table.clients-table th, table.clients-table td { border: 1px solid #e5e7eb; padding: 4px 8px; text-align: left; }
        table.clients-table th { background: #f3f4f6; }
        .charts { display: flex; flex-wrap: wrap; gap: 20px; }
        .chart-card { width: 450px; }
        .chart-card h3 { font-size: 16px; margin: 0 0 8px; }
        .chart { width: 450px; height: 400px; }
        footer { margin-top: 30px; color: #6b7280; font-size: 12px; }
    </style>
</head>
<body>
    <h1>{{ .Title | trim }}</h1>
    {{- if eq .ClientCount 0 }}
    <p>No clients found.</p>
    {{- end }}
    {{ .Table }}
    <h2>Client Capabilities Overview</h2>
    <div class="charts">
    {{- range .Charts }}
        <div class="chart-card">
            <h3>{{ .Name }}</h3>
            <div id="{{ .ID }}" class="chart"></div>
        </div>
    {{- end }}
    </div>
    <script>
    {{- range .Charts }}
        Plotly.newPlot({{ .ID }}, [{
            type: "pie",
            name: {{ .Name }},
            labels: {{ .Labels }},
            values: {{ .Values }},
            textinfo: {{ $.TextInfo }},
            hoverinfo: {{ $.HoverInfo }},
            hole: {{ $.Hole }}
        }]);
    {{- end }}
    </script>
    <footer>
        Generated {{ .GeneratedAt | date "2006-01-02 15:04:05 MST" }}
        {{- with .RunID }} | run {{ . }}{{ end }}
        | {{ count .ClientCount }} {{ if eq .ClientCount 1 }}client{{ else }}clients{{ end }}
    </footer>
</body>
</html>
`
