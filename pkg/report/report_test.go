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
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netops/wifiaudit/pkg/clients"
	"github.com/netops/wifiaudit/pkg/defaults"
)

const headerLine = "Hostname,MAC,OS,802.11k,802.11v,802.11r,MIMO,Radio,Signal,SNR\n"

func decode(t *testing.T, body string) []any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var raw []any
	require.NoError(t, dec.Decode(&raw))
	return raw
}

func sampleRaw(t *testing.T) []any {
	return decode(t, `[
		{"hostname":"printer1","mac":"AA:BB:CC:DD:EE:FF","11k_capable":true,"signal":-47},
		{"hostname":"laptop, office","mac":"11:22:33:44:55:66","os":"Windows","11k_capable":true,
		 "11v_capable":true,"11r_capable":"yes","mimo":"2x2","radio_type":"802.11ax","signal":-61,"snr":38,
		 "vlan_id":20,"note":"<b>&</b>"},
		"not a client"
	]`)
}

func TestRenderCSV(t *testing.T) {
	rows := clients.Normalize(sampleRaw(t))

	out, err := RenderCSV(rows)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.TrimSuffix(headerLine, "\n"), lines[0])
	assert.Equal(t, "printer1,AA:BB:CC:DD:EE:FF,N/A,True,False,False,N/A,N/A,-47 dBm,N/A dB", lines[1])
	assert.Equal(t, `"laptop, office",11:22:33:44:55:66,Windows,True,True,False,2x2,802.11ax,-61 dBm,38 dB`, lines[2])

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "laptop, office", records[2][0])
}

func TestRenderCSV_Empty(t *testing.T) {
	for _, rows := range [][]clients.Row{nil, {}} {
		out, err := RenderCSV(rows)
		require.NoError(t, err)
		assert.Equal(t, headerLine, string(out))
	}
}

func TestRenderJSON_RoundTrip(t *testing.T) {
	raw := sampleRaw(t)

	out, err := RenderJSON(raw)
	require.NoError(t, err)

	assert.Equal(t, raw, decode(t, string(out)))
	assert.Contains(t, string(out), "\n  {\n    \"11k_capable\": true,")
	assert.Contains(t, string(out), `"note": "<b>&</b>"`)
	assert.Contains(t, string(out), `"vlan_id": 20`)
}

func TestRenderJSON_Empty(t *testing.T) {
	out, err := RenderJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(out))

	out, err = RenderJSON([]any{})
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(out))
}

func TestRenderTable(t *testing.T) {
	rows := clients.Normalize(sampleRaw(t))
	out := RenderTable(rows)

	lines := strings.Split(out, "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "+"))
	for _, h := range clients.Headers {
		assert.Contains(t, out, h)
	}
	assert.Contains(t, out, "printer1")
	assert.Contains(t, out, "-47 dBm")
	assert.Contains(t, out, "N/A dB")

	width := len(lines[0])
	for _, l := range lines {
		assert.Equal(t, width, len(l), "grid lines are aligned: %q", l)
	}

	assert.Equal(t, out, RenderTable(rows), "rendering is deterministic")
}

func TestRenderTable_Empty(t *testing.T) {
	out := RenderTable(nil)
	assert.Contains(t, out, "Hostname")
	assert.NotContains(t, out, "N/A")
}

func TestRenderTableHTML(t *testing.T) {
	rows := []clients.Row{{Hostname: "<script>", MAC: "aa", Signal: "-50 dBm"}}
	out := RenderTableHTML(rows)

	assert.Contains(t, out, `<table class="`+TableCSSClass+`">`)
	assert.Contains(t, out, "<th>802.11k</th>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.NotContains(t, out, "<script>")
}

func TestChartID(t *testing.T) {
	tests := map[string]string{
		clients.StatDot11k:    "802.11k_Support_chart",
		clients.StatMIMO:      "MIMO_Mode_chart",
		clients.StatRadioType: "Radio_Type_chart",
		"NoSpaces":            "NoSpaces_chart",
	}
	for in, want := range tests {
		assert.Equal(t, want, ChartID(in))
		assert.NotContains(t, ChartID(in), " ")
	}
}

func TestRenderHTML(t *testing.T) {
	raw := sampleRaw(t)
	rows := clients.Normalize(raw)
	stats := clients.Summarize(raw)

	out, err := RenderHTML(rows, stats, Meta{
		Title:       "Site A",
		RunID:       "0b7f7b2e-6c1d-4c3e-9a57-3f1f2f0e8f11",
		GeneratedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	doc := string(out)

	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, "<title>Site A</title>")
	assert.Contains(t, doc, `<script src="`+defaults.ChartLibraryURL+`"></script>`)
	assert.Contains(t, doc, "printer1")
	assert.Contains(t, doc, "0b7f7b2e-6c1d-4c3e-9a57-3f1f2f0e8f11")
	assert.Contains(t, doc, "2 clients")

	for _, name := range clients.StatisticNames {
		id := ChartID(name)
		assert.Contains(t, doc, `<div id="`+id+`" class="chart"></div>`)
		assert.Contains(t, doc, `Plotly.newPlot("`+id+`"`)
		assert.Contains(t, doc, "<h3>"+name+"</h3>")
		assert.Contains(t, doc, `name: "`+name+`",`)
	}
	assert.Contains(t, doc, "Client Capabilities Overview")
	assert.Equal(t, len(clients.StatisticNames), strings.Count(doc, "textinfo: "))
	assert.Equal(t, len(clients.StatisticNames), strings.Count(doc, "hoverinfo: "))
	assert.Contains(t, doc, `labels: ["True"],`)
	assert.Contains(t, doc, `values: [2],`)
	assert.Contains(t, doc, `labels: ["Unknown","2x2"],`)
	assert.Contains(t, doc, `labels: ["False","True"],`)
	assert.Contains(t, doc, `values: [1,1],`)
	assert.Contains(t, doc, "hole:")
	assert.NotContains(t, doc, "No clients found.")
}

func TestRenderHTML_Empty(t *testing.T) {
	out, err := RenderHTML(nil, clients.Summarize(nil), Meta{ChartLibraryURL: "https://example.com/plotly.js"})
	require.NoError(t, err)
	doc := string(out)

	assert.Contains(t, doc, "<title>"+defaults.ReportTitle+"</title>")
	assert.Contains(t, doc, `<script src="https://example.com/plotly.js"></script>`)
	assert.Contains(t, doc, "No clients found.")
	assert.Contains(t, doc, "0 clients")
	assert.Contains(t, doc, `labels: [],`)
	assert.Equal(t, len(clients.StatisticNames), strings.Count(doc, "Plotly.newPlot("))
}

func TestFormatCount(t *testing.T) {
	tests := map[int]string{
		0:       "0",
		7:       "7",
		1234:    "1,234",
		1000000: "1,000,000",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatCount(in))
	}
}

func TestRenderHTML_LargeClientCount(t *testing.T) {
	rows := make([]clients.Row, 1234)
	out, err := RenderHTML(rows, nil, Meta{})
	require.NoError(t, err)
	assert.Contains(t, string(out), "1,234 clients")
}

func TestCharts(t *testing.T) {
	stats := clients.Statistics{
		{Name: "Radio Type", Counts: []clients.Count{{Value: "802.11ac", Count: 3}, {Value: "Unknown", Count: 1}}},
	}
	charts := Charts(stats)
	require.Len(t, charts, 1)
	assert.Equal(t, Chart{
		ID:     "Radio_Type_chart",
		Name:   "Radio Type",
		Labels: []string{"802.11ac", "Unknown"},
		Values: []int{3, 1},
	}, charts[0])
}
