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
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/netops/wifiaudit/pkg/clients"
)

// TableCSSClass is the class attribute of the HTML table.
const TableCSSClass = "clients-table"

// RenderTable renders rows as a grid with one separator line per row.
func RenderTable(rows []clients.Row) string {
	return newTable(rows).Render()
}

// RenderTableHTML renders rows as an HTML table. Cell text is escaped.
func RenderTableHTML(rows []clients.Row) string {
	return newTable(rows).RenderHTML()
}

func newTable(rows []clients.Row) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleDefault)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Options.SeparateRows = true
	t.Style().HTML.CSSClass = TableCSSClass
	t.Style().HTML.EscapeText = true

	t.AppendHeader(toTableRow(clients.Headers))
	for _, r := range rows {
		t.AppendRow(toTableRow(r.Values()))
	}
	return t
}

func toTableRow(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}
