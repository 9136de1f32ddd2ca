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

// Package report renders a client snapshot into its output artifacts.
//
// Every renderer is a stateless function of its input:
//
//   - RenderTable: whitespace-aligned grid for the console
//   - RenderTableHTML: the same grid as an HTML table
//   - RenderCSV: header line plus one line per client
//   - RenderJSON: the raw controller records, unmodified
//   - RenderHTML: standalone document with the table and one donut chart per statistic
//
// Table, CSV and HTML share the column order defined by clients.Headers.
// RenderJSON works on the raw elements rather than normalized rows so fields
// the normalizer ignores survive for later reprocessing.
//
// The HTML document references the charting library by URL and renders the
// charts client-side; nothing is drawn at generation time.
package report
