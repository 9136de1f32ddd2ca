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

package defaults

// Controller monitoring API.
const (
	// ClientsPath is the FortiOS monitor endpoint listing associated wireless clients.
	ClientsPath = "/api/v2/monitor/wifi/client"

	// ClientsQuery requests per-client radio statistics (signal, snr, mimo).
	ClientsQuery = "with_stats=true"

	// MaxResponseBytes caps the controller response body that is read into memory.
	MaxResponseBytes = 64 << 20
)

// Report and export defaults.
const (
	// ExportDir is where artifacts are written when no directory is configured.
	ExportDir = "./wifi_client_exports"

	// ChartLibraryURL is the script the HTML report loads to draw its charts.
	ChartLibraryURL = "https://cdn.plot.ly/plotly-latest.min.js"

	// ReportTitle is the HTML document title.
	ReportTitle = "Fortinet WiFi Client Capabilities"

	// TimestampLayout is the sortable run timestamp shared by all artifact names.
	TimestampLayout = "20060102_150405"
)
