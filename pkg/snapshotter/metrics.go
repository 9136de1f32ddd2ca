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

package snapshotter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run status label values.
const (
	statusSuccess     = "success"
	statusFetchError  = "fetch_error"
	statusRenderError = "render_error"
	statusExportError = "export_error"
	statusPushError   = "push_error"
)

var (
	snapshotRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wifiaudit_snapshot_run_duration_seconds",
			Help:    "Time taken by a complete snapshot run",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60},
		},
	)

	snapshotRunTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wifiaudit_snapshot_run_total",
			Help: "Total number of snapshot runs",
		},
		[]string{"status"},
	)

	snapshotFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wifiaudit_snapshot_fetch_duration_seconds",
			Help:    "Time taken to fetch the client list",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
	)

	snapshotClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wifiaudit_snapshot_clients",
			Help: "Number of clients in the last snapshot",
		},
	)

	snapshotCapability = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wifiaudit_snapshot_capability_clients",
			Help: "Clients per statistic value in the last snapshot",
		},
		[]string{"statistic", "value"},
	)

	snapshotArtifactBytes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wifiaudit_snapshot_artifact_bytes",
			Help: "Size of each artifact written by the last snapshot",
		},
		[]string{"type"},
	)
)

// WriteMetrics writes every registered metric to path in the text format
// read by the node exporter textfile collector.
func WriteMetrics(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
