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

package exporter

import (
	"context"
	"time"

	"github.com/netops/wifiaudit/pkg/defaults"
)

// Content types of the run artifacts.
const (
	ContentTypeCSV  = "text/csv"
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html"
)

// FilePrefix and RawFilePrefix start every artifact name.
const (
	FilePrefix    = "wifi_clients_"
	RawFilePrefix = "wifi_clients_raw_"
)

// Artifact is one rendered output of a run.
type Artifact struct {
	Name        string
	ContentType string
	Data        []byte
}

// Exporter writes artifacts and reports where each one ended up, in order.
type Exporter interface {
	Export(ctx context.Context, artifacts []Artifact) ([]string, error)
	String() string
}

// MetadataReceiver is implemented by exporters that store run metadata next
// to the artifacts.
type MetadataReceiver interface {
	SetMetadata(meta map[string]string)
}

// FileNames are the artifact names of one run.
type FileNames struct {
	CSV  string
	JSON string
	HTML string
}

// Names derives the artifact names from the run timestamp.
func Names(ts time.Time) FileNames {
	stamp := Timestamp(ts)
	return FileNames{
		CSV:  FilePrefix + stamp + ".csv",
		JSON: RawFilePrefix + stamp + ".json",
		HTML: FilePrefix + stamp + ".html",
	}
}

// Timestamp formats ts as the sortable run stamp YYYYMMDD_HHMMSS.
func Timestamp(ts time.Time) string {
	return ts.Format(defaults.TimestampLayout)
}

// Artifacts pairs rendered content with the run's names in CSV, JSON, HTML order.
func (n FileNames) Artifacts(csv, raw, html []byte) []Artifact {
	return []Artifact{
		{Name: n.CSV, ContentType: ContentTypeCSV, Data: csv},
		{Name: n.JSON, ContentType: ContentTypeJSON, Data: raw},
		{Name: n.HTML, ContentType: ContentTypeHTML, Data: html},
	}
}
