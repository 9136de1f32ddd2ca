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
	"fmt"
	"strings"
	"time"

	"github.com/netops/wifiaudit/pkg/clients"
	"github.com/netops/wifiaudit/pkg/header"
	"github.com/netops/wifiaudit/pkg/oci"
	"github.com/netops/wifiaudit/pkg/report"
)

// APIVersion is the schema version of the console document.
const APIVersion = "wifiaudit.netops.io/v1alpha1"

// EmptyMessage is shown when a run produced no client rows.
const EmptyMessage = "No clients found or API request failed."

// Result is the outcome of one run.
type Result struct {
	RunID     string
	Timestamp time.Time
	Source    string

	Raw   []any
	Rows  []clients.Row
	Stats clients.Statistics

	// Paths are the exported artifact locations in CSV, JSON, HTML order.
	Paths []string
	// Push is set when the artifacts were published to a registry.
	Push *oci.PushResult

	// FetchErr records why the client list could not be obtained. The run
	// still renders and exports empty artifacts in that case.
	FetchErr error
}

// Empty reports whether the run produced no client rows.
func (r *Result) Empty() bool {
	return len(r.Rows) == 0
}

// ClientSnapshot is the console form of a run.
type ClientSnapshot struct {
	header.Header `json:",inline" yaml:",inline"`

	Clients    []clients.Row      `json:"clients" yaml:"clients"`
	Statistics clients.Statistics `json:"statistics" yaml:"statistics"`
	Artifacts  []string           `json:"artifacts,omitempty" yaml:"artifacts,omitempty"`
	Error      string             `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewClientSnapshot builds the console document of a result.
func NewClientSnapshot(res *Result, version string) *ClientSnapshot {
	doc := &ClientSnapshot{
		Clients:    res.Rows,
		Statistics: res.Stats,
		Artifacts:  res.Paths,
	}
	if doc.Clients == nil {
		doc.Clients = []clients.Row{}
	}
	doc.Init(header.KindClientSnapshot, APIVersion, header.RunMetadata(res.RunID, res.Timestamp, version, res.Source))
	if res.FetchErr != nil {
		doc.Error = res.FetchErr.Error()
	}
	return doc
}

// RenderTable draws the client grid followed by the statistics, or the empty
// message when there are no clients.
func (s *ClientSnapshot) RenderTable() string {
	var b strings.Builder
	if len(s.Clients) == 0 {
		b.WriteString(EmptyMessage)
		b.WriteString("\n")
	} else {
		b.WriteString(report.RenderTable(s.Clients))
		b.WriteString("\n\n")
		for _, st := range s.Statistics {
			fmt.Fprintf(&b, "%s:", st.Name)
			for _, c := range st.Counts {
				fmt.Fprintf(&b, " %s=%d", c.Value, c.Count)
			}
			b.WriteString("\n")
		}
	}
	for _, p := range s.Artifacts {
		fmt.Fprintf(&b, "Saved %s\n", p)
	}
	return b.String()
}
