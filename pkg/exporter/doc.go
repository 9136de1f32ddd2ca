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

// Package exporter writes the rendered artifacts of one snapshot run.
//
// All three artifacts share a single run timestamp so they can be correlated:
//
//	names := exporter.Names(time.Now())
//	// wifi_clients_20250301_120000.csv
//	// wifi_clients_raw_20250301_120000.json
//	// wifi_clients_20250301_120000.html
//
// Targets:
//
//   - a directory path: DirExporter creates the directory when missing and
//     writes one file per artifact
//   - cm://namespace/name: ConfigMapExporter stores every artifact as a data
//     key of one ConfigMap using server-side apply
//
// New picks the exporter from the target string. Export stops at the first
// failed write and returns the paths written so far with an INTERNAL error.
package exporter
