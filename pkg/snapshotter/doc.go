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

// Package snapshotter runs the client snapshot pipeline.
//
// One Run performs, in order:
//
//  1. fetch the raw client list from the Source
//  2. normalize it into rows and summarize the capability statistics
//  3. render the CSV, raw JSON and HTML artifacts
//  4. export them under names sharing one run timestamp
//  5. optionally push the exported files to an OCI registry
//  6. write the console document through the Serializer
//
// A failed fetch is logged and recorded in Result.FetchErr; the run then
// continues with zero clients so that every artifact is still produced.
// Failures in later stages stop the run.
//
//	s := &snapshotter.Snapshotter{
//	    Version:    version,
//	    Source:     src,
//	    Exporter:   exporter.NewDirExporter("./wifi_client_exports"),
//	    Serializer: serializer.NewWriter(serializer.FormatTable, os.Stdout),
//	}
//	res, err := s.Run(ctx)
//
// Run metrics are registered with the default Prometheus registry and can be
// written to a textfile with WriteMetrics.
package snapshotter
