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

// Package oci publishes the artifacts of a snapshot run to an OCI registry.
//
// The CSV, raw JSON and HTML files are packed into one OCI 1.1 artifact
// manifest with artifact type application/vnd.wifiaudit.snapshot, one layer
// per file, and pushed with ORAS:
//
//	ref, err := oci.ParseReference("ghcr.io/netops/wifi-snapshots:20250301_120000")
//	if err != nil {
//	    return err
//	}
//	res, err := oci.Push(ctx, oci.PushOptions{
//	    Reference: ref,
//	    Files: []oci.File{
//	        {Path: csvPath, MediaType: "text/csv"},
//	        {Path: rawPath, MediaType: "application/json"},
//	        {Path: htmlPath, MediaType: "text/html"},
//	    },
//	})
//
// Registry credentials come from the Docker configuration
// (~/.docker/config.json and credential helpers). PlainHTTP and InsecureTLS
// support local development registries.
//
// Pull a snapshot back with any OCI client, for example:
//
//	oras pull ghcr.io/netops/wifi-snapshots:20250301_120000
package oci
