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

// Package header provides the common header carried by wifiaudit documents.
//
// The Header follows Kubernetes-style resource conventions so console output
// and ConfigMap exports are self-describing:
//
//	var h header.Header
//	h.Init(header.KindClientSnapshot, "wifiaudit.netops.io/v1alpha1",
//	    header.RunMetadata(runID, time.Now(), "v1.0.0", source))
//	// h.Metadata["timestamp"] = "2025-01-15T10:30:00Z"
//	// h.Metadata["run-id"]    = "0b6f..."
package header
