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

// Package defaults provides centralized configuration constants for wifiaudit.
//
// This package defines timeout values, controller API locations, and artifact
// naming defaults used across the codebase. Centralizing these values ensures
// consistency and makes tuning easier.
//
// # Timeout Categories
//
//   - HTTP client timeouts: for the controller monitoring API request
//   - Kubernetes timeouts: for ConfigMap exports
//   - Registry timeouts: for OCI artifact pushes
//
// # Usage
//
//	import "github.com/netops/wifiaudit/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
//	defer cancel()
//
// The controller request timeout is the one value operators are expected to
// tune; it is exposed as --timeout and defaults to HTTPClientTimeout.
package defaults
