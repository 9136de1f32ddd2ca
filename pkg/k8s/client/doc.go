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

// Package client builds the Kubernetes client used by the ConfigMap exporter.
//
// GetKubeClient returns a shared client created once with sync.Once from
// automatic discovery:
//
//   - KUBECONFIG environment variable
//   - ~/.kube/config
//   - in-cluster service account
//
// GetKubeClientWithConfig accepts an explicit kubeconfig path, as passed with
// --kubeconfig, and bypasses the cache when one is given.
//
//	cs, cfg, err := client.GetKubeClientWithConfig(kubeconfig)
//	if err != nil {
//	    return fmt.Errorf("failed to get kubernetes client: %w", err)
//	}
//	slog.Info("kubernetes client ready", "auth_method", client.AuthMethod(cfg))
//
// Interface aliases kubernetes.Interface so callers can substitute
// k8s.io/client-go/kubernetes/fake in tests.
package client
