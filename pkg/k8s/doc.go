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

// Package k8s groups the Kubernetes integration used when snapshots are
// exported to a ConfigMap.
//
// # Sub-packages
//
// client: shared Kubernetes clientset with kubeconfig resolution
//
//	clientset, config, err := client.GetKubeClient()
//	if err != nil {
//	    return err
//	}
//
// Callers that need a specific kubeconfig use GetKubeClientWithConfig; an
// empty path falls back to KUBECONFIG, ~/.kube/config and finally the
// in-cluster service account.
package k8s
