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
	"strings"

	"github.com/netops/wifiaudit/pkg/defaults"
)

// New returns the exporter for target: a ConfigMap for cm:// URIs, a
// directory otherwise. An empty target uses the default export directory.
func New(target, kubeconfig string) (Exporter, error) {
	target = strings.TrimSpace(target)
	if strings.HasPrefix(target, ConfigMapURIScheme) {
		cm, err := NewConfigMapExporter(target)
		if err != nil {
			return nil, err
		}
		cm.Kubeconfig = kubeconfig
		return cm, nil
	}
	if target == "" {
		target = defaults.ExportDir
	}
	return NewDirExporter(target), nil
}

// IsDir reports whether e writes to the local file system.
func IsDir(e Exporter) bool {
	_, ok := e.(*DirExporter)
	return ok
}
