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
	"fmt"
	"log/slog"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"

	"github.com/netops/wifiaudit/pkg/defaults"
	apperrors "github.com/netops/wifiaudit/pkg/errors"
	"github.com/netops/wifiaudit/pkg/header"
	"github.com/netops/wifiaudit/pkg/k8s/client"
)

const (
	// ConfigMapURIScheme prefixes ConfigMap export targets: cm://namespace/name.
	ConfigMapURIScheme = "cm://"

	// FieldManager owns the applied ConfigMap fields.
	FieldManager = "wifiaudit"

	// MaxConfigMapBytes is the API server's limit on ConfigMap data.
	MaxConfigMapBytes = 1 << 20
)

// ConfigMapExporter stores every artifact under its name as a data key of
// one ConfigMap. The ConfigMap is created or replaced with server-side apply.
type ConfigMapExporter struct {
	Namespace string
	Name      string

	// Client is resolved from Kubeconfig on first use when nil.
	Client     client.Interface
	Kubeconfig string

	// Labels are added to the standard app.kubernetes.io labels.
	Labels map[string]string
	// Data holds extra entries such as run id and timestamp.
	Data map[string]string
}

// NewConfigMapExporter parses a cm://namespace/name target.
func NewConfigMapExporter(uri string) (*ConfigMapExporter, error) {
	namespace, name, err := ParseConfigMapURI(uri)
	if err != nil {
		return nil, err
	}
	return &ConfigMapExporter{Namespace: namespace, Name: name}, nil
}

// String implements Exporter.
func (e *ConfigMapExporter) String() string {
	return ConfigMapURIScheme + e.Namespace + "/" + e.Name
}

// SetMetadata implements MetadataReceiver; entries become data keys.
func (e *ConfigMapExporter) SetMetadata(meta map[string]string) {
	if e.Data == nil {
		e.Data = make(map[string]string, len(meta))
	}
	for k, v := range meta {
		e.Data[k] = v
	}
}

// Export applies the ConfigMap. Returned paths are cm://namespace/name/key.
func (e *ConfigMapExporter) Export(ctx context.Context, artifacts []Artifact) ([]string, error) {
	writeCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	if e.Client == nil {
		cs, cfg, err := client.GetKubeClientWithConfig(e.Kubeconfig)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to get kubernetes client", err)
		}
		slog.Info("configmap export",
			"namespace", e.Namespace,
			"name", e.Name,
			"auth_method", client.AuthMethod(cfg))
		e.Client = cs
	}

	data := make(map[string]string, len(artifacts)+len(e.Data))
	for k, v := range e.Data {
		data[k] = v
	}

	size := 0
	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		data[a.Name] = string(a.Data)
		size += len(a.Data)
		paths = append(paths, e.String()+"/"+a.Name)
	}
	if size > MaxConfigMapBytes {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInternal,
			"artifacts exceed the configmap size limit",
			map[string]any{"bytes": size, "limit": MaxConfigMapBytes})
	}

	labels := map[string]string{
		"app.kubernetes.io/name":      "wifiaudit",
		"app.kubernetes.io/component": header.KindArtifactSet.String(),
	}
	for k, v := range e.Labels {
		labels[k] = v
	}

	cm := accorev1.ConfigMap(e.Name, e.Namespace).
		WithLabels(labels).
		WithData(data)

	slog.Info("applying configmap", "namespace", e.Namespace, "name", e.Name, "artifacts", len(artifacts))

	_, err := e.Client.CoreV1().ConfigMaps(e.Namespace).Apply(writeCtx, cm, metav1.ApplyOptions{
		FieldManager: FieldManager,
		Force:        true,
	})
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInternal,
			"failed to apply configmap", err, map[string]any{"target": e.String()})
	}

	return paths, nil
}

// ParseConfigMapURI splits cm://namespace/name into its parts.
func ParseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", apperrors.New(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme))
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, ConfigMapURIScheme), "/", 2)
	if len(parts) != 2 {
		return "", "", apperrors.New(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri))
	}

	namespace = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])
	if namespace == "" {
		return "", "", apperrors.New(apperrors.ErrCodeInvalidRequest, "invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", apperrors.New(apperrors.ErrCodeInvalidRequest, "invalid ConfigMap URI: name cannot be empty")
	}
	if strings.Contains(name, "/") {
		return "", "", apperrors.New(apperrors.ErrCodeInvalidRequest, "invalid ConfigMap URI: name cannot contain '/'")
	}

	return namespace, name, nil
}
