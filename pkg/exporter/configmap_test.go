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
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/fake"
	k8stesting "k8s.io/client-go/testing"

	apperrors "github.com/netops/wifiaudit/pkg/errors"
)

func TestParseConfigMapURI(t *testing.T) {
	tests := []struct {
		uri       string
		namespace string
		name      string
		wantErr   bool
	}{
		{uri: "cm://default/wifi", namespace: "default", name: "wifi"},
		{uri: "cm://ns/ name ", namespace: "ns", name: "name"},
		{uri: "cm://ns", wantErr: true},
		{uri: "cm:///name", wantErr: true},
		{uri: "cm://ns/", wantErr: true},
		{uri: "cm://ns/a/b", wantErr: true},
		{uri: "configmap://ns/name", wantErr: true},
		{uri: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			ns, name, err := ParseConfigMapURI(tt.uri)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, apperrors.ErrCodeInvalidRequest, apperrors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.namespace, ns)
			assert.Equal(t, tt.name, name)
		})
	}
}

func TestConfigMapExporter_Export(t *testing.T) {
	cs := fake.NewClientset()
	e := &ConfigMapExporter{
		Namespace: "monitoring",
		Name:      "wifi-snapshot",
		Client:    cs,
		Labels:    map[string]string{"app.kubernetes.io/version": "v1.2.3"},
	}
	e.SetMetadata(map[string]string{"run-id": "run-1", "timestamp": "2025-03-01T09:05:07Z"})
	assert.Equal(t, "cm://monitoring/wifi-snapshot", e.String())

	paths, err := e.Export(context.Background(), sampleArtifacts())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"cm://monitoring/wifi-snapshot/wifi_clients_20250301_090507.csv",
		"cm://monitoring/wifi-snapshot/wifi_clients_raw_20250301_090507.json",
		"cm://monitoring/wifi-snapshot/wifi_clients_20250301_090507.html",
	}, paths)

	cm, err := cs.CoreV1().ConfigMaps("monitoring").Get(context.Background(), "wifi-snapshot", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "csv\n", cm.Data["wifi_clients_20250301_090507.csv"])
	assert.Equal(t, "[]\n", cm.Data["wifi_clients_raw_20250301_090507.json"])
	assert.Equal(t, "<html></html>", cm.Data["wifi_clients_20250301_090507.html"])
	assert.Equal(t, "run-1", cm.Data["run-id"])
	assert.Equal(t, "wifiaudit", cm.Labels["app.kubernetes.io/name"])
	assert.Equal(t, "ArtifactSet", cm.Labels["app.kubernetes.io/component"])
	assert.Equal(t, "v1.2.3", cm.Labels["app.kubernetes.io/version"])
}

func TestConfigMapExporter_ExistingConfigMap(t *testing.T) {
	existing := &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{Namespace: "monitoring", Name: "wifi-snapshot"},
		Data:       map[string]string{"wifi_clients_20250228_120000.csv": "old\n"},
	}
	cs := fake.NewClientset(existing)
	e := &ConfigMapExporter{Namespace: "monitoring", Name: "wifi-snapshot", Client: cs}

	paths, err := e.Export(context.Background(), sampleArtifacts())
	require.NoError(t, err)
	assert.Len(t, paths, 3)

	cm, err := cs.CoreV1().ConfigMaps("monitoring").Get(context.Background(), "wifi-snapshot", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "csv\n", cm.Data["wifi_clients_20250301_090507.csv"])
	assert.Equal(t, "wifiaudit", cm.Labels["app.kubernetes.io/name"])
}

func TestConfigMapExporter_ApplyFailure(t *testing.T) {
	cs := fake.NewClientset()
	cs.PrependReactor("patch", "configmaps", func(k8stesting.Action) (bool, runtime.Object, error) {
		return true, nil, errors.New("forbidden")
	})

	e := &ConfigMapExporter{Namespace: "ns", Name: "wifi", Client: cs}
	paths, err := e.Export(context.Background(), sampleArtifacts())
	require.Error(t, err)
	assert.Nil(t, paths)
	assert.Equal(t, apperrors.ErrCodeInternal, apperrors.CodeOf(err))
	assert.Contains(t, err.Error(), "forbidden")
}

func TestConfigMapExporter_TooLarge(t *testing.T) {
	e := &ConfigMapExporter{Namespace: "ns", Name: "wifi", Client: fake.NewClientset()}
	big := []Artifact{{Name: "big.html", Data: []byte(strings.Repeat("x", MaxConfigMapBytes+1))}}

	_, err := e.Export(context.Background(), big)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInternal, apperrors.CodeOf(err))
}
