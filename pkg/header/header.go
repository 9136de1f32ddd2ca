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

package header

import (
	"maps"
	"time"
)

// Kind represents the type of wifiaudit document.
type Kind string

const (
	KindClientSnapshot Kind = "ClientSnapshot"
	KindArtifactSet    Kind = "ArtifactSet"
)

// Metadata keys shared by documents and exports.
const (
	MetadataTimestamp = "timestamp"
	MetadataVersion   = "version"
	MetadataRunID     = "run-id"
	MetadataSource    = "source"
)

func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindClientSnapshot, KindArtifactSet:
		return true
	default:
		return false
	}
}

// Header contains metadata and versioning information for wifiaudit documents.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init resets the header to kind and apiVersion with a copy of metadata.
func (h *Header) Init(kind Kind, apiVersion string, metadata map[string]string) {
	h.Kind = kind
	h.APIVersion = apiVersion
	h.Metadata = make(map[string]string, len(metadata))
	maps.Copy(h.Metadata, metadata)
}

// RunMetadata describes one snapshot run. The timestamp is UTC RFC 3339 and
// empty values are left out.
func RunMetadata(runID string, at time.Time, version, source string) map[string]string {
	m := map[string]string{
		MetadataTimestamp: at.UTC().Format(time.RFC3339),
	}
	for k, v := range map[string]string{
		MetadataRunID:   runID,
		MetadataVersion: version,
		MetadataSource:  source,
	} {
		if v != "" {
			m[k] = v
		}
	}
	return m
}
