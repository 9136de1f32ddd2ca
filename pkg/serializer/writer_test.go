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

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type testDoc struct {
	Kind  string   `json:"kind" yaml:"kind"`
	Count int      `json:"count" yaml:"count"`
	Items []string `json:"items" yaml:"items"`
}

type tableDoc struct {
	testDoc
}

func (d tableDoc) RenderTable() string {
	return "rendered " + d.Kind + "\n"
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	doc := testDoc{Kind: "ClientSnapshot", Count: 2, Items: []string{"a", "b"}}

	require.NoError(t, NewWriter(FormatJSON, &buf).Serialize(context.Background(), doc))
	assert.Contains(t, buf.String(), "\n  \"kind\": \"ClientSnapshot\"")

	var got testDoc
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, doc, got)
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	doc := testDoc{Kind: "ClientSnapshot", Count: 1, Items: []string{"a"}}

	require.NoError(t, NewWriter(FormatYAML, &buf).Serialize(context.Background(), doc))
	assert.Contains(t, buf.String(), "kind: ClientSnapshot")
	assert.Contains(t, buf.String(), "items:\n  - a")

	var got testDoc
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, doc, got)
}

func TestWriter_SerializeTable_TableRenderer(t *testing.T) {
	var buf bytes.Buffer
	doc := tableDoc{testDoc{Kind: "snap"}}

	require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), doc))
	assert.Equal(t, "rendered snap\n", buf.String())
}

func TestWriter_SerializeTable_FallsBackToYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), testDoc{Kind: "plain"}))
	assert.Contains(t, buf.String(), "kind: plain")
}

func TestWriter_SerializeJSON_Unencodable(t *testing.T) {
	var buf bytes.Buffer
	err := NewWriter(FormatJSON, &buf).Serialize(context.Background(), map[string]any{"ch": make(chan int)})
	require.Error(t, err)
}

func TestWriter_UnsupportedFormat(t *testing.T) {
	w := &Writer{format: "xml", output: &bytes.Buffer{}}
	err := w.Serialize(context.Background(), testDoc{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestNewWriter_Defaults(t *testing.T) {
	w := NewWriter("xml", nil)
	assert.Equal(t, FormatTable, w.Format())
	assert.NotNil(t, w.output)
}

func TestFormat_IsUnknown(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, false},
		{"xml", true},
		{"", true},
		{"JSON", true},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.IsUnknown())
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table, json, yaml")
}

func TestSupportedFormats(t *testing.T) {
	assert.Equal(t, []string{"table", "json", "yaml"}, SupportedFormats())
}
