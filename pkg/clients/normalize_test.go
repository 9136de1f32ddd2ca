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

package clients

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decode mirrors how the controller body is decoded by the source package.
func decode(t *testing.T, s string) []any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var out []any
	require.NoError(t, dec.Decode(&out))
	return out
}

func TestNormalize_PrinterScenario(t *testing.T) {
	raw := decode(t, `[{"hostname":"printer1","mac":"AA:BB:CC:DD:EE:FF","11k_capable":true,"signal":-47}]`)

	rows := Normalize(raw)
	require.Len(t, rows, 1)

	assert.Equal(t, Row{
		Hostname:  "printer1",
		MAC:       "AA:BB:CC:DD:EE:FF",
		OS:        "N/A",
		Dot11k:    true,
		Dot11v:    false,
		Dot11r:    false,
		MIMO:      "N/A",
		RadioType: "N/A",
		Signal:    "-47 dBm",
		SNR:       "N/A dB",
	}, rows[0])
}

func TestNormalize_EmptyRecordGetsAllDefaults(t *testing.T) {
	rows := Normalize([]any{map[string]any{}})
	require.Len(t, rows, 1)

	want := []string{"N/A", "N/A", "N/A", "False", "False", "False", "N/A", "N/A", "N/A dBm", "N/A dB"}
	assert.Equal(t, want, rows[0].Values())
}

func TestNormalize_EveryFieldDefaultsIndependently(t *testing.T) {
	full := map[string]any{
		KeyHostname:  "laptop",
		KeyMAC:       "00:11:22:33:44:55",
		KeyOS:        "macOS",
		KeyDot11k:    true,
		KeyDot11v:    true,
		KeyDot11r:    true,
		KeyMIMO:      "2x2",
		KeyRadioType: "802.11ax",
		KeySignal:    json.Number("-60"),
		KeySNR:       json.Number("35"),
	}

	defaults := map[string]string{
		KeyHostname:  "N/A",
		KeyMAC:       "N/A",
		KeyOS:        "N/A",
		KeyDot11k:    "False",
		KeyDot11v:    "False",
		KeyDot11r:    "False",
		KeyMIMO:      "N/A",
		KeyRadioType: "N/A",
		KeySignal:    "N/A dBm",
		KeySNR:       "N/A dB",
	}
	keys := []string{KeyHostname, KeyMAC, KeyOS, KeyDot11k, KeyDot11v, KeyDot11r, KeyMIMO, KeyRadioType, KeySignal, KeySNR}

	for col, key := range keys {
		t.Run(key, func(t *testing.T) {
			rec := make(map[string]any, len(full))
			for k, v := range full {
				if k != key {
					rec[k] = v
				}
			}

			values := NormalizeRecord(rec).Values()
			assert.Equal(t, defaults[key], values[col])
			for i, v := range values {
				assert.NotEmpty(t, v, "column %s", Headers[i])
			}
		})
	}
}

func TestNormalize_BooleanTypeChecking(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"true", true, true},
		{"false", false, false},
		{"string true", "true", false},
		{"number one", json.Number("1"), false},
		{"null", nil, false},
		{"object", map[string]any{"v": true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := NormalizeRecord(Record{KeyDot11k: tt.value, KeyDot11v: tt.value, KeyDot11r: tt.value})
			assert.Equal(t, tt.want, row.Dot11k)
			assert.Equal(t, tt.want, row.Dot11v)
			assert.Equal(t, tt.want, row.Dot11r)
		})
	}
}

func TestNormalize_SkipsNonObjects(t *testing.T) {
	raw := []any{
		"garbage",
		json.Number("42"),
		nil,
		[]any{"nested"},
		map[string]any{KeyHostname: "first"},
		true,
		Record{KeyHostname: "second"},
	}

	rows := Normalize(raw)
	require.Len(t, rows, 2)
	assert.Equal(t, "first", rows[0].Hostname)
	assert.Equal(t, "second", rows[1].Hostname)
}

func TestNormalize_PreservesOrderAndDuplicates(t *testing.T) {
	raw := decode(t, `[
		{"hostname":"b","mac":"02:00:00:00:00:01"},
		{"hostname":"a","mac":"02:00:00:00:00:01"},
		{"hostname":"b","mac":"02:00:00:00:00:01"}
	]`)

	rows := Normalize(raw)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"b", "a", "b"}, []string{rows[0].Hostname, rows[1].Hostname, rows[2].Hostname})
}

func TestNormalize_NullTreatedAsAbsent(t *testing.T) {
	raw := decode(t, `[{"hostname":null,"signal":null,"snr":null,"mimo":null}]`)

	row := Normalize(raw)[0]
	assert.Equal(t, "N/A", row.Hostname)
	assert.Equal(t, "N/A", row.MIMO)
	assert.Equal(t, "N/A dBm", row.Signal)
	assert.Equal(t, "N/A dB", row.SNR)
}

func TestNormalize_NonStringScalars(t *testing.T) {
	raw := decode(t, `[{"hostname":12,"os":true,"signal":-47.5,"snr":"30","mimo":{"streams":2}}]`)

	row := Normalize(raw)[0]
	assert.Equal(t, "12", row.Hostname)
	assert.Equal(t, "True", row.OS)
	assert.Equal(t, "-47.5 dBm", row.Signal)
	assert.Equal(t, "30 dB", row.SNR)
	assert.Equal(t, `{"streams":2}`, row.MIMO)
}

func TestNormalize_Empty(t *testing.T) {
	assert.Empty(t, Normalize(nil))
	assert.Empty(t, Normalize([]any{}))
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "abc", "abc"},
		{"number literal", json.Number("-47"), "-47"},
		{"float", float64(-47), "-47"},
		{"fraction", 12.25, "12.25"},
		{"int", 7, "7"},
		{"true", true, "True"},
		{"false", false, "False"},
		{"nil", nil, "N/A"},
		{"array", []any{"a", json.Number("1")}, `["a",1]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.in))
		})
	}
}

func TestAsRecord(t *testing.T) {
	_, ok := AsRecord(map[string]any(nil))
	assert.False(t, ok, "nil map is not a record")

	_, ok = AsRecord("x")
	assert.False(t, ok)

	rec, ok := AsRecord(map[string]any{"mac": "m"})
	require.True(t, ok)
	assert.Equal(t, "m", rec.String(KeyMAC, NotAvailable))
}

func TestFormatBool(t *testing.T) {
	assert.Equal(t, "True", FormatBool(true))
	assert.Equal(t, "False", FormatBool(false))
	assert.Equal(t, "True", FormatValue(true))
}
