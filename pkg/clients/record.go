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
	"fmt"
	"strconv"
)

// Source keys of the controller client object.
const (
	KeyHostname  = "hostname"
	KeyMAC       = "mac"
	KeyOS        = "os"
	KeyDot11k    = "11k_capable"
	KeyDot11v    = "11v_capable"
	KeyDot11r    = "11r_capable"
	KeyMIMO      = "mimo"
	KeyRadioType = "radio_type"
	KeySignal    = "signal"
	KeySNR       = "snr"
)

// Missing-value markers.
const (
	// NotAvailable is the display default for absent string fields.
	NotAvailable = "N/A"
	// Unknown is the statistics default for absent MIMO and radio values.
	Unknown = "Unknown"
)

// Record is one raw client object as delivered by the controller.
// Its schema is not guaranteed; use the accessors to read it.
type Record map[string]any

// AsRecord reports whether v is a JSON object and returns it as a Record.
func AsRecord(v any) (Record, bool) {
	switch m := v.(type) {
	case Record:
		return m, m != nil
	case map[string]any:
		return Record(m), m != nil
	default:
		return nil, false
	}
}

// Lookup returns the value stored under key. JSON null counts as absent.
func (r Record) Lookup(key string) (any, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// String returns the value under key rendered as text, or def when absent.
func (r Record) String(key, def string) string {
	v, ok := r.Lookup(key)
	if !ok {
		return def
	}
	return FormatValue(v)
}

// Bool returns the value under key when it is a JSON boolean, false otherwise.
func (r Record) Bool(key string) bool {
	v, ok := r.Lookup(key)
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

var boolLiterals = map[bool]string{true: "True", false: "False"}

// FormatBool renders b as "True" or "False".
func FormatBool(b bool) string {
	return boolLiterals[b]
}

// FormatValue renders a decoded JSON value as report text. Numbers keep
// their original literal when decoded with UseNumber.
func FormatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case nil:
		return NotAvailable
	case map[string]any, []any, Record:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	default:
		return fmt.Sprint(t)
	}
}
