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

package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"

	apperrors "github.com/netops/wifiaudit/pkg/errors"
)

// ResultsKey is the object field that holds the client list in wrapped responses.
const ResultsKey = "results"

// Source produces the raw client elements of one snapshot.
type Source interface {
	// Fetch returns the decoded elements in the order the controller sent them.
	Fetch(ctx context.Context) ([]any, error)

	// String describes where the snapshot comes from, for logs and metadata.
	String() string
}

// Decode extracts the client list from a controller response body.
// Numbers are kept as json.Number so they round-trip verbatim.
func Decode(data []byte) ([]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var body any
	if err := dec.Decode(&body); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidResponse, "response body is not valid JSON", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidResponse, "response body has trailing data after the JSON value")
	}

	switch v := body.(type) {
	case []any:
		return v, nil
	case map[string]any:
		results, ok := v[ResultsKey]
		if !ok {
			return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidResponse,
				"response object has no results field", map[string]any{"keys": keysOf(v)})
		}
		list, ok := results.([]any)
		if !ok {
			return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidResponse,
				"response results field is not a list", map[string]any{"type": jsonType(results)})
		}
		return list, nil
	default:
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidResponse,
			"unexpected response structure", map[string]any{"type": jsonType(body)})
	}
}

func keysOf(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}
