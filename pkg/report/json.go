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

package report

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSONIndent is the indentation of the raw artifact.
const JSONIndent = "  "

// RenderJSON renders the raw controller elements verbatim. Elements that are
// not client objects are kept. A nil slice renders as an empty list.
func RenderJSON(raw []any) ([]byte, error) {
	if raw == nil {
		raw = []any{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", JSONIndent)
	if err := enc.Encode(raw); err != nil {
		return nil, fmt.Errorf("failed to encode raw records: %w", err)
	}
	return buf.Bytes(), nil
}
