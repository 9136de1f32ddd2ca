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

// Package serializer writes console documents and reads HTTP resources.
//
// Writer supports three formats:
//   - table: values implementing TableRenderer draw themselves; anything
//     else is written as YAML
//   - json: two-space indented JSON
//   - yaml: two-space indented YAML
//
// Usage:
//
//	w := serializer.NewWriter(serializer.FormatTable, os.Stdout)
//	if err := w.Serialize(ctx, doc); err != nil {
//		return err
//	}
//
// HttpReader performs the controller request:
//
//	r := serializer.NewHttpReader(
//		serializer.WithBearerToken(token),
//		serializer.WithInsecureSkipVerify(!verify),
//	)
//	body, err := r.ReadWithContext(ctx, url)
package serializer

import "context"

// Serializer writes a document somewhere.
type Serializer interface {
	Serialize(ctx context.Context, doc any) error
}

// TableRenderer is implemented by values that know how to draw themselves
// for the table format.
type TableRenderer interface {
	RenderTable() string
}
