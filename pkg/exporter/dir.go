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
	"log/slog"
	"os"
	"path/filepath"

	apperrors "github.com/netops/wifiaudit/pkg/errors"
)

// File modes of the export directory and its artifacts.
const (
	DirMode  os.FileMode = 0o755
	FileMode os.FileMode = 0o644
)

// DirExporter writes artifacts as files under Dir.
type DirExporter struct {
	Dir string
}

// NewDirExporter returns an exporter rooted at dir.
func NewDirExporter(dir string) *DirExporter {
	return &DirExporter{Dir: dir}
}

// String implements Exporter.
func (e *DirExporter) String() string {
	return e.Dir
}

// Export creates Dir when missing and writes every artifact into it.
func (e *DirExporter) Export(ctx context.Context, artifacts []Artifact) ([]string, error) {
	if e.Dir == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "export directory is required")
	}

	if err := os.MkdirAll(e.Dir, DirMode); err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInternal,
			"failed to create export directory", err, map[string]any{"dir": e.Dir})
	}

	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		if err := ctx.Err(); err != nil {
			return paths, apperrors.Wrap(apperrors.ErrCodeInternal, "export canceled", err)
		}

		path := filepath.Join(e.Dir, a.Name)
		if err := os.WriteFile(path, a.Data, FileMode); err != nil {
			return paths, apperrors.WrapWithContext(apperrors.ErrCodeInternal,
				"failed to write artifact", err, map[string]any{"artifact": a.Name, "path": path})
		}

		slog.Debug("artifact written", "path", path, "bytes", len(a.Data), "type", a.ContentType)
		paths = append(paths, path)
	}

	return paths, nil
}
