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
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	apperrors "github.com/netops/wifiaudit/pkg/errors"
	"github.com/netops/wifiaudit/pkg/serializer"
)

// FileSource replays a raw JSON artifact from a local path or an http(s) URL.
type FileSource struct {
	Path string

	reader *serializer.HttpReader
}

// NewFileSource returns a source reading path. Remote paths are fetched with
// the default HTTP reader settings.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: strings.TrimSpace(path)}
}

// String implements Source.
func (s *FileSource) String() string {
	return s.Path
}

// Fetch reads and decodes the artifact.
func (s *FileSource) Fetch(ctx context.Context) ([]any, error) {
	if s.Path == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "input path is required")
	}

	var (
		data []byte
		err  error
	)
	if isRemote(s.Path) {
		if s.reader == nil {
			s.reader = serializer.NewHttpReader()
		}
		data, err = s.reader.ReadWithContext(ctx, s.Path)
		if err != nil {
			return nil, classify(s.Path, err)
		}
	} else {
		data, err = os.ReadFile(s.Path)
		if err != nil {
			code := apperrors.ErrCodeInternal
			if os.IsNotExist(err) {
				code = apperrors.ErrCodeNotFound
			}
			return nil, apperrors.WrapWithContext(code, "failed to read input", err, map[string]any{"path": s.Path})
		}
	}

	raw, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.Path, err)
	}

	slog.Debug("loaded snapshot from file", "path", s.Path, "elements", len(raw))
	return raw, nil
}

func isRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
