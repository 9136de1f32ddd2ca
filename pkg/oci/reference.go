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

package oci

import (
	"fmt"
	"strings"

	"github.com/distribution/reference"

	apperrors "github.com/netops/wifiaudit/pkg/errors"
)

// URIScheme optionally prefixes a push target: oci://registry/repository:tag.
const URIScheme = "oci://"

// Reference is a parsed push target.
type Reference struct {
	// Registry is the registry host, e.g. ghcr.io or localhost:5000.
	Registry string
	// Repository is the repository path, e.g. netops/wifi-snapshots.
	Repository string
	// Tag is empty when the target named none; callers apply a default.
	Tag string
}

// ParseReference parses registry/repository[:tag], with or without the
// oci:// scheme. Digest references are rejected since a push needs a tag.
func ParseReference(target string) (*Reference, error) {
	target = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(target), URIScheme))
	if target == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "OCI reference is required")
	}

	ref, err := reference.ParseNormalizedNamed(target)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid OCI reference", err, map[string]any{"reference": target})
	}
	if _, ok := ref.(reference.Digested); ok {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"OCI reference must use a tag, not a digest", map[string]any{"reference": target})
	}

	r := &Reference{
		Registry:   reference.Domain(ref),
		Repository: reference.Path(ref),
	}
	if tagged, ok := ref.(reference.Tagged); ok {
		r.Tag = tagged.Tag()
	}
	return r, nil
}

// WithTag returns a copy with tag set.
func (r *Reference) WithTag(tag string) *Reference {
	c := *r
	c.Tag = tag
	return &c
}

// Repo returns registry/repository.
func (r *Reference) Repo() string {
	return fmt.Sprintf("%s/%s", r.Registry, r.Repository)
}

// ImageReference returns registry/repository[:tag] without the scheme.
func (r *Reference) ImageReference() string {
	if r.Tag == "" {
		return r.Repo()
	}
	return fmt.Sprintf("%s:%s", r.Repo(), r.Tag)
}

// String returns the reference with the oci:// scheme.
func (r *Reference) String() string {
	return URIScheme + r.ImageReference()
}

// TagFromTimestamp converts a run stamp into a valid tag. Run stamps are
// already tag-safe; anything else is reduced to [A-Za-z0-9_.-].
func TagFromTimestamp(stamp string) string {
	var b strings.Builder
	for _, c := range stamp {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == '.', c == '-':
			b.WriteRune(c)
		default:
			b.WriteRune('_')
		}
	}
	tag := b.String()
	if len(tag) > 128 {
		tag = tag[:128]
	}
	return tag
}
