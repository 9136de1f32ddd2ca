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
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	oras "oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content/file"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"
	"oras.land/oras-go/v2/registry/remote/credentials"

	"github.com/netops/wifiaudit/pkg/defaults"
	apperrors "github.com/netops/wifiaudit/pkg/errors"
)

// ArtifactType identifies a pushed client snapshot.
const ArtifactType = "application/vnd.wifiaudit.snapshot"

// Annotation keys added to the manifest.
const (
	AnnotationRunID = "io.netops.wifiaudit.run-id"
	AnnotationCount = "io.netops.wifiaudit.client-count"
)

// File is one local file to push as a layer.
type File struct {
	Path      string
	MediaType string
}

// PushOptions configures a push.
type PushOptions struct {
	Reference *Reference
	Files     []File
	// Annotations are set on the manifest.
	Annotations map[string]string
	// PlainHTTP talks to the registry over HTTP.
	PlainHTTP bool
	// InsecureTLS skips registry certificate verification.
	InsecureTLS bool
	// Target replaces the remote repository, mainly for tests.
	Target oras.Target
}

// PushResult describes a pushed artifact.
type PushResult struct {
	Digest    string
	Reference string
}

// Push packs the files into one OCI 1.1 artifact manifest and copies it to
// the registry. Each file becomes a layer titled with its base name.
func Push(ctx context.Context, opts PushOptions) (*PushResult, error) {
	if opts.Reference == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "OCI reference is required")
	}
	if opts.Reference.Tag == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "tag is required to push OCI artifact")
	}
	if len(opts.Files) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "no files to push")
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.OCIPushTimeout)
	defer cancel()

	root, err := filepath.Abs(filepath.Dir(opts.Files[0].Path))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to resolve artifact directory", err)
	}

	fs, err := file.New(root)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to create file store", err)
	}
	defer func() { _ = fs.Close() }()

	layers := make([]ociv1.Descriptor, 0, len(opts.Files))
	for _, f := range opts.Files {
		abs, absErr := filepath.Abs(f.Path)
		if absErr != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to resolve artifact path", absErr)
		}
		desc, addErr := fs.Add(ctx, filepath.Base(abs), f.MediaType, abs)
		if addErr != nil {
			return nil, apperrors.WrapWithContext(apperrors.ErrCodeInternal,
				"failed to add artifact to store", addErr, map[string]any{"path": abs})
		}
		layers = append(layers, desc)
	}

	manifest, err := oras.PackManifest(ctx, fs, oras.PackManifestVersion1_1, ArtifactType, oras.PackManifestOptions{
		Layers:              layers,
		ManifestAnnotations: opts.Annotations,
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to pack manifest", err)
	}

	tag := opts.Reference.Tag
	if err := fs.Tag(ctx, manifest, tag); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to tag manifest in local store", err)
	}

	dst := opts.Target
	if dst == nil {
		repo, repoErr := remote.NewRepository(opts.Reference.Repo())
		if repoErr != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "failed to initialize remote repository", repoErr)
		}
		repo.PlainHTTP = opts.PlainHTTP
		repo.Client = createAuthClient(opts.PlainHTTP, opts.InsecureTLS)
		dst = repo
	}

	slog.Info("pushing snapshot artifact",
		"reference", opts.Reference.ImageReference(),
		"layers", len(layers))

	desc, err := oras.Copy(ctx, fs, tag, dst, tag, oras.DefaultCopyOptions)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeUnavailable,
			"failed to push artifact to registry", err, map[string]any{"reference": opts.Reference.ImageReference()})
	}

	return &PushResult{
		Digest:    desc.Digest.String(),
		Reference: opts.Reference.ImageReference(),
	}, nil
}

// createAuthClient returns a registry client that reads Docker credentials
// and optionally skips TLS verification.
func createAuthClient(plainHTTP, insecureTLS bool) *auth.Client {
	credStore, err := credentials.NewStoreFromDocker(credentials.StoreOptions{})
	if err != nil {
		slog.Debug("docker credentials unavailable", "error", err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !plainHTTP && insecureTLS {
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{} //nolint:gosec
		}
		transport.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec
	}

	c := &auth.Client{
		Client: &http.Client{Transport: transport},
		Cache:  auth.NewCache(),
	}
	if credStore != nil {
		c.Credential = credentials.Credential(credStore)
	}
	return c
}

// Describe is a short form of the result for console output.
func (r *PushResult) Describe() string {
	return fmt.Sprintf("%s@%s", r.Reference, r.Digest)
}
