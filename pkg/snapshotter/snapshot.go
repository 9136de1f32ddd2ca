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

package snapshotter

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	oras "oras.land/oras-go/v2"

	"github.com/netops/wifiaudit/pkg/clients"
	apperrors "github.com/netops/wifiaudit/pkg/errors"
	"github.com/netops/wifiaudit/pkg/exporter"
	"github.com/netops/wifiaudit/pkg/header"
	"github.com/netops/wifiaudit/pkg/oci"
	"github.com/netops/wifiaudit/pkg/report"
	"github.com/netops/wifiaudit/pkg/serializer"
	"github.com/netops/wifiaudit/pkg/source"
)

// PushConfig publishes exported artifacts to an OCI registry.
type PushConfig struct {
	Reference   *oci.Reference
	PlainHTTP   bool
	InsecureTLS bool
	// Target replaces the remote repository, mainly for tests.
	Target oras.Target
}

// Snapshotter runs one fetch, normalize, aggregate, render and export cycle.
// Stages run strictly in sequence and no state survives between runs.
type Snapshotter struct {
	// Version is recorded in the console document and artifact metadata.
	Version string

	// Source produces the raw client elements.
	Source source.Source

	// Exporter stores the three artifacts.
	Exporter exporter.Exporter

	// Title and ChartLibraryURL configure the HTML report.
	Title           string
	ChartLibraryURL string

	// Push is optional; it only applies to directory exports.
	Push *PushConfig

	// Serializer receives the console document. Nil skips console output.
	Serializer serializer.Serializer

	// Now and NewRunID are replaced in tests.
	Now      func() time.Time
	NewRunID func() string
}

// Run executes the pipeline. A fetch failure does not abort the run: the
// artifacts are written with zero clients and Result.FetchErr is set.
// Render, export and push failures abort and are returned.
func (s *Snapshotter) Run(ctx context.Context) (*Result, error) {
	if s.Source == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "snapshot source is required")
	}
	if s.Exporter == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "snapshot exporter is required")
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	newRunID := uuid.NewString
	if s.NewRunID != nil {
		newRunID = s.NewRunID
	}

	start := time.Now()
	defer func() {
		snapshotRunDuration.Observe(time.Since(start).Seconds())
	}()

	res := &Result{
		RunID:     newRunID(),
		Timestamp: now(),
		Source:    s.Source.String(),
	}
	log := slog.With("run_id", res.RunID)
	log.Debug("starting client snapshot", "source", res.Source, "exporter", s.Exporter.String())

	fetchStart := time.Now()
	raw, err := s.Source.Fetch(ctx)
	snapshotFetchDuration.Observe(time.Since(fetchStart).Seconds())
	if err != nil {
		log.Error("failed to fetch clients", "source", res.Source, "error", err)
		res.FetchErr = err
		raw = nil
	}
	res.Raw = raw

	res.Rows = clients.Normalize(raw)
	res.Stats = clients.Summarize(raw)
	recordClientMetrics(res)

	log.Info("clients normalized",
		"elements", len(raw),
		"clients", len(res.Rows),
		"skipped", len(raw)-len(res.Rows))
	if res.Empty() {
		log.Warn(EmptyMessage)
	}

	artifacts, err := s.render(res)
	if err != nil {
		snapshotRunTotal.WithLabelValues(statusRenderError).Inc()
		return res, err
	}

	if mr, ok := s.Exporter.(exporter.MetadataReceiver); ok {
		mr.SetMetadata(header.RunMetadata(res.RunID, res.Timestamp, s.Version, res.Source))
	}

	res.Paths, err = s.Exporter.Export(ctx, artifacts)
	if err != nil {
		snapshotRunTotal.WithLabelValues(statusExportError).Inc()
		return res, fmt.Errorf("failed to export artifacts to %s: %w", s.Exporter, err)
	}
	for _, p := range res.Paths {
		log.Info("artifact saved", "path", p)
	}

	if err := s.push(ctx, res, artifacts); err != nil {
		snapshotRunTotal.WithLabelValues(statusPushError).Inc()
		return res, err
	}

	if s.Serializer != nil {
		if err := s.Serializer.Serialize(ctx, NewClientSnapshot(res, s.Version)); err != nil {
			return res, fmt.Errorf("failed to serialize: %w", err)
		}
	}

	if res.FetchErr != nil {
		snapshotRunTotal.WithLabelValues(statusFetchError).Inc()
	} else {
		snapshotRunTotal.WithLabelValues(statusSuccess).Inc()
	}
	return res, nil
}

func (s *Snapshotter) render(res *Result) ([]exporter.Artifact, error) {
	csvData, err := report.RenderCSV(res.Rows)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to render csv", err)
	}

	rawData, err := report.RenderJSON(res.Raw)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to render raw json", err)
	}

	htmlData, err := report.RenderHTML(res.Rows, res.Stats, report.Meta{
		Title:           s.Title,
		ChartLibraryURL: s.ChartLibraryURL,
		RunID:           res.RunID,
		GeneratedAt:     res.Timestamp,
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to render html report", err)
	}

	artifacts := exporter.Names(res.Timestamp).Artifacts(csvData, rawData, htmlData)
	for _, a := range artifacts {
		snapshotArtifactBytes.WithLabelValues(a.ContentType).Set(float64(len(a.Data)))
	}
	return artifacts, nil
}

func (s *Snapshotter) push(ctx context.Context, res *Result, artifacts []exporter.Artifact) error {
	if s.Push == nil || s.Push.Reference == nil {
		return nil
	}
	if !exporter.IsDir(s.Exporter) {
		slog.Warn("skipping OCI push, artifacts were not written to a directory", "exporter", s.Exporter.String())
		return nil
	}

	ref := s.Push.Reference
	if ref.Tag == "" {
		ref = ref.WithTag(oci.TagFromTimestamp(exporter.Timestamp(res.Timestamp)))
	}

	files := make([]oci.File, len(res.Paths))
	for i, p := range res.Paths {
		files[i] = oci.File{Path: p, MediaType: artifacts[i].ContentType}
	}

	pushed, err := oci.Push(ctx, oci.PushOptions{
		Reference: ref,
		Files:     files,
		Annotations: map[string]string{
			oci.AnnotationRunID:     res.RunID,
			oci.AnnotationCount:     strconv.Itoa(len(res.Rows)),
			ociv1.AnnotationCreated: res.Timestamp.UTC().Format(time.RFC3339),
			ociv1.AnnotationVersion: s.Version,
			ociv1.AnnotationTitle:   header.KindClientSnapshot.String(),
		},
		PlainHTTP:   s.Push.PlainHTTP,
		InsecureTLS: s.Push.InsecureTLS,
		Target:      s.Push.Target,
	})
	if err != nil {
		return fmt.Errorf("failed to push artifacts: %w", err)
	}

	slog.Info("artifacts pushed", "reference", pushed.Reference, "digest", pushed.Digest)
	res.Push = pushed
	return nil
}

func recordClientMetrics(res *Result) {
	snapshotClients.Set(float64(len(res.Rows)))
	snapshotCapability.Reset()
	for _, st := range res.Stats {
		for _, c := range st.Counts {
			snapshotCapability.WithLabelValues(st.Name, c.Value).Set(float64(c.Count))
		}
	}
}
