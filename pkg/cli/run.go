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

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/netops/wifiaudit/pkg/config"
	"github.com/netops/wifiaudit/pkg/exporter"
	"github.com/netops/wifiaudit/pkg/oci"
	"github.com/netops/wifiaudit/pkg/serializer"
	"github.com/netops/wifiaudit/pkg/snapshotter"
	"github.com/netops/wifiaudit/pkg/source"
)

// runSnapshot wires the configured source into the pipeline and maps the
// result onto the command outcome.
func runSnapshot(ctx context.Context, cmd *cli.Command, cfg *config.Config, src source.Source) error {
	exp, err := exporter.New(cfg.Output.Target, cfg.Kubeconfig)
	if err != nil {
		return err
	}
	if cm, ok := exp.(*exporter.ConfigMapExporter); ok {
		cm.Labels = map[string]string{"app.kubernetes.io/version": version}
	}

	var push *snapshotter.PushConfig
	if cfg.Push.Reference != "" {
		ref, refErr := oci.ParseReference(cfg.Push.Reference)
		if refErr != nil {
			return refErr
		}
		push = &snapshotter.PushConfig{
			Reference:   ref,
			PlainHTTP:   cfg.Push.PlainHTTP,
			InsecureTLS: cfg.Push.InsecureTLS,
		}
	}

	if showProgress(cmd) {
		src = &progressSource{Source: src, out: os.Stderr}
	}

	s := &snapshotter.Snapshotter{
		Version:         version,
		Source:          src,
		Exporter:        exp,
		Title:           cfg.Output.Title,
		ChartLibraryURL: cfg.Output.ChartLibraryURL,
		Push:            push,
		Serializer:      serializer.NewWriter(serializer.Format(cfg.Output.Format), cmd.Root().Writer),
	}

	res, err := s.Run(ctx)

	if cfg.MetricsFile != "" {
		if mErr := snapshotter.WriteMetrics(cfg.MetricsFile); mErr != nil {
			slog.Warn("failed to write metrics file", "path", cfg.MetricsFile, "error", mErr)
		}
	}

	if err != nil {
		return err
	}
	if res.Empty() && serializer.Format(cfg.Output.Format) != serializer.FormatTable {
		// the table document already carries the notice
		fmt.Fprintln(errWriter(cmd), snapshotter.EmptyMessage)
	}
	if res.FetchErr != nil {
		return fmt.Errorf("%w from %s: %w", errFetchFailed, res.Source, res.FetchErr)
	}
	return nil
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

func showProgress(cmd *cli.Command) bool {
	if cmd.Bool("no-progress") || cmd.Bool("debug") {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// progressSource shows a spinner on the terminal while the fetch is running.
type progressSource struct {
	source.Source
	out io.Writer
}

func (p *progressSource) Fetch(ctx context.Context) ([]any, error) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(p.out))
	s.Suffix = " Fetching clients from " + p.Source.String()
	s.Start()
	defer s.Stop()

	return p.Source.Fetch(ctx)
}
