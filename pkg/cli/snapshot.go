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
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/netops/wifiaudit/pkg/serializer"
	"github.com/netops/wifiaudit/pkg/source"
)

func snapshotCmd() *cli.Command {
	return &cli.Command{
		Name:                  "snapshot",
		EnableShellCompletion: true,
		Usage:                 "Capture the wireless clients currently associated with the controller",
		Description: `Query the controller monitoring API once, normalize every client into the
reporting schema and write three artifacts sharing one timestamp:

  wifi_clients_<YYYYMMDD_HHMMSS>.csv       one row per client
  wifi_clients_raw_<YYYYMMDD_HHMMSS>.json  the controller records, unmodified
  wifi_clients_<YYYYMMDD_HHMMSS>.html      table plus one donut chart per capability

If the controller cannot be reached or answers with an unexpected body, the
artifacts are still written with zero clients and the command exits with
status 2.

# Examples

  wifiaudit snapshot --endpoint https://192.168.10.254:8443 --token-file ~/.fgt-token

Export to a ConfigMap instead of a directory:
  wifiaudit snapshot -e https://fw:8443 --output cm://monitoring/wifi-clients

Publish the files to a registry after export:
  wifiaudit snapshot -e https://fw:8443 --push ghcr.io/netops/wifi-snapshots`,
		Flags: append(controllerFlags(), outputFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			token, err := cfg.ResolveToken()
			if err != nil {
				return err
			}
			if token == "" {
				slog.Warn("no API token configured, the controller will likely reject the request")
			}

			src, err := source.NewHTTPSource(source.HTTPOptions{
				Endpoint:  cfg.Controller.Endpoint,
				Path:      cfg.Controller.Path,
				Query:     cfg.Controller.Query,
				Token:     token,
				VerifyTLS: cfg.Controller.VerifyTLS,
				Timeout:   timeoutOrDefault(cfg.Controller.Timeout),
				UserAgent: serializer.HttpReaderUserAgent,
			})
			if err != nil {
				return err
			}

			slog.Debug("snapshot configuration", "config", cfg.Redacted())
			return runSnapshot(ctx, cmd, cfg, src)
		},
	}
}
