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

	"github.com/urfave/cli/v3"

	"github.com/netops/wifiaudit/pkg/source"
)

func renderCmd() *cli.Command {
	return &cli.Command{
		Name:                  "render",
		EnableShellCompletion: true,
		Usage:                 "Re-render the artifacts from a saved raw JSON snapshot",
		Description: `Load a wifi_clients_raw_<timestamp>.json file written by a previous
snapshot, or any controller response body, and produce a fresh set of
artifacts without contacting the controller. The input may be a local path or
an http(s) URL.

# Examples

  wifiaudit render --input wifi_client_exports/wifi_clients_raw_20250301_120000.json
  wifiaudit render -f raw.json --title "Branch 12" --output ./reports`,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"f"},
				Usage:    "Path or URL of a raw JSON snapshot",
				Required: true,
				Sources:  env("INPUT"),
			},
		}, outputFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.ValidateOutput(); err != nil {
				return err
			}
			return runSnapshot(ctx, cmd, cfg, source.NewFileSource(cmd.String("input")))
		},
	}
}
