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
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/netops/wifiaudit/pkg/config"
	"github.com/netops/wifiaudit/pkg/defaults"
	"github.com/netops/wifiaudit/pkg/serializer"
)

const envPrefix = "WIFIAUDIT_"

func env(key string) cli.ValueSourceChain {
	return cli.EnvVars(envPrefix + key)
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to a YAML config file",
		Sources: env("CONFIG"),
	}
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Export directory, or ConfigMap URI (cm://namespace/name)",
			Value:   defaults.ExportDir,
			Sources: env("OUTPUT"),
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"t"},
			Usage:   fmt.Sprintf("Console format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
			Value:   string(serializer.FormatTable),
			Sources: env("FORMAT"),
		},
		&cli.StringFlag{
			Name:    "kubeconfig",
			Aliases: []string{"k"},
			Usage:   "Path to kubeconfig for ConfigMap output (default: KUBECONFIG or ~/.kube/config)",
			Sources: env("KUBECONFIG"),
		},
		&cli.StringFlag{
			Name:    "title",
			Usage:   "HTML report title",
			Value:   defaults.ReportTitle,
			Sources: env("TITLE"),
		},
		&cli.StringFlag{
			Name:    "chart-url",
			Usage:   "Charting library script URL embedded in the HTML report",
			Value:   defaults.ChartLibraryURL,
			Sources: env("CHART_URL"),
		},
		&cli.StringFlag{
			Name:    "push",
			Usage:   "Push the exported files to an OCI registry (registry/repository[:tag]); tag defaults to the run timestamp",
			Sources: env("PUSH"),
		},
		&cli.BoolFlag{
			Name:    "plain-http",
			Usage:   "Use HTTP for the OCI registry",
			Sources: env("PLAIN_HTTP"),
		},
		&cli.BoolFlag{
			Name:    "insecure-tls",
			Usage:   "Skip OCI registry certificate verification",
			Sources: env("INSECURE_TLS"),
		},
		&cli.StringFlag{
			Name:    "metrics-file",
			Usage:   "Write run metrics in Prometheus text format to this file",
			Sources: env("METRICS_FILE"),
		},
		&cli.BoolFlag{
			Name:  "no-progress",
			Usage: "Disable the progress spinner",
		},
	}
}

func controllerFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "endpoint",
			Aliases: []string{"e"},
			Usage:   "Controller base URL, e.g. https://192.168.10.254:8443",
			Sources: env("ENDPOINT"),
		},
		&cli.StringFlag{
			Name:    "token",
			Usage:   "REST API token sent as a bearer token",
			Sources: env("TOKEN"),
		},
		&cli.StringFlag{
			Name:    "token-file",
			Usage:   "File holding the REST API token",
			Sources: env("TOKEN_FILE"),
		},
		&cli.BoolFlag{
			Name:    "verify-tls",
			Usage:   "Verify the controller certificate",
			Sources: env("VERIFY_TLS"),
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Usage:   "Controller request timeout",
			Value:   defaults.HTTPClientTimeout,
			Sources: env("TIMEOUT"),
		},
		&cli.StringFlag{
			Name:    "api-path",
			Usage:   "Monitoring API path",
			Value:   defaults.ClientsPath,
			Sources: env("API_PATH"),
		},
	}
}

// loadConfig reads --config and overlays every flag the user set explicitly,
// from the command line or the environment.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	setString(cmd, "endpoint", &cfg.Controller.Endpoint)
	setString(cmd, "token", &cfg.Controller.Token)
	setString(cmd, "token-file", &cfg.Controller.TokenFile)
	setString(cmd, "api-path", &cfg.Controller.Path)
	if cmd.IsSet("verify-tls") {
		cfg.Controller.VerifyTLS = cmd.Bool("verify-tls")
	}
	if cmd.IsSet("timeout") {
		cfg.Controller.Timeout = cmd.Duration("timeout")
	}

	setString(cmd, "output", &cfg.Output.Target)
	setString(cmd, "format", &cfg.Output.Format)
	setString(cmd, "title", &cfg.Output.Title)
	setString(cmd, "chart-url", &cfg.Output.ChartLibraryURL)
	setString(cmd, "push", &cfg.Push.Reference)
	if cmd.IsSet("plain-http") {
		cfg.Push.PlainHTTP = cmd.Bool("plain-http")
	}
	if cmd.IsSet("insecure-tls") {
		cfg.Push.InsecureTLS = cmd.Bool("insecure-tls")
	}
	setString(cmd, "kubeconfig", &cfg.Kubeconfig)
	setString(cmd, "metrics-file", &cfg.MetricsFile)

	cfg.ApplyDefaults()
	return cfg, nil
}

func setString(cmd *cli.Command, flag string, dst *string) {
	if cmd.IsSet(flag) {
		*dst = cmd.String(flag)
	}
}

// timeoutOrDefault keeps a zero duration from disabling the request timeout.
func timeoutOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return defaults.HTTPClientTimeout
	}
	return d
}
