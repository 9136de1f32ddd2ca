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

// Package config holds the settings of one snapshot run.
//
// Values come from an optional YAML file, then command-line flags and
// WIFIAUDIT_* environment variables override them. The resulting Config is
// treated as immutable once validated.
//
//	controller:
//	  endpoint: https://192.168.10.254:8443
//	  token_file: /etc/wifiaudit/token
//	  verify_tls: false
//	  timeout: 30s
//	output:
//	  target: ./wifi_client_exports
//	  title: Fortinet WiFi Client Capabilities
//	push:
//	  reference: ghcr.io/netops/wifi-snapshots
package config

import (
	"bytes"
	"errors"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/netops/wifiaudit/pkg/defaults"
	apperrors "github.com/netops/wifiaudit/pkg/errors"
	"github.com/netops/wifiaudit/pkg/serializer"
)

// Config is the full run configuration.
type Config struct {
	Controller ControllerConfig `yaml:"controller"`
	Output     OutputConfig     `yaml:"output"`
	Push       PushConfig       `yaml:"push"`

	// Kubeconfig is used for cm:// output targets.
	Kubeconfig string `yaml:"kubeconfig"`
	// MetricsFile receives run metrics in Prometheus text format.
	MetricsFile string `yaml:"metrics_file"`
}

// ControllerConfig addresses the controller monitoring API.
type ControllerConfig struct {
	Endpoint  string        `yaml:"endpoint"`
	Path      string        `yaml:"path"`
	Query     string        `yaml:"query"`
	Token     string        `yaml:"token"`
	TokenFile string        `yaml:"token_file"`
	VerifyTLS bool          `yaml:"verify_tls"`
	Timeout   time.Duration `yaml:"timeout"`
}

// OutputConfig controls rendering and export.
type OutputConfig struct {
	// Target is a directory or a cm://namespace/name URI.
	Target          string `yaml:"target"`
	Format          string `yaml:"format"`
	Title           string `yaml:"title"`
	ChartLibraryURL string `yaml:"chart_library_url"`
}

// PushConfig optionally publishes the artifacts to an OCI registry.
type PushConfig struct {
	Reference   string `yaml:"reference"`
	PlainHTTP   bool   `yaml:"plain_http"`
	InsecureTLS bool   `yaml:"insecure_tls"`
}

// Default returns a config with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// Load reads a YAML file and applies defaults. An empty path returns Default.
// Validation is left to the caller since flags may still override values.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		code := apperrors.ErrCodeInternal
		if os.IsNotExist(err) {
			code = apperrors.ErrCodeNotFound
		}
		return nil, apperrors.WrapWithContext(code, "failed to read config file", err, map[string]any{"path": path})
	}

	cfg, err := Parse(raw)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"failed to parse config file", err, map[string]any{"path": path})
	}
	return cfg, nil
}

// Parse decodes YAML and applies defaults. Unknown keys are rejected.
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills every unset field.
func (c *Config) ApplyDefaults() {
	if c.Controller.Path == "" {
		c.Controller.Path = defaults.ClientsPath
	}
	if c.Controller.Query == "" {
		c.Controller.Query = defaults.ClientsQuery
	}
	if c.Controller.Timeout == 0 {
		c.Controller.Timeout = defaults.HTTPClientTimeout
	}
	if c.Output.Target == "" {
		c.Output.Target = defaults.ExportDir
	}
	if c.Output.Format == "" {
		c.Output.Format = string(serializer.FormatTable)
	}
	if c.Output.Title == "" {
		c.Output.Title = defaults.ReportTitle
	}
	if c.Output.ChartLibraryURL == "" {
		c.Output.ChartLibraryURL = defaults.ChartLibraryURL
	}
}

// ResolveToken returns the API token, reading TokenFile when Token is empty.
func (c *Config) ResolveToken() (string, error) {
	if c.Controller.Token != "" || c.Controller.TokenFile == "" {
		return c.Controller.Token, nil
	}
	b, err := os.ReadFile(c.Controller.TokenFile)
	if err != nil {
		return "", apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"failed to read token file", err, map[string]any{"path": c.Controller.TokenFile})
	}
	return strings.TrimSpace(string(b)), nil
}

// Validate checks the whole config for a snapshot run.
func (c *Config) Validate() error {
	if err := c.validateController(); err != nil {
		return err
	}
	return c.ValidateOutput()
}

// ValidateOutput checks only the rendering and export settings, which is
// all a re-render of a saved snapshot needs.
func (c *Config) ValidateOutput() error {
	f, err := serializer.ParseFormat(c.Output.Format)
	if err != nil {
		return apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid output.format", err, map[string]any{"format": c.Output.Format})
	}
	c.Output.Format = string(f)
	if strings.TrimSpace(c.Output.Target) == "" {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "output.target is required")
	}
	u, err := url.Parse(c.Output.ChartLibraryURL)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"output.chart_library_url must be an http(s) URL", map[string]any{"url": c.Output.ChartLibraryURL})
	}
	if c.Push.PlainHTTP && c.Push.InsecureTLS {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "push.plain_http and push.insecure_tls are mutually exclusive")
	}
	return nil
}

func (c *Config) validateController() error {
	if strings.TrimSpace(c.Controller.Endpoint) == "" {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "controller.endpoint is required")
	}
	if c.Controller.Timeout < 0 {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"controller.timeout must be positive", map[string]any{"timeout": c.Controller.Timeout.String()})
	}
	if c.Controller.Token != "" && c.Controller.TokenFile != "" {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "controller.token and controller.token_file are mutually exclusive")
	}
	return nil
}

// Redacted returns a copy safe to log.
func (c Config) Redacted() Config {
	if c.Controller.Token != "" {
		c.Controller.Token = "***"
	}
	return c
}
