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
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/netops/wifiaudit/pkg/defaults"
	apperrors "github.com/netops/wifiaudit/pkg/errors"
	"github.com/netops/wifiaudit/pkg/serializer"
)

// HTTPOptions configures the controller request.
type HTTPOptions struct {
	// Endpoint is the controller base URL, e.g. https://192.168.10.254:8443.
	Endpoint string
	// Path is the monitoring API path. Defaults to defaults.ClientsPath.
	Path string
	// Query is the raw query string. Defaults to defaults.ClientsQuery.
	Query string
	// Token is sent as a bearer token when set.
	Token string
	// VerifyTLS enables certificate verification.
	VerifyTLS bool
	// Timeout bounds the whole request. Defaults to defaults.HTTPClientTimeout.
	Timeout time.Duration
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Client replaces the HTTP client, mainly for tests.
	Client *http.Client
}

// HTTPSource fetches the client list from the controller monitoring API.
type HTTPSource struct {
	url     string
	timeout time.Duration
	reader  *serializer.HttpReader
}

// NewHTTPSource validates the options and builds the request URL.
func NewHTTPSource(opts HTTPOptions) (*HTTPSource, error) {
	u, err := buildURL(opts)
	if err != nil {
		return nil, err
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaults.HTTPClientTimeout
	}

	readerOpts := []serializer.HttpReaderOption{
		serializer.WithTotalTimeout(timeout),
		serializer.WithInsecureSkipVerify(!opts.VerifyTLS),
		serializer.WithBearerToken(opts.Token),
	}
	if opts.UserAgent != "" {
		readerOpts = append(readerOpts, serializer.WithUserAgent(opts.UserAgent))
	}
	if opts.Client != nil {
		readerOpts = append(readerOpts, serializer.WithClient(opts.Client))
	}

	return &HTTPSource{
		url:     u,
		timeout: timeout,
		reader:  serializer.NewHttpReader(readerOpts...),
	}, nil
}

func buildURL(opts HTTPOptions) (string, error) {
	endpoint := strings.TrimSpace(opts.Endpoint)
	if endpoint == "" {
		return "", apperrors.New(apperrors.ErrCodeInvalidRequest, "controller endpoint is required")
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid controller endpoint", err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return "", apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"controller endpoint must be an http(s) URL", map[string]any{"endpoint": endpoint})
	}
	if u.Host == "" {
		return "", apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"controller endpoint has no host", map[string]any{"endpoint": endpoint})
	}

	path := opts.Path
	if path == "" {
		path = defaults.ClientsPath
	}
	query := opts.Query
	if query == "" {
		query = defaults.ClientsQuery
	}

	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	u.RawQuery = query
	return u.String(), nil
}

// URL returns the full request URL.
func (s *HTTPSource) URL() string {
	return s.url
}

// String implements Source.
func (s *HTTPSource) String() string {
	return s.url
}

// Fetch performs the single GET against the monitoring API.
func (s *HTTPSource) Fetch(ctx context.Context) ([]any, error) {
	slog.Debug("requesting clients", "url", s.url, "timeout", s.timeout)

	body, err := s.reader.ReadWithContext(ctx, s.url)
	if err != nil {
		return nil, classify(s.url, err)
	}

	raw, err := Decode(body)
	if err != nil {
		return nil, fmt.Errorf("decoding response from %s: %w", s.url, err)
	}

	slog.Debug("decoded controller response", "elements", len(raw), "bytes", len(body))
	return raw, nil
}

func classify(u string, err error) error {
	ctx := map[string]any{"url": u}

	var se *serializer.StatusError
	if errors.As(err, &se) {
		ctx["status"] = se.StatusCode
		code := apperrors.ErrCodeUnavailable
		switch se.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			code = apperrors.ErrCodeUnauthorized
		case http.StatusNotFound:
			code = apperrors.ErrCodeNotFound
		}
		return apperrors.WrapWithContext(code, "controller returned non-success status", err, ctx)
	}

	if isTimeout(err) {
		return apperrors.WrapWithContext(apperrors.ErrCodeTimeout, "controller request timed out", err, ctx)
	}

	return apperrors.WrapWithContext(apperrors.ErrCodeUnavailable, "controller request failed", err, ctx)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
