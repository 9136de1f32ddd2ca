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
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netops/wifiaudit/pkg/defaults"
	apperrors "github.com/netops/wifiaudit/pkg/errors"
)

func TestNewHTTPSource_URL(t *testing.T) {
	tests := []struct {
		name    string
		opts    HTTPOptions
		want    string
		wantErr bool
	}{
		{
			name: "defaults",
			opts: HTTPOptions{Endpoint: "https://192.168.10.254:8443"},
			want: "https://192.168.10.254:8443" + defaults.ClientsPath + "?" + defaults.ClientsQuery,
		},
		{
			name: "trailing slash",
			opts: HTTPOptions{Endpoint: "https://fw.example.com/"},
			want: "https://fw.example.com/api/v2/monitor/wifi/client?with_stats=true",
		},
		{
			name: "custom path and query",
			opts: HTTPOptions{Endpoint: "http://fw", Path: "custom/clients", Query: "vdom=root"},
			want: "http://fw/custom/clients?vdom=root",
		},
		{name: "empty", opts: HTTPOptions{}, wantErr: true},
		{name: "no scheme", opts: HTTPOptions{Endpoint: "192.168.10.254"}, wantErr: true},
		{name: "bad scheme", opts: HTTPOptions{Endpoint: "ftp://fw"}, wantErr: true},
		{name: "no host", opts: HTTPOptions{Endpoint: "https://"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := NewHTTPSource(tt.opts)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, apperrors.ErrCodeInvalidRequest, apperrors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, src.URL())
			assert.Equal(t, tt.want, src.String())
		})
	}
}

func TestHTTPSource_Fetch(t *testing.T) {
	var gotAuth, gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"results":[{"hostname":"printer1","mac":"aa:bb"},{"hostname":"laptop"}]}`)
	}))
	defer server.Close()

	src, err := NewHTTPSource(HTTPOptions{Endpoint: server.URL, Token: "secret"})
	require.NoError(t, err)

	raw, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, raw, 2)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, defaults.ClientsPath, gotPath)
	assert.Equal(t, defaults.ClientsQuery, gotQuery)
}

func TestHTTPSource_FetchTLSWithoutVerification(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[{"hostname":"a"}]`)
	}))
	defer server.Close()

	src, err := NewHTTPSource(HTTPOptions{Endpoint: server.URL, VerifyTLS: false})
	require.NoError(t, err)

	raw, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, raw, 1)
}

func TestHTTPSource_FetchTLSWithVerificationFails(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	src, err := NewHTTPSource(HTTPOptions{Endpoint: server.URL, VerifyTLS: true})
	require.NoError(t, err)

	_, err = src.Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeUnavailable, apperrors.CodeOf(err))
}

func TestHTTPSource_FetchStatusCodes(t *testing.T) {
	tests := []struct {
		status int
		want   apperrors.ErrorCode
	}{
		{http.StatusUnauthorized, apperrors.ErrCodeUnauthorized},
		{http.StatusForbidden, apperrors.ErrCodeUnauthorized},
		{http.StatusNotFound, apperrors.ErrCodeNotFound},
		{http.StatusInternalServerError, apperrors.ErrCodeUnavailable},
		{http.StatusBadGateway, apperrors.ErrCodeUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			src, err := NewHTTPSource(HTTPOptions{Endpoint: server.URL})
			require.NoError(t, err)

			raw, err := src.Fetch(context.Background())
			require.Error(t, err)
			assert.Nil(t, raw)
			assert.Equal(t, tt.want, apperrors.CodeOf(err))
		})
	}
}

func TestHTTPSource_FetchMalformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"status":"error"}`)
	}))
	defer server.Close()

	src, err := NewHTTPSource(HTTPOptions{Endpoint: server.URL})
	require.NoError(t, err)

	_, err = src.Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidResponse, apperrors.CodeOf(err))
}

func TestHTTPSource_FetchTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	src, err := NewHTTPSource(HTTPOptions{Endpoint: server.URL, Timeout: 50 * time.Millisecond})
	require.NoError(t, err)

	_, err = src.Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeTimeout, apperrors.CodeOf(err))
}

func TestHTTPSource_SlowControllerWithinTimeout(t *testing.T) {
	if testing.Short() {
		t.Skip("waits 12s for the controller to answer")
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
			return
		case <-time.After(12 * time.Second):
		}
		fmt.Fprint(w, `{"results":[{"hostname":"slow"}]}`)
	}))
	defer server.Close()

	src, err := NewHTTPSource(HTTPOptions{Endpoint: server.URL, Timeout: 60 * time.Second})
	require.NoError(t, err)

	raw, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, raw, 1)
}

func TestHTTPSource_FetchUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()

	src, err := NewHTTPSource(HTTPOptions{Endpoint: endpoint, Timeout: 2 * time.Second})
	require.NoError(t, err)

	_, err = src.Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeUnavailable, apperrors.CodeOf(err))
}
