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

// Package source provides the Client Source: the component that produces the
// raw client elements of one snapshot.
//
// HTTPSource queries the controller monitoring API:
//
//	src, err := source.NewHTTPSource(source.HTTPOptions{
//	    Endpoint:  "https://192.168.10.254:8443",
//	    Token:     token,
//	    VerifyTLS: false,
//	    Timeout:   30 * time.Second,
//	})
//	raw, err := src.Fetch(ctx)
//
// FileSource replays a raw JSON artifact written by a previous run, which
// lets a snapshot be re-rendered without contacting the controller.
//
// Both decode the body with Decode: a JSON array is the client list, a JSON
// object must carry the list under "results", and any other shape is an
// INVALID_RESPONSE error. Transport failures and non-2xx statuses surface as
// SERVICE_UNAVAILABLE, TIMEOUT, UNAUTHORIZED or NOT_FOUND structured errors.
// Callers decide whether a failed fetch degrades to an empty snapshot.
package source
