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

// Package cli implements the wifiaudit command-line interface.
//
// # Commands
//
// snapshot - capture the clients associated with a controller:
//
//	wifiaudit snapshot --endpoint https://192.168.10.254:8443 --token $TOKEN
//
// render - rebuild the artifacts from a saved raw JSON snapshot:
//
//	wifiaudit render --input wifi_clients_raw_20250301_120000.json
//
// # Global Flags
//
//	--config, -c   YAML config file
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--debug        Shorthand for --log-level debug
//
// # Configuration
//
// Every setting can come from the config file, a flag or a WIFIAUDIT_*
// environment variable (WIFIAUDIT_ENDPOINT, WIFIAUDIT_TOKEN, WIFIAUDIT_OUTPUT,
// ...). Flags and environment variables override the file.
//
// # Output
//
// The console receives the client table and statistics (--format table), or
// a ClientSnapshot document (--format json|yaml). Logs go to stderr as JSON.
//
// # Exit Codes
//
//	0  Success, including a successful fetch that returned no clients
//	1  Invalid arguments or configuration, render, export or push failure
//	2  The client list could not be fetched; empty artifacts were written
package cli
