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

// Package clients defines the wireless client reporting schema and the two
// pure transformations applied to a controller snapshot.
//
// A snapshot arrives as []any: the decoded JSON elements exactly as the
// controller returned them. Elements that are not JSON objects are tolerated
// and skipped by both transformations, so they are excluded from the rows and
// from every statistic alike.
//
// Normalize turns each object into a Row with every column populated:
//
//	rows := clients.Normalize(raw)
//	for _, r := range rows {
//	    fmt.Println(r.Hostname, r.Signal) // "printer1" "-47 dBm"
//	}
//
// Summarize tallies capability flags, MIMO mode and radio type:
//
//	stats := clients.Summarize(raw)
//	k, _ := stats.Get(clients.StatDot11k)
//	fmt.Println(k.Labels(), k.Values()) // [True False] [3 1]
//
// The two functions apply their defaults independently. A missing MIMO or
// radio value is displayed as "N/A" in rows but counted as "Unknown" in
// statistics.
package clients
