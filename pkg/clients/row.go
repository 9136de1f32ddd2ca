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

package clients

// Headers are the human column labels, in Row field order.
var Headers = []string{
	"Hostname",
	"MAC",
	"OS",
	"802.11k",
	"802.11v",
	"802.11r",
	"MIMO",
	"Radio",
	"Signal",
	"SNR",
}

// Row is one normalized client in the reporting schema. Every field is
// always populated.
type Row struct {
	Hostname  string `json:"hostname" yaml:"hostname"`
	MAC       string `json:"mac" yaml:"mac"`
	OS        string `json:"os" yaml:"os"`
	Dot11k    bool   `json:"dot11k" yaml:"dot11k"`
	Dot11v    bool   `json:"dot11v" yaml:"dot11v"`
	Dot11r    bool   `json:"dot11r" yaml:"dot11r"`
	MIMO      string `json:"mimo" yaml:"mimo"`
	RadioType string `json:"radioType" yaml:"radioType"`
	Signal    string `json:"signal" yaml:"signal"`
	SNR       string `json:"snr" yaml:"snr"`
}

// Values returns the row as text cells in Headers order.
func (r Row) Values() []string {
	return []string{
		r.Hostname,
		r.MAC,
		r.OS,
		FormatBool(r.Dot11k),
		FormatBool(r.Dot11v),
		FormatBool(r.Dot11r),
		r.MIMO,
		r.RadioType,
		r.Signal,
		r.SNR,
	}
}
