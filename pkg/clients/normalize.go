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

const (
	signalUnit = "dBm"
	snrUnit    = "dB"
)

// Normalize converts raw controller elements into rows. Elements that are
// not JSON objects are dropped; order is preserved and nothing is
// deduplicated.
func Normalize(raw []any) []Row {
	rows := make([]Row, 0, len(raw))
	for _, item := range raw {
		rec, ok := AsRecord(item)
		if !ok {
			continue
		}
		rows = append(rows, NormalizeRecord(rec))
	}
	return rows
}

// NormalizeRecord applies the defaulting rules to a single record.
func NormalizeRecord(rec Record) Row {
	return Row{
		Hostname:  rec.String(KeyHostname, NotAvailable),
		MAC:       rec.String(KeyMAC, NotAvailable),
		OS:        rec.String(KeyOS, NotAvailable),
		Dot11k:    rec.Bool(KeyDot11k),
		Dot11v:    rec.Bool(KeyDot11v),
		Dot11r:    rec.Bool(KeyDot11r),
		MIMO:      rec.String(KeyMIMO, NotAvailable),
		RadioType: rec.String(KeyRadioType, NotAvailable),
		Signal:    withUnit(rec.String(KeySignal, NotAvailable), signalUnit),
		SNR:       withUnit(rec.String(KeySNR, NotAvailable), snrUnit),
	}
}

func withUnit(v, unit string) string {
	return v + " " + unit
}
