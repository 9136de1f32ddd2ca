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

// Statistic names, in report order.
const (
	StatDot11k    = "802.11k Support"
	StatDot11v    = "802.11v Support"
	StatDot11r    = "802.11r Support"
	StatMIMO      = "MIMO Mode"
	StatRadioType = "Radio Type"
)

// StatisticNames lists every statistic Summarize produces, in order.
var StatisticNames = []string{
	StatDot11k,
	StatDot11v,
	StatDot11r,
	StatMIMO,
	StatRadioType,
}

// Count is the number of clients that reported Value.
type Count struct {
	Value string `json:"value" yaml:"value"`
	Count int    `json:"count" yaml:"count"`
}

// Statistic is a frequency table for one categorical field. Counts are kept
// in first-seen order.
type Statistic struct {
	Name   string  `json:"name" yaml:"name"`
	Counts []Count `json:"counts" yaml:"counts"`
}

// Total returns the sum of all counts.
func (s Statistic) Total() int {
	total := 0
	for _, c := range s.Counts {
		total += c.Count
	}
	return total
}

// Labels returns the observed values.
func (s Statistic) Labels() []string {
	labels := make([]string, len(s.Counts))
	for i, c := range s.Counts {
		labels[i] = c.Value
	}
	return labels
}

// Values returns the counts aligned with Labels.
func (s Statistic) Values() []int {
	values := make([]int, len(s.Counts))
	for i, c := range s.Counts {
		values[i] = c.Count
	}
	return values
}

// Statistics holds one Statistic per name in StatisticNames order.
type Statistics []Statistic

// Get returns the statistic with the given name.
func (s Statistics) Get(name string) (Statistic, bool) {
	for _, st := range s {
		if st.Name == name {
			return st, true
		}
	}
	return Statistic{}, false
}

// Summarize tallies capability flags, MIMO mode and radio type over the raw
// elements. Non-object elements are skipped, so every statistic totals the
// number of JSON objects in raw.
func Summarize(raw []any) Statistics {
	tallies := make([]*tally, len(StatisticNames))
	for i := range tallies {
		tallies[i] = newTally()
	}

	for _, item := range raw {
		rec, ok := AsRecord(item)
		if !ok {
			continue
		}
		tallies[0].add(FormatBool(rec.Bool(KeyDot11k)))
		tallies[1].add(FormatBool(rec.Bool(KeyDot11v)))
		tallies[2].add(FormatBool(rec.Bool(KeyDot11r)))
		tallies[3].add(rec.String(KeyMIMO, Unknown))
		tallies[4].add(rec.String(KeyRadioType, Unknown))
	}

	stats := make(Statistics, len(StatisticNames))
	for i, name := range StatisticNames {
		stats[i] = Statistic{Name: name, Counts: tallies[i].counts}
	}
	return stats
}

type tally struct {
	index  map[string]int
	counts []Count
}

func newTally() *tally {
	return &tally{index: make(map[string]int), counts: []Count{}}
}

func (t *tally) add(value string) {
	if i, ok := t.index[value]; ok {
		t.counts[i].Count++
		return
	}
	t.index[value] = len(t.counts)
	t.counts = append(t.counts, Count{Value: value, Count: 1})
}
