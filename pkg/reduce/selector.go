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

package reduce

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/NVIDIA/benchmark-results/pkg/metric"
)

// Predicate matches a metric identity.
type Predicate func(id metric.Identity) bool

// MeasurementContains matches measurements containing any of subs,
// ignoring case.
func MeasurementContains(subs ...string) Predicate {
	folded := make([]string, len(subs))
	for i, s := range subs {
		folded[i] = cases.Fold().String(s)
	}
	return func(id metric.Identity) bool {
		name := cases.Fold().String(id.Measurement)
		for _, s := range folded {
			if strings.Contains(name, s) {
				return true
			}
		}
		return false
	}
}

// IsTimeMeasurement matches time and latency measurements.
var IsTimeMeasurement = MeasurementContains("time", "latency")

// Rule selects Op for identities matching Match.
type Rule struct {
	Name  string
	Match Predicate
	Op    Operator
}

// Selector picks an operator per metric identity.
type Selector struct {
	rules []Rule
	def   Operator
}

// NewSelector creates a Selector with the default operator def and a rule
// sending time and latency measurements to timeOp.
func NewSelector(def, timeOp Operator) (*Selector, error) {
	if _, err := ParseOperator(string(def)); err != nil {
		return nil, err
	}
	s := &Selector{def: def}
	if err := s.AddRule(Rule{Name: "time", Match: IsTimeMeasurement, Op: timeOp}); err != nil {
		return nil, err
	}
	return s, nil
}

// AddRule appends a rule. Rules are evaluated in insertion order.
func (s *Selector) AddRule(r Rule) error {
	if _, err := ParseOperator(string(r.Op)); err != nil {
		return err
	}
	s.rules = append(s.rules, r)
	return nil
}

// Default returns the fallback operator.
func (s *Selector) Default() Operator {
	return s.def
}

// Select returns the operator for id.
func (s *Selector) Select(id metric.Identity) Operator {
	for _, r := range s.rules {
		if r.Match(id) {
			return r.Op
		}
	}
	return s.def
}
