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

// Package config holds the settings shared by benchres commands.
//
// Values come from three layers, later layers winning:
//
//  1. Built-in defaults (NewConfig)
//  2. A YAML defaults file (Load, then File.Options)
//  3. Command-line flags
//
// A defaults file looks like:
//
//	separator: /
//	op: max
//	opTime: avg
//	format: csv
//	countMetric: OVERALL
//	countMeasurement: RunTime(ms)
//	countKey: totalNumberOfOperations
//
// Every field is optional. The reduction operator has no built-in default;
// it must come from the file or the --op flag.
package config
