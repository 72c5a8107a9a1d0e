// Package cli implements the command-line interface for benchres.
//
// # Overview
//
// benchres turns the result files written by load-testing tools into
// tables. It understands flat record lists (YCSB) and nested metric trees
// (arangobench), in JSON or YAML.
//
// # Commands
//
// combine - Merge documents from repeated runs:
//
//	benchres combine run-1.json run-2.json [--output FILE] [--format json|yaml]
//
// reduce - Collapse lists of values to one number:
//
//	benchres reduce combined.json --op max [--op-time avg]
//
// extract - Flat document to table:
//
//	benchres extract combined.json [--sep /] [--extra NAME=V,...] [--rows N] [--format csv]
//
// convert - Nested document to table:
//
//	benchres convert arangobench.json [--sep /] [--count-key totalNumberOfOperations]
//
// # Global Flags
//
//	--log-level     debug, info, warn or error (default: info, env: LOG_LEVEL)
//	--config        YAML file with default settings
//	--metrics-file  Write pipeline counters in Prometheus text format on exit
//	--version, -v   Show version information
//
// Every command reads standard input when no file is given and writes to
// standard output unless --output is set. Errors are logged as JSON on
// stderr and the process exits with status 1.
//
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
package cli
