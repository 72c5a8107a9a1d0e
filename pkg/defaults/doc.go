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

// Package defaults provides centralized tuning constants for benchres.
//
// Timeouts and limits used by more than one package live here so that the
// CLI, the document loader and the remote fetcher agree on them.
//
// # Usage
//
//	import "github.com/NVIDIA/benchmark-results/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CLICommandTimeout)
//	defer cancel()
//
// # Guidelines
//
//   - Remote inputs: 30s total, 5s to connect
//   - Document loading: bounded parallelism, one goroutine per file up to the limit
//   - Commands: 5m, which covers merging hundreds of result files
package defaults
