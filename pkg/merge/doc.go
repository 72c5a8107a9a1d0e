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

// Package merge combines result documents from repeated benchmark runs.
//
// Two shapes are supported:
//
//   - Records merges flat metric documents. Records sharing a (metric,
//     measurement) identity are consolidated into one record whose value is
//     the concatenation of every source value, in document order and then
//     record order. New identities are appended in first-seen order.
//
//   - Trees merges nested metric trees. Internal keys merge recursively and
//     leaves concatenate in document order. A document missing a leaf
//     contributes nothing to it. A key that is a mapping in one document and
//     a leaf in another is rejected with MIXED_NODE_SHAPE.
//
// Neither function mutates its inputs.
package merge
