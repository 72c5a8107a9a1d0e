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

// Package tree provides the recursively nested metrics document produced by
// tools such as arangobench.
//
// A tree is a mapping whose values are either further mappings (internal
// nodes) or sequences of numbers (leaves). Node is a tagged variant: every
// node is exactly one of KindInternal or KindLeaf, and code that walks a tree
// switches on Kind instead of inspecting runtime types.
//
// Internal nodes keep their keys in document order. Decoding and encoding
// (JSON and YAML) preserve that order, which is what makes flattened column
// names deterministic:
//
//	{"a": {"b": [1, 2], "c": [3]}, "totalNumberOfOperations": [10, 12]}
//
// walks as a/b, a/c, totalNumberOfOperations.
package tree
