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

package tree

import (
	"fmt"
	"strings"

	"github.com/NVIDIA/benchmark-results/pkg/errors"
)

// KeyTotalOperations is the arangobench leaf that is present in every run.
const KeyTotalOperations = "totalNumberOfOperations"

// Kind identifies which variant a Node holds.
type Kind int

const (
	// KindInternal is a mapping of keys to child nodes.
	KindInternal Kind = iota
	// KindLeaf is a sequence of numbers.
	KindLeaf
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindInternal:
		return "mapping"
	case KindLeaf:
		return "leaf"
	default:
		return "unknown"
	}
}

// Node is either an internal node with ordered children or a leaf series.
// The zero Node is an empty internal node.
type Node struct {
	kind     Kind
	values   []float64
	keys     []string
	children map[string]*Node
}

// NewInternal creates an empty internal node.
func NewInternal() *Node {
	return &Node{kind: KindInternal}
}

// NewLeaf creates a leaf holding a copy of vs.
func NewLeaf(vs ...float64) *Node {
	values := make([]float64, len(vs))
	copy(values, vs)
	return &Node{kind: KindLeaf, values: values}
}

// Kind returns the variant held by n.
func (n *Node) Kind() Kind {
	return n.kind
}

// IsLeaf reports whether n is a leaf.
func (n *Node) IsLeaf() bool {
	return n.kind == KindLeaf
}

// Set adds or replaces a child. New keys are appended after existing ones.
// It returns n to allow chaining. Set panics on a leaf.
func (n *Node) Set(key string, child *Node) *Node {
	if n.kind != KindInternal {
		panic("tree: Set called on a leaf node")
	}
	if n.children == nil {
		n.children = make(map[string]*Node)
	}
	if _, exists := n.children[key]; !exists {
		n.keys = append(n.keys, key)
	}
	n.children[key] = child
	return n
}

// Get returns the child stored under key.
func (n *Node) Get(key string) (*Node, bool) {
	if n.kind != KindInternal {
		return nil, false
	}
	child, ok := n.children[key]
	return child, ok
}

// Keys returns the child keys in order.
func (n *Node) Keys() []string {
	out := make([]string, len(n.keys))
	copy(out, n.keys)
	return out
}

// Values returns a copy of a leaf's numbers; nil for internal nodes.
func (n *Node) Values() []float64 {
	if n.kind != KindLeaf {
		return nil
	}
	out := make([]float64, len(n.values))
	copy(out, n.values)
	return out
}

// Len returns the number of observations of a leaf or the number of
// children of an internal node.
func (n *Node) Len() int {
	if n.kind == KindLeaf {
		return len(n.values)
	}
	return len(n.keys)
}

// Append adds observations to a leaf.
func (n *Node) Append(vs ...float64) {
	if n.kind != KindLeaf {
		panic("tree: Append called on an internal node")
	}
	n.values = append(n.values, vs...)
}

// Lookup descends along path and returns the node found there.
func (n *Node) Lookup(path ...string) (*Node, error) {
	cur := n
	for i, key := range path {
		child, ok := cur.Get(key)
		if !ok {
			return nil, errors.NewWithContext(errors.ErrCodeUnknownMetric,
				fmt.Sprintf("metric %q not found", strings.Join(path[:i+1], "/")),
				map[string]any{"path": path})
		}
		cur = child
	}
	return cur, nil
}

// LeafLen returns the length of the leaf at path. It is used to derive the
// canonical row count of a document.
func (n *Node) LeafLen(path ...string) (int, error) {
	leaf, err := n.Lookup(path...)
	if err != nil {
		return 0, err
	}
	if !leaf.IsLeaf() {
		return 0, errors.NewWithContext(errors.ErrCodeUnknownMetric,
			fmt.Sprintf("metric %q is not a leaf", strings.Join(path, "/")),
			map[string]any{"path": path})
	}
	return leaf.Len(), nil
}

// WalkFunc is called for every leaf with the path from the root.
// The path slice is only valid for the duration of the call.
type WalkFunc func(path []string, leaf *Node) error

// Walk visits leaves depth-first in key order.
func (n *Node) Walk(fn WalkFunc) error {
	return n.walk(nil, fn)
}

func (n *Node) walk(path []string, fn WalkFunc) error {
	switch n.kind {
	case KindLeaf:
		return fn(path, n)
	case KindInternal:
		for _, key := range n.keys {
			if err := n.children[key].walk(append(path, key), fn); err != nil {
				return err
			}
		}
		return nil
	default:
		return errors.Newf(errors.ErrCodeInternal, "unknown node kind %d", n.kind)
	}
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	if n.kind == KindLeaf {
		return NewLeaf(n.values...)
	}
	out := NewInternal()
	for _, key := range n.keys {
		out.Set(key, n.children[key].Clone())
	}
	return out
}
