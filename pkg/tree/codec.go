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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/benchmark-results/pkg/errors"
)

// MarshalJSON encodes n keeping child order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.encodeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) encodeJSON(buf *bytes.Buffer) error {
	if n.kind == KindLeaf {
		values := n.values
		if values == nil {
			values = []float64{}
		}
		data, err := json.Marshal(values)
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil
	}

	buf.WriteByte('{')
	for i, key := range n.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		if err := n.children[key].encodeJSON(buf); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSON decodes an object of objects and numeric arrays, keeping
// key order.
func (n *Node) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	node, err := decodeJSON(dec, "$")
	if err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.New(errors.ErrCodeMalformedInput, "unexpected data after tree document")
	}
	*n = *node
	return nil
}

func decodeJSON(dec *json.Decoder, where string) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, "invalid JSON at "+where, err)
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return nil, errors.Newf(errors.ErrCodeMalformedInput,
			"%s must be an object or an array of numbers, got %v", where, tok)
	}

	switch delim {
	case '{':
		node := NewInternal()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeMalformedInput, "invalid JSON at "+where, err)
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, errors.Newf(errors.ErrCodeMalformedInput, "%s has a non-string key", where)
			}
			child, err := decodeJSON(dec, where+"."+key)
			if err != nil {
				return nil, err
			}
			node.Set(key, child)
		}
		if _, err := dec.Token(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeMalformedInput, "invalid JSON at "+where, err)
		}
		return node, nil

	case '[':
		leaf := NewLeaf()
		for dec.More() {
			elem, err := dec.Token()
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeMalformedInput, "invalid JSON at "+where, err)
			}
			num, ok := elem.(json.Number)
			if !ok {
				return nil, errors.Newf(errors.ErrCodeMalformedInput,
					"%s[%d] must be a number, got %v", where, leaf.Len(), elem)
			}
			f, err := strconv.ParseFloat(num.String(), 64)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeMalformedInput, "invalid number at "+where, err)
			}
			leaf.Append(f)
		}
		if _, err := dec.Token(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeMalformedInput, "invalid JSON at "+where, err)
		}
		return leaf, nil

	default:
		return nil, errors.Newf(errors.ErrCodeMalformedInput, "unexpected %v at %s", delim, where)
	}
}

// MarshalYAML encodes n as an ordered mapping or a sequence.
func (n *Node) MarshalYAML() (any, error) {
	return n.toYAML()
}

func (n *Node) toYAML() (*yaml.Node, error) {
	if n.kind == KindLeaf {
		values := n.values
		if values == nil {
			values = []float64{}
		}
		out := &yaml.Node{}
		if err := out.Encode(values); err != nil {
			return nil, err
		}
		out.Style = yaml.FlowStyle
		return out, nil
	}

	out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range n.keys {
		child, err := n.children[key].toYAML()
		if err != nil {
			return nil, err
		}
		out.Content = append(out.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			child,
		)
	}
	return out, nil
}

// UnmarshalYAML decodes a mapping of mappings and numeric sequences,
// keeping key order.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	node, err := decodeYAML(value, "$")
	if err != nil {
		return err
	}
	*n = *node
	return nil
}

func decodeYAML(value *yaml.Node, where string) (*Node, error) {
	for value.Kind == yaml.AliasNode && value.Alias != nil {
		value = value.Alias
	}

	switch value.Kind {
	case yaml.DocumentNode:
		if len(value.Content) != 1 {
			return nil, errors.Newf(errors.ErrCodeMalformedInput, "empty YAML document")
		}
		return decodeYAML(value.Content[0], where)

	case yaml.MappingNode:
		node := NewInternal()
		for i := 0; i+1 < len(value.Content); i += 2 {
			key := value.Content[i].Value
			child, err := decodeYAML(value.Content[i+1], where+"."+key)
			if err != nil {
				return nil, err
			}
			node.Set(key, child)
		}
		return node, nil

	case yaml.SequenceNode:
		values := make([]float64, len(value.Content))
		for i, elem := range value.Content {
			for elem.Kind == yaml.AliasNode && elem.Alias != nil {
				elem = elem.Alias
			}
			tag := elem.ShortTag()
			if elem.Kind != yaml.ScalarNode || (tag != "!!int" && tag != "!!float") {
				return nil, errors.Newf(errors.ErrCodeMalformedInput,
					"%s[%d] must be a number (line %d)", where, i, elem.Line)
			}
			if err := elem.Decode(&values[i]); err != nil {
				return nil, errors.Wrap(errors.ErrCodeMalformedInput,
					fmt.Sprintf("invalid number at %s[%d]", where, i), err)
			}
		}
		return NewLeaf(values...), nil

	default:
		return nil, errors.Newf(errors.ErrCodeMalformedInput,
			"%s must be a mapping or a sequence of numbers (line %d)", where, value.Line)
	}
}
