// This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
// Copyright 2024 WJQSERVER. All rights reserved.
// All rights reserved by WJQSERVER, related rights can be exercised by the infinite-iroha organization.
package pathmaker

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"go.yaml.in/yaml/v3"
)

var errNotObject = errors.New("query must be an object")

// MarshalJSON 按插入顺序输出 JSON 对象
func (q Query) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := jsontext.NewEncoder(&buf)
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return nil, err
	}
	for _, p := range q {
		if err := enc.WriteToken(jsontext.String(p.Key)); err != nil {
			return nil, err
		}
		raw, err := json.Marshal(jsonValue(p.Value))
		if err != nil {
			return nil, fmt.Errorf("query key %q: %w", p.Key, err)
		}
		if err := enc.WriteValue(jsontext.Value(raw)); err != nil {
			return nil, err
		}
	}
	if err := enc.WriteToken(jsontext.EndObject); err != nil {
		return nil, err
	}
	return bytes.TrimSpace(buf.Bytes()), nil
}

// jsonValue 把 Undefined 映射为 null, 其余值原样交给 json
func jsonValue(v any) any {
	if _, ok := v.(undefined); ok {
		return nil
	}
	return v
}

// UnmarshalJSON 按出现顺序读取 JSON 对象, 嵌套对象同样解码为 Query
func (q *Query) UnmarshalJSON(data []byte) error {
	dec := jsontext.NewDecoder(bytes.NewReader(data))
	out, err := decodeQueryObject(dec)
	if err != nil {
		return err
	}
	*q = out
	return nil
}

func decodeQueryObject(dec *jsontext.Decoder) (Query, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}
	if tok.Kind() != '{' {
		return nil, errNotObject
	}
	q := Query{}
	for dec.PeekKind() != '}' {
		keyTok, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}
		key := keyTok.String()

		var value any
		switch dec.PeekKind() {
		case '{':
			value, err = decodeQueryObject(dec)
		case '[':
			value, err = decodeJSONArray(dec)
		default:
			var raw jsontext.Value
			raw, err = dec.ReadValue()
			if err == nil {
				err = json.Unmarshal(raw, &value)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("query key %q: %w", key, err)
		}
		q = append(q, Param{Key: key, Value: value})
	}
	if _, err := dec.ReadToken(); err != nil {
		return nil, err
	}
	return q, nil
}

func decodeJSONArray(dec *jsontext.Decoder) ([]any, error) {
	if _, err := dec.ReadToken(); err != nil {
		return nil, err
	}
	out := []any{}
	for dec.PeekKind() != ']' {
		var (
			value any
			err   error
		)
		switch dec.PeekKind() {
		case '{':
			value, err = decodeQueryObject(dec)
		case '[':
			value, err = decodeJSONArray(dec)
		default:
			var raw jsontext.Value
			raw, err = dec.ReadValue()
			if err == nil {
				err = json.Unmarshal(raw, &value)
			}
		}
		if err != nil {
			return nil, err
		}
		out = append(out, value)
	}
	if _, err := dec.ReadToken(); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeArgs 将 JSON 数组解码为 Build 的位置参数
// 对象解码为有序的 Query, 其余值按 JSON 的默认规则解码
func DecodeArgs(data []byte) ([]any, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(data))
	if dec.PeekKind() != '[' {
		return nil, errors.New("args must be a JSON array")
	}
	args, err := decodeJSONArray(dec)
	if err != nil {
		return nil, fmt.Errorf("decode args: %w", err)
	}
	return args, nil
}

// MarshalYAML 按插入顺序输出映射节点
func (q Query) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, p := range q {
		var value yaml.Node
		if err := value.Encode(jsonValue(p.Value)); err != nil {
			return nil, fmt.Errorf("query key %q: %w", p.Key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Key},
			&value,
		)
	}
	return node, nil
}

// UnmarshalYAML 按出现顺序读取映射节点, 嵌套映射同样解码为 Query
func (q *Query) UnmarshalYAML(node *yaml.Node) error {
	out, err := decodeYAMLMapping(node)
	if err != nil {
		return err
	}
	*q = out
	return nil
}

func decodeYAMLMapping(node *yaml.Node) (Query, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return nil, errNotObject
	}
	q := make(Query, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		value, err := decodeYAMLValue(node.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("query key %q: %w", key, err)
		}
		q = append(q, Param{Key: key, Value: value})
	}
	return q, nil
}

func decodeYAMLValue(node *yaml.Node) (any, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	switch node.Kind {
	case yaml.MappingNode:
		return decodeYAMLMapping(node)
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			v, err := decodeYAMLValue(child)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
