// This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
// Copyright 2024 WJQSERVER. All rights reserved.
// All rights reserved by WJQSERVER, related rights can be exercised by the infinite-iroha organization.
package pathmaker

import (
	"reflect"
	"sort"
	"strings"
	"unicode/utf8"
)

// QueryKey 是 Payload 中携带查询参数的键
const QueryKey = "query"

// Payload 提供模板替换所需的值, 键为不带前缀的 token 名
type Payload map[string]any

// NestedQuery 返回 Payload 中 "query" 键携带的查询参数
func (p Payload) NestedQuery() (any, bool) {
	if p == nil {
		return nil, false
	}
	q, ok := p[QueryKey]
	return q, ok
}

// Merge 将 path 中形如 ":name" 的段替换为 payload 中对应的值
// 只识别完整的单个段; payload 中没有该键时保留原样
func Merge(path string, payload Payload, delimiter, prefix string) string {
	if len(payload) == 0 || path == "" {
		return path
	}
	segments := strings.Split(path, delimiter)
	for i, seg := range segments {
		if utf8.RuneCountInString(seg) < 2 || !strings.HasPrefix(seg, prefix) {
			continue
		}
		value, ok := payload[seg[len(prefix):]]
		if !ok {
			continue
		}
		segments[i] = Stringify(value)
	}
	return strings.Join(segments, delimiter)
}

// Tokens 返回 path 中所有 token 的名字 (不含前缀), 按出现顺序
func Tokens(path, delimiter, prefix string) []string {
	var out []string
	for _, seg := range strings.Split(path, delimiter) {
		if utf8.RuneCountInString(seg) < 2 || !strings.HasPrefix(seg, prefix) {
			continue
		}
		out = append(out, seg[len(prefix):])
	}
	return out
}

// toPayload 将键为字符串的映射或 Query 转换为 Payload, 其余类型返回 nil
// Query 转换后保留嵌套 "query" 的原始值 (仍为有序的 Query)
func toPayload(v any) Payload {
	switch p := v.(type) {
	case nil:
		return nil
	case Payload:
		return p
	case map[string]any:
		return Payload(p)
	case Query:
		out := make(Payload, len(p))
		for _, param := range p {
			out[param.Key] = param.Value // 重复的键以最后一次为准
		}
		return out
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
		return nil
	}
	out := make(Payload, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out
}

// sortedKeys 返回映射的有序键, Go map 没有插入顺序
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
