// This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
// Copyright 2024 WJQSERVER. All rights reserved.
// All rights reserved by WJQSERVER, related rights can be exercised by the infinite-iroha organization.
package pathmaker

import (
	"reflect"
	"strings"
)

// Param 是一个查询参数
type Param struct {
	Key   string
	Value any
}

// Query 是有序的查询参数列表, 输出顺序即插入顺序
type Query []Param

// Q 由 key, value 交替排列的参数构造 Query
// 奇数个参数时最后一个 key 的值为 Undefined
func Q(kv ...any) Query {
	q := make(Query, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		p := Param{Key: Stringify(kv[i]), Value: Undefined}
		if i+1 < len(kv) {
			p.Value = kv[i+1]
		}
		q = append(q, p)
	}
	return q
}

// Add 返回追加了一个参数的新 Query, 不修改原值
func (q Query) Add(key string, value any) Query {
	out := make(Query, len(q), len(q)+1)
	copy(out, q)
	return append(out, Param{Key: key, Value: value})
}

// Get 返回第一个匹配 key 的值
func (q Query) Get(key string) (any, bool) {
	for _, p := range q {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// Map 将 Query 转换为 map, 重复的键以最后一次为准
func (q Query) Map() map[string]any {
	m := make(map[string]any, len(q))
	for _, p := range q {
		m[p.Key] = p.Value
	}
	return m
}

// EncodeQuery 将查询参数渲染为 "?k=v&..." 形式
//   - nil, Undefined 或空映射得到空串
//   - string (含自定义字符串类型) 原样返回, 由调用方负责转义
//   - 任意键为字符串的映射都按映射处理
//   - 只对值做百分号编码, 键永远不编码
//
// map 类型没有插入顺序, 其键按字典序输出; 需要保持顺序时请使用 Query
func EncodeQuery(q any) string {
	switch v := q.(type) {
	case nil:
		return ""
	case undefined:
		return ""
	case string:
		return v
	case Query:
		return encodePairs(v)
	}
	if rv := reflect.ValueOf(q); rv.Kind() == reflect.String {
		return rv.String()
	}
	return encodeMap(toPayload(q))
}

func encodeMap(m Payload) string {
	if len(m) == 0 {
		return ""
	}
	q := make(Query, 0, len(m))
	for _, k := range sortedKeys(m) {
		q = append(q, Param{Key: k, Value: m[k]})
	}
	return encodePairs(q)
}

func encodePairs(q Query) string {
	if len(q) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteByte('?')
	for i, p := range q {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(p.Key)
		sb.WriteByte('=')
		sb.WriteString(PercentEncode(Stringify(p.Value)))
	}
	return sb.String()
}

const upperhex = "0123456789ABCDEF"

// PercentEncode 按 encodeURIComponent 的规则编码
// 保留 A-Z a-z 0-9 - _ . ! ~ * ' ( ), 其余字节编码为 %XX, 空格为 %20
func PercentEncode(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c) {
			buf = append(buf, '%', upperhex[c>>4], upperhex[c&15])
			continue
		}
		buf = append(buf, c)
	}
	return string(buf)
}

func shouldEscape(c byte) bool {
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
		return false
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return false
	}
	return true
}
