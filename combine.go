// This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
// Copyright 2024 WJQSERVER. All rights reserved.
// All rights reserved by WJQSERVER, related rights can be exercised by the infinite-iroha organization.
package pathmaker

import (
	"reflect"
	"strings"
)

// Combine 使用分隔符拼接两个路径片段
// 拼接处不会出现重复的分隔符, 也不会丢失显式给出的分隔符:
//   - b 为空时原样返回 a
//   - a 以分隔符结尾且 b 以分隔符开头, 去掉 b 开头的分隔符
//   - 只有一方带分隔符时直接拼接
//   - 双方都不带时插入一个分隔符
func Combine(a, b any, delimiter string) string {
	return combineStrings(Normalize(a, delimiter), Normalize(b, delimiter), delimiter)
}

func combineStrings(a, b, delimiter string) string {
	if b == "" {
		return a
	}

	d1 := strings.HasSuffix(a, delimiter)
	d2 := strings.HasPrefix(b, delimiter)

	var sb strings.Builder
	sb.Grow(len(a) + len(b) + len(delimiter))
	sb.WriteString(a)
	switch {
	case d1 && d2:
		sb.WriteString(b[len(delimiter):])
	case d1 || d2:
		sb.WriteString(b)
	default:
		sb.WriteString(delimiter)
		sb.WriteString(b)
	}
	return sb.String()
}

// Normalize 将片段 (单个值或任意嵌套的序列) 转换为一个字符串
// nil, nil 指针与 Undefined 得到空串, 序列按顺序用 Combine 左折叠
func Normalize(fragment any, delimiter string) string {
	switch f := fragment.(type) {
	case nil:
		return ""
	case undefined:
		return ""
	case string:
		return f
	case []byte:
		return string(f)
	case []string:
		return foldStrings(f, delimiter)
	case []any:
		if len(f) == 0 {
			return ""
		}
		acc := Normalize(f[0], delimiter)
		for _, elem := range f[1:] {
			acc = combineStrings(acc, Normalize(elem, delimiter), delimiter)
		}
		return acc
	}

	rv := reflect.ValueOf(fragment)
	switch rv.Kind() {
	case reflect.String:
		return Stringify(fragment)
	case reflect.Pointer:
		if rv.IsNil() {
			return ""
		}
	}

	if isSequence(fragment) {
		if rv.Len() == 0 {
			return ""
		}
		acc := Normalize(rv.Index(0).Interface(), delimiter)
		for i := 1; i < rv.Len(); i++ {
			acc = combineStrings(acc, Normalize(rv.Index(i).Interface(), delimiter), delimiter)
		}
		return acc
	}
	return Stringify(fragment)
}

func foldStrings(parts []string, delimiter string) string {
	if len(parts) == 0 {
		return ""
	}
	acc := parts[0]
	for _, p := range parts[1:] {
		acc = combineStrings(acc, p, delimiter)
	}
	return acc
}
