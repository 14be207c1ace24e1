// This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
// Copyright 2024 WJQSERVER. All rights reserved.
// All rights reserved by WJQSERVER, related rights can be exercised by the infinite-iroha organization.
package pathmaker

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// undefined 表示 "存在但未定义" 的值
type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined 可作为 Payload 中的值使用, 替换时会被转换为字面量 "undefined"
// nil 则会被转换为 "null"
var Undefined any = undefined{}

// Stringify 将任意值转换为字符串
//   - nil -> "null", Undefined -> "undefined"
//   - 切片/数组 -> 各元素转换后以 "," 连接
//   - 其余标量交给 cast 处理, 无法处理时退回 fmt
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case undefined:
		return val.String()
	case string:
		return val
	case Query:
		// 已知限制: 嵌套的查询参数只做简单字符串化
		return fmt.Sprint(val.Map())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		// 自定义的字符串类型, 实现了 String() 的交给 cast
		if _, ok := v.(fmt.Stringer); !ok {
			return rv.String()
		}
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			break // []byte 交给 cast
		}
		parts := make([]string, rv.Len())
		for i := range parts {
			elem := rv.Index(i).Interface()
			if elem == nil || elem == Undefined {
				continue // 数组中的空值输出为空串
			}
			parts[i] = Stringify(elem)
		}
		return strings.Join(parts, ",")
	case reflect.Pointer:
		if rv.IsNil() {
			return "null"
		}
	}

	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

// isSequence 判断值是否为片段序列 ([]byte 视为字符串)
func isSequence(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Type().Elem().Kind() != reflect.Uint8
	}
	return false
}

// isFragmentShape 判断参数是否应被当作路径片段
// 底层类型为 string 的自定义类型同样视为字符串
func isFragmentShape(v any) bool {
	switch v.(type) {
	case nil:
		return false
	case string, []byte:
		return true
	case Query:
		return false
	}
	if reflect.ValueOf(v).Kind() == reflect.String {
		return true
	}
	return isSequence(v)
}
