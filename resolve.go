// This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
// Copyright 2024 WJQSERVER. All rights reserved.
// All rights reserved by WJQSERVER, related rights can be exercised by the infinite-iroha organization.
package pathmaker

// Call 是一次 Build 调用解析后的结果
type Call struct {
	Fragment    any  // 路径片段
	HasFragment bool // 为 false 时直接使用 basePath
	Payload     Payload
	Query       any // Query, map, string 或 nil
}

// Resolve 根据参数个数与第一个参数的形状, 判断每个参数的角色
//
//	0 个: 无片段, 无 payload, 无 query
//	1 个: 字符串/序列为片段; 否则为 payload, 其 "query" 项作为 query
//	2 个: 第一个为字符串/序列时为 (片段, payload);
//	      否则为 (payload, query), 第二个为 nil 时才使用 payload 的 "query" 项
//	3+ 个: (片段, payload, query), 不看形状, 多余的参数忽略
func Resolve(args ...any) Call {
	var c Call
	switch len(args) {
	case 0:
	case 1:
		if isFragmentShape(args[0]) {
			c.Fragment, c.HasFragment = args[0], true
			break
		}
		c.setPayload(args[0])
		c.Query, _ = c.Payload.NestedQuery()
	case 2:
		if isFragmentShape(args[0]) {
			c.Fragment, c.HasFragment = args[0], true
			c.setPayload(args[1])
			c.Query, _ = c.Payload.NestedQuery()
			break
		}
		c.setPayload(args[0])
		if args[1] != nil {
			c.Query = args[1]
		} else {
			c.Query, _ = c.Payload.NestedQuery()
		}
	default:
		c.Fragment, c.HasFragment = args[0], true
		c.setPayload(args[1])
		c.Query = args[2]
	}
	return c
}

func (c *Call) setPayload(v any) {
	c.Payload = toPayload(v)
}
