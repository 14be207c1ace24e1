// This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
// Copyright 2024 WJQSERVER. All rights reserved.
// All rights reserved by WJQSERVER, related rights can be exercised by the infinite-iroha organization.
package pathmaker

import (
	"strings"

	"github.com/fenthope/reco"
)

// Builder 持有一个基础路径与不可变的配置
// 构造后不再修改, 可在多个 goroutine 间共享
type Builder struct {
	basePath string // 已规范化的基础路径
	cfg      Config
	logger   *reco.Logger
}

// New 创建一个 Builder
// basePath 可以是字符串或片段序列, 构造时即被规范化
func New(basePath any, opts ...Option) *Builder {
	return newBuilder(basePath, DefaultConfig(), nil, opts)
}

// NewFromConfig 使用结构化配置创建 Builder, 非法字段回退为默认值
func NewFromConfig(basePath any, cfg Config, opts ...Option) *Builder {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, WithConfig(cfg))
	all = append(all, opts...)
	return newBuilder(basePath, DefaultConfig(), nil, all)
}

func newBuilder(basePath any, def Config, logger *reco.Logger, opts []Option) *Builder {
	s := settings{cfg: def, logger: logger}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	cfg, fb := s.cfg.sanitizeAgainst(def)
	b := &Builder{
		basePath: Normalize(basePath, cfg.Delimiter),
		cfg:      cfg,
		logger:   s.logger,
	}
	logFallbacks(b.logger, b.basePath, fb)
	return b
}

// Build 生成路径, 参数形状见 Resolve
//
//	b.Build()                          // basePath
//	b.Build("users")                   // 片段
//	b.Build(Payload{"id": 10})         // payload
//	b.Build("users/:id", Payload{...}) // 片段 + payload
//	b.Build(Payload{...}, Q("a", 1))   // payload + query
//	b.Build(frag, payload, query)
func (b *Builder) Build(args ...any) string {
	return b.Make(Resolve(args...))
}

// Make 使用已解析的 Call 生成路径
// 顺序固定: 拼接片段, 替换 token, 追加查询串
func (b *Builder) Make(c Call) string {
	p := b.basePath
	if c.HasFragment {
		p = combineStrings(b.basePath, Normalize(c.Fragment, b.cfg.Delimiter), b.cfg.Delimiter)
	}
	if c.Payload != nil {
		p = Merge(p, c.Payload, b.cfg.Delimiter, b.cfg.TokenPrefix)
	}
	if c.Query != nil {
		if qs := EncodeQuery(c.Query); qs != "" {
			var sb strings.Builder
			sb.Grow(len(p) + len(qs))
			sb.WriteString(p)
			sb.WriteString(qs)
			p = sb.String()
		}
	}
	return p
}

// Sub 基于当前 basePath 派生一个子 Builder
// 分隔符与前缀继承自父级, 可由 opts 覆盖; 标签只取自 opts
func (b *Builder) Sub(fragment any, opts ...Option) *Builder {
	def := b.cfg
	def.Path = ""
	// 子路径用父级的分隔符拼接
	child := combineStrings(b.basePath, Normalize(fragment, b.cfg.Delimiter), b.cfg.Delimiter)
	return newBuilder(child, def, b.logger, opts)
}

// Normalize 使用当前分隔符规范化片段
func (b *Builder) Normalize(fragment any) string {
	return Normalize(fragment, b.cfg.Delimiter)
}

// Combine 使用当前分隔符拼接两个片段
func (b *Builder) Combine(x, y any) string {
	return Combine(x, y, b.cfg.Delimiter)
}

// Merge 使用当前分隔符与前缀替换 token
func (b *Builder) Merge(path string, payload Payload) string {
	return Merge(path, payload, b.cfg.Delimiter, b.cfg.TokenPrefix)
}

// Tokens 返回 basePath 中尚未替换的 token
func (b *Builder) Tokens() []string {
	return Tokens(b.basePath, b.cfg.Delimiter, b.cfg.TokenPrefix)
}

// Query 渲染查询串
func (b *Builder) Query(params any) string {
	return EncodeQuery(params)
}

// BasePath 返回规范化后的基础路径
func (b *Builder) BasePath() string { return b.basePath }

// Label 返回构造或 Sub 时给出的逻辑路径, 仅供调用方记录
func (b *Builder) Label() string { return b.cfg.Path }

// Delimiter 返回生效的分隔符
func (b *Builder) Delimiter() string { return b.cfg.Delimiter }

// TokenPrefix 返回生效的 token 前缀
func (b *Builder) TokenPrefix() string { return b.cfg.TokenPrefix }

// Config 返回配置的副本
func (b *Builder) Config() Config { return b.cfg }

// String 实现 fmt.Stringer, 等同于 BasePath
func (b *Builder) String() string { return b.basePath }
