// This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
// Copyright 2024 WJQSERVER. All rights reserved.
// All rights reserved by WJQSERVER, related rights can be exercised by the infinite-iroha organization.
package pathmaker

import (
	"unicode/utf8"

	"github.com/fenthope/reco"
)

const (
	DefaultDelimiter   = "/"
	DefaultTokenPrefix = ":"
)

// Config 是 Builder 的配置, 构造完成后不可变
type Config struct {
	Delimiter   string `json:"delimiter,omitempty" yaml:"delimiter,omitempty" mapstructure:"delimiter"`
	TokenPrefix string `json:"token_prefix,omitempty" yaml:"token_prefix,omitempty" mapstructure:"token_prefix"`
	Path        string `json:"path,omitempty" yaml:"path,omitempty" mapstructure:"path"` // 逻辑路径/标签, 内部不解释
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		Delimiter:   DefaultDelimiter,
		TokenPrefix: DefaultTokenPrefix,
	}
}

// Fallback 记录一次静默回退
type Fallback struct {
	Field string
	Given string
	Used  string
}

// Sanitize 校验配置, 非法值静默回退为默认值
// 返回修正后的配置以及发生过的回退
func (c Config) Sanitize() (Config, []Fallback) {
	return c.sanitizeAgainst(DefaultConfig())
}

// sanitizeAgainst 使用 def 中的值替换非法字段, Sub 以父级配置作为 def
func (c Config) sanitizeAgainst(def Config) (Config, []Fallback) {
	var fb []Fallback
	if c.Delimiter == "" {
		fb = append(fb, Fallback{Field: "delimiter", Given: c.Delimiter, Used: def.Delimiter})
		c.Delimiter = def.Delimiter
	}
	if utf8.RuneCountInString(c.TokenPrefix) != 1 {
		fb = append(fb, Fallback{Field: "token_prefix", Given: c.TokenPrefix, Used: def.TokenPrefix})
		c.TokenPrefix = def.TokenPrefix
	}
	return c, fb
}

// Option 修改构造中的配置
type Option func(*settings)

type settings struct {
	cfg    Config
	logger *reco.Logger
}

// WithDelimiter 设置分隔符, 空串会回退为 "/"
func WithDelimiter(d string) Option {
	return func(s *settings) { s.cfg.Delimiter = d }
}

// WithTokenPrefix 设置 token 前缀, 必须恰好一个字符, 否则回退为 ":"
func WithTokenPrefix(p string) Option {
	return func(s *settings) { s.cfg.TokenPrefix = p }
}

// WithLabel 设置标签 (即配置中的 path 字段)
func WithLabel(label string) Option {
	return func(s *settings) { s.cfg.Path = label }
}

// WithPath 是 WithLabel 的别名
func WithPath(p string) Option { return WithLabel(p) }

// WithConfig 用结构化配置覆盖分隔符与前缀, 空字段表示沿用当前值
func WithConfig(c Config) Option {
	return func(s *settings) {
		if c.Delimiter != "" {
			s.cfg.Delimiter = c.Delimiter
		}
		if c.TokenPrefix != "" {
			s.cfg.TokenPrefix = c.TokenPrefix
		}
		if c.Path != "" {
			s.cfg.Path = c.Path
		}
	}
}

// WithLogger 附加一个日志记录器, 仅用于调试输出
func WithLogger(l *reco.Logger) Option {
	return func(s *settings) { s.logger = l }
}
