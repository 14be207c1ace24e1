// This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
// Copyright 2024 WJQSERVER. All rights reserved.
// All rights reserved by WJQSERVER, related rights can be exercised by the infinite-iroha organization.

// Package sitemap loads a tree of named path builders from a JSON or YAML
// document and exposes them by dotted name.
package sitemap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fenthope/reco"

	"github.com/infinite-iroha/pathmaker"
)

var (
	ErrUnknownRoute   = errors.New("sitemap: unknown route")
	ErrDuplicateRoute = errors.New("sitemap: duplicate route")
	ErrEmptyName      = errors.New("sitemap: route name is empty")
	ErrUnknownFormat  = errors.New("sitemap: unknown format")
)

// Route describes one node of the tree. The root uses Base, children use Path.
type Route struct {
	Name        string          `json:"name" yaml:"name"`
	Base        any             `json:"base,omitempty" yaml:"base,omitempty"`
	Path        any             `json:"path,omitempty" yaml:"path,omitempty"`
	Delimiter   string          `json:"delimiter,omitempty" yaml:"delimiter,omitempty"`
	TokenPrefix string          `json:"token_prefix,omitempty" yaml:"token_prefix,omitempty"`
	Label       string          `json:"label,omitempty" yaml:"label,omitempty"`
	Sample      pathmaker.Query `json:"sample,omitempty" yaml:"sample,omitempty"`
	Routes      []Route         `json:"routes,omitempty" yaml:"routes,omitempty"`
}

type entry struct {
	name    string
	builder *pathmaker.Builder
	sample  pathmaker.Query
}

// Site is an immutable registry of builders.
type Site struct {
	root    string
	entries []entry
	index   map[string]int
}

// Option configures New.
type Option func(*options)

type options struct {
	logger  *reco.Logger
	maxSize int64
}

func newOptions(opts []Option) options {
	o := options{maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger attaches a logger that is passed down to every builder.
func WithLogger(l *reco.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMaxSize limits the document size accepted by Load. A negative n disables the limit.
func WithMaxSize(n int64) Option {
	return func(o *options) { o.maxSize = n }
}

// New builds a Site from a route tree.
func New(root Route, opts ...Option) (*Site, error) {
	o := newOptions(opts)
	if root.Name == "" {
		return nil, ErrEmptyName
	}

	base := root.Base
	if base == nil {
		base = root.Path
	}
	b := pathmaker.New(base,
		pathmaker.WithConfig(pathmaker.Config{
			Delimiter:   root.Delimiter,
			TokenPrefix: root.TokenPrefix,
		}),
		pathmaker.WithLabel(labelOf(root, root.Name)),
		pathmaker.WithLogger(o.logger),
	)

	s := &Site{root: root.Name, index: make(map[string]int)}
	if err := s.add(root.Name, b, root.Sample); err != nil {
		return nil, err
	}
	if err := s.addChildren(root.Name, b, root.Routes); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Site) addChildren(parentName string, parent *pathmaker.Builder, routes []Route) error {
	for _, r := range routes {
		if r.Name == "" {
			return fmt.Errorf("%w: child of %q", ErrEmptyName, parentName)
		}
		name := parentName + "." + r.Name

		var opts []pathmaker.Option
		if r.Delimiter != "" {
			opts = append(opts, pathmaker.WithDelimiter(r.Delimiter))
		}
		if r.TokenPrefix != "" {
			opts = append(opts, pathmaker.WithTokenPrefix(r.TokenPrefix))
		}
		opts = append(opts, pathmaker.WithLabel(labelOf(r, name)))

		b := parent.Sub(r.Path, opts...)
		if err := s.add(name, b, r.Sample); err != nil {
			return err
		}
		if err := s.addChildren(name, b, r.Routes); err != nil {
			return err
		}
	}
	return nil
}

func (s *Site) add(name string, b *pathmaker.Builder, sample pathmaker.Query) error {
	if _, ok := s.index[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateRoute, name)
	}
	s.index[name] = len(s.entries)
	s.entries = append(s.entries, entry{name: name, builder: b, sample: sample})
	return nil
}

func labelOf(r Route, name string) string {
	if r.Label != "" {
		return r.Label
	}
	return name
}

// key maps a lookup name onto the fully qualified name.
// "" and the root name address the root, other names may omit the root prefix.
func (s *Site) key(name string) string {
	switch {
	case name == "" || name == s.root:
		return s.root
	case strings.HasPrefix(name, s.root+"."):
		return name
	}
	return s.root + "." + name
}

// Lookup returns the builder registered under name.
func (s *Site) Lookup(name string) (*pathmaker.Builder, bool) {
	i, ok := s.index[s.key(name)]
	if !ok {
		return nil, false
	}
	return s.entries[i].builder, true
}

// Build resolves name and invokes its builder with args.
func (s *Site) Build(name string, args ...any) (string, error) {
	b, ok := s.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}
	return b.Build(args...), nil
}

// Sample builds name with its declared sample as the single argument.
// Routes without a sample yield their base path.
func (s *Site) Sample(name string) (string, error) {
	i, ok := s.index[s.key(name)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}
	e := s.entries[i]
	if e.sample == nil {
		return e.builder.Build(), nil
	}
	return e.builder.Build(e.sample), nil
}

// Names returns every fully qualified name in declaration order.
func (s *Site) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.name
	}
	return names
}

// Walk calls fn for every route in declaration order and stops at the first error.
func (s *Site) Walk(fn func(name string, b *pathmaker.Builder) error) error {
	for _, e := range s.entries {
		if err := fn(e.name, e.builder); err != nil {
			return err
		}
	}
	return nil
}

// Len reports the number of routes, root included.
func (s *Site) Len() int { return len(s.entries) }
