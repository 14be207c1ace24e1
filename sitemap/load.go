// This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
// Copyright 2024 WJQSERVER. All rights reserved.
// All rights reserved by WJQSERVER, related rights can be exercised by the infinite-iroha organization.
package sitemap

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/WJQSERVER-STUDIO/go-utils/iox"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"go.yaml.in/yaml/v3"
)

// Format is a document encoding understood by Load and Dump.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts a format name or a file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Load decodes a route tree from r and builds a Site from it.
// Unknown fields are ignored. Documents larger than the limit set by
// WithMaxSize (DefaultMaxSize if unset) fail with ErrTooLarge.
func Load(r io.Reader, f Format, opts ...Option) (*Site, error) {
	o := newOptions(opts)
	data, err := iox.ReadAll(newLimitReader(r, o.maxSize))
	if err != nil {
		return nil, fmt.Errorf("sitemap: read: %w", err)
	}

	var root Route
	switch f {
	case FormatJSON:
		err = json.Unmarshal(data, &root)
	case FormatYAML:
		err = yaml.Unmarshal(data, &root)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("sitemap: decode %s: %w", f, err)
	}
	return New(root, opts...)
}

// LoadFile picks the format from the file extension.
func LoadFile(path string, opts ...Option) (*Site, error) {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	s, err := Load(file, f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Dump writes an ordered name -> base path listing.
func (s *Site) Dump(w io.Writer, f Format) error {
	switch f {
	case FormatJSON:
		var buf bytes.Buffer
		enc := jsontext.NewEncoder(&buf, jsontext.WithIndent("  "))
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for _, e := range s.entries {
			if err := enc.WriteToken(jsontext.String(e.name)); err != nil {
				return err
			}
			if err := enc.WriteToken(jsontext.String(e.builder.BasePath())); err != nil {
				return err
			}
		}
		if err := enc.WriteToken(jsontext.EndObject); err != nil {
			return err
		}
		_, err := iox.Copy(w, &buf)
		return err
	case FormatYAML:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, e := range s.entries {
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.name},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.builder.BasePath()},
			)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(node); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}
