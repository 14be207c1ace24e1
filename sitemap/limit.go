// This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
// Copyright 2024 WJQSERVER. All rights reserved.
// All rights reserved by WJQSERVER, related rights can be exercised by the infinite-iroha organization.
package sitemap

import (
	"errors"
	"io"
)

// DefaultMaxSize caps the size of a sitemap document read by Load.
const DefaultMaxSize int64 = 4 << 20

// ErrTooLarge is returned when a document exceeds the configured size.
var ErrTooLarge = errors.New("sitemap: document too large")

// limitReader reads at most n bytes and fails with ErrTooLarge after that.
// Unlike io.LimitReader it reports the overflow instead of a silent EOF.
type limitReader struct {
	r    io.Reader
	n    int64
	read int64
}

func newLimitReader(r io.Reader, n int64) io.Reader {
	if n < 0 {
		return r
	}
	return &limitReader{r: r, n: n}
}

func (l *limitReader) Read(p []byte) (int, error) {
	if l.read > l.n {
		return 0, ErrTooLarge
	}
	// one extra byte tells a document of exactly n bytes from a longer one
	remaining := l.n - l.read + 1
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}
	n, err := l.r.Read(p)
	l.read += int64(n)
	if l.read > l.n {
		return n, ErrTooLarge
	}
	return n, err
}
