// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache provides the Mediator's pluggable read-result cache
// (spec.md §4.1). It is distinct from the HTTP-transport-level
// conditional-request cache (gregjones/httpcache) the Mediator also
// installs: this cache memoizes decoded results keyed by
// "{method_name}:{param1}:..." so repeated calls inside one run skip
// re-decoding even when the transport revalidates with a 304.
package cache

import "sync"

// Cache is the contract the Mediator reads and write-bypasses against.
type Cache interface {
	Get(key string) (value any, ok bool)
	Set(key string, value any)
}

// Memory is a trivially goroutine-safe in-memory Cache. The run is
// sequential (spec.md §5) so the mutex is a defensive no-op in practice,
// not a concurrency requirement.
type Memory struct {
	mu sync.Mutex
	m  map[string]any
}

// NewMemory returns an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{m: map[string]any{}}
}

func (c *Memory) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.m[key]
	return v, ok
}

func (c *Memory) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = value
}

// None is a Cache that never stores anything — "running without a cache
// is a supported mode" (spec.md §9).
type None struct{}

func (None) Get(string) (any, bool) { return nil, false }
func (None) Set(string, any)        {}
