// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mediator

import (
	"fmt"
	"sort"
	"strings"
)

// cacheKey builds the "{method_name}:{param1}:..." cache key described in
// spec.md §4.1, with params sorted by name for a stable key regardless of
// call-site argument order.
func cacheKey(method string, params map[string]any) string {
	names := make([]string, 0, len(params))
	for k := range params {
		names = append(names, k)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(method)
	for _, name := range names {
		fmt.Fprintf(&b, ":%v", params[name])
	}
	return b.String()
}
