// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strategy

import "github.com/ghdata-go/ghdata/internal/ghlog"

func warnMissingNumber(n int) {
	ghlog.Warnf("requested number %d was not found among the saved entities", n)
}

// asAny converts a typed slice into a []any, the common currency the
// SaveStrategy/RestoreStrategy interfaces trade in so one Registry can
// hold heterogeneous entity kinds.
func asAny[T any](items []T) []any {
	out := make([]any, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

// fromAny converts a []any back into a typed slice, skipping any
// element whose dynamic type doesn't match (defensive; every producer in
// this package only ever puts one concrete type into a given slice).
func fromAny[T any](items []any) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if v, ok := it.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
