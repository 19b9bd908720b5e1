// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gitservice

import (
	"context"
	"testing"

	"github.com/ghdata-go/ghdata/internal/ghuberrors"
)

func TestCLICloneWrapsFailureAsIOKind(t *testing.T) {
	c := &CLI{GitPath: "/nonexistent/git-binary-for-testing"}
	err := c.Clone(context.Background(), "https://example.invalid/o/r.git", t.TempDir())
	if err == nil {
		t.Fatalf("Clone() with a nonexistent git binary must error")
	}
	if ghuberrors.KindOf(err) != ghuberrors.KindIO {
		t.Errorf("Clone() error kind = %v, want KindIO", ghuberrors.KindOf(err))
	}
}

func TestCLIRestoreWrapsFailureAsIOKind(t *testing.T) {
	c := &CLI{GitPath: "/nonexistent/git-binary-for-testing"}
	err := c.Restore(context.Background(), t.TempDir(), "https://example.invalid/o/r.git")
	if err == nil {
		t.Fatalf("Restore() with a nonexistent git binary must error")
	}
	if ghuberrors.KindOf(err) != ghuberrors.KindIO {
		t.Errorf("Restore() error kind = %v, want KindIO", ghuberrors.KindOf(err))
	}
}

func TestCLIImplementsService(t *testing.T) {
	var _ Service = (*CLI)(nil)
}
