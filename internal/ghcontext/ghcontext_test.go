// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ghcontext

import (
	"testing"

	"github.com/ghdata-go/ghdata/internal/model"
)

func TestMapReviewComment(t *testing.T) {
	c := New("run-1")
	c.MapReviewComment(1, 100)
	if c.ReviewCommentIDMap[1] != 100 {
		t.Errorf("ReviewCommentIDMap[1] = %d, want 100", c.ReviewCommentIDMap[1])
	}
}

func TestResolveMilestoneUnresolved(t *testing.T) {
	c := New("run-1")
	if n, ok := c.ResolveMilestone(&model.Milestone{Number: 1}); ok || n != 0 {
		t.Errorf("ResolveMilestone() on an unmapped milestone must report (0, false), got (%d, %v)", n, ok)
	}
}

func TestResolveMilestoneMapped(t *testing.T) {
	c := New("run-1")
	c.MapMilestone(1, 10)
	n, ok := c.ResolveMilestone(&model.Milestone{Number: 1})
	if !ok || n != 10 {
		t.Errorf("ResolveMilestone() = (%d, %v), want (10, true)", n, ok)
	}
}
