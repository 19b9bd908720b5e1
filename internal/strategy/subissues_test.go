// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strategy

import (
	"testing"

	"github.com/ghdata-go/ghdata/internal/entities"
	"github.com/ghdata-go/ghdata/internal/ghcontext"
	"github.com/ghdata-go/ghdata/internal/model"
)

func TestSubIssueSaveTransformDropsOrphans(t *testing.T) {
	gctx := ghcontext.New("run-1")
	gctx.RecordSavedParents("issues", []int{1, 2})

	edges := []model.SubIssue{
		{ParentIssueNumber: 1, SubIssueNumber: 2, Position: 0},
		{ParentIssueNumber: 1, SubIssueNumber: 99, Position: 1},
	}
	got := SubIssueSave{}.Transform(asAny(edges), entities.Enablement{Enabled: true}, gctx)
	kept := fromAny[model.SubIssue](got)
	if len(kept) != 1 {
		t.Fatalf("Transform() kept = %v, want 1 edge", kept)
	}
}

func TestSubIssueRestoreTransformRemapsNumbers(t *testing.T) {
	gctx := ghcontext.New("run-1")
	gctx.MapIssue(1, 10)
	gctx.MapIssue(2, 20)

	e := model.SubIssue{ParentIssueNumber: 1, SubIssueNumber: 2, Position: 3}
	got, ok := SubIssueRestore{}.Transform(e, gctx)
	if !ok {
		t.Fatalf("Transform() ok = false, want true")
	}
	remapped := got.(model.SubIssue)
	if remapped.ParentIssueNumber != 10 || remapped.SubIssueNumber != 20 || remapped.Position != 3 {
		t.Errorf("Transform() = %+v, want {10 20 3}", remapped)
	}
}

func TestSubIssueRestoreTransformDropsWhenParentUnmapped(t *testing.T) {
	gctx := ghcontext.New("run-1")
	gctx.MapIssue(2, 20)
	e := model.SubIssue{ParentIssueNumber: 1, SubIssueNumber: 2}
	_, ok := SubIssueRestore{}.Transform(e, gctx)
	if ok {
		t.Errorf("Transform() ok = true, want false: parent issue was never restored")
	}
}
