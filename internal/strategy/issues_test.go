// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strategy

import (
	"testing"

	"github.com/ghdata-go/ghdata/internal/entities"
	"github.com/ghdata-go/ghdata/internal/ghcontext"
	"github.com/ghdata-go/ghdata/internal/model"
	"github.com/ghdata-go/ghdata/internal/numberspec"
)

func TestIssueSaveTransformSelectiveFiltering(t *testing.T) {
	gctx := ghcontext.New("run-1")
	items := []model.Issue{{Number: 1}, {Number: 2}, {Number: 3}}
	raw := asAny(items)

	selected, err := numberspec.Parse("1,3")
	if err != nil {
		t.Fatalf("numberspec.Parse() error = %v", err)
	}
	en := entities.Enablement{Enabled: true, Selected: selected}
	got := IssueSave{}.Transform(raw, en, gctx)

	kept := fromAny[model.Issue](got)
	if len(kept) != 2 || kept[0].Number != 1 || kept[1].Number != 3 {
		t.Fatalf("Transform() kept = %v, want issues 1 and 3", kept)
	}
	if diff := gctx.SavedParents[entities.Issues]; len(diff) != 2 || diff[0] != 1 || diff[1] != 3 {
		t.Errorf("SavedParents[issues] = %v, want [1 3]", diff)
	}
}

func TestIssueSaveTransformNoSelectionKeepsAll(t *testing.T) {
	gctx := ghcontext.New("run-1")
	items := []model.Issue{{Number: 1}, {Number: 2}}
	got := IssueSave{}.Transform(asAny(items), entities.Enablement{Enabled: true}, gctx)
	if len(got) != 2 {
		t.Fatalf("Transform() = %v, want both issues kept when no selection is set", got)
	}
}

func TestIssueRestoreTransformSanitizesAndDropsMissingMilestone(t *testing.T) {
	gctx := ghcontext.New("run-1")
	issue := model.Issue{
		Number:    5,
		Body:      "cc @octocat",
		Milestone: &model.Milestone{Number: 2, Title: "v1.0"},
	}
	got, ok := IssueRestore{}.Transform(issue, gctx)
	if !ok {
		t.Fatalf("Transform() ok = false, want true")
	}
	transformed := got.(model.Issue)
	if transformed.Body != "cc `@octocat`" {
		t.Errorf("Body = %q, want mention sanitized", transformed.Body)
	}
	if transformed.Milestone != nil {
		t.Errorf("Milestone = %+v, want nil since it was never mapped this run", transformed.Milestone)
	}
}

func TestIssueRestoreTransformResolvesMappedMilestone(t *testing.T) {
	gctx := ghcontext.New("run-1")
	gctx.MapMilestone(2, 20)
	issue := model.Issue{Number: 5, Milestone: &model.Milestone{Number: 2, Title: "v1.0"}}
	got, ok := IssueRestore{}.Transform(issue, gctx)
	if !ok {
		t.Fatalf("Transform() ok = false, want true")
	}
	transformed := got.(model.Issue)
	if transformed.Milestone == nil || transformed.Milestone.Number != 20 {
		t.Errorf("Milestone = %+v, want Number 20", transformed.Milestone)
	}
}

func TestIssueRestoreUpdateContext(t *testing.T) {
	gctx := ghcontext.New("run-1")
	IssueRestore{}.UpdateContext(gctx, model.Issue{Number: 5}, model.Issue{Number: 50})
	if gctx.IssueNumberMap[5] != 50 {
		t.Errorf("IssueNumberMap[5] = %d, want 50", gctx.IssueNumberMap[5])
	}
}
