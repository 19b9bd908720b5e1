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

func TestPullRequestRestoreTransformDropsUnresolvedMilestone(t *testing.T) {
	gctx := ghcontext.New("run-1")
	pr := model.PullRequest{Number: 7, Milestone: &model.Milestone{Number: 3, Title: "v2.0"}}
	got, ok := PullRequestRestore{}.Transform(pr, gctx)
	if !ok {
		t.Fatalf("Transform() ok = false, want true")
	}
	if got.(model.PullRequest).Milestone != nil {
		t.Errorf("Milestone = %+v, want nil (never resolved this run)", got.(model.PullRequest).Milestone)
	}
}

func TestPullRequestRestoreUpdateContext(t *testing.T) {
	gctx := ghcontext.New("run-1")
	PullRequestRestore{}.UpdateContext(gctx, model.PullRequest{Number: 7}, model.PullRequest{Number: 70})
	if gctx.PRNumberMap[7] != 70 {
		t.Errorf("PRNumberMap[7] = %d, want 70", gctx.PRNumberMap[7])
	}
}

func TestPullRequestSaveTransformRecordsParentsAndFilters(t *testing.T) {
	gctx := ghcontext.New("run-1")
	items := []model.PullRequest{{Number: 1}, {Number: 2}}
	got := PullRequestSave{}.Transform(asAny(items), entities.Enablement{Enabled: true}, gctx)
	if len(got) != 2 {
		t.Fatalf("Transform() = %v, want both PRs kept with no selection", got)
	}
	if parents := gctx.SavedParents[entities.PullRequests]; len(parents) != 2 {
		t.Errorf("SavedParents[pull_requests] = %v, want 2 entries", parents)
	}
}
