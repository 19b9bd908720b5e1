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

func TestPRReviewSaveTransformRecordsSavedReviewIDs(t *testing.T) {
	gctx := ghcontext.New("run-1")
	gctx.RecordSavedParents(entities.PullRequests, []int{1})

	reviews := []model.PRReview{{ID: 100, PRNumber: 1}, {ID: 200, PRNumber: 99}}
	got := PRReviewSave{}.Transform(asAny(reviews), entities.Enablement{Enabled: true}, gctx)

	kept := fromAny[model.PRReview](got)
	if len(kept) != 1 || kept[0].ID != 100 {
		t.Fatalf("Transform() kept = %v, want only review 100 (parent pr 1 was saved)", kept)
	}
	savedReviewIDs := gctx.SavedParents[entities.PRReviews]
	if len(savedReviewIDs) != 1 || savedReviewIDs[0] != 100 {
		t.Errorf("SavedParents[pr_reviews] = %v, want [100]", savedReviewIDs)
	}
}

// TestPRReviewCommentSaveCouplesAgainstSavedReviews exercises the save-side
// coupling asymmetry: PRReviewCommentSave must key off SavedParents
// (populated by PRReviewSave), never off ReviewIDMap (which is empty
// during save).
func TestPRReviewCommentSaveCouplesAgainstSavedReviews(t *testing.T) {
	gctx := ghcontext.New("run-1")
	gctx.RecordSavedParents(entities.PRReviews, []int{100})

	comments := []model.PRReviewComment{{ID: 1, ReviewID: 100}, {ID: 2, ReviewID: 999}}
	got := PRReviewCommentSave{}.Transform(asAny(comments), entities.Enablement{Enabled: true}, gctx)

	kept := fromAny[model.PRReviewComment](got)
	if len(kept) != 1 || kept[0].ID != 1 {
		t.Fatalf("Transform() kept = %v, want only comment 1 (review 100 was saved)", kept)
	}
}

func TestPRReviewCommentRestoreTransformRemapsPRAndReview(t *testing.T) {
	gctx := ghcontext.New("run-1")
	gctx.MapPR(1, 10)
	gctx.MapReview(100, 1000)

	c := model.PRReviewComment{PRNumber: 1, ReviewID: 100, Body: "cc @octocat"}
	got, ok := PRReviewCommentRestore{}.Transform(c, gctx)
	if !ok {
		t.Fatalf("Transform() ok = false, want true")
	}
	transformed := got.(model.PRReviewComment)
	if transformed.PRNumber != 10 {
		t.Errorf("PRNumber = %d, want 10", transformed.PRNumber)
	}
	if transformed.ReviewID != 1000 {
		t.Errorf("ReviewID = %d, want 1000", transformed.ReviewID)
	}
	if transformed.Body != "cc `@octocat`" {
		t.Errorf("Body = %q, want mention sanitized", transformed.Body)
	}
}

func TestPRReviewCommentRestoreTransformDropsWhenPRNotRestored(t *testing.T) {
	gctx := ghcontext.New("run-1")
	c := model.PRReviewComment{PRNumber: 1, ReviewID: 100}
	_, ok := PRReviewCommentRestore{}.Transform(c, gctx)
	if ok {
		t.Errorf("Transform() ok = true, want false: parent pull request was never restored")
	}
}

func TestPRReviewCommentRestoreTransformDropsWhenReviewNotRestored(t *testing.T) {
	gctx := ghcontext.New("run-1")
	gctx.MapPR(1, 10)
	c := model.PRReviewComment{PRNumber: 1, ReviewID: 100}
	_, ok := PRReviewCommentRestore{}.Transform(c, gctx)
	if ok {
		t.Errorf("Transform() ok = true, want false: parent review was never restored this run")
	}
}
