// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrity

import (
	"github.com/ghdata-go/ghdata/internal/ghcontext"
	"github.com/ghdata-go/ghdata/internal/ghlog"
	"github.com/ghdata-go/ghdata/internal/model"
)

// FilterChildrenByParent keeps only the children whose parent number was
// among the parents saved this run under parentEntity (spec.md §4.4's
// parent-child coupling mixin), reporting how many were dropped.
// numberOf extracts the parent number a given child references.
func FilterChildrenByParent[T any](ctx *ghcontext.Context, parentEntity string, children []T, numberOf func(T) int) ([]T, int) {
	var kept []T
	dropped := 0
	for _, c := range children {
		if ctx.HasSavedParent(parentEntity, numberOf(c)) {
			kept = append(kept, c)
		} else {
			dropped++
		}
	}
	return kept, dropped
}

// ReparentSubIssues drops sub-issue edges whose parent or child issue is
// absent from the set of issue numbers saved/restored this run, per
// spec.md §3's invariant "every Sub-issue edge references issues in the
// snapshot; orphans are reported and skipped."
func ReparentSubIssues(ctx *ghcontext.Context, edges []model.SubIssue) []model.SubIssue {
	var kept []model.SubIssue
	dropped := 0
	for _, e := range edges {
		if ctx.HasSavedParent("issues", e.ParentIssueNumber) && ctx.HasSavedParent("issues", e.SubIssueNumber) {
			kept = append(kept, e)
		} else {
			dropped++
		}
	}
	if dropped > 0 {
		ghlog.Warnf("sub_issues: dropped %d edge(s) referencing an issue outside the snapshot", dropped)
	}
	return kept
}

// LinkReviewComments maps each review comment's ReviewID through the
// Context's ReviewIDMap (old -> new) during restore, dropping comments
// whose review was not created this run, per spec.md §3's invariant
// "PRReviewComment.review_id must map to a PRReview in the same
// snapshot."
func LinkReviewComments(ctx *ghcontext.Context, comments []model.PRReviewComment) []model.PRReviewComment {
	var kept []model.PRReviewComment
	dropped := 0
	for _, c := range comments {
		newID, ok := ctx.ReviewIDMap[c.ReviewID]
		if !ok {
			dropped++
			continue
		}
		c.ReviewID = newID
		kept = append(kept, c)
	}
	if dropped > 0 {
		ghlog.Warnf("pr_review_comments: dropped %d comment(s) whose review was not restored", dropped)
	}
	return kept
}
