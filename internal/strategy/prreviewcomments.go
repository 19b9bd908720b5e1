// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strategy

import (
	"context"

	"github.com/ghdata-go/ghdata/internal/converters"
	"github.com/ghdata-go/ghdata/internal/entities"
	"github.com/ghdata-go/ghdata/internal/ghcontext"
	"github.com/ghdata-go/ghdata/internal/ghlog"
	"github.com/ghdata-go/ghdata/internal/integrity"
	"github.com/ghdata-go/ghdata/internal/mediator"
	"github.com/ghdata-go/ghdata/internal/model"
	"github.com/ghdata-go/ghdata/internal/storage"
)

// PRReviewCommentSave saves inline review comments on saved pull
// requests, keeping only comments whose review_id names a review this
// run actually saved (spec.md §4.4's review <-> review-comment linker).
type PRReviewCommentSave struct{}

func (PRReviewCommentSave) EntityName() string     { return entities.PRReviewComments }
func (PRReviewCommentSave) Dependencies() []string { return []string{entities.PRReviews} }
func (PRReviewCommentSave) ShouldSkip(en entities.Enablement) bool { return !en.Enabled }

func (PRReviewCommentSave) Read(ctx context.Context, api *mediator.Mediator, conv *converters.Registry, gctx *ghcontext.Context, owner, repo string) ([]any, error) {
	parents := gctx.SavedParents[entities.PullRequests]
	var out []model.PRReviewComment
	for _, prNumber := range parents {
		raw, err := api.GetPullRequestReviewComments(ctx, owner, repo, prNumber)
		if err != nil {
			return nil, err
		}
		for _, r := range raw {
			v, err := conv.Convert("pr_review_comment", r)
			if err != nil {
				return nil, err
			}
			out = append(out, v.(model.PRReviewComment))
		}
	}
	return asAny(out), nil
}

func (PRReviewCommentSave) Transform(raw []any, en entities.Enablement, gctx *ghcontext.Context) []any {
	items := fromAny[model.PRReviewComment](raw)
	kept, dropped := integrity.FilterChildrenByParent(gctx, entities.PRReviews, items, func(c model.PRReviewComment) int { return int(c.ReviewID) })
	if dropped > 0 {
		ghlog.Warnf("pr_review_comments: dropped %d comment(s) whose parent review was not saved", dropped)
	}
	return asAny(kept)
}

func (PRReviewCommentSave) Write(store storage.Port, path string, transformed []any) error {
	return store.Write(path, fromAny[model.PRReviewComment](transformed))
}

// PRReviewCommentRestore recreates inline review comments. Transform
// remaps each comment's review_id onto the review created earlier in
// this restore pass and drops comments whose review was not restored.
// Write does not send review_id to GitHub: the created comment's
// ReviewID is whatever GitHub assigns, not the remapped value.
type PRReviewCommentRestore struct{}

func (PRReviewCommentRestore) EntityName() string     { return entities.PRReviewComments }
func (PRReviewCommentRestore) Dependencies() []string { return []string{entities.PRReviews} }

func (PRReviewCommentRestore) Read(store storage.Port, path string) ([]any, error) {
	var items []model.PRReviewComment
	if err := store.Read(path, &items); err != nil {
		return nil, err
	}
	return asAny(items), nil
}

func (PRReviewCommentRestore) Transform(item any, gctx *ghcontext.Context) (any, bool) {
	c := item.(model.PRReviewComment)
	newNumber, ok := gctx.PRNumberMap[c.PRNumber]
	if !ok {
		ghlog.Warnf("review comment on pull request #%d: parent pull request was not restored; skipping", c.PRNumber)
		return nil, false
	}
	c.PRNumber = newNumber

	linked := integrity.LinkReviewComments(gctx, []model.PRReviewComment{c})
	if len(linked) == 0 {
		return nil, false
	}
	c = linked[0]
	c.Body = integrity.SanitizeMentions(c.Body)
	return c, true
}

func (PRReviewCommentRestore) Write(ctx context.Context, api *mediator.Mediator, gctx *ghcontext.Context, owner, repo string, request any) (any, error) {
	c := request.(model.PRReviewComment)
	raw := mediator.RawPRReviewComment{
		Body:     c.Body,
		Path:     c.Path,
		Line:     c.Line,
		DiffHunk: c.DiffHunk,
	}
	if c.InReplyToID != 0 {
		if newID, ok := gctx.ReviewCommentIDMap[c.InReplyToID]; ok {
			raw.InReplyToID = newID
		} else {
			ghlog.Warnf("review comment: in-reply-to comment %d was not restored; creating as a top-level comment", c.InReplyToID)
		}
	}
	created, err := api.CreatePullRequestReviewComment(ctx, owner, repo, c.PRNumber, raw)
	if err != nil {
		return nil, err
	}
	return model.PRReviewComment{ID: created.ID, ReviewID: created.ReviewID, PRNumber: created.PRNumber, Body: created.Body, Path: created.Path, Line: created.Line, InReplyToID: created.InReplyToID, CreatedAt: created.CreatedAt}, nil
}

func (PRReviewCommentRestore) UpdateContext(gctx *ghcontext.Context, original, created any) {
	orig := original.(model.PRReviewComment)
	newComment := created.(model.PRReviewComment)
	gctx.MapReviewComment(orig.ID, newComment.ID)
}
