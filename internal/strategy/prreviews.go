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

// PRReviewSave saves reviews submitted on saved pull requests.
type PRReviewSave struct{}

func (PRReviewSave) EntityName() string     { return entities.PRReviews }
func (PRReviewSave) Dependencies() []string { return []string{entities.PullRequests} }
func (PRReviewSave) ShouldSkip(en entities.Enablement) bool { return !en.Enabled }

func (PRReviewSave) Read(ctx context.Context, api *mediator.Mediator, conv *converters.Registry, gctx *ghcontext.Context, owner, repo string) ([]any, error) {
	parents := gctx.SavedParents[entities.PullRequests]
	var out []model.PRReview
	for _, prNumber := range parents {
		raw, err := api.GetPullRequestReviews(ctx, owner, repo, prNumber)
		if err != nil {
			return nil, err
		}
		for _, r := range raw {
			v, err := conv.Convert("pr_review", r)
			if err != nil {
				return nil, err
			}
			out = append(out, v.(model.PRReview))
		}
	}
	return asAny(out), nil
}

func (PRReviewSave) Transform(raw []any, en entities.Enablement, gctx *ghcontext.Context) []any {
	items := fromAny[model.PRReview](raw)
	kept, dropped := integrity.FilterChildrenByParent(gctx, entities.PullRequests, items, func(r model.PRReview) int { return r.PRNumber })
	if dropped > 0 {
		ghlog.Warnf("pr_reviews: dropped %d review(s) whose parent pull request was not saved", dropped)
	}

	ids := make([]int, len(kept))
	for i, r := range kept {
		ids[i] = int(r.ID)
	}
	gctx.RecordSavedParents(entities.PRReviews, ids)
	return asAny(kept)
}

func (PRReviewSave) Write(store storage.Port, path string, transformed []any) error {
	return store.Write(path, fromAny[model.PRReview](transformed))
}

// PRReviewRestore recreates pull request reviews.
type PRReviewRestore struct{}

func (PRReviewRestore) EntityName() string     { return entities.PRReviews }
func (PRReviewRestore) Dependencies() []string { return []string{entities.PullRequests} }

func (PRReviewRestore) Read(store storage.Port, path string) ([]any, error) {
	var items []model.PRReview
	if err := store.Read(path, &items); err != nil {
		return nil, err
	}
	return asAny(items), nil
}

func (PRReviewRestore) Transform(item any, gctx *ghcontext.Context) (any, bool) {
	r := item.(model.PRReview)
	newNumber, ok := gctx.PRNumberMap[r.PRNumber]
	if !ok {
		ghlog.Warnf("review on pull request #%d: parent pull request was not restored; skipping", r.PRNumber)
		return nil, false
	}
	r.PRNumber = newNumber
	r.Body = integrity.SanitizeMentions(r.Body)
	return r, true
}

func (PRReviewRestore) Write(ctx context.Context, api *mediator.Mediator, gctx *ghcontext.Context, owner, repo string, request any) (any, error) {
	r := request.(model.PRReview)
	created, err := api.CreatePullRequestReview(ctx, owner, repo, r.PRNumber, mediator.RawPRReview{Body: r.Body, State: r.State})
	if err != nil {
		return nil, err
	}
	return model.PRReview{ID: created.ID, PRNumber: created.PRNumber, State: r.State, Body: created.Body, SubmittedAt: r.SubmittedAt}, nil
}

func (PRReviewRestore) UpdateContext(gctx *ghcontext.Context, original, created any) {
	orig := original.(model.PRReview)
	newReview := created.(model.PRReview)
	gctx.MapReview(orig.ID, newReview.ID)
}
