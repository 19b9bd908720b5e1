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

// PullRequestSave saves repository pull requests, honoring the
// selective-filtering mixin like IssueSave.
type PullRequestSave struct{}

func (PullRequestSave) EntityName() string     { return entities.PullRequests }
func (PullRequestSave) Dependencies() []string { return []string{entities.Labels, entities.Milestones} }
func (PullRequestSave) ShouldSkip(en entities.Enablement) bool { return !en.Enabled }

func (PullRequestSave) Read(ctx context.Context, api *mediator.Mediator, conv *converters.Registry, gctx *ghcontext.Context, owner, repo string) ([]any, error) {
	raw, err := api.GetRepositoryPullRequests(ctx, owner, repo)
	if err != nil {
		return nil, err
	}
	var out []model.PullRequest
	for _, r := range raw {
		v, err := conv.Convert("pull_request", r)
		if err != nil {
			return nil, err
		}
		out = append(out, v.(model.PullRequest))
	}
	return asAny(out), nil
}

func (PullRequestSave) Transform(raw []any, en entities.Enablement, gctx *ghcontext.Context) []any {
	items := fromAny[model.PullRequest](raw)
	items = selectiveFilter(items, en, func(p model.PullRequest) int { return p.Number })

	numbers := make([]int, len(items))
	for i, it := range items {
		numbers[i] = it.Number
	}
	gctx.RecordSavedParents(entities.PullRequests, numbers)
	return asAny(items)
}

func (PullRequestSave) Write(store storage.Port, path string, transformed []any) error {
	return store.Write(path, fromAny[model.PullRequest](transformed))
}

// PullRequestRestore recreates pull requests on the target repository:
// Write opens each one from its saved HeadRef into its BaseRef, then
// attaches its labels and milestone. Write does not close or merge the
// created pull request, and a pull request whose head ref does not exist
// on the target fails to create; it is not recreated as a plain issue.
type PullRequestRestore struct{}

func (PullRequestRestore) EntityName() string     { return entities.PullRequests }
func (PullRequestRestore) Dependencies() []string { return []string{entities.Labels, entities.Milestones} }

func (PullRequestRestore) Read(store storage.Port, path string) ([]any, error) {
	var items []model.PullRequest
	if err := store.Read(path, &items); err != nil {
		return nil, err
	}
	return asAny(items), nil
}

func (PullRequestRestore) Transform(item any, gctx *ghcontext.Context) (any, bool) {
	pr := item.(model.PullRequest)
	pr.Body = integrity.SanitizeMentions(pr.Body)
	if gctx.IncludeOriginalMetadata {
		pr.Body = integrity.AppendFooter(pr.Body, integrity.Footer{
			AuthorLogin: authorLogin(pr.Author),
			CreatedAt:   pr.CreatedAt,
			URL:         pr.URL,
		})
	}
	if pr.Milestone != nil && pr.Milestone.Number != 0 {
		if newNum, ok := gctx.ResolveMilestone(pr.Milestone); ok {
			pr.Milestone = &model.Milestone{Number: newNum}
		} else {
			ghlog.Warnf("pull request #%d: milestone %q was not restored; dropping assignment", pr.Number, pr.Milestone.Title)
			pr.Milestone = nil
		}
	}
	return pr, true
}

func (PullRequestRestore) Write(ctx context.Context, api *mediator.Mediator, gctx *ghcontext.Context, owner, repo string, request any) (any, error) {
	pr := request.(model.PullRequest)
	raw := mediator.RawPullRequest{Title: pr.Title, Body: pr.Body, HeadRef: pr.HeadRef, BaseRef: pr.BaseRef}
	for _, l := range pr.Labels {
		raw.Labels = append(raw.Labels, mediator.RawLabel{Name: l.Name})
	}
	if pr.Milestone != nil {
		raw.Milestone = &mediator.RawMilestone{Number: pr.Milestone.Number}
	}
	created, err := api.CreatePullRequest(ctx, owner, repo, raw)
	if err != nil {
		return nil, err
	}

	var labelNames []string
	for _, l := range pr.Labels {
		labelNames = append(labelNames, l.Name)
	}
	var milestoneNumber *int
	if pr.Milestone != nil {
		milestoneNumber = &pr.Milestone.Number
	}
	if err := api.UpdatePullRequestLabelsAndMilestone(ctx, owner, repo, created.Number, labelNames, milestoneNumber); err != nil {
		return nil, err
	}

	result := model.PullRequest{ID: created.ID, Number: created.Number, Title: created.Title, Body: created.Body, State: created.State, HeadRef: created.HeadRef, BaseRef: created.BaseRef, Labels: pr.Labels, Milestone: pr.Milestone, CreatedAt: created.CreatedAt, URL: created.URL}
	return result, nil
}

func (PullRequestRestore) UpdateContext(gctx *ghcontext.Context, original, created any) {
	orig := original.(model.PullRequest)
	newPR := created.(model.PullRequest)
	gctx.MapPR(orig.Number, newPR.Number)
}
