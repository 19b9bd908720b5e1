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

// PRCommentSave saves the conversation-tab comments on saved pull
// requests, coupled to the parent PR the same way CommentSave couples
// to issues.
type PRCommentSave struct{}

func (PRCommentSave) EntityName() string     { return entities.PRComments }
func (PRCommentSave) Dependencies() []string { return []string{entities.PullRequests} }
func (PRCommentSave) ShouldSkip(en entities.Enablement) bool { return !en.Enabled }

func (PRCommentSave) Read(ctx context.Context, api *mediator.Mediator, conv *converters.Registry, gctx *ghcontext.Context, owner, repo string) ([]any, error) {
	parents := gctx.SavedParents[entities.PullRequests]
	var out []model.PRComment
	for _, prNumber := range parents {
		raw, err := api.GetPullRequestComments(ctx, owner, repo, prNumber)
		if err != nil {
			return nil, err
		}
		for _, r := range raw {
			v, err := conv.Convert("pr_comment", r)
			if err != nil {
				return nil, err
			}
			out = append(out, v.(model.PRComment))
		}
	}
	return asAny(out), nil
}

func (PRCommentSave) Transform(raw []any, en entities.Enablement, gctx *ghcontext.Context) []any {
	items := fromAny[model.PRComment](raw)
	kept, dropped := integrity.FilterChildrenByParent(gctx, entities.PullRequests, items, func(c model.PRComment) int { return c.PRNumber })
	if dropped > 0 {
		ghlog.Warnf("pr_comments: dropped %d comment(s) whose parent pull request was not saved", dropped)
	}
	return asAny(kept)
}

func (PRCommentSave) Write(store storage.Port, path string, transformed []any) error {
	return store.Write(path, fromAny[model.PRComment](transformed))
}

// PRCommentRestore recreates conversation-tab comments on the target
// pull requests.
type PRCommentRestore struct{}

func (PRCommentRestore) EntityName() string     { return entities.PRComments }
func (PRCommentRestore) Dependencies() []string { return []string{entities.PullRequests} }

func (PRCommentRestore) Read(store storage.Port, path string) ([]any, error) {
	var items []model.PRComment
	if err := store.Read(path, &items); err != nil {
		return nil, err
	}
	return asAny(items), nil
}

func (PRCommentRestore) Transform(item any, gctx *ghcontext.Context) (any, bool) {
	c := item.(model.PRComment)
	newNumber, ok := gctx.PRNumberMap[c.PRNumber]
	if !ok {
		ghlog.Warnf("pr comment on pull request #%d: parent pull request was not restored; skipping", c.PRNumber)
		return nil, false
	}
	c.PRNumber = newNumber
	c.Body = integrity.SanitizeMentions(c.Body)
	if gctx.IncludeOriginalMetadata {
		c.Body = integrity.AppendFooter(c.Body, integrity.Footer{
			AuthorLogin: authorLogin(c.Author),
			CreatedAt:   c.CreatedAt,
			URL:         c.PRURL,
		})
	}
	return c, true
}

func (PRCommentRestore) Write(ctx context.Context, api *mediator.Mediator, gctx *ghcontext.Context, owner, repo string, request any) (any, error) {
	c := request.(model.PRComment)
	created, err := api.CreateComment(ctx, owner, repo, c.PRNumber, c.Body)
	if err != nil {
		return nil, err
	}
	return model.PRComment{ID: created.ID, Body: created.Body, Author: userFromRaw(created.Author), PRURL: created.IssueURL, PRNumber: created.IssueNumber, CreatedAt: created.CreatedAt}, nil
}

func (PRCommentRestore) UpdateContext(gctx *ghcontext.Context, original, created any) {}
