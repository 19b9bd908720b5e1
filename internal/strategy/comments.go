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

// CommentSave saves issue comments, implementing the parent-child
// coupling mixin (spec.md §4.4) against the issue numbers saved earlier
// in this pass.
type CommentSave struct{}

func (CommentSave) EntityName() string     { return entities.Comments }
func (CommentSave) Dependencies() []string { return []string{entities.Issues} }
func (CommentSave) ShouldSkip(en entities.Enablement) bool { return !en.Enabled }

func (CommentSave) Read(ctx context.Context, api *mediator.Mediator, conv *converters.Registry, gctx *ghcontext.Context, owner, repo string) ([]any, error) {
	parents := gctx.SavedParents[entities.Issues]
	var out []model.Comment
	for _, issueNumber := range parents {
		raw, err := api.GetIssueComments(ctx, owner, repo, issueNumber)
		if err != nil {
			return nil, err
		}
		for _, r := range raw {
			v, err := conv.Convert("comment", r)
			if err != nil {
				return nil, err
			}
			out = append(out, v.(model.Comment))
		}
	}
	return asAny(out), nil
}

func (CommentSave) Transform(raw []any, en entities.Enablement, gctx *ghcontext.Context) []any {
	items := fromAny[model.Comment](raw)
	if len(gctx.SavedParents[entities.Issues]) == 0 {
		ghlog.Warnf("comments: no parent issues were saved this run; dropping all %d comment(s)", len(items))
		return nil
	}
	kept, dropped := integrity.FilterChildrenByParent(gctx, entities.Issues, items, func(c model.Comment) int { return c.IssueNumber })
	if dropped > 0 {
		ghlog.Warnf("comments: dropped %d comment(s) whose parent issue was not saved", dropped)
	}
	return asAny(kept)
}

func (CommentSave) Write(store storage.Port, path string, transformed []any) error {
	return store.Write(path, fromAny[model.Comment](transformed))
}

// CommentRestore recreates issue comments on the target repository.
type CommentRestore struct{}

func (CommentRestore) EntityName() string     { return entities.Comments }
func (CommentRestore) Dependencies() []string { return []string{entities.Issues} }

func (CommentRestore) Read(store storage.Port, path string) ([]any, error) {
	var items []model.Comment
	if err := store.Read(path, &items); err != nil {
		return nil, err
	}
	return asAny(items), nil
}

func (CommentRestore) Transform(item any, gctx *ghcontext.Context) (any, bool) {
	c := item.(model.Comment)
	newNumber, ok := gctx.IssueNumberMap[c.IssueNumber]
	if !ok {
		ghlog.Warnf("comment on issue #%d: parent issue was not restored; skipping", c.IssueNumber)
		return nil, false
	}
	c.IssueNumber = newNumber
	c.Body = integrity.SanitizeMentions(c.Body)
	if gctx.IncludeOriginalMetadata {
		c.Body = integrity.AppendFooter(c.Body, integrity.Footer{
			AuthorLogin: authorLogin(c.Author),
			CreatedAt:   c.CreatedAt,
			UpdatedAt:   c.UpdatedAt,
			URL:         c.IssueURL,
		})
	}
	return c, true
}

func (CommentRestore) Write(ctx context.Context, api *mediator.Mediator, gctx *ghcontext.Context, owner, repo string, request any) (any, error) {
	c := request.(model.Comment)
	created, err := api.CreateComment(ctx, owner, repo, c.IssueNumber, c.Body)
	if err != nil {
		return nil, err
	}
	return model.Comment{ID: created.ID, Body: created.Body, Author: userFromRaw(created.Author), IssueURL: created.IssueURL, IssueNumber: created.IssueNumber, CreatedAt: created.CreatedAt, UpdatedAt: created.UpdatedAt}, nil
}

func (CommentRestore) UpdateContext(gctx *ghcontext.Context, original, created any) {}

func userFromRaw(ru *mediator.RawUser) *model.User {
	if ru == nil {
		return nil
	}
	return &model.User{Login: ru.Login, ID: ru.ID, HTMLURL: ru.URL, AvatarURL: ru.AvatarURL}
}
