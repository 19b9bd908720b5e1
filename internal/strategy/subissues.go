// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strategy

import (
	"context"

	"github.com/ghdata-go/ghdata/internal/converters"
	"github.com/ghdata-go/ghdata/internal/entities"
	"github.com/ghdata-go/ghdata/internal/ghcontext"
	"github.com/ghdata-go/ghdata/internal/integrity"
	"github.com/ghdata-go/ghdata/internal/mediator"
	"github.com/ghdata-go/ghdata/internal/model"
	"github.com/ghdata-go/ghdata/internal/storage"
)

// SubIssueSave saves parent/child issue edges, one GraphQL sub-issues
// connection query per saved parent issue.
type SubIssueSave struct{}

func (SubIssueSave) EntityName() string     { return entities.SubIssues }
func (SubIssueSave) Dependencies() []string { return []string{entities.Issues} }
func (SubIssueSave) ShouldSkip(en entities.Enablement) bool { return !en.Enabled }

func (SubIssueSave) Read(ctx context.Context, api *mediator.Mediator, conv *converters.Registry, gctx *ghcontext.Context, owner, repo string) ([]any, error) {
	parents := gctx.SavedParents[entities.Issues]
	var out []model.SubIssue
	for _, parentNumber := range parents {
		raw, err := api.GetSubIssues(ctx, owner, repo, parentNumber)
		if err != nil {
			return nil, err
		}
		for _, r := range raw {
			v, err := conv.Convert("sub_issue", r)
			if err != nil {
				return nil, err
			}
			out = append(out, v.(model.SubIssue))
		}
	}
	return asAny(out), nil
}

func (SubIssueSave) Transform(raw []any, en entities.Enablement, gctx *ghcontext.Context) []any {
	items := fromAny[model.SubIssue](raw)
	return asAny(integrity.ReparentSubIssues(gctx, items))
}

func (SubIssueSave) Write(store storage.Port, path string, transformed []any) error {
	return store.Write(path, fromAny[model.SubIssue](transformed))
}

// SubIssueRestore recreates parent/child issue links in saved Position
// order, so sibling ordering on the target repository matches the
// source without a second reprioritize call per edge.
type SubIssueRestore struct{}

func (SubIssueRestore) EntityName() string     { return entities.SubIssues }
func (SubIssueRestore) Dependencies() []string { return []string{entities.Issues} }

func (SubIssueRestore) Read(store storage.Port, path string) ([]any, error) {
	var items []model.SubIssue
	if err := store.Read(path, &items); err != nil {
		return nil, err
	}
	return asAny(items), nil
}

func (SubIssueRestore) Transform(item any, gctx *ghcontext.Context) (any, bool) {
	e := item.(model.SubIssue)
	parent, ok := gctx.IssueNumberMap[e.ParentIssueNumber]
	if !ok {
		return nil, false
	}
	child, ok := gctx.IssueNumberMap[e.SubIssueNumber]
	if !ok {
		return nil, false
	}
	return model.SubIssue{ParentIssueNumber: parent, SubIssueNumber: child, Position: e.Position}, true
}

func (SubIssueRestore) Write(ctx context.Context, api *mediator.Mediator, gctx *ghcontext.Context, owner, repo string, request any) (any, error) {
	e := request.(model.SubIssue)
	if err := api.AddSubIssue(ctx, owner, repo, int64(e.ParentIssueNumber), int64(e.SubIssueNumber)); err != nil {
		return nil, err
	}
	return e, nil
}

func (SubIssueRestore) UpdateContext(gctx *ghcontext.Context, original, created any) {}
