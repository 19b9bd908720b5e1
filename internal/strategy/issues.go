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

// IssueSave saves repository issues, honoring the selective-filtering
// mixin (spec.md §4.4): a selection-set enablement keeps only the
// requested issue numbers.
type IssueSave struct{}

func (IssueSave) EntityName() string     { return entities.Issues }
func (IssueSave) Dependencies() []string { return []string{entities.Labels, entities.Milestones} }
func (IssueSave) ShouldSkip(en entities.Enablement) bool { return !en.Enabled }

func (IssueSave) Read(ctx context.Context, api *mediator.Mediator, conv *converters.Registry, gctx *ghcontext.Context, owner, repo string) ([]any, error) {
	raw, err := api.GetRepositoryIssues(ctx, owner, repo)
	if err != nil {
		return nil, err
	}
	var out []model.Issue
	for _, r := range raw {
		v, err := conv.Convert("issue", r)
		if err != nil {
			return nil, err
		}
		out = append(out, v.(model.Issue))
	}
	return asAny(out), nil
}

func (IssueSave) Transform(raw []any, en entities.Enablement, gctx *ghcontext.Context) []any {
	items := fromAny[model.Issue](raw)
	items = selectiveFilter(items, en, func(i model.Issue) int { return i.Number })

	numbers := make([]int, len(items))
	for i, it := range items {
		numbers[i] = it.Number
	}
	gctx.RecordSavedParents(entities.Issues, numbers)
	return asAny(items)
}

func (IssueSave) Write(store storage.Port, path string, transformed []any) error {
	return store.Write(path, fromAny[model.Issue](transformed))
}

// IssueRestore recreates issues on the target repository, implementing
// the Issue restore state machine of spec.md §4.4:
// pending -> created -> (labeled) -> (commented) -> (subissued) -> (closed?).
// Labels are attached at creation time (create_issue accepts a label
// list); closure happens as a separate write after the number mapping is
// known.
type IssueRestore struct{}

func (IssueRestore) EntityName() string     { return entities.Issues }
func (IssueRestore) Dependencies() []string { return []string{entities.Labels, entities.Milestones} }

func (IssueRestore) Read(store storage.Port, path string) ([]any, error) {
	var items []model.Issue
	if err := store.Read(path, &items); err != nil {
		return nil, err
	}
	return asAny(items), nil
}

func (IssueRestore) Transform(item any, gctx *ghcontext.Context) (any, bool) {
	issue := item.(model.Issue)
	issue.Body = integrity.SanitizeMentions(issue.Body)
	if gctx.IncludeOriginalMetadata {
		issue.Body = integrity.AppendFooter(issue.Body, integrity.Footer{
			AuthorLogin: authorLogin(issue.Author),
			CreatedAt:   issue.CreatedAt,
			UpdatedAt:   issue.UpdatedAt,
			URL:         issue.URL,
		})
	}
	if issue.Milestone != nil && issue.Milestone.Number != 0 {
		if newNum, ok := gctx.ResolveMilestone(issue.Milestone); ok {
			issue.Milestone = &model.Milestone{Number: newNum}
		} else {
			ghlog.Warnf("issue #%d: milestone %q was not restored; dropping assignment", issue.Number, issue.Milestone.Title)
			issue.Milestone = nil
		}
	}
	return issue, true
}

func (IssueRestore) Write(ctx context.Context, api *mediator.Mediator, gctx *ghcontext.Context, owner, repo string, request any) (any, error) {
	issue := request.(model.Issue)
	created, err := api.CreateIssue(ctx, owner, repo, rawIssueFromModel(issue))
	if err != nil {
		return nil, err
	}

	result := issueFromRaw(created)
	if issue.State == "closed" {
		if err := api.CloseIssue(ctx, owner, repo, result.Number, issue.StateReason); err != nil {
			return nil, err
		}
		result.State = "closed"
		result.StateReason = issue.StateReason
	}
	return result, nil
}

func (IssueRestore) UpdateContext(gctx *ghcontext.Context, original, created any) {
	orig := original.(model.Issue)
	newIssue := created.(model.Issue)
	gctx.MapIssue(orig.Number, newIssue.Number)
}

func authorLogin(u *model.User) string {
	if u == nil {
		return ""
	}
	return u.Login
}

func rawIssueFromModel(issue model.Issue) mediator.RawIssue {
	ri := mediator.RawIssue{Title: issue.Title, Body: issue.Body}
	for _, l := range issue.Labels {
		ri.Labels = append(ri.Labels, mediator.RawLabel{Name: l.Name})
	}
	for _, a := range issue.Assignees {
		ri.Assignees = append(ri.Assignees, mediator.RawUser{Login: a.Login})
	}
	if issue.Milestone != nil {
		ri.Milestone = &mediator.RawMilestone{Number: issue.Milestone.Number}
	}
	return ri
}

func issueFromRaw(ri mediator.RawIssue) model.Issue {
	issue := model.Issue{
		ID: ri.ID, Number: ri.Number, Title: ri.Title, Body: ri.Body,
		State: ri.State, StateReason: ri.StateReason, URL: ri.URL,
		CreatedAt: ri.CreatedAt, UpdatedAt: ri.UpdatedAt, ClosedAt: ri.ClosedAt,
	}
	for _, l := range ri.Labels {
		issue.Labels = append(issue.Labels, model.Label{ID: l.ID, Name: l.Name, Color: l.Color, Description: l.Description})
	}
	for _, a := range ri.Assignees {
		issue.Assignees = append(issue.Assignees, model.User{Login: a.Login, ID: a.ID, HTMLURL: a.URL, AvatarURL: a.AvatarURL})
	}
	return issue
}
