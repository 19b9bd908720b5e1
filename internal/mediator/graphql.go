// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mediator

import (
	"context"
	"fmt"

	"github.com/shurcooL/githubv4"

	"github.com/ghdata-go/ghdata/internal/ghlog"
)

// GetRepositoryLabels returns every label on the repository via the
// GraphQL labels connection, grounded on the cursor-loop shape of
// internal/task/milestones.go's findMilestone/FetchMilestoneIssues.
func (m *Mediator) GetRepositoryLabels(ctx context.Context, owner, repo string) ([]RawLabel, error) {
	var q struct {
		Repository struct {
			Labels struct {
				Nodes []struct {
					ID          githubv4.ID
					Name        string
					Color       string
					Description string
				}
				PageInfo pageInfo
			} `graphql:"labels(first: $pageSize, after: $labelCursor)"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}
	variables := map[string]any{
		"owner":      githubv4.String(owner),
		"name":       githubv4.String(repo),
		"pageSize":   githubv4.Int(DefaultPageSize),
		"labelCursor": (*githubv4.String)(nil),
	}

	var out []RawLabel
	err := m.withCache(ctx, "get_repository_labels", map[string]any{"owner": owner, "repo": repo}, &out, func() error {
		out = nil
		return m.paginator().Run(ctx, &q, variables, "Repository.Labels", "labelCursor", func() error {
			for _, n := range q.Repository.Labels.Nodes {
				out = append(out, RawLabel{
					ID:          fmt.Sprint(n.ID),
					Name:        n.Name,
					Color:       n.Color,
					Description: n.Description,
				})
			}
			return nil
		})
	})
	return out, err
}

// GetRepositoryMilestones returns every milestone on the repository.
func (m *Mediator) GetRepositoryMilestones(ctx context.Context, owner, repo string) ([]RawMilestone, error) {
	var q struct {
		Repository struct {
			Milestones struct {
				Nodes []struct {
					ID          githubv4.ID
					Number      int
					Title       string
					Description string
					State       string
					DueOn       *githubv4.DateTime
					CreatedAt   githubv4.DateTime
					Creator     *struct {
						Login     string
						URL       string
						AvatarURL string `graphql:"avatarUrl"`
					}
				}
				PageInfo pageInfo
			} `graphql:"milestones(first: $pageSize, after: $milestoneCursor)"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}
	variables := map[string]any{
		"owner":           githubv4.String(owner),
		"name":            githubv4.String(repo),
		"pageSize":        githubv4.Int(DefaultPageSize),
		"milestoneCursor": (*githubv4.String)(nil),
	}

	var out []RawMilestone
	err := m.withCache(ctx, "get_repository_milestones", map[string]any{"owner": owner, "repo": repo}, &out, func() error {
		out = nil
		return m.paginator().Run(ctx, &q, variables, "Repository.Milestones", "milestoneCursor", func() error {
			for _, n := range q.Repository.Milestones.Nodes {
				rm := RawMilestone{
					ID:          fmt.Sprint(n.ID),
					Number:      n.Number,
					Title:       n.Title,
					Description: n.Description,
					State:       n.State,
					CreatedAt:   n.CreatedAt.Time,
				}
				if n.DueOn != nil {
					t := n.DueOn.Time
					rm.DueOn = &t
				}
				if n.Creator != nil {
					rm.Creator = &RawUser{Login: n.Creator.Login, URL: n.Creator.URL, AvatarURL: n.Creator.AvatarURL}
				}
				out = append(out, rm)
			}
			return nil
		})
	})
	return out, err
}

// GetRepositoryIssues returns every issue on the repository, ordered by
// creation time ascending (spec.md §5).
func (m *Mediator) GetRepositoryIssues(ctx context.Context, owner, repo string) ([]RawIssue, error) {
	type issueNode struct {
		ID          githubv4.ID
		Number      int
		Title       string
		Body        string
		State       string
		StateReason string
		URL         string
		CreatedAt   githubv4.DateTime
		UpdatedAt   githubv4.DateTime
		ClosedAt    *githubv4.DateTime
		Author      *struct {
			Login string
			URL   string
		}
		Labels struct {
			Nodes []struct {
				ID          githubv4.ID
				Name        string
				Color       string
				Description string
			}
			PageInfo pageInfo
		} `graphql:"labels(first: 100)"`
		Assignees struct {
			Nodes []struct {
				Login     string
				URL       string
				AvatarURL string `graphql:"avatarUrl"`
			}
			PageInfo pageInfo
		} `graphql:"assignees(first: 100)"`
		Milestone *struct {
			Number int
			Title  string
		}
	}
	var q struct {
		Repository struct {
			Issues struct {
				Nodes    []issueNode
				PageInfo pageInfo
			} `graphql:"issues(first: $pageSize, after: $issueCursor, orderBy: {field: CREATED_AT, direction: ASC})"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}
	variables := map[string]any{
		"owner":      githubv4.String(owner),
		"name":       githubv4.String(repo),
		"pageSize":   githubv4.Int(DefaultPageSize),
		"issueCursor": (*githubv4.String)(nil),
	}

	var out []RawIssue
	err := m.withCache(ctx, "get_repository_issues", map[string]any{"owner": owner, "repo": repo}, &out, func() error {
		out = nil
		return m.paginator().Run(ctx, &q, variables, "Repository.Issues", "issueCursor", func() error {
			for _, n := range q.Repository.Issues.Nodes {
				if n.Labels.PageInfo.HasNextPage {
					ghlog.Warnf("issue #%d has more than 100 labels; only the first 100 were saved", n.Number)
				}
				if n.Assignees.PageInfo.HasNextPage {
					ghlog.Warnf("issue #%d has more than 100 assignees; only the first 100 were saved", n.Number)
				}

				ri := RawIssue{
					ID:          fmt.Sprint(n.ID),
					Number:      n.Number,
					Title:       n.Title,
					Body:        n.Body,
					State:       n.State,
					StateReason: n.StateReason,
					URL:         n.URL,
					CreatedAt:   n.CreatedAt.Time,
					UpdatedAt:   n.UpdatedAt.Time,
				}
				if n.ClosedAt != nil {
					t := n.ClosedAt.Time
					ri.ClosedAt = &t
				}
				if n.Author != nil {
					ri.Author = &RawUser{Login: n.Author.Login, URL: n.Author.URL}
				}
				for _, l := range n.Labels.Nodes {
					ri.Labels = append(ri.Labels, RawLabel{ID: fmt.Sprint(l.ID), Name: l.Name, Color: l.Color, Description: l.Description})
				}
				for _, a := range n.Assignees.Nodes {
					ri.Assignees = append(ri.Assignees, RawUser{Login: a.Login, URL: a.URL, AvatarURL: a.AvatarURL})
				}
				if n.Milestone != nil {
					ri.Milestone = &RawMilestone{Number: n.Milestone.Number, Title: n.Milestone.Title}
				}
				out = append(out, ri)
			}
			return nil
		})
	})
	return out, err
}

// GetRepositoryPullRequests returns every pull request on the repository.
func (m *Mediator) GetRepositoryPullRequests(ctx context.Context, owner, repo string) ([]RawPullRequest, error) {
	type prNode struct {
		ID         githubv4.ID
		Number     int
		Title      string
		Body       string
		State      string
		URL        string
		HeadRefName string
		BaseRefName string
		MergedAt   *githubv4.DateTime
		MergeCommit *struct {
			Oid string
		}
		CreatedAt githubv4.DateTime
		ClosedAt  *githubv4.DateTime
		Author    *struct {
			Login string
			URL   string
		}
		Labels struct {
			Nodes []struct {
				ID          githubv4.ID
				Name        string
				Color       string
				Description string
			}
			PageInfo pageInfo
		} `graphql:"labels(first: 100)"`
		Milestone *struct {
			Number int
			Title  string
		}
	}
	var q struct {
		Repository struct {
			PullRequests struct {
				Nodes    []prNode
				PageInfo pageInfo
			} `graphql:"pullRequests(first: $pageSize, after: $prCursor, orderBy: {field: CREATED_AT, direction: ASC})"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}
	variables := map[string]any{
		"owner":    githubv4.String(owner),
		"name":     githubv4.String(repo),
		"pageSize": githubv4.Int(DefaultPageSize),
		"prCursor": (*githubv4.String)(nil),
	}

	var out []RawPullRequest
	err := m.withCache(ctx, "get_repository_pull_requests", map[string]any{"owner": owner, "repo": repo}, &out, func() error {
		out = nil
		return m.paginator().Run(ctx, &q, variables, "Repository.PullRequests", "prCursor", func() error {
			for _, n := range q.Repository.PullRequests.Nodes {
				rp := RawPullRequest{
					ID:      fmt.Sprint(n.ID),
					Number:  n.Number,
					Title:   n.Title,
					Body:    n.Body,
					State:   n.State,
					URL:     n.URL,
					HeadRef: n.HeadRefName,
					BaseRef: n.BaseRefName,
					CreatedAt: n.CreatedAt.Time,
				}
				if n.ClosedAt != nil {
					t := n.ClosedAt.Time
					rp.ClosedAt = &t
				}
				if n.MergedAt != nil {
					t := n.MergedAt.Time
					rp.MergedAt = &t
				}
				if n.MergeCommit != nil {
					rp.MergeSHA = n.MergeCommit.Oid
				}
				if n.Author != nil {
					rp.Author = &RawUser{Login: n.Author.Login, URL: n.Author.URL}
				}
				for _, l := range n.Labels.Nodes {
					rp.Labels = append(rp.Labels, RawLabel{ID: fmt.Sprint(l.ID), Name: l.Name, Color: l.Color, Description: l.Description})
				}
				if n.Milestone != nil {
					rp.Milestone = &RawMilestone{Number: n.Milestone.Number, Title: n.Milestone.Title}
				}
				out = append(out, rp)
			}
			return nil
		})
	})
	return out, err
}

// GetSubIssues returns the parent/child sub-issue edges for the given
// parent issue number, ordered by position.
func (m *Mediator) GetSubIssues(ctx context.Context, owner, repo string, parentNumber int) ([]RawSubIssue, error) {
	var q struct {
		Repository struct {
			Issue struct {
				SubIssues struct {
					Nodes []struct {
						Number int
					}
					PageInfo pageInfo
				} `graphql:"subIssues(first: $pageSize, after: $subCursor)"`
			} `graphql:"issue(number: $number)"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}
	variables := map[string]any{
		"owner":     githubv4.String(owner),
		"name":      githubv4.String(repo),
		"number":    githubv4.Int(parentNumber),
		"pageSize":  githubv4.Int(DefaultPageSize),
		"subCursor": (*githubv4.String)(nil),
	}

	var out []RawSubIssue
	err := m.do(ctx, "get_sub_issues", func() error {
		out = nil
		variables["subCursor"] = (*githubv4.String)(nil)
		position := 0
		return m.paginator().Run(ctx, &q, variables, "Repository.Issue.SubIssues", "subCursor", func() error {
			for _, n := range q.Repository.Issue.SubIssues.Nodes {
				out = append(out, RawSubIssue{ParentNumber: parentNumber, ChildNumber: n.Number, Position: position})
				position++
			}
			return nil
		})
	})
	return out, err
}

type pageInfo struct {
	EndCursor   githubv4.String
	HasNextPage bool
}

func (m *Mediator) paginator() *Paginator {
	return &Paginator{Client: m.v4}
}

// withCache checks the read-result cache before running fn, and stores
// fn's populated *out on success. Write operations never call this
// (spec.md §4.1: "Write operations bypass the cache").
func (m *Mediator) withCache(ctx context.Context, method string, params map[string]any, out any, fn func() error) error {
	key := cacheKey(method, params)
	if cached, ok := m.cache.Get(key); ok {
		return assignCached(cached, out)
	}
	if err := m.do(ctx, method, fn); err != nil {
		return err
	}
	m.cache.Set(key, out)
	return nil
}

func assignCached(cached, out any) error {
	switch o := out.(type) {
	case *[]RawLabel:
		*o = *(cached.(*[]RawLabel))
	case *[]RawMilestone:
		*o = *(cached.(*[]RawMilestone))
	case *[]RawIssue:
		*o = *(cached.(*[]RawIssue))
	case *[]RawPullRequest:
		*o = *(cached.(*[]RawPullRequest))
	default:
		return fmt.Errorf("mediator cache: unsupported type %T", out)
	}
	return nil
}
