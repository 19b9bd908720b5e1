// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mediator

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/go-github/v74/github"
)

// This file holds the Mediator's REST-backed methods: every mutation
// (spec.md §4.1 — "write operations always go through REST v3") plus the
// reads that are inherently scoped to one parent rather than
// repository-wide, grounded on the REST pagination-loop idiom in
// nickmisasi-mattermost-plugin-cursor/server/ghclient/client.go.

// GetIssueComments returns every comment on the given issue.
func (m *Mediator) GetIssueComments(ctx context.Context, owner, repo string, issueNumber int) ([]RawComment, error) {
	var out []RawComment
	opt := &github.IssueListCommentsOptions{ListOptions: github.ListOptions{PerPage: DefaultPageSize}}
	err := m.do(ctx, "get_issue_comments", func() error {
		out = nil
		for {
			comments, resp, err := m.v3.Issues.ListComments(ctx, owner, repo, issueNumber, opt)
			if err != nil {
				return fmt.Errorf("list comments for issue #%d: %w", issueNumber, err)
			}
			probeRateLimit(resp)
			for _, c := range comments {
				out = append(out, RawComment{
					ID:          fmt.Sprint(c.GetID()),
					Body:        c.GetBody(),
					Author:      userFromREST(c.GetUser()),
					IssueNumber: issueNumber,
					IssueURL:    c.GetHTMLURL(),
					CreatedAt:   c.GetCreatedAt().Time,
					UpdatedAt:   c.GetUpdatedAt().Time,
				})
			}
			if resp.NextPage == 0 {
				return nil
			}
			opt.Page = resp.NextPage
		}
	})
	return out, err
}

// GetPullRequestComments returns every issue-style (conversation) comment
// on the given pull request.
func (m *Mediator) GetPullRequestComments(ctx context.Context, owner, repo string, prNumber int) ([]RawPRComment, error) {
	var out []RawPRComment
	opt := &github.IssueListCommentsOptions{ListOptions: github.ListOptions{PerPage: DefaultPageSize}}
	err := m.do(ctx, "get_pull_request_comments", func() error {
		out = nil
		for {
			comments, resp, err := m.v3.Issues.ListComments(ctx, owner, repo, prNumber, opt)
			if err != nil {
				return fmt.Errorf("list comments for pr #%d: %w", prNumber, err)
			}
			probeRateLimit(resp)
			for _, c := range comments {
				out = append(out, RawPRComment{
					ID:        fmt.Sprint(c.GetID()),
					Body:      c.GetBody(),
					Author:    userFromREST(c.GetUser()),
					PRNumber:  prNumber,
					PRURL:     c.GetHTMLURL(),
					CreatedAt: c.GetCreatedAt().Time,
				})
			}
			if resp.NextPage == 0 {
				return nil
			}
			opt.Page = resp.NextPage
		}
	})
	return out, err
}

// GetPullRequestReviews returns every review submitted on the given pull
// request.
func (m *Mediator) GetPullRequestReviews(ctx context.Context, owner, repo string, prNumber int) ([]RawPRReview, error) {
	var out []RawPRReview
	opt := &github.ListOptions{PerPage: DefaultPageSize}
	err := m.do(ctx, "get_pull_request_reviews", func() error {
		out = nil
		for {
			reviews, resp, err := m.v3.PullRequests.ListReviews(ctx, owner, repo, prNumber, opt)
			if err != nil {
				return fmt.Errorf("list reviews for pr #%d: %w", prNumber, err)
			}
			probeRateLimit(resp)
			for _, r := range reviews {
				out = append(out, RawPRReview{
					ID:          r.GetID(),
					PRNumber:    prNumber,
					Author:      userFromREST(r.GetUser()),
					State:       r.GetState(),
					Body:        r.GetBody(),
					SubmittedAt: r.GetSubmittedAt().Time,
				})
			}
			if resp.NextPage == 0 {
				return nil
			}
			opt.Page = resp.NextPage
		}
	})
	return out, err
}

// GetPullRequestReviewComments returns every inline review comment on the
// given pull request, across all of its reviews.
func (m *Mediator) GetPullRequestReviewComments(ctx context.Context, owner, repo string, prNumber int) ([]RawPRReviewComment, error) {
	var out []RawPRReviewComment
	opt := &github.PullRequestListCommentsOptions{ListOptions: github.ListOptions{PerPage: DefaultPageSize}}
	err := m.do(ctx, "get_pull_request_review_comments", func() error {
		out = nil
		for {
			comments, resp, err := m.v3.PullRequests.ListComments(ctx, owner, repo, prNumber, opt)
			if err != nil {
				return fmt.Errorf("list review comments for pr #%d: %w", prNumber, err)
			}
			probeRateLimit(resp)
			for _, c := range comments {
				out = append(out, RawPRReviewComment{
					ID:          c.GetID(),
					ReviewID:    c.GetPullRequestReviewID(),
					PRNumber:    prNumber,
					Body:        c.GetBody(),
					Path:        c.GetPath(),
					Line:        c.GetLine(),
					DiffHunk:    c.GetDiffHunk(),
					InReplyToID: c.GetInReplyTo(),
					Author:      userFromREST(c.GetUser()),
					CreatedAt:   c.GetCreatedAt().Time,
				})
			}
			if resp.NextPage == 0 {
				return nil
			}
			opt.Page = resp.NextPage
		}
	})
	return out, err
}

// GetReleases returns every release on the repository, including assets.
func (m *Mediator) GetReleases(ctx context.Context, owner, repo string) ([]RawRelease, error) {
	var out []RawRelease
	opt := &github.ListOptions{PerPage: DefaultPageSize}
	err := m.do(ctx, "get_releases", func() error {
		out = nil
		for {
			releases, resp, err := m.v3.Repositories.ListReleases(ctx, owner, repo, opt)
			if err != nil {
				return fmt.Errorf("list releases: %w", err)
			}
			probeRateLimit(resp)
			for _, r := range releases {
				rr := RawRelease{
					ID:              r.GetID(),
					TagName:         r.GetTagName(),
					TargetCommitish: r.GetTargetCommitish(),
					Name:            r.GetName(),
					Body:            r.GetBody(),
					Draft:           r.GetDraft(),
					Prerelease:      r.GetPrerelease(),
					CreatedAt:       r.GetCreatedAt().Time,
				}
				if r.PublishedAt != nil {
					t := r.GetPublishedAt().Time
					rr.PublishedAt = &t
				}
				for _, a := range r.Assets {
					rr.Assets = append(rr.Assets, RawReleaseAsset{
						ID:          a.GetID(),
						Name:        a.GetName(),
						Size:        int64(a.GetSize()),
						ContentType: a.GetContentType(),
						DownloadURL: a.GetBrowserDownloadURL(),
					})
				}
				out = append(out, rr)
			}
			if resp.NextPage == 0 {
				return nil
			}
			opt.Page = resp.NextPage
		}
	})
	return out, err
}

// DownloadReleaseAsset streams the given asset's binary content. Callers
// are responsible for closing the returned ReadCloser.
func (m *Mediator) DownloadReleaseAsset(ctx context.Context, owner, repo string, assetID int64) (io.ReadCloser, error) {
	var rc io.ReadCloser
	err := m.do(ctx, "download_release_asset", func() error {
		r, _, err := m.v3.Repositories.DownloadReleaseAsset(ctx, owner, repo, assetID, m.v3.Client())
		if err != nil {
			return fmt.Errorf("download release asset %d: %w", assetID, err)
		}
		rc = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rc, nil
}

// CreateLabel creates a label on the repository.
func (m *Mediator) CreateLabel(ctx context.Context, owner, repo string, l RawLabel) (RawLabel, error) {
	var out RawLabel
	err := m.do(ctx, "create_label", func() error {
		created, resp, err := m.v3.Issues.CreateLabel(ctx, owner, repo, &github.Label{
			Name:        github.Ptr(l.Name),
			Color:       github.Ptr(l.Color),
			Description: github.Ptr(l.Description),
		})
		if err != nil {
			return fmt.Errorf("create label %q: %w", l.Name, err)
		}
		probeRateLimit(resp)
		out = RawLabel{ID: fmt.Sprint(created.GetID()), Name: created.GetName(), Color: created.GetColor(), Description: created.GetDescription()}
		return nil
	})
	return out, err
}

// UpdateLabel edits an existing label by name.
func (m *Mediator) UpdateLabel(ctx context.Context, owner, repo, name string, l RawLabel) (RawLabel, error) {
	var out RawLabel
	err := m.do(ctx, "update_label", func() error {
		updated, resp, err := m.v3.Issues.EditLabel(ctx, owner, repo, name, &github.Label{
			Name:        github.Ptr(l.Name),
			Color:       github.Ptr(l.Color),
			Description: github.Ptr(l.Description),
		})
		if err != nil {
			return fmt.Errorf("update label %q: %w", name, err)
		}
		probeRateLimit(resp)
		out = RawLabel{ID: fmt.Sprint(updated.GetID()), Name: updated.GetName(), Color: updated.GetColor(), Description: updated.GetDescription()}
		return nil
	})
	return out, err
}

// CreateMilestone creates a milestone on the repository.
func (m *Mediator) CreateMilestone(ctx context.Context, owner, repo string, ms RawMilestone) (RawMilestone, error) {
	var out RawMilestone
	err := m.do(ctx, "create_milestone", func() error {
		req := &github.Milestone{
			Title:       github.Ptr(ms.Title),
			Description: github.Ptr(ms.Description),
			State:       github.Ptr(ms.State),
		}
		if ms.DueOn != nil {
			req.DueOn = &github.Timestamp{Time: *ms.DueOn}
		}
		created, resp, err := m.v3.Issues.CreateMilestone(ctx, owner, repo, req)
		if err != nil {
			return fmt.Errorf("create milestone %q: %w", ms.Title, err)
		}
		probeRateLimit(resp)
		out = rawMilestoneFromREST(created)
		return nil
	})
	return out, err
}

// CreateIssue creates an issue on the repository.
func (m *Mediator) CreateIssue(ctx context.Context, owner, repo string, issue RawIssue) (RawIssue, error) {
	var out RawIssue
	err := m.do(ctx, "create_issue", func() error {
		req := &github.IssueRequest{
			Title: github.Ptr(issue.Title),
			Body:  github.Ptr(issue.Body),
		}
		var labelNames, assigneeLogins []string
		for _, l := range issue.Labels {
			labelNames = append(labelNames, l.Name)
		}
		for _, a := range issue.Assignees {
			assigneeLogins = append(assigneeLogins, a.Login)
		}
		if len(labelNames) > 0 {
			req.Labels = &labelNames
		}
		if len(assigneeLogins) > 0 {
			req.Assignees = &assigneeLogins
		}
		if issue.Milestone != nil {
			req.Milestone = github.Ptr(issue.Milestone.Number)
		}
		created, resp, err := m.v3.Issues.Create(ctx, owner, repo, req)
		if err != nil {
			return fmt.Errorf("create issue %q: %w", issue.Title, err)
		}
		probeRateLimit(resp)
		out = issue
		out.Number = created.GetNumber()
		out.ID = fmt.Sprint(created.GetID())
		out.URL = created.GetHTMLURL()
		return nil
	})
	return out, err
}

// CloseIssue transitions an issue to the closed state, optionally with a
// state reason ("completed" or "not_planned").
func (m *Mediator) CloseIssue(ctx context.Context, owner, repo string, number int, stateReason string) error {
	return m.do(ctx, "close_issue", func() error {
		req := &github.IssueRequest{State: github.Ptr("closed")}
		if stateReason != "" {
			req.StateReason = github.Ptr(stateReason)
		}
		_, resp, err := m.v3.Issues.Edit(ctx, owner, repo, number, req)
		if err != nil {
			return fmt.Errorf("close issue #%d: %w", number, err)
		}
		probeRateLimit(resp)
		return nil
	})
}

// CreateComment posts a comment on an issue or pull request (GitHub
// treats both identically for conversation comments).
func (m *Mediator) CreateComment(ctx context.Context, owner, repo string, number int, body string) (RawComment, error) {
	var out RawComment
	err := m.do(ctx, "create_comment", func() error {
		created, resp, err := m.v3.Issues.CreateComment(ctx, owner, repo, number, &github.IssueComment{Body: github.Ptr(body)})
		if err != nil {
			return fmt.Errorf("create comment on #%d: %w", number, err)
		}
		probeRateLimit(resp)
		out = RawComment{ID: fmt.Sprint(created.GetID()), Body: created.GetBody(), Author: userFromREST(created.GetUser()), IssueNumber: number, IssueURL: created.GetHTMLURL(), CreatedAt: created.GetCreatedAt().Time, UpdatedAt: created.GetUpdatedAt().Time}
		return nil
	})
	return out, err
}

// AddSubIssue links the issue whose ID is childIssueID as a sub-issue of
// issue number parentNumber.
func (m *Mediator) AddSubIssue(ctx context.Context, owner, repo string, parentNumber, childIssueID int64) error {
	return m.do(ctx, "add_sub_issue", func() error {
		_, resp, err := m.v3.SubIssue.AddSubIssue(ctx, owner, repo, int64(parentNumber), github.SubIssueRequest{
			SubIssueID: childIssueID,
		})
		if err != nil {
			return fmt.Errorf("add sub-issue %d to parent #%d: %w", childIssueID, parentNumber, err)
		}
		probeRateLimit(resp)
		return nil
	})
}

// ReprioritizeSubIssue moves a sub-issue to the given position under its
// parent, preserving the ordering captured in RawSubIssue.Position.
func (m *Mediator) ReprioritizeSubIssue(ctx context.Context, owner, repo string, parentNumber int, subIssueID int64, afterID *int64) error {
	return m.do(ctx, "reprioritize_sub_issue", func() error {
		req := github.SubIssueRequest{SubIssueID: subIssueID}
		if afterID != nil {
			req.AfterID = afterID
		}
		_, resp, err := m.v3.SubIssue.ReprioritizeSubIssue(ctx, owner, repo, int64(parentNumber), req)
		if err != nil {
			return fmt.Errorf("reprioritize sub-issue %d under #%d: %w", subIssueID, parentNumber, err)
		}
		probeRateLimit(resp)
		return nil
	})
}

// CreatePullRequest opens a pull request from pr.HeadRef into pr.BaseRef.
// It fails when the head ref does not exist on the repository; no caller
// falls back to CreateIssue in that case.
func (m *Mediator) CreatePullRequest(ctx context.Context, owner, repo string, pr RawPullRequest) (RawPullRequest, error) {
	var out RawPullRequest
	err := m.do(ctx, "create_pull_request", func() error {
		created, resp, err := m.v3.PullRequests.Create(ctx, owner, repo, &github.NewPullRequest{
			Title: github.Ptr(pr.Title),
			Head:  github.Ptr(pr.HeadRef),
			Base:  github.Ptr(pr.BaseRef),
			Body:  github.Ptr(pr.Body),
		})
		if err != nil {
			return fmt.Errorf("create pull request %q: %w", pr.Title, err)
		}
		probeRateLimit(resp)
		out = pr
		out.Number = created.GetNumber()
		out.ID = fmt.Sprint(created.GetID())
		out.URL = created.GetHTMLURL()
		return nil
	})
	return out, err
}

// UpdatePullRequestLabelsAndMilestone attaches labels and a milestone to
// an already-created pull request. The create-pull-request endpoint
// accepts neither (unlike CreateIssue, which takes both at creation
// time), so this mirrors CloseIssue's separate Issues.Edit follow-up —
// pull requests are issues for label and milestone purposes.
func (m *Mediator) UpdatePullRequestLabelsAndMilestone(ctx context.Context, owner, repo string, number int, labelNames []string, milestoneNumber *int) error {
	if len(labelNames) == 0 && milestoneNumber == nil {
		return nil
	}
	return m.do(ctx, "update_pull_request_labels_and_milestone", func() error {
		req := &github.IssueRequest{}
		if len(labelNames) > 0 {
			req.Labels = &labelNames
		}
		if milestoneNumber != nil {
			req.Milestone = milestoneNumber
		}
		_, resp, err := m.v3.Issues.Edit(ctx, owner, repo, number, req)
		if err != nil {
			return fmt.Errorf("update labels/milestone for pull request #%d: %w", number, err)
		}
		probeRateLimit(resp)
		return nil
	})
}

// CreatePullRequestReview submits a review on a pull request.
func (m *Mediator) CreatePullRequestReview(ctx context.Context, owner, repo string, prNumber int, r RawPRReview) (RawPRReview, error) {
	var out RawPRReview
	err := m.do(ctx, "create_pull_request_review", func() error {
		created, resp, err := m.v3.PullRequests.CreateReview(ctx, owner, repo, prNumber, &github.PullRequestReviewRequest{
			Body:  github.Ptr(r.Body),
			Event: github.Ptr(reviewEventFromState(r.State)),
		})
		if err != nil {
			return fmt.Errorf("create review on pr #%d: %w", prNumber, err)
		}
		probeRateLimit(resp)
		out = r
		out.ID = created.GetID()
		out.PRNumber = prNumber
		return nil
	})
	return out, err
}

// CreatePullRequestReviewComment posts an inline review comment. When
// rc.InReplyToID is nonzero it is posted as a reply to that existing
// review comment via in_reply_to (the thread-reply shape); otherwise it
// is created directly on rc.Path and rc.Line as the first comment in a
// thread. This is a real REST call, not a stand-in: see
// DESIGN.md's Open Question decision on PRReviewComment creation.
func (m *Mediator) CreatePullRequestReviewComment(ctx context.Context, owner, repo string, prNumber int, rc RawPRReviewComment) (RawPRReviewComment, error) {
	var out RawPRReviewComment
	err := m.do(ctx, "create_pull_request_review_comment", func() error {
		req := &github.PullRequestComment{
			Body: github.Ptr(rc.Body),
		}
		if rc.InReplyToID != 0 {
			req.InReplyTo = github.Ptr(rc.InReplyToID)
		} else {
			req.Path = github.Ptr(rc.Path)
			req.Line = github.Ptr(rc.Line)
			req.CommitID = github.Ptr("")
		}
		created, resp, err := m.v3.PullRequests.CreateComment(ctx, owner, repo, prNumber, req)
		if err != nil {
			return fmt.Errorf("create review comment on pr #%d: %w", prNumber, err)
		}
		probeRateLimit(resp)
		out = rc
		out.ID = created.GetID()
		out.ReviewID = created.GetPullRequestReviewID()
		return nil
	})
	return out, err
}

// CreateRelease creates a release on the repository.
func (m *Mediator) CreateRelease(ctx context.Context, owner, repo string, r RawRelease) (RawRelease, error) {
	var out RawRelease
	err := m.do(ctx, "create_release", func() error {
		created, resp, err := m.v3.Repositories.CreateRelease(ctx, owner, repo, &github.RepositoryRelease{
			TagName:         github.Ptr(r.TagName),
			TargetCommitish: github.Ptr(r.TargetCommitish),
			Name:            github.Ptr(r.Name),
			Body:            github.Ptr(r.Body),
			Draft:           github.Ptr(r.Draft),
			Prerelease:      github.Ptr(r.Prerelease),
		})
		if err != nil {
			return fmt.Errorf("create release %q: %w", r.TagName, err)
		}
		probeRateLimit(resp)
		out = r
		out.ID = created.GetID()
		return nil
	})
	return out, err
}

// UploadReleaseAsset uploads a binary asset to an already-created release
// from a local file path.
func (m *Mediator) UploadReleaseAsset(ctx context.Context, owner, repo string, releaseID int64, a RawReleaseAsset) (RawReleaseAsset, error) {
	var out RawReleaseAsset
	err := m.do(ctx, "upload_release_asset", func() error {
		f, err := os.Open(a.LocalPath)
		if err != nil {
			return fmt.Errorf("open release asset %q: %w", a.LocalPath, err)
		}
		defer f.Close()

		created, resp, err := m.v3.Repositories.UploadReleaseAsset(ctx, owner, repo, releaseID, &github.UploadOptions{Name: a.Name}, f)
		if err != nil {
			return fmt.Errorf("upload release asset %q: %w", a.Name, err)
		}
		probeRateLimit(resp)
		out = a
		out.ID = created.GetID()
		out.DownloadURL = created.GetBrowserDownloadURL()
		return nil
	})
	return out, err
}

// GetRepositoryMetadata fetches the repository's owner, name, visibility
// and default branch — the subset internal/repolifecycle needs for the
// restore-time existence gate and eventual-consistency poll.
func (m *Mediator) GetRepositoryMetadata(ctx context.Context, owner, repo string) (RepositoryMetadata, error) {
	var out RepositoryMetadata
	err := m.do(ctx, "get_repository_metadata", func() error {
		r, resp, err := m.v3.Repositories.Get(ctx, owner, repo)
		if err != nil {
			return fmt.Errorf("get repository %s/%s: %w", owner, repo, err)
		}
		probeRateLimit(resp)
		out = RepositoryMetadata{
			Owner:      r.GetOwner().GetLogin(),
			Name:       r.GetName(),
			Private:    r.GetPrivate(),
			DefaultRef: r.GetDefaultBranch(),
		}
		return nil
	})
	return out, err
}

// CreateRepository creates the restore target repository when it doesn't
// already exist (spec.md §4.5).
func (m *Mediator) CreateRepository(ctx context.Context, owner, name string, private bool) error {
	return m.do(ctx, "create_repository", func() error {
		_, resp, err := m.v3.Repositories.Create(ctx, owner, &github.Repository{
			Name:    github.Ptr(name),
			Private: github.Ptr(private),
		})
		if err != nil {
			return fmt.Errorf("create repository %s/%s: %w", owner, name, err)
		}
		probeRateLimit(resp)
		return nil
	})
}

// reviewEventFromState maps a review's stored state onto the Event value
// the CreateReview endpoint expects. Anything other than APPROVED or
// CHANGES_REQUESTED is submitted as a plain comment-only review.
func reviewEventFromState(state string) string {
	switch state {
	case "APPROVED":
		return "APPROVE"
	case "CHANGES_REQUESTED":
		return "REQUEST_CHANGES"
	default:
		return "COMMENT"
	}
}

func userFromREST(u *github.User) *RawUser {
	if u == nil {
		return nil
	}
	return &RawUser{Login: u.GetLogin(), ID: fmt.Sprint(u.GetID()), URL: u.GetHTMLURL(), AvatarURL: u.GetAvatarURL()}
}

func rawMilestoneFromREST(ms *github.Milestone) RawMilestone {
	rm := RawMilestone{
		ID:          fmt.Sprint(ms.GetID()),
		Number:      ms.GetNumber(),
		Title:       ms.GetTitle(),
		Description: ms.GetDescription(),
		State:       ms.GetState(),
		CreatedAt:   ms.GetCreatedAt().Time,
	}
	if ms.DueOn != nil {
		t := ms.GetDueOn().Time
		rm.DueOn = &t
	}
	if ms.Creator != nil {
		rm.Creator = userFromREST(ms.Creator)
	}
	return rm
}
