// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model defines the domain entities mirrored between GitHub and
// the on-disk snapshot: users, labels, milestones, issues, comments,
// sub-issue edges, pull requests, PR comments, reviews, review comments,
// and releases with their assets.
package model

import "time"

// User is the minimal identity carried alongside any authored record.
// ID is the REST numeric user ID as a string. It is set only for users
// that came from a REST response (issue and PR comments, reviews, review
// comments, and milestone creators returned by CreateMilestone);
// users read through the GraphQL path have an empty ID.
type User struct {
	Login     string `json:"login"`
	ID        string `json:"id,omitempty"`
	HTMLURL   string `json:"html_url,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Label is a repository label. ID is the GraphQL node ID.
type Label struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description,omitempty"`
}

// Milestone is a repository milestone. ID is the GraphQL node ID.
type Milestone struct {
	ID          string     `json:"id"`
	Number      int        `json:"number"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	State       string     `json:"state"`
	DueOn       *time.Time `json:"due_on,omitempty"`
	Creator     *User      `json:"creator,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Issue is a repository issue (never a pull request; PullRequest is a
// distinct entity in this snapshot format, unlike GitHub's own API).
type Issue struct {
	ID          string     `json:"id"`
	Number      int        `json:"number"`
	Title       string     `json:"title"`
	Body        string     `json:"body,omitempty"`
	State       string     `json:"state"`
	StateReason string     `json:"state_reason,omitempty"`
	Labels      []Label    `json:"labels,omitempty"`
	Milestone   *Milestone `json:"milestone,omitempty"`
	Assignees   []User     `json:"assignees,omitempty"`
	Author      *User      `json:"author,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
	URL         string     `json:"url,omitempty"`
}

// Comment is an issue comment.
type Comment struct {
	ID          string    `json:"id"`
	Body        string    `json:"body,omitempty"`
	Author      *User     `json:"author,omitempty"`
	IssueURL    string    `json:"issue_url,omitempty"`
	IssueNumber int       `json:"issue_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SubIssue is a parent/child issue edge, recording the child's ordinal
// position among its siblings.
type SubIssue struct {
	ParentIssueNumber int `json:"parent_issue_number"`
	SubIssueNumber    int `json:"sub_issue_number"`
	Position          int `json:"position"`
}

// PullRequest is a repository pull request.
type PullRequest struct {
	ID        string     `json:"id"`
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	Body      string     `json:"body,omitempty"`
	State     string     `json:"state"`
	HeadRef   string     `json:"head_ref"`
	BaseRef   string     `json:"base_ref"`
	Labels    []Label    `json:"labels,omitempty"`
	Milestone *Milestone `json:"milestone,omitempty"`
	Author    *User      `json:"author,omitempty"`
	MergedAt  *time.Time `json:"merged_at,omitempty"`
	MergeSHA  string     `json:"merge_sha,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
	URL       string     `json:"url,omitempty"`
}

// PRComment is an issue-style comment on a pull request (the "conversation"
// tab, as distinct from an inline PRReviewComment).
type PRComment struct {
	ID        string    `json:"id"`
	Body      string    `json:"body,omitempty"`
	Author    *User     `json:"author,omitempty"`
	PRURL     string    `json:"pr_url,omitempty"`
	PRNumber  int       `json:"pr_number"`
	CreatedAt time.Time `json:"created_at"`
}

// PRReview is a pull request review.
type PRReview struct {
	ID          int64     `json:"id"`
	PRNumber    int       `json:"pr_number"`
	Author      *User     `json:"author,omitempty"`
	State       string    `json:"state"` // APPROVED, CHANGES_REQUESTED, COMMENTED
	Body        string    `json:"body,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// PRReviewComment is an inline review comment attached to a diff line.
type PRReviewComment struct {
	ID            int64     `json:"id"`
	ReviewID      int64     `json:"review_id"`
	PRNumber      int       `json:"pr_number"`
	Body          string    `json:"body,omitempty"`
	Path          string    `json:"path"`
	Line          int       `json:"line"`
	DiffHunk      string    `json:"diff_hunk,omitempty"`
	InReplyToID   int64     `json:"in_reply_to_id,omitempty"`
	Author        *User     `json:"author,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Release is a repository release.
type Release struct {
	ID              int64          `json:"id"`
	TagName         string         `json:"tag_name"`
	TargetCommitish string         `json:"target_commitish"`
	Name            string         `json:"name,omitempty"`
	Body            string         `json:"body,omitempty"`
	Draft           bool           `json:"draft"`
	Prerelease      bool           `json:"prerelease"`
	CreatedAt       time.Time      `json:"created_at"`
	PublishedAt     *time.Time     `json:"published_at,omitempty"`
	Assets          []ReleaseAsset `json:"assets,omitempty"`
}

// ReleaseAsset is a binary artifact attached to a release.
type ReleaseAsset struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type,omitempty"`
	DownloadURL string `json:"download_url,omitempty"`
	LocalPath   string `json:"local_path,omitempty"`
}
