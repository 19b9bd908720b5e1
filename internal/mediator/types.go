// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mediator

import "time"

// The Raw* types below are the Mediator's result shapes, filled from
// GraphQL query results and from REST responses alike — the "raw_json"
// half of the Converter Registry's raw_json -> domain_entity contract
// from spec.md §4.2, expressed as typed Go structs instead of untyped
// maps.

type RawUser struct {
	Login     string
	ID        string // REST numeric user ID as a string; empty for users read through GraphQL.
	URL       string
	AvatarURL string
}

type RawLabel struct {
	ID          string
	Name        string
	Color       string
	Description string
}

type RawMilestone struct {
	ID          string
	Number      int
	Title       string
	Description string
	State       string
	DueOn       *time.Time
	Creator     *RawUser
	CreatedAt   time.Time
}

type RawIssue struct {
	ID          string
	Number      int
	Title       string
	Body        string
	State       string
	StateReason string
	Labels      []RawLabel
	Milestone   *RawMilestone
	Assignees   []RawUser
	Author      *RawUser
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ClosedAt    *time.Time
	URL         string
}

type RawComment struct {
	ID          string
	Body        string
	Author      *RawUser
	IssueNumber int
	IssueURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type RawSubIssue struct {
	ParentNumber int
	ChildNumber  int
	Position     int
}

type RawPullRequest struct {
	ID        string
	Number    int
	Title     string
	Body      string
	State     string
	HeadRef   string
	BaseRef   string
	Labels    []RawLabel
	Milestone *RawMilestone
	Author    *RawUser
	MergedAt  *time.Time
	MergeSHA  string
	CreatedAt time.Time
	ClosedAt  *time.Time
	URL       string
}

type RawPRComment struct {
	ID        string
	Body      string
	Author    *RawUser
	PRNumber  int
	PRURL     string
	CreatedAt time.Time
}

type RawPRReview struct {
	ID          int64
	PRNumber    int
	Author      *RawUser
	State       string
	Body        string
	SubmittedAt time.Time
}

type RawPRReviewComment struct {
	ID          int64
	ReviewID    int64
	PRNumber    int
	Body        string
	Path        string
	Line        int
	DiffHunk    string
	InReplyToID int64
	Author      *RawUser
	CreatedAt   time.Time
}

type RawRelease struct {
	ID              int64
	TagName         string
	TargetCommitish string
	Name            string
	Body            string
	Draft           bool
	Prerelease      bool
	CreatedAt       time.Time
	PublishedAt     *time.Time
	Assets          []RawReleaseAsset
}

type RawReleaseAsset struct {
	ID          int64
	Name        string
	Size        int64
	ContentType string
	DownloadURL string
	LocalPath   string // local filesystem path to upload from; set only when restoring.
}

// RepositoryMetadata is the subset of repository metadata the
// eventual-consistency probe (spec.md §4.1) and the restore-time
// existence gate (spec.md §4.5) need.
type RepositoryMetadata struct {
	Owner      string
	Name       string
	Private    bool
	DefaultRef string
}
