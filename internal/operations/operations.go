// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package operations is the Operation Registry of spec.md §4.2: named
// GitHub operations, classified as reads or writes by their method-name
// prefix, and cross-validated against the Converter Registry at load
// time. Grounded on the same Python package's operations/__init__.py
// plus spec.md's explicit operation spec shape.
package operations

import (
	"strings"

	"github.com/ghdata-go/ghdata/internal/converters"
	"github.com/ghdata-go/ghdata/internal/ghuberrors"
)

// Operation is one named GitHub operation an entity's strategy invokes.
// BoundaryMethod names the Mediator method that implements it (e.g.
// "GetRepositoryIssues", "CreateIssue"); ConverterName, if non-empty,
// names the Converter Registry entry used to turn the boundary method's
// result into a domain entity.
type Operation struct {
	Name            string
	Entity          string
	BoundaryMethod  string
	ConverterName   string
	CacheKeyFields  []string
}

// IsWrite classifies an operation as a write by its method-name prefix,
// per spec.md §4.1's boundary-method naming convention (teacher's own
// convention of treating "Create"/"Edit"/"Update"/"Add"/"Upload"/"Close"
// verbs as mutating calls, mirrored from internal/task/milestones.go's
// method names).
func (o Operation) IsWrite() bool {
	return isWritePrefix(o.BoundaryMethod)
}

var writePrefixes = []string{"Create", "Edit", "Update", "Add", "Upload", "Close", "Reprioritize"}

func isWritePrefix(method string) bool {
	for _, p := range writePrefixes {
		if strings.HasPrefix(method, p) {
			return true
		}
	}
	return false
}

// Registry is the loaded, cross-validated set of operations, keyed by
// name.
type Registry struct {
	ops map[string]Operation
}

// NewRegistry validates ops against conv (every referenced converter
// must exist, per spec.md §4.2) and returns a Registry.
func NewRegistry(ops []Operation, conv *converters.Registry) (*Registry, error) {
	r := &Registry{ops: map[string]Operation{}}
	for _, op := range ops {
		if _, dup := r.ops[op.Name]; dup {
			return nil, ghuberrors.Errorf(ghuberrors.KindConfig, "operation %q declared more than once", op.Name)
		}
		if op.ConverterName != "" && !conv.Has(op.ConverterName) {
			return nil, ghuberrors.Errorf(ghuberrors.KindConfig, "operation %q references unknown converter %q", op.Name, op.ConverterName)
		}
		r.ops[op.Name] = op
	}
	return r, nil
}

// Get returns the named operation and whether it exists.
func (r *Registry) Get(name string) (Operation, bool) {
	op, ok := r.ops[name]
	return op, ok
}

// ForEntity returns every operation declared against the given entity
// name. The order of the result follows Go map iteration and is not
// stable between calls.
func (r *Registry) ForEntity(entity string) []Operation {
	var out []Operation
	for _, op := range r.ops {
		if op.Entity == entity {
			out = append(out, op)
		}
	}
	return out
}

// Default returns the operation declarations for every entity this
// mirror knows about, matching the Mediator's actual method names in
// internal/mediator/graphql.go and internal/mediator/rest.go.
func Default() []Operation {
	return []Operation{
		{Name: "get_repository_labels", Entity: "labels", BoundaryMethod: "GetRepositoryLabels", ConverterName: "label"},
		{Name: "create_label", Entity: "labels", BoundaryMethod: "CreateLabel", ConverterName: "label"},
		{Name: "update_label", Entity: "labels", BoundaryMethod: "UpdateLabel", ConverterName: "label"},

		{Name: "get_repository_milestones", Entity: "milestones", BoundaryMethod: "GetRepositoryMilestones", ConverterName: "milestone"},
		{Name: "create_milestone", Entity: "milestones", BoundaryMethod: "CreateMilestone", ConverterName: "milestone"},

		{Name: "get_repository_issues", Entity: "issues", BoundaryMethod: "GetRepositoryIssues", ConverterName: "issue"},
		{Name: "create_issue", Entity: "issues", BoundaryMethod: "CreateIssue", ConverterName: "issue"},
		{Name: "close_issue", Entity: "issues", BoundaryMethod: "CloseIssue"},

		{Name: "get_issue_comments", Entity: "comments", BoundaryMethod: "GetIssueComments", ConverterName: "comment"},
		{Name: "create_comment", Entity: "comments", BoundaryMethod: "CreateComment", ConverterName: "comment"},

		{Name: "get_sub_issues", Entity: "sub_issues", BoundaryMethod: "GetSubIssues", ConverterName: "sub_issue"},
		{Name: "add_sub_issue", Entity: "sub_issues", BoundaryMethod: "AddSubIssue"},
		{Name: "reprioritize_sub_issue", Entity: "sub_issues", BoundaryMethod: "ReprioritizeSubIssue"},

		{Name: "get_repository_pull_requests", Entity: "pull_requests", BoundaryMethod: "GetRepositoryPullRequests", ConverterName: "pull_request"},
		{Name: "create_pull_request", Entity: "pull_requests", BoundaryMethod: "CreatePullRequest", ConverterName: "pull_request"},

		{Name: "get_pull_request_comments", Entity: "pr_comments", BoundaryMethod: "GetPullRequestComments", ConverterName: "pr_comment"},
		{Name: "create_pull_request_comment", Entity: "pr_comments", BoundaryMethod: "CreateComment", ConverterName: "pr_comment"},

		{Name: "get_pull_request_reviews", Entity: "pr_reviews", BoundaryMethod: "GetPullRequestReviews", ConverterName: "pr_review"},
		{Name: "create_pull_request_review", Entity: "pr_reviews", BoundaryMethod: "CreatePullRequestReview", ConverterName: "pr_review"},

		{Name: "get_pull_request_review_comments", Entity: "pr_review_comments", BoundaryMethod: "GetPullRequestReviewComments", ConverterName: "pr_review_comment"},
		{Name: "create_pull_request_review_comment", Entity: "pr_review_comments", BoundaryMethod: "CreatePullRequestReviewComment", ConverterName: "pr_review_comment"},

		{Name: "get_releases", Entity: "releases", BoundaryMethod: "GetReleases", ConverterName: "release"},
		{Name: "create_release", Entity: "releases", BoundaryMethod: "CreateRelease", ConverterName: "release"},
		{Name: "upload_release_asset", Entity: "releases", BoundaryMethod: "UploadReleaseAsset", ConverterName: "release_asset"},

		{Name: "get_repository_metadata", Entity: "git_repository", BoundaryMethod: "GetRepositoryMetadata"},
		{Name: "create_repository", Entity: "git_repository", BoundaryMethod: "CreateRepository"},
	}
}
