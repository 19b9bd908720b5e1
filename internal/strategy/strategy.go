// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package strategy is the Strategy Layer of spec.md §4.4: a SaveStrategy
// and RestoreStrategy pair per entity, each exposing read/filter/
// transform/write steps and consulting the shared, mutable
// internal/ghcontext.Context. Grounded on
// original_source/packages/github-data-tools/src/github_data_tools/entities/*/save_strategy.py
// and restore_strategy.py, re-expressed as Go interfaces instead of
// Python mixins — entities embed the shared mixin structs below instead
// of inheriting from them.
package strategy

import (
	"context"

	"github.com/ghdata-go/ghdata/internal/converters"
	"github.com/ghdata-go/ghdata/internal/entities"
	"github.com/ghdata-go/ghdata/internal/ghcontext"
	"github.com/ghdata-go/ghdata/internal/mediator"
	"github.com/ghdata-go/ghdata/internal/storage"
)

// SaveStrategy is the per-entity save pipeline of spec.md §4.4.
type SaveStrategy interface {
	EntityName() string
	Dependencies() []string
	ShouldSkip(en entities.Enablement) bool
	// Read invokes the entity's declared read operation(s) against the
	// API Mediator and converts each raw result through conv. gctx is
	// available because parent-scoped reads (Comments, PRComments,
	// PRReviews, PRReviewComments, Sub-issues) need the parent numbers
	// recorded earlier in this same save pass.
	Read(ctx context.Context, api *mediator.Mediator, conv *converters.Registry, gctx *ghcontext.Context, owner, repo string) ([]any, error)
	// Transform normalizes, filters (selective/parent-child), and
	// enriches raw into the entity's on-disk shape, recording any parent
	// bookkeeping into gctx.
	Transform(raw []any, en entities.Enablement, gctx *ghcontext.Context) []any
	// Write persists transformed to the entity's canonical path.
	Write(store storage.Port, path string, transformed []any) error
}

// RestoreStrategy is the per-entity restore pipeline of spec.md §4.4.
type RestoreStrategy interface {
	EntityName() string
	Dependencies() []string
	// Read loads the entity's persisted snapshot from path.
	Read(store storage.Port, path string) ([]any, error)
	// Transform maps referenced IDs through gctx, sanitizes mentions, and
	// optionally appends a metadata footer, producing a write request. A
	// false second return means the item was dropped (e.g. dangling
	// reference) and should not be written.
	Transform(item any, gctx *ghcontext.Context) (any, bool)
	// Write invokes the entity's declared write operation(s) to create
	// request on the target repository. gctx is provided alongside
	// request because a few entities (Label's conflict strategy, in
	// particular) need context state that isn't captured in the request
	// value itself.
	Write(ctx context.Context, api *mediator.Mediator, gctx *ghcontext.Context, owner, repo string, request any) (any, error)
	// UpdateContext records the new id/number mapping produced by Write,
	// and any other context bookkeeping (e.g. known label names).
	UpdateContext(gctx *ghcontext.Context, original, created any)
}

// Registry binds every entity name to its SaveStrategy/RestoreStrategy
// pair — the Go equivalent of spec.md §3's save_strategy_factory /
// restore_strategy_factory declaration fields.
type Registry struct {
	save    map[string]SaveStrategy
	restore map[string]RestoreStrategy
}

// NewRegistry builds the registry with every built-in strategy wired.
func NewRegistry() *Registry {
	r := &Registry{save: map[string]SaveStrategy{}, restore: map[string]RestoreStrategy{}}
	for _, s := range []SaveStrategy{
		&LabelSave{}, &MilestoneSave{}, &IssueSave{}, &CommentSave{}, &SubIssueSave{},
		&PullRequestSave{}, &PRCommentSave{}, &PRReviewSave{}, &PRReviewCommentSave{}, &ReleaseSave{},
	} {
		r.save[s.EntityName()] = s
	}
	for _, s := range []RestoreStrategy{
		&LabelRestore{}, &MilestoneRestore{}, &IssueRestore{}, &CommentRestore{}, &SubIssueRestore{},
		&PullRequestRestore{}, &PRCommentRestore{}, &PRReviewRestore{}, &PRReviewCommentRestore{}, &ReleaseRestore{},
	} {
		r.restore[s.EntityName()] = s
	}
	return r
}

// Save returns the save strategy for name, if any.
func (r *Registry) Save(name string) (SaveStrategy, bool) {
	s, ok := r.save[name]
	return s, ok
}

// Restore returns the restore strategy for name, if any.
func (r *Registry) Restore(name string) (RestoreStrategy, bool) {
	s, ok := r.restore[name]
	return s, ok
}

// selectiveFilter implements spec.md §4.4's selective-filtering mixin
// for Issue and PullRequest: when the enablement value is a selection
// set, keep only items whose number is selected; emit one warning per
// requested-but-absent number.
func selectiveFilter[T any](items []T, en entities.Enablement, numberOf func(T) int) []T {
	if en.Selected == nil {
		return items
	}
	present := map[int]bool{}
	var kept []T
	for _, it := range items {
		n := numberOf(it)
		present[n] = true
		if en.Selected.Contains(n) {
			kept = append(kept, it)
		}
	}
	for _, want := range en.Selected.Sorted() {
		if !present[want] {
			warnMissingNumber(want)
		}
	}
	return kept
}
