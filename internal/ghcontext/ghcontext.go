// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ghcontext holds the run-scoped mutable Context threaded through
// every strategy in a single save or restore pass (spec.md §3). The run
// is sequential (SPEC_FULL.md / spec.md §5) so Context needs no locking.
package ghcontext

import "github.com/ghdata-go/ghdata/internal/model"

// ConflictStrategy selects how Label restore resolves a name collision
// with an existing label (spec.md §4.4).
type ConflictStrategy string

const (
	ConflictSkip           ConflictStrategy = "skip"
	ConflictOverwrite      ConflictStrategy = "overwrite"
	ConflictFailIfConflict ConflictStrategy = "fail_if_conflict"
	ConflictMerge          ConflictStrategy = "merge"
	ConflictRename         ConflictStrategy = "rename"
)

// Context is the run-scoped record of cross-entity mappings and flags
// described in spec.md §3.
type Context struct {
	RunID string

	MilestoneNumberMap map[int]int
	IssueNumberMap     map[int]int
	PRNumberMap        map[int]int
	ReviewIDMap        map[int64]int64
	ReviewCommentIDMap map[int64]int64

	// SavedParents records, by entity name, the parent records that were
	// saved this run — consulted by the parent-child coupling mixin
	// (spec.md §4.4) to filter children during save.
	SavedParents map[string][]int

	// KnownLabelNames tracks every label name that exists (or will exist)
	// on the target repository during a restore run, so the rename
	// conflict strategy can pick the smallest free "-restored-N" suffix.
	KnownLabelNames map[string]bool

	IncludeOriginalMetadata bool
	ConflictStrategy        ConflictStrategy
}

// New returns an empty Context ready for a run.
func New(runID string) *Context {
	return &Context{
		RunID:              runID,
		MilestoneNumberMap: map[int]int{},
		IssueNumberMap:     map[int]int{},
		PRNumberMap:        map[int]int{},
		ReviewIDMap:        map[int64]int64{},
		ReviewCommentIDMap: map[int64]int64{},
		SavedParents:       map[string][]int{},
		KnownLabelNames:    map[string]bool{},
		ConflictStrategy:   ConflictSkip,
	}
}

// RecordSavedParents stores the numbers of the parent entities saved
// this run under entityName, for later consultation by dependent
// child strategies.
func (c *Context) RecordSavedParents(entityName string, numbers []int) {
	c.SavedParents[entityName] = numbers
}

// HasSavedParent reports whether number was among the parents saved
// under entityName this run.
func (c *Context) HasSavedParent(entityName string, number int) bool {
	for _, n := range c.SavedParents[entityName] {
		if n == number {
			return true
		}
	}
	return false
}

// MapMilestone records that old milestone number maps to new.
func (c *Context) MapMilestone(oldNumber, newNumber int) {
	c.MilestoneNumberMap[oldNumber] = newNumber
}

// MapIssue records that old issue number maps to new.
func (c *Context) MapIssue(oldNumber, newNumber int) {
	c.IssueNumberMap[oldNumber] = newNumber
}

// MapPR records that old PR number maps to new.
func (c *Context) MapPR(oldNumber, newNumber int) {
	c.PRNumberMap[oldNumber] = newNumber
}

// MapReview records that old review id maps to new.
func (c *Context) MapReview(oldID, newID int64) {
	c.ReviewIDMap[oldID] = newID
}

// MapReviewComment records that old review comment id maps to new, so a
// later comment's InReplyToID can be resolved onto the comment actually
// created this run.
func (c *Context) MapReviewComment(oldID, newID int64) {
	c.ReviewCommentIDMap[oldID] = newID
}

// ResolveMilestone maps an old milestone onto the snapshot, returning
// (0, false) if it was never created (e.g. dropped by integrity
// filtering) this run.
func (c *Context) ResolveMilestone(old *model.Milestone) (int, bool) {
	if old == nil {
		return 0, false
	}
	n, ok := c.MilestoneNumberMap[old.Number]
	return n, ok
}
