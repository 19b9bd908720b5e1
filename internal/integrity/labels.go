// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrity

import (
	"fmt"

	"github.com/ghdata-go/ghdata/internal/ghcontext"
	"github.com/ghdata-go/ghdata/internal/ghuberrors"
	"github.com/ghdata-go/ghdata/internal/model"
)

// LabelAction is what the Label restore path should do as a result of
// conflict resolution.
type LabelAction int

const (
	// ActionCreate means no label of this name exists yet; create incoming
	// as-is.
	ActionCreate LabelAction = iota
	// ActionSkip leaves the existing label untouched.
	ActionSkip
	// ActionUpdate edits the existing label to incoming's attributes (or a
	// merge of the two, depending on strategy).
	ActionUpdate
	// ActionCreateRenamed creates incoming under a different, conflict-free
	// name.
	ActionCreateRenamed
)

// LabelResolution is the outcome of resolving one incoming label against
// the target repository's existing labels.
type LabelResolution struct {
	Action LabelAction
	Label  model.Label // the label to create/update with, name already resolved.
	Err    error        // non-nil only when Action is unset and strategy is fail_if_conflict.
}

// ResolveLabel implements spec.md §4.4's label conflict resolution:
// given (existing, incoming) under ctx.ConflictStrategy, decide what the
// restore path should do. existing is nil when no label of that name
// exists on the target yet.
func ResolveLabel(ctx *ghcontext.Context, existing *model.Label, incoming model.Label) LabelResolution {
	if existing == nil {
		ctx.KnownLabelNames[incoming.Name] = true
		return LabelResolution{Action: ActionCreate, Label: incoming}
	}

	switch ctx.ConflictStrategy {
	case ghcontext.ConflictSkip:
		return LabelResolution{Action: ActionSkip, Label: *existing}

	case ghcontext.ConflictOverwrite:
		return LabelResolution{Action: ActionUpdate, Label: incoming}

	case ghcontext.ConflictFailIfConflict:
		return LabelResolution{Err: ghuberrors.Errorf(ghuberrors.KindConflict, "label %q already exists on target repository", incoming.Name)}

	case ghcontext.ConflictMerge:
		merged := *existing
		if incoming.Color != "" {
			merged.Color = incoming.Color
		}
		if incoming.Description != "" {
			merged.Description = incoming.Description
		}
		return LabelResolution{Action: ActionUpdate, Label: merged}

	case ghcontext.ConflictRename:
		renamed := incoming
		renamed.Name = freeLabelName(ctx, incoming.Name)
		ctx.KnownLabelNames[renamed.Name] = true
		return LabelResolution{Action: ActionCreateRenamed, Label: renamed}

	default:
		return LabelResolution{Action: ActionSkip, Label: *existing}
	}
}

// freeLabelName finds the smallest N such that "name-restored-N" is not
// already a known label name on the target.
func freeLabelName(ctx *ghcontext.Context, name string) string {
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s-restored-%d", name, n)
		if !ctx.KnownLabelNames[candidate] {
			return candidate
		}
	}
}
