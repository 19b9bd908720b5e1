// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrity

import (
	"testing"

	"github.com/ghdata-go/ghdata/internal/ghcontext"
	"github.com/ghdata-go/ghdata/internal/model"
)

func TestResolveLabelNoConflict(t *testing.T) {
	ctx := ghcontext.New("run-1")
	res := ResolveLabel(ctx, nil, model.Label{Name: "bug", Color: "ff0000"})
	if res.Action != ActionCreate {
		t.Errorf("Action = %v, want ActionCreate", res.Action)
	}
	if !ctx.KnownLabelNames["bug"] {
		t.Errorf("KnownLabelNames not updated for a freshly created label")
	}
}

func TestResolveLabelSkip(t *testing.T) {
	ctx := ghcontext.New("run-1")
	ctx.ConflictStrategy = ghcontext.ConflictSkip
	existing := model.Label{Name: "bug", Color: "000000"}
	res := ResolveLabel(ctx, &existing, model.Label{Name: "bug", Color: "ff0000"})
	if res.Action != ActionSkip {
		t.Errorf("Action = %v, want ActionSkip", res.Action)
	}
	if res.Label.Color != "000000" {
		t.Errorf("skip must keep the existing label untouched, got color %q", res.Label.Color)
	}
}

func TestResolveLabelOverwrite(t *testing.T) {
	ctx := ghcontext.New("run-1")
	ctx.ConflictStrategy = ghcontext.ConflictOverwrite
	existing := model.Label{Name: "bug", Color: "000000"}
	res := ResolveLabel(ctx, &existing, model.Label{Name: "bug", Color: "ff0000"})
	if res.Action != ActionUpdate || res.Label.Color != "ff0000" {
		t.Errorf("overwrite result = %+v, want ActionUpdate with incoming color", res)
	}
}

func TestResolveLabelFailIfConflict(t *testing.T) {
	ctx := ghcontext.New("run-1")
	ctx.ConflictStrategy = ghcontext.ConflictFailIfConflict
	existing := model.Label{Name: "bug", Color: "000000"}
	res := ResolveLabel(ctx, &existing, model.Label{Name: "bug", Color: "ff0000"})
	if res.Err == nil {
		t.Errorf("fail_if_conflict must return an error on collision")
	}
}

func TestResolveLabelMerge(t *testing.T) {
	ctx := ghcontext.New("run-1")
	ctx.ConflictStrategy = ghcontext.ConflictMerge
	existing := model.Label{Name: "bug", Color: "000000", Description: "old desc"}
	incoming := model.Label{Name: "bug", Color: "ff0000"} // no description supplied
	res := ResolveLabel(ctx, &existing, incoming)
	if res.Action != ActionUpdate {
		t.Fatalf("Action = %v, want ActionUpdate", res.Action)
	}
	if res.Label.Color != "ff0000" {
		t.Errorf("merge must take incoming's non-empty color, got %q", res.Label.Color)
	}
	if res.Label.Description != "old desc" {
		t.Errorf("merge must keep existing's description when incoming's is empty, got %q", res.Label.Description)
	}
}

func TestResolveLabelRename(t *testing.T) {
	ctx := ghcontext.New("run-1")
	ctx.ConflictStrategy = ghcontext.ConflictRename
	ctx.KnownLabelNames["bug-restored-1"] = true // simulate a prior rename this run

	existing := model.Label{Name: "bug", Color: "000000"}
	res := ResolveLabel(ctx, &existing, model.Label{Name: "bug", Color: "ff0000"})
	if res.Action != ActionCreateRenamed {
		t.Fatalf("Action = %v, want ActionCreateRenamed", res.Action)
	}
	if res.Label.Name != "bug-restored-2" {
		t.Errorf("Label.Name = %q, want bug-restored-2 (smallest free suffix)", res.Label.Name)
	}
	if !ctx.KnownLabelNames["bug-restored-2"] {
		t.Errorf("rename must register the new name in KnownLabelNames")
	}
}
