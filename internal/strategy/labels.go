// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strategy

import (
	"context"

	"github.com/ghdata-go/ghdata/internal/converters"
	"github.com/ghdata-go/ghdata/internal/entities"
	"github.com/ghdata-go/ghdata/internal/ghcontext"
	"github.com/ghdata-go/ghdata/internal/integrity"
	"github.com/ghdata-go/ghdata/internal/mediator"
	"github.com/ghdata-go/ghdata/internal/model"
	"github.com/ghdata-go/ghdata/internal/storage"
)

// LabelSave saves every repository label. Labels have no dependencies
// and no selective-filtering mixin (spec.md's filtering mixin applies
// only to Issue and PullRequest).
type LabelSave struct{}

func (LabelSave) EntityName() string   { return entities.Labels }
func (LabelSave) Dependencies() []string { return nil }
func (LabelSave) ShouldSkip(en entities.Enablement) bool { return !en.Enabled }

func (LabelSave) Read(ctx context.Context, api *mediator.Mediator, conv *converters.Registry, gctx *ghcontext.Context, owner, repo string) ([]any, error) {
	raw, err := api.GetRepositoryLabels(ctx, owner, repo)
	if err != nil {
		return nil, err
	}
	var out []model.Label
	for _, r := range raw {
		v, err := conv.Convert("label", r)
		if err != nil {
			return nil, err
		}
		out = append(out, v.(model.Label))
	}
	return asAny(out), nil
}

func (LabelSave) Transform(raw []any, en entities.Enablement, gctx *ghcontext.Context) []any {
	return raw
}

func (LabelSave) Write(store storage.Port, path string, transformed []any) error {
	return store.Write(path, fromAny[model.Label](transformed))
}

// LabelRestore recreates labels on the target repository, resolving
// name collisions per ctx.ConflictStrategy (spec.md §4.4). It caches the
// target's existing labels on first use so repeated restores within one
// run don't re-fetch the full label list per item.
type LabelRestore struct {
	loaded   bool
	existing map[string]model.Label
}

func (LabelRestore) EntityName() string     { return entities.Labels }
func (LabelRestore) Dependencies() []string { return nil }

func (LabelRestore) Read(store storage.Port, path string) ([]any, error) {
	var items []model.Label
	if err := store.Read(path, &items); err != nil {
		return nil, err
	}
	return asAny(items), nil
}

// Transform is identity for Label: conflict resolution needs the
// target's existing-label state, which only Write has (it calls the
// API); see ensureLoaded/Write below.
func (LabelRestore) Transform(item any, gctx *ghcontext.Context) (any, bool) {
	return item.(model.Label), true
}

func (r *LabelRestore) ensureLoaded(ctx context.Context, api *mediator.Mediator, owner, repo string) error {
	if r.loaded {
		return nil
	}
	raw, err := api.GetRepositoryLabels(ctx, owner, repo)
	if err != nil {
		return err
	}
	r.existing = map[string]model.Label{}
	for _, l := range raw {
		r.existing[l.Name] = model.Label{ID: l.ID, Name: l.Name, Color: l.Color, Description: l.Description}
	}
	r.loaded = true
	return nil
}

func (r *LabelRestore) Write(ctx context.Context, api *mediator.Mediator, gctx *ghcontext.Context, owner, repo string, request any) (any, error) {
	incoming := request.(model.Label)
	if err := r.ensureLoaded(ctx, api, owner, repo); err != nil {
		return nil, err
	}
	for name := range r.existing {
		gctx.KnownLabelNames[name] = true
	}

	var existingPtr *model.Label
	if e, ok := r.existing[incoming.Name]; ok {
		existingPtr = &e
	}

	resolution := integrity.ResolveLabel(gctx, existingPtr, incoming)
	if resolution.Err != nil {
		return nil, resolution.Err
	}

	switch resolution.Action {
	case integrity.ActionSkip:
		return resolution.Label, nil
	case integrity.ActionUpdate:
		updated, err := api.UpdateLabel(ctx, owner, repo, incoming.Name, mediator.RawLabel{Name: resolution.Label.Name, Color: resolution.Label.Color, Description: resolution.Label.Description})
		if err != nil {
			return nil, err
		}
		l := model.Label{ID: updated.ID, Name: updated.Name, Color: updated.Color, Description: updated.Description}
		r.existing[l.Name] = l
		return l, nil
	default: // ActionCreate, ActionCreateRenamed
		created, err := api.CreateLabel(ctx, owner, repo, mediator.RawLabel{Name: resolution.Label.Name, Color: resolution.Label.Color, Description: resolution.Label.Description})
		if err != nil {
			return nil, err
		}
		l := model.Label{ID: created.ID, Name: created.Name, Color: created.Color, Description: created.Description}
		r.existing[l.Name] = l
		return l, nil
	}
}

func (r *LabelRestore) UpdateContext(gctx *ghcontext.Context, original, created any) {
	if l, ok := created.(model.Label); ok {
		gctx.KnownLabelNames[l.Name] = true
	}
}
