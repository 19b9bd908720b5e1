// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strategy

import (
	"context"

	"github.com/ghdata-go/ghdata/internal/converters"
	"github.com/ghdata-go/ghdata/internal/entities"
	"github.com/ghdata-go/ghdata/internal/ghcontext"
	"github.com/ghdata-go/ghdata/internal/mediator"
	"github.com/ghdata-go/ghdata/internal/model"
	"github.com/ghdata-go/ghdata/internal/storage"
)

// MilestoneSave saves every repository milestone.
type MilestoneSave struct{}

func (MilestoneSave) EntityName() string     { return entities.Milestones }
func (MilestoneSave) Dependencies() []string { return nil }
func (MilestoneSave) ShouldSkip(en entities.Enablement) bool { return !en.Enabled }

func (MilestoneSave) Read(ctx context.Context, api *mediator.Mediator, conv *converters.Registry, gctx *ghcontext.Context, owner, repo string) ([]any, error) {
	raw, err := api.GetRepositoryMilestones(ctx, owner, repo)
	if err != nil {
		return nil, err
	}
	var out []model.Milestone
	for _, r := range raw {
		v, err := conv.Convert("milestone", r)
		if err != nil {
			return nil, err
		}
		out = append(out, v.(model.Milestone))
	}
	return asAny(out), nil
}

func (MilestoneSave) Transform(raw []any, en entities.Enablement, gctx *ghcontext.Context) []any {
	items := fromAny[model.Milestone](raw)
	numbers := make([]int, len(items))
	for i, m := range items {
		numbers[i] = m.Number
	}
	gctx.RecordSavedParents(entities.Milestones, numbers)
	return raw
}

func (MilestoneSave) Write(store storage.Port, path string, transformed []any) error {
	return store.Write(path, fromAny[model.Milestone](transformed))
}

// MilestoneRestore recreates milestones on the target repository.
type MilestoneRestore struct{}

func (MilestoneRestore) EntityName() string     { return entities.Milestones }
func (MilestoneRestore) Dependencies() []string { return nil }

func (MilestoneRestore) Read(store storage.Port, path string) ([]any, error) {
	var items []model.Milestone
	if err := store.Read(path, &items); err != nil {
		return nil, err
	}
	return asAny(items), nil
}

func (MilestoneRestore) Transform(item any, gctx *ghcontext.Context) (any, bool) {
	return item.(model.Milestone), true
}

func (MilestoneRestore) Write(ctx context.Context, api *mediator.Mediator, gctx *ghcontext.Context, owner, repo string, request any) (any, error) {
	ms := request.(model.Milestone)
	created, err := api.CreateMilestone(ctx, owner, repo, mediator.RawMilestone{
		Title:       ms.Title,
		Description: ms.Description,
		State:       ms.State,
		DueOn:       ms.DueOn,
	})
	if err != nil {
		return nil, err
	}
	return model.Milestone{
		ID: created.ID, Number: created.Number, Title: created.Title,
		Description: created.Description, State: created.State, DueOn: created.DueOn,
		CreatedAt: created.CreatedAt,
	}, nil
}

func (MilestoneRestore) UpdateContext(gctx *ghcontext.Context, original, created any) {
	orig := original.(model.Milestone)
	newMs := created.(model.Milestone)
	gctx.MapMilestone(orig.Number, newMs.Number)
}
