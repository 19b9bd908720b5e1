// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strategy

import (
	"context"
	"fmt"
	"io"

	"github.com/ghdata-go/ghdata/internal/converters"
	"github.com/ghdata-go/ghdata/internal/entities"
	"github.com/ghdata-go/ghdata/internal/ghcontext"
	"github.com/ghdata-go/ghdata/internal/ghlog"
	"github.com/ghdata-go/ghdata/internal/mediator"
	"github.com/ghdata-go/ghdata/internal/model"
	"github.com/ghdata-go/ghdata/internal/storage"
)

// ReleaseSave saves repository releases and downloads each asset's
// binary content alongside the snapshot, through the same storage.Port
// used for the JSON write (spec.md §4.1's asset-write path, distinct
// from the entity write but sharing its collision rule: colliding asset
// names within a tag are an error).
type ReleaseSave struct{}

func (ReleaseSave) EntityName() string     { return entities.Releases }
func (ReleaseSave) Dependencies() []string { return nil }
func (ReleaseSave) ShouldSkip(en entities.Enablement) bool { return !en.Enabled }

func (r *ReleaseSave) Read(ctx context.Context, api *mediator.Mediator, conv *converters.Registry, gctx *ghcontext.Context, owner, repo string) ([]any, error) {
	raw, err := api.GetReleases(ctx, owner, repo)
	if err != nil {
		return nil, err
	}
	var out []model.Release
	for _, rr := range raw {
		v, err := conv.Convert("release", rr)
		if err != nil {
			return nil, err
		}
		out = append(out, v.(model.Release))
	}
	return asAny(out), nil
}

func (r *ReleaseSave) Transform(raw []any, en entities.Enablement, gctx *ghcontext.Context) []any {
	return raw
}

// Write writes the JSON snapshot of transformed to path. It does not
// download assets; DownloadAssets does that and fills in LocalPath
// beforehand.
func (r *ReleaseSave) Write(store storage.Port, path string, transformed []any) error {
	return store.Write(path, fromAny[model.Release](transformed))
}

// DownloadAssets streams every release asset's binary content through
// store.WriteAsset, recording each asset's resulting LocalPath. Kept
// separate from Write since the two write different shapes (JSON
// entities vs. a binary stream); the Orchestrator invokes this
// explicitly for the releases entity during save, before Write.
func (r *ReleaseSave) DownloadAssets(ctx context.Context, api *mediator.Mediator, store storage.Port, owner, repo string, releases []model.Release) error {
	for ri := range releases {
		for ai := range releases[ri].Assets {
			a := &releases[ri].Assets[ai]
			rc, err := api.DownloadReleaseAsset(ctx, owner, repo, a.ID)
			if err != nil {
				return err
			}
			data, err := io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return fmt.Errorf("read release asset %q: %w", a.Name, err)
			}
			local, err := store.WriteAsset(releases[ri].TagName, a.Name, data)
			if err != nil {
				return err
			}
			a.LocalPath = local
		}
	}
	return nil
}

// ReleaseRestore recreates releases and re-uploads each asset from its
// local snapshot path.
type ReleaseRestore struct{}

func (ReleaseRestore) EntityName() string     { return entities.Releases }
func (ReleaseRestore) Dependencies() []string { return nil }

func (ReleaseRestore) Read(store storage.Port, path string) ([]any, error) {
	var items []model.Release
	if err := store.Read(path, &items); err != nil {
		return nil, err
	}
	return asAny(items), nil
}

func (ReleaseRestore) Transform(item any, gctx *ghcontext.Context) (any, bool) {
	return item.(model.Release), true
}

func (ReleaseRestore) Write(ctx context.Context, api *mediator.Mediator, gctx *ghcontext.Context, owner, repo string, request any) (any, error) {
	rel := request.(model.Release)
	created, err := api.CreateRelease(ctx, owner, repo, mediator.RawRelease{
		TagName:         rel.TagName,
		TargetCommitish: rel.TargetCommitish,
		Name:            rel.Name,
		Body:            rel.Body,
		Draft:           rel.Draft,
		Prerelease:      rel.Prerelease,
	})
	if err != nil {
		return nil, err
	}

	result := model.Release{
		ID: created.ID, TagName: created.TagName, TargetCommitish: created.TargetCommitish,
		Name: created.Name, Body: created.Body, Draft: created.Draft, Prerelease: created.Prerelease,
	}
	for _, a := range rel.Assets {
		if a.LocalPath == "" {
			ghlog.Warnf("release %q: asset %q has no local copy; skipping upload", rel.TagName, a.Name)
			continue
		}
		uploaded, err := api.UploadReleaseAsset(ctx, owner, repo, created.ID, mediator.RawReleaseAsset{
			Name:        a.Name,
			ContentType: a.ContentType,
			LocalPath:   a.LocalPath,
		})
		if err != nil {
			return nil, err
		}
		result.Assets = append(result.Assets, model.ReleaseAsset{
			ID: uploaded.ID, Name: uploaded.Name, Size: uploaded.Size,
			ContentType: uploaded.ContentType, DownloadURL: uploaded.DownloadURL,
		})
	}
	return result, nil
}

func (ReleaseRestore) UpdateContext(gctx *ghcontext.Context, original, created any) {}
