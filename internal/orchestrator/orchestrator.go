// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orchestrator implements the Entity Orchestration Engine's
// Orchestrator (spec.md §4.5): it drives the Entity Registry's
// topological order through the Strategy Layer, threading the shared
// Context and aggregating a per-entity result list. Grounded on the
// teacher's own flat, named-task sequential runner in
// cmd/gopherbot/gopherbot.go's `tasks []struct{name string; fn ...}`
// loop — continue past a failing task, record it, move on.
package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ghdata-go/ghdata/internal/converters"
	"github.com/ghdata-go/ghdata/internal/entities"
	"github.com/ghdata-go/ghdata/internal/ghcontext"
	"github.com/ghdata-go/ghdata/internal/ghlog"
	"github.com/ghdata-go/ghdata/internal/gitservice"
	"github.com/ghdata-go/ghdata/internal/mediator"
	"github.com/ghdata-go/ghdata/internal/model"
	"github.com/ghdata-go/ghdata/internal/repolifecycle"
	"github.com/ghdata-go/ghdata/internal/storage"
	"github.com/ghdata-go/ghdata/internal/strategy"
)

// Result is one entity's outcome from a save or restore pass, per
// spec.md §4.5 step 4.
type Result struct {
	EntityName string
	Success    bool
	Error      error
	Count      int
}

// Canonical snapshot filenames, keyed by entity name (spec.md §6's
// on-disk layout).
var entityFile = map[string]string{
	entities.Labels:           storage.FileLabels,
	entities.Milestones:       storage.FileMilestones,
	entities.Issues:           storage.FileIssues,
	entities.Comments:         storage.FileComments,
	entities.SubIssues:        storage.FileSubIssues,
	entities.PullRequests:     storage.FilePullRequests,
	entities.PRComments:       storage.FilePRComments,
	entities.PRReviews:        storage.FilePRReviews,
	entities.PRReviewComments: storage.FilePRReviewComments,
	entities.Releases:         storage.FileReleases,
}

// Orchestrator is constructed once per run with the collaborators
// spec.md §4.5 names: an Entity Registry, an API Mediator, a Storage
// service, and (optionally) a Git service.
type Orchestrator struct {
	Entities   *entities.Registry
	API        *mediator.Mediator
	Store      storage.Port
	Strategies *strategy.Registry
	Converters *converters.Registry
	Git        gitservice.Service // nil if not configured; git_repository is then skipped.
	Lifecycle  repolifecycle.Lifecycle

	IncludeOriginalMetadata bool
	ConflictStrategy        ghcontext.ConflictStrategy
}

// Owner/repo plus the options that only matter for restore.
type Target struct {
	Owner string
	Repo  string

	// Restore-only.
	CreateRepositoryIfMissing bool
	RepositoryPrivate         bool
	GitCloneURL               string // source clone URL; when empty, restore skips git_repository. Its value is not otherwise used.
}

// Save runs the save pipeline: for every enabled entity in topological
// order, Read -> Transform -> Write, recording a Result per entity and
// continuing past a failure (spec.md §4.5/§7 — per-entity exceptions
// become {success: false, error} entries, not fatal aborts).
func (o *Orchestrator) Save(ctx context.Context, target Target, dataPath string) ([]Result, error) {
	gctx := ghcontext.New(uuid.NewString())
	gctx.IncludeOriginalMetadata = o.IncludeOriginalMetadata

	enabled := o.Entities.Enabled()
	ghlog.Infof("starting save for %s/%s: %d entities enabled", target.Owner, target.Repo, len(enabled))

	var results []Result
	for _, name := range enabled {
		if name == entities.GitRepository {
			results = append(results, o.saveGitRepository(ctx, target, dataPath))
			continue
		}

		s, ok := o.Strategies.Save(name)
		if !ok {
			results = append(results, Result{EntityName: name, Success: false, Error: fmt.Errorf("no save strategy registered for %q", name)})
			continue
		}
		if s.ShouldSkip(o.Entities.Enablement(name)) {
			continue
		}

		ghlog.Infof("saving %s...", name)
		result := o.saveEntity(ctx, s, gctx, target, dataPath)
		results = append(results, result)
		if !result.Success {
			ghlog.Errorf("%s: %v", name, result.Error)
		}
	}
	return results, nil
}

func (o *Orchestrator) saveEntity(ctx context.Context, s strategy.SaveStrategy, gctx *ghcontext.Context, target Target, dataPath string) Result {
	name := s.EntityName()
	raw, err := s.Read(ctx, o.API, o.Converters, gctx, target.Owner, target.Repo)
	if err != nil {
		return Result{EntityName: name, Success: false, Error: fmt.Errorf("read: %w", err)}
	}

	transformed := s.Transform(raw, o.Entities.Enablement(name), gctx)

	if rs, ok := s.(*strategy.ReleaseSave); ok {
		releases := make([]model.Release, len(transformed))
		for i, v := range transformed {
			releases[i] = v.(model.Release)
		}
		if err := rs.DownloadAssets(ctx, o.API, o.Store, target.Owner, target.Repo, releases); err != nil {
			return Result{EntityName: name, Success: false, Error: fmt.Errorf("download release assets: %w", err)}
		}
		for i := range transformed {
			transformed[i] = releases[i]
		}
	}

	path, ok := entityFile[name]
	if !ok {
		return Result{EntityName: name, Success: false, Error: fmt.Errorf("no snapshot path declared for %q", name)}
	}
	if err := s.Write(o.Store, path, transformed); err != nil {
		return Result{EntityName: name, Success: false, Error: fmt.Errorf("write: %w", err)}
	}
	return Result{EntityName: name, Success: true, Count: len(transformed)}
}

func (o *Orchestrator) saveGitRepository(ctx context.Context, target Target, dataPath string) Result {
	if o.Git == nil {
		ghlog.Infof("git_repository: no GitService configured; skipping")
		return Result{EntityName: entities.GitRepository, Success: true, Count: 0}
	}
	url := fmt.Sprintf("https://github.com/%s/%s.git", target.Owner, target.Repo)
	if err := o.Git.Clone(ctx, url, filepath.Join(dataPath, "git-repo")); err != nil {
		return Result{EntityName: entities.GitRepository, Success: false, Error: err}
	}
	return Result{EntityName: entities.GitRepository, Success: true, Count: 1}
}

// Restore runs the restore pipeline: the repository-existence gate,
// then for every enabled entity in topological order, Read -> (per item
// Transform -> Write -> UpdateContext).
func (o *Orchestrator) Restore(ctx context.Context, target Target, dataPath string) ([]Result, error) {
	if o.Lifecycle != nil {
		gate := &repolifecycle.Gate{Lifecycle: o.Lifecycle}
		if err := gate.Ensure(ctx, target.Owner, target.Repo, target.CreateRepositoryIfMissing, target.RepositoryPrivate); err != nil {
			return nil, fmt.Errorf("repository existence gate: %w", err)
		}
	}

	gctx := ghcontext.New(uuid.NewString())
	gctx.IncludeOriginalMetadata = o.IncludeOriginalMetadata
	if o.ConflictStrategy != "" {
		gctx.ConflictStrategy = o.ConflictStrategy
	}

	enabled := o.Entities.Enabled()
	ghlog.Infof("starting restore into %s/%s: %d entities enabled", target.Owner, target.Repo, len(enabled))

	var results []Result
	for _, name := range enabled {
		if name == entities.GitRepository {
			results = append(results, o.restoreGitRepository(ctx, target, dataPath))
			continue
		}

		s, ok := o.Strategies.Restore(name)
		if !ok {
			results = append(results, Result{EntityName: name, Success: false, Error: fmt.Errorf("no restore strategy registered for %q", name)})
			continue
		}

		ghlog.Infof("restoring %s...", name)
		result := o.restoreEntity(ctx, s, gctx, target)
		results = append(results, result)
		if !result.Success {
			ghlog.Errorf("%s: %v", name, result.Error)
		}
	}
	return results, nil
}

func (o *Orchestrator) restoreEntity(ctx context.Context, s strategy.RestoreStrategy, gctx *ghcontext.Context, target Target) Result {
	name := s.EntityName()
	path, ok := entityFile[name]
	if !ok {
		return Result{EntityName: name, Success: false, Error: fmt.Errorf("no snapshot path declared for %q", name)}
	}

	items, err := s.Read(o.Store, path)
	if err != nil {
		return Result{EntityName: name, Success: false, Error: fmt.Errorf("read: %w", err)}
	}

	count := 0
	for _, item := range items {
		request, ok := s.Transform(item, gctx)
		if !ok {
			continue
		}
		created, err := s.Write(ctx, o.API, gctx, target.Owner, target.Repo, request)
		if err != nil {
			return Result{EntityName: name, Success: false, Error: fmt.Errorf("write: %w", err), Count: count}
		}
		s.UpdateContext(gctx, request, created)
		count++
	}
	return Result{EntityName: name, Success: true, Count: count}
}

func (o *Orchestrator) restoreGitRepository(ctx context.Context, target Target, dataPath string) Result {
	if o.Git == nil || target.GitCloneURL == "" {
		ghlog.Infof("git_repository: no GitService configured or no source recorded; skipping")
		return Result{EntityName: entities.GitRepository, Success: true, Count: 0}
	}
	targetURL := fmt.Sprintf("https://github.com/%s/%s.git", target.Owner, target.Repo)
	if err := o.Git.Restore(ctx, filepath.Join(dataPath, "git-repo"), targetURL); err != nil {
		return Result{EntityName: entities.GitRepository, Success: false, Error: err}
	}
	return Result{EntityName: entities.GitRepository, Success: true, Count: 1}
}
