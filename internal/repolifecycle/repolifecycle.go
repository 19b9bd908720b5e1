// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package repolifecycle implements the restore-time repository-existence
// gate (spec.md §4.5 step 2): create the target repository when it is
// missing and the caller opted in, then poll until the GitHub API
// reports it as available, grounded on
// original_source/packages/github-repo-manager/src/.../repo_boundary.py.
package repolifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ghdata-go/ghdata/internal/ghlog"
	"github.com/ghdata-go/ghdata/internal/ghuberrors"
	"github.com/ghdata-go/ghdata/internal/mediator"
)

// Lifecycle is the RepoLifecycle contract of spec.md §6: create,
// existence-check, and metadata-fetch against the target repository.
type Lifecycle interface {
	RepositoryExists(ctx context.Context, owner, repo string) (bool, error)
	CreateRepository(ctx context.Context, owner, repo string, private bool) error
	GetRepositoryMetadata(ctx context.Context, owner, repo string) (mediator.RepositoryMetadata, error)
}

// MediatorLifecycle backs Lifecycle with the API Mediator's REST calls.
type MediatorLifecycle struct {
	API *mediator.Mediator
}

func (m *MediatorLifecycle) RepositoryExists(ctx context.Context, owner, repo string) (bool, error) {
	_, err := m.API.GetRepositoryMetadata(ctx, owner, repo)
	if err != nil {
		if mediator.ClassifyError(err) == ghuberrors.KindNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (m *MediatorLifecycle) CreateRepository(ctx context.Context, owner, repo string, private bool) error {
	return m.API.CreateRepository(ctx, owner, repo, private)
}

func (m *MediatorLifecycle) GetRepositoryMetadata(ctx context.Context, owner, repo string) (mediator.RepositoryMetadata, error) {
	return m.API.GetRepositoryMetadata(ctx, owner, repo)
}

// Gate options bound the existence-gate's creation and poll behavior.
type Gate struct {
	Lifecycle Lifecycle

	// PollTimeout bounds how long the gate waits for a freshly created
	// repository to become visible to reads. Zero selects a 60s default,
	// matching the teacher's own hand-rolled poll loops.
	PollTimeout time.Duration
	// PollInterval is the sleep between availability checks. Zero selects
	// a 2s default.
	PollInterval time.Duration
}

// ErrRepositoryMissing is returned when the target repository does not
// exist and the caller did not opt into creating it.
var ErrRepositoryMissing = errors.New("target repository does not exist and create-if-missing is false")

// Ensure implements spec.md §4.5 step 2: if the repo is missing and
// createIfMissing is true, create it with the given visibility and
// block until GetRepositoryMetadata reports it, polling on the
// buildlet/gce.go "for start := time.Now(); time.Since(start) < timeout;
// time.Sleep(interval)" idiom. If the repo is missing and
// createIfMissing is false, returns ErrRepositoryMissing.
func (g *Gate) Ensure(ctx context.Context, owner, repo string, createIfMissing, private bool) error {
	exists, err := g.Lifecycle.RepositoryExists(ctx, owner, repo)
	if err != nil {
		return fmt.Errorf("check repository existence: %w", err)
	}
	if exists {
		return nil
	}
	if !createIfMissing {
		return ghuberrors.New(ghuberrors.KindNotFound, ErrRepositoryMissing)
	}

	ghlog.Infof("repository %s/%s does not exist; creating (private=%v)", owner, repo, private)
	if err := g.Lifecycle.CreateRepository(ctx, owner, repo, private); err != nil {
		return fmt.Errorf("create repository %s/%s: %w", owner, repo, err)
	}

	timeout := g.PollTimeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	interval := g.PollInterval
	if interval == 0 {
		interval = 2 * time.Second
	}

	for start := time.Now(); time.Since(start) < timeout; time.Sleep(interval) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if ok, _ := g.Lifecycle.RepositoryExists(ctx, owner, repo); ok {
			return nil
		}
	}
	return ghuberrors.Errorf(ghuberrors.KindTransport, "repository %s/%s was not visible within %s after creation", owner, repo, timeout)
}
