// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The ghdata binary mirrors a GitHub repository's issue-tracker state to
// and from a local JSON snapshot: labels, milestones, issues, comments,
// sub-issue links, pull requests and their comments/reviews/review
// comments, and releases with their assets. Operation, target
// repository, and data path are read from the environment (spec.md §6)
// rather than flags, since this binary is meant to run unattended in a
// container the same way the teacher's own batch jobs do.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ghdata-go/ghdata/internal/config"
	"github.com/ghdata-go/ghdata/internal/converters"
	"github.com/ghdata-go/ghdata/internal/entities"
	"github.com/ghdata-go/ghdata/internal/ghlog"
	"github.com/ghdata-go/ghdata/internal/gitservice"
	"github.com/ghdata-go/ghdata/internal/mediator"
	"github.com/ghdata-go/ghdata/internal/operations"
	"github.com/ghdata-go/ghdata/internal/orchestrator"
	"github.com/ghdata-go/ghdata/internal/repolifecycle"
	"github.com/ghdata-go/ghdata/internal/storage"
	"github.com/ghdata-go/ghdata/internal/strategy"
)

func main() {
	os.Exit(run())
}

// run wires every collaborator together and returns the process exit
// code: 0 on a clean run, 1 on a configuration error, a run-level
// failure (e.g. the repository existence gate), or any per-entity
// failure reported in the result list.
func run() int {
	cfg, err := config.Load(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ghdata: configuration error: %v\n", err)
		return 1
	}

	conv, err := converters.NewRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ghdata: converter registry: %v\n", err)
		return 1
	}
	if _, err := operations.NewRegistry(operations.Default(), conv); err != nil {
		fmt.Fprintf(os.Stderr, "ghdata: operation registry: %v\n", err)
		return 1
	}

	entityRegistry, err := entities.Load(entities.Default(), os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ghdata: entity registry: %v\n", err)
		return 1
	}

	api := mediator.New(cfg.GitHubToken)
	store := store(cfg)
	lifecycle := &repolifecycle.MediatorLifecycle{API: api}

	orc := &orchestrator.Orchestrator{
		Entities:                entityRegistry,
		API:                     api,
		Store:                   store,
		Strategies:              strategy.NewRegistry(),
		Converters:              conv,
		Git:                     &gitservice.CLI{},
		Lifecycle:               lifecycle,
		IncludeOriginalMetadata: cfg.IncludeOriginalMetadata,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	target := orchestrator.Target{
		Owner:                     cfg.RepoOwner,
		Repo:                      cfg.RepoName,
		CreateRepositoryIfMissing: cfg.CreateRepositoryIfMissing,
		RepositoryPrivate:         cfg.RepositoryVisibility == config.VisibilityPrivate,
	}

	ghlog.Infof("ghdata starting: operation=%s repo=%s/%s data=%s", cfg.Operation, cfg.RepoOwner, cfg.RepoName, cfg.DataPath)

	var results []orchestrator.Result
	switch cfg.Operation {
	case config.OperationSave:
		results, err = orc.Save(ctx, target, cfg.DataPath)
	case config.OperationRestore:
		results, err = orc.Restore(ctx, target, cfg.DataPath)
	default:
		fmt.Fprintf(os.Stderr, "ghdata: unknown operation %q\n", cfg.Operation)
		return 1
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ghdata: %s failed: %v\n", cfg.Operation, err)
		return 1
	}

	return report(cfg.Operation, results)
}

func store(cfg config.Config) *storage.FileSystem {
	return storage.New(cfg.DataPath)
}

// report prints the per-entity outcome summary spec.md §7 describes as
// user-visible behavior and returns the process exit code.
func report(op config.Operation, results []orchestrator.Result) int {
	var failed []orchestrator.Result
	total := 0
	for _, r := range results {
		total += r.Count
		if r.Success {
			ghlog.Infof("%-20s ok (%d)", r.EntityName, r.Count)
		} else {
			failed = append(failed, r)
		}
	}

	if len(failed) == 0 {
		ghlog.Infof("%s completed: %d entities, %d items", op, len(results), total)
		return 0
	}

	ghlog.Errorf("%s completed with errors:", op)
	for _, r := range failed {
		ghlog.Errorf("  %s: %v", r.EntityName, r.Error)
	}
	return 1
}
