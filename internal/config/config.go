// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the process-level environment variables of
// spec.md §6. Per-entity enablement variables are read separately by
// internal/entities, which owns the §4.3 grammar.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ghdata-go/ghdata/internal/numberspec"
)

// Operation is the top-level mode the process runs in.
type Operation string

const (
	OperationSave    Operation = "save"
	OperationRestore Operation = "restore"
)

// Visibility is the target repository visibility used when creating a
// missing restore target.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// Config is the parsed process-level configuration.
type Config struct {
	Operation                 Operation
	GitHubToken               string
	RepoOwner                 string
	RepoName                  string
	DataPath                  string
	CreateRepositoryIfMissing bool
	RepositoryVisibility      Visibility
	IncludeOriginalMetadata   bool
}

// Load reads the process-level environment variables and validates them.
// DATA_PATH defaults to "/data" when unset.
func Load(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg := Config{DataPath: "/data", IncludeOriginalMetadata: true}

	switch op := strings.ToLower(strings.TrimSpace(getenv("OPERATION"))); op {
	case "save":
		cfg.Operation = OperationSave
	case "restore":
		cfg.Operation = OperationRestore
	default:
		return Config{}, fmt.Errorf("invalid OPERATION %q: must be save or restore", op)
	}

	cfg.GitHubToken = getenv("GITHUB_TOKEN")
	if cfg.GitHubToken == "" {
		return Config{}, fmt.Errorf("GITHUB_TOKEN is required")
	}

	repo := getenv("GITHUB_REPO")
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" {
		return Config{}, fmt.Errorf("invalid GITHUB_REPO %q: must be owner/name", repo)
	}
	cfg.RepoOwner, cfg.RepoName = owner, name

	if dp := getenv("DATA_PATH"); dp != "" {
		cfg.DataPath = dp
	}

	if v := getenv("CREATE_REPOSITORY_IF_MISSING"); v != "" {
		b, err := numberspec.ParseBoolean(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid CREATE_REPOSITORY_IF_MISSING %q: %w", v, err)
		}
		cfg.CreateRepositoryIfMissing = b
	}

	if v := getenv("INCLUDE_ORIGINAL_METADATA"); v != "" {
		b, err := numberspec.ParseBoolean(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid INCLUDE_ORIGINAL_METADATA %q: %w", v, err)
		}
		cfg.IncludeOriginalMetadata = b
	}

	switch v := strings.ToLower(strings.TrimSpace(getenv("REPOSITORY_VISIBILITY"))); v {
	case "", "public":
		cfg.RepositoryVisibility = VisibilityPublic
	case "private":
		cfg.RepositoryVisibility = VisibilityPrivate
	default:
		return Config{}, fmt.Errorf("invalid REPOSITORY_VISIBILITY %q: must be public or private", v)
	}

	return cfg, nil
}
