// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orchestrator

import (
	"context"
	"testing"

	"github.com/ghdata-go/ghdata/internal/entities"
	"github.com/ghdata-go/ghdata/internal/strategy"
)

func TestEntityFileCoversEveryJSONEntity(t *testing.T) {
	for _, d := range entities.Default() {
		if d.Name == entities.GitRepository {
			continue
		}
		if _, ok := entityFile[d.Name]; !ok {
			t.Errorf("entityFile has no canonical path declared for %q", d.Name)
		}
	}
}

func TestSaveSkipsDisabledEntities(t *testing.T) {
	// No API is configured, so the other entities that read through the
	// Mediator (milestones, releases) are disabled as well; labels is the
	// entity under test.
	reg, err := entities.Load(entities.Default(), func(k string) string {
		switch k {
		case "ENABLE_LABELS", "ENABLE_MILESTONES", "ENABLE_RELEASES":
			return "false"
		}
		return ""
	})
	if err != nil {
		t.Fatalf("entities.Load() error = %v", err)
	}

	orc := &Orchestrator{
		Entities:   reg,
		Strategies: strategy.NewRegistry(),
	}

	results, err := orc.Save(context.Background(), Target{Owner: "o", Repo: "r"}, t.TempDir())
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	for _, res := range results {
		if res.EntityName == entities.Labels {
			t.Errorf("disabled entity %q must not appear in the result list, got %+v", entities.Labels, res)
		}
	}
}

func TestSaveGitRepositoryWithNoGitServiceConfigured(t *testing.T) {
	reg, err := entities.Load([]entities.Declaration{
		{Name: entities.GitRepository, EnvVar: "ENABLE_GIT_REPOSITORY", DefaultValue: true},
	}, func(string) string { return "" })
	if err != nil {
		t.Fatalf("entities.Load() error = %v", err)
	}

	orc := &Orchestrator{Entities: reg, Strategies: strategy.NewRegistry()}
	results, err := orc.Save(context.Background(), Target{Owner: "o", Repo: "r"}, t.TempDir())
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if len(results) != 1 || !results[0].Success || results[0].EntityName != entities.GitRepository {
		t.Fatalf("Save() results = %+v, want one successful git_repository entry (skipped cleanly, no Git configured)", results)
	}
}
