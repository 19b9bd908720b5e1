// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import "testing"

func getenvMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func baseEnv(overrides map[string]string) map[string]string {
	env := map[string]string{
		"OPERATION":    "save",
		"GITHUB_TOKEN": "token123",
		"GITHUB_REPO":  "octocat/hello-world",
	}
	for k, v := range overrides {
		env[k] = v
	}
	return env
}

func TestLoadValid(t *testing.T) {
	cfg, err := Load(getenvMap(baseEnv(nil)))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Operation != OperationSave {
		t.Errorf("Operation = %q, want save", cfg.Operation)
	}
	if cfg.RepoOwner != "octocat" || cfg.RepoName != "hello-world" {
		t.Errorf("RepoOwner/RepoName = %q/%q, want octocat/hello-world", cfg.RepoOwner, cfg.RepoName)
	}
	if cfg.DataPath != "/data" {
		t.Errorf("DataPath = %q, want default /data", cfg.DataPath)
	}
	if cfg.RepositoryVisibility != VisibilityPublic {
		t.Errorf("RepositoryVisibility = %q, want default public", cfg.RepositoryVisibility)
	}
	if !cfg.IncludeOriginalMetadata {
		t.Errorf("IncludeOriginalMetadata = false, want default true")
	}
}

func TestLoadIncludeOriginalMetadataDisabled(t *testing.T) {
	cfg, err := Load(getenvMap(baseEnv(map[string]string{"INCLUDE_ORIGINAL_METADATA": "false"})))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.IncludeOriginalMetadata {
		t.Errorf("IncludeOriginalMetadata = true, want false when explicitly disabled")
	}
}

func TestLoadMissingOperation(t *testing.T) {
	env := baseEnv(nil)
	delete(env, "OPERATION")
	if _, err := Load(getenvMap(env)); err == nil {
		t.Errorf("Load() with no OPERATION must error")
	}
}

func TestLoadMissingToken(t *testing.T) {
	env := baseEnv(nil)
	delete(env, "GITHUB_TOKEN")
	if _, err := Load(getenvMap(env)); err == nil {
		t.Errorf("Load() with no GITHUB_TOKEN must error")
	}
}

func TestLoadInvalidRepo(t *testing.T) {
	if _, err := Load(getenvMap(baseEnv(map[string]string{"GITHUB_REPO": "not-owner-slash-name"}))); err == nil {
		t.Errorf("Load() with a malformed GITHUB_REPO must error")
	}
}

func TestLoadCustomDataPath(t *testing.T) {
	cfg, err := Load(getenvMap(baseEnv(map[string]string{"DATA_PATH": "/custom"})))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DataPath != "/custom" {
		t.Errorf("DataPath = %q, want /custom", cfg.DataPath)
	}
}

func TestLoadCreateRepositoryIfMissing(t *testing.T) {
	cfg, err := Load(getenvMap(baseEnv(map[string]string{"CREATE_REPOSITORY_IF_MISSING": "yes"})))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.CreateRepositoryIfMissing {
		t.Errorf("CreateRepositoryIfMissing = false, want true")
	}
}

func TestLoadInvalidVisibility(t *testing.T) {
	if _, err := Load(getenvMap(baseEnv(map[string]string{"REPOSITORY_VISIBILITY": "hidden"}))); err == nil {
		t.Errorf("Load() with an invalid REPOSITORY_VISIBILITY must error")
	}
}
