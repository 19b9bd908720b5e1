// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package entities

import (
	"testing"
)

func getenvMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaultsAllEnabled(t *testing.T) {
	r, err := Load(Default(), getenvMap(nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	enabled := r.Enabled()
	if len(enabled) != len(Default()) {
		t.Fatalf("Enabled() = %v, want all %d entities enabled by default", enabled, len(Default()))
	}
	if enabled[0] != GitRepository {
		t.Errorf("Enabled()[0] = %q, want %q (root of the dependency graph)", enabled[0], GitRepository)
	}
}

func TestLoadTopologicalOrder(t *testing.T) {
	r, err := Load(Default(), getenvMap(nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	order := r.Order()
	index := make(map[string]int, len(order))
	for i, n := range order {
		index[n] = i
	}
	for _, d := range Default() {
		for _, dep := range d.Dependencies {
			if index[dep] >= index[d.Name] {
				t.Errorf("%q (index %d) must come after its dependency %q (index %d)", d.Name, index[d.Name], dep, index[dep])
			}
		}
	}
}

func TestCascadeDisable(t *testing.T) {
	r, err := Load(Default(), getenvMap(map[string]string{"ENABLE_ISSUES": "false"}))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if r.Enablement(Issues).Enabled {
		t.Errorf("issues must be disabled directly")
	}
	for _, dependent := range []string{Comments, SubIssues} {
		if r.Enablement(dependent).Enabled {
			t.Errorf("%q must be cascade-disabled when its dependency %q is disabled", dependent, Issues)
		}
	}
	// Siblings of issues that don't depend on it stay enabled.
	if !r.Enablement(PullRequests).Enabled {
		t.Errorf("pull_requests does not depend on issues and must stay enabled")
	}
}

func TestCascadeDisableRoot(t *testing.T) {
	r, err := Load(Default(), getenvMap(map[string]string{"ENABLE_GIT_REPOSITORY": "false"}))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	for _, name := range r.Order() {
		if name == GitRepository {
			continue
		}
		if r.Enablement(name).Enabled {
			t.Errorf("%q must be cascade-disabled when the implicit root git_repository is disabled", name)
		}
	}
}

func TestSelectiveEnablement(t *testing.T) {
	r, err := Load(Default(), getenvMap(map[string]string{"ENABLE_ISSUES": "1,5,9-11"}))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !r.Enablement(Issues).Enabled {
		t.Errorf("a selection-set value must still count as enabled")
	}
	for _, n := range []int{1, 5, 9, 10, 11} {
		if !r.Selects(Issues, n) {
			t.Errorf("Selects(issues, %d) = false, want true", n)
		}
	}
	for _, n := range []int{2, 6, 12} {
		if r.Selects(Issues, n) {
			t.Errorf("Selects(issues, %d) = true, want false", n)
		}
	}
}

func TestLoadUnknownDependencyIsConfigError(t *testing.T) {
	decls := []Declaration{{Name: "a", EnvVar: "ENABLE_A", DefaultValue: true, Dependencies: []string{"missing"}}}
	if _, err := Load(decls, getenvMap(nil)); err == nil {
		t.Errorf("Load() with an unknown dependency reference must error")
	}
}

func TestLoadDuplicateEntityIsConfigError(t *testing.T) {
	decls := []Declaration{
		{Name: "a", EnvVar: "ENABLE_A", DefaultValue: true},
		{Name: "a", EnvVar: "ENABLE_A2", DefaultValue: true},
	}
	if _, err := Load(decls, getenvMap(nil)); err == nil {
		t.Errorf("Load() with a duplicate entity name must error")
	}
}

func TestLoadCycleIsConfigError(t *testing.T) {
	decls := []Declaration{
		{Name: "a", EnvVar: "ENABLE_A", DefaultValue: true, Dependencies: []string{"b"}},
		{Name: "b", EnvVar: "ENABLE_B", DefaultValue: true, Dependencies: []string{"a"}},
	}
	if _, err := Load(decls, getenvMap(nil)); err == nil {
		t.Errorf("Load() with a dependency cycle must error")
	}
}
