// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package entities is the Entity Registry of spec.md §4.3: a declarative
// catalog of entity kinds, their enablement toggles, and their
// dependency graph. It parses enablement from the environment, cascades
// disablement to dependents, and produces a stable topological order for
// the Orchestrator. Grounded on
// original_source/packages/github-data-tools/src/github_data_tools/entities/__init__.py.
package entities

import (
	"sort"

	"github.com/ghdata-go/ghdata/internal/ghuberrors"
	"github.com/ghdata-go/ghdata/internal/numberspec"
)

// Declaration is one entity kind's static configuration: its name,
// enablement toggle, and dependency edges. save_strategy_factory and
// restore_strategy_factory from spec.md §3 live in internal/strategy's
// registry instead of here, since Go resolves them as ordinary function
// values rather than through name-based dynamic lookup.
type Declaration struct {
	Name         string
	EnvVar       string
	DefaultValue bool
	Dependencies []string
}

// Names of every entity this registry knows how to declare, in the
// fixed order used when none is explicitly registered (spec.md §3's
// table, git_repository prepended as the implicit root every other
// entity's restore path depends on for repo existence).
const (
	GitRepository    = "git_repository"
	Labels           = "labels"
	Milestones       = "milestones"
	Issues           = "issues"
	Comments         = "comments"
	SubIssues        = "sub_issues"
	PullRequests     = "pull_requests"
	PRComments       = "pr_comments"
	PRReviews        = "pr_reviews"
	PRReviewComments = "pr_review_comments"
	Releases         = "releases"
)

// Default returns the built-in entity declarations, in spec.md §3's
// order, with the dependency edges the table implies (an Issue/PR's
// "Milestone (soft)" parent is not a hard dependency — a missing
// milestone is a warning, not a disable per spec.md's invariants — so it
// is omitted here and handled instead as an integrity concern at
// transform time).
func Default() []Declaration {
	return []Declaration{
		{Name: GitRepository, EnvVar: "ENABLE_GIT_REPOSITORY", DefaultValue: true},
		{Name: Labels, EnvVar: "ENABLE_LABELS", DefaultValue: true, Dependencies: []string{GitRepository}},
		{Name: Milestones, EnvVar: "ENABLE_MILESTONES", DefaultValue: true, Dependencies: []string{GitRepository}},
		{Name: Issues, EnvVar: "ENABLE_ISSUES", DefaultValue: true, Dependencies: []string{GitRepository, Labels, Milestones}},
		{Name: Comments, EnvVar: "ENABLE_COMMENTS", DefaultValue: true, Dependencies: []string{Issues}},
		{Name: SubIssues, EnvVar: "ENABLE_SUB_ISSUES", DefaultValue: true, Dependencies: []string{Issues}},
		{Name: PullRequests, EnvVar: "ENABLE_PULL_REQUESTS", DefaultValue: true, Dependencies: []string{GitRepository, Labels, Milestones}},
		{Name: PRComments, EnvVar: "ENABLE_PR_COMMENTS", DefaultValue: true, Dependencies: []string{PullRequests}},
		{Name: PRReviews, EnvVar: "ENABLE_PR_REVIEWS", DefaultValue: true, Dependencies: []string{PullRequests}},
		{Name: PRReviewComments, EnvVar: "ENABLE_PR_REVIEW_COMMENTS", DefaultValue: true, Dependencies: []string{PRReviews}},
		{Name: Releases, EnvVar: "ENABLE_RELEASES", DefaultValue: true, Dependencies: []string{GitRepository}},
	}
}

// Enablement is the parsed enablement value for one entity: either a
// plain boolean or a selection set of positive integers (spec.md §4.3).
type Enablement struct {
	Enabled  bool
	Selected numberspec.Set // nil when Enabled is a plain boolean, not a selection.
}

// Selects reports whether n is included under this enablement. A plain
// boolean enablement selects everything when Enabled, nothing otherwise.
func (e Enablement) Selects(n int) bool {
	if !e.Enabled {
		return false
	}
	if e.Selected == nil {
		return true
	}
	return e.Selected.Contains(n)
}

// Registry is the loaded, validated, topologically sorted set of entity
// declarations together with their resolved enablement.
type Registry struct {
	declarations map[string]Declaration
	order        []string // topological order, declaration order preserved among ties.
	enablement   map[string]Enablement
}

// Load validates decls (unique names, known dependency references,
// acyclic), parses enablement from getenv, cascades disablement to
// fixpoint, and topologically sorts the result. getenv is injected the
// same way internal/config.Load takes one, for testability.
func Load(decls []Declaration, getenv func(string) string) (*Registry, error) {
	byName := make(map[string]Declaration, len(decls))
	for _, d := range decls {
		if _, dup := byName[d.Name]; dup {
			return nil, ghuberrors.Errorf(ghuberrors.KindConfig, "entity %q declared more than once", d.Name)
		}
		byName[d.Name] = d
	}
	for _, d := range decls {
		for _, dep := range d.Dependencies {
			if _, ok := byName[dep]; !ok {
				return nil, ghuberrors.Errorf(ghuberrors.KindConfig, "entity %q depends on unknown entity %q", d.Name, dep)
			}
		}
	}

	order, err := topoSort(decls)
	if err != nil {
		return nil, err
	}

	enablement := make(map[string]Enablement, len(decls))
	for _, d := range decls {
		ev, err := parseEnablement(d, getenv)
		if err != nil {
			return nil, err
		}
		enablement[d.Name] = ev
	}
	cascadeDisable(decls, byName, enablement)

	return &Registry{declarations: byName, order: order, enablement: enablement}, nil
}

// parseEnablement reads d's environment variable and parses it per
// spec.md §4.3: true/false/yes/no/on/off as boolean, otherwise a
// number-specification selection set. An unset variable yields the
// declared default.
func parseEnablement(d Declaration, getenv func(string) string) (Enablement, error) {
	raw := getenv(d.EnvVar)
	if raw == "" {
		return Enablement{Enabled: d.DefaultValue}, nil
	}

	v, err := numberspec.ParseValue(raw)
	if err != nil {
		return Enablement{}, ghuberrors.Errorf(ghuberrors.KindConfig, "invalid enablement %q=%q: %w", d.EnvVar, raw, err)
	}
	if v.IsBool {
		return Enablement{Enabled: v.Bool}, nil
	}
	return Enablement{Enabled: !v.Disabled(), Selected: v.Numbers}, nil
}

// cascadeDisable iteratively disables any entity with a disabled
// dependency, to fixpoint (spec.md §3's cascade invariant).
func cascadeDisable(decls []Declaration, byName map[string]Declaration, enablement map[string]Enablement) {
	for {
		changed := false
		for _, d := range decls {
			ev := enablement[d.Name]
			if !ev.Enabled {
				continue
			}
			for _, dep := range d.Dependencies {
				if !enablement[dep].Enabled {
					ev.Enabled = false
					ev.Selected = nil
					enablement[d.Name] = ev
					changed = true
					break
				}
			}
		}
		if !changed {
			return
		}
	}
}

// topoSort returns decls' names in dependency order using Kahn's
// algorithm, breaking ties by declaration order so the result is stable
// across runs for the same input (spec.md §9's topological-sort
// invariant). A cycle is a fatal Config error.
func topoSort(decls []Declaration) ([]string, error) {
	indexOf := make(map[string]int, len(decls))
	for i, d := range decls {
		indexOf[d.Name] = i
	}

	inDegree := make(map[string]int, len(decls))
	dependents := make(map[string][]string, len(decls))
	for _, d := range decls {
		inDegree[d.Name] = len(d.Dependencies)
		for _, dep := range d.Dependencies {
			dependents[dep] = append(dependents[dep], d.Name)
		}
	}

	var ready []string
	for _, d := range decls {
		if inDegree[d.Name] == 0 {
			ready = append(ready, d.Name)
		}
	}
	sort.Slice(ready, func(i, j int) bool { return indexOf[ready[i]] < indexOf[ready[j]] })

	var order []string
	for len(ready) > 0 {
		n := ready[0]
		ready = ready[1:]
		order = append(order, n)

		var newlyReady []string
		for _, dep := range dependents[n] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				newlyReady = append(newlyReady, dep)
			}
		}
		sort.Slice(newlyReady, func(i, j int) bool { return indexOf[newlyReady[i]] < indexOf[newlyReady[j]] })

		merged := append(ready, newlyReady...)
		sort.SliceStable(merged, func(i, j int) bool { return indexOf[merged[i]] < indexOf[merged[j]] })
		ready = merged
	}

	if len(order) != len(decls) {
		return nil, ghuberrors.Errorf(ghuberrors.KindConfig, "entity dependency cycle detected among %d unresolved entities", len(decls)-len(order))
	}
	return order, nil
}

// Order returns every declared entity's name in topological order,
// regardless of enablement — callers that need only the enabled subset
// should call Enabled.
func (r *Registry) Order() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Enabled returns the enabled entity names, in topological order.
func (r *Registry) Enabled() []string {
	var out []string
	for _, name := range r.order {
		if r.enablement[name].Enabled {
			out = append(out, name)
		}
	}
	return out
}

// Enablement returns the parsed enablement for name.
func (r *Registry) Enablement(name string) Enablement {
	return r.enablement[name]
}

// Declaration returns the declaration for name and whether it exists.
func (r *Registry) Declaration(name string) (Declaration, bool) {
	d, ok := r.declarations[name]
	return d, ok
}

// Selects reports whether entity name is enabled and selects numeric ID
// n — shorthand used by the strategy layer's selective-filtering mixin.
func (r *Registry) Selects(name string, n int) bool {
	return r.enablement[name].Selects(n)
}
