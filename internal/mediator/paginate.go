// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mediator

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/shurcooL/githubv4"
)

// DefaultPageSize is the GraphQL connection page size used when a query
// doesn't otherwise specify one (spec.md §4.1: "Page size is
// configurable; default 100").
const DefaultPageSize = 100

// Paginator drives a GraphQL query across pages until pageInfo.hasNextPage
// is false, following a dotted path (e.g. "Repository.Issues") from the
// query's root down to the paginated connection. It is the generic
// counterpart of the teacher's hand-written cursor loops
// (internal/task/milestones.go's FetchMilestoneIssues and
// PingEarlyIssues), generalized with reflection so one loop serves every
// entity's connection shape instead of being copy-pasted per entity.
type Paginator struct {
	Client *githubv4.Client
}

// Run executes query repeatedly, updating variables[cursorVar] from the
// connection's pageInfo.endCursor after each page, until
// pageInfo.hasNextPage is false. onPage is invoked after each successful
// page so the caller — who alone knows the query's concrete Go type —
// can type-safely accumulate connection.Nodes into its own result slice.
func (p *Paginator) Run(ctx context.Context, query any, variables map[string]any, path string, cursorVar string, onPage func() error) error {
	segments := strings.Split(path, ".")
	for {
		if err := p.Client.Query(ctx, query, variables); err != nil {
			return fmt.Errorf("graphql query at %s: %w", path, err)
		}

		conn, err := followPath(query, segments)
		if err != nil {
			return err
		}

		if onPage != nil {
			if err := onPage(); err != nil {
				return err
			}
		}

		pageInfo := conn.FieldByName("PageInfo")
		if !pageInfo.IsValid() {
			return fmt.Errorf("graphql query at %s: connection has no PageInfo field", path)
		}
		hasNext := pageInfo.FieldByName("HasNextPage")
		if !hasNext.IsValid() || !hasNext.Bool() {
			return nil
		}
		endCursor := pageInfo.FieldByName("EndCursor")
		if !endCursor.IsValid() {
			return fmt.Errorf("graphql query at %s: PageInfo has no EndCursor field", path)
		}
		cursor := githubv4.NewString(endCursor.Interface().(githubv4.String))
		variables[cursorVar] = cursor
	}
}

// followPath walks query (a pointer to a struct) down the named exported
// fields in segments, returning the reflect.Value of the final struct.
func followPath(query any, segments []string) (reflect.Value, error) {
	v := reflect.ValueOf(query)
	for _, seg := range segments {
		v = reflect.Indirect(v)
		if v.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("graphql query path %q: expected struct, got %s", strings.Join(segments, "."), v.Kind())
		}
		v = v.FieldByName(seg)
		if !v.IsValid() {
			return reflect.Value{}, fmt.Errorf("graphql query path %q: field %q not found", strings.Join(segments, "."), seg)
		}
	}
	return reflect.Indirect(v), nil
}
