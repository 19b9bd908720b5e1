// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operations

import (
	"testing"

	"github.com/ghdata-go/ghdata/internal/converters"
)

func TestNewRegistryDefaultSetIsValid(t *testing.T) {
	conv, err := converters.NewRegistry()
	if err != nil {
		t.Fatalf("converters.NewRegistry() error = %v", err)
	}
	reg, err := NewRegistry(Default(), conv)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	op, ok := reg.Get("create_issue")
	if !ok {
		t.Fatalf("Get(create_issue) ok = false, want true")
	}
	if !op.IsWrite() {
		t.Errorf("create_issue.IsWrite() = false, want true")
	}
	readOp, ok := reg.Get("get_repository_issues")
	if !ok || readOp.IsWrite() {
		t.Errorf("get_repository_issues must be a read operation")
	}
}

func TestNewRegistryUnknownConverterIsConfigError(t *testing.T) {
	conv, err := converters.NewRegistry()
	if err != nil {
		t.Fatalf("converters.NewRegistry() error = %v", err)
	}
	ops := []Operation{{Name: "bogus", Entity: "issues", BoundaryMethod: "GetBogus", ConverterName: "no_such_converter"}}
	if _, err := NewRegistry(ops, conv); err == nil {
		t.Errorf("NewRegistry() with an operation referencing an unknown converter must error")
	}
}

func TestNewRegistryDuplicateNameIsConfigError(t *testing.T) {
	conv, err := converters.NewRegistry()
	if err != nil {
		t.Fatalf("converters.NewRegistry() error = %v", err)
	}
	ops := []Operation{
		{Name: "dup", Entity: "issues", BoundaryMethod: "GetA"},
		{Name: "dup", Entity: "issues", BoundaryMethod: "GetB"},
	}
	if _, err := NewRegistry(ops, conv); err == nil {
		t.Errorf("NewRegistry() with a duplicate operation name must error")
	}
}

func TestForEntity(t *testing.T) {
	conv, err := converters.NewRegistry()
	if err != nil {
		t.Fatalf("converters.NewRegistry() error = %v", err)
	}
	reg, err := NewRegistry(Default(), conv)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	ops := reg.ForEntity("labels")
	if len(ops) == 0 {
		t.Errorf("ForEntity(labels) = empty, want at least one declared operation")
	}
	for _, op := range ops {
		if op.Entity != "labels" {
			t.Errorf("ForEntity(labels) returned operation for entity %q", op.Entity)
		}
	}
}
