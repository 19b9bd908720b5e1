// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package converters

import (
	"testing"

	"github.com/ghdata-go/ghdata/internal/ghuberrors"
	"github.com/ghdata-go/ghdata/internal/mediator"
	"github.com/ghdata-go/ghdata/internal/model"
)

func TestNewRegistryBuiltInsAreWellFormed(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	for _, name := range []string{"user", "label", "milestone", "issue", "comment", "sub_issue",
		"pull_request", "pr_comment", "pr_review", "pr_review_comment", "release", "release_asset"} {
		if !reg.Has(name) {
			t.Errorf("registry missing built-in converter %q", name)
		}
	}
}

func TestConvertLabel(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	got, err := reg.Convert("label", mediator.RawLabel{ID: "1", Name: "bug", Color: "ff0000"})
	if err != nil {
		t.Fatalf("Convert(label) error = %v", err)
	}
	label, ok := got.(model.Label)
	if !ok {
		t.Fatalf("Convert(label) returned %T, want model.Label", got)
	}
	if label.Name != "bug" || label.Color != "ff0000" {
		t.Errorf("Convert(label) = %+v, want Name=bug Color=ff0000", label)
	}
}

func TestConvertUnknownNameIsConfigError(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	_, err = reg.Convert("no_such_converter", nil)
	if err == nil {
		t.Fatalf("Convert() with an unknown name must error")
	}
	if ghuberrors.KindOf(err) != ghuberrors.KindConfig {
		t.Errorf("Convert() unknown-name error kind = %v, want KindConfig", ghuberrors.KindOf(err))
	}
}

func TestConvertWrongInputTypeIsValidationError(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	_, err = reg.Convert("label", "not a RawLabel")
	if err == nil {
		t.Fatalf("Convert() with a mismatched input type must error")
	}
	if ghuberrors.KindOf(err) != ghuberrors.KindValidation {
		t.Errorf("Convert() type-mismatch error kind = %v, want KindValidation", ghuberrors.KindOf(err))
	}
}
