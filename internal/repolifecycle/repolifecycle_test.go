// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repolifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ghdata-go/ghdata/internal/ghuberrors"
	"github.com/ghdata-go/ghdata/internal/mediator"
)

type fakeLifecycle struct {
	existsAfter int // RepositoryExists reports true starting from this call number (0 = never true)
	calls       int
	created     bool
	createErr   error
}

func (f *fakeLifecycle) RepositoryExists(ctx context.Context, owner, repo string) (bool, error) {
	f.calls++
	if f.existsAfter == 0 {
		return false, nil
	}
	return f.calls >= f.existsAfter, nil
}

func (f *fakeLifecycle) CreateRepository(ctx context.Context, owner, repo string, private bool) error {
	f.created = true
	return f.createErr
}

func (f *fakeLifecycle) GetRepositoryMetadata(ctx context.Context, owner, repo string) (mediator.RepositoryMetadata, error) {
	return mediator.RepositoryMetadata{}, nil
}

func TestGateEnsureAlreadyExists(t *testing.T) {
	f := &fakeLifecycle{existsAfter: 1}
	g := &Gate{Lifecycle: f}
	if err := g.Ensure(context.Background(), "o", "r", false, false); err != nil {
		t.Fatalf("Ensure() error = %v, want nil", err)
	}
	if f.created {
		t.Errorf("CreateRepository must not be called when the repository already exists")
	}
}

func TestGateEnsureMissingWithoutCreateIsError(t *testing.T) {
	f := &fakeLifecycle{existsAfter: 0}
	g := &Gate{Lifecycle: f}
	err := g.Ensure(context.Background(), "o", "r", false, false)
	if err == nil {
		t.Fatalf("Ensure() error = nil, want ErrRepositoryMissing")
	}
	if !errors.Is(err, ErrRepositoryMissing) {
		t.Errorf("Ensure() error = %v, want wrapping ErrRepositoryMissing", err)
	}
	if ghuberrors.KindOf(err) != ghuberrors.KindNotFound {
		t.Errorf("Ensure() error kind = %v, want KindNotFound", ghuberrors.KindOf(err))
	}
}

func TestGateEnsureCreatesAndPolls(t *testing.T) {
	f := &fakeLifecycle{existsAfter: 3} // exists() returns true on its 3rd call: initial check + 2 polls
	g := &Gate{Lifecycle: f, PollTimeout: time.Second, PollInterval: time.Millisecond}
	if err := g.Ensure(context.Background(), "o", "r", true, true); err != nil {
		t.Fatalf("Ensure() error = %v, want nil", err)
	}
	if !f.created {
		t.Errorf("CreateRepository must be called when the repository is missing and createIfMissing is true")
	}
}

func TestGateEnsurePollTimeout(t *testing.T) {
	f := &fakeLifecycle{existsAfter: 1000} // never becomes visible within the poll window
	g := &Gate{Lifecycle: f, PollTimeout: 10 * time.Millisecond, PollInterval: time.Millisecond}
	err := g.Ensure(context.Background(), "o", "r", true, false)
	if err == nil {
		t.Fatalf("Ensure() error = nil, want a poll-timeout error")
	}
	if ghuberrors.KindOf(err) != ghuberrors.KindTransport {
		t.Errorf("Ensure() poll-timeout error kind = %v, want KindTransport", ghuberrors.KindOf(err))
	}
}

func TestGateEnsureCreateFailure(t *testing.T) {
	f := &fakeLifecycle{existsAfter: 0, createErr: errors.New("permission denied")}
	g := &Gate{Lifecycle: f}
	if err := g.Ensure(context.Background(), "o", "r", true, false); err == nil {
		t.Errorf("Ensure() must propagate a CreateRepository error")
	}
}
