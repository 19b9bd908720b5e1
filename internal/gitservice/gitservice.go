// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gitservice is the GitService contract of spec.md §6: clone and
// restore the repository's git history alongside the entity snapshot.
// The binary git-clone driver itself is out of core scope (spec.md §1);
// this package is the thin exec.Command wrapper the git_repository
// entity's strategies are written against, grounded on the teacher's own
// exec.Command usage in cmd/release/release.go (building an argument
// list, wiring Stdout/Stderr, returning a wrapped error on failure).
package gitservice

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/ghdata-go/ghdata/internal/ghuberrors"
)

// Service is the GitService contract: clone the source repository to a
// local path, or push a local repository to a freshly created target.
type Service interface {
	Clone(ctx context.Context, url, targetPath string) error
	Restore(ctx context.Context, sourcePath, targetURL string) error
}

// CLI shells out to the system git binary.
type CLI struct {
	// GitPath overrides the git binary to invoke; empty selects "git" off
	// $PATH.
	GitPath string
}

func (c *CLI) bin() string {
	if c.GitPath != "" {
		return c.GitPath
	}
	return "git"
}

// Clone runs "git clone --mirror <url> <targetPath>", a bare mirror
// clone so every ref and tag is captured, matching what the restore
// side pushes back verbatim.
func (c *CLI) Clone(ctx context.Context, url, targetPath string) error {
	cmd := exec.CommandContext(ctx, c.bin(), "clone", "--mirror", url, targetPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return ghuberrors.Errorf(ghuberrors.KindIO, "git clone %s: %w: %s", url, err, out)
	}
	return nil
}

// Restore pushes every ref from the mirrored clone at sourcePath to
// targetURL: "git push --mirror <targetURL>" run with sourcePath as the
// working directory.
func (c *CLI) Restore(ctx context.Context, sourcePath, targetURL string) error {
	cmd := exec.CommandContext(ctx, c.bin(), "push", "--mirror", targetURL)
	cmd.Dir = sourcePath
	if out, err := cmd.CombinedOutput(); err != nil {
		return ghuberrors.Errorf(ghuberrors.KindIO, "git push --mirror to %s: %w: %s", targetURL, err, out)
	}
	return nil
}

var _ Service = (*CLI)(nil)

// ErrNotConfigured reports that no Service was supplied. Nothing in this
// module returns it: when the Orchestrator has no Git service, it skips
// git_repository with a successful, zero-count result instead.
var ErrNotConfigured = fmt.Errorf("git service not configured")
