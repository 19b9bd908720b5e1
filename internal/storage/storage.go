// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package storage implements the Storage Port (spec.md §4.6): reading and
// writing a typed sequence of entities to a named artifact in a run
// directory, as a pretty-printed JSON document.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ghdata-go/ghdata/internal/ghuberrors"
)

// Port is the contract every strategy's read/write steps go through.
// It is deliberately narrow: callers pass the path relative to the run
// directory and the Go type they expect back.
type Port interface {
	// Write serializes entities (a slice) as a pretty-printed JSON array
	// at path, creating parent directories as needed.
	Write(path string, entities any) error

	// Read deserializes the JSON array or object at path into out, which
	// must be a pointer to a slice or struct. A missing file is reported
	// via os.IsNotExist on the returned error.
	Read(path string, out any) error

	// WriteAsset copies the contents of src to the binary asset path
	// release-assets/<tag>/<name>, creating parent directories as needed.
	// It is an error if the destination already exists (colliding asset
	// names within a tag, per spec.md §5). The returned localPath is
	// absolute, since callers (release asset restore) open it directly
	// with the OS rather than through this Port.
	WriteAsset(tag, name string, src []byte) (localPath string, err error)
}

// FileSystem is the canonical on-disk implementation of Port, rooted at
// a single run directory (spec.md §6's /data layout).
type FileSystem struct {
	Root string
}

// New returns a FileSystem-backed Port rooted at root.
func New(root string) *FileSystem {
	return &FileSystem{Root: root}
}

func (fs *FileSystem) resolve(path string) string {
	return filepath.Join(fs.Root, path)
}

func (fs *FileSystem) Write(path string, entities any) error {
	full := fs.resolve(path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return ghuberrors.Errorf(ghuberrors.KindIO, "creating directory for %s: %w", path, err)
	}
	data, err := json.MarshalIndent(entities, "", "  ")
	if err != nil {
		return ghuberrors.Errorf(ghuberrors.KindIO, "marshaling %s: %w", path, err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return ghuberrors.Errorf(ghuberrors.KindIO, "writing %s: %w", path, err)
	}
	return nil
}

func (fs *FileSystem) Read(path string, out any) error {
	full := fs.resolve(path)
	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return err
		}
		return ghuberrors.Errorf(ghuberrors.KindIO, "reading %s: %w", path, err)
	}

	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return ghuberrors.Errorf(ghuberrors.KindValidation, "malformed JSON in %s: %w", path, err)
	}
	switch probe.(type) {
	case []any, map[string]any:
		// ok
	default:
		return ghuberrors.Errorf(ghuberrors.KindValidation, "malformed %s: top-level JSON value is neither an array nor an object", path)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return ghuberrors.Errorf(ghuberrors.KindValidation, "decoding %s: %w", path, err)
	}
	return nil
}

func (fs *FileSystem) WriteAsset(tag, name string, src []byte) (string, error) {
	rel := filepath.Join("release-assets", tag, name)
	full := fs.resolve(rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", ghuberrors.Errorf(ghuberrors.KindIO, "creating asset directory for %s: %w", rel, err)
	}
	if _, err := os.Stat(full); err == nil {
		return "", ghuberrors.Errorf(ghuberrors.KindConflict, "asset %q already exists for tag %q", name, tag)
	} else if !os.IsNotExist(err) {
		return "", ghuberrors.Errorf(ghuberrors.KindIO, "statting %s: %w", rel, err)
	}
	if err := os.WriteFile(full, src, 0o644); err != nil {
		return "", ghuberrors.Errorf(ghuberrors.KindIO, "writing asset %s: %w", rel, err)
	}
	return full, nil
}

// Canonical filenames for each entity (spec.md §6).
const (
	FileLabels           = "labels.json"
	FileMilestones       = "milestones.json"
	FileIssues           = "issues.json"
	FileComments         = "comments.json"
	FileSubIssues        = "sub_issues.json"
	FilePullRequests     = "pull_requests.json"
	FilePRComments       = "pr_comments.json"
	FilePRReviews        = "pr_reviews.json"
	FilePRReviewComments = "pr_review_comments.json"
	FileReleases         = "releases.json"
)

// ErrNotExist names a missing storage artifact. FileSystem does not
// return it: Read reports a missing file with the os error itself, which
// satisfies os.IsNotExist.
var ErrNotExist = fmt.Errorf("storage artifact does not exist")
