// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type record struct {
	Name string `json:"name"`
}

func TestWriteThenRead(t *testing.T) {
	fs := New(t.TempDir())
	want := []record{{Name: "a"}, {Name: "b"}}
	if err := fs.Write(FileLabels, want); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var got []record
	if err := fs.Read(FileLabels, &got); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadMissingFileIsNotExist(t *testing.T) {
	fs := New(t.TempDir())
	var out []record
	err := fs.Read(FileLabels, &out)
	if err == nil || !os.IsNotExist(err) {
		t.Errorf("Read() of a missing file = %v, want an os.IsNotExist error", err)
	}
}

func TestReadMalformedJSON(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, FileLabels), []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	fs := New(root)
	var out []record
	if err := fs.Read(FileLabels, &out); err == nil {
		t.Errorf("Read() of malformed JSON must error")
	}
}

func TestWriteAssetReturnsAbsolutePath(t *testing.T) {
	fs := New(t.TempDir())
	local, err := fs.WriteAsset("v1.0.0", "binary.tar.gz", []byte("data"))
	if err != nil {
		t.Fatalf("WriteAsset() error = %v", err)
	}
	if !filepath.IsAbs(local) {
		t.Errorf("WriteAsset() returned %q, want an absolute path", local)
	}
	got, err := os.ReadFile(local)
	if err != nil {
		t.Fatalf("reading back the written asset: %v", err)
	}
	if string(got) != "data" {
		t.Errorf("asset contents = %q, want %q", got, "data")
	}
}

func TestWriteAssetCollisionIsError(t *testing.T) {
	fs := New(t.TempDir())
	if _, err := fs.WriteAsset("v1.0.0", "binary.tar.gz", []byte("data")); err != nil {
		t.Fatalf("first WriteAsset() error = %v", err)
	}
	if _, err := fs.WriteAsset("v1.0.0", "binary.tar.gz", []byte("other")); err == nil {
		t.Errorf("WriteAsset() must error when the destination name already exists under the same tag")
	}
}
