// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package util

import (
	"os"
	"path/filepath"
	"testing"
)

func sameFile(t *testing.T, got, want string) {
	t.Helper()
	fi1, err := os.Stat(want)
	if err != nil {
		t.Fatal(err)
	}
	fi2, err := os.Stat(got)
	if err != nil {
		t.Fatal(err)
	}
	if !os.SameFile(fi1, fi2) {
		t.Fatalf("got: %q; want: %q", got, want)
	}
}

func TestProjectRoot(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	root, err := ProjectRoot()
	if err != nil {
		t.Fatal(err)
	}
	sameFile(t, root, filepath.Join(wd, "../../../"))
}

func TestGenTablesRoot(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir, err := GenTablesRoot()
	if err != nil {
		t.Fatal(err)
	}
	sameFile(t, dir, filepath.Join(wd, "../../gentables"))
}

func TestFindModule(t *testing.T) {
	tmp := t.TempDir()
	child := filepath.Join(tmp, "a", "b")
	if err := os.MkdirAll(child, 0755); err != nil {
		t.Fatal(err)
	}
	mod := []byte("module example.com/foo\n\ngo 1.21\n")
	if err := os.WriteFile(filepath.Join(tmp, "go.mod"), mod, 0644); err != nil {
		t.Fatal(err)
	}
	dir, err := FindModule(child, "example.com/foo")
	if err != nil {
		t.Fatal(err)
	}
	sameFile(t, dir, tmp)

	if _, err := FindModule(child, "example.com/bar"); err == nil {
		t.Fatal("expected an error for a missing module")
	}
	if _, err := FindModule("a/b", "example.com/foo"); err == nil {
		t.Fatal("expected an error for a relative directory")
	}
}
