// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package util locates the simplefold project from within its source tree.
package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// ModulePath is the module path of the simplefold project.
const ModulePath = "github.com/charlievieth/simplefold"

func modulePath(name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	file, err := modfile.ParseLax(name, data, nil)
	if err != nil {
		return "", err
	}
	if file == nil || file.Module == nil || file.Module.Mod.Path == "" {
		return "", errors.New("util: missing module path: " + name)
	}
	return file.Module.Mod.Path, nil
}

// FindModule walks up from the absolute directory dir and returns the first
// directory containing a go.mod file that declares module pkgPath.
func FindModule(dir, pkgPath string) (string, error) {
	if !filepath.IsAbs(dir) {
		return "", errors.New("util: directory must be absolute: " + dir)
	}
	var first error
	for d := filepath.Clean(dir); ; {
		name := filepath.Join(d, "go.mod")
		if _, err := os.Stat(name); err == nil {
			path, err := modulePath(name)
			switch {
			case err != nil:
				if first == nil {
					first = err
				}
			case path == pkgPath:
				return d, nil
			}
		}
		parent := filepath.Dir(d)
		if len(parent) >= len(d) {
			break
		}
		d = parent
	}
	if first != nil {
		return "", fmt.Errorf("util: error finding go.mod for module %q "+
			"in directory: %q: %w", pkgPath, dir, first)
	}
	return "", fmt.Errorf("util: failed to find go.mod for module %q "+
		"in directory: %q", pkgPath, dir)
}

// ProjectRoot returns the root directory of the simplefold module, which
// must contain the working directory.
func ProjectRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindModule(wd, ModulePath)
}

// GenTablesRoot returns the directory of the gentables command.
func GenTablesRoot() (string, error) {
	root, err := ProjectRoot()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(root, "internal", "gentables")
	if _, err := os.Stat(dir); err != nil {
		return "", err
	}
	return dir, nil
}
