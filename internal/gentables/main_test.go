// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlievieth/simplefold/internal/gen/util"
	"github.com/charlievieth/simplefold/internal/tablegen"
	"github.com/charlievieth/simplefold/internal/ucd"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestWriteFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.go")
	require.NoError(t, writeFile(name, []byte("a")))
	require.NoError(t, writeFile(name, []byte("b")))
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "b", string(data))

	matches, err := filepath.Glob(name + ".tmp.*")
	require.NoError(t, err)
	assert.Empty(t, matches, "temp files were not removed")
}

func TestTableInfo(t *testing.T) {
	name := filepath.Join(t.TempDir(), tableInfoFile)
	_, err := readTableInfo(name)
	assert.ErrorIs(t, err, os.ErrNotExist)

	a := TableInfo{Filename: "a.go", UnicodeVersion: "14.0.0", CaseFoldHash: "abc", FoldRows: 1}
	b := TableInfo{Filename: "b.go", UnicodeVersion: "15.0.0", CaseFoldHash: "def", SurrogateRows: 2}
	require.NoError(t, updateTableInfo(name, a))
	require.NoError(t, updateTableInfo(name, b))

	m, err := readTableInfo(name)
	require.NoError(t, err)
	assert.Equal(t, map[string]TableInfo{"a.go": a, "b.go": b}, m)
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	conf := &config{
		version: ucd.CaseFoldingVersion,
		output:  filepath.Join(dir, "tables.go"),
		quiet:   true,
	}

	changed, err := generate(conf)
	require.NoError(t, err)
	assert.True(t, changed)

	// The generated file must match the checked in tables.
	root, err := util.ProjectRoot()
	require.NoError(t, err)
	want, err := os.ReadFile(filepath.Join(root, "tables.go"))
	require.NoError(t, err)
	got, err := os.ReadFile(conf.output)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))

	infos, err := readTableInfo(filepath.Join(dir, tableInfoFile))
	require.NoError(t, err)
	info := infos["tables.go"]
	assert.Equal(t, ucd.CaseFoldingVersion, info.UnicodeVersion)
	assert.Len(t, info.CaseFoldHash, 64)

	// Nothing changed
	changed, err = generate(conf)
	require.NoError(t, err)
	assert.False(t, changed)

	// A dry run reports, but does not fix, a modified file.
	require.NoError(t, os.WriteFile(conf.output, []byte("package simplefold\n"), 0644))
	conf.dryRun = true
	conf.force = true
	changed, err = generate(conf)
	require.NoError(t, err)
	assert.True(t, changed)
	got, err = os.ReadFile(conf.output)
	require.NoError(t, err)
	assert.Equal(t, "package simplefold\n", string(got))

	conf.dryRun = false
	changed, err = generate(conf)
	require.NoError(t, err)
	assert.True(t, changed)
	got, err = os.ReadFile(conf.output)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestGenerateInvalidData(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "CaseFolding.txt")
	require.NoError(t, os.WriteFile(data, []byte("0041; C; 0000;\n"), 0644))
	conf := &config{
		data:    data,
		version: "0.0.0",
		output:  filepath.Join(dir, "tables.go"),
		quiet:   true,
	}
	_, err := generate(conf)
	require.Error(t, err)
	assert.False(t, fileExists(conf.output))
}

func TestCountRunes(t *testing.T) {
	rt := &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 'A', Hi: 'Z', Stride: 1}, {Lo: 0x100, Hi: 0x104, Stride: 2}},
		R32: []unicode.Range32{{Lo: 0x10400, Hi: 0x10427, Stride: 1}},
	}
	assert.Equal(t, 26+3+40, countRunes(rt))
	assert.Equal(t, 0, countRunes(&unicode.RangeTable{}))
}

func TestCheckFolded(t *testing.T) {
	m := ucd.FoldMap{'A': 'a', 'B': 'b', 0x212A: 'k', 0x10400: 0x10428}
	tables, err := tablegen.Build(m)
	require.NoError(t, err)
	n, err := checkFolded(tables, m)
	require.NoError(t, err)
	assert.Equal(t, len(m), n)

	// Tables built from a different map do not match.
	_, err = checkFolded(tables, ucd.FoldMap{'A': 'a'})
	assert.Error(t, err)
	_, err = checkFolded(tables, ucd.FoldMap{'A': 'a', 'B': 'b', 'C': 'c', 0x212A: 'k', 0x10400: 0x10428})
	assert.Error(t, err)

	full, err := loadCaseFolding("")
	require.NoError(t, err)
	tables, err = tablegen.Build(full)
	require.NoError(t, err)
	n, err = checkFolded(tables, full)
	require.NoError(t, err)
	assert.Equal(t, len(full), n)
}
