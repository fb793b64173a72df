// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package simplefold

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlievieth/simplefold/internal/tablegen"
	"github.com/charlievieth/simplefold/internal/ucd"
)

func buildTables(t testing.TB) *tablegen.Tables {
	t.Helper()
	tables, err := tablegen.Build(loadCaseFolding(t))
	require.NoError(t, err)
	return tables
}

func TestTablesUpToDate(t *testing.T) {
	tables := buildTables(t)

	assert.Equal(t, tables.Flat, _FlatFold[:], "_FlatFold")
	assert.Equal(t, tables.Level1, _FoldLevel1[:], "_FoldLevel1")
	assert.Equal(t, tables.Data, _FoldData[:], "_FoldData")
	assert.Equal(t, tables.SurrogateLevel1, _SurrogateLevel1[:], "_SurrogateLevel1")

	pairs := make([][2]uint16, len(tables.SurrogateData))
	for i, p := range tables.SurrogateData {
		pairs[i] = p
	}
	assert.Equal(t, pairs, _SurrogateData[:], "_SurrogateData")
	assert.Equal(t, ucd.CaseFoldingVersion, UnicodeVersion)
}

func TestTablesSource(t *testing.T) {
	if testing.Short() {
		t.Skip("short test")
	}
	want, err := os.ReadFile("tables.go")
	require.NoError(t, err)
	got, err := buildTables(t).Source(tablegen.Config{UnicodeVersion: UnicodeVersion})
	require.NoError(t, err)
	if string(got) != string(want) {
		t.Fatal("tables.go is out of date: run go generate")
	}
}

func TestTablesInfo(t *testing.T) {
	data, err := os.ReadFile(".tables.json")
	require.NoError(t, err)
	var info map[string]struct {
		Filename       string `json:"filename"`
		UnicodeVersion string `json:"unicode_version"`
		CaseFoldHash   string `json:"case_fold_hash"`
		FoldRows       int    `json:"fold_rows"`
		SurrogateRows  int    `json:"surrogate_rows"`
	}
	require.NoError(t, json.Unmarshal(data, &info))
	ti, ok := info["tables.go"]
	require.True(t, ok, "missing tables.go entry")

	st := buildTables(t).Stats()
	assert.Equal(t, UnicodeVersion, ti.UnicodeVersion)
	assert.Equal(t, tablegen.FoldHash(loadCaseFolding(t)), ti.CaseFoldHash)
	assert.Equal(t, st.FoldRows, ti.FoldRows)
	assert.Equal(t, st.SurrogateRows, ti.SurrogateRows)
	assert.Equal(t, len(_FoldData)/256, ti.FoldRows)
	assert.Equal(t, len(_SurrogateData)/256, ti.SurrogateRows)
}

// Every level 1 offset must address a complete row.
func TestTableBounds(t *testing.T) {
	for i, off := range _FoldLevel1 {
		if int(off)+0xFF >= len(_FoldData) {
			t.Errorf("_FoldLevel1[%d] = %d: out of range", i, off)
		}
	}
	for i, off := range _SurrogateLevel1 {
		if int(off)+0xFF >= len(_SurrogateData) {
			t.Errorf("_SurrogateLevel1[%d] = %d: out of range", i, off)
		}
	}
}
