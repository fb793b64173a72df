// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// gentables generates the simple case folding tables used by simplefold
// from a Unicode CaseFolding.txt file. The tables must be regenerated if
// this code or the tablegen package is changed (`go generate`).
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"unicode"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/charlievieth/simplefold/internal/gen/util"
	"github.com/charlievieth/simplefold/internal/tablegen"
	"github.com/charlievieth/simplefold/internal/ucd"
)

const tableInfoFile = ".tables.json"

func init() {
	initLogs()
}

func initLogs() {
	log.SetPrefix("gentables: ")
	log.SetFlags(log.Lshortfile)
}

// TableInfo records the inputs of a generated tables file so that it is
// only regenerated when they change.
type TableInfo struct {
	Filename       string `json:"filename"`
	UnicodeVersion string `json:"unicode_version"`
	CaseFoldHash   string `json:"case_fold_hash"`
	FoldRows       int    `json:"fold_rows"`
	SurrogateRows  int    `json:"surrogate_rows"`
}

func readTableInfo(name string) (map[string]TableInfo, error) {
	m := make(map[string]TableInfo)
	data, err := os.ReadFile(name)
	if err != nil {
		return m, err
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parsing %s: %w", name, err)
	}
	return m, nil
}

func updateTableInfo(name string, info TableInfo) error {
	m, err := readTableInfo(name)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	m[info.Filename] = info
	data, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return err
	}
	return writeFile(name, append(data, '\n'))
}

func dataEqual(filename string, data []byte) bool {
	got, err := os.ReadFile(filename)
	return err == nil && bytes.Equal(got, data)
}

// writeFile atomically replaces the contents of name with data.
func writeFile(name string, data []byte) error {
	if dataEqual(name, data) {
		return nil
	}
	f, err := os.CreateTemp(filepath.Dir(name), filepath.Base(name)+".tmp.*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, name); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func fileExists(name string) bool {
	_, err := os.Lstat(name)
	return err == nil
}

// loadCaseFolding loads the CaseFolding.txt file name or the embedded
// file if name is empty.
func loadCaseFolding(name string) (ucd.FoldMap, error) {
	var r io.Reader = ucd.CaseFolding()
	if name != "" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	m, err := ucd.LoadCaseFolding(r)
	if err != nil {
		return nil, fmt.Errorf("loading case folding data: %w", err)
	}
	return m, nil
}

// countRunes returns the number of code points in rt.
func countRunes(rt *unicode.RangeTable) int {
	n := 0
	for _, r := range rt.R16 {
		n += int(r.Hi-r.Lo)/int(r.Stride) + 1
	}
	for _, r := range rt.R32 {
		n += int(r.Hi-r.Lo)/int(r.Stride) + 1
	}
	return n
}

// checkFolded checks that exactly the code points with a mapping in m fold
// through the generated tables and returns their number.
func checkFolded(tables *tablegen.Tables, m ucd.FoldMap) (int, error) {
	folded := tables.Folded()
	want := 0
	for from, to := range m {
		if from == to {
			continue
		}
		want++
		if !unicode.Is(folded, from) {
			return 0, fmt.Errorf("code point %U is missing from the folded tables", from)
		}
	}
	if n := countRunes(folded); n != want {
		return 0, fmt.Errorf("folded tables contain %d code points; want: %d", n, want)
	}
	return want, nil
}

func newProgressBar(rows int, quiet bool) *progressbar.ProgressBar {
	if !quiet && term.IsTerminal(int(os.Stderr.Fd())) {
		return progressbar.Default(int64(rows), "building tables")
	}
	return progressbar.DefaultSilent(int64(rows))
}

func chop(s string, n int) string {
	if len(s) >= n {
		return s[:n]
	}
	return s
}

type config struct {
	data    string
	version string
	output  string
	dryRun  bool
	force   bool
	quiet   bool
}

// generate generates the tables file and reports if it was changed.
func generate(conf *config) (changed bool, err error) {
	m, err := loadCaseFolding(conf.data)
	if err != nil {
		return false, err
	}
	foldHash := tablegen.FoldHash(m)

	infoFile := filepath.Join(filepath.Dir(conf.output), tableInfoFile)
	infos, err := readTableInfo(infoFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	base := filepath.Base(conf.output)
	prev := infos[base]

	if !conf.force && fileExists(conf.output) &&
		prev.UnicodeVersion == conf.version &&
		prev.CaseFoldHash == foldHash {

		log.Printf("exiting - no changes:\n"+
			"    unicode_version: %q\n"+
			"    case_fold_hash:  %q\n",
			prev.UnicodeVersion, chop(prev.CaseFoldHash, 8))
		return false, nil
	}

	bar := newProgressBar(tablegen.Rows, conf.quiet)
	b := tablegen.Builder{
		Progress: func(n int) { bar.Add(n) },
	}
	tables, err := b.Build(m)
	bar.Finish()
	if err != nil {
		return false, err
	}

	foldedRunes, err := checkFolded(tables, m)
	if err != nil {
		return false, err
	}

	src, err := tables.Source(tablegen.Config{UnicodeVersion: conf.version})
	if err != nil {
		return false, err
	}
	st := tables.Stats()
	info := TableInfo{
		Filename:       base,
		UnicodeVersion: conf.version,
		CaseFoldHash:   foldHash,
		FoldRows:       st.FoldRows,
		SurrogateRows:  st.SurrogateRows,
	}

	changed = !dataEqual(conf.output, src)
	if conf.dryRun {
		if changed || info != prev {
			log.Printf("WARN: would change %s (remove -dry-run flag to update "+
				"the generated files):\n"+
				"    unicode_version: %q => %q\n"+
				"    case_fold_hash:  %q => %q\n",
				conf.output, prev.UnicodeVersion, info.UnicodeVersion,
				chop(prev.CaseFoldHash, 8), chop(info.CaseFoldHash, 8))
			return true, nil
		}
		return false, nil
	}

	if err := writeFile(conf.output, src); err != nil {
		return false, err
	}
	if err := updateTableInfo(infoFile, info); err != nil {
		return false, err
	}
	log.Printf("Successfully generated tables:\n"+
		"    unicode_version: %q\n"+
		"    case_fold_hash:  %q\n"+
		"    fold_rows:       %d\n"+
		"    surrogate_rows:  %d\n"+
		"    folded_runes:    %d\n"+
		"    table_bytes:     %d\n",
		info.UnicodeVersion, chop(info.CaseFoldHash, 8),
		st.FoldRows, st.SurrogateRows, foldedRunes, st.Bytes)
	return changed, nil
}

func realMain() int {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [OPTION]...\n",
			filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}

	var conf config
	flag.StringVar(&conf.data, "data", "",
		"path to CaseFolding.txt (default: the embedded Unicode "+ucd.CaseFoldingVersion+" file)")
	flag.StringVar(&conf.version, "unicode", ucd.CaseFoldingVersion,
		"Unicode version of the case folding data")
	flag.StringVar(&conf.output, "output", "",
		"write the generated tables to `file` (default: tables.go in the project root)")
	flag.BoolVar(&conf.dryRun, "dry-run", false,
		"report if generate would change the generated tables file and exit non-zero")
	flag.BoolVar(&conf.force, "force", false, "regenerate the tables even if unchanged")
	flag.BoolVar(&conf.quiet, "quiet", false, "do not show a progress bar")
	flag.Parse()

	if flag.NArg() != 0 {
		flag.Usage()
		return 2
	}
	if conf.data != "" && conf.version == ucd.CaseFoldingVersion {
		log.Printf("WARN: using the default Unicode version %q with data file %q",
			conf.version, conf.data)
	}

	if conf.output == "" {
		root, err := util.ProjectRoot()
		if err != nil {
			log.Println(err)
			return 1
		}
		conf.output = filepath.Join(root, "tables.go")
	}

	changed, err := generate(&conf)
	if err != nil {
		log.Println(err)
		return 1
	}
	if conf.dryRun && changed {
		return 1
	}
	return 0
}

func main() {
	if code := realMain(); code != 0 {
		os.Exit(code)
	}
}
