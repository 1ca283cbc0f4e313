package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// testEnv is an Environment with captured output, a fixed clock and
// injected variables and executables.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	vars   map[string]string
	bins   map[string]string
}

func newTestEnv() *testEnv {
	te := &testEnv{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		vars:   map[string]string{},
		bins:   map[string]string{},
	}
	te.Environment = &Environment{
		Now:     func() time.Time { return time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC) },
		Stdout:  te.stdout,
		Stderr:  te.stderr,
		Getenv:  func(k string) string { return te.vars[k] },
		Environ: te.environ,
		LookPath: func(name string) (string, error) {
			if p, ok := te.bins[name]; ok {
				return p, nil
			}
			return "", errors.New("executable file not found in $PATH")
		},
		EngineVersion: func(path string) (string, error) { return "TeX " + filepath.Base(path), nil },
	}
	return te
}

func (te *testEnv) environ() []string {
	out := make([]string, 0, len(te.vars))
	for k, v := range te.vars {
		out = append(out, k+"="+v)
	}
	return out
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

const simpleManifest = `title: Results
subtitle: Q1
date: auto
content:
  - chapter: Intro
  - prose: "100% done"
  - section: Data
  - table: {csv: data.csv, caption: Totals}
  - figure: {paths: [a.png, b.png], caption: Plots}
`
