package fileutil_test

// Notes:
// - TestStage_MissingDirectory relies on os.CreateTemp failing for a
//   directory that does not exist; the os error must stay in the chain.
// - TestCommit_RollsBackOnFailure uses a non-empty directory at the target so
//   the rename fails on every platform.
// - Sync and Close failures are not tested because triggering them is
//   platform-specific.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/alnah/go-texreport/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestValidateFileName - Output file name validation
// ---------------------------------------------------------------------------

func TestValidateFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fileName string
		wantErr  error
	}{
		{"plain name", "Report.tex", nil},
		{"name without extension", "report", nil},
		{"empty", "", fileutil.ErrFileNameEmpty},
		{"forward slash", "../Report.tex", fileutil.ErrFileNamePathTraversal},
		{"backslash", "..\\Report.tex", fileutil.ErrFileNamePathTraversal},
		{"null byte", "Report\x00.tex", fileutil.ErrFileNamePathTraversal},
		{"dot", ".", fileutil.ErrFileNamePathTraversal},
		{"dot dot", "..", fileutil.ErrFileNamePathTraversal},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateFileName(tt.fileName)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateFileName(%q) = %v, want %v", tt.fileName, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestStage / TestCommit - Staged atomic writes
// ---------------------------------------------------------------------------

func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func readString(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(b)
}

func TestStage_LeavesTargetUntouched(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "Report.tex")
	if err := os.WriteFile(path, []byte("old"), 0o600); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	s, err := fileutil.Stage(path, []byte("new"))
	if err != nil {
		t.Fatalf("Stage() unexpected error: %v", err)
	}
	if got := readString(t, path); got != "old" {
		t.Errorf("target after Stage = %q, want %q", got, "old")
	}
	if s.Path() != path {
		t.Errorf("Path() = %q, want %q", s.Path(), path)
	}

	s.Discard()
	if names := dirNames(t, dir); !slices.Equal(names, []string{"Report.tex"}) {
		t.Errorf("directory contains %v after Discard, want only Report.tex", names)
	}
}

func TestStage_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "Report.tex")

	_, err := fileutil.Stage(path, []byte("x"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Stage() error = %v, want os.ErrNotExist in chain", err)
	}
}

func TestStageCopy(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "custom.sty")
	dst := filepath.Join(dir, "Style.sty")
	if err := os.WriteFile(src, []byte(`\usepackage{xcolor}`), 0o600); err != nil {
		t.Fatalf("writing source: %v", err)
	}

	s, err := fileutil.StageCopy(src, dst)
	if err != nil {
		t.Fatalf("StageCopy() unexpected error: %v", err)
	}
	if err := fileutil.Commit(s); err != nil {
		t.Fatalf("Commit() unexpected error: %v", err)
	}
	if got := readString(t, dst); got != `\usepackage{xcolor}` {
		t.Errorf("copied content = %q", got)
	}
}

func TestStageCopy_MissingSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := fileutil.StageCopy(filepath.Join(dir, "nope.sty"), filepath.Join(dir, "Style.sty"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("StageCopy() error = %v, want os.ErrNotExist in chain", err)
	}
	if names := dirNames(t, dir); len(names) != 0 {
		t.Errorf("directory contains %v after failed StageCopy", names)
	}
}

func TestCommit(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	report := filepath.Join(dir, "Report.tex")
	style := filepath.Join(dir, "Style.sty")
	if err := os.WriteFile(report, []byte("old report"), 0o600); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	a, err := fileutil.Stage(report, []byte("new report"))
	if err != nil {
		t.Fatalf("Stage() unexpected error: %v", err)
	}
	b, err := fileutil.Stage(style, []byte("new style"))
	if err != nil {
		t.Fatalf("Stage() unexpected error: %v", err)
	}
	if err := fileutil.Commit(a, b); err != nil {
		t.Fatalf("Commit() unexpected error: %v", err)
	}

	if got := readString(t, report); got != "new report" {
		t.Errorf("report = %q, want %q", got, "new report")
	}
	if got := readString(t, style); got != "new style" {
		t.Errorf("style = %q, want %q", got, "new style")
	}
	if names := dirNames(t, dir); !slices.Equal(names, []string{"Report.tex", "Style.sty"}) {
		t.Errorf("directory contains %v, want only the committed files", names)
	}
	info, err := os.Stat(report)
	if err != nil {
		t.Fatalf("stat report: %v", err)
	}
	if info.Mode().Perm() != fileutil.FilePermissions {
		t.Errorf("report mode = %v, want %v", info.Mode().Perm(), os.FileMode(fileutil.FilePermissions))
	}
}

func TestCommit_RollsBackOnFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		oldReport  bool
		wantReport string
		wantNames  []string
	}{
		{
			name:      "new report is removed",
			wantNames: []string{"Style.sty"},
		},
		{
			name:       "previous report is restored",
			oldReport:  true,
			wantReport: "old report",
			wantNames:  []string{"Report.tex", "Style.sty"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			report := filepath.Join(dir, "Report.tex")
			style := filepath.Join(dir, "Style.sty")
			if tt.oldReport {
				if err := os.WriteFile(report, []byte("old report"), 0o600); err != nil {
					t.Fatalf("writing file: %v", err)
				}
			}
			// A non-empty directory at the style path makes its rename fail.
			if err := os.MkdirAll(filepath.Join(style, "keep"), 0o750); err != nil {
				t.Fatalf("creating directory: %v", err)
			}

			a, err := fileutil.Stage(report, []byte("new report"))
			if err != nil {
				t.Fatalf("Stage() unexpected error: %v", err)
			}
			b, err := fileutil.Stage(style, []byte("new style"))
			if err != nil {
				t.Fatalf("Stage() unexpected error: %v", err)
			}

			err = fileutil.Commit(a, b)
			var ce *fileutil.CommitError
			if !errors.As(err, &ce) {
				t.Fatalf("Commit() error = %v, want *CommitError", err)
			}
			if ce.Path != style {
				t.Errorf("CommitError.Path = %q, want %q", ce.Path, style)
			}

			if tt.oldReport {
				if got := readString(t, report); got != tt.wantReport {
					t.Errorf("report = %q, want %q", got, tt.wantReport)
				}
			}
			if names := dirNames(t, dir); !slices.Equal(names, tt.wantNames) {
				t.Errorf("directory contains %v, want %v", names, tt.wantNames)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestEnsureDir - Directory checks
// ---------------------------------------------------------------------------

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	if err := fileutil.EnsureDir(dir); err != nil {
		t.Errorf("EnsureDir(dir) = %v, want nil", err)
	}
	if err := fileutil.EnsureDir(file); !errors.Is(err, fileutil.ErrNotDirectory) {
		t.Errorf("EnsureDir(file) = %v, want ErrNotDirectory", err)
	}
	if err := fileutil.EnsureDir(filepath.Join(dir, "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("EnsureDir(missing) = %v, want os.ErrNotExist", err)
	}
}

// ---------------------------------------------------------------------------
// TestFileExists - File existence checks
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.png")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", file, true},
		{"directory", dir, false},
		{"missing", filepath.Join(dir, "b.png"), false},
	}

	for _, tt := range tests {
		if got := fileutil.FileExists(tt.path); got != tt.want {
			t.Errorf("%s: FileExists(%q) = %v, want %v", tt.name, tt.path, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath / TestHasExtension - Path classification
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"default", false},
		{"my-style", false},
		{"./custom.sty", true},
		{"/abs/Style.sty", true},
		{`C:\styles\report.sty`, true},
		{"sub/dir", true},
	}

	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestHasExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		exts []string
		want bool
	}{
		{"plot.pgf", []string{".pgf"}, true},
		{"plot.PGF", []string{".pgf"}, true},
		{"plot.png", []string{".pgf"}, false},
		{"report.yml", []string{".yaml", ".yml"}, true},
		{"noext", []string{".pgf"}, false},
	}

	for _, tt := range tests {
		if got := fileutil.HasExtension(tt.path, tt.exts...); got != tt.want {
			t.Errorf("HasExtension(%q, %v) = %v, want %v", tt.path, tt.exts, got, tt.want)
		}
	}
}
