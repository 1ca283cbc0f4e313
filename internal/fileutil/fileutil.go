// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrFileNameEmpty         = errors.New("file name cannot be empty")
	ErrFileNamePathTraversal = errors.New("file name contains path separator or null byte")
	ErrNotDirectory          = errors.New("not a directory")
)

// FilePermissions is the mode used for files written by this package.
const FilePermissions = 0o644

// Staged is a fully written temporary file created in the same directory as
// its target, waiting to replace it. Commit renames staged files into place,
// so readers never observe a partially written file; Discard drops one.
type Staged struct {
	path    string
	tmpPath string
}

// Stage writes content to a temporary file next to path without touching path.
func Stage(path string, content []byte) (*Staged, error) {
	return stage(path, func(w io.Writer) error {
		_, err := w.Write(content)
		return err
	})
}

// StageCopy copies src to a temporary file next to dst without touching dst.
func StageCopy(src, dst string) (*Staged, error) {
	in, err := os.Open(src) // #nosec G304 -- caller-provided path
	if err != nil {
		return nil, fmt.Errorf("opening source file: %w", err)
	}
	defer func() { _ = in.Close() }()

	return stage(dst, func(w io.Writer) error {
		_, err := io.Copy(w, in)
		return err
	})
}

// Path returns the file the staged content will replace.
func (s *Staged) Path() string { return s.path }

// Discard removes the temporary file. Safe to call after Commit.
func (s *Staged) Discard() { _ = os.Remove(s.tmpPath) }

// CommitError reports which staged file could not be moved into place.
type CommitError struct {
	Path string
	Err  error
}

func (e *CommitError) Error() string { return e.Path + ": " + e.Err.Error() }

func (e *CommitError) Unwrap() error { return e.Err }

// Commit moves every staged file into place. Existing regular files are set
// aside first; if any rename fails, files already committed are restored to
// their previous state (or removed if they did not exist) and the remaining
// temporaries are discarded. The returned error is a *CommitError.
func Commit(files ...*Staged) error {
	type committed struct {
		file   *Staged
		backup string
	}
	done := make([]committed, 0, len(files))

	for i, f := range files {
		backup, err := f.swap()
		if err != nil {
			for j := len(done) - 1; j >= 0; j-- {
				c := done[j]
				if c.backup != "" {
					_ = os.Rename(c.backup, c.file.path)
				} else {
					_ = os.Remove(c.file.path)
				}
			}
			for _, rest := range files[i:] {
				rest.Discard()
			}
			return &CommitError{Path: f.path, Err: err}
		}
		done = append(done, committed{file: f, backup: backup})
	}

	for _, c := range done {
		if c.backup != "" {
			_ = os.Remove(c.backup)
		}
	}
	return nil
}

// swap renames the temporary file over the target and returns where the
// previous regular file was moved, or "" if there was none. Anything other
// than a regular file at the target is left for the rename to reject.
func (s *Staged) swap() (string, error) {
	var backup string
	if info, err := os.Lstat(s.path); err == nil && info.Mode().IsRegular() {
		backup = strings.TrimSuffix(s.tmpPath, ".tmp") + ".bak"
		if err := os.Rename(s.path, backup); err != nil {
			return "", fmt.Errorf("moving previous file aside: %w", err)
		}
	}
	if err := os.Rename(s.tmpPath, s.path); err != nil {
		if backup != "" {
			_ = os.Rename(backup, s.path)
		}
		return "", fmt.Errorf("moving file into place: %w", err)
	}
	return backup, nil
}

func stage(path string, write func(io.Writer) error) (*Staged, error) {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if writeErr := write(tmpFile); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return nil, fmt.Errorf("writing temp file: %w", writeErr)
	}

	if syncErr := tmpFile.Sync(); syncErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return nil, fmt.Errorf("syncing temp file: %w", syncErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return nil, fmt.Errorf("closing temp file: %w", closeErr)
	}

	if chmodErr := os.Chmod(tmpPath, FilePermissions); chmodErr != nil {
		cleanup()
		return nil, fmt.Errorf("setting file mode: %w", chmodErr)
	}
	return &Staged{path: path, tmpPath: tmpPath}, nil
}

// ValidateFileName checks that name is a bare file name safe to join to an
// output directory.
func ValidateFileName(name string) error {
	if name == "" {
		return ErrFileNameEmpty
	}
	if strings.ContainsAny(name, "/\\\x00") || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrFileNamePathTraversal, name)
	}
	return nil
}

// EnsureDir checks that path exists and is a directory.
// The underlying os error is kept in the chain (e.g. os.ErrNotExist).
func EnsureDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "default" -> false (name)
//   - "./custom.sty" -> true (relative path)
//   - "/absolute/path.sty" -> true (absolute)
//   - "C:\styles\report.sty" -> true (Windows)
//   - "sub/dir" -> true (contains separator)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// HasExtension reports whether path ends with one of exts (case-insensitive).
// Extensions include the leading dot.
func HasExtension(path string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}
