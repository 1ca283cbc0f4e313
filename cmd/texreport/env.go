package main

import (
	"context"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/alnah/go-texreport/internal/process"
)

// versionTimeout bounds an engine version probe. A MiKTeX engine may block
// on an install prompt.
const versionTimeout = 10 * time.Second

// Environment holds injectable dependencies for testability: I/O, time,
// process environment and executable lookup.
type Environment struct {
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Environ func() []string

	// LookPath finds an executable on PATH.
	LookPath func(string) (string, error)
	// EngineVersion returns the first line of "<path> --version".
	EngineVersion func(path string) (string, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:           time.Now,
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
		Getenv:        os.Getenv,
		Environ:       os.Environ,
		LookPath:      exec.LookPath,
		EngineVersion: engineVersion,
	}
}

func engineVersion(path string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), versionTimeout)
	defer cancel()
	return process.FirstLine(ctx, path, "--version")
}
