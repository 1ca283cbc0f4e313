// Package process runs short-lived helper executables such as TeX engine
// version probes.
package process

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ErrTimeout is returned when the context ends before the process exits.
var ErrTimeout = errors.New("process did not finish in time")

// waitDelay bounds how long Wait blocks on output pipes held open by
// grandchildren after the process group was killed.
const waitDelay = time.Second

// FirstLine runs path with args and returns the first non-blank line of its
// standard output, trimmed. When ctx ends first the whole process tree is
// killed and ErrTimeout is returned.
func FirstLine(ctx context.Context, path string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, path, args...) // #nosec G204 -- path comes from exec.LookPath
	setProcessGroup(cmd)
	cmd.Cancel = func() error {
		KillProcessGroup(cmd.Process.Pid)
		return nil
	}
	cmd.WaitDelay = waitDelay

	out, err := cmd.Output()
	if ctx.Err() != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrTimeout, path, ctx.Err())
	}
	if err != nil {
		return "", err
	}

	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line, nil
		}
	}
	return "", nil
}
