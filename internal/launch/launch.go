// Package launch runs an external build command with the resolved SDK
// exported into its environment.
package launch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Config defines a fully prepared launch.
type Config struct {
	Command []string          // Command to launch (first element = binary)
	Dir     string            // Working directory, empty for the current one
	Env     map[string]string // Variables added on top of os.Environ()
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// ExitError carries the exit code of a command that ran but failed.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command exited with code %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// Run executes cfg.Command and waits for it. Unset streams default to the
// process's own.
func Run(ctx context.Context, cfg Config) error {
	if len(cfg.Command) == 0 {
		return errors.New("no command provided")
	}

	cmd := exec.CommandContext(ctx, cfg.Command[0], cfg.Command[1:]...)
	cmd.Dir = cfg.Dir
	cmd.Stdin = orReader(cfg.Stdin, os.Stdin)
	cmd.Stdout = orWriter(cfg.Stdout, os.Stdout)
	cmd.Stderr = orWriter(cfg.Stderr, os.Stderr)

	env := os.Environ()
	for k, v := range cfg.Env {
		env = append(env, k+"="+v)
	}
	cmd.Env = env

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Code: exitErr.ExitCode(), Err: err}
		}
		return fmt.Errorf("failed to launch %s: %w", cfg.Command[0], err)
	}
	return nil
}

func orReader(r, def io.Reader) io.Reader {
	if r == nil {
		return def
	}
	return r
}

func orWriter(w, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}
