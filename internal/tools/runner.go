package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrCommandFailed is wrapped by errors returned when an external command
// starts but exits with a non-zero status.
var ErrCommandFailed = errors.New("command failed")

// Output captures the result of an external command.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes an external command and waits for it to finish.
type Runner interface {
	// Run returns an error only when the command could not be started.
	// A non-zero exit is reported through Output.ExitCode.
	Run(ctx context.Context, name string, args ...string) (*Output, error)
}

// ExecRunner is the production Runner backed by os/exec. Output is captured,
// never streamed to the terminal.
type ExecRunner struct{}

// Run executes name with args.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (*Output, error) {
	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%s not found: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing %s: %w", name, err)
	}

	return output, nil
}

// run executes the command and folds a non-zero exit into an error.
func run(ctx context.Context, r Runner, name string, args ...string) error {
	out, err := r.Run(ctx, name, args...)
	if err != nil {
		return err
	}
	if out.ExitCode != 0 {
		msg := strings.TrimSpace(out.Stderr)
		if msg == "" {
			return fmt.Errorf("%s exited with status %d: %w", name, out.ExitCode, ErrCommandFailed)
		}
		return fmt.Errorf("%s exited with status %d: %s: %w", name, out.ExitCode, msg, ErrCommandFailed)
	}
	return nil
}
