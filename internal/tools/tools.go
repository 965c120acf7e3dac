package tools

import (
	"context"
	"fmt"

	"github.com/tsukuru-labs/tsukuru/internal/platform"
)

// Git initializes version control in a directory.
type Git interface {
	Init(ctx context.Context, dir string) error
}

// Browser opens a URL for the user.
type Browser interface {
	Open(ctx context.Context, url string) error
}

// GitCLI runs the git executable. Its output is discarded.
type GitCLI struct {
	Runner Runner
}

// NewGit returns a GitCLI backed by os/exec.
func NewGit() *GitCLI {
	return &GitCLI{Runner: ExecRunner{}}
}

// Init runs `git init <dir>`.
func (g *GitCLI) Init(ctx context.Context, dir string) error {
	if err := run(ctx, g.runner(), "git", "init", dir); err != nil {
		return fmt.Errorf("git init %s: %w", dir, err)
	}
	return nil
}

func (g *GitCLI) runner() Runner {
	if g.Runner == nil {
		return ExecRunner{}
	}
	return g.Runner
}

// SystemBrowser opens URLs with the platform opener (open, xdg-open,
// rundll32 or $BROWSER).
type SystemBrowser struct {
	Runner Runner

	// Command overrides platform detection when non-empty.
	Command []string
}

// NewBrowser returns a SystemBrowser backed by os/exec.
func NewBrowser() *SystemBrowser {
	return &SystemBrowser{Runner: ExecRunner{}}
}

// Open launches the opener with url as its last argument.
func (b *SystemBrowser) Open(ctx context.Context, url string) error {
	name, args, err := b.command()
	if err != nil {
		return err
	}
	args = append(args, url)

	r := b.Runner
	if r == nil {
		r = ExecRunner{}
	}
	if err := run(ctx, r, name, args...); err != nil {
		return fmt.Errorf("opening %s: %w", url, err)
	}
	return nil
}

func (b *SystemBrowser) command() (string, []string, error) {
	if len(b.Command) > 0 {
		return b.Command[0], append([]string(nil), b.Command[1:]...), nil
	}
	return platform.BrowserCommand()
}
