package scaffold

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tsukuru-labs/tsukuru/internal/config"
	"github.com/tsukuru-labs/tsukuru/internal/layout"
	"github.com/tsukuru-labs/tsukuru/internal/tools"
)

// Builder performs scaffolding under the base directory held by Config.
type Builder struct {
	Config  config.Config
	Git     tools.Git
	Browser tools.Browser

	// Out receives progress lines. Defaults to io.Discard.
	Out io.Writer
}

// Result holds the outcome of a scaffold operation.
type Result struct {
	// Path is the project directory, task directory or notebook file.
	Path string

	// Existed is set when the target directory was already present and the
	// operation stopped early without further changes.
	Existed bool

	// Created lists directories and files created, in order.
	Created []string

	// URL is the address opened in the browser (notebooks only).
	URL string
}

// New returns a Builder wired to the real git and browser executables.
func New(cfg config.Config, out io.Writer) *Builder {
	return &Builder{
		Config:  cfg,
		Git:     tools.NewGit(),
		Browser: tools.NewBrowser(),
		Out:     out,
	}
}

func (b *Builder) out() io.Writer {
	if b.Out == nil {
		return io.Discard
	}
	return b.Out
}

func (b *Builder) printf(format string, args ...any) {
	fmt.Fprintf(b.out(), format, args...)
}

// makeDir creates a single directory. It reports false without error when
// something already exists at path.
func makeDir(path string) (bool, error) {
	if err := os.Mkdir(path, layout.DirPerm); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("creating directory %s: %w", path, err)
	}
	return true, nil
}

// makeSubdir creates name inside parent. An existing subdirectory is noted
// and tolerated.
func (b *Builder) makeSubdir(res *Result, parent, name string) (string, error) {
	path := filepath.Join(parent, name)
	created, err := makeDir(path)
	if err != nil {
		return "", fmt.Errorf("creating %s subdirectory: %w", name, err)
	}
	if !created {
		b.printf("  [SKIP] %s subdirectory already exists\n", name)
		return path, nil
	}
	res.Created = append(res.Created, path)
	b.printf("  [ OK ] Created %s\n", path)
	return path, nil
}

// touch creates an empty file, truncating any existing content.
func touch(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, layout.FilePerm)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing file %s: %w", path, err)
	}
	return nil
}

func (b *Builder) touchFile(res *Result, path string) error {
	if err := touch(path); err != nil {
		return err
	}
	res.Created = append(res.Created, path)
	b.printf("  [ OK ] Created %s\n", path)
	return nil
}
