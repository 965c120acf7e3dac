package scaffold

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/tsukuru-labs/tsukuru/internal/layout"
)

// CreateTask creates <base>/<project>/<task> with a git-initialized data
// subdirectory, an empty README.md and an empty .task marker. The project
// directory must already exist.
//
// If the task directory already exists a notice is printed and the returned
// Result has Existed set; nothing else is touched.
func (b *Builder) CreateTask(ctx context.Context, project, task string) (*Result, error) {
	base, err := b.Config.BaseDir()
	if err != nil {
		return nil, err
	}
	path, err := layout.Resolve(base, project, task)
	if err != nil {
		return nil, fmt.Errorf("creating task %s in project %s: %w", task, project, err)
	}

	res := &Result{Path: path}

	created, err := makeDir(path)
	if err != nil {
		return nil, fmt.Errorf("creating task directory in project %s: %w", project, err)
	}
	if !created {
		b.printf("task directory %q already exists\n", path)
		res.Existed = true
		return res, nil
	}
	res.Created = append(res.Created, path)
	b.printf("Created task %s for project %s in %s\n", task, project, path)

	data, err := b.makeSubdir(res, path, layout.DataDir)
	if err != nil {
		return res, err
	}

	if err := b.Git.Init(ctx, data); err != nil {
		return res, fmt.Errorf("initializing git version control in %s: %w", layout.DataDir, err)
	}
	b.printf("  [ OK ] Initialized git version control for data in %s\n", data)

	if err := b.touchFile(res, filepath.Join(path, layout.ReadmeFile)); err != nil {
		return res, fmt.Errorf("creating %s: %w", layout.ReadmeFile, err)
	}
	if err := b.touchFile(res, filepath.Join(path, layout.TaskMarker)); err != nil {
		return res, fmt.Errorf("creating %s marker: %w", layout.TaskMarker, err)
	}

	return res, nil
}
