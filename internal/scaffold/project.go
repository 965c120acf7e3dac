package scaffold

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/tsukuru-labs/tsukuru/internal/layout"
)

// CreateProject creates <base>/<name> with shared_data, bin and src
// subdirectories, initializes git in shared_data, and writes an empty
// .project marker.
//
// If the project directory already exists a notice is printed and the
// returned Result has Existed set; nothing else is touched.
func (b *Builder) CreateProject(ctx context.Context, name string) (*Result, error) {
	base, err := b.Config.BaseDir()
	if err != nil {
		return nil, err
	}
	path, err := layout.Resolve(base, name)
	if err != nil {
		return nil, err
	}

	res := &Result{Path: path}

	created, err := makeDir(path)
	if err != nil {
		return nil, fmt.Errorf("creating project directory: %w", err)
	}
	if !created {
		b.printf("project directory %q already exists\n", path)
		res.Existed = true
		return res, nil
	}
	res.Created = append(res.Created, path)
	b.printf("Created project %s in %s\n", name, path)

	for _, dir := range layout.ProjectSubdirs {
		if _, err := b.makeSubdir(res, path, dir); err != nil {
			return res, err
		}
	}

	sharedData := filepath.Join(path, layout.SharedDataDir)
	if err := b.Git.Init(ctx, sharedData); err != nil {
		return res, fmt.Errorf("initializing git version control in %s: %w", layout.SharedDataDir, err)
	}
	b.printf("  [ OK ] Initialized git version control for shared data in %s\n", sharedData)

	if err := b.touchFile(res, filepath.Join(path, layout.ProjectMarker)); err != nil {
		return res, fmt.Errorf("creating %s marker: %w", layout.ProjectMarker, err)
	}

	return res, nil
}
