package scaffold

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tsukuru-labs/tsukuru/internal/branding"
	"github.com/tsukuru-labs/tsukuru/internal/layout"
	"github.com/tsukuru-labs/tsukuru/internal/notebook"
)

// CreateNotebook writes <base>/<project>/<task>/<name>.ipynb from the fixed
// notebook template and opens it in the browser at
// <baseURL>/<project>/<task>/<name>.ipynb. Both the project and the task
// must exist. An existing notebook file is overwritten.
//
// An empty baseURL falls back to the default notebook server URL.
func (b *Builder) CreateNotebook(ctx context.Context, project, task, name, baseURL string) (*Result, error) {
	base, err := b.Config.BaseDir()
	if err != nil {
		return nil, err
	}
	file := layout.NotebookFile(name)
	path, err := layout.Resolve(base, project, task, file)
	if err != nil {
		return nil, fmt.Errorf("creating notebook for task %s in %s: %w", task, project, err)
	}

	if err := notebook.CheckTemplate(); err != nil {
		return nil, err
	}

	res := &Result{Path: path}
	b.printf("%s\n", path)

	if err := os.WriteFile(path, notebook.Template(), layout.FilePerm); err != nil {
		return nil, fmt.Errorf("creating notebook in %s: %w", path, err)
	}
	res.Created = append(res.Created, path)
	b.printf("Created notebook in %s\n", path)

	res.URL = NotebookURL(baseURL, project, task, file)
	if err := b.Browser.Open(ctx, res.URL); err != nil {
		return res, fmt.Errorf("opening notebook: %w", err)
	}
	b.printf("Opened %s\n", res.URL)

	return res, nil
}

// NotebookURL joins the notebook server base URL with the project, task and
// notebook file name.
func NotebookURL(baseURL, project, task, file string) string {
	if baseURL == "" {
		baseURL = branding.NotebookBaseURL()
	}
	return strings.Join([]string{strings.TrimRight(baseURL, "/"), project, task, file}, "/")
}
