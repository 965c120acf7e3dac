package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Directory and file names that make up a scaffold.
const (
	SharedDataDir = "shared_data"
	BinDir        = "bin"
	SrcDir        = "src"
	DataDir       = "data"

	ProjectMarker = ".project"
	TaskMarker    = ".task"
	ReadmeFile    = "README.md"

	NotebookExt = ".ipynb"
)

// Permission constants.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// ProjectSubdirs are created inside every new project. Order is not significant.
var ProjectSubdirs = []string{SharedDataDir, BinDir, SrcDir}

// Kind names what a path segment identifies.
type Kind string

const (
	KindProject  Kind = "project"
	KindTask     Kind = "task"
	KindNotebook Kind = "notebook"
)

// kinds labels segment positions: project, then task, then notebook.
var kinds = []Kind{KindProject, KindTask, KindNotebook}

// KindAt returns the kind of the segment at index i.
func KindAt(i int) Kind {
	if i < len(kinds) {
		return kinds[i]
	}
	return Kind(fmt.Sprintf("segment %d", i))
}

// ErrNotFound is matched by every *NotFoundError via errors.Is.
var ErrNotFound = errors.New("not found")

// NotFoundError reports a required ancestor that does not exist.
type NotFoundError struct {
	Kind Kind
	Name string
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q does not exist (%s)", e.Kind, e.Name, e.Path)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Resolve joins base with segments in order. Before descending into each
// segment after the first, the path built so far must already be a
// directory; otherwise a *NotFoundError naming that ancestor is returned.
// Segments are not sanitized.
func Resolve(base string, segments ...string) (string, error) {
	path := base
	for i, seg := range segments {
		if i > 0 {
			if err := requireDir(path, KindAt(i-1), segments[i-1]); err != nil {
				return "", err
			}
		}
		path = filepath.Join(path, seg)
	}
	return path, nil
}

func requireDir(path string, kind Kind, name string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &NotFoundError{Kind: kind, Name: name, Path: path}
		}
		return fmt.Errorf("checking %s %s: %w", kind, path, err)
	}
	if !info.IsDir() {
		return &NotFoundError{Kind: kind, Name: name, Path: path}
	}
	return nil
}

// NotebookFile returns the file name for a notebook called name.
func NotebookFile(name string) string {
	return name + NotebookExt
}
