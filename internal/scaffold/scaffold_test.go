package scaffold

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsukuru-labs/tsukuru/internal/config"
	"github.com/tsukuru-labs/tsukuru/internal/layout"
	"github.com/tsukuru-labs/tsukuru/internal/notebook"
	"github.com/tsukuru-labs/tsukuru/internal/tools"
)

// ─── create project ────────────────────────────────────────────────

func TestCreateProject(t *testing.T) {
	b, rec, base, out := newTestBuilder(t)

	res, err := b.CreateProject(context.Background(), "Alpha")
	if err != nil {
		t.Fatalf("CreateProject() error: %v", err)
	}
	if res.Existed {
		t.Error("Existed should be false for a new project")
	}

	project := filepath.Join(base, "Alpha")
	if res.Path != project {
		t.Errorf("Path = %q, want %q", res.Path, project)
	}
	assertDirExists(t, project)
	assertDirExists(t, filepath.Join(project, "shared_data"))
	assertDirExists(t, filepath.Join(project, "bin"))
	assertDirExists(t, filepath.Join(project, "src"))
	assertFileEmpty(t, filepath.Join(project, ".project"))

	assertStrings(t, rec.InitDirs, []string{filepath.Join(project, "shared_data")})
	if len(res.Created) != 5 {
		t.Errorf("Created = %v, want 5 entries", res.Created)
	}
	assertContains(t, out.String(), "Created project Alpha")
	assertContains(t, out.String(), "Initialized git version control for shared data")
}

func TestCreateProject_Idempotent(t *testing.T) {
	b, rec, base, _ := newTestBuilder(t)

	if _, err := b.CreateProject(context.Background(), "Alpha"); err != nil {
		t.Fatalf("first CreateProject() error: %v", err)
	}
	before := snapshot(t, base)

	var out bytes.Buffer
	b.Out = &out
	res, err := b.CreateProject(context.Background(), "Alpha")
	if err != nil {
		t.Fatalf("second CreateProject() error: %v", err)
	}
	if !res.Existed {
		t.Error("Existed should be true on second call")
	}
	if len(res.Created) != 0 {
		t.Errorf("Created = %v, want none", res.Created)
	}
	if len(rec.InitDirs) != 1 {
		t.Errorf("git init ran %d times, want 1", len(rec.InitDirs))
	}
	assertContains(t, out.String(), "already exists")

	if after := snapshot(t, base); !equalStrings(before, after) {
		t.Errorf("filesystem changed on second call:\nbefore %v\nafter  %v", before, after)
	}
}

func TestMakeSubdir_ExistingTolerated(t *testing.T) {
	b, _, base, out := newTestBuilder(t)
	if err := os.Mkdir(filepath.Join(base, "bin"), 0755); err != nil {
		t.Fatal(err)
	}

	res := &Result{}
	path, err := b.makeSubdir(res, base, "bin")
	if err != nil {
		t.Fatalf("makeSubdir() on existing subdir error: %v", err)
	}
	if path != filepath.Join(base, "bin") {
		t.Errorf("path = %q", path)
	}
	if len(res.Created) != 0 {
		t.Errorf("existing subdir should not be reported as created: %v", res.Created)
	}
	assertContains(t, out.String(), "[SKIP] bin subdirectory already exists")
}

func TestCreateProject_GitFailureIsFatal(t *testing.T) {
	b, rec, base, _ := newTestBuilder(t)
	rec.InitErr = errors.New("git: command not found")

	res, err := b.CreateProject(context.Background(), "Alpha")
	if err == nil {
		t.Fatal("expected error when git init fails")
	}
	if !errors.Is(err, rec.InitErr) {
		t.Errorf("error should wrap the git failure, got: %v", err)
	}

	// Steps before the failure stay on disk; the marker is never written.
	project := filepath.Join(base, "Alpha")
	assertDirExists(t, filepath.Join(project, "src"))
	assertNotExists(t, filepath.Join(project, ".project"))
	if res == nil || len(res.Created) != 4 {
		t.Errorf("partial Result should list 4 created dirs, got %+v", res)
	}
}

func TestCreateProject_MissingBaseDir(t *testing.T) {
	b := &Builder{Config: config.New(""), Git: &tools.Recorder{}, Browser: &tools.Recorder{}}

	_, err := b.CreateProject(context.Background(), "Alpha")
	if !errors.Is(err, config.ErrBaseDirNotSet) {
		t.Errorf("expected ErrBaseDirNotSet, got %v", err)
	}
}

func TestCreateProject_UnexpectedMkdirError(t *testing.T) {
	base := t.TempDir()
	b := &Builder{
		Config:  config.New(base),
		Git:     &tools.Recorder{},
		Browser: &tools.Recorder{},
	}

	// A name nested under a missing directory makes os.Mkdir fail with
	// ENOENT, which is not tolerated.
	_, err := b.CreateProject(context.Background(), filepath.Join("missing", "Alpha"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap ErrNotExist, got: %v", err)
	}
}

// ─── create task ───────────────────────────────────────────────────

func TestCreateTask(t *testing.T) {
	b, rec, base, out := newTestBuilder(t)
	mustCreateProject(t, b, "Alpha")
	rec.InitDirs = nil

	res, err := b.CreateTask(context.Background(), "Alpha", "T1")
	if err != nil {
		t.Fatalf("CreateTask() error: %v", err)
	}

	task := filepath.Join(base, "Alpha", "T1")
	if res.Path != task {
		t.Errorf("Path = %q, want %q", res.Path, task)
	}
	assertDirExists(t, task)
	assertDirExists(t, filepath.Join(task, "data"))
	assertFileEmpty(t, filepath.Join(task, "README.md"))
	assertFileEmpty(t, filepath.Join(task, ".task"))
	assertStrings(t, rec.InitDirs, []string{filepath.Join(task, "data")})
	assertContains(t, out.String(), "Created task T1 for project Alpha")
}

func TestCreateTask_MissingProject(t *testing.T) {
	b, rec, base, _ := newTestBuilder(t)

	_, err := b.CreateTask(context.Background(), "Ghost", "T1")
	if !errors.Is(err, layout.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	assertContains(t, err.Error(), `project "Ghost" does not exist`)

	assertNotExists(t, filepath.Join(base, "Ghost"))
	if entries := snapshot(t, base); len(entries) != 0 {
		t.Errorf("nothing should be created, found %v", entries)
	}
	if len(rec.InitDirs) != 0 {
		t.Errorf("git should not run, got %v", rec.InitDirs)
	}
}

func TestCreateTask_Idempotent(t *testing.T) {
	b, rec, base, _ := newTestBuilder(t)
	mustCreateProject(t, b, "Alpha")
	if _, err := b.CreateTask(context.Background(), "Alpha", "T1"); err != nil {
		t.Fatal(err)
	}
	readme := filepath.Join(base, "Alpha", "T1", "README.md")
	if err := os.WriteFile(readme, []byte("notes"), 0644); err != nil {
		t.Fatal(err)
	}
	inits := len(rec.InitDirs)

	res, err := b.CreateTask(context.Background(), "Alpha", "T1")
	if err != nil {
		t.Fatalf("second CreateTask() error: %v", err)
	}
	if !res.Existed {
		t.Error("Existed should be true on second call")
	}
	if len(rec.InitDirs) != inits {
		t.Error("git should not run when the task already exists")
	}

	// The README is not re-created once the directory check short-circuits.
	data, err := os.ReadFile(readme)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "notes" {
		t.Errorf("README.md was rewritten: %q", data)
	}
}

func TestCreateTask_GitFailureIsFatal(t *testing.T) {
	b, rec, base, _ := newTestBuilder(t)
	mustCreateProject(t, b, "Alpha")
	rec.InitErr = errors.New("permission denied")

	_, err := b.CreateTask(context.Background(), "Alpha", "T1")
	if err == nil {
		t.Fatal("expected error when git init fails")
	}

	task := filepath.Join(base, "Alpha", "T1")
	assertDirExists(t, filepath.Join(task, "data"))
	assertNotExists(t, filepath.Join(task, "README.md"))
	assertNotExists(t, filepath.Join(task, ".task"))
}

// ─── create notebook ───────────────────────────────────────────────

func TestCreateNotebook(t *testing.T) {
	b, rec, base, out := newTestBuilder(t)
	mustCreateProject(t, b, "Alpha")
	mustCreateTask(t, b, "Alpha", "T1")

	res, err := b.CreateNotebook(context.Background(), "Alpha", "T1", "nb1", "http://localhost:8888/tree")
	if err != nil {
		t.Fatalf("CreateNotebook() error: %v", err)
	}

	file := filepath.Join(base, "Alpha", "T1", "nb1.ipynb")
	if res.Path != file {
		t.Errorf("Path = %q, want %q", res.Path, file)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("reading notebook: %v", err)
	}
	if !bytes.Equal(data, notebook.Template()) {
		t.Error("notebook content does not match the template")
	}

	wantURL := "http://localhost:8888/tree/Alpha/T1/nb1.ipynb"
	if res.URL != wantURL {
		t.Errorf("URL = %q, want %q", res.URL, wantURL)
	}
	assertStrings(t, rec.OpenedURLs, []string{wantURL})
	assertContains(t, out.String(), "Created notebook in "+file)
}

func TestCreateNotebook_ByteIdenticalAcrossNames(t *testing.T) {
	b, _, base, _ := newTestBuilder(t)
	mustCreateProject(t, b, "Alpha")
	mustCreateTask(t, b, "Alpha", "T1")

	for _, name := range []string{"first", "second"} {
		if _, err := b.CreateNotebook(context.Background(), "Alpha", "T1", name, ""); err != nil {
			t.Fatalf("CreateNotebook(%s) error: %v", name, err)
		}
	}

	a := readFile(t, filepath.Join(base, "Alpha", "T1", "first.ipynb"))
	c := readFile(t, filepath.Join(base, "Alpha", "T1", "second.ipynb"))
	if !bytes.Equal(a, c) {
		t.Error("notebooks with different names should be byte-identical")
	}

	result, err := notebook.Validate(a)
	if err != nil || !result.Valid {
		t.Errorf("written notebook is not a valid document: %v %+v", err, result)
	}
}

func TestCreateNotebook_OverwritesExisting(t *testing.T) {
	b, _, base, _ := newTestBuilder(t)
	mustCreateProject(t, b, "Alpha")
	mustCreateTask(t, b, "Alpha", "T1")

	file := filepath.Join(base, "Alpha", "T1", "nb1.ipynb")
	if err := os.WriteFile(file, []byte("stale content that is much longer than nothing"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := b.CreateNotebook(context.Background(), "Alpha", "T1", "nb1", ""); err != nil {
		t.Fatalf("CreateNotebook() error: %v", err)
	}
	if !bytes.Equal(readFile(t, file), notebook.Template()) {
		t.Error("existing notebook should be truncated and rewritten")
	}
}

func TestCreateNotebook_MissingAncestors(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, b *Builder)
		wantKind layout.Kind
		wantMsg  string
	}{
		{
			name:     "missing project",
			setup:    func(t *testing.T, b *Builder) {},
			wantKind: layout.KindProject,
			wantMsg:  `project "Alpha" does not exist`,
		},
		{
			name:     "missing task",
			setup:    func(t *testing.T, b *Builder) { mustCreateProject(t, b, "Alpha") },
			wantKind: layout.KindTask,
			wantMsg:  `task "T1" does not exist`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, rec, base, _ := newTestBuilder(t)
			tt.setup(t, b)

			_, err := b.CreateNotebook(context.Background(), "Alpha", "T1", "nb1", "")
			var nf *layout.NotFoundError
			if !errors.As(err, &nf) {
				t.Fatalf("expected *layout.NotFoundError, got %v", err)
			}
			if nf.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", nf.Kind, tt.wantKind)
			}
			assertContains(t, err.Error(), tt.wantMsg)

			assertNotExists(t, filepath.Join(base, "Alpha", "T1", "nb1.ipynb"))
			if len(rec.OpenedURLs) != 0 {
				t.Errorf("browser should not open, got %v", rec.OpenedURLs)
			}
		})
	}
}

func TestCreateNotebook_BrowserFailureIsFatal(t *testing.T) {
	b, rec, base, _ := newTestBuilder(t)
	mustCreateProject(t, b, "Alpha")
	mustCreateTask(t, b, "Alpha", "T1")
	rec.OpenErr = errors.New("no display")

	res, err := b.CreateNotebook(context.Background(), "Alpha", "T1", "nb1", "")
	if !errors.Is(err, rec.OpenErr) {
		t.Fatalf("expected browser error, got %v", err)
	}
	// The file is already written when the browser fails.
	assertFileExists(t, filepath.Join(base, "Alpha", "T1", "nb1.ipynb"))
	if res == nil || res.URL == "" {
		t.Errorf("Result should carry the URL that failed to open: %+v", res)
	}
}

func TestNotebookURL(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"http://localhost:8888/tree", "http://localhost:8888/tree/Alpha/T1/nb1.ipynb"},
		{"http://localhost:8888/tree/", "http://localhost:8888/tree/Alpha/T1/nb1.ipynb"},
		{"https://hub.example.com/user/me/tree", "https://hub.example.com/user/me/tree/Alpha/T1/nb1.ipynb"},
		{"", "http://localhost:8888/tree/Alpha/T1/nb1.ipynb"},
	}

	for _, tt := range tests {
		got := NotebookURL(tt.base, "Alpha", "T1", "nb1.ipynb")
		if got != tt.want {
			t.Errorf("NotebookURL(%q) = %q, want %q", tt.base, got, tt.want)
		}
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

func newTestBuilder(t *testing.T) (*Builder, *tools.Recorder, string, *bytes.Buffer) {
	t.Helper()
	base := t.TempDir()
	rec := &tools.Recorder{}
	var out bytes.Buffer
	b := &Builder{
		Config:  config.New(base),
		Git:     rec,
		Browser: rec,
		Out:     &out,
	}
	return b, rec, base, &out
}

func mustCreateProject(t *testing.T, b *Builder, name string) {
	t.Helper()
	if _, err := b.CreateProject(context.Background(), name); err != nil {
		t.Fatalf("CreateProject(%s) error: %v", name, err)
	}
}

func mustCreateTask(t *testing.T, b *Builder, project, task string) {
	t.Helper()
	if _, err := b.CreateTask(context.Background(), project, task); err != nil {
		t.Fatalf("CreateTask(%s, %s) error: %v", project, task, err)
	}
}

// snapshot lists every path under root, relative and sorted.
func snapshot(t *testing.T, root string) []string {
	t.Helper()
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, _ := filepath.Rel(root, path)
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	return paths
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return data
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory %s to exist: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory", path)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file %s to exist: %v", path, err)
		return
	}
	if info.IsDir() {
		t.Errorf("expected %s to be a file, got directory", path)
	}
}

func assertFileEmpty(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file %s to exist: %v", path, err)
		return
	}
	if info.Size() != 0 {
		t.Errorf("expected %s to be empty, got %d bytes", path, info.Size())
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s not to exist (err=%v)", path, err)
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}

func assertStrings(t *testing.T, got, want []string) {
	t.Helper()
	if !equalStrings(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
