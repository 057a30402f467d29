package verify

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/SteveGJones/ai-first-sdlc-practices/internal/platform"
	"github.com/SteveGJones/ai-first-sdlc-practices/internal/runtime"
	"github.com/spf13/afero"
)

// fakeProbe returns a fixed version or error.
type fakeProbe struct {
	version string
	err     error
}

func (f fakeProbe) Version(_ context.Context) (string, error) {
	return f.version, f.err
}

func probeReturning(version string, err error) func(string) runtime.Probe {
	return func(string) runtime.Probe { return fakeProbe{version: version, err: err} }
}

const goodClaudeMD = `# CLAUDE.md

Instructions for AI Development on this repository.

## Git Workflow

Never push directly to main.
`

// project is an in-memory project tree.
type project struct {
	t   *testing.T
	mem afero.Fs
}

func newProject(t *testing.T) *project {
	t.Helper()
	return &project{t: t, mem: afero.NewMemMapFs()}
}

func (p *project) file(path, content string) *project {
	p.t.Helper()
	if err := afero.WriteFile(p.mem, filepath.FromSlash(path), []byte(content), 0644); err != nil {
		p.t.Fatalf("writing %s: %v", path, err)
	}
	return p
}

func (p *project) dir(path string) *project {
	p.t.Helper()
	if err := p.mem.MkdirAll(filepath.FromSlash(path), 0755); err != nil {
		p.t.Fatalf("creating %s: %v", path, err)
	}
	return p
}

// complete lays out a project that passes every node preset check.
func (p *project) complete() *project {
	return p.file("README.md", "# demo\n").
		file("CLAUDE.md", goodClaudeMD).
		dir("docs/feature-proposals").
		dir("retrospectives").
		file(".gitignore", "node_modules/\n.claude/\n").
		file("package.json", `{"name": "demo"}`).
		dir(".git")
}

func (p *project) fs() platform.FS {
	return platform.NewFS(p.mem)
}

func (p *project) remove(path string) *project {
	p.t.Helper()
	if err := p.mem.RemoveAll(filepath.FromSlash(path)); err != nil {
		p.t.Fatalf("removing %s: %v", path, err)
	}
	return p
}
