//go:build integration

package integration_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/SteveGJones/ai-first-sdlc-practices/internal/checklist"
	"github.com/SteveGJones/ai-first-sdlc-practices/internal/platform"
	"github.com/SteveGJones/ai-first-sdlc-practices/internal/runtime"
	"github.com/SteveGJones/ai-first-sdlc-practices/internal/verify"
)

const claudeMD = `# CLAUDE.md

This file guides AI development in this repository.

## Git Workflow

- Work on feature branches.
- Never push directly to main.
`

// fixedProbe reports the same version for every runtime.
type fixedProbe string

func (f fixedProbe) Version(context.Context) (string, error) { return string(f), nil }

func fixedRuntime(v string) func(string) runtime.Probe {
	return func(string) runtime.Probe { return fixedProbe(v) }
}

// writeFile creates parent directories and writes content to root/rel.
func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating parent of %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", rel, err)
	}
}

func mkdir(t *testing.T, root, rel string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(rel)), 0755); err != nil {
		t.Fatalf("creating %s: %v", rel, err)
	}
}

// verifyDir runs the auto-detected preset against dir on the real filesystem.
func verifyDir(t *testing.T, dir, runtimeVersion string) *verify.RunReport {
	t.Helper()
	fs, err := platform.OpenDir(dir)
	if err != nil {
		t.Fatalf("OpenDir: %v", err)
	}
	cl, err := checklist.Preset(checklist.Detect(fs))
	if err != nil {
		t.Fatalf("Preset: %v", err)
	}
	return verify.New(cl, verify.Env{FS: fs, Probe: fixedRuntime(runtimeVersion)}).RunAll()
}
