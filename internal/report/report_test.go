package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/SteveGJones/ai-first-sdlc-practices/internal/verify"
)

func sampleReport() *verify.RunReport {
	return &verify.RunReport{
		Checklist: "node",
		Results: []verify.CheckResult{
			{Name: "Required Files", Passed: true},
			{Name: "Required Directories", Passed: false, Kind: verify.MissingPath, Message: "Required directory missing: retrospectives"},
			{Name: "Gitignore Exists", Passed: true, Message: "Consider adding AI tool patterns to .gitignore"},
		},
		Passed: 2,
		Failed: 1,
	}
}

func TestText_FailingReport(t *testing.T) {
	var buf bytes.Buffer
	Text(&buf, "AI-First SDLC", sampleReport())

	want := []string{
		"🔍 Running AI-First SDLC framework verification (node)...",
		"✅ Required Files",
		"❌ Required Directories: Required directory missing: retrospectives",
		"✅ Gitignore Exists: Consider adding AI tool patterns to .gitignore",
		"",
		"📊 Results: 2 passed, 1 failed",
		FixBanner,
	}
	got := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(got), len(want), buf.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestText_PassingReport(t *testing.T) {
	r := &verify.RunReport{
		Checklist: "minimal",
		Results:   []verify.CheckResult{{Name: "Framework Setup", Passed: true}},
		Passed:    1,
	}
	var buf bytes.Buffer
	Text(&buf, "AI-First SDLC", r)

	out := buf.String()
	if !strings.Contains(out, "📊 Results: 1 passed, 0 failed") {
		t.Errorf("missing summary:\n%s", out)
	}
	if !strings.HasSuffix(out, SuccessBanner+"\n") {
		t.Errorf("missing success banner:\n%s", out)
	}
}

func TestText_NoEscapeCodesWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	Text(&buf, "AI-First SDLC", sampleReport())
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("unexpected ANSI escapes in non-terminal output: %q", buf.String())
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sampleReport()); err != nil {
		t.Fatalf("JSON error: %v", err)
	}

	var decoded struct {
		Checklist string `json:"checklist"`
		Passed    int    `json:"passed"`
		Failed    int    `json:"failed"`
		Results   []struct {
			Name   string `json:"name"`
			Passed bool   `json:"passed"`
			Kind   string `json:"kind"`
		} `json:"results"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded.Failed != 1 || len(decoded.Results) != 3 {
		t.Errorf("decoded = %+v", decoded)
	}
	if decoded.Results[1].Kind != "missing_path" {
		t.Errorf("kind = %q", decoded.Results[1].Kind)
	}
}

func TestExitCode(t *testing.T) {
	if got := ExitCode(sampleReport()); got != 1 {
		t.Errorf("ExitCode(failing) = %d, want 1", got)
	}
	if got := ExitCode(&verify.RunReport{Passed: 3}); got != 0 {
		t.Errorf("ExitCode(passing) = %d, want 0", got)
	}
}
