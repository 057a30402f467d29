package runtime

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func TestDispatchProbe_Known(t *testing.T) {
	tests := []struct {
		runtime string
		binary  string
	}{
		{"node", "node"},
		{"python", "python3"},
		{"go", "go"},
	}
	for _, tt := range tests {
		t.Run(tt.runtime, func(t *testing.T) {
			p, ok := DispatchProbe(tt.runtime).(*CommandProbe)
			if !ok {
				t.Fatalf("DispatchProbe(%q) returned %T, want *CommandProbe", tt.runtime, DispatchProbe(tt.runtime))
			}
			if p.Binary != tt.binary {
				t.Errorf("Binary = %q, want %q", p.Binary, tt.binary)
			}
		})
	}
}

func TestDispatchProbe_Unknown(t *testing.T) {
	p := DispatchProbe("cobol")
	if _, ok := p.(*unknownProbe); !ok {
		t.Errorf("DispatchProbe(\"cobol\") returned %T, want *unknownProbe", p)
	}
	_, err := p.Version(context.Background())
	if err == nil {
		t.Fatal("expected error from unknown probe, got nil")
	}
	if !strings.Contains(err.Error(), "supported runtimes are node, python, go") {
		t.Errorf("error = %q, want the supported runtime list", err)
	}
}

func TestCommandProbe_ChildHoldingPipe(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available, skipping")
	}
	// The background sleep inherits stdout and keeps the pipe open.
	p := &CommandProbe{Binary: sh, Args: []string{"-c", "echo v1.2.3; sleep 30 &"}}

	done := make(chan struct{})
	var (
		v      string
		runErr error
	)
	go func() {
		defer close(done)
		v, runErr = p.Version(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("Version blocked on a pipe held by a child process")
	}
	if runErr != nil {
		t.Fatalf("unexpected error: %v", runErr)
	}
	if v != "1.2.3" {
		t.Errorf("Version = %q, want 1.2.3", v)
	}
}

func TestCommandProbe_NotInstalled(t *testing.T) {
	p := &CommandProbe{Binary: "definitely-not-a-real-runtime-binary"}
	_, err := p.Version(context.Background())
	if !errors.Is(err, ErrNotInstalled) {
		t.Errorf("expected ErrNotInstalled, got %v", err)
	}
}

func TestCommandProbe_GoVersion(t *testing.T) {
	// Skip if Go is not available.
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go not available, skipping")
	}

	v, err := DispatchProbe(RuntimeGo).Version(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseVersion(v); err != nil {
		t.Errorf("probe returned unparseable version %q: %v", v, err)
	}
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		output string
		want   string
	}{
		{"v20.11.1\n", "20.11.1"},
		{"Python 3.11.4", "3.11.4"},
		{"go1.22.3", "1.22.3"},
		{"go version go1.21.0 linux/amd64", "1.21.0"},
		{"no digits here", ""},
	}
	for _, tt := range tests {
		if got := ExtractVersion(tt.output); got != tt.want {
			t.Errorf("ExtractVersion(%q) = %q, want %q", tt.output, got, tt.want)
		}
	}
}

func TestAtLeast(t *testing.T) {
	tests := []struct {
		version string
		minimum string
		want    bool
	}{
		{"v20.11.1", "16", true},
		{"16.0.0", "16", true},
		{"v14.21.3", "16", false},
		{"3.8.10", "3.8", true},
		{"3.7.17", "3.8", false},
		{"go1.25.7", "1.21", true},
	}
	for _, tt := range tests {
		got, err := AtLeast(tt.version, tt.minimum)
		if err != nil {
			t.Fatalf("AtLeast(%q, %q) error: %v", tt.version, tt.minimum, err)
		}
		if got != tt.want {
			t.Errorf("AtLeast(%q, %q) = %v, want %v", tt.version, tt.minimum, got, tt.want)
		}
	}
}

func TestAtLeast_Invalid(t *testing.T) {
	if _, err := AtLeast("not-a-version", "16"); err == nil {
		t.Error("expected error for invalid version")
	}
	if _, err := AtLeast("16.0.0", "sixteen"); err == nil {
		t.Error("expected error for invalid minimum")
	}
}

func TestMajor(t *testing.T) {
	m, err := Major("v18.19.0")
	if err != nil {
		t.Fatalf("Major error: %v", err)
	}
	if m != 18 {
		t.Errorf("Major = %d, want 18", m)
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName(RuntimeNode); got != "Node.js" {
		t.Errorf("DisplayName(node) = %q", got)
	}
	if got := DisplayName("deno"); got != "deno" {
		t.Errorf("DisplayName(deno) = %q", got)
	}
}
