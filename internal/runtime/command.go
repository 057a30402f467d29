package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"
)

var versionToken = regexp.MustCompile(`\d+(\.\d+){0,2}`)

// probeWaitDelay bounds how long Run waits for output pipes to close after the
// context is done or the process exits.
const probeWaitDelay = time.Second

// CommandProbe runs a binary and extracts the version from its output.
type CommandProbe struct {
	Binary    string
	Args      []string
	Fallbacks []string // alternate binary names tried when Binary is absent
}

// Version runs the probe command and returns the raw version token found in
// its combined output (e.g. "20.11.1" for "v20.11.1").
func (p *CommandProbe) Version(ctx context.Context) (string, error) {
	bin, err := p.lookPath()
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, p.Args...)
	cmd.Stdout = &out
	cmd.Stderr = &out
	cmd.WaitDelay = probeWaitDelay
	// ErrWaitDelay means the probe exited cleanly but a child kept the pipe open.
	if err := cmd.Run(); err != nil && !errors.Is(err, exec.ErrWaitDelay) {
		return "", fmt.Errorf("running %s %s: %w", p.Binary, strings.Join(p.Args, " "), err)
	}

	v := ExtractVersion(out.String())
	if v == "" {
		return "", fmt.Errorf("no version found in %s output %q", p.Binary, strings.TrimSpace(out.String()))
	}
	return v, nil
}

func (p *CommandProbe) lookPath() (string, error) {
	for _, name := range append([]string{p.Binary}, p.Fallbacks...) {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%s: %w", p.Binary, ErrNotInstalled)
}

// ExtractVersion returns the first dotted version number in s, or "".
func ExtractVersion(s string) string {
	return versionToken.FindString(s)
}
