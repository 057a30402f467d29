package runtime

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Probe reports the version string of an installed runtime.
type Probe interface {
	Version(ctx context.Context) (string, error)
}

// ErrNotInstalled is returned when the runtime binary is not on PATH.
var ErrNotInstalled = errors.New("runtime not installed")

// Supported runtime identifiers.
const (
	RuntimeNode   = "node"
	RuntimePython = "python"
	RuntimeGo     = "go"
)

// Names returns the supported runtime identifiers in display order.
func Names() []string {
	return []string{RuntimeNode, RuntimePython, RuntimeGo}
}

// DisplayName returns the human name used in messages, e.g. "Node.js".
func DisplayName(runtime string) string {
	switch runtime {
	case RuntimeNode:
		return "Node.js"
	case RuntimePython:
		return "Python"
	case RuntimeGo:
		return "Go"
	default:
		return runtime
	}
}

// DispatchProbe returns the Probe for the given runtime identifier.
// Returns an error-producing probe for unknown values.
func DispatchProbe(runtime string) Probe {
	switch runtime {
	case RuntimeNode:
		return &CommandProbe{Binary: "node", Args: []string{"--version"}}
	case RuntimePython:
		return &CommandProbe{Binary: "python3", Args: []string{"--version"}, Fallbacks: []string{"python"}}
	case RuntimeGo:
		return &CommandProbe{Binary: "go", Args: []string{"env", "GOVERSION"}}
	default:
		return &unknownProbe{name: runtime}
	}
}

// unknownProbe is returned when the runtime identifier is not recognized.
type unknownProbe struct {
	name string
}

func (u *unknownProbe) Version(_ context.Context) (string, error) {
	return "", fmt.Errorf("unknown runtime %q: supported runtimes are %s",
		u.name, strings.Join(Names(), ", "))
}
