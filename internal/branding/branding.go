// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork can rename the tool without touching code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	EnvPrefix   string `yaml:"env_prefix"`
	ConfigFile  string `yaml:"config_file"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "sdlc-verify",
			DisplayName: "AI-First SDLC",
			Description: "Verify that a project carries the AI-First SDLC framework structure",
			EnvPrefix:   "SDLC_VERIFY",
			ConfigFile:  ".sdlc-verify.yaml",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "sdlc-verify").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable framework name (e.g., "AI-First SDLC").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "SDLC_VERIFY").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ConfigFile returns the per-project config file name (e.g., ".sdlc-verify.yaml").
func ConfigFile() string { load(); return defaults.ConfigFile }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("preset") → "SDLC_VERIFY_PRESET".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
