package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/SteveGJones/ai-first-sdlc-practices/internal/branding"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Setting keys. Flags share these names with "-" in place of "_".
const (
	KeyPreset            = "preset"
	KeyChecklist         = "checklist"
	KeyFormat            = "format"
	KeyMinRuntimeVersion = "min_runtime_version"
)

const fileType = "yaml"

// Settings is the resolved configuration for one run.
type Settings struct {
	Preset            string
	Checklist         string // absolute path, or "" for a preset
	Format            string
	MinRuntimeVersion string
	ConfigFile        string // file the settings were read from, if any
}

// FilePath returns the default config file path inside a project directory.
func FilePath(dir string) string {
	return filepath.Join(dir, branding.ConfigFile())
}

// Load resolves settings for the project at dir. explicit names a config file
// that must exist; when empty, the project's own config file is used if present.
// Flags in fs, when non-nil and changed, take precedence over everything else.
func Load(dir, explicit string, fs *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	v.SetDefault(KeyPreset, "auto")
	v.SetDefault(KeyFormat, "text")

	configFile := explicit
	if configFile == "" {
		candidate := FilePath(dir)
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	if fs != nil {
		if err := bindFlags(v, fs); err != nil {
			return nil, err
		}
	}

	s := &Settings{
		Preset:            v.GetString(KeyPreset),
		Checklist:         v.GetString(KeyChecklist),
		Format:            v.GetString(KeyFormat),
		MinRuntimeVersion: v.GetString(KeyMinRuntimeVersion),
		ConfigFile:        configFile,
	}

	if s.Checklist != "" && !filepath.IsAbs(s.Checklist) {
		abs, err := resolveChecklist(s.Checklist, dir, configFile, fs)
		if err != nil {
			return nil, err
		}
		s.Checklist = abs
	}

	if s.Format != "text" && s.Format != "json" {
		return nil, fmt.Errorf("unknown output format %q: supported formats are \"text\" and \"json\"", s.Format)
	}
	return s, nil
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var errs []error
	for _, key := range []string{KeyPreset, KeyChecklist, KeyFormat, KeyMinRuntimeVersion} {
		f := fs.Lookup(flagName(key))
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			errs = append(errs, fmt.Errorf("binding flag --%s: %w", f.Name, err))
		}
	}
	return errors.Join(errs...)
}

// resolveChecklist anchors a relative checklist path: a flag value to the
// working directory, an env value to the project and a config file value to
// that file's directory.
func resolveChecklist(p, dir, configFile string, fs *pflag.FlagSet) (string, error) {
	switch {
	case flagChanged(fs, KeyChecklist):
	case envSet(KeyChecklist) || configFile == "":
		p = filepath.Join(dir, p)
	default:
		p = filepath.Join(filepath.Dir(configFile), p)
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolving checklist %s: %w", p, err)
	}
	return abs, nil
}

func envSet(key string) bool {
	_, ok := os.LookupEnv(branding.EnvVar(key))
	return ok
}

func flagChanged(fs *pflag.FlagSet, key string) bool {
	if fs == nil {
		return false
	}
	return fs.Changed(flagName(key))
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}
