package checklist

import (
	_ "embed"
	"fmt"
	"slices"
	"sort"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed presets.yaml
var presetsYAML []byte

// Preset names.
const (
	PresetNode    = "node"
	PresetPython  = "python"
	PresetGo      = "go"
	PresetMinimal = "minimal"
	PresetAuto    = "auto"
)

var (
	presetsOnce sync.Once
	presets     map[string]Checklist
	presetsErr  error
)

func loadPresets() (map[string]Checklist, error) {
	presetsOnce.Do(func() {
		var doc struct {
			Presets []Checklist `yaml:"presets"`
		}
		if err := yaml.Unmarshal(presetsYAML, &doc); err != nil {
			presetsErr = fmt.Errorf("parsing embedded presets: %w", err)
			return
		}
		presets = make(map[string]Checklist, len(doc.Presets))
		for _, p := range doc.Presets {
			presets[p.Name] = p
		}
	})
	return presets, presetsErr
}

// Preset returns a copy of the named built-in checklist.
func Preset(name string) (*Checklist, error) {
	all, err := loadPresets()
	if err != nil {
		return nil, err
	}
	p, ok := all[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (available: %v)", name, PresetNames())
	}
	p.Rules = cloneRules(p.Rules)
	return &p, nil
}

// cloneRules copies rules down to their path and pattern lists, so a caller
// editing a preset never changes the cached one.
func cloneRules(rules []Rule) []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		r.Paths = slices.Clone(r.Paths)
		r.Dirs = slices.Clone(r.Dirs)
		r.Files = slices.Clone(r.Files)
		r.Patterns = slices.Clone(r.Patterns)
		out[i] = r
	}
	return out
}

// PresetNames returns the built-in preset names in sorted order.
func PresetNames() []string {
	all, err := loadPresets()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
