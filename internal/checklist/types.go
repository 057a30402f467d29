package checklist

import "fmt"

// Kind selects how the verifier interprets a Rule.
type Kind string

// Rule kinds.
const (
	KindFilesExist      Kind = "files_exist"
	KindDirsExist       Kind = "dirs_exist"
	KindPathsExist      Kind = "paths_exist"
	KindContentContains Kind = "content_contains"
	KindIgnoreAdvisory  Kind = "ignore_advisory"
	KindRuntime         Kind = "runtime"
	KindVCS             Kind = "vcs"
	KindAlwaysPass      Kind = "always_pass"
)

// Kinds returns every known rule kind.
func Kinds() []Kind {
	return []Kind{
		KindFilesExist, KindDirsExist, KindPathsExist, KindContentContains,
		KindIgnoreAdvisory, KindRuntime, KindVCS, KindAlwaysPass,
	}
}

// Rule is one named check expressed as data. Which fields apply depends on Kind:
//
//	files_exist, dirs_exist   Paths
//	paths_exist               Dirs, Files
//	content_contains          Path, Patterns
//	ignore_advisory           Path, Patterns
//	runtime                   Runtime, MinVersion, Manifest
//	vcs                       Path
type Rule struct {
	Name       string   `yaml:"name" json:"name"`
	Kind       Kind     `yaml:"kind" json:"kind"`
	Paths      []string `yaml:"paths,omitempty" json:"paths,omitempty"`
	Dirs       []string `yaml:"dirs,omitempty" json:"dirs,omitempty"`
	Files      []string `yaml:"files,omitempty" json:"files,omitempty"`
	Path       string   `yaml:"path,omitempty" json:"path,omitempty"`
	Patterns   []string `yaml:"patterns,omitempty" json:"patterns,omitempty"`
	Runtime    string   `yaml:"runtime,omitempty" json:"runtime,omitempty"`
	MinVersion string   `yaml:"min_version,omitempty" json:"min_version,omitempty"`
	Manifest   string   `yaml:"manifest,omitempty" json:"manifest,omitempty"`
}

// Checklist is an ordered list of rules. Rule order is execution order.
type Checklist struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Rules       []Rule `yaml:"rules" json:"rules"`
}

// Check enforces the invariants the schema cannot express: rule names are
// non-empty and unique within the checklist.
func (c *Checklist) Check() error {
	if len(c.Rules) == 0 {
		return fmt.Errorf("checklist %q has no rules", c.Name)
	}
	seen := make(map[string]bool, len(c.Rules))
	for i, r := range c.Rules {
		if r.Name == "" {
			return fmt.Errorf("checklist %q: rule %d has no name", c.Name, i)
		}
		if seen[r.Name] {
			return fmt.Errorf("checklist %q: duplicate rule name %q", c.Name, r.Name)
		}
		seen[r.Name] = true
	}
	return nil
}
