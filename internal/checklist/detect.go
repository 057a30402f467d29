package checklist

import "github.com/SteveGJones/ai-first-sdlc-practices/internal/platform"

// markers maps project marker files to the preset they imply, in priority order.
var markers = []struct {
	file   string
	preset string
}{
	{"package.json", PresetNode},
	{"pyproject.toml", PresetPython},
	{"setup.py", PresetPython},
	{"requirements.txt", PresetPython},
	{"go.mod", PresetGo},
	{"Cargo.toml", PresetMinimal},
	{"Gemfile", PresetMinimal},
	{"pom.xml", PresetMinimal},
	{"build.gradle", PresetMinimal},
}

// Detect picks a preset from the marker files present at the root of fs.
// Projects with no recognizable marker get the node preset.
func Detect(fs platform.FS) string {
	for _, m := range markers {
		if ok, err := fs.Exists(m.file); err == nil && ok {
			return m.preset
		}
	}
	return PresetNode
}
