package manifest

import (
	"encoding/json"
	"fmt"
	"path"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/modfile"
)

// Parse decodes data according to the manifest named by file. Any syntax
// error is wrapped with ErrInvalidFormat.
func Parse(file string, data []byte) (*Project, error) {
	switch path.Base(file) {
	case FilePackageJSON:
		return parsePackageJSON(file, data)
	case FilePyproject:
		return parsePyproject(file, data)
	case FileGoMod:
		return parseGoMod(file, data)
	default:
		return nil, fmt.Errorf("%s: %w", file, ErrUnsupported)
	}
}

func parsePackageJSON(file string, data []byte) (*Project, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, file, err)
	}
	// A bare "null" decodes without error but is not a package descriptor.
	if raw == nil {
		return nil, fmt.Errorf("%w: %s: not a JSON object", ErrInvalidFormat, file)
	}

	p := &Project{File: file}
	p.Name, _ = raw["name"].(string)
	p.Version, _ = raw["version"].(string)
	return p, nil
}

type pyproject struct {
	Project struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Name    string `toml:"name"`
			Version string `toml:"version"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

func parsePyproject(file string, data []byte) (*Project, error) {
	var doc pyproject
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, file, err)
	}

	p := &Project{File: file, Name: doc.Project.Name, Version: doc.Project.Version}
	// Poetry projects keep metadata under [tool.poetry].
	if p.Name == "" {
		p.Name = doc.Tool.Poetry.Name
	}
	if p.Version == "" {
		p.Version = doc.Tool.Poetry.Version
	}
	return p, nil
}

func parseGoMod(file string, data []byte) (*Project, error) {
	f, err := modfile.ParseLax(file, data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, file, err)
	}

	p := &Project{File: file}
	if f.Module != nil {
		p.Name = f.Module.Mod.Path
	}
	if f.Go != nil {
		p.Version = f.Go.Version
	}
	return p, nil
}
