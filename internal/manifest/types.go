package manifest

import "errors"

// Project holds the fields shared by every project descriptor.
type Project struct {
	File    string `json:"file"`
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
}

// Manifest file names.
const (
	FilePackageJSON = "package.json"
	FilePyproject   = "pyproject.toml"
	FileGoMod       = "go.mod"
)

// ErrInvalidFormat wraps every syntax or shape error returned by Parse.
var ErrInvalidFormat = errors.New("invalid manifest format")

// ErrUnsupported is returned for manifest files Parse does not know.
var ErrUnsupported = errors.New("unsupported manifest")

// ForRuntime returns the default manifest file name for a runtime identifier,
// or "" when the runtime has none.
func ForRuntime(runtime string) string {
	switch runtime {
	case "node":
		return FilePackageJSON
	case "python":
		return FilePyproject
	case "go":
		return FileGoMod
	default:
		return ""
	}
}
