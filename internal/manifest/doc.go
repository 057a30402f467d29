// Package manifest parses the project descriptor of each supported ecosystem
// (package.json, pyproject.toml, go.mod) into a common Project value. Only the
// fields the verifier reports on are decoded.
package manifest
