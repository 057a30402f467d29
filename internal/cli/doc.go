// Package cli defines the Cobra command tree for the sdlc-verify CLI. The root
// command runs the verifier against a project directory; subcommands list the
// built-in presets, validate custom checklist files and print build info.
// Commands only resolve settings and format output; checking lives in the
// verify package.
package cli
