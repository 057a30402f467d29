// Package config resolves verifier settings from, in increasing priority, built-in
// defaults, the project's .sdlc-verify.yaml, SDLC_VERIFY_* environment
// variables and command-line flags.
package config
