// Package platform provides the filesystem capability the verifier inspects
// projects through. FS is a narrow read-only view (exists, is-directory,
// read-text) backed by spf13/afero, so production code reads the real disk
// through a rooted, read-only afero filesystem and tests substitute an
// in-memory one.
package platform
