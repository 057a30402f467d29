package verify

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/SteveGJones/ai-first-sdlc-practices/internal/checklist"
	"github.com/SteveGJones/ai-first-sdlc-practices/internal/manifest"
	"github.com/SteveGJones/ai-first-sdlc-practices/internal/platform"
	"github.com/SteveGJones/ai-first-sdlc-practices/internal/runtime"
)

// DefaultProbeTimeout bounds each runtime version probe.
const DefaultProbeTimeout = 10 * time.Second

// Default paths used when a rule leaves Path empty.
const (
	DefaultIgnoreFile = ".gitignore"
	DefaultVCSDir     = ".git"
)

// Env is everything compiled checks may touch.
type Env struct {
	FS platform.FS

	// Probe returns the version probe for a runtime. Nil means
	// runtime.DispatchProbe.
	Probe func(name string) runtime.Probe

	// MinRuntimeVersion, when set, replaces the MinVersion of every runtime rule.
	MinRuntimeVersion string

	// ProbeTimeout bounds each probe call. Zero means DefaultProbeTimeout.
	ProbeTimeout time.Duration
}

// Compile turns the rules of cl into checks, preserving order.
func Compile(cl *checklist.Checklist, env Env) []Check {
	checks := make([]Check, 0, len(cl.Rules))
	for _, r := range cl.Rules {
		checks = append(checks, Check{Name: r.Name, Run: compileRule(r, env)})
	}
	return checks
}

func compileRule(r checklist.Rule, env Env) func() (string, error) {
	switch r.Kind {
	case checklist.KindFilesExist:
		return func() (string, error) { return "", requireFiles(env.FS, r.Paths, "Required file missing: %s") }
	case checklist.KindDirsExist:
		return func() (string, error) { return "", requireDirs(env.FS, r.Paths, "Required directory missing: %s") }
	case checklist.KindPathsExist:
		return func() (string, error) {
			if err := requireDirs(env.FS, r.Dirs, "%s directory should exist"); err != nil {
				return "", err
			}
			return "", requireFiles(env.FS, r.Files, "%s should exist")
		}
	case checklist.KindContentContains:
		return func() (string, error) { return "", checkContent(env.FS, r.Path, r.Patterns) }
	case checklist.KindIgnoreAdvisory:
		return func() (string, error) { return ignoreAdvisory(env.FS, orDefault(r.Path, DefaultIgnoreFile), r.Patterns), nil }
	case checklist.KindRuntime:
		return func() (string, error) { return checkRuntime(env, r) }
	case checklist.KindVCS:
		return func() (string, error) { return "", checkVCS(env.FS, orDefault(r.Path, DefaultVCSDir)) }
	case checklist.KindAlwaysPass:
		return func() (string, error) { return "", nil }
	default:
		return func() (string, error) {
			return "", &CheckError{Kind: Unexpected, Msg: fmt.Sprintf("Unexpected error: unknown rule kind %q", r.Kind)}
		}
	}
}

// requireFiles fails on the first path, in declared order, that does not exist.
func requireFiles(fs platform.FS, paths []string, format string) error {
	for _, p := range paths {
		ok, err := fs.Exists(p)
		if err != nil {
			return unexpected(err)
		}
		if !ok {
			return failf(MissingPath, p, format, p)
		}
	}
	return nil
}

// requireDirs fails on the first path that is missing or is not a directory.
func requireDirs(fs platform.FS, paths []string, format string) error {
	for _, p := range paths {
		ok, err := fs.Exists(p)
		if err != nil {
			return unexpected(err)
		}
		if !ok {
			return failf(MissingPath, p, format, p)
		}
		isDir, err := fs.IsDir(p)
		if err != nil {
			return unexpected(err)
		}
		if !isDir {
			return failf(WrongType, p, "%s exists but is not a directory", p)
		}
	}
	return nil
}

func checkContent(fs platform.FS, file string, patterns []string) error {
	ok, err := fs.Exists(file)
	if err != nil {
		return unexpected(err)
	}
	if !ok {
		return failf(MissingPath, file, "%s not found", file)
	}

	content, err := fs.ReadText(file)
	if err != nil {
		return unexpected(err)
	}
	if missing := MissingSubstring(content, patterns); missing != "" {
		return failf(ContentMismatch, file, "%s missing required pattern: %s", file, missing)
	}
	return nil
}

// ignoreAdvisory never fails; every outcome other than "a pattern was found"
// becomes an advisory.
func ignoreAdvisory(fs platform.FS, file string, patterns []string) string {
	ok, err := fs.Exists(file)
	if err != nil {
		return fmt.Sprintf("could not check %s: %v", file, err)
	}
	if !ok {
		return fmt.Sprintf("%s not found (create one to exclude AI tool state)", file)
	}

	content, err := fs.ReadText(file)
	if err != nil {
		return fmt.Sprintf("could not read %s: %v", file, err)
	}
	if !ContainsAny(content, patterns) {
		return fmt.Sprintf("Consider adding AI tool patterns to %s", file)
	}
	return ""
}

func checkRuntime(env Env, r checklist.Rule) (string, error) {
	dispatch := env.Probe
	if dispatch == nil {
		dispatch = runtime.DispatchProbe
	}
	timeout := env.ProbeTimeout
	if timeout == 0 {
		timeout = DefaultProbeTimeout
	}
	minimum := orDefault(env.MinRuntimeVersion, r.MinVersion)
	display := runtime.DisplayName(r.Runtime)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	version, err := dispatch(r.Runtime).Version(ctx)
	if errors.Is(err, runtime.ErrNotInstalled) {
		return "", &CheckError{Kind: RuntimeUnavailable, Msg: fmt.Sprintf("%s not found on PATH", display), Err: err}
	}
	if err != nil {
		return "", unexpected(err)
	}

	ok, err := runtime.AtLeast(version, minimum)
	if err != nil {
		return "", unexpected(err)
	}
	if !ok {
		return "", failf(EnvironmentTooOld, "", "%s %s+ required, found %s", display, minimum, version)
	}

	file := orDefault(r.Manifest, manifest.ForRuntime(r.Runtime))
	if file == "" {
		return "", nil
	}
	return checkManifest(env.FS, file)
}

// checkManifest treats an absent manifest as fine, an unparseable one as a
// failure and a nameless one as advisory.
func checkManifest(fs platform.FS, file string) (string, error) {
	ok, err := fs.Exists(file)
	if err != nil {
		return "", unexpected(err)
	}
	if !ok {
		return "", nil
	}

	data, err := fs.ReadText(file)
	if err != nil {
		return "", unexpected(err)
	}
	project, err := manifest.Parse(file, []byte(data))
	if errors.Is(err, manifest.ErrInvalidFormat) {
		return "", &CheckError{Kind: ParseFailure, Path: file, Msg: fmt.Sprintf("Invalid %s format", path.Base(file)), Err: err}
	}
	if err != nil {
		return "", unexpected(err)
	}
	if project.Name == "" {
		return fmt.Sprintf("Consider adding project name to %s", path.Base(file)), nil
	}
	return "", nil
}

// checkVCS needs dir to be a directory. A .git file (worktree or submodule
// pointer) is WrongType with the same message.
func checkVCS(fs platform.FS, dir string) error {
	const msg = "Not a git repository (run 'git init')"
	ok, err := fs.Exists(dir)
	if err != nil {
		return unexpected(err)
	}
	if !ok {
		return failf(MissingPath, dir, msg)
	}
	isDir, err := fs.IsDir(dir)
	if err != nil {
		return unexpected(err)
	}
	if !isDir {
		return failf(WrongType, dir, msg)
	}
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
