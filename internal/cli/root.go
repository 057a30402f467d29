package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/SteveGJones/ai-first-sdlc-practices/internal/branding"
	"github.com/SteveGJones/ai-first-sdlc-practices/internal/checklist"
	"github.com/SteveGJones/ai-first-sdlc-practices/internal/config"
	"github.com/SteveGJones/ai-first-sdlc-practices/internal/platform"
	"github.com/SteveGJones/ai-first-sdlc-practices/internal/report"
	"github.com/SteveGJones/ai-first-sdlc-practices/internal/runtime"
	"github.com/SteveGJones/ai-first-sdlc-practices/internal/verify"
	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// probeFor selects runtime probes; tests replace it.
var probeFor = runtime.DispatchProbe

type verifyOptions struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	opts := &verifyOptions{}

	cmd := &cobra.Command{
		Use:   branding.CLIName() + " [dir]",
		Short: branding.Description(),
		Long: `Verify that a project directory carries the ` + branding.DisplayName() + ` framework structure:
required documents, feature-proposal and retrospective folders, instruction
content, ignore-file hygiene, a supported runtime and a git repository.

Every check runs even when earlier ones fail. The exit status is 0 when all
checks pass and 1 otherwise.

` + envHelp(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runVerify(cmd, opts, dir)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configFile, "config", "", "Config file (default <dir>/"+branding.ConfigFile()+")")
	f.String("preset", "", "Checklist preset: auto, "+strings.Join(checklist.PresetNames(), ", "))
	f.String("checklist", "", "Custom checklist YAML file (overrides --preset)")
	f.String("format", "", "Output format: text or json")
	f.String("min-runtime-version", "", "Override the minimum runtime version of runtime checks")

	cmd.AddCommand(newPresetsCmd(), newValidateCmd(), newVersionCmd())
	return cmd
}

// envHelp lists the environment variables that override config file settings.
func envHelp() string {
	var b strings.Builder
	b.WriteString("Environment:\n")
	for _, key := range []string{config.KeyPreset, config.KeyChecklist, config.KeyFormat, config.KeyMinRuntimeVersion} {
		fmt.Fprintf(&b, "  %-32s overrides %s in %s\n", branding.EnvVar(key), key, branding.ConfigFile())
	}
	return b.String()
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	// Failed checks were already reported on stdout.
	if err != nil && !errors.Is(err, verify.ErrChecksFailed) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return err
}

func runVerify(cmd *cobra.Command, opts *verifyOptions, dir string) error {
	settings, err := config.Load(dir, opts.configFile, cmd.Flags())
	if err != nil {
		return err
	}

	fs, err := platform.OpenDir(dir)
	if err != nil {
		return err
	}

	cl, err := selectChecklist(settings, fs)
	if err != nil {
		return err
	}

	v := verify.New(cl, verify.Env{
		FS:                fs,
		Probe:             probeFor,
		MinRuntimeVersion: settings.MinRuntimeVersion,
	})

	out := cmd.OutOrStdout()
	var r *verify.RunReport
	switch settings.Format {
	case report.FormatJSON:
		r = v.RunAll()
		if err := report.JSON(out, r); err != nil {
			return err
		}
	default:
		p := report.NewPrinter(out)
		p.Header(branding.DisplayName(), cl.Name)
		v.OnResult = p.Result
		r = v.RunAll()
		p.Summary(r)
	}

	if report.ExitCode(r) != 0 {
		return verify.ErrChecksFailed
	}
	return nil
}

// selectChecklist prefers a custom checklist file, then a named preset, then
// the preset detected from the project's marker files.
func selectChecklist(s *config.Settings, fs platform.FS) (*checklist.Checklist, error) {
	if s.Checklist != "" {
		return checklist.LoadFile(s.Checklist)
	}
	name := s.Preset
	if name == "" || name == checklist.PresetAuto {
		name = checklist.Detect(fs)
	}
	return checklist.Preset(name)
}
