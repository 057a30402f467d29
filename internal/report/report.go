package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/SteveGJones/ai-first-sdlc-practices/internal/verify"
	"github.com/charmbracelet/lipgloss"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Indicators and banners.
const (
	PassMark      = "✅"
	FailMark      = "❌"
	SuccessBanner = "🎉 Framework verification complete! Ready for development."
	FixBanner     = "🔧 Please fix the issues above before proceeding."
)

// Printer writes the text format. Styles are bound to the writer, so colour
// only appears when w is a terminal.
type Printer struct {
	w    io.Writer
	pass lipgloss.Style
	fail lipgloss.Style
	bold lipgloss.Style
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:    w,
		pass: r.NewStyle().Foreground(lipgloss.Color("#2ECC71")),
		fail: r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		bold: r.NewStyle().Bold(true),
	}
}

// Header announces the run.
func (p *Printer) Header(framework, checklist string) {
	fmt.Fprintf(p.w, "🔍 Running %s framework verification (%s)...\n", framework, checklist)
}

// Result writes the line for one check.
func (p *Printer) Result(res verify.CheckResult) {
	fmt.Fprintln(p.w, Line(res, p.pass, p.fail))
}

// Summary writes the counts and the closing banner.
func (p *Printer) Summary(r *verify.RunReport) {
	fmt.Fprintf(p.w, "\n%s\n", p.bold.Render(fmt.Sprintf("📊 Results: %d passed, %d failed", r.Passed, r.Failed)))
	if r.OK() {
		fmt.Fprintln(p.w, p.pass.Render(SuccessBanner))
		return
	}
	fmt.Fprintln(p.w, p.fail.Render(FixBanner))
}

// Line formats one result. Advisories ride along on passing lines.
func Line(res verify.CheckResult, pass, fail lipgloss.Style) string {
	if !res.Passed {
		return fail.Render(FailMark+" "+res.Name) + ": " + res.Message
	}
	line := pass.Render(PassMark + " " + res.Name)
	if res.Message != "" {
		line += ": " + res.Message
	}
	return line
}

// Text writes a finished report in the text format.
func Text(w io.Writer, framework string, r *verify.RunReport) {
	p := NewPrinter(w)
	p.Header(framework, r.Checklist)
	for _, res := range r.Results {
		p.Result(res)
	}
	p.Summary(r)
}

// JSON writes the report as indented JSON.
func JSON(w io.Writer, r *verify.RunReport) error {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(out)); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// ExitCode maps a report to the process exit status: 0 when nothing failed.
func ExitCode(r *verify.RunReport) int {
	if r.OK() {
		return 0
	}
	return 1
}
