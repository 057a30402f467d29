package verify

import (
	"errors"
	"fmt"

	"github.com/SteveGJones/ai-first-sdlc-practices/internal/checklist"
)

// Verifier holds the compiled checks for one checklist.
type Verifier struct {
	name   string
	checks []Check

	// OnResult, if set, is called after each check completes.
	OnResult func(CheckResult)
}

// New compiles cl against env.
func New(cl *checklist.Checklist, env Env) *Verifier {
	return &Verifier{name: cl.Name, checks: Compile(cl, env)}
}

// RunAll executes every check once, in order, and returns the report.
func (v *Verifier) RunAll() *RunReport {
	report := run(v.checks, v.OnResult)
	report.Checklist = v.name
	return report
}

// RunAll executes checks sequentially. A failing or panicking check never
// stops the ones after it, and no error escapes.
func RunAll(checks []Check) *RunReport {
	return run(checks, nil)
}

func run(checks []Check, onResult func(CheckResult)) *RunReport {
	report := &RunReport{Results: make([]CheckResult, 0, len(checks))}
	for _, c := range checks {
		res := runOne(c)
		if res.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Results = append(report.Results, res)
		if onResult != nil {
			onResult(res)
		}
	}
	return report
}

func runOne(c Check) (res CheckResult) {
	res.Name = c.Name
	defer func() {
		if r := recover(); r != nil {
			res.Passed = false
			res.Kind = Unexpected
			res.Message = fmt.Sprintf("Unexpected error: %v", r)
		}
	}()

	if c.Run == nil {
		res.Kind = Unexpected
		res.Message = "Unexpected error: check has no implementation"
		return res
	}

	advisory, err := c.Run()
	if err != nil {
		res.Kind = KindOf(err)
		res.Message = err.Error()
		if !errors.As(err, new(*CheckError)) {
			res.Message = "Unexpected error: " + err.Error()
		}
		return res
	}
	res.Passed = true
	res.Message = advisory
	return res
}
