package verify

// Check is one named verification step. Run returns a non-empty advisory
// string for informational outcomes and a non-nil error on failure.
type Check struct {
	Name string
	Run  func() (advisory string, err error)
}

// CheckResult is the outcome of running one Check.
type CheckResult struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message,omitempty"`
	Kind    Kind   `json:"kind,omitempty"`
}

// RunReport aggregates the results of one run, in execution order.
type RunReport struct {
	Checklist string        `json:"checklist"`
	Results   []CheckResult `json:"results"`
	Passed    int           `json:"passed"`
	Failed    int           `json:"failed"`
}

// Total returns the number of checks run.
func (r *RunReport) Total() int { return len(r.Results) }

// OK reports whether no check failed.
func (r *RunReport) OK() bool { return r.Failed == 0 }

// Result returns the result for the named check.
func (r *RunReport) Result(name string) (CheckResult, bool) {
	for _, res := range r.Results {
		if res.Name == name {
			return res, true
		}
	}
	return CheckResult{}, false
}
