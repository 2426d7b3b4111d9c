// Package output renders validation outcomes for people and machines.
// It consumes the engine's boolean outcome and captured diagnostic
// text; it implements no rule semantics of its own.
package output

import (
	"strings"

	"github.com/policylint/policylint/pkg/rules"
)

// Report is one validation run prepared for rendering.
type Report struct {
	Policy     string   `json:"policy"`
	Compliant  bool     `json:"compliant"`
	Violations []string `json:"violations,omitempty"`
}

// NewReport builds a Report from a finished validation. The result's
// captured text, if any, is split into one entry per violation line;
// with capture disabled only the boolean outcome is available.
func NewReport(policyName string, res *rules.Result) *Report {
	r := &Report{
		Policy:    policyName,
		Compliant: !res.FoundError(),
	}
	if text := res.Output(); len(text) > 0 {
		r.Violations = strings.Split(strings.TrimRight(string(text), "\n"), "\n")
	}
	return r
}
