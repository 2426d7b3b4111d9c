package rules

import (
	"bytes"
	"fmt"
)

// Result accumulates the outcome of one or more validation calls. The
// zero value is ready to use and reports only the boolean outcome;
// call InitCapture first to additionally collect one diagnostic line
// per violation.
//
// A Result is owned by a single call chain at a time; there is no
// internal locking. Concurrent validations need one Result each.
type Result struct {
	foundError bool
	capture    bool
	output     bytes.Buffer
}

// InitCapture enables diagnostic capture. The buffer starts empty and
// grows only when violations are recorded, so the compliant path
// allocates nothing. Capture is chosen once per Result, before
// validation; it is observation-only and never changes FoundError.
func (r *Result) InitCapture() {
	r.capture = true
}

// FoundError reports whether any recorded entry violated its rule.
func (r *Result) FoundError() bool {
	return r.foundError
}

// Output returns the captured diagnostic text: one line per violation,
// in evaluation order. Empty unless InitCapture was called. The
// returned bytes are valid until Release.
func (r *Result) Output() []byte {
	return r.output.Bytes()
}

// Release frees the diagnostic buffer and resets the Result to its
// zero value. Idempotent, and safe on a zero-valued Result.
func (r *Result) Release() {
	*r = Result{}
}

// record notes one predicate outcome. Compliant entries are a no-op.
// A violation sets the error flag and, when capture is enabled,
// appends one formatted line. index is 1-based; value is the entry's
// display rendering (name or hex wire identifier by category).
func (r *Result) record(ok bool, ruleName, policyName, category, value string, index int) {
	if ok {
		return
	}
	r.foundError = true
	if !r.capture {
		return
	}
	fmt.Fprintf(&r.output, "%s: policy %s: %s: %s (#%d)\n",
		ruleName, policyName, category, value, index)
}
