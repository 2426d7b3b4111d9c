package rules

import "errors"

// Sentinel errors for structural validation failures. These indicate a
// programming or configuration defect, never a non-compliant policy;
// rule violations are reported through Result, not through errors.
// Callers should use errors.Is() to check for these.
var (
	// ErrUnknownRule indicates an enabled-rules bit that does not
	// correspond to any registry entry.
	ErrUnknownRule = errors.New("rules: rule identifier out of range")

	// ErrTooManyRules indicates an enabled-rules set larger than the
	// registry itself, i.e. a corrupt or forward-incompatible policy.
	ErrTooManyRules = errors.New("rules: too many active rules")

	// ErrMalformedPrimitive indicates a preference entry that cannot
	// be evaluated (nil entry, missing key-exchange descriptor).
	ErrMalformedPrimitive = errors.New("rules: malformed primitive")

	// ErrIncompletePolicy indicates a policy missing one of its
	// mandatory preference lists (cipher suites, signature schemes,
	// or curves).
	ErrIncompletePolicy = errors.New("rules: policy missing required preference list")
)
